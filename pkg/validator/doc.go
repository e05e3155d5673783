// Package validator provides declarative, field-oriented validation rules for
// Brazilian identification numbers, built on a small rule-evaluation core.
//
// Each exported validation function constructs and returns a Rule value that
// pairs a boolean Check function with rich, translation-friendly error
// metadata. Rules are evaluated with the Apply helper, which aggregates any
// failures into a ValidationErrors slice satisfying the error interface, so a
// form with several bad fields surfaces every problem in a single error
// return.
//
// # Architecture
//
// The checksum arithmetic itself lives in the brdoc package; the rules here
// adapt it to field-level validation. A rule treats both a failed checksum
// and a malformed value (wrong length, stray letters) as a failed check —
// callers that need to distinguish those cases should call brdoc directly.
// There is no hidden global state, therefore the package is completely
// stateless, allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidCPF("cpf", form.CPF),
//	    validator.ValidCNPJ("company_cnpj", form.CompanyCNPJ),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and works with errors.As, so callers can
// detect validation problems while preserving the per-field details. Field
// errors can be inspected with the helper methods Has, Get, GetErrors and
// Fields.
package validator
