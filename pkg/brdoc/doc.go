// Package brdoc validates the check digits of Brazilian identification
// numbers: CPF (individual taxpayer registry), CNPJ (company taxpayer
// registry) and PIS (worker registration).
//
// All three algorithms share the same shape: the document's formatting
// punctuation is removed, a weighted sum is computed over the leading
// digits, and the resulting modulo-11 check digit(s) are compared against
// the trailing digits of the input. CPF and CNPJ carry two check digits
// computed in two passes with different weight tables; PIS carries one.
//
// # Usage
//
//	ok, err := brdoc.IsValidCPF("111.444.777-35")
//	switch {
//	case errors.Is(err, brdoc.ErrInvalidLength):
//		// wrong number of digits, checksum never ran
//	case errors.Is(err, brdoc.ErrInvalidFormat):
//		// a non-digit character survived normalization
//	case ok:
//		// check digits match
//	}
//
// Punctuated and bare inputs are equally accepted; Normalize strips a fixed
// set of formatting symbols and nothing else. Format helpers render a
// normalized number back into its canonical punctuation.
//
// # Error Handling
//
// A length mismatch or a stray non-digit character is an error, never a
// false verdict. This keeps "the number is well-formed but its check digits
// are wrong" distinguishable from "this is not a document number at all",
// which matters when deciding whether to reject input or re-prompt for it.
//
// # Concurrency
//
// Every function is a pure computation over its input with no shared state,
// safe for concurrent use without coordination.
package brdoc
