package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/brdoc/pkg/brdoc"
)

// ValidCPF validates a Brazilian individual taxpayer number (CPF), including
// its two modulo-11 check digits. Formatting punctuation is accepted.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			ok, err := brdoc.IsValidCPF(value)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCNPJ validates a Brazilian company taxpayer number (CNPJ), including
// its two modulo-11 check digits. Formatting punctuation is accepted.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			ok, err := brdoc.IsValidCNPJ(value)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CNPJ",
			TranslationKey: "validation.cnpj",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPIS validates a Brazilian worker registration number (PIS), including
// its single modulo-11 check digit. Formatting punctuation is accepted.
func ValidPIS(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			ok, err := brdoc.IsValidPIS(value)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid PIS",
			TranslationKey: "validation.pis",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidBrazilianDocument accepts either a CPF or a CNPJ in one field,
// dispatching on the normalized digit count. Intake forms commonly take a
// single taxpayer-number field for both individuals and companies.
func ValidBrazilianDocument(field, value string) Rule {
	return Rule{
		Check: func() bool {
			normalized := brdoc.Normalize(value)
			switch utf8.RuneCountInString(normalized) {
			case 11:
				ok, err := brdoc.IsValidCPF(normalized)
				return err == nil && ok
			case 14:
				ok, err := brdoc.IsValidCNPJ(normalized)
				return err == nil && ok
			default:
				return false
			}
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF or CNPJ",
			TranslationKey: "validation.brazilian_document",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
