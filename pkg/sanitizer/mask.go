package sanitizer

import "strings"

// MaskCPF hides all but the two check digits of a CPF so the value can be
// logged or displayed for user recognition without exposing the number.
func MaskCPF(s string) string {
	return maskTrailing(OnlyDigits(s), 2)
}

// MaskCNPJ hides all but the two check digits of a CNPJ.
func MaskCNPJ(s string) string {
	return maskTrailing(OnlyDigits(s), 2)
}

func maskTrailing(digits string, visible int) string {
	if len(digits) <= visible {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-visible) + digits[len(digits)-visible:]
}
