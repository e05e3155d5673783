package brdoc

import (
	"fmt"
	"unicode/utf8"
)

// cpfLength is the digit count of a CPF after normalization.
const cpfLength = 11

var (
	cpfWeightsFirst  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeightsSecond = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCPF reports whether a Brazilian individual taxpayer number (CPF)
// carries correct check digits. Formatting punctuation is accepted and
// stripped before validation.
//
// The boolean is the checksum verdict. A normalized input that is not exactly
// 11 characters returns ErrInvalidLength; a non-digit character that survives
// normalization returns ErrInvalidFormat. Both are distinct from a false
// verdict and must be handled by the caller.
func IsValidCPF(cpf string) (bool, error) {
	normalized := Normalize(cpf)
	if utf8.RuneCountInString(normalized) != cpfLength {
		return false, fmt.Errorf("%w: cpf must have %d digits", ErrInvalidLength, cpfLength)
	}

	digits, err := digitsOf(normalized)
	if err != nil {
		return false, err
	}

	base := digits[:cpfLength-2]
	first := checkDigit(base, cpfWeightsFirst)
	second := checkDigit(withCheckDigit(base, first), cpfWeightsSecond)

	return digits[cpfLength-2] == first && digits[cpfLength-1] == second, nil
}

// FormatCPF renders a CPF in its canonical punctuation, 000.000.000-00.
// The input may already be formatted; it is normalized first. Length and
// digit content are checked the same way IsValidCPF checks them, but the
// check digits themselves are not verified.
func FormatCPF(cpf string) (string, error) {
	normalized := Normalize(cpf)
	if utf8.RuneCountInString(normalized) != cpfLength {
		return "", fmt.Errorf("%w: cpf must have %d digits", ErrInvalidLength, cpfLength)
	}
	if _, err := digitsOf(normalized); err != nil {
		return "", err
	}

	return normalized[0:3] + "." + normalized[3:6] + "." + normalized[6:9] + "-" + normalized[9:11], nil
}
