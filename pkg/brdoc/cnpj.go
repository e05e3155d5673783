package brdoc

import (
	"fmt"
	"unicode/utf8"
)

// cnpjLength is the digit count of a CNPJ after normalization.
const cnpjLength = 14

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ reports whether a Brazilian company taxpayer number (CNPJ)
// carries correct check digits. Formatting punctuation is accepted and
// stripped before validation.
//
// The boolean is the checksum verdict; ErrInvalidLength and ErrInvalidFormat
// follow the same contract as IsValidCPF, with an expected length of 14.
func IsValidCNPJ(cnpj string) (bool, error) {
	normalized := Normalize(cnpj)
	if utf8.RuneCountInString(normalized) != cnpjLength {
		return false, fmt.Errorf("%w: cnpj must have %d digits", ErrInvalidLength, cnpjLength)
	}

	digits, err := digitsOf(normalized)
	if err != nil {
		return false, err
	}

	base := digits[:cnpjLength-2]
	first := checkDigit(base, cnpjWeightsFirst)
	second := checkDigit(withCheckDigit(base, first), cnpjWeightsSecond)

	return digits[cnpjLength-2] == first && digits[cnpjLength-1] == second, nil
}

// FormatCNPJ renders a CNPJ in its canonical punctuation, 00.000.000/0000-00.
// Check digits are not verified; length and digit content are.
func FormatCNPJ(cnpj string) (string, error) {
	normalized := Normalize(cnpj)
	if utf8.RuneCountInString(normalized) != cnpjLength {
		return "", fmt.Errorf("%w: cnpj must have %d digits", ErrInvalidLength, cnpjLength)
	}
	if _, err := digitsOf(normalized); err != nil {
		return "", err
	}

	return normalized[0:2] + "." + normalized[2:5] + "." + normalized[5:8] + "/" + normalized[8:12] + "-" + normalized[12:14], nil
}
