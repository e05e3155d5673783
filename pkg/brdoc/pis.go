package brdoc

import (
	"fmt"
	"unicode/utf8"
)

// pisLength is the digit count of a PIS after normalization.
const pisLength = 11

var pisWeights = []int{3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// IsValidPIS reports whether a Brazilian worker registration number (PIS)
// carries a correct check digit. Unlike CPF and CNPJ, the PIS checksum is a
// single pass producing one trailing check digit.
//
// The boolean is the checksum verdict; ErrInvalidLength and ErrInvalidFormat
// follow the same contract as IsValidCPF, with an expected length of 11.
func IsValidPIS(pis string) (bool, error) {
	normalized := Normalize(pis)
	if utf8.RuneCountInString(normalized) != pisLength {
		return false, fmt.Errorf("%w: pis must have %d digits", ErrInvalidLength, pisLength)
	}

	digits, err := digitsOf(normalized)
	if err != nil {
		return false, err
	}

	return digits[pisLength-1] == checkDigit(digits[:pisLength-1], pisWeights), nil
}

// FormatPIS renders a PIS in its canonical punctuation, 000.00000.00-0.
// Check digits are not verified; length and digit content are.
func FormatPIS(pis string) (string, error) {
	normalized := Normalize(pis)
	if utf8.RuneCountInString(normalized) != pisLength {
		return "", fmt.Errorf("%w: pis must have %d digits", ErrInvalidLength, pisLength)
	}
	if _, err := digitsOf(normalized); err != nil {
		return "", err
	}

	return normalized[0:3] + "." + normalized[3:8] + "." + normalized[8:10] + "-" + normalized[10:11], nil
}
