package brdoc

import "fmt"

// digitsOf converts a normalized document number into its digit values.
// Any rune outside '0'..'9' reports ErrInvalidFormat.
func digitsOf(s string) ([]int, error) {
	runes := []rune(s)
	digits := make([]int, len(runes))
	for i, r := range runes {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, r)
		}
		digits[i] = int(r - '0')
	}
	return digits, nil
}

// checkDigit computes a modulo-11 check digit over digits using the given
// weight table. Remainders below 2 map to zero, so the result is always a
// single decimal digit.
func checkDigit(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// withCheckDigit appends a computed check digit to a base digit sequence,
// producing the input for the second checksum pass.
func withCheckDigit(base []int, digit int) []int {
	seq := make([]int, 0, len(base)+1)
	seq = append(seq, base...)
	return append(seq, digit)
}
