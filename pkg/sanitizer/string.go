package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/brdoc/pkg/brdoc"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// OnlyDigits strips everything except decimal digits to enable consistent
// storage and comparison of identifier fields.
func OnlyDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeDocument removes formatting punctuation from a Brazilian document
// number. Unlike OnlyDigits it strips only the known symbol set, so stray
// content still surfaces as a validation error instead of being silently
// repaired.
func NormalizeDocument(s string) string {
	return brdoc.Normalize(s)
}

// Substring returns up to length runes starting at start. Out-of-range bounds
// are clamped instead of panicking; a negative start counts as zero.
func Substring(s string, start, length int) string {
	if start < 0 {
		start = 0
	}
	if length <= 0 {
		return ""
	}

	runes := []rune(s)
	if start >= len(runes) {
		return ""
	}

	end := start + length
	if end > len(runes) {
		end = len(runes)
	}

	return string(runes[start:end])
}

// Left returns the first n runes of a string.
func Left(s string, n int) string {
	return Substring(s, 0, n)
}

// Right returns the last n runes of a string.
func Right(s string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(s)
	if n >= len(runes) {
		return s
	}

	return string(runes[len(runes)-n:])
}
