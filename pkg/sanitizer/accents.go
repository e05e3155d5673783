package sanitizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents replaces accented letters with their unaccented equivalents
// by decomposing to NFD, dropping combining marks, and recomposing. ASCII
// input passes through unchanged. Falls back to the original input if the
// transformation fails.
func RemoveAccents(s string) string {
	// Transformers carry state across Transform calls, so build one per call
	// to stay goroutine-safe.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
