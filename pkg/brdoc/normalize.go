package brdoc

import "strings"

// documentSymbols is the exact set of formatting characters stripped from a
// raw document number before validation. Anything outside this set is kept,
// so unexpected content still surfaces as a format error instead of being
// silently repaired.
const documentSymbols = `-_.,\/|~#$%&@"'*=+ªº><:;?!`

// Normalize trims surrounding whitespace and removes formatting punctuation
// from a document number. It applies no other transformation: accents, case
// and non-symbol characters pass through untouched. Normalize never fails
// and is idempotent on digit-only input.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(documentSymbols, r) {
			return -1
		}
		return r
	}, s)
}
