package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Digit extraction from identifier fields
	nonDigitRegex = regexp.MustCompile(`\D`)
)
