// Package sanitizer provides helper functions for cleaning identifier fields
// and free-form text before validation, storage or display.
//
// The functions are grouped conceptually into several areas:
//
//   - Strings – trimming, digit extraction, document-number normalization and
//     rune-safe substring extraction (Substring, Left, Right).
//
//   - Text – accent stripping and conversion between UTF-8 and ISO 8859-1,
//     the encoding legacy Brazilian systems commonly exchange data in.
//
//   - Masking – routines that hide most of a document number while keeping
//     the check digits visible for user recognition in logs and UIs.
//
// The package is completely stateless. All helpers are implemented as small,
// focused functions that can be freely combined. For convenience the
// higher-order Apply and Compose helpers allow the creation of sanitisation
// pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveAccents,
//	    sanitizer.NormalizeDocument,
//	)
//
//	doc := clean("  111.444.777-35\n") // "11144477735"
//
// # Error handling
//
// With the exception of ToLatin1, which refuses lossy conversions, none of
// the helpers returns an error – they always fall back to a safe result
// (usually the original input or an empty string) if sanitisation fails.
//
// # Performance
//
// All operations allocate only what is necessary. Because there is no global
// state the helpers are safe for use from multiple goroutines concurrently.
package sanitizer
