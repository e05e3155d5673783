package sanitizer

import "golang.org/x/text/encoding/charmap"

// ToLatin1 encodes a UTF-8 string as ISO 8859-1. Characters outside the
// Latin-1 repertoire report an error rather than being replaced, so lossy
// conversions never happen silently.
func ToLatin1(s string) ([]byte, error) {
	return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
}

// FromLatin1 decodes ISO 8859-1 bytes into a UTF-8 string. Every Latin-1
// byte has a mapping, so the conversion is total.
func FromLatin1(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
