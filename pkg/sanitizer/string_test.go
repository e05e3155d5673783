package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brdoc/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\n111.444.777-35\n\t",
			expected: "111.444.777-35",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestOnlyDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips document punctuation",
			input:    "11.222.333/0001-81",
			expected: "11222333000181",
		},
		{
			name:     "strips letters and spaces",
			input:    "CPF: 111 444 777 35",
			expected: "11144477735",
		},
		{
			name:     "digit-only input unchanged",
			input:    "12345678900",
			expected: "12345678900",
		},
		{
			name:     "no digits yields empty string",
			input:    "abc-def",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.OnlyDigits(tt.input))
		})
	}
}

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips punctuation",
			input:    " 111.444.777-35 ",
			expected: "11144477735",
		},
		{
			name:     "keeps letters so validation can reject them",
			input:    "111.444.77A-35",
			expected: "11144477A35",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeDocument(tt.input))
		})
	}
}

func TestSubstring(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		start    int
		length   int
		expected string
	}{
		{
			name:     "extracts middle of string",
			input:    "11144477735",
			start:    3,
			length:   3,
			expected: "444",
		},
		{
			name:     "clamps length past end",
			input:    "hello",
			start:    3,
			length:   10,
			expected: "lo",
		},
		{
			name:     "start past end yields empty",
			input:    "hello",
			start:    10,
			length:   2,
			expected: "",
		},
		{
			name:     "negative start counts as zero",
			input:    "hello",
			start:    -2,
			length:   3,
			expected: "hel",
		},
		{
			name:     "zero length yields empty",
			input:    "hello",
			start:    0,
			length:   0,
			expected: "",
		},
		{
			name:     "rune-safe with multibyte characters",
			input:    "José María",
			start:    0,
			length:   4,
			expected: "José",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Substring(tt.input, tt.start, tt.length))
		})
	}
}

func TestLeftRight(t *testing.T) {
	t.Run("Left returns leading runes", func(t *testing.T) {
		assert.Equal(t, "111", sanitizer.Left("11144477735", 3))
		assert.Equal(t, "11144477735", sanitizer.Left("11144477735", 50))
		assert.Equal(t, "", sanitizer.Left("11144477735", 0))
	})

	t.Run("Right returns trailing runes", func(t *testing.T) {
		assert.Equal(t, "35", sanitizer.Right("11144477735", 2))
		assert.Equal(t, "11144477735", sanitizer.Right("11144477735", 50))
		assert.Equal(t, "", sanitizer.Right("11144477735", 0))
	})

	t.Run("Right is rune-safe", func(t *testing.T) {
		assert.Equal(t, "María", sanitizer.Right("José María", 5))
	})
}
