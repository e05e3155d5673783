package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brdoc/pkg/sanitizer"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips Portuguese accents",
			input:    "João da Conceição",
			expected: "Joao da Conceicao",
		},
		{
			name:     "strips tilde and circumflex",
			input:    "São Paulo, Brasília, Pará",
			expected: "Sao Paulo, Brasilia, Para",
		},
		{
			name:     "ascii input is identity",
			input:    "plain ascii text 123",
			expected: "plain ascii text 123",
		},
		{
			name:     "preserves case",
			input:    "ÁÉÍÓÚ áéíóú",
			expected: "AEIOU aeiou",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.RemoveAccents(tt.input))
		})
	}
}
