package brdoc

import "errors"

// Validation errors shared by all document validators.
var (
	// ErrInvalidLength is returned when a normalized document number does not
	// have the exact number of characters its algorithm expects.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a non-digit character survives
	// normalization, e.g. a letter inside the document number.
	ErrInvalidFormat = errors.New("invalid format")
)
