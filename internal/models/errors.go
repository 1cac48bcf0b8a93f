package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	// ErrInvalidInput marks a precondition violation on simulation inputs.
	// Every validation failure wraps this sentinel so callers can errors.Is on it.
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInputError reports which field failed validation and why.
// The engine fails fast on bad inputs; it never clamps them.
type InvalidInputError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput)
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput creates an InvalidInputError for the given field
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}
