// Package errors defines domain error types shared across services and
// handlers.
package errors

import "fmt"

// FieldError is a validation failure attributed to a single request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError builds a field-attributed validation error.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
