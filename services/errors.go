package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the login flow
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFoundError signals that an identifier did not resolve to a row
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError carries per-field validation messages for constraints that
// can only be checked against the database (uniqueness, foreign keys, typed
// attribute values).
type ValidationError struct {
	Details map[string][]string
}

func (e ValidationError) Error() string {
	return "validation error"
}

// NewValidationError builds a single-field validation error
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Details: map[string][]string{field: {message}}}
}
