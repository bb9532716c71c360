// Package services holds the application logic between HTTP handlers and
// the MongoDB repositories.
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmailTaken: a signup reused an already-registered email.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound: no account matches the given email or id.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPassword: the password did not match the stored digest.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrOrderNotFound / ErrProductNotFound: the referenced entity is absent.
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError carries field-level messages for a rejected request.
// Controllers render it as a 400 with the fields map in the body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// NewValidationError builds a ValidationError from a fields map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
