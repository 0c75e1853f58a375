// Package services implements the persistence-facing business logic. Every
// method is tenant-scoped: callers pass the firm ID from the authenticated
// request and cross-tenant lookups come back as ErrNotFound, never as a
// permission error, so existence is not leaked.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found (or belongs to
	// another firm).
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidTransition is returned when a session state change is not
	// allowed from the current status, including lost CAS races between
	// replicas.
	ErrInvalidTransition = errors.New("invalid session state transition")

	// ErrShareExpired is returned when a brief share link has passed its
	// expiry.
	ErrShareExpired = errors.New("share link expired")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
