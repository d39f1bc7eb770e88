// Package errs defines the error taxonomy shared by every service.
//
// Services return these values (possibly wrapped with %w) and the HTTP layer maps them to status codes
// with errors.Is / errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced record no longer exists.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyPaid is returned when a payment is applied to a debt with nothing remaining.
	ErrAlreadyPaid = errors.New("debt is already paid")
	// ErrInvalidDate is returned when a stored date cannot be used as a calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")
	// ErrUnauthenticated is returned when no valid session is present.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrConflict is returned when a record would duplicate a unique one, such as a registered email.
	ErrConflict = errors.New("already exists")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError wraps a persistence failure from the domain store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError for the given operation.
func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsStore reports whether err carries a StoreError.
func IsStore(err error) bool {
	var s *StoreError
	return errors.As(err, &s)
}
