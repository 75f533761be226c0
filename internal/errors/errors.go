// Package errors defines the sentinel errors shared by every domain module.
// Use cases return these (usually wrapped with context) and the HTTP layer
// translates them into status codes, so no other package needs to know about
// HTTP semantics.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup for a resource that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write that collides with existing data, such as a
	// duplicate unique key.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput marks input that failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized marks a request without valid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a request whose authenticated caller lacks
	// permission for the target resource.
	ErrForbidden = errors.New("forbidden")
)

// New returns an error with the given message. Kept here so domain packages
// import a single errors package.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message, preserving the chain for Is/As checks.
// A nil err stays nil so callers can wrap unconditionally.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target any) bool {
	return errors.As(err, target)
}
