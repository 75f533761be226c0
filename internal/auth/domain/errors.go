// Package domain defines authentication domain errors and authorization policy.
package domain

import (
	"github.com/allisson/blog/internal/errors"
)

// Domain-specific errors for authentication operations.
//
// All token and credential failures wrap errors.ErrUnauthorized so the HTTP
// boundary collapses them into a single 401 response. The distinct values
// exist only for server-side diagnostics.
var (
	// ErrInvalidCredentials indicates the email/password pair did not match an
	// account. Deliberately covers both "no such account" and "wrong password".
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrNoCredential indicates the request carried no usable Authorization header.
	ErrNoCredential = errors.Wrap(errors.ErrUnauthorized, "missing bearer credential")

	// ErrTokenExpired indicates the token's expiry time has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenSignatureInvalid indicates the token signature does not match the server secret.
	ErrTokenSignatureInvalid = errors.Wrap(errors.ErrUnauthorized, "token signature invalid")

	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthorized, "token malformed")
)
