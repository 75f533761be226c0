// Package service provides authentication primitives: password hashing and
// signed token issuance/verification.
package service

import (
	"time"

	"github.com/google/uuid"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash derives a salted one-way hash from the plaintext password.
	// Repeated calls with the same plaintext produce different hashes.
	Hash(plain string) (string, error)

	// Compare checks a plaintext password against a stored hash in constant
	// time. It fails closed: any error, including a malformed hash, yields
	// false rather than an error.
	Compare(plain, hashed string) bool
}

// TokenCodec issues and verifies signed, expiring identity tokens.
//
// Verification is a pure function of the token and the server secret: no
// state, no I/O. There is no server-side revocation; validity is signature
// plus expiry.
type TokenCodec interface {
	// Issue creates a signed token for the subject, expiring after the
	// codec's configured lifetime.
	Issue(subject uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify validates the token and returns the embedded subject id.
	// Failures are domain.ErrTokenExpired, domain.ErrTokenSignatureInvalid
	// or domain.ErrTokenMalformed; callers treat them all as unauthorized.
	Verify(token string) (uuid.UUID, error)
}
