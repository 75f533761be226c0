package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/blog/internal/errors"
)

// passwordService implements PasswordService using Argon2id via go-pwdhash.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a new PasswordService instance using Argon2id hashing.
// Uses the interactive policy, tuned for per-request user password checks.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		// This should never happen with a valid built-in policy
		panic(err)
	}

	return &passwordService{hasher: hasher}
}

// Hash derives a salted Argon2id hash from the plaintext password.
// The encoded form embeds the salt and cost parameters.
func (s *passwordService) Hash(plain string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(plain))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// Compare performs a constant-time comparison between a plaintext password
// and its stored hash. Malformed hashes fail closed.
func (s *passwordService) Compare(plain, hashed string) bool {
	ok, err := s.hasher.Verify([]byte(plain), hashed)
	if err != nil {
		return false
	}
	return ok
}
