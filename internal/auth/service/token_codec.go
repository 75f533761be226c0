package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/blog/internal/auth/domain"
	apperrors "github.com/allisson/blog/internal/errors"
)

// tokenCodec implements TokenCodec with HMAC-SHA256 signed JWTs.
//
// The secret and lifetime are fixed at construction, loaded once from
// configuration at startup. The secret is kept as a constructor parameter
// rather than process-global state so tests can run with distinct secrets.
type tokenCodec struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenCodec creates a TokenCodec signing with the given secret.
// Tokens expire lifetime after issuance.
func NewTokenCodec(secret string, lifetime time.Duration) (TokenCodec, error) {
	if secret == "" {
		return nil, apperrors.New("token signing secret must not be empty")
	}
	return &tokenCodec{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// Issue creates a signed token carrying the subject id, issuance and expiry times.
func (t *tokenCodec) Issue(subject uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.lifetime)

	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify validates the token signature and expiry and returns the subject id.
func (t *tokenCodec) Verify(token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	// Strict decoding rejects non-canonical base64 trailing bits, which would
	// otherwise let some single-character signature edits decode unchanged.
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithStrictDecoding())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, authDomain.ErrTokenExpired
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return uuid.Nil, authDomain.ErrTokenSignatureInvalid
		default:
			return uuid.Nil, authDomain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return uuid.Nil, authDomain.ErrTokenMalformed
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, authDomain.ErrTokenMalformed
	}

	return subject, nil
}
