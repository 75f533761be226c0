package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/blog/internal/errors"
	userDomain "github.com/allisson/blog/internal/user/domain"
)

func TestAuthorizeOwner(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV7())
	otherID := uuid.Must(uuid.NewV7())

	t.Run("owner is allowed", func(t *testing.T) {
		account := &userDomain.User{ID: ownerID}
		assert.NoError(t, AuthorizeOwner(account, ownerID))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		account := &userDomain.User{ID: otherID}
		err := AuthorizeOwner(account, ownerID)
		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("nil account is unauthorized", func(t *testing.T) {
		err := AuthorizeOwner(nil, ownerID)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("denial is symmetric for any pair of distinct ids", func(t *testing.T) {
		a := uuid.Must(uuid.NewV7())
		b := uuid.Must(uuid.NewV7())
		assert.True(t, apperrors.Is(AuthorizeOwner(&userDomain.User{ID: a}, b), apperrors.ErrForbidden))
		assert.True(t, apperrors.Is(AuthorizeOwner(&userDomain.User{ID: b}, a), apperrors.ErrForbidden))
	})
}
