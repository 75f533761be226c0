package domain

import (
	"github.com/google/uuid"

	"github.com/allisson/blog/internal/errors"
	userDomain "github.com/allisson/blog/internal/user/domain"
)

// AuthorizeOwner decides whether the authenticated account may mutate a
// resource owned by ownerID.
//
// It is a pure decision function over already-loaded data: it never fetches
// the resource, and callers must resolve a missing resource to NotFound
// before invoking it. Comparison is identifier equality only; there are no
// roles, delegation, or admin overrides.
//
// A nil account (authentication middleware bypassed or not run) denies with
// ErrUnauthorized. A non-owner denies with ErrForbidden.
func AuthorizeOwner(account *userDomain.User, ownerID uuid.UUID) error {
	if account == nil {
		return errors.ErrUnauthorized
	}
	if account.ID != ownerID {
		return errors.ErrForbidden
	}
	return nil
}
