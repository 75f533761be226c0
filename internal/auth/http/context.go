// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"

	userDomain "github.com/allisson/blog/internal/user/domain"
)

// accountKey is a context key type for storing the authenticated account.
type accountKey struct{}

// WithAccount stores the authenticated account in the context.
// Called by the authentication middleware after successful token verification.
func WithAccount(ctx context.Context, account *userDomain.User) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// GetAccount retrieves the authenticated account from the context.
// Returns (account, true) if present, or (nil, false) if the authentication
// middleware did not run or did not succeed. The account never carries the
// password hash.
func GetAccount(ctx context.Context) (*userDomain.User, bool) {
	account, ok := ctx.Value(accountKey{}).(*userDomain.User)
	return account, ok
}
