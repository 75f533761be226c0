package http

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/blog/internal/auth/domain"
	authService "github.com/allisson/blog/internal/auth/service"
	apperrors "github.com/allisson/blog/internal/errors"
	"github.com/allisson/blog/internal/httputil"
	userDomain "github.com/allisson/blog/internal/user/domain"
)

// AccountLoader loads an account by id for the authentication middleware.
// The returned account must not include the password hash.
type AccountLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}

// AuthenticationMiddleware gates protected routes behind a bearer token.
//
// The middleware:
//  1. Extracts the Bearer token from the Authorization header (case-insensitive)
//  2. Verifies it with the token codec
//  3. Loads the account for the token's subject
//  4. Stores the account in the request context for downstream handlers
//
// Every failure branch (missing header, malformed prefix, bad signature,
// expired token, unknown account) produces the same 401 response; the
// internal reason is logged at debug level only. A missing or malformed
// prefix is treated identically to an absent header so the response does not
// leak format expectations.
func AuthenticationMiddleware(
	codec authService.TokenCodec,
	accounts AccountLoader,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrNoCredential, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrNoCredential, logger)
			c.Abort()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, authDomain.ErrNoCredential, logger)
			c.Abort()
			return
		}

		subject, err := codec.Verify(token)
		if err != nil {
			logger.Debug("authentication failed: token rejected",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		account, err := accounts.GetByID(c.Request.Context(), subject)
		if err != nil {
			// An account removed after token issuance is indistinguishable
			// from a bad token to the client
			if apperrors.Is(err, apperrors.ErrNotFound) {
				err = authDomain.ErrInvalidCredentials
			}
			logger.Debug("authentication failed: account lookup",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithAccount(c.Request.Context(), account)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("account_id", account.ID.String()))

		c.Next()
	}
}
