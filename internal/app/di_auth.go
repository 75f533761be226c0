package app

import (
	"fmt"

	authService "github.com/allisson/blog/internal/auth/service"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenCodec returns the authentication token codec.
// It fails fast when AUTH_TOKEN_SECRET is not configured.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = authService.NewTokenCodec(
			c.config.AuthTokenSecret,
			c.config.AuthTokenExpiration,
		)
		if err != nil {
			err = fmt.Errorf("failed to create token codec: %w", err)
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}
