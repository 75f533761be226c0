package app

import (
	"fmt"

	"github.com/allisson/blog/internal/http"
	"github.com/allisson/blog/internal/metrics"

	authHTTP "github.com/allisson/blog/internal/auth/http"
	postHTTP "github.com/allisson/blog/internal/post/http"
	userHTTP "github.com/allisson/blog/internal/user/http"
)

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	postUseCase, err := c.PostUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get post use case for http server: %w", err)
	}

	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for http server: %w", err)
	}

	// The user repository doubles as the account loader: its GetByID never
	// selects the password hash.
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for http server: %w", err)
	}

	handlers := http.Handlers{
		AuthHandler:    userHTTP.NewAuthHandler(userUseCase, logger),
		UserHandler:    userHTTP.NewUserHandler(userUseCase, logger),
		PostHandler:    postHTTP.NewPostHandler(postUseCase, logger),
		AuthMiddleware: authHTTP.AuthenticationMiddleware(tokenCodec, userRepo, logger),
	}

	if c.config.RateLimitAuthEnabled {
		handlers.AuthRateLimitMiddleware = authHTTP.AuthRateLimitMiddleware(
			c.config.RateLimitAuthRequestsPerSec,
			c.config.RateLimitAuthBurst,
			logger,
		)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}
	if provider != nil {
		handlers.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	return http.NewServer(c.config, logger, db, handlers), nil
}
