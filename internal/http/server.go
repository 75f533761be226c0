package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/allisson/blog/internal/config"
	postHTTP "github.com/allisson/blog/internal/post/http"
	userHTTP "github.com/allisson/blog/internal/user/http"
)

// Handlers groups the route handlers and middlewares wired into the server.
// Nil middlewares are skipped.
type Handlers struct {
	AuthHandler *userHTTP.AuthHandler
	UserHandler *userHTTP.UserHandler
	PostHandler *postHTTP.PostHandler

	// AuthMiddleware gates routes that require an authenticated account.
	AuthMiddleware gin.HandlerFunc
	// AuthRateLimitMiddleware throttles the unauthenticated signup/login endpoints.
	AuthRateLimitMiddleware gin.HandlerFunc
	// MetricsMiddleware records HTTP request metrics.
	MetricsMiddleware gin.HandlerFunc
}

// Server represents the API HTTP server
type Server struct {
	server *http.Server
	logger *slog.Logger
	db     *sql.DB
}

// NewServer creates a new HTTP server with all routes registered
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	handlers Handlers,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if handlers.MetricsMiddleware != nil {
		router.Use(handlers.MetricsMiddleware)
	}

	s := &Server{
		logger: logger,
		db:     db,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	s.registerRoutes(router, handlers)

	return s
}

func (s *Server) registerRoutes(router *gin.Engine, handlers Handlers) {
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api")

	auth := api.Group("/auth")
	if handlers.AuthRateLimitMiddleware != nil {
		auth.Use(handlers.AuthRateLimitMiddleware)
	}
	auth.POST("/signup", handlers.AuthHandler.SignupHandler)
	auth.POST("/login", handlers.AuthHandler.LoginHandler)

	users := api.Group("/users")
	users.Use(handlers.AuthMiddleware)
	users.GET("/me", handlers.UserHandler.MeHandler)
	users.PUT("/me", handlers.UserHandler.UpdateMeHandler)

	posts := api.Group("/posts")
	posts.GET("", handlers.PostHandler.ListHandler)
	posts.GET("/:id", handlers.PostHandler.GetHandler)

	protectedPosts := api.Group("/posts")
	protectedPosts.Use(handlers.AuthMiddleware)
	protectedPosts.POST("", handlers.PostHandler.CreateHandler)
	protectedPosts.PUT("/:id", handlers.PostHandler.UpdateHandler)
	protectedPosts.DELETE("/:id", handlers.PostHandler.DeleteHandler)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness by pinging the database.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
