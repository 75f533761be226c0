// Package http provides HTTP handlers for post operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/blog/internal/auth/http"
	"github.com/allisson/blog/internal/httputil"
	"github.com/allisson/blog/internal/post/http/dto"
	"github.com/allisson/blog/internal/post/usecase"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUseCase usecase.UseCase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// CreateHandler publishes a new post owned by the authenticated user.
// POST /api/posts - Requires authentication. Returns 201 Created.
func (h *PostHandler) CreateHandler(c *gin.Context) {
	account, _ := authHTTP.GetAccount(c.Request.Context())

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	post, err := h.postUseCase.Create(c.Request.Context(), account, dto.ToCreatePostInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

// GetHandler retrieves a single post.
// GET /api/posts/:id - Public. Returns 200 OK.
func (h *PostHandler) GetHandler(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid post ID format: must be a valid UUID"),
			h.logger)
		return
	}

	post, err := h.postUseCase.GetByID(c.Request.Context(), postID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// ListHandler retrieves a page of posts ordered by most recent first.
// GET /api/posts - Public. Returns 200 OK.
func (h *PostHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	posts, err := h.postUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostListResponse(posts, offset, limit))
}

// UpdateHandler edits an existing post. Only its author may edit it.
// PUT /api/posts/:id - Requires authentication. Returns 200 OK.
func (h *PostHandler) UpdateHandler(c *gin.Context) {
	account, _ := authHTTP.GetAccount(c.Request.Context())

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid post ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	post, err := h.postUseCase.Update(c.Request.Context(), account, postID, dto.ToUpdatePostInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// DeleteHandler removes an existing post. Only its author may delete it.
// DELETE /api/posts/:id - Requires authentication. Returns 204 No Content.
func (h *PostHandler) DeleteHandler(c *gin.Context) {
	account, _ := authHTTP.GetAccount(c.Request.Context())

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid post ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.postUseCase.Delete(c.Request.Context(), account, postID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
