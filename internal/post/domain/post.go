// Package domain defines the core post entity and its domain errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/blog/internal/errors"
)

// Post represents a published blog post. AuthorID is set at creation
// and never changes afterwards.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Domain errors for post operations
var (
	// ErrPostNotFound is returned when a post doesn't exist
	ErrPostNotFound = apperrors.Wrap(apperrors.ErrNotFound, "post not found")
)
