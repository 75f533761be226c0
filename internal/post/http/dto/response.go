package dto

import (
	"time"

	"github.com/google/uuid"
)

// PostResponse represents the API response for a post
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostListResponse represents the API response for a page of posts
type PostListResponse struct {
	Posts  []PostResponse `json:"posts"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}
