// Package dto provides data transfer objects for the post HTTP layer.
package dto

// CreatePostRequest represents the API request for post creation
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest represents the API request for post updates
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
