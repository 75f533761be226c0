package dto

import (
	"github.com/allisson/blog/internal/post/domain"
	"github.com/allisson/blog/internal/post/usecase"
)

// ToCreatePostInput converts a CreatePostRequest DTO to a use case input
func ToCreatePostInput(req CreatePostRequest) usecase.CreatePostInput {
	return usecase.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	}
}

// ToUpdatePostInput converts an UpdatePostRequest DTO to a use case input
func ToUpdatePostInput(req UpdatePostRequest) usecase.UpdatePostInput {
	return usecase.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	}
}

// ToPostResponse converts a domain Post model to a PostResponse DTO
func ToPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// ToPostListResponse converts a page of domain posts to a PostListResponse DTO
func ToPostListResponse(posts []*domain.Post, offset, limit int) PostListResponse {
	items := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, ToPostResponse(post))
	}
	return PostListResponse{
		Posts:  items,
		Offset: offset,
		Limit:  limit,
	}
}
