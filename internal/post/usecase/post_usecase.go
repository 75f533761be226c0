// Package usecase implements the post business logic and orchestrates post domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/allisson/blog/internal/auth/domain"
	"github.com/allisson/blog/internal/database"
	"github.com/allisson/blog/internal/post/domain"
	userDomain "github.com/allisson/blog/internal/user/domain"
	appValidation "github.com/allisson/blog/internal/validation"
)

// CreatePostInput contains the input data for post creation
type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostInput contains the mutable post fields
type UpdatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UseCase defines the interface for post business logic operations
type UseCase interface {
	Create(ctx context.Context, author *userDomain.User, input CreatePostInput) (*domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Post, error)
	Update(ctx context.Context, actor *userDomain.User, id uuid.UUID, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor *userDomain.User, id uuid.UUID) error
}

// PostRepository interface defines post repository operations
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostUseCase handles post-related business logic
type PostUseCase struct {
	txManager database.TxManager
	postRepo  PostRepository
}

// NewPostUseCase creates a new PostUseCase
func NewPostUseCase(txManager database.TxManager, postRepo PostRepository) UseCase {
	return &PostUseCase{
		txManager: txManager,
		postRepo:  postRepo,
	}
}

func validatePostFields(title, content string) error {
	input := struct {
		Title   string
		Content string
	}{Title: title, Content: content}

	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Content,
			validation.Required.Error("content is required"),
			appValidation.NotBlank,
			validation.Length(1, 50000).Error("content must be between 1 and 50000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create publishes a new post owned by the author
func (uc *PostUseCase) Create(
	ctx context.Context,
	author *userDomain.User,
	input CreatePostInput,
) (*domain.Post, error) {
	if author == nil {
		return nil, authDomain.ErrNoCredential
	}
	if err := validatePostFields(input.Title, input.Content); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:       uuid.Must(uuid.NewV7()),
		AuthorID: author.ID,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.postRepo.Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetByID retrieves a post by ID
func (uc *PostUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

// List retrieves posts ordered by most recent first
func (uc *PostUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Post, error) {
	return uc.postRepo.List(ctx, offset, limit)
}

// Update edits an existing post. Only the author may edit it; a missing post
// reports not found before any ownership check runs.
func (uc *PostUseCase) Update(
	ctx context.Context,
	actor *userDomain.User,
	id uuid.UUID,
	input UpdatePostInput,
) (*domain.Post, error) {
	if err := validatePostFields(input.Title, input.Content); err != nil {
		return nil, err
	}

	var post *domain.Post
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := uc.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := authDomain.AuthorizeOwner(actor, current.AuthorID); err != nil {
			return err
		}

		current.Title = strings.TrimSpace(input.Title)
		current.Content = input.Content
		if err := uc.postRepo.Update(ctx, current); err != nil {
			return err
		}

		post = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes an existing post. Only the author may delete it.
func (uc *PostUseCase) Delete(ctx context.Context, actor *userDomain.User, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := uc.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := authDomain.AuthorizeOwner(actor, current.AuthorID); err != nil {
			return err
		}

		return uc.postRepo.Delete(ctx, current.ID)
	})
}
