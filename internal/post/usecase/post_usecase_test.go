package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/blog/internal/post/domain"
	userDomain "github.com/allisson/blog/internal/user/domain"

	apperrors "github.com/allisson/blog/internal/errors"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, offset, limit int) ([]*domain.Post, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestUseCase() (UseCase, *MockTxManager, *MockPostRepository) {
	txManager := &MockTxManager{}
	postRepo := &MockPostRepository{}
	return NewPostUseCase(txManager, postRepo), txManager, postRepo
}

func testAuthor() *userDomain.User {
	return &userDomain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  "John Doe",
		Email: "john@example.com",
	}
}

func TestPostUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a post owned by the author", func(t *testing.T) {
		useCase, txManager, postRepo := newTestUseCase()
		author := testAuthor()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		postRepo.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		post, err := useCase.Create(ctx, author, CreatePostInput{Title: "  First Post  ", Content: "Hello"})

		require.NoError(t, err)
		assert.Equal(t, author.ID, post.AuthorID)
		assert.Equal(t, "First Post", post.Title)
		assert.NotEqual(t, uuid.Nil, post.ID)

		txManager.AssertExpectations(t)
		postRepo.AssertExpectations(t)
	})

	t.Run("rejects an anonymous author", func(t *testing.T) {
		useCase, _, _ := newTestUseCase()

		post, err := useCase.Create(ctx, nil, CreatePostInput{Title: "First Post", Content: "Hello"})

		assert.Nil(t, post)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		useCase, _, _ := newTestUseCase()

		tests := []struct {
			name  string
			input CreatePostInput
		}{
			{"missing title", CreatePostInput{Content: "Hello"}},
			{"blank title", CreatePostInput{Title: "   ", Content: "Hello"}},
			{"missing content", CreatePostInput{Title: "First Post"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				post, err := useCase.Create(ctx, testAuthor(), tt.input)

				assert.Nil(t, post)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			})
		}
	})
}

func TestPostUseCase_Update(t *testing.T) {
	ctx := context.Background()
	input := UpdatePostInput{Title: "Updated", Content: "Updated content"}

	t.Run("lets the author edit its post", func(t *testing.T) {
		useCase, txManager, postRepo := newTestUseCase()
		author := testAuthor()
		stored := &domain.Post{ID: uuid.Must(uuid.NewV7()), AuthorID: author.ID, Title: "Old", Content: "old"}

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		postRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)
		postRepo.On("Update", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		post, err := useCase.Update(ctx, author, stored.ID, input)

		require.NoError(t, err)
		assert.Equal(t, "Updated", post.Title)
		assert.Equal(t, "Updated content", post.Content)

		postRepo.AssertExpectations(t)
	})

	t.Run("rejects a non-owner with forbidden", func(t *testing.T) {
		useCase, txManager, postRepo := newTestUseCase()
		stranger := testAuthor()
		stored := &domain.Post{ID: uuid.Must(uuid.NewV7()), AuthorID: uuid.Must(uuid.NewV7())}

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		postRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

		post, err := useCase.Update(ctx, stranger, stored.ID, input)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("reports not found before the ownership check", func(t *testing.T) {
		useCase, txManager, postRepo := newTestUseCase()
		missingID := uuid.Must(uuid.NewV7())

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		postRepo.On("GetByID", ctx, missingID).Return(nil, domain.ErrPostNotFound)

		post, err := useCase.Update(ctx, testAuthor(), missingID, input)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPostUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("lets the author delete its post", func(t *testing.T) {
		useCase, txManager, postRepo := newTestUseCase()
		author := testAuthor()
		stored := &domain.Post{ID: uuid.Must(uuid.NewV7()), AuthorID: author.ID}

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		postRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)
		postRepo.On("Delete", ctx, stored.ID).Return(nil)

		err := useCase.Delete(ctx, author, stored.ID)

		assert.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("rejects a non-owner with forbidden", func(t *testing.T) {
		useCase, txManager, postRepo := newTestUseCase()
		stored := &domain.Post{ID: uuid.Must(uuid.NewV7()), AuthorID: uuid.Must(uuid.NewV7())}

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		postRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

		err := useCase.Delete(ctx, testAuthor(), stored.ID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("rejects an anonymous actor with unauthorized", func(t *testing.T) {
		useCase, txManager, postRepo := newTestUseCase()
		stored := &domain.Post{ID: uuid.Must(uuid.NewV7()), AuthorID: uuid.Must(uuid.NewV7())}

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		postRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

		err := useCase.Delete(ctx, nil, stored.ID)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.NotErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestPostUseCase_List(t *testing.T) {
	useCase, _, postRepo := newTestUseCase()

	ctx := context.Background()
	stored := []*domain.Post{
		{ID: uuid.Must(uuid.NewV7()), Title: "Second"},
		{ID: uuid.Must(uuid.NewV7()), Title: "First"},
	}

	postRepo.On("List", ctx, 0, 20).Return(stored, nil)

	posts, err := useCase.List(ctx, 0, 20)

	require.NoError(t, err)
	assert.Equal(t, stored, posts)
}

func TestPostUseCase_GetByID(t *testing.T) {
	useCase, _, postRepo := newTestUseCase()

	ctx := context.Background()
	stored := &domain.Post{ID: uuid.Must(uuid.NewV7()), Title: "First"}

	postRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

	post, err := useCase.GetByID(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, post)
}
