package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/blog/internal/auth/domain"
	"github.com/allisson/blog/internal/user/domain"

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

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPasswordService is a mock implementation of service.PasswordService
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Compare(plain, hashed string) bool {
	args := m.Called(plain, hashed)
	return args.Bool(0)
}

// MockTokenCodec is a mock implementation of service.TokenCodec
type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) Issue(accountID uuid.UUID) (string, time.Time, error) {
	args := m.Called(accountID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenCodec) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newTestUseCase() (UseCase, *MockTxManager, *MockUserRepository, *MockPasswordService, *MockTokenCodec) {
	txManager := &MockTxManager{}
	userRepo := &MockUserRepository{}
	passwords := &MockPasswordService{}
	tokens := &MockTokenCodec{}
	useCase := NewUserUseCase(txManager, userRepo, passwords, tokens)
	return useCase, txManager, userRepo, passwords, tokens
}

func TestUserUseCase_Register_Success(t *testing.T) {
	useCase, txManager, userRepo, passwords, tokens := newTestUseCase()

	ctx := context.Background()
	input := RegisterInput{
		Name:     "John Doe",
		Email:    "  John@Example.com  ",
		Password: "secret-password",
	}
	expiresAt := time.Now().Add(time.Hour)

	passwords.On("Hash", input.Password).Return("hashed-password", nil)
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
	tokens.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("token-value", expiresAt, nil)

	output, err := useCase.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "John Doe", output.User.Name)
	assert.Equal(t, "john@example.com", output.User.Email)
	assert.Empty(t, output.User.Password)
	assert.Equal(t, "token-value", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)

	txManager.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	passwords.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestUserUseCase_Register_ValidationError(t *testing.T) {
	useCase, _, _, _, _ := newTestUseCase()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing name", RegisterInput{Email: "john@example.com", Password: "secret-password"}},
		{"blank name", RegisterInput{Name: "   ", Email: "john@example.com", Password: "secret-password"}},
		{"invalid email", RegisterInput{Name: "John", Email: "not-an-email", Password: "secret-password"}},
		{"short password", RegisterInput{Name: "John", Email: "john@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := useCase.Register(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestUserUseCase_Register_DuplicateEmail(t *testing.T) {
	useCase, txManager, userRepo, passwords, _ := newTestUseCase()

	ctx := context.Background()
	input := RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	}

	passwords.On("Hash", input.Password).Return("hashed-password", nil)
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrUserAlreadyExists)

	output, err := useCase.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserUseCase_Login_Success(t *testing.T) {
	useCase, _, userRepo, passwords, tokens := newTestUseCase()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	stored := &domain.User{
		ID:       userID,
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hashed-password",
	}
	expiresAt := time.Now().Add(time.Hour)

	userRepo.On("GetByEmailWithPassword", ctx, "john@example.com").Return(stored, nil)
	passwords.On("Compare", "secret-password", "hashed-password").Return(true)
	tokens.On("Issue", userID).Return("token-value", expiresAt, nil)

	output, err := useCase.Login(ctx, LoginInput{Email: "John@Example.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Empty(t, output.User.Password)
	assert.Equal(t, "token-value", output.Token)

	userRepo.AssertExpectations(t)
	passwords.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestUserUseCase_Login_PaddedEmail(t *testing.T) {
	useCase, _, userRepo, passwords, tokens := newTestUseCase()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	stored := &domain.User{
		ID:       userID,
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hashed-password",
	}
	expiresAt := time.Now().Add(time.Hour)

	// Whitespace is stripped before validation, not only before the lookup
	userRepo.On("GetByEmailWithPassword", ctx, "john@example.com").Return(stored, nil)
	passwords.On("Compare", "secret-password", "hashed-password").Return(true)
	tokens.On("Issue", userID).Return("token-value", expiresAt, nil)

	output, err := useCase.Login(ctx, LoginInput{Email: "  John@Example.com  ", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)

	userRepo.AssertExpectations(t)
}

func TestUserUseCase_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		useCase, _, userRepo, _, _ := newTestUseCase()

		userRepo.On("GetByEmailWithPassword", ctx, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		output, err := useCase.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "whatever-password"})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		useCase, _, userRepo, passwords, _ := newTestUseCase()

		stored := &domain.User{
			ID:       uuid.Must(uuid.NewV7()),
			Email:    "john@example.com",
			Password: "hashed-password",
		}
		userRepo.On("GetByEmailWithPassword", ctx, "john@example.com").Return(stored, nil)
		passwords.On("Compare", "wrong-password", "hashed-password").Return(false)

		output, err := useCase.Login(ctx, LoginInput{Email: "john@example.com", Password: "wrong-password"})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})
}

func TestUserUseCase_Login_ValidationError(t *testing.T) {
	useCase, _, _, _, _ := newTestUseCase()

	output, err := useCase.Login(context.Background(), LoginInput{Email: "not-an-email", Password: ""})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUserUseCase_GetUserByID(t *testing.T) {
	useCase, _, userRepo, _, _ := newTestUseCase()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	stored := &domain.User{ID: userID, Name: "John Doe", Email: "john@example.com"}

	userRepo.On("GetByID", ctx, userID).Return(stored, nil)

	user, err := useCase.GetUserByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("updates the name", func(t *testing.T) {
		useCase, txManager, userRepo, _, _ := newTestUseCase()

		stored := &domain.User{ID: userID, Name: "John Doe", Email: "john@example.com"}

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		userRepo.On("GetByID", ctx, userID).Return(stored, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := useCase.UpdateProfile(ctx, userID, UpdateProfileInput{Name: "  Johnny  "})

		require.NoError(t, err)
		assert.Equal(t, "Johnny", user.Name)

		txManager.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("returns not found for a missing user", func(t *testing.T) {
		useCase, txManager, userRepo, _, _ := newTestUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		userRepo.On("GetByID", ctx, userID).Return(nil, domain.ErrUserNotFound)

		user, err := useCase.UpdateProfile(ctx, userID, UpdateProfileInput{Name: "Johnny"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		useCase, _, _, _, _ := newTestUseCase()

		user, err := useCase.UpdateProfile(ctx, userID, UpdateProfileInput{Name: "   "})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestUserUseCase_Register_HashError(t *testing.T) {
	useCase, _, _, passwords, _ := newTestUseCase()

	passwords.On("Hash", "secret-password").Return("", errors.New("hash failure"))

	output, err := useCase.Register(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret-password",
	})

	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to hash password")
}
