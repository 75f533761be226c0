// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/allisson/blog/internal/auth/domain"
	"github.com/allisson/blog/internal/auth/service"
	"github.com/allisson/blog/internal/database"
	"github.com/allisson/blog/internal/user/domain"
	appValidation "github.com/allisson/blog/internal/validation"

	apperrors "github.com/allisson/blog/internal/errors"
)

// RegisterInput contains the input data for user registration
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput contains the credentials presented at login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput contains the mutable profile fields
type UpdateProfileInput struct {
	Name string `json:"name"`
}

// AuthOutput bundles the authenticated user with its freshly issued token
type AuthOutput struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager database.TxManager
	userRepo  UserRepository
	passwords service.PasswordService
	tokens    service.TokenCodec
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwords service.PasswordService,
	tokens service.TokenCodec,
) UseCase {
	return &UserUseCase{
		txManager: txManager,
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

func (uc *UserUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 128).Error("password must be between 6 and 128 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *UserUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *UserUseCase) validateUpdateProfileInput(input UpdateProfileInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new user account and logs it in by issuing a token
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	// Normalize before validating so padded input is judged on its content
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)

	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		// Repository maps the unique violation to domain.ErrUserAlreadyExists
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	// The hash never leaves the use case layer
	user.Password = ""

	return &AuthOutput{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Login authenticates a user by email and password. Unknown emails and wrong
// passwords are indistinguishable to the caller: both yield ErrInvalidCredentials.
func (uc *UserUseCase) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	input.Email = normalizeEmail(input.Email)

	if err := uc.validateLoginInput(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmailWithPassword(ctx, input.Email)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.passwords.Compare(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	user.Password = ""

	return &AuthOutput{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateProfile updates the mutable profile fields of an existing user
func (uc *UserUseCase) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	input UpdateProfileInput,
) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := uc.validateUpdateProfileInput(input); err != nil {
		return nil, err
	}

	var user *domain.User
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		current.Name = input.Name
		if err := uc.userRepo.Update(ctx, current); err != nil {
			return err
		}

		user = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
