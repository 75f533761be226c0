package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/blog/internal/metrics"
	"github.com/allisson/blog/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for user registration operations.
func (u *userUseCaseWithMetrics) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	start := time.Now()
	output, err := u.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "register", status)
	u.metrics.RecordDuration(ctx, "user", "register", time.Since(start), status)

	return output, err
}

// Login records metrics for login operations.
func (u *userUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	start := time.Now()
	output, err := u.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "login", status)
	u.metrics.RecordDuration(ctx, "user", "login", time.Since(start), status)

	return output, err
}

// GetUserByID records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetUserByID(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "get", status)
	u.metrics.RecordDuration(ctx, "user", "get", time.Since(start), status)

	return user, err
}

// UpdateProfile records metrics for profile update operations.
func (u *userUseCaseWithMetrics) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	input UpdateProfileInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.UpdateProfile(ctx, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "update_profile", status)
	u.metrics.RecordDuration(ctx, "user", "update_profile", time.Since(start), status)

	return user, err
}
