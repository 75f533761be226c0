package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/blog/internal/metrics"
	"github.com/allisson/blog/internal/post/domain"
	userDomain "github.com/allisson/blog/internal/user/domain"
)

// postUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type postUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewPostUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewPostUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &postUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for post creation operations.
func (p *postUseCaseWithMetrics) Create(
	ctx context.Context,
	author *userDomain.User,
	input CreatePostInput,
) (*domain.Post, error) {
	start := time.Now()
	post, err := p.next.Create(ctx, author, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "post", "create", status)
	p.metrics.RecordDuration(ctx, "post", "create", time.Since(start), status)

	return post, err
}

// GetByID records metrics for post retrieval operations.
func (p *postUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	start := time.Now()
	post, err := p.next.GetByID(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "post", "get", status)
	p.metrics.RecordDuration(ctx, "post", "get", time.Since(start), status)

	return post, err
}

// List records metrics for post list operations.
func (p *postUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.Post, error) {
	start := time.Now()
	posts, err := p.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "post", "list", status)
	p.metrics.RecordDuration(ctx, "post", "list", time.Since(start), status)

	return posts, err
}

// Update records metrics for post update operations.
func (p *postUseCaseWithMetrics) Update(
	ctx context.Context,
	actor *userDomain.User,
	id uuid.UUID,
	input UpdatePostInput,
) (*domain.Post, error) {
	start := time.Now()
	post, err := p.next.Update(ctx, actor, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "post", "update", status)
	p.metrics.RecordDuration(ctx, "post", "update", time.Since(start), status)

	return post, err
}

// Delete records metrics for post deletion operations.
func (p *postUseCaseWithMetrics) Delete(ctx context.Context, actor *userDomain.User, id uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, actor, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "post", "delete", status)
	p.metrics.RecordDuration(ctx, "post", "delete", time.Since(start), status)

	return err
}
