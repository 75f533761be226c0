package app

import (
	"fmt"

	postRepository "github.com/allisson/blog/internal/post/repository"
	postUsecase "github.com/allisson/blog/internal/post/usecase"
)

// PostRepository returns the post repository instance.
func (c *Container) PostRepository() (postUsecase.PostRepository, error) {
	var err error
	c.postRepoInit.Do(func() {
		c.postRepo, err = c.initPostRepository()
		if err != nil {
			c.initErrors["postRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["postRepo"]; exists {
		return nil, storedErr
	}
	return c.postRepo, nil
}

// PostUseCase returns the post use case instance.
// When metrics are enabled the use case is wrapped with metrics recording.
func (c *Container) PostUseCase() (postUsecase.UseCase, error) {
	var err error
	c.postUseCaseInit.Do(func() {
		c.postUseCase, err = c.initPostUseCase()
		if err != nil {
			c.initErrors["postUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["postUseCase"]; exists {
		return nil, storedErr
	}
	return c.postUseCase, nil
}

// initPostRepository creates the post repository instance.
func (c *Container) initPostRepository() (postUsecase.PostRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for post repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return postRepository.NewMySQLPostRepository(db), nil
	case "postgres":
		return postRepository.NewPostgreSQLPostRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initPostUseCase creates the post use case with its dependencies.
func (c *Container) initPostUseCase() (postUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for post use case: %w", err)
	}

	postRepo, err := c.PostRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get post repository for post use case: %w", err)
	}

	useCase := postUsecase.NewPostUseCase(txManager, postRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for post use case: %w", err)
	}
	if businessMetrics != nil {
		useCase = postUsecase.NewPostUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
