package commands

import (
	"context"
	"fmt"

	"github.com/allisson/blog/internal/app"
	"github.com/allisson/blog/internal/config"
	userUsecase "github.com/allisson/blog/internal/user/usecase"
)

// RunCreateUser creates a new user account from the command line.
// The account goes through the same validation and hashing path as the
// signup endpoint.
func RunCreateUser(ctx context.Context, name, email, password string, io IOTuple) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	output, err := useCase.Register(ctx, userUsecase.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(io.Writer, "User created successfully\n")
	fmt.Fprintf(io.Writer, "ID: %s\n", output.User.ID)
	fmt.Fprintf(io.Writer, "Email: %s\n", output.User.Email)

	return nil
}
