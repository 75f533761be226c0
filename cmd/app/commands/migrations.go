package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/blog/internal/app"
	"github.com/allisson/blog/internal/config"
)

// RunMigrations applies all pending database migrations for the configured
// driver. Running against an up-to-date schema is not an error.
func RunMigrations() error {
	cfg := config.Load()

	// The container is only used for its logger here
	logger := app.NewContainer(cfg).Logger()

	logger.Info("applying database migrations", slog.String("driver", cfg.DBDriver))

	m, err := migrate.New(migrationsSource(cfg.DBDriver), cfg.DBConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	switch err := m.Up(); {
	case err == nil:
		logger.Info("migrations applied")
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("schema already up to date")
	default:
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// migrationsSource maps a database driver to its migration directory.
func migrationsSource(driver string) string {
	if driver == "mysql" {
		return "file://migrations/mysql"
	}
	return "file://migrations/postgresql"
}
