// Package commands implements the CLI subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/blog/internal/app"
)

// IOTuple bundles the streams a command reads from and writes to, so tests
// can substitute buffers for stdin/stdout.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns the process stdin/stdout pair.
func DefaultIO() IOTuple {
	return IOTuple{Reader: os.Stdin, Writer: os.Stdout}
}

// closeContainer shuts the container down, logging instead of failing since
// it runs in deferred cleanup paths.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes a migrate instance. Close reports source and database
// errors separately, so both are logged.
func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		logger.Error("failed to close migrate instance",
			slog.Any("source_error", srcErr),
			slog.Any("database_error", dbErr),
		)
	}
}
