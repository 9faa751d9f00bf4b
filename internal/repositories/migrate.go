package repositories

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/velsky/animelist-api/internal/logger"
)

// RunMigrations applies all pending migrations from sourcePath against the
// database at databaseURL. A database already at the latest version is not
// an error.
func RunMigrations(databaseURL, sourcePath string) error {
	if sourcePath == "" {
		sourcePath = "file://migrations"
	}

	m, err := migrate.New(sourcePath, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run up migrations: %w", err)
	}

	logger.Log.Info("database migrations ran successfully")
	return nil
}
