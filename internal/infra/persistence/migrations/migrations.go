// Package migrations applies the SQL files under migrations/ with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"

	"github.com/Abros3006/business-tracker/config"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Run applies every pending up migration found in path.
func Run(db *sql.DB, path string) error {
	m, err := newMigrate(db, path)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// Down rolls back the given number of migrations.
func Down(db *sql.DB, path string, steps int) error {
	m, err := newMigrate(db, path)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "roll back migrations")
	}

	return nil
}

// Version reports the current schema version and whether it is dirty.
func Version(db *sql.DB, path string) (uint, bool, error) {
	m, err := newMigrate(db, path)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, errors.Wrap(err, "read migration version")
}

func newMigrate(db *sql.DB, path string) (*migrate.Migrate, error) {
	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "create migrate driver")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve migrations path")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+abs, "pgx_v5", driver)
	if err != nil {
		return nil, errors.Wrap(err, "create migrate instance")
	}

	return m, nil
}

// RunOnStart applies migrations before the server accepts traffic when enabled in config.
func RunOnStart(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger) error {
	if cfg.Migrations == nil || !cfg.Migrations.Enabled {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB for migrations")
	}

	// The migrate driver pins one pooled connection for the life of the process.
	if err := Run(sqlDB, cfg.Migrations.Path); err != nil {
		return err
	}
	logger.InfoContext(ctx, "database migrations applied", slog.String("path", cfg.Migrations.Path))

	return nil
}
