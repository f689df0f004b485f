package main

import (
	"database/sql"

	"github.com/Abros3006/business-tracker/config"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

type database struct {
	sql  *sql.DB
	path string
}

// withDB connects with the service config and closes the pool after fn.
func withDB(pathFlag string, fn func(db *database) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	path := pathFlag
	if path == "" && cfg.Migrations != nil {
		path = cfg.Migrations.Path
	}
	if path == "" {
		path = defaultMigrationsPath
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return fn(&database{sql: sqlDB, path: path})
}
