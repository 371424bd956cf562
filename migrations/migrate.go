// Package migrations embeds the schema migration files and applies them with
// goose. Postgres and SQLite get separate migration sets because their DDL
// for auto-incremented keys differs.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. driverName must be "pgx" or
// "sqlite3"; it selects both the goose dialect and the migration directory.
func Migrate(db *sql.DB, driverName string) error {
	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch driverName {
	case "pgx":
		dialect, dir = "pgx", "postgres"
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driverName)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
