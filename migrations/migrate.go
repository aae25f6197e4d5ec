// Package migrations holds the embedded goose migrations for both supported
// SQL backends. PostgreSQL and SQLite need separate DDL (serial columns,
// boolean defaults), so each dialect keeps its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/taskdeck/taskdeck/internal/store"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given dialect.
func Migrate(db *sql.DB, dialect store.Dialect) error {
	goose.SetBaseFS(embedMigrations)

	gooseDialect, dir := "pgx", "postgres"
	if dialect == store.DialectSQLite {
		gooseDialect, dir = "sqlite3", "sqlite"
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
