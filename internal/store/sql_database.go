package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/taskdeck/taskdeck/internal/logger"
)

// Dialect identifies the SQL backend behind a [DB] connection. It selects
// the placeholder format for generated queries and the driver-specific
// constraint-violation mapping.
type Dialect string

const (
	// DialectPostgres is the production backend, driven by pgx/stdlib.
	DialectPostgres Dialect = "postgres"

	// DialectSQLite is the local-development backend, driven by
	// mattn/go-sqlite3.
	DialectSQLite Dialect = "sqlite3"
)

// DB wraps a *sql.DB together with the dialect it speaks. All repositories
// build their statements through [DB.Builder] so placeholders always match
// the backend.
type DB struct {
	*sql.DB

	dialect Dialect
	logger  *logger.Logger
}

// Dialect returns the SQL dialect of the underlying connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Builder returns a squirrel statement builder configured with the
// placeholder format of the underlying backend ($1 for PostgreSQL, ? for
// SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// DialectFromDSN infers the SQL dialect from a connection string.
// PostgreSQL URI schemes select [DialectPostgres]; everything else is
// treated as a SQLite file path.
func DialectFromDSN(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}
