package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// uniqueViolation inspects a driver-level error and reports whether it is a
// unique-constraint violation. When it is, the second return value carries a
// lower-cased hint naming the violated constraint or column, so callers can
// map the violation to a per-field conflict sentinel.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgerrcode.UniqueViolation {
			return "", false
		}
		return strings.ToLower(pgErr.ConstraintName + " " + pgErr.Detail), true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
			return "", false
		}
		// sqlite reports "UNIQUE constraint failed: users.email"
		return strings.ToLower(sqliteErr.Error()), true
	}

	return "", false
}

// mapUserConflict translates a unique-violation error raised by a write to
// the users table into the matching per-field sentinel. Non-violation errors
// are returned unchanged (wrapped by the caller).
func mapUserConflict(err error) error {
	hint, ok := uniqueViolation(err)
	if !ok {
		return err
	}

	switch {
	case strings.Contains(hint, "email"):
		return ErrEmailAlreadyExists
	case strings.Contains(hint, "username"):
		return ErrUsernameAlreadyExists
	case strings.Contains(hint, "reset_token"):
		return ErrResetTokenCollision
	default:
		return err
	}
}
