package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when creating or updating a user
	// fails because another account already owns the email address.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUsernameAlreadyExists is returned when creating or updating a user
	// fails because another account already owns the username.
	ErrUsernameAlreadyExists = errors.New("username already taken")

	// ErrResetTokenCollision is returned when storing a freshly generated
	// password-reset token collides with an outstanding token of another
	// user. Callers should generate a new token and retry.
	ErrResetTokenCollision = errors.New("reset token already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrResetTokenNotFound is returned when a password-reset consumption
	// matches no row: the token never existed, has expired, or was already
	// consumed by a concurrent request.
	ErrResetTokenNotFound = errors.New("reset token not found or expired")

	// ErrTodoNotFound is returned when a query or mutation targets a todo
	// item that does not exist for the acting user. Items owned by other
	// users are indistinguishable from missing ones.
	ErrTodoNotFound = errors.New("todo not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no columns to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason that carries no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
