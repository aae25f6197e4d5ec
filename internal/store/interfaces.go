package store

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/models"
)

// UserRepository is the persistence contract for user accounts. All methods
// are safe for concurrent use; uniqueness of email, username, and reset
// token is enforced by database constraints, so two concurrent writers with
// the same value cannot both succeed.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Conflicts map to [ErrEmailAlreadyExists] or
	// [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the account with the given id, or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByEmail returns the account with the given (lower-cased)
	// email, or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUsername returns the account with the given username, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateProfile applies a partial profile update and returns the updated
	// account. Username collisions map to [ErrUsernameAlreadyExists].
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// SetResetToken stores a password-reset token and its expiry on the
	// account row. A clash with another outstanding token maps to
	// [ErrResetTokenCollision].
	SetResetToken(ctx context.Context, userID int64, token string, expiry time.Time) error

	// ConsumeResetToken atomically sets the new password hash and clears the
	// reset token, keyed on the token value and its expiry bound. Returns
	// [ErrResetTokenNotFound] if no live token matched — expired, already
	// consumed, or never issued.
	ConsumeResetToken(ctx context.Context, token string, passwordHash string, now time.Time) error

	// ClearExpiredResetTokens removes reset tokens whose expiry has passed
	// and reports how many rows were cleaned.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// TodoRepository is the persistence contract for todo items. Every method
// takes the owner's user id and scopes all reads and writes by it; items of
// other users are reported as [ErrTodoNotFound].
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	ListTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}
