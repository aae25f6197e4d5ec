package service

import (
	"context"

	"github.com/taskdeck/taskdeck/models"
)

// AuthService owns the credential lifecycle: registration, credential
// verification, profile and password mutation, and the password-reset flow.
type AuthService interface {
	// RegisterUser validates and creates a new account. The password is
	// bcrypt-hashed before any write; the returned user never carries the
	// raw password.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the identifier/password pair. The identifier may be an
	// email address or a username; the lookup tries each unique field in
	// turn. Unknown identifier and wrong password are collapsed into
	// [ErrInvalidCredentials]; a deactivated account yields
	// [ErrAccountDisabled].
	Login(ctx context.Context, identifier, password string) (models.User, error)

	// GetUser resolves a user id to its live account record.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies a partial update of first name, last name, and
	// username, re-validating username shape and uniqueness.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)

	// ChangePassword verifies the current password and replaces it with the
	// new one after strength validation.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error

	// RequestPasswordReset issues a single-use reset token for the account
	// with the given email and hands it to the reset mailer. It succeeds
	// regardless of whether the email exists so responses cannot be used to
	// enumerate accounts.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset exchanges a live reset token for a new password.
	// The token is consumed exactly once.
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

// TokenService issues and validates the signed access and refresh tokens.
// It is stateless: validity is determined purely by signature, expiry, and
// claim contents, so it survives restarts as long as the sign key is stable.
type TokenService interface {
	// IssuePair mints an access/refresh token pair for the given user.
	IssuePair(ctx context.Context, userID int64) (models.TokenPair, error)

	// Validate checks the token's signature, expiry, issuer, and type
	// discriminator, returning the subject user id. Every failure mode is
	// normalised to [ErrTokenIsExpiredOrInvalid].
	Validate(ctx context.Context, token, expectedType string) (int64, error)

	// Refresh validates a refresh token and mints a fresh access token for
	// the same subject. The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// TodoService owns the todo lifecycle. Every operation takes the acting
// user's id as resolved by the authentication middleware and never trusts a
// client-supplied owner.
type TodoService interface {
	CreateTodo(ctx context.Context, userID int64, req models.CreateTodoRequest) (models.Todo, error)
	ListTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}

// SuggestionService proxies todo-authoring suggestions to an
// OpenAI-compatible completion backend.
type SuggestionService interface {
	GenerateDescription(ctx context.Context, title string) (string, error)
	ImproveTitle(ctx context.Context, title string) (string, error)
	GenerateSuggestions(ctx context.Context, title, description string) (models.SuggestionResponse, error)
}

// ResetMailer delivers password-reset tokens over an out-of-band channel.
// The default implementation only logs the reset URL for development; a
// production deployment plugs in a real mail sender.
type ResetMailer interface {
	SendResetToken(ctx context.Context, user models.User, token string) error
}
