package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential data, and password-reset state.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user. Immutable.
	ID int64 `json:"id"`

	// Email is the unique email address of the account, stored lower-cased
	// so that uniqueness is case-insensitive.
	Email string `json:"email"`

	// Username is the unique public handle of the account.
	// 3-80 characters, letters, digits and underscores only.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never returned to clients.
	PasswordHash string `json:"-"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the optional family name of the user.
	LastName string `json:"last_name,omitempty"`

	// IsActive reports whether the account may authenticate.
	// Deactivated accounts are rejected on login and on every
	// authenticated request.
	IsActive bool `json:"is_active"`

	// IsVerified reports whether the account's email has been confirmed.
	// Informational only; verification is not enforced anywhere.
	IsVerified bool `json:"is_verified"`

	// ResetToken is the outstanding single-use password-reset token, if any.
	// Unique across all users. Never serialized.
	ResetToken *string `json:"-"`

	// ResetTokenExpiry is the instant after which ResetToken is no longer
	// accepted. Cleared together with ResetToken on successful use.
	ResetTokenExpiry *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created. Immutable.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation of the account row.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate describes a partial update of a user profile. Nil fields are
// left untouched; non-nil fields replace the stored values. Username changes
// are re-validated for shape and uniqueness before the write.
type ProfileUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
}
