package validators

import "errors"

// Sentinel errors returned by the validation functions. Callers should match
// against them with [errors.Is]; their messages are stable and safe to show
// to clients.
var (
	ErrInvalidEmail = errors.New("invalid email format")

	ErrUsernameLength  = errors.New("username must be between 3 and 80 characters")
	ErrUsernameCharset = errors.New("username can only contain letters, numbers, and underscores")

	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordNoUpper  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower  = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit  = errors.New("password must contain at least one digit")
)
