package service

import "errors"

// Validation errors. Messages are stable and safe to surface to clients.
var (
	ErrMissingRegisterFields = errors.New("email, username, and password are required")
	ErrMissingLoginFields    = errors.New("email/username and password are required")
	ErrMissingPasswordFields = errors.New("current password and new password are required")
	ErrMissingResetFields    = errors.New("token and new password are required")
	ErrEmailRequired         = errors.New("email is required")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")

	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title must be at most 200 characters")
)

// Authentication and token errors.
var (
	// ErrInvalidCredentials is returned on login when the identifier does
	// not match any account or the password does not verify. The two cases
	// are deliberately indistinguishable to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when the matched account has been
	// deactivated.
	ErrAccountDisabled = errors.New("account is deactivated")

	// ErrWrongPassword is returned by the password-change flow when the
	// supplied current password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure:
	// bad signature, expired, wrong issuer, wrong type, malformed.
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")

	// ErrResetTokenInvalid is returned by the reset confirmation when the
	// token matched no live row: expired, already consumed, or never issued.
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")

	// ErrTokenCreationFailed wraps low-level signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Suggestion service errors.
var (
	// ErrSuggestionsUnavailable is returned when no AI API key is
	// configured; the endpoints exist but cannot serve.
	ErrSuggestionsUnavailable = errors.New("AI suggestions are not configured")

	// ErrSuggestionFailed is returned when the upstream completion request
	// fails or returns an unusable response.
	ErrSuggestionFailed = errors.New("failed to generate suggestions")
)
