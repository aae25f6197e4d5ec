// Package validators contains input validation rules applied before any
// write reaches the persistence layer. All functions are pure and safe for
// concurrent use.
package validators

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

const (
	usernameMinLen = 3
	usernameMaxLen = 80
	passwordMinLen = 8
)

// ValidateEmail checks that email looks like a deliverable address.
// Returns [ErrInvalidEmail] otherwise.
func ValidateEmail(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateUsername checks the username shape: 3-80 characters, restricted to
// letters, digits and underscores.
//
// Returns [ErrUsernameLength] or [ErrUsernameCharset] on violation.
func ValidateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length < usernameMinLen || length > usernameMaxLen {
		return ErrUsernameLength
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameCharset
	}
	return nil
}

// ValidatePassword enforces the password strength policy: at least 8
// characters with at least one upper-case letter, one lower-case letter and
// one digit. Each rule has its own sentinel so clients get an actionable
// message.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < passwordMinLen {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordNoUpper
	case !hasLower:
		return ErrPasswordNoLower
	case !hasDigit:
		return ErrPasswordNoDigit
	}

	return nil
}
