package service

import (
	"context"
	"net/url"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

// LogResetMailer is the default [ResetMailer]: it writes the reset URL to
// the log instead of sending mail. Suitable for development and tests; a
// production deployment replaces it with a real mail transport.
type LogResetMailer struct {
	// baseURL is the front-end reset page; the token is appended as a
	// "token" query parameter.
	baseURL string

	logger *logger.Logger
}

// NewLogResetMailer constructs a [LogResetMailer] using the reset base URL
// from cfg.
func NewLogResetMailer(cfg config.App, logger *logger.Logger) *LogResetMailer {
	return &LogResetMailer{baseURL: cfg.ResetBaseURL, logger: logger}
}

// SendResetToken logs the full reset URL for the given user. The raw token
// appears only here; it is never written to the regular request logs.
func (m *LogResetMailer) SendResetToken(ctx context.Context, user models.User, token string) error {
	resetURL, err := url.Parse(m.baseURL)
	if err != nil {
		return err
	}

	query := resetURL.Query()
	query.Set("token", token)
	resetURL.RawQuery = query.Encode()

	m.logger.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Str("reset_url", resetURL.String()).
		Msg("password reset link issued")

	return nil
}
