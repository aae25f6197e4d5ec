package workers

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// sweepTimeout bounds a single cleanup statement.
const sweepTimeout = time.Minute

// ResetTokenJanitor periodically clears expired password-reset tokens from
// the user table. Expired tokens are already rejected at consumption time;
// the janitor only keeps the unique token column from accumulating dead
// values.
type ResetTokenJanitor struct {
	users    store.UserRepository
	interval time.Duration
	logger   *logger.Logger
}

// NewResetTokenJanitor constructs a janitor sweeping at the given interval.
// A non-positive interval falls back to one hour.
func NewResetTokenJanitor(users store.UserRepository, interval time.Duration, logger *logger.Logger) *ResetTokenJanitor {
	if interval <= 0 {
		interval = time.Hour
	}

	return &ResetTokenJanitor{
		users:    users,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks, sweeping once per interval. Intended to be launched on its own
// goroutine via [Workers.Run].
func (j *ResetTokenJanitor) Run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for range ticker.C {
		j.sweep()
	}
}

func (j *ResetTokenJanitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	cleaned, err := j.users.ClearExpiredResetTokens(ctx, time.Now())
	if err != nil {
		j.logger.Err(err).Msg("reset token cleanup failed")
		return
	}

	if cleaned > 0 {
		j.logger.Info().Int64("cleaned", cleaned).Msg("expired reset tokens cleared")
	}
}
