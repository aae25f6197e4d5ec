package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is unusable.
var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source. The server cannot issue or verify tokens
	// without it.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrInvalidTokenDurations is returned when any token lifetime is zero
	// or negative after merging all sources.
	ErrInvalidTokenDurations = errors.New("token durations must be positive")
)
