// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merges the
// sources in priority order, and validates the result.
package config
