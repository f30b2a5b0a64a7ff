// Package logging provides logging utilities for shuttle.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// Debug logs are written using slog and controlled by verbosity:
//
//	logging.Debug("loading settings", "config", path)
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Created default config at %s", path)
//	logging.UserError("Failed to load settings: %v", err)
//
// UserInfo and UserSuccess write to stdout; UserWarning and UserError
// write to stderr.
package logging
