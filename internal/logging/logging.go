package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the process-wide structured logger. Commands reconfigure
// it once at startup through Setup; the default writes text to stderr.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Verbose mirrors the --verbose flag once Setup has run.
var Verbose bool

// Setup configures the global logger. Verbose lowers the level to
// debug; jsonOutput switches to the JSON handler for machine-readable
// logs. A nil writer falls back to stderr.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if jsonOutput {
		Logger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
}

// Debug logs a debug message with key/value attributes. Suppressed
// unless Setup ran with verbose.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning with key/value attributes.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
