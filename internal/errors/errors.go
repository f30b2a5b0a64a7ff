package errors

import (
	"errors"
	"fmt"

	"github.com/shuttlehq/shuttle/internal/settings"
)

// Exit codes for shuttle
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitConfigError     = 2
	ExitValidationError = 3
	ExitHostSourceError = 4
	ExitLaunchError     = 5
)

// ShuttleError is the base error type for shuttle
type ShuttleError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ShuttleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ShuttleError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ShuttleError) ExitCode() int {
	return e.Code
}

// New creates a new ShuttleError
func New(code int, message string) *ShuttleError {
	return &ShuttleError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ShuttleError
func Wrap(code int, message string, cause error) *ShuttleError {
	return &ShuttleError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// SettingsLoadFailed classifies a settings load failure by its typed cause.
func SettingsLoadFailed(cause error) *ShuttleError {
	return Wrap(settingsExitCode(cause), "failed to load settings", cause)
}

// UnknownMenuID returns an error for a menu id that resolves to nothing
func UnknownMenuID(id string) *ShuttleError {
	return New(ExitGeneralError, fmt.Sprintf("unknown menu id: %s", id))
}

// LaunchFailed returns an error for terminal/editor launch failures
func LaunchFailed(cause error) *ShuttleError {
	return Wrap(ExitLaunchError, "failed to launch command", cause)
}

// settingsExitCode maps the settings error taxonomy to exit codes.
func settingsExitCode(err error) int {
	var (
		verrs   *settings.ValidationErrors
		hostErr *settings.HostSourceError
	)
	switch {
	case errors.As(err, &verrs):
		return ExitValidationError
	case errors.As(err, &hostErr):
		return ExitHostSourceError
	default:
		return ExitConfigError
	}
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var shuttleErr *ShuttleError
	if errors.As(err, &shuttleErr) {
		return shuttleErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
