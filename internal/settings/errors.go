package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shuttlehq/shuttle/internal/schema"
)

// ErrNoHomeDir is returned when the user's home directory cannot be
// resolved. Nothing can be loaded without it.
var ErrNoHomeDir = errors.New("could not determine home directory")

// ConfigIOError reports a config file that exists but cannot be read
// or written.
type ConfigIOError struct {
	Path string
	Err  error
}

func (e *ConfigIOError) Error() string {
	return fmt.Sprintf("failed to read config %s: %v", e.Path, e.Err)
}

func (e *ConfigIOError) Unwrap() error {
	return e.Err
}

// ConfigSyntaxError reports config bytes that are not valid JSON at all.
type ConfigSyntaxError struct {
	Err error
}

func (e *ConfigSyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ConfigSyntaxError) Unwrap() error {
	return e.Err
}

// ValidationErrors reports a well-formed JSON document with the wrong
// shape. It carries every violation, not just the first, so a user can
// fix the config in one pass.
type ValidationErrors struct {
	Errors []schema.ValidationError
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.String()
	}
	return "config validation failed: " + strings.Join(msgs, "; ")
}

// HostSourceError reports an SSH config file that exists but cannot be
// parsed. An absent file is not an error; a malformed one signals a
// user mistake that must not be swallowed into an empty host list.
type HostSourceError struct {
	Path string
	Err  error
}

func (e *HostSourceError) Error() string {
	return fmt.Sprintf("failed to parse SSH config %s: %v", e.Path, e.Err)
}

func (e *HostSourceError) Unwrap() error {
	return e.Err
}
