package settings

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shuttlehq/shuttle/internal/logging"
	"github.com/shuttlehq/shuttle/internal/schema"
)

const configFileName = ".xshuttle.json"

//go:embed default.json
var defaultConfig []byte

// Config is the typed form of the on-disk document. Terminal and
// editor are pointers so the aggregator can tell "absent" from "set to
// the empty string".
type Config struct {
	Terminal *string `json:"terminal"`
	Editor   *string `json:"editor"`
	Actions  []Entry `json:"actions"`
}

// ConfigPath returns the well-known config file location,
// ~/.xshuttle.json.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoHomeDir
	}
	return filepath.Join(home, configFileName), nil
}

// EnsureConfig creates the config file from the embedded default
// document if it does not exist yet, and returns its path.
func EnsureConfig() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return path, ensureConfigAt(path)
}

func ensureConfigAt(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &ConfigIOError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return &ConfigIOError{Path: path, Err: err}
	}
	logging.UserInfo("Created default config at %s", path)
	return nil
}

// ParseConfig turns raw config bytes into a typed Config.
//
// It runs three stages: generic JSON parse (a failure here is a
// ConfigSyntaxError), schema validation (a failure is a
// ValidationErrors carrying every violation), and only then the typed
// decode. The typed decode is not expected to fail for a validated
// document; if it does, the schema and the types have drifted apart.
func ParseConfig(data []byte) (*Config, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &ConfigSyntaxError{Err: err}
	}

	if errs := schema.Validate(value); len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// A validated document that still fails the typed decode means
		// the schema and the Go types have drifted apart, not that the
		// user wrote bad input.
		return nil, fmt.Errorf("schema/decoder mismatch: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads and parses the document at path. A missing file is
// not an error: it returns (nil, nil) and the caller applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ConfigIOError{Path: path, Err: err}
	}
	return ParseConfig(data)
}
