package settings

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sshconfig "github.com/kevinburke/ssh_config"
)

// SSHConfigPath returns the SSH client config location, ~/.ssh/config.
func SSHConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoHomeDir
	}
	return filepath.Join(home, ".ssh", "config"), nil
}

// LoadHostnames reads host aliases from the SSH client config at path,
// sorted case-insensitively. Wildcard patterns and negated patterns
// are dropped; only plain aliases become menu entries.
//
// A missing file yields an empty list. A file that exists but cannot
// be parsed is a HostSourceError.
func LoadHostnames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &HostSourceError{Path: path, Err: err}
	}

	cfg, err := sshconfig.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &HostSourceError{Path: path, Err: err}
	}

	negated := negatedAliases(data)

	var hostnames []string
	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			name := pattern.String()
			if strings.ContainsAny(name, "*?") || negated[name] {
				continue
			}
			hostnames = append(hostnames, name)
		}
	}

	sort.SliceStable(hostnames, func(i, j int) bool {
		return strings.ToLower(hostnames[i]) < strings.ToLower(hostnames[j])
	})
	return hostnames, nil
}

// negatedAliases collects aliases marked with a leading "!" in Host
// directives. The parser strips the marker during decode, so negation
// is only visible in the raw directive tokens.
func negatedAliases(data []byte) map[string]bool {
	negated := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.EqualFold(fields[0], "host") {
			continue
		}
		for _, token := range fields[1:] {
			if name, ok := strings.CutPrefix(token, "!"); ok && name != "" {
				negated[name] = true
			}
		}
	}
	return negated
}
