package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSSHConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadHostnames(t *testing.T) {
	path := writeSSHConfig(t, `
Host prod
    HostName prod.example.com

Host Staging
    HostName staging.example.com

Host dev
    HostName dev.example.com
`)

	hostnames, err := LoadHostnames(path)
	if err != nil {
		t.Fatalf("LoadHostnames failed: %v", err)
	}

	// Sorted case-insensitively.
	want := []string{"dev", "prod", "Staging"}
	if len(hostnames) != len(want) {
		t.Fatalf("got %v, want %v", hostnames, want)
	}
	for i := range want {
		if hostnames[i] != want[i] {
			t.Errorf("hostnames[%d] = %q, want %q", i, hostnames[i], want[i])
		}
	}
}

func TestLoadHostnamesFiltersPatterns(t *testing.T) {
	path := writeSSHConfig(t, `
Host *
    StrictHostKeyChecking no

Host prod-* !prod-*-canary web?
    User deploy

Host bastion
    HostName bastion.example.com
`)

	hostnames, err := LoadHostnames(path)
	if err != nil {
		t.Fatalf("LoadHostnames failed: %v", err)
	}

	if len(hostnames) != 1 || hostnames[0] != "bastion" {
		t.Errorf("got %v, want [bastion] only", hostnames)
	}
}

func TestLoadHostnamesDropsNegatedAliases(t *testing.T) {
	// The parser strips the "!" marker from negated patterns, so a
	// plain negated alias like !secret is indistinguishable from a real
	// one after decode. It must still never become a menu entry.
	path := writeSSHConfig(t, `
Host bastion !secret
    HostName bastion.example.com

Host db
    HostName db.example.com
`)

	hostnames, err := LoadHostnames(path)
	if err != nil {
		t.Fatalf("LoadHostnames failed: %v", err)
	}

	want := []string{"bastion", "db"}
	if len(hostnames) != len(want) {
		t.Fatalf("got %v, want %v", hostnames, want)
	}
	for i := range want {
		if hostnames[i] != want[i] {
			t.Errorf("hostnames[%d] = %q, want %q", i, hostnames[i], want[i])
		}
	}
}

func TestLoadHostnamesMultiplePatternsPerHost(t *testing.T) {
	path := writeSSHConfig(t, `
Host alpha beta
    User admin
`)

	hostnames, err := LoadHostnames(path)
	if err != nil {
		t.Fatalf("LoadHostnames failed: %v", err)
	}

	want := []string{"alpha", "beta"}
	if len(hostnames) != 2 || hostnames[0] != want[0] || hostnames[1] != want[1] {
		t.Errorf("got %v, want %v", hostnames, want)
	}
}

func TestLoadHostnamesMissingFile(t *testing.T) {
	hostnames, err := LoadHostnames(filepath.Join(t.TempDir(), "config"))
	if err != nil {
		t.Fatalf("missing SSH config should not be an error, got %v", err)
	}
	if len(hostnames) != 0 {
		t.Errorf("missing SSH config should yield no hosts, got %v", hostnames)
	}
}

func TestLoadHostnamesMalformedFile(t *testing.T) {
	// Match blocks are rejected by the parser, and parse errors from a
	// file that exists must surface instead of producing an empty menu.
	path := writeSSHConfig(t, `Match host *.example.com
    User deploy
`)

	_, err := LoadHostnames(path)

	var hostErr *HostSourceError
	if !errors.As(err, &hostErr) {
		t.Fatalf("err = %v, want HostSourceError", err)
	}
}
