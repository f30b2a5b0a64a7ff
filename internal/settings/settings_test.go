package settings

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestSettingsDefault(t *testing.T) {
	s := Default()

	if s.Terminal != DefaultTerminal {
		t.Errorf("Terminal = %q, want %q", s.Terminal, DefaultTerminal)
	}
	if s.Editor != DefaultEditor {
		t.Errorf("Editor = %q, want %q", s.Editor, DefaultEditor)
	}
	if !s.Actions.IsEmpty() || !s.Hosts.IsEmpty() {
		t.Error("default settings should have no actions and no hosts")
	}
}

func TestLoadFromAbsentFiles(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadFrom(filepath.Join(dir, "config.json"), filepath.Join(dir, "ssh_config"))
	if err != nil {
		t.Fatalf("LoadFrom with absent files should succeed, got %v", err)
	}

	if s.Terminal != "default" || s.Editor != "default" {
		t.Errorf("terminal/editor = %q/%q, want default/default", s.Terminal, s.Editor)
	}
	if !s.Actions.IsEmpty() || !s.Hosts.IsEmpty() {
		t.Error("absent files should yield empty actions and hosts")
	}
}

func TestLoadFromFullConfig(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{
		"terminal": "kitty",
		"editor": "nvim",
		"actions": [
			{"name": "Deploy", "cmd": "deploy.sh"},
			{"Prod": [
				{"name": "S1", "cmd": "ssh s1"},
				{"name": "S2", "cmd": "ssh s2"}
			]}
		]
	}`), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	sshPath := filepath.Join(dir, "ssh_config")
	if err := os.WriteFile(sshPath, []byte("Host bastion\n    HostName b.example.com\n"), 0o600); err != nil {
		t.Fatalf("write ssh fixture: %v", err)
	}

	s, err := LoadFrom(configPath, sshPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if s.Terminal != "kitty" || s.Editor != "nvim" {
		t.Errorf("terminal/editor = %q/%q, want kitty/nvim", s.Terminal, s.Editor)
	}
	if s.Actions.Len() != 3 {
		t.Errorf("Actions.Len() = %d, want 3", s.Actions.Len())
	}
	if s.Hosts.Len() != 1 {
		t.Errorf("Hosts.Len() = %d, want 1", s.Hosts.Len())
	}

	// Group ids follow depth-first order after the top-level action.
	action, ok := s.Actions.Get(NodeIDFromIndex(2))
	if !ok || action.Name != "S2" {
		t.Errorf("action at id 2 = %+v, want S2", action)
	}

	host, ok := s.Hosts.Get(NodeIDFromIndex(0))
	if !ok || host.Hostname != "bastion" {
		t.Errorf("host at id 0 = %+v, want bastion", host)
	}
}

func TestLoadFromConfigErrorsPropagate(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	sshPath := filepath.Join(dir, "ssh_config")

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "syntax error",
			content: `{{{`,
			check: func(t *testing.T, err error) {
				var syntaxErr *ConfigSyntaxError
				if !errors.As(err, &syntaxErr) {
					t.Errorf("err = %v, want ConfigSyntaxError", err)
				}
			},
		},
		{
			name:    "validation error",
			content: `{"unknown_field": "x"}`,
			check: func(t *testing.T, err error) {
				var verrs *ValidationErrors
				if !errors.As(err, &verrs) {
					t.Errorf("err = %v, want ValidationErrors", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			_, err := LoadFrom(configPath, sshPath)
			if err == nil {
				t.Fatal("LoadFrom should fail")
			}
			tt.check(t, err)
		})
	}
}

func TestLoadFromHostSourceErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	sshPath := filepath.Join(dir, "ssh_config")
	if err := os.WriteFile(sshPath, []byte("Match host *.example.com\n    User deploy\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := LoadFrom(filepath.Join(dir, "config.json"), sshPath)

	var hostErr *HostSourceError
	if !errors.As(err, &hostErr) {
		t.Fatalf("err = %v, want HostSourceError, not a silent empty host list", err)
	}
}

func TestStoreReplace(t *testing.T) {
	first := Default()
	store := NewStore(first)

	if store.Current() != first {
		t.Fatal("Current() should return the initial snapshot")
	}

	second, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"), filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	store.Replace(second)
	if store.Current() != second {
		t.Error("Replace should swap the whole snapshot")
	}
}

func TestStoreConcurrentReaders(t *testing.T) {
	store := NewStore(Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := store.Current()
				// A reader must always see a complete snapshot.
				if s == nil || s.Terminal == "" {
					t.Error("observed a torn snapshot")
					return
				}
			}
		}()
	}

	for j := 0; j < 100; j++ {
		store.Replace(Default())
	}
	wg.Wait()
}
