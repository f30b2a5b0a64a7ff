package settings

import "sync"

// Defaults applied when the config file is absent or omits a field.
const (
	DefaultTerminal = "default"
	DefaultEditor   = "default"
)

// Settings is one immutable snapshot of everything the menu needs.
type Settings struct {
	// Terminal emulator used to launch commands.
	Terminal string
	// Editor used to open the config file.
	Editor string
	// Actions from the config file, with O(1) id-based lookup.
	Actions Nodes[Action]
	// Hosts from the SSH config, with O(1) id-based lookup.
	Hosts Nodes[Host]
}

// Default returns the settings equivalent to an absent config file and
// an empty host list.
func Default() *Settings {
	return &Settings{
		Terminal: DefaultTerminal,
		Editor:   DefaultEditor,
		Actions:  FromEntries(nil),
		Hosts:    FromHostnames(nil),
	}
}

// Load builds a snapshot from the well-known file locations.
//
// Either the whole snapshot is built or a typed error is returned:
// ErrNoHomeDir, ConfigIOError, ConfigSyntaxError, ValidationErrors, or
// HostSourceError. No partial Settings escape.
func Load() (*Settings, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	sshPath, err := SSHConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath, sshPath)
}

// LoadFrom builds a snapshot from explicit file locations. Front ends
// and tests use it to load from somewhere other than the home
// directory.
func LoadFrom(configPath, sshConfigPath string) (*Settings, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}

	hostnames, err := LoadHostnames(sshConfigPath)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Terminal: DefaultTerminal,
		Editor:   DefaultEditor,
		Actions:  FromEntries(cfg.Actions),
		Hosts:    FromHostnames(hostnames),
	}
	if cfg.Terminal != nil {
		s.Terminal = *cfg.Terminal
	}
	if cfg.Editor != nil {
		s.Editor = *cfg.Editor
	}
	return s, nil
}

// Store holds the current snapshot for a long-lived front end. The
// snapshot is replaced wholesale on reload, so a reader on another
// goroutine always sees either the old Settings or the new one, never
// a mix.
type Store struct {
	mu      sync.RWMutex
	current *Settings
}

// NewStore returns a store holding initial.
func NewStore(initial *Settings) *Store {
	return &Store{current: initial}
}

// Current returns the snapshot in effect.
func (s *Store) Current() *Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(next *Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
}
