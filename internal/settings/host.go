package settings

// Host is one SSH destination from the user's SSH config. It wraps the
// bare hostname so host ids and action ids cannot be mixed up.
type Host struct {
	Hostname string
}

// Command returns the shell command that connects to the host.
func (h Host) Command() string {
	return "ssh " + h.Hostname
}
