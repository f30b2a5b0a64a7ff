// Package launcher spawns commands in the user's terminal emulator and
// opens the config file in their editor.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// Terminal describes how to hand a shell command to one emulator. The
// {} placeholder in the argument template is replaced with the command
// string; the command runs under sh and the shell stays open afterward
// so the user can read the output.
type Terminal struct {
	Bin  string
	args []string
}

var terminals = []Terminal{
	{Bin: "gnome-terminal", args: []string{"--", "sh", "-c", "{}; exec bash"}},
	{Bin: "konsole", args: []string{"-e", "sh", "-c", "{}; exec bash"}},
	{Bin: "xfce4-terminal", args: []string{"-e", "sh -c '{}; exec bash'"}},
	{Bin: "alacritty", args: []string{"-e", "sh", "-c", "{}; exec bash"}},
	{Bin: "kitty", args: []string{"sh", "-c", "{}; exec bash"}},
	{Bin: "ghostty", args: []string{"-e", "sh", "-c", "{}; exec bash"}},
	{Bin: "wezterm", args: []string{"start", "--", "sh", "-c", "{}; exec bash"}},
	{Bin: "tilix", args: []string{"-e", "sh -c '{}; exec bash'"}},
	{Bin: "terminator", args: []string{"-e", "sh -c '{}; exec bash'"}},
	{Bin: "x-terminal-emulator", args: []string{"-e", "sh", "-c", "{}; exec bash"}},
	{Bin: "xterm", args: []string{"-e", "sh", "-c", "{}; exec bash"}},
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

func available(bin string) bool {
	_, err := lookPath(bin)
	return err == nil
}

func byName(name string) (Terminal, bool) {
	name = strings.ToLower(name)
	for _, t := range terminals {
		if t.Bin == name {
			return t, true
		}
	}
	return Terminal{}, false
}

// Detect picks the emulator to use: the configured one when installed,
// then whatever $TERMINAL names, then the first installed known
// emulator.
func Detect(preferred string) (Terminal, error) {
	if preferred != "" && preferred != "default" {
		if t, ok := byName(preferred); ok && available(t.Bin) {
			return t, nil
		}
	}

	if env := os.Getenv("TERMINAL"); env != "" {
		for _, t := range terminals {
			if strings.Contains(env, t.Bin) && available(t.Bin) {
				return t, nil
			}
		}
	}

	for _, t := range terminals {
		if available(t.Bin) {
			return t, nil
		}
	}
	return Terminal{}, fmt.Errorf("no terminal emulator found: install gnome-terminal, konsole, alacritty, or xterm")
}

// CommandArgs renders the spawn arguments for a shell command.
func (t Terminal) CommandArgs(command string) []string {
	args := make([]string, len(t.args))
	for i, a := range t.args {
		args[i] = strings.ReplaceAll(a, "{}", command)
	}
	return args
}

// Launch spawns command in the detected terminal without waiting for
// it to finish.
func Launch(preferred, command string) error {
	t, err := Detect(preferred)
	if err != nil {
		return err
	}
	return spawn(t.Bin, t.CommandArgs(command)...)
}

func spawn(bin string, args ...string) error {
	cmd := exec.Command(bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", bin, err)
	}
	return cmd.Process.Release()
}

// terminalEditors are editors that need a terminal to run in.
var terminalEditors = map[string]bool{
	"nano":  true,
	"vim":   true,
	"vi":    true,
	"nvim":  true,
	"emacs": true,
	"micro": true,
	"ne":    true,
	"joe":   true,
	"pico":  true,
	"ed":    true,
}

// IsTerminalEditor reports whether editor runs inside a terminal.
func IsTerminalEditor(editor string) bool {
	return terminalEditors[editor]
}

// EditorCommand builds the shell command line that opens path in
// editor, with both parts quoted for the shell.
func EditorCommand(editor, path string) string {
	return shellquote.Join(editor, path)
}

// OpenEditor opens path with the configured editor. Terminal editors
// are launched inside the configured terminal; "default" defers to the
// desktop's opener; anything else is spawned directly.
func OpenEditor(terminal, editor, path string) error {
	switch {
	case editor == "" || editor == "default":
		return spawn("xdg-open", path)
	case IsTerminalEditor(editor):
		return Launch(terminal, EditorCommand(editor, path))
	default:
		return spawn(editor, path)
	}
}
