package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/errors"
	"github.com/shuttlehq/shuttle/internal/launcher"
	"github.com/shuttlehq/shuttle/internal/logging"
	"github.com/shuttlehq/shuttle/internal/settings"
	"github.com/shuttlehq/shuttle/internal/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive launcher menu",
	Long: `Opens an interactive menu of actions and SSH hosts.

Use arrow keys or j/k to navigate, / to filter, Enter to launch the
selection in your terminal.

Actions:
  Enter  - Launch selected item
  r      - Reload settings from disk
  q/Esc  - Quit`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	if _, err := settings.EnsureConfig(); err != nil {
		logWarning("Could not ensure config exists: %v", err)
	}

	s, err := settings.Load()
	if err != nil {
		return errors.SettingsLoadFailed(err)
	}

	logging.Debug("settings loaded", "actions", s.Actions.Len(), "hosts", s.Hosts.Len())

	store := settings.NewStore(s)
	result, err := tui.RunMenu(store)
	if err != nil {
		return fmt.Errorf("menu error: %w", err)
	}

	switch result.Action {
	case tui.ActionLaunch:
		cur := store.Current()
		logging.Debug("launching", "command", result.Command, "terminal", cur.Terminal)
		if err := launcher.Launch(cur.Terminal, result.Command); err != nil {
			return errors.LaunchFailed(err)
		}

	case tui.ActionConfigure:
		return openConfig(store.Current())

	case tui.ActionQuit, tui.ActionNone:
		// Just exit cleanly
	}

	return nil
}
