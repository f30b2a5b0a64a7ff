package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/errors"
	"github.com/shuttlehq/shuttle/internal/launcher"
	"github.com/shuttlehq/shuttle/internal/menu"
	"github.com/shuttlehq/shuttle/internal/settings"
)

var runCmd = &cobra.Command{
	Use:   "run <menu-id>",
	Short: "Launch a menu item by its id",
	Long: `Launches one menu item without opening the menu.

Menu ids are stable for a given config: action_<n> for actions in
depth-first order and host_<n> for SSH hosts. "shuttle list" and
"shuttle hosts" print them.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := settings.Load()
	if err != nil {
		return errors.SettingsLoadFailed(err)
	}

	command, ok := menu.Lookup(s, args[0])
	if !ok {
		return errors.UnknownMenuID(args[0])
	}

	if err := launcher.Launch(s.Terminal, command); err != nil {
		return errors.LaunchFailed(err)
	}
	return nil
}
