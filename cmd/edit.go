package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/errors"
	"github.com/shuttlehq/shuttle/internal/launcher"
	"github.com/shuttlehq/shuttle/internal/settings"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	Long: `Opens ~/.xshuttle.json with the configured editor, creating the
default config first if none exists. Terminal editors (vim, nano, ...)
open inside the configured terminal emulator.`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := settings.Load()
	if err != nil {
		return errors.SettingsLoadFailed(err)
	}
	return openConfig(s)
}

// openConfig opens the config file with the snapshot's editor,
// creating the default document first if the file is missing.
func openConfig(s *settings.Settings) error {
	path, err := settings.EnsureConfig()
	if err != nil {
		return errors.SettingsLoadFailed(err)
	}

	if err := launcher.OpenEditor(s.Terminal, s.Editor, path); err != nil {
		return errors.LaunchFailed(err)
	}
	return nil
}
