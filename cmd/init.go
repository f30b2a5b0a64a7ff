package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/errors"
	"github.com/shuttlehq/shuttle/internal/settings"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config if missing",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := settings.EnsureConfig()
	if err != nil {
		return errors.SettingsLoadFailed(err)
	}
	logSuccess("Config at %s", path)
	return nil
}
