package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "shuttle",
	Short: "Menu launcher for shell commands and SSH hosts",
	Long: `shuttle turns a JSON config of actions and your SSH host list into a
launchable menu.

The config lives at ~/.xshuttle.json:
  - "terminal": terminal emulator used to launch commands
  - "editor":   editor used by "shuttle edit"
  - "actions":  tree of {"name", "cmd"} actions and {"Group": [...]} submenus

SSH hosts are read from ~/.ssh/config; every plain Host alias becomes a
menu entry that opens an ssh session.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
