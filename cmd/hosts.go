package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/errors"
	"github.com/shuttlehq/shuttle/internal/menu"
	"github.com/shuttlehq/shuttle/internal/settings"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Print SSH hosts with menu ids",
	RunE:  runHosts,
}

func init() {
	rootCmd.AddCommand(hostsCmd)
}

func runHosts(cmd *cobra.Command, args []string) error {
	s, err := settings.Load()
	if err != nil {
		return errors.SettingsLoadFailed(err)
	}

	if s.Hosts.IsEmpty() {
		logInfo("No hosts found in ~/.ssh/config")
		return nil
	}

	for id, host := range s.Hosts.All() {
		fmt.Printf("%s  (%s)\n", host.Hostname, menu.HostID(id))
	}
	return nil
}
