package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/errors"
	"github.com/shuttlehq/shuttle/internal/menu"
	"github.com/shuttlehq/shuttle/internal/settings"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the action tree with menu ids",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := settings.Load()
	if err != nil {
		return errors.SettingsLoadFailed(err)
	}

	if s.Actions.IsEmpty() && len(s.Actions.Tree()) == 0 {
		logInfo("No actions configured. Add some with: shuttle edit")
		return nil
	}

	printNodes(s.Actions.Tree(), 0)
	return nil
}

func printNodes(nodes []settings.Node[settings.Action], depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		switch node.Kind {
		case settings.NodeLeaf:
			fmt.Printf("%s%s  (%s)  %s\n", indent, node.Value.Name, menu.ActionID(node.ID), node.Value.Cmd)
		case settings.NodeGroup:
			fmt.Printf("%s%s/\n", indent, node.Name)
			printNodes(node.Children, depth+1)
		}
	}
}
