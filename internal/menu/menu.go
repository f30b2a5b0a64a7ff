// Package menu maps settings snapshots to stable menu item ids and
// back. The presentation layer (tray widget, TUI, CLI) renders the
// items; when one is selected, the id round-trips to the launchable
// command in O(1).
package menu

import (
	"strconv"
	"strings"

	"github.com/shuttlehq/shuttle/internal/settings"
)

// Stable ids for the fixed items.
const (
	IDConfigure = "configure"
	IDReload    = "reload"
	IDQuit      = "quit"
)

// Prefixes for dynamic items. The decimal suffix is the NodeID index
// within the snapshot's action or host container.
const (
	ActionIDPrefix = "action_"
	HostIDPrefix   = "host_"
)

// ActionID returns the menu id for an action leaf.
func ActionID(id settings.NodeID) string {
	return ActionIDPrefix + strconv.Itoa(id.Index())
}

// HostID returns the menu id for a host leaf.
func HostID(id settings.NodeID) string {
	return HostIDPrefix + strconv.Itoa(id.Index())
}

// Lookup resolves a dynamic menu id to the command it launches. Fixed
// ids, unknown ids, and ids out of range for the snapshot return
// ok=false.
func Lookup(s *settings.Settings, menuID string) (string, bool) {
	if idx, ok := parseIndex(menuID, ActionIDPrefix); ok {
		action, ok := s.Actions.Get(settings.NodeIDFromIndex(idx))
		if !ok {
			return "", false
		}
		return action.Cmd, true
	}
	if idx, ok := parseIndex(menuID, HostIDPrefix); ok {
		host, ok := s.Hosts.Get(settings.NodeIDFromIndex(idx))
		if !ok {
			return "", false
		}
		return host.Command(), true
	}
	return "", false
}

func parseIndex(menuID, prefix string) (int, bool) {
	suffix, found := strings.CutPrefix(menuID, prefix)
	if !found {
		return 0, false
	}
	idx, err := strconv.Atoi(suffix)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// Item is one renderable menu row.
type Item struct {
	// ID is the stable menu id. Empty for group headers and separators.
	ID string
	// Title is the display text.
	Title string
	// Command is what launching the item runs. Empty for group
	// headers, separators, and the fixed items.
	Command string
	// Depth is the nesting level within the action tree.
	Depth int
	// Group marks a submenu header.
	Group bool
	// Separator marks a divider row.
	Separator bool
}

// Items flattens a snapshot into menu order: the action tree, a
// separator, the hosts, a separator, then the fixed items. Separators
// only appear between non-empty sections.
func Items(s *settings.Settings) []Item {
	var items []Item
	appendActionNodes(&items, s.Actions.Tree(), 0)

	if !s.Actions.IsEmpty() && !s.Hosts.IsEmpty() {
		items = append(items, Item{Separator: true})
	}

	for id, host := range s.Hosts.All() {
		items = append(items, Item{
			ID:      HostID(id),
			Title:   host.Hostname,
			Command: host.Command(),
		})
	}

	if !s.Hosts.IsEmpty() {
		items = append(items, Item{Separator: true})
	}

	return append(items,
		Item{ID: IDConfigure, Title: "Configure"},
		Item{ID: IDReload, Title: "Reload"},
		Item{ID: IDQuit, Title: "Quit"},
	)
}

func appendActionNodes(items *[]Item, nodes []settings.Node[settings.Action], depth int) {
	for _, node := range nodes {
		switch node.Kind {
		case settings.NodeLeaf:
			*items = append(*items, Item{
				ID:      ActionID(node.ID),
				Title:   node.Value.Name,
				Command: node.Value.Cmd,
				Depth:   depth,
			})
		case settings.NodeGroup:
			*items = append(*items, Item{
				Title: node.Name,
				Depth: depth,
				Group: true,
			})
			appendActionNodes(items, node.Children, depth+1)
		}
	}
}
