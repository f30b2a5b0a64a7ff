package settings

import (
	"encoding/json"
	"fmt"
)

// Action is a single launchable menu item.
type Action struct {
	Name string `json:"name"`
	Cmd  string `json:"cmd"`
}

// Group is a named submenu. On the wire it is a map with exactly one
// key, the group name: {"Production": [entries...]}.
type Group struct {
	Name    string
	Entries []Entry
}

// Entry is one element of the action tree, either an action or a group.
// Exactly one of the two fields is set.
//
// The wire format carries no type tag; the two shapes are told apart
// structurally, and the action shape is tried first.
type Entry struct {
	Action *Action
	Group  *Group
}

// ActionEntry wraps an action as an Entry.
func ActionEntry(name, cmd string) Entry {
	return Entry{Action: &Action{Name: name, Cmd: cmd}}
}

// GroupEntry wraps a named group as an Entry. The entry slice is
// always non-nil so constructed trees round-trip through JSON
// unchanged.
func GroupEntry(name string, entries ...Entry) Entry {
	return Entry{Group: &Group{Name: name, Entries: append([]Entry{}, entries...)}}
}

func (e Entry) MarshalJSON() ([]byte, error) {
	switch {
	case e.Action != nil:
		return json.Marshal(e.Action)
	case e.Group != nil:
		return json.Marshal(e.Group)
	}
	return nil, fmt.Errorf("entry has neither action nor group")
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("entry must be an object: %w", err)
	}

	// Action shape first: exactly "name" and "cmd", both strings.
	if action, ok := decodeActionShape(raw); ok {
		e.Action, e.Group = action, nil
		return nil
	}

	group, err := decodeGroupShape(raw)
	if err != nil {
		return err
	}
	e.Action, e.Group = nil, group
	return nil
}

func decodeActionShape(raw map[string]json.RawMessage) (*Action, bool) {
	if len(raw) != 2 {
		return nil, false
	}
	nameRaw, hasName := raw["name"]
	cmdRaw, hasCmd := raw["cmd"]
	if !hasName || !hasCmd {
		return nil, false
	}
	var a Action
	if json.Unmarshal(nameRaw, &a.Name) != nil || json.Unmarshal(cmdRaw, &a.Cmd) != nil {
		return nil, false
	}
	return &a, true
}

func decodeGroupShape(raw map[string]json.RawMessage) (*Group, error) {
	if len(raw) != 1 {
		return nil, fmt.Errorf("entry is neither an action ({\"name\", \"cmd\"}) nor a group (a map with exactly one key)")
	}
	for name, entriesRaw := range raw {
		var entries []Entry
		if err := json.Unmarshal(entriesRaw, &entries); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		return &Group{Name: name, Entries: entries}, nil
	}
	panic("unreachable")
}

func (g Group) MarshalJSON() ([]byte, error) {
	entries := g.Entries
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(map[string][]Entry{g.Name: entries})
}

func (g *Group) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("group must be an object: %w", err)
	}
	decoded, err := decodeGroupShape(raw)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}
