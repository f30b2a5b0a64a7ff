package settings

import (
	"fmt"
	"iter"
)

// NodeID identifies one leaf within a single Nodes container. Ids are
// assigned in depth-first order starting at 0 during construction and
// never change for the life of the container. Ids from different
// containers (actions vs. hosts) are independent index spaces.
type NodeID int

// NodeIDFromIndex converts a flat-table index back to an id, e.g. when
// parsing a menu item id.
func NodeIDFromIndex(index int) NodeID {
	return NodeID(index)
}

// Index returns the flat-table index for this id.
func (id NodeID) Index() int {
	return int(id)
}

func (id NodeID) String() string {
	return fmt.Sprintf("node_%d", int(id))
}

// NodeKind discriminates the two node variants.
type NodeKind int

const (
	NodeLeaf NodeKind = iota
	NodeGroup
)

// Node is one element of the display tree. A leaf carries an ID and a
// Value; a group carries a Name and Children.
type Node[T any] struct {
	Kind     NodeKind
	ID       NodeID
	Value    T
	Name     string
	Children []Node[T]
}

// IsLeaf reports whether the node is a leaf.
func (n Node[T]) IsLeaf() bool {
	return n.Kind == NodeLeaf
}

// IsGroup reports whether the node is a group.
func (n Node[T]) IsGroup() bool {
	return n.Kind == NodeGroup
}

// Nodes stores leaf values twice: in a tree that mirrors the input
// shape (for menu building) and in a flat table indexed by NodeID (for
// O(1) lookup). Values are small and immutable, so the copy is cheaper
// than sharing.
//
// Invariant: every leaf in the tree holds the id of its own slot in the
// flat table, and every slot belongs to exactly one leaf.
type Nodes[T any] struct {
	tree   []Node[T]
	leaves []T
}

// FromEntries builds the action container from a parsed config tree,
// assigning ids in depth-first pre-order. Groups are preserved in the
// tree view even when empty; only actions occupy flat-table slots.
func FromEntries(entries []Entry) Nodes[Action] {
	var leaves []Action
	tree := make([]Node[Action], 0, len(entries))
	for _, e := range entries {
		tree = append(tree, convertEntry(e, &leaves))
	}
	return Nodes[Action]{tree: tree, leaves: leaves}
}

func convertEntry(e Entry, leaves *[]Action) Node[Action] {
	if e.Action != nil {
		id := NodeID(len(*leaves))
		*leaves = append(*leaves, *e.Action)
		return Node[Action]{Kind: NodeLeaf, ID: id, Value: *e.Action}
	}

	var name string
	var entries []Entry
	if e.Group != nil {
		name = e.Group.Name
		entries = e.Group.Entries
	}
	children := make([]Node[Action], 0, len(entries))
	for _, child := range entries {
		children = append(children, convertEntry(child, leaves))
	}
	return Node[Action]{Kind: NodeGroup, Name: name, Children: children}
}

// FromHostnames builds the host container. Hosts have no grouping;
// every name becomes a top-level leaf in input order.
func FromHostnames(hostnames []string) Nodes[Host] {
	leaves := make([]Host, 0, len(hostnames))
	tree := make([]Node[Host], 0, len(hostnames))
	for i, hostname := range hostnames {
		host := Host{Hostname: hostname}
		leaves = append(leaves, host)
		tree = append(tree, Node[Host]{Kind: NodeLeaf, ID: NodeID(i), Value: host})
	}
	return Nodes[Host]{tree: tree, leaves: leaves}
}

// Get returns the value for id. The second result is false when id is
// outside [0, Len()); out-of-range ids never panic.
func (n Nodes[T]) Get(id NodeID) (T, bool) {
	if id < 0 || int(id) >= len(n.leaves) {
		var zero T
		return zero, false
	}
	return n.leaves[int(id)], true
}

// All iterates every (id, value) pair in ascending id order. The
// sequence is identical across repeated calls on the same container.
func (n Nodes[T]) All() iter.Seq2[NodeID, T] {
	return func(yield func(NodeID, T) bool) {
		for i, v := range n.leaves {
			if !yield(NodeID(i), v) {
				return
			}
		}
	}
}

// Tree returns the display tree. Callers must not mutate it.
func (n Nodes[T]) Tree() []Node[T] {
	return n.tree
}

// Len returns the number of leaves. Groups do not count.
func (n Nodes[T]) Len() int {
	return len(n.leaves)
}

// IsEmpty reports whether the container has no leaves. A tree made
// entirely of empty groups is empty.
func (n Nodes[T]) IsEmpty() bool {
	return len(n.leaves) == 0
}
