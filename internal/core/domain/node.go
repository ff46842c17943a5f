// Package domain contains the core types of the location graph and its route cache.
package domain

import "unique"

// Node is a routable location identifier.
// It wraps a unique.Handle[string] so that equality checks and map lookups on
// hot search paths compare a single pointer instead of the full name.
type Node struct {
	h unique.Handle[string]
}

// NewNode creates a new Node from a name. Names are case-sensitive.
func NewNode(name string) Node {
	return Node{
		h: unique.Make(name),
	}
}

// NewNodes creates a Node slice from a string slice.
func NewNodes(names []string) []Node {
	res := make([]Node, len(names))
	for i, name := range names {
		res[i] = NewNode(name)
	}
	return res
}

// IsZero reports whether the node was never named.
// The zero Node stands for "no target" in a targetless search.
func (n Node) IsZero() bool {
	return n.h == unique.Handle[string]{}
}

// String returns the node name, or an empty string for the zero Node.
func (n Node) String() string {
	if n.IsZero() {
		return ""
	}
	return n.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (n Node) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Node) UnmarshalText(text []byte) error {
	*n = NewNode(string(text))
	return nil
}
