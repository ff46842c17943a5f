package domain

import "strings"

// Path is an ordered, duplicate-free sequence of nodes from source to destination.
type Path []Node

// String renders the path as "A->B->C".
func (p Path) String() string {
	var sb strings.Builder
	for i, n := range p {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}

// First returns the source node, or the zero Node for an empty path.
func (p Path) First() Node {
	if len(p) == 0 {
		return Node{}
	}
	return p[0]
}

// Last returns the destination node, or the zero Node for an empty path.
func (p Path) Last() Node {
	if len(p) == 0 {
		return Node{}
	}
	return p[len(p)-1]
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Distinct reports whether every node of the path appears exactly once.
func (p Path) Distinct() bool {
	seen := make(map[Node]struct{}, len(p))
	for _, n := range p {
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}

// CacheKey identifies a cached route. Keys are comparable and never mutated.
type CacheKey struct {
	Start  Node
	End    Node
	Access AccessClass
}

// Key is a convenience constructor for CacheKey.
func Key(start, end Node, access AccessClass) CacheKey {
	return CacheKey{Start: start, End: end, Access: access}
}

// String renders the key as "start -> end [access]".
func (k CacheKey) String() string {
	return k.Start.String() + " -> " + k.End.String() + " [" + k.Access.String() + "]"
}
