package domain

import (
	"math"
	"slices"
	"strings"
)

const (
	// WorldFileName is the name of the world configuration file.
	WorldFileName = "world.yaml"
	// WorldVersion is the only supported world file version.
	WorldVersion = "1"
	// DefaultHub is the node the cache is pre-seeded from at the start of an epoch.
	DefaultHub = "Town"
	// DefaultPreseedDepth bounds the pre-seed search.
	DefaultPreseedDepth = 3
	// Unbounded disables the depth limit of a search.
	Unbounded = math.MaxInt
)

// Edge is a directed connection to another node.
type Edge struct {
	To     Node
	Access AccessClass
}

// NodeSpec describes a single node of the world.
type NodeSpec struct {
	Access AccessClass
	Edges  []Edge
}

// ExcludeSettings lists nodes removed from routing entirely.
type ExcludeSettings struct {
	// Names are excluded verbatim.
	Names []string
	// NumberedPrefixes exclude any name made of the prefix followed by one or more digits.
	NumberedPrefixes []string
}

// RoutingSettings holds the per-world routing behavior.
type RoutingSettings struct {
	Hub               Node
	PreseedDepth      int
	AllowPartialPaths bool
	Exclude           ExcludeSettings
	Synonyms          map[Node]Node
}

// DefaultRoutingSettings returns the settings applied when the world file omits them.
func DefaultRoutingSettings() RoutingSettings {
	return RoutingSettings{
		Hub:               NewNode(DefaultHub),
		PreseedDepth:      DefaultPreseedDepth,
		AllowPartialPaths: true,
		Exclude: ExcludeSettings{
			Names:            []string{"Farm", "Woods", "Backwoods", "Tunnel", "Volcano", "VolcanoEntrance"},
			NumberedPrefixes: []string{"Cellar"},
		},
		Synonyms: map[Node]Node{
			NewNode("BoatTunnel"): NewNode("IslandSouth"),
		},
	}
}

// World is an immutable snapshot of the location graph for one epoch.
type World struct {
	Source      string
	Fingerprint uint64
	Routing     RoutingSettings

	nodes    map[Node]NodeSpec
	excluded map[Node]struct{}
}

// NewWorld builds a snapshot from its parts. The nodes map is owned by the World afterwards.
func NewWorld(source string, fingerprint uint64, routing RoutingSettings, nodes map[Node]NodeSpec) *World {
	if nodes == nil {
		nodes = make(map[Node]NodeSpec)
	}
	excluded := make(map[Node]struct{}, len(routing.Exclude.Names))
	for _, name := range routing.Exclude.Names {
		excluded[NewNode(name)] = struct{}{}
	}
	return &World{
		Source:      source,
		Fingerprint: fingerprint,
		Routing:     routing,
		nodes:       nodes,
		excluded:    excluded,
	}
}

// Has reports whether the node is declared in the world.
func (w *World) Has(n Node) bool {
	_, ok := w.nodes[n]
	return ok
}

// AppendEdges appends the outgoing edges of n to dst and returns the extended slice.
func (w *World) AppendEdges(dst []Edge, n Node) []Edge {
	return append(dst, w.nodes[n].Edges...)
}

// ConstraintOf returns the access class required to enter n.
func (w *World) ConstraintOf(n Node) AccessClass {
	return w.nodes[n].Access
}

// Canonical maps synonyms to their canonical node and reports false for excluded nodes.
func (w *World) Canonical(n Node) (Node, bool) {
	if target, ok := w.Routing.Synonyms[n]; ok {
		n = target
	}
	if _, ok := w.excluded[n]; ok {
		return Node{}, false
	}
	name := n.String()
	for _, prefix := range w.Routing.Exclude.NumberedPrefixes {
		if isNumbered(name, prefix) {
			return Node{}, false
		}
	}
	return n, true
}

// NodeCount returns the number of declared nodes.
func (w *World) NodeCount() int {
	return len(w.nodes)
}

// EdgeCount returns the number of declared edges.
func (w *World) EdgeCount() int {
	total := 0
	for _, spec := range w.nodes {
		total += len(spec.Edges)
	}
	return total
}

// Nodes returns all declared nodes sorted by name.
func (w *World) Nodes() []Node {
	out := make([]Node, 0, len(w.nodes))
	for n := range w.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b Node) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

func isNumbered(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
