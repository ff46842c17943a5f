// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/rescheduler/internal/core/domain"

//go:generate mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks

// GraphProvider exposes the outgoing edges of the location graph.
type GraphProvider interface {
	// Has reports whether the node is declared in the graph.
	Has(node domain.Node) bool
	// AppendEdges appends the outgoing edges of node to dst and returns the extended slice.
	// Unknown nodes contribute no edges.
	AppendEdges(dst []domain.Edge, node domain.Node) []domain.Edge
}

// AccessResolver resolves the access class required to enter a node.
type AccessResolver interface {
	// ConstraintOf returns the access class of node, Unconstrained by default.
	ConstraintOf(node domain.Node) domain.AccessClass
}

// NodeFilter decides which nodes take part in routing.
type NodeFilter interface {
	// Canonical maps synonyms to their canonical node.
	// It reports false when the node is excluded from routing entirely.
	Canonical(node domain.Node) (domain.Node, bool)
}

// World is the live, epoch-scoped view of the location graph.
type World interface {
	GraphProvider
	AccessResolver
	NodeFilter
	// Replace swaps in a new snapshot. Searches already running keep the one they pinned via Snapshot.
	Replace(snapshot *domain.World)
	// Snapshot returns the current snapshot, or nil before the first epoch.
	Snapshot() *domain.World
}
