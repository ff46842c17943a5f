package world

import (
	"sync/atomic"

	"go.trai.ch/rescheduler/internal/core/domain"
)

// Provider implements ports.World over an atomically swapped snapshot.
// Before the first Replace it behaves as an empty world.
type Provider struct {
	current atomic.Pointer[domain.World]
}

// NewProvider creates a Provider with no world loaded.
func NewProvider() *Provider {
	return &Provider{}
}

// Replace swaps in a new snapshot.
func (p *Provider) Replace(snapshot *domain.World) {
	p.current.Store(snapshot)
}

// Snapshot returns the current snapshot, or nil.
func (p *Provider) Snapshot() *domain.World {
	return p.current.Load()
}

// Has reports whether the node is declared in the current snapshot.
func (p *Provider) Has(node domain.Node) bool {
	w := p.current.Load()
	return w != nil && w.Has(node)
}

// AppendEdges appends the outgoing edges of node in the current snapshot.
func (p *Provider) AppendEdges(dst []domain.Edge, node domain.Node) []domain.Edge {
	w := p.current.Load()
	if w == nil {
		return dst
	}
	return w.AppendEdges(dst, node)
}

// ConstraintOf returns the access class of node in the current snapshot.
func (p *Provider) ConstraintOf(node domain.Node) domain.AccessClass {
	w := p.current.Load()
	if w == nil {
		return domain.Unconstrained
	}
	return w.ConstraintOf(node)
}

// Canonical applies the routing rules of the current snapshot.
func (p *Provider) Canonical(node domain.Node) (domain.Node, bool) {
	w := p.current.Load()
	if w == nil {
		return node, true
	}
	return w.Canonical(node)
}
