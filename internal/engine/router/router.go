// Package router implements the cached breadth-first route finder.
package router

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/rescheduler/internal/engine/pathcache"
	"go.trai.ch/zerr"
)

// Router answers route queries from the shared cache, falling back to a
// breadth-first search that memoizes every route it discovers.
// All methods are safe for concurrent use and never panic or return errors:
// failures are logged and degrade to a nil path.
type Router struct {
	graph  ports.GraphProvider
	access ports.AccessResolver
	filter ports.NodeFilter
	logger ports.Logger
	cache  *pathcache.Cache

	scratch sync.Pool
	missing atomic.Pointer[sync.Map]

	searches    atomic.Uint64
	stitches    atomic.Uint64
	hits        atomic.Uint64
	misses      atomic.Uint64
	unreachable atomic.Uint64
	rejected    atomic.Uint64
}

// Option configures a Router.
type Option func(*Router)

// WithCache makes the router use an existing cache instead of a private one.
func WithCache(c *pathcache.Cache) Option {
	return func(r *Router) {
		r.cache = c
	}
}

// New creates a Router over the given graph collaborators.
func New(
	graph ports.GraphProvider,
	access ports.AccessResolver,
	filter ports.NodeFilter,
	logger ports.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		graph:  graph,
		access: access,
		filter: filter,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = pathcache.New()
	}
	r.scratch.New = func() any {
		return newScratch()
	}
	r.missing.Store(&sync.Map{})
	return r
}

type query struct {
	depthLimit int
}

// QueryOption configures a single GetPathFor call.
type QueryOption func(*query)

// WithDepthLimit bounds the number of hops a search may expand.
func WithDepthLimit(limit int) QueryOption {
	return func(q *query) {
		q.depthLimit = limit
	}
}

// GetPathFor returns a route from start to end usable by a requester of the
// given access class, or nil when none exists or the query is invalid.
// Unless WithDepthLimit is given the search is unbounded.
func (r *Router) GetPathFor(
	start, end domain.Node,
	access domain.AccessClass,
	allowPartial bool,
	opts ...QueryOption,
) domain.Path {
	q := query{depthLimit: domain.Unbounded}
	for _, opt := range opts {
		opt(&q)
	}

	if e, ok := r.cache.TryGetBestAcrossAccessVariants(start, end, access); ok {
		r.hits.Add(1)
		return e.Path.Clone()
	}

	canonicalStart, startOK := r.filter.Canonical(start)
	canonicalEnd, endOK := r.filter.Canonical(end)
	if !startOK || !endOK {
		r.rejected.Add(1)
		excluded := start
		if startOK {
			excluded = end
		}
		r.logger.Warn(fmt.Sprintf("%s: %s", domain.ErrNodeExcluded, excluded))
		return nil
	}

	if canonicalStart != start || canonicalEnd != end {
		if e, ok := r.cache.TryGetBestAcrossAccessVariants(canonicalStart, canonicalEnd, access); ok {
			r.hits.Add(1)
			return e.Path.Clone()
		}
	}
	r.misses.Add(1)

	for _, n := range []domain.Node{canonicalStart, canonicalEnd} {
		if !r.graph.Has(n) {
			r.rejected.Add(1)
			err := zerr.With(zerr.Wrap(domain.ErrMissingNode, "route query rejected"), "node", n.String())
			r.logger.Error(zerr.With(err, "route", domain.Key(canonicalStart, canonicalEnd, access).String()))
			return nil
		}
	}

	combined := domain.Tighten(access, r.access.ConstraintOf(canonicalStart))
	combined = domain.Tighten(combined, r.access.ConstraintOf(canonicalEnd))
	if combined == domain.Infeasible {
		r.rejected.Add(1)
		key := domain.Key(canonicalStart, canonicalEnd, access)
		r.logger.Error(zerr.With(zerr.Wrap(domain.ErrInfeasibleAccess, "route query rejected"), "route", key.String()))
		r.markUnreachable(r.cache.Current(), key)
		return nil
	}

	if canonicalStart == canonicalEnd {
		return domain.Path{canonicalStart}
	}

	return r.Search(canonicalStart, canonicalEnd, access, allowPartial, q.depthLimit).Clone()
}

// TryGetCachedPath reads the cache without searching. The exact key is
// consulted first, then every access variant the requester may reuse.
// A cached Unreachable entry reports found with a nil path.
func (r *Router) TryGetCachedPath(start, end domain.Node, access domain.AccessClass) (bool, domain.Path) {
	if e, ok := r.cache.TryGet(domain.Key(start, end, access)); ok {
		return true, e.Path.Clone()
	}
	if e, ok := r.cache.TryGetBestAcrossAccessVariants(start, end, access); ok {
		return true, e.Path.Clone()
	}
	canonicalStart, startOK := r.filter.Canonical(start)
	canonicalEnd, endOK := r.filter.Canonical(end)
	if !startOK || !endOK || (canonicalStart == start && canonicalEnd == end) {
		return false, nil
	}
	return r.TryGetCachedPath(canonicalStart, canonicalEnd, access)
}

// Preseed warms the cache with a targetless search from hub bounded by depth.
func (r *Router) Preseed(hub domain.Node, depth int) {
	canonical, ok := r.filter.Canonical(hub)
	if !ok {
		r.logger.Warn(fmt.Sprintf("%s: preseed hub %s", domain.ErrNodeExcluded, hub))
		return
	}
	if !r.graph.Has(canonical) {
		r.logger.Warn(fmt.Sprintf("%s: preseed hub %s", domain.ErrMissingNode, canonical))
		return
	}
	r.Search(canonical, domain.Node{}, domain.Unconstrained, false, depth)
}

// ClearCache drops every cached route and forgets which missing nodes were reported.
func (r *Router) ClearCache() {
	r.cache.Clear()
	r.missing.Store(&sync.Map{})
}

// CacheSize returns the number of cached entries.
func (r *Router) CacheSize() int {
	return r.cache.Count()
}

// Dump writes a human-readable listing of the cache.
func (r *Router) Dump(w io.Writer) error {
	return r.cache.Dump(w)
}

// Stats returns a snapshot of the router counters.
func (r *Router) Stats() domain.RouterStats {
	return domain.RouterStats{
		Searches:          r.searches.Load(),
		Stitches:          r.stitches.Load(),
		CacheHits:         r.hits.Load(),
		CacheMisses:       r.misses.Load(),
		UnreachableCached: r.unreachable.Load(),
		Rejected:          r.rejected.Load(),
		CacheSize:         r.cache.Count(),
	}
}

// snapshotter is implemented by graph providers that can pin one epoch's world.
type snapshotter interface {
	Snapshot() *domain.World
}

// pin captures the collaborators and cache generation for one search.
func (r *Router) pin() view {
	v := view{graph: r.graph, access: r.access, filter: r.filter, cache: r.cache.Current()}
	if p, ok := r.graph.(snapshotter); ok {
		if w := p.Snapshot(); w != nil {
			v.graph, v.access, v.filter = w, w, w
		}
	}
	return v
}

func (r *Router) markUnreachable(gen *pathcache.Generation, key domain.CacheKey) {
	if gen.TryInsertIfAbsent(key, pathcache.UnreachableEntry()) {
		r.unreachable.Add(1)
	}
}

func (r *Router) warnMissing(from, to domain.Node) {
	if _, loaded := r.missing.Load().LoadOrStore(to, struct{}{}); loaded {
		return
	}
	r.logger.Warn(fmt.Sprintf("%s: skipping edge %s -> %s", domain.ErrMissingNode, from, to))
}
