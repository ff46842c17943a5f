package router

import (
	"fmt"

	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/rescheduler/internal/engine/pathcache"
	"go.trai.ch/zerr"
)

// macroNode is a search-tree entry. Parents are arena indices, -1 for the root.
type macroNode struct {
	name   domain.Node
	parent int32
	access domain.AccessClass
	depth  int
}

// accessSet records the access classes a node was enqueued under.
type accessSet uint8

func (m accessSet) with(a domain.AccessClass) accessSet {
	return m | 1<<a
}

// covers reports whether an entry under a is dominated by one already enqueued.
// An unconstrained entry dominates every class.
func (m accessSet) covers(a domain.AccessClass) bool {
	return m&(1<<domain.Unconstrained) != 0 || m&(1<<a) != 0
}

// view is the graph and cache generation a single search runs against.
type view struct {
	graph  ports.GraphProvider
	access ports.AccessResolver
	filter ports.NodeFilter
	cache  *pathcache.Generation
}

// scratch is the per-search working state. The arena doubles as the FIFO queue.
type scratch struct {
	view
	arena   []macroNode
	visited map[domain.Node]accessSet
	edges   []domain.Edge
}

func newScratch() *scratch {
	return &scratch{
		arena:   make([]macroNode, 0, 64),
		visited: make(map[domain.Node]accessSet, 64),
		edges:   make([]domain.Edge, 0, 16),
	}
}

func (s *scratch) reset() {
	s.view = view{}
	s.arena = s.arena[:0]
	clear(s.visited)
	s.edges = s.edges[:0]
}

// route walks the parent chain of arena[idx] back to the root.
func (s *scratch) route(idx int) domain.Path {
	n := s.arena[idx].depth + 1
	out := make(domain.Path, n)
	for i := idx; i >= 0; i = int(s.arena[i].parent) {
		n--
		out[n] = s.arena[i].name
	}
	return out
}

// Search runs a breadth-first search from start and caches every route it
// reaches under (start, node, access). A zero target explores up to depthLimit
// without looking for a destination. The returned path is shared with the
// cache and must not be modified.
//
// The world snapshot and cache generation are pinned when the search starts,
// so a concurrent epoch change never mixes graphs or leaks routes into the
// new generation.
func (r *Router) Search(
	start, target domain.Node,
	access domain.AccessClass,
	allowPartial bool,
	depthLimit int,
) (result domain.Path) {
	if depthLimit <= 0 {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidDepthLimit, "search rejected"), "depth_limit", depthLimit)
		r.logger.Error(zerr.With(err, "start", start.String()))
		return nil
	}
	r.searches.Add(1)

	s := r.scratch.Get().(*scratch) //nolint:forcetypeassert // pool only holds *scratch
	defer func() {
		if rec := recover(); rec != nil {
			err := zerr.With(zerr.Wrap(domain.ErrUnexpectedFailure, "search aborted"), "panic", fmt.Sprint(rec))
			err = zerr.With(err, "start", start.String())
			r.logger.Error(zerr.WithStack(zerr.With(err, "target", target.String())))
			result = nil
		}
		s.reset()
		r.scratch.Put(s)
	}()
	s.view = r.pin()

	return r.search(s, start, target, access, allowPartial, depthLimit)
}

//nolint:cyclop
func (r *Router) search(
	s *scratch,
	start, target domain.Node,
	requester domain.AccessClass,
	allowPartial bool,
	depthLimit int,
) domain.Path {
	rootAccess := s.access.ConstraintOf(start)
	if domain.Tighten(requester, rootAccess) == domain.Infeasible {
		key := domain.Key(start, target, requester)
		r.logger.Error(zerr.With(zerr.Wrap(domain.ErrInfeasibleAccess, "start rejects requester"), "route", key.String()))
		return nil
	}

	s.arena = append(s.arena, macroNode{name: start, parent: -1, access: rootAccess})
	s.visited[start] = s.visited[start].with(rootAccess)

	hasTarget := !target.IsZero()
	for head := 0; head < len(s.arena); head++ {
		cur := s.arena[head]
		effective := domain.Tighten(requester, cur.access)
		if effective == domain.Infeasible {
			continue
		}

		var route domain.Path
		if head > 0 {
			route = s.route(head)
			s.cache.TryInsertIfAbsent(domain.Key(start, cur.name, cur.access), pathcache.Found(route))
		}

		if hasTarget && cur.name == target {
			if route == nil {
				return domain.Path{start}
			}
			if cur.access == domain.Unconstrained {
				cacheSuffixes(s.cache, route)
			}
			return route
		}

		if allowPartial && hasTarget && route != nil {
			if stitched := r.stitchFromCache(s.cache, route, target, cur.access, effective); stitched != nil {
				return stitched
			}
		}

		if cur.depth >= depthLimit {
			continue
		}
		r.expand(s, head, cur, requester)
	}

	if hasTarget && depthLimit == domain.Unbounded {
		key := domain.Key(start, target, requester)
		r.markUnreachable(s.cache, key)
		r.logger.Warn(fmt.Sprintf("%s: %s", domain.ErrUnreachableDestination, key))
	}
	return nil
}

// expand enqueues the neighbours of arena[head] that the requester may enter.
// A node is enqueued once per access class it is reached under, unless an
// unconstrained entry for it already exists.
func (r *Router) expand(s *scratch, head int, cur macroNode, requester domain.AccessClass) {
	s.edges = s.graph.AppendEdges(s.edges[:0], cur.name)
	for _, e := range s.edges {
		next, ok := s.filter.Canonical(e.To)
		if !ok {
			continue
		}
		if !s.graph.Has(next) {
			r.warnMissing(cur.name, next)
			continue
		}
		access := domain.Tighten(cur.access, domain.Tighten(e.Access, s.access.ConstraintOf(next)))
		if domain.Tighten(requester, access) == domain.Infeasible {
			continue
		}
		seen := s.visited[next]
		if seen.covers(access) {
			continue
		}
		s.visited[next] = seen.with(access)
		s.arena = append(s.arena, macroNode{
			name:   next,
			parent: int32(head), //nolint:gosec // arena length is bounded by the graph size
			access: access,
			depth:  cur.depth + 1,
		})
	}
}

// cacheSuffixes records every proper suffix of an unconstrained shortest route
// that has at least two nodes. Each one is itself a shortest route.
func cacheSuffixes(gen *pathcache.Generation, route domain.Path) {
	end := route.Last()
	for i := 1; i < len(route)-1; i++ {
		gen.TryInsertIfAbsent(domain.Key(route[i], end, domain.Unconstrained), pathcache.Found(route[i:]))
	}
}

// stitchFromCache joins route with a cached tail from its last node to the
// search target. The generic tail is tried before the requester-specific one.
// Single-hop tails are ignored: the next BFS level finds them exactly.
func (r *Router) stitchFromCache(
	gen *pathcache.Generation,
	route domain.Path,
	target domain.Node,
	access, effective domain.AccessClass,
) domain.Path {
	junction := route.Last()
	variants := []domain.AccessClass{domain.Unconstrained}
	if effective != domain.Unconstrained {
		variants = append(variants, effective)
	}
	for _, variant := range variants {
		tail, ok := gen.TryGet(domain.Key(junction, target, variant))
		if !ok || tail.Unreachable || len(tail.Path) <= 2 {
			continue
		}
		stitched := TryStitch(route, tail.Path)
		if stitched == nil {
			continue
		}
		r.stitches.Add(1)
		gen.TryInsertIfAbsent(domain.Key(route.First(), target, domain.Tighten(access, variant)), pathcache.Found(stitched))
		return stitched
	}
	return nil
}
