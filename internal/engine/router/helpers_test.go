package router_test

import (
	"testing"

	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/core/ports/mocks"
	"go.trai.ch/rescheduler/internal/engine/router"
	"go.uber.org/mock/gomock"
)

// graphBuilder assembles small worlds for tests.
type graphBuilder struct {
	nodes map[domain.Node]domain.NodeSpec
}

func newGraph() *graphBuilder {
	return &graphBuilder{nodes: make(map[domain.Node]domain.NodeSpec)}
}

func (g *graphBuilder) node(name string) *graphBuilder {
	n := domain.NewNode(name)
	if _, ok := g.nodes[n]; !ok {
		g.nodes[n] = domain.NodeSpec{}
	}
	return g
}

func (g *graphBuilder) edge(from, to string) *graphBuilder {
	return g.taggedEdge(from, to, domain.Unconstrained)
}

func (g *graphBuilder) taggedEdge(from, to string, access domain.AccessClass) *graphBuilder {
	g.node(to)
	return g.dangling(from, to, access)
}

// dangling adds an edge without declaring its destination.
func (g *graphBuilder) dangling(from, to string, access domain.AccessClass) *graphBuilder {
	g.node(from)
	n := domain.NewNode(from)
	spec := g.nodes[n]
	spec.Edges = append(spec.Edges, domain.Edge{To: domain.NewNode(to), Access: access})
	g.nodes[n] = spec
	return g
}

func (g *graphBuilder) access(name string, access domain.AccessClass) *graphBuilder {
	g.node(name)
	n := domain.NewNode(name)
	spec := g.nodes[n]
	spec.Access = access
	g.nodes[n] = spec
	return g
}

func (g *graphBuilder) world() *domain.World {
	return domain.NewWorld("test", 0, domain.DefaultRoutingSettings(), g.nodes)
}

func newRouter(t *testing.T, w *domain.World, opts ...router.Option) (*router.Router, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return router.New(w, w, w, log, opts...), log
}

func n(name string) domain.Node {
	return domain.NewNode(name)
}

func path(names ...string) domain.Path {
	return domain.Path(domain.NewNodes(names))
}

// diamond is Town->{Forest,Beach}->Mine.
func diamond() *domain.World {
	return newGraph().
		edge("Town", "Forest").
		edge("Forest", "Mine").
		edge("Town", "Beach").
		edge("Beach", "Mine").
		world()
}

// distances computes reference hop counts from start with a plain BFS.
func distances(w *domain.World, start domain.Node) map[domain.Node]int {
	dist := map[domain.Node]int{start: 0}
	queue := []domain.Node{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range w.AppendEdges(nil, cur) {
			if _, seen := dist[e.To]; seen || !w.Has(e.To) {
				continue
			}
			dist[e.To] = dist[cur] + 1
			queue = append(queue, e.To)
		}
	}
	return dist
}

// accessDistances computes reference hop counts from start for a requester of
// the given class. It runs a plain BFS over (node, access) states.
func accessDistances(w *domain.World, start domain.Node, requester domain.AccessClass) map[domain.Node]int {
	type state struct {
		node   domain.Node
		access domain.AccessClass
	}
	root := state{node: start, access: w.ConstraintOf(start)}
	if !requester.Admits(root.access) {
		return map[domain.Node]int{}
	}
	depth := map[state]int{root: 0}
	dist := map[domain.Node]int{start: 0}
	queue := []state{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range w.AppendEdges(nil, cur.node) {
			if !w.Has(e.To) {
				continue
			}
			next := state{node: e.To, access: domain.Tighten(cur.access, domain.Tighten(e.Access, w.ConstraintOf(e.To)))}
			if !requester.Admits(next.access) {
				continue
			}
			if _, seen := depth[next]; seen {
				continue
			}
			depth[next] = depth[cur] + 1
			if _, ok := dist[next.node]; !ok {
				dist[next.node] = depth[next]
			}
			queue = append(queue, next)
		}
	}
	return dist
}

// routeAccess folds the node and edge classes along p.
func routeAccess(w *domain.World, p domain.Path) domain.AccessClass {
	access := w.ConstraintOf(p.First())
	for i := 0; i+1 < len(p); i++ {
		for _, e := range w.AppendEdges(nil, p[i]) {
			if e.To == p[i+1] {
				access = domain.Tighten(access, e.Access)
				break
			}
		}
		access = domain.Tighten(access, w.ConstraintOf(p[i+1]))
	}
	return access
}

// connected reports whether every hop of p follows an edge of w.
func connected(w *domain.World, p domain.Path) bool {
	for i := 0; i+1 < len(p); i++ {
		found := false
		for _, e := range w.AppendEdges(nil, p[i]) {
			if e.To == p[i+1] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
