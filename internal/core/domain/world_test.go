package domain_test

import (
	"slices"
	"testing"

	"go.trai.ch/rescheduler/internal/core/domain"
)

func newTestWorld() *domain.World {
	nodes := map[domain.Node]domain.NodeSpec{
		domain.NewNode("Town"): {
			Edges: []domain.Edge{
				{To: domain.NewNode("Forest")},
				{To: domain.NewNode("BathHouse_MensLocker"), Access: domain.ClassA},
			},
		},
		domain.NewNode("Forest"):               {},
		domain.NewNode("BathHouse_MensLocker"): {Access: domain.ClassA},
	}
	return domain.NewWorld("world.yaml", 42, domain.DefaultRoutingSettings(), nodes)
}

func TestWorld_Lookups(t *testing.T) {
	w := newTestWorld()

	if !w.Has(domain.NewNode("Town")) {
		t.Errorf("expected Town to be declared")
	}
	if w.Has(domain.NewNode("Mine")) {
		t.Errorf("expected Mine to be undeclared")
	}
	if got := w.ConstraintOf(domain.NewNode("BathHouse_MensLocker")); got != domain.ClassA {
		t.Errorf("expected class A, got %v", got)
	}
	if got := w.ConstraintOf(domain.NewNode("Mine")); got != domain.Unconstrained {
		t.Errorf("expected unknown nodes to be unconstrained, got %v", got)
	}

	buf := make([]domain.Edge, 0, 4)
	buf = w.AppendEdges(buf, domain.NewNode("Town"))
	if len(buf) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(buf))
	}
	if w.NodeCount() != 3 || w.EdgeCount() != 2 {
		t.Errorf("unexpected counts: %d nodes, %d edges", w.NodeCount(), w.EdgeCount())
	}

	names := make([]string, 0, 3)
	for _, n := range w.Nodes() {
		names = append(names, n.String())
	}
	if !slices.Equal(names, []string{"BathHouse_MensLocker", "Forest", "Town"}) {
		t.Errorf("expected sorted nodes, got %v", names)
	}
}

func TestWorld_Canonical(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		in     string
		want   string
		routed bool
	}{
		{"Town", "Town", true},
		{"BoatTunnel", "IslandSouth", true},
		{"Farm", "", false},
		{"VolcanoEntrance", "", false},
		{"Cellar", "Cellar", true},
		{"Cellar2", "", false},
		{"Cellar12", "", false},
		{"CellarDoor", "CellarDoor", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := w.Canonical(domain.NewNode(tt.in))
			if ok != tt.routed {
				t.Fatalf("Canonical(%q) routed=%v, want %v", tt.in, ok, tt.routed)
			}
			if got.String() != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.in, got.String(), tt.want)
			}
		})
	}
}
