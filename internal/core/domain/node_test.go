package domain_test

import (
	"testing"

	"go.trai.ch/rescheduler/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func TestNode(t *testing.T) {
	n1 := domain.NewNode("Town")
	n2 := domain.NewNode("Town")

	if n1 != n2 {
		t.Errorf("expected nodes with equal names to compare equal")
	}
	if n1.String() != "Town" {
		t.Errorf("expected String() to return %q, got %q", "Town", n1.String())
	}
	if domain.NewNode("town") == n1 {
		t.Errorf("expected node names to be case-sensitive")
	}
}

func TestNode_Zero(t *testing.T) {
	var zero domain.Node
	if !zero.IsZero() {
		t.Errorf("expected zero node to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("expected zero node to render empty, got %q", zero.String())
	}
	if domain.NewNode("").IsZero() {
		t.Errorf("expected an explicitly named node not to be zero")
	}
}

func TestNewNodes(t *testing.T) {
	nodes := domain.NewNodes([]string{"Town", "Forest"})
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[1].String() != "Forest" {
		t.Errorf("expected second node Forest, got %q", nodes[1].String())
	}
}

func TestNode_YAML(t *testing.T) {
	type holder struct {
		To domain.Node `yaml:"to"`
	}

	var h holder
	if err := yaml.Unmarshal([]byte("to: Mine\n"), &h); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if h.To != domain.NewNode("Mine") {
		t.Errorf("expected Mine, got %q", h.To.String())
	}

	out, err := yaml.Marshal(h)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(out) != "to: Mine\n" {
		t.Errorf("unexpected yaml %q", string(out))
	}
}
