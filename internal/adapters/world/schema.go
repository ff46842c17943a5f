package world

import "go.trai.ch/rescheduler/internal/core/domain"

// Worldfile represents the structure of the world.yaml file.
type Worldfile struct {
	Version string              `yaml:"version"`
	Routing *RoutingDTO         `yaml:"routing"`
	Nodes   map[string]*NodeDTO `yaml:"nodes"`
}

// RoutingDTO overrides the default routing settings. Omitted fields keep their defaults.
type RoutingDTO struct {
	Hub               string            `yaml:"hub"`
	PreseedDepth      *int              `yaml:"preseedDepth"`
	AllowPartialPaths *bool             `yaml:"allowPartialPaths"`
	Exclude           *ExcludeDTO       `yaml:"exclude"`
	Synonyms          map[string]string `yaml:"synonyms"`
}

// ExcludeDTO lists nodes removed from routing. A present list replaces the default one.
type ExcludeDTO struct {
	Names            []string `yaml:"names"`
	NumberedPrefixes []string `yaml:"numberedPrefixes"`
}

// NodeDTO represents a node definition.
type NodeDTO struct {
	Access domain.AccessClass `yaml:"access"`
	Edges  []EdgeDTO          `yaml:"edges"`
}

// EdgeDTO represents a directed edge definition.
type EdgeDTO struct {
	To     string             `yaml:"to"`
	Access domain.AccessClass `yaml:"access"`
}
