package router

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescheduler/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rescheduler/internal/adapters/world"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rescheduler/internal/core/ports"
)

// NodeID is the unique identifier for the router Graft node.
const NodeID graft.ID = "engine.router"

func init() {
	graft.Register(graft.Node[*Router]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{world.ProviderNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Router, error) {
			w, err := graft.Dep[ports.World](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(w, w, w, log), nil
		},
	})
}
