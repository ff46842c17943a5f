package world

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescheduler/internal/adapters/logger"
	"go.trai.ch/rescheduler/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the world loader Graft node.
	LoaderNodeID graft.ID = "adapter.world.loader"
	// ProviderNodeID is the unique identifier for the live world Graft node.
	ProviderNodeID graft.ID = "adapter.world.provider"
)

func init() {
	graft.Register(graft.Node[ports.WorldLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorldLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.World]{
		ID:        ProviderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.World, error) {
			return NewProvider(), nil
		},
	})
}
