package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescheduler/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rescheduler/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rescheduler/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rescheduler/internal/adapters/world"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/rescheduler/internal/engine/router"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			world.LoaderNodeID,
			world.ProviderNodeID,
			router.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.FactoryNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.WorldLoader](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.World](ctx)
	if err != nil {
		return nil, err
	}

	r, err := graft.Dep[*router.Router](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, w, r, log, tracer, newWatcher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
