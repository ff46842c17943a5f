// Package app implements the application layer for rescheduler.
package app

import (
	"context"
	"io"
	"sync"

	"go.trai.ch/rescheduler/internal/adapters/metrics"
	"go.trai.ch/rescheduler/internal/adapters/telemetry"
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/rescheduler/internal/engine/router"
)

// App wires the world, the router and the ambient adapters into the
// operations exposed by the CLI.
type App struct {
	loader     ports.WorldLoader
	world      ports.World
	router     *router.Router
	logger     ports.Logger
	tracer     ports.Tracer
	metrics    *metrics.Exporter
	newWatcher ports.WatcherFactory

	// epochMu serializes epoch changes.
	epochMu sync.Mutex
}

// New creates a new App instance.
func New(
	loader ports.WorldLoader,
	world ports.World,
	r *router.Router,
	log ports.Logger,
	tracer ports.Tracer,
	newWatcher ports.WatcherFactory,
) *App {
	return &App{
		loader:     loader,
		world:      world,
		router:     r,
		logger:     log,
		tracer:     tracer,
		metrics:    metrics.New(r),
		newWatcher: newWatcher,
	}
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if s, ok := a.logger.(jsonSwitcher); ok {
		s.SetJSON(enable)
	}
}

// EnableTracing exports every span to w. The returned function flushes and
// stops the exporter.
func (a *App) EnableTracing(w io.Writer) (func(context.Context) error, error) {
	shutdown, err := telemetry.SetupStdout(w)
	if err != nil {
		return nil, err
	}
	return shutdown, nil
}
