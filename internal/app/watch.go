package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.trai.ch/rescheduler/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 5 * time.Second

// WatchOptions configures Watch.
type WatchOptions struct {
	// MetricsAddr serves /metrics on this address when non-empty.
	MetricsAddr string
	// Debounce is the quiet period before a reload. Zero uses the watcher default.
	Debounce time.Duration
	// Ready is called once the world is loaded and the watcher is running,
	// with the bound metrics address or "" when metrics are disabled.
	Ready func(metricsAddr string)
}

// Watch loads the world at path and starts a new epoch every time the world
// file changes, until ctx is done. A reload that fails keeps the previous epoch.
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	if _, err := a.BeginEpoch(ctx, path); err != nil {
		return err
	}
	source := a.world.Snapshot().Source

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, source); err != nil {
		_ = w.Stop()
		return err
	}

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, func([]string) {
		a.reload(ctx, source)
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range w.Events() {
			if event.Operation == ports.OpRemove {
				a.logger.Warn(fmt.Sprintf("world file removed: %s", event.Path))
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		debouncer.Stop()
		return w.Stop()
	})

	metricsAddr := ""
	if opts.MetricsAddr != "" {
		addr, err := a.serveMetrics(gctx, g, opts.MetricsAddr)
		if err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
		metricsAddr = addr
	}

	a.logger.Info(fmt.Sprintf("watching %s", source))
	if opts.Ready != nil {
		opts.Ready(metricsAddr)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// reload starts a new epoch from source and reports the outcome.
func (a *App) reload(ctx context.Context, source string) {
	if ctx.Err() != nil {
		return
	}
	report, err := a.BeginEpoch(ctx, source)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "reload failed, keeping previous world"))
		return
	}
	a.logger.Info(fmt.Sprintf("epoch %s: %d nodes, %d edges, %d routes seeded",
		report.ID, report.Nodes, report.Edges, report.Seeded))
}

// serveMetrics binds addr and serves the Prometheus handler until ctx is done.
func (a *App) serveMetrics(ctx context.Context, g *errgroup.Group, addr string) (string, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to serve metrics"), "addr", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "metrics server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), readHeaderTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return ln.Addr().String(), nil
}
