package app

import (
	"context"

	"github.com/google/uuid"
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/zerr"
)

// EpochReport summarizes the world snapshot installed by BeginEpoch.
type EpochReport struct {
	ID          string
	Source      string
	Fingerprint uint64
	Nodes       int
	Edges       int
	Seeded      int
}

// BeginEpoch loads the world at path, installs it, drops every cached route
// and pre-seeds the cache from the hub. On error the previous epoch stays in place.
func (a *App) BeginEpoch(ctx context.Context, path string) (EpochReport, error) {
	_, span := a.tracer.Start(ctx, "epoch", ports.WithAttribute("path", path))
	defer span.End()

	a.epochMu.Lock()
	defer a.epochMu.Unlock()

	w, err := a.loader.Load(path)
	if err != nil {
		err = zerr.Wrap(err, "failed to begin epoch")
		span.RecordError(err)
		return EpochReport{}, err
	}

	a.world.Replace(w)
	a.router.ClearCache()

	hub := w.Routing.Hub
	if w.Routing.PreseedDepth > 0 && w.Has(hub) {
		a.router.Preseed(hub, w.Routing.PreseedDepth)
	}
	a.metrics.EpochStarted()

	report := EpochReport{
		ID:          uuid.NewString(),
		Source:      w.Source,
		Fingerprint: w.Fingerprint,
		Nodes:       w.NodeCount(),
		Edges:       w.EdgeCount(),
		Seeded:      a.router.CacheSize(),
	}
	span.SetAttribute("epoch", report.ID)
	span.SetAttribute("fingerprint", report.Fingerprint)
	span.SetAttribute("nodes", report.Nodes)
	span.SetAttribute("seeded", report.Seeded)
	return report, nil
}
