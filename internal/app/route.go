package app

import (
	"context"
	"os"
	"runtime"
	"time"

	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/core/ports"
	"go.trai.ch/rescheduler/internal/engine/router"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// RouteQuery is a single routing request.
type RouteQuery struct {
	Start  string             `yaml:"start"`
	End    string             `yaml:"end"`
	Access domain.AccessClass `yaml:"access"`
	// Partial overrides the world's allowPartialPaths setting when set.
	Partial *bool `yaml:"partial"`
	// Depth bounds the search; zero means unbounded.
	Depth int `yaml:"depth"`
}

func (q RouteQuery) String() string {
	return domain.Key(domain.NewNode(q.Start), domain.NewNode(q.End), q.Access).String()
}

// RouteResult pairs a query with its outcome.
type RouteResult struct {
	Query RouteQuery
	Path  domain.Path
	Err   error
}

// batchFile is the YAML layout of a batch file.
type batchFile struct {
	Queries []RouteQuery `yaml:"queries"`
}

// Route answers a single query against the current epoch.
// A query without a route fails with domain.ErrNoRoute.
func (a *App) Route(ctx context.Context, q RouteQuery) (domain.Path, error) {
	_, span := a.tracer.Start(ctx, "route",
		ports.WithAttribute("start", q.Start),
		ports.WithAttribute("end", q.End),
		ports.WithAttribute("access", q.Access),
	)
	defer span.End()

	snapshot := a.world.Snapshot()
	if snapshot == nil {
		span.RecordError(domain.ErrNoWorldLoaded)
		return nil, domain.ErrNoWorldLoaded
	}

	allowPartial := snapshot.Routing.AllowPartialPaths
	if q.Partial != nil {
		allowPartial = *q.Partial
	}
	var opts []router.QueryOption
	if q.Depth != 0 {
		opts = append(opts, router.WithDepthLimit(q.Depth))
	}

	began := time.Now()
	p := a.router.GetPathFor(domain.NewNode(q.Start), domain.NewNode(q.End), q.Access, allowPartial, opts...)
	a.metrics.ObserveQuery(p != nil, time.Since(began))

	if p == nil {
		err := zerr.With(zerr.Wrap(domain.ErrNoRoute, "route query failed"), "route", q.String())
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("hops", len(p)-1)
	return p, nil
}

// RouteBatch answers queries concurrently with at most jobs workers and
// returns the results in input order. Jobs below one use GOMAXPROCS.
// Per-query failures are reported in the results; only cancellation fails the batch.
func (a *App) RouteBatch(ctx context.Context, queries []RouteQuery, jobs int) ([]RouteResult, error) {
	ctx, span := a.tracer.Start(ctx, "batch", ports.WithAttribute("queries", len(queries)))
	defer span.End()

	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]RouteResult, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := a.Route(ctx, q)
			results[i] = RouteResult{Query: q, Path: p, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return results, err
	}
	return results, nil
}

// LoadBatch reads queries from a YAML batch file.
func (a *App) LoadBatch(path string) ([]RouteQuery, error) {
	// #nosec G304 -- path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrBatchReadFailed, err.Error()), "path", path)
	}

	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrBatchParseFailed, err.Error()), "path", path)
	}

	for i, q := range file.Queries {
		if q.Start == "" || q.End == "" {
			err := zerr.With(zerr.Wrap(domain.ErrEmptyNodeName, "batch query rejected"), "index", i)
			return nil, zerr.With(err, "path", path)
		}
	}
	return file.Queries, nil
}
