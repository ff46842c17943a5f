// Package metrics exports router statistics and query latencies to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/rescheduler/internal/core/ports"
)

const (
	namespace = "rescheduler"
	subsystem = "router"
)

// Query outcomes used as the "outcome" label of the latency histogram.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Exporter owns a private registry populated from a StatsSource.
// Counters are read from the source on every scrape.
type Exporter struct {
	registry     *prometheus.Registry
	queryLatency *prometheus.HistogramVec
	epochs       prometheus.Counter
}

// New creates an Exporter reading counters from source.
func New(source ports.StatsSource) *Exporter {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	counter := func(name, help string, read func() uint64) {
		factory.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(read()) })
	}

	counter("searches_total", "Breadth-first searches started",
		func() uint64 { return source.Stats().Searches })
	counter("stitches_total", "Routes answered by joining a cached tail",
		func() uint64 { return source.Stats().Stitches })
	counter("cache_hits_total", "Queries answered from the cache",
		func() uint64 { return source.Stats().CacheHits })
	counter("cache_misses_total", "Queries that needed a search",
		func() uint64 { return source.Stats().CacheMisses })
	counter("unreachable_cached_total", "Routes cached as proven unreachable",
		func() uint64 { return source.Stats().UnreachableCached })
	counter("rejected_total", "Queries rejected before searching",
		func() uint64 { return source.Stats().Rejected })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cache_entries",
		Help:      "Entries in the route cache of the current epoch",
	}, func() float64 { return float64(source.Stats().CacheSize) })

	return &Exporter{
		registry: reg,
		queryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "query_duration_seconds",
			Help:      "Route query latency by outcome",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"outcome"}),
		epochs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "epochs_total",
			Help:      "World epochs started",
		}),
	}
}

// ObserveQuery records the latency of one route query.
func (e *Exporter) ObserveQuery(found bool, d time.Duration) {
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
	}
	e.queryLatency.WithLabelValues(outcome).Observe(d.Seconds())
}

// EpochStarted counts a new epoch.
func (e *Exporter) EpochStarted() {
	e.epochs.Inc()
}

// Registry exposes the underlying registry for tests and custom handlers.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{Registry: e.registry})
}
