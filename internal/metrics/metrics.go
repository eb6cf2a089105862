package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the fetch-layer counters so each command wires its own
// instance instead of sharing process globals.
type Registry struct {
	reg *prometheus.Registry

	Requests       prometheus.Counter
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	StaleRefreshes prometheus.Counter
	DedupJoins     prometheus.Counter
	Retries        prometheus.Counter
	NetworkErrors  prometheus.Counter
	ClientErrors   prometheus.Counter
	FetchLatency   prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	requests := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_fetch_requests_total"})
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_cache_hits_total"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_cache_misses_total"})
	stale := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_cache_stale_refreshes_total"})
	dedup := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_fetch_dedup_joins_total"})
	retries := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_fetch_retries_total"})
	netErrs := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_fetch_network_errors_total"})
	cliErrs := prometheus.NewCounter(prometheus.CounterOpts{Name: "nwb_fetch_client_errors_total"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nwb_fetch_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(requests, hits, misses, stale, dedup, retries, netErrs, cliErrs, latency)
	return &Registry{
		reg:            r,
		Requests:       requests,
		CacheHits:      hits,
		CacheMisses:    misses,
		StaleRefreshes: stale,
		DedupJoins:     dedup,
		Retries:        retries,
		NetworkErrors:  netErrs,
		ClientErrors:   cliErrs,
		FetchLatency:   latency,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
