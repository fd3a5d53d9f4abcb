package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	facets   *prometheus.CounterVec
}

// newMetrics registers every collector of a server with a fresh registry,
// so that more than one server can exist in a process.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cinedex_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cinedex_searches_total",
			Help: "Movie searches by outcome (ok, invalid, error).",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cinedex_search_duration_seconds",
			Help:    "Time spent running movie searches.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		facets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cinedex_facet_cache_total",
			Help: "Facet cache lookups by result (hit, miss).",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.requests, m.searches, m.duration, m.facets,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
