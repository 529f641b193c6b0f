// Package metrics defines Prometheus metrics for the gridsearch server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridsearch_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsearch_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsearch_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsearch_searches_total",
			Help: "Completed searches by algorithm and whether the end was reached",
		},
		[]string{"algorithm", "reached"},
	)

	TraceLength = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridsearch_search_trace_length",
			Help:    "Number of cells processed per search",
			Buckets: prometheus.ExponentialBuckets(4, 2, 14),
		},
		[]string{"algorithm"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SearchesTotal, TraceLength,
	)
}
