package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts console page/API requests by method, path and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_http_requests_total",
			Help: "Total number of HTTP requests handled by the console",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes console request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_http_request_duration_seconds",
			Help:    "HTTP request latency of the console",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// UpstreamRequestsTotal counts calls made to the HorPlus API
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_upstream_requests_total",
			Help: "Total number of requests issued to the upstream HorPlus API",
		},
		[]string{"resource", "method", "status"},
	)

	// UpstreamRequestDuration observes upstream call latency
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_upstream_request_duration_seconds",
			Help:    "Latency of requests issued to the upstream HorPlus API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)
)
