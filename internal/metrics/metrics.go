package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts content API calls by endpoint and outcome
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripadvisor_requests_total",
			Help: "Total number of content API requests",
		},
		[]string{"endpoint", "outcome"}, // outcome: "success", "http_error", "transport_error", "rejected"
	)

	// UpstreamDuration tracks content API latency
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripadvisor_request_duration_seconds",
			Help:    "Duration of content API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tripadvisor_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// AggregationFallbacks counts highlights requests degraded to empty
	AggregationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregation_fallbacks_total",
			Help: "Total number of aggregations degraded to their empty shape",
		},
		[]string{"aggregate"},
	)

	// APIRequests counts served HTTP requests
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of HTTP API requests",
		},
		[]string{"route", "method", "status"},
	)

	// APIRequestDuration tracks HTTP API latency
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of HTTP API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)
