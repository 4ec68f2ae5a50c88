package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRegistry(t *testing.T) (*prometheus.Registry, *prometheus.CounterVec, *prometheus.CounterVec, *prometheus.GaugeVec) {
	t.Helper()
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{Name: upstreamRequestsMetric}, []string{"endpoint", "outcome"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{Name: aggregationFallbacksMetric}, []string{"aggregate"})
	breaker := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: circuitBreakerStateMetric}, []string{"name"})
	reg.MustRegister(requests, fallbacks, breaker)

	return reg, requests, fallbacks, breaker
}

func TestCollector_Collect(t *testing.T) {
	reg, requests, fallbacks, breaker := setupTestRegistry(t)

	requests.WithLabelValues("/location/search", "success").Add(3)
	requests.WithLabelValues("/location/search", "http_error").Add(1)
	requests.WithLabelValues("/location/{id}/reviews", "success").Add(2)
	requests.WithLabelValues("/location/{id}/reviews", "transport_error").Add(1)
	fallbacks.WithLabelValues("highlights").Inc()
	breaker.WithLabelValues("tripadvisor").Set(2)

	collector := NewCollector(reg)

	stats, err := collector.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.Upstream.TotalRequests)
	assert.Equal(t, int64(5), stats.Upstream.Outcomes["success"])
	assert.Equal(t, int64(1), stats.Upstream.Outcomes["http_error"])
	assert.Equal(t, int64(1), stats.Upstream.Outcomes["transport_error"])
	assert.Equal(t, "open", stats.Upstream.BreakerState)

	require.Len(t, stats.Upstream.Endpoints, 2)
	assert.Equal(t, EndpointStat{Name: "/location/search", Requests: 4, Failures: 1}, stats.Upstream.Endpoints[0])
	assert.Equal(t, EndpointStat{Name: "/location/{id}/reviews", Requests: 3, Failures: 1}, stats.Upstream.Endpoints[1])

	assert.Equal(t, int64(1), stats.Aggregation.Fallbacks["highlights"])

	assert.Greater(t, stats.Memory.Alloc, uint64(0))
	assert.GreaterOrEqual(t, stats.Runtime.NumGoroutines, 1)

	stats2, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.Memory.Alloc, stats2.Memory.Alloc)
}

func TestCollector_NoTraffic(t *testing.T) {
	reg, _, _, _ := setupTestRegistry(t)
	collector := NewCollector(reg)

	stats, err := collector.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Upstream.TotalRequests)
	assert.NotNil(t, stats.Upstream.Endpoints)
	assert.Empty(t, stats.Upstream.Endpoints)
	assert.Empty(t, stats.Upstream.BreakerState)
	assert.Empty(t, stats.Aggregation.Fallbacks)
}

type failingGatherer struct{}

func (failingGatherer) Gather() ([]*dto.MetricFamily, error) {
	return nil, errors.New("gather failed")
}

func TestCollector_GatherError(t *testing.T) {
	collector := NewCollector(failingGatherer{})

	stats, err := collector.Collect(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to gather metrics")
	assert.Nil(t, stats)
}

func TestCollector_CancelledContext(t *testing.T) {
	reg, _, _, _ := setupTestRegistry(t)
	collector := NewCollector(reg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collector.Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
