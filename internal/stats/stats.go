package stats

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	upstreamRequestsMetric     = "tripadvisor_requests_total"
	circuitBreakerStateMetric  = "tripadvisor_circuit_breaker_state"
	aggregationFallbacksMetric = "aggregation_fallbacks_total"
)

type Stats struct {
	Timestamp   time.Time        `json:"timestamp"`
	Memory      MemoryStats      `json:"memory"`
	Upstream    UpstreamStats    `json:"upstream"`
	Aggregation AggregationStats `json:"aggregation"`
	Runtime     RuntimeStats     `json:"runtime"`
}

type MemoryStats struct {
	Alloc        uint64 `json:"alloc"`
	TotalAlloc   uint64 `json:"total_alloc"`
	Sys          uint64 `json:"sys"`
	NumGC        uint32 `json:"num_gc"`
	HeapAlloc    uint64 `json:"heap_alloc"`
	HeapSys      uint64 `json:"heap_sys"`
	HeapInuse    uint64 `json:"heap_inuse"`
	HeapReleased uint64 `json:"heap_released"`
}

type UpstreamStats struct {
	TotalRequests int64            `json:"total_requests"`
	Outcomes      map[string]int64 `json:"outcomes"`
	Endpoints     []EndpointStat   `json:"endpoints"`
	BreakerState  string           `json:"breaker_state,omitempty"`
}

type EndpointStat struct {
	Name     string `json:"name"`
	Requests int64  `json:"requests"`
	Failures int64  `json:"failures"`
}

type AggregationStats struct {
	Fallbacks map[string]int64 `json:"fallbacks"`
}

type RuntimeStats struct {
	NumGoroutines int   `json:"num_goroutines"`
	NumCPU        int   `json:"num_cpu"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

type Collector struct {
	gatherer   prometheus.Gatherer
	startTime  time.Time
	cachedMem  *MemoryStats
	cacheTime  time.Time
	cacheMutex sync.RWMutex
}

var (
	memStatsCacheDuration = 5 * time.Second
)

var breakerStates = map[float64]string{
	0: "closed",
	1: "half-open",
	2: "open",
}

func NewCollector(gatherer prometheus.Gatherer) *Collector {
	return &Collector{
		gatherer:  gatherer,
		startTime: time.Now(),
	}
}

func (c *Collector) Collect(ctx context.Context) (*Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &Stats{
		Timestamp: time.Now(),
	}

	stats.Memory = c.collectMemoryStats()

	families, err := c.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	stats.Upstream = collectUpstreamStats(families)
	stats.Aggregation = collectAggregationStats(families)
	stats.Runtime = c.collectRuntimeStats()

	return stats, nil
}

func (c *Collector) collectMemoryStats() MemoryStats {
	c.cacheMutex.RLock()
	if c.cachedMem != nil && time.Since(c.cacheTime) < memStatsCacheDuration {
		mem := *c.cachedMem
		c.cacheMutex.RUnlock()
		return mem
	}
	c.cacheMutex.RUnlock()

	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mem := MemoryStats{
		Alloc:        m.Alloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		HeapInuse:    m.HeapInuse,
		HeapReleased: m.HeapReleased,
	}

	c.cachedMem = &mem
	c.cacheTime = time.Now()

	return mem
}

func collectUpstreamStats(families []*dto.MetricFamily) UpstreamStats {
	stats := UpstreamStats{
		Outcomes:  map[string]int64{},
		Endpoints: []EndpointStat{},
	}
	endpoints := map[string]*EndpointStat{}

	for _, mf := range families {
		switch mf.GetName() {
		case upstreamRequestsMetric:
			for _, m := range mf.GetMetric() {
				labels := labelMap(m)
				count := int64(m.GetCounter().GetValue())

				stats.TotalRequests += count
				stats.Outcomes[labels["outcome"]] += count

				ep, ok := endpoints[labels["endpoint"]]
				if !ok {
					ep = &EndpointStat{Name: labels["endpoint"]}
					endpoints[labels["endpoint"]] = ep
				}
				ep.Requests += count
				if labels["outcome"] != "success" {
					ep.Failures += count
				}
			}
		case circuitBreakerStateMetric:
			for _, m := range mf.GetMetric() {
				stats.BreakerState = breakerStates[m.GetGauge().GetValue()]
			}
		}
	}

	for _, ep := range endpoints {
		stats.Endpoints = append(stats.Endpoints, *ep)
	}
	sort.Slice(stats.Endpoints, func(i, j int) bool {
		return stats.Endpoints[i].Name < stats.Endpoints[j].Name
	})

	return stats
}

func collectAggregationStats(families []*dto.MetricFamily) AggregationStats {
	stats := AggregationStats{Fallbacks: map[string]int64{}}

	for _, mf := range families {
		if mf.GetName() != aggregationFallbacksMetric {
			continue
		}
		for _, m := range mf.GetMetric() {
			stats.Fallbacks[labelMap(m)["aggregate"]] += int64(m.GetCounter().GetValue())
		}
	}

	return stats
}

func labelMap(m *dto.Metric) map[string]string {
	labels := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	return labels
}

func (c *Collector) collectRuntimeStats() RuntimeStats {
	uptime := time.Since(c.startTime).Seconds()
	return RuntimeStats{
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		UptimeSeconds: int64(uptime),
	}
}
