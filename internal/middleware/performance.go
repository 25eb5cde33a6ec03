// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/kinograph/kinograph/internal/logging"
)

// slowRequestMS is the latency above which a request is logged as slow.
// Recommendation scoring is linear in the neighbor count, so anything
// past this usually means the cache is down or the graph is degenerate.
const slowRequestMS = 1000

// RequestMetrics is one observed request in the monitor's window.
type RequestMetrics struct {
	Path       string
	Method     string
	DurationMS int64
}

// PerformanceMonitor tracks request latency over a sliding window and
// aggregates per-endpoint percentiles. It complements the Prometheus
// histograms with process-local stats that the status endpoint can
// report without a metrics backend.
type PerformanceMonitor struct {
	mu         sync.RWMutex
	window     []RequestMetrics
	maxMetrics int
}

// EndpointStats contains aggregated latency statistics for one endpoint.
type EndpointStats struct {
	Path         string  `json:"path"`
	RequestCount int64   `json:"request_count"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	P50Duration  int64   `json:"p50_ms"`
	P95Duration  int64   `json:"p95_ms"`
	P99Duration  int64   `json:"p99_ms"`
	MinDuration  int64   `json:"min_ms"`
	MaxDuration  int64   `json:"max_ms"`
}

// NewPerformanceMonitor creates a monitor keeping the last maxMetrics
// requests.
func NewPerformanceMonitor(maxMetrics int) *PerformanceMonitor {
	return &PerformanceMonitor{
		window:     make([]RequestMetrics, 0, maxMetrics),
		maxMetrics: maxMetrics,
	}
}

// Record adds one observation, evicting the oldest once the window is
// full.
func (pm *PerformanceMonitor) Record(m RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.window = append(pm.window, m)
	if len(pm.window) > pm.maxMetrics {
		pm.window = pm.window[1:]
	}
}

// Stats returns per-endpoint statistics over the current window,
// busiest endpoints first. Endpoints are keyed "METHOD path".
func (pm *PerformanceMonitor) Stats() []EndpointStats {
	pm.mu.RLock()
	byEndpoint := make(map[string][]int64)
	for _, m := range pm.window {
		key := m.Method + " " + m.Path
		byEndpoint[key] = append(byEndpoint[key], m.DurationMS)
	}
	pm.mu.RUnlock()

	stats := make([]EndpointStats, 0, len(byEndpoint))
	for endpoint, durations := range byEndpoint {
		stats = append(stats, summarize(endpoint, durations))
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].RequestCount > stats[j].RequestCount
	})
	return stats
}

// summarize aggregates one endpoint's samples. The slice is owned by the
// caller and sorted in place.
func summarize(endpoint string, durations []int64) EndpointStats {
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var sum int64
	for _, d := range durations {
		sum += d
	}

	n := len(durations)
	return EndpointStats{
		Path:         endpoint,
		RequestCount: int64(n),
		AvgDuration:  float64(sum) / float64(n),
		P50Duration:  percentile(durations, 0.50),
		P95Duration:  percentile(durations, 0.95),
		P99Duration:  percentile(durations, 0.99),
		MinDuration:  durations[0],
		MaxDuration:  durations[n-1],
	}
}

// percentile returns the p-th percentile from a sorted slice using the
// nearest-rank method.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

// Middleware records latency for every request passing through and warns
// about requests slower than slowRequestMS.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		elapsed := time.Since(start).Milliseconds()
		pm.Record(RequestMetrics{
			Path:       r.URL.Path,
			Method:     r.Method,
			DurationMS: elapsed,
		})

		if elapsed > slowRequestMS {
			logging.Warn().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int64("duration_ms", elapsed).
				Msg("Slow request detected")
		}
	})
}
