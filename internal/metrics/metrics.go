// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Every Prometheus series the process exports is declared below, one
// block per pipeline stage:
// - Catalog loading (CSV and MongoDB sources)
// - Similarity graph construction
// - Recommendation latency and result sizes
// - HTTP request latency and in-flight count
// - Cache efficiency
// - Circuit breaker state

var (
	// Catalog Metrics
	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog load operations in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	CatalogRecordsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_records_loaded_total",
			Help: "Total number of movie records loaded into the catalog",
		},
	)

	CatalogRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_records_skipped_total",
			Help: "Total number of source records skipped during load",
		},
		[]string{"reason"}, // "field_count", "bad_id", "bad_rating"
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Current number of movies in the catalog",
		},
	)

	CatalogLastLoadSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_load_success_timestamp",
			Help: "Unix timestamp of last successful catalog load",
		},
	)

	// Source Metrics
	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_fetch_duration_seconds",
			Help:    "Duration of catalog source fetches in seconds",
			Buckets: prometheus.DefBuckets, // 5ms..10s covers both a local CSV and a remote Mongo fetch
		},
		[]string{"source"}, // "csv", "mongodb"
	)

	SourceFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetch_errors_total",
			Help: "Total number of catalog source fetch errors",
		},
		[]string{"source", "error_type"},
	)

	// Graph Metrics
	GraphBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graph_build_duration_seconds",
			Help:    "Duration of similarity graph builds in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	GraphNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "graph_nodes",
			Help: "Current number of nodes in the similarity graph",
		},
	)

	GraphRelations = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graph_relations",
			Help: "Current number of relation pairs in the similarity graph",
		},
		[]string{"kind"}, // "shared_genre", "close_rating", "shared_director"
	)

	GraphPairsCompared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "graph_pairs_compared_total",
			Help: "Total number of movie pairs compared during graph builds",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"outcome"}, // "ok", "not_found", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation computations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of movies returned per recommendation",
			Buckets: []float64{0, 1, 5, 10, 15, 20},
		},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Number of candidate neighbors scored per recommendation",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // 10ms floor, most requests land under 250ms
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "memory", "redis"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordCatalogLoad records a catalog load metric
func RecordCatalogLoad(duration time.Duration, loaded int, err error) {
	CatalogLoadDuration.Observe(duration.Seconds())
	CatalogRecordsLoaded.Add(float64(loaded))
	if err == nil {
		CatalogLastLoadSuccess.Set(float64(time.Now().Unix()))
	}
}

// RecordSkippedRecord records a source record rejected during catalog load
func RecordSkippedRecord(reason string) {
	CatalogRecordsSkipped.WithLabelValues(reason).Inc()
}

// RecordSourceFetch observes one catalog source fetch and, on failure,
// counts the error by source.
func RecordSourceFetch(source string, duration time.Duration, err error) {
	SourceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		// The error text becomes a label value, so cap it.
		label := err.Error()
		if len(label) > 50 {
			label = label[:50]
		}
		SourceFetchErrors.WithLabelValues(source, label).Inc()
	}
}

// RecordGraphBuild records a similarity graph build metric
func RecordGraphBuild(duration time.Duration, nodes, pairsCompared int, relationsByKind map[string]int) {
	GraphBuildDuration.Observe(duration.Seconds())
	GraphNodes.Set(float64(nodes))
	GraphPairsCompared.Add(float64(pairsCompared))
	for kind, count := range relationsByKind {
		GraphRelations.WithLabelValues(kind).Set(float64(count))
	}
}

// RecordRecommendation records a recommendation request metric
func RecordRecommendation(duration time.Duration, results int, err error) {
	RecommendationDuration.Observe(duration.Seconds())
	if err != nil {
		outcome := "error"
		if strings.Contains(err.Error(), "not found") {
			outcome = "not_found"
		}
		RecommendationsTotal.WithLabelValues(outcome).Inc()
		return
	}
	RecommendationsTotal.WithLabelValues("ok").Inc()
	RecommendationResults.Observe(float64(results))
}

// RecordAPIRequest counts one finished HTTP request and observes its
// latency, labeled by method, endpoint, and status.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight request gauge up or down.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheHit records a cache hit for the named cache
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the named cache
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}
