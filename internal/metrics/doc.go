// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package metrics defines the Prometheus instrumentation for every stage of
the recommendation pipeline.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring performance, errors, and system health.

# Overview

The package provides metrics for:
  - Catalog loading (records loaded, records skipped by reason)
  - Similarity graph construction (build time, node and relation counts)
  - Recommendation latency, outcomes, and result sizes
  - HTTP request latency and throughput
  - Cache hit/miss rates
  - Circuit breaker state transitions

# Metrics Endpoint

The /metrics endpoint serves everything below in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog Metrics:
  - catalog_load_duration_seconds: Load time per catalog load (histogram)
  - catalog_records_loaded_total: Movie records loaded (counter)
  - catalog_records_skipped_total: Source records rejected (counter)
    Labels: reason (field_count, bad_id, bad_rating)
  - catalog_movies: Current catalog size (gauge)
  - catalog_last_load_success_timestamp: Unix timestamp of last successful load (gauge)

Graph Metrics:
  - graph_build_duration_seconds: Graph build time (histogram)
  - graph_nodes: Nodes in the similarity graph (gauge)
  - graph_relations: Relation pairs by kind (gauge)
    Labels: kind (shared_genre, close_rating, shared_director)
  - graph_pairs_compared_total: Movie pairs compared during builds (counter)

Recommendation Metrics:
  - recommendations_total: Recommendation requests (counter)
    Labels: outcome (ok, not_found, error)
  - recommendation_duration_seconds: Computation latency (histogram)
  - recommendation_results: Result sizes (histogram)
  - recommendation_candidates: Candidate neighbors scored (histogram)

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Cache Metrics:
  - cache_hits_total / cache_misses_total: Cache efficiency (counters)
    Labels: cache_type (recommendation, redis)
  - cache_entries: Current cached entries (gauge)
  - cache_evictions_total: TTL evictions (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

# Usage

Metrics are registered automatically via promauto at package init. Record
values through the helper functions or the exported collectors directly:

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(time.Since(start), len(resp.Recommendations), err)

# Grafana Integration

Example queries:

	# Recommendation p99 latency
	histogram_quantile(0.99, rate(recommendation_duration_seconds_bucket[5m]))

	# Cache hit rate
	rate(cache_hits_total[5m]) / (rate(cache_hits_total[5m]) + rate(cache_misses_total[5m]))

	# Request rate by endpoint
	rate(api_requests_total[1m])
*/
package metrics
