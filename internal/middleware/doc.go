// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package middleware provides the HTTP middleware wrapped around the API
handlers.

This package implements infrastructure middleware for request ID tracking,
Prometheus metrics instrumentation, gzip compression, and in-process
latency monitoring. The components compose with the Chi middleware stack
in internal/api to form the full request pipeline.

Key Components:

  - RequestID: UUID-based request tracking for distributed tracing
  - PrometheusMetrics: HTTP request/response instrumentation
  - Compression: Gzip compression for clients that accept it
  - PerformanceMonitor: Rolling-window latency tracking with percentiles

Middleware Stack:

The typical stack for an API endpoint, outermost first:

	CORS -> RateLimit -> SecurityHeaders -> PrometheusMetrics ->
	    Compression -> handler

Request IDs are attached globally by the router before any group
middleware runs, so every log line carries request_id and
correlation_id fields.

Usage Example - Request ID:

	http.HandleFunc("/api/v1/movies",
	    middleware.RequestID(handler),
	)

	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    _ = requestID
	}

Usage Example - Performance Monitoring:

	perfMon := middleware.NewPerformanceMonitor(1000)
	wrapped := perfMon.Middleware(handler)

	// Later, e.g. from a status endpoint:
	stats := perfMon.Stats()

Thread Safety:

All middleware components are safe for concurrent use:

  - Compression pools gzip writers with sync.Pool
  - PerformanceMonitor guards its window with sync.RWMutex
  - RequestID stores IDs in the per-request context
  - Prometheus collectors are atomic by construction

See Also:

  - internal/api: Chi router and handlers wrapped by this middleware
  - internal/metrics: Prometheus metric definitions
  - internal/logging: request/correlation ID context helpers
*/
package middleware
