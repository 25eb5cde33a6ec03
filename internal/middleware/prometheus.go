// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kinograph/kinograph/internal/metrics"
)

// PrometheusMetrics instruments a handler with the standard HTTP request
// metrics: in-flight gauge, per-endpoint request counter, and latency
// histogram labeled by method, path, and status code.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next(rec, r)

		metrics.RecordAPIRequest(
			r.Method,
			r.URL.Path,
			strconv.Itoa(rec.statusCode),
			time.Since(start),
		)
	}
}

// statusRecorder wraps http.ResponseWriter to capture the status code
// for the request counter label.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}
