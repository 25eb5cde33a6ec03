// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kinograph/kinograph/internal/logging"
)

type contextKey string

// RequestIDKey is the context key under which the request ID is stored.
const RequestIDKey contextKey = "request_id"

// RequestID middleware assigns each request a unique ID, echoes it in the
// X-Request-ID response header, and stores it in the request context.
// IDs arriving from an upstream proxy are preserved so traces stay
// continuous across hops. The ID (plus a fresh correlation ID) is also
// pushed into the logging context so every log line written while
// serving the request carries both fields.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := ensureRequestID(r)
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		ctx = logging.ContextWithRequestID(ctx, id)
		ctx = logging.ContextWithNewCorrelationID(ctx)

		next(w, r.WithContext(ctx))
	}
}

// ensureRequestID returns the upstream X-Request-ID or generates one,
// writing it back onto the request header so anything downstream that
// inspects headers sees the same value.
func ensureRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	id := uuid.New().String()
	r.Header.Set("X-Request-ID", id)
	return id
}

// GetRequestID extracts the request ID from context. Returns empty when
// the request did not pass through the RequestID middleware.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
