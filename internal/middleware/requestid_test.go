// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/kinograph/kinograph/internal/logging"
)

// traceRequest runs req through the RequestID middleware and reports the
// recorder plus the id the inner handler observed in its context.
func traceRequest(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seen string
	h := RequestID(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec, seen
}

func TestRequestID(t *testing.T) {
	t.Run("mints a uuid when the client sends none", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
		rec, seen := traceRequest(t, req)

		echoed := rec.Header().Get("X-Request-ID")
		if echoed == "" {
			t.Fatal("no X-Request-ID header on the response")
		}
		if _, err := uuid.Parse(echoed); err != nil {
			t.Errorf("echoed id %q is not a uuid: %v", echoed, err)
		}
		if seen != echoed {
			t.Errorf("handler saw id %q but response carries %q", seen, echoed)
		}
	})

	t.Run("an upstream id wins over a fresh one", func(t *testing.T) {
		const upstream = "proxy-assigned-id-42"

		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
		req.Header.Set("X-Request-ID", upstream)
		rec, seen := traceRequest(t, req)

		if got := rec.Header().Get("X-Request-ID"); got != upstream {
			t.Errorf("response id = %q, want the upstream %q", got, upstream)
		}
		if seen != upstream {
			t.Errorf("context id = %q, want the upstream %q", seen, upstream)
		}
	})

	t.Run("a minted id is written back to the request header", func(t *testing.T) {
		var headerInHandler string
		h := RequestID(func(w http.ResponseWriter, r *http.Request) {
			headerInHandler = r.Header.Get("X-Request-ID")
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommend/7", nil))

		if headerInHandler == "" {
			t.Error("downstream handler did not see the minted id on the request header")
		}
		if got := rec.Header().Get("X-Request-ID"); got != headerInHandler {
			t.Errorf("request header id %q diverges from response id %q", headerInHandler, got)
		}
	})

	t.Run("ids do not repeat across requests", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/recommend/1", nil)
			rec, _ := traceRequest(t, req)

			id := rec.Header().Get("X-Request-ID")
			if seen[id] {
				t.Fatalf("id %q was handed out twice", id)
			}
			seen[id] = true
		}
	})

	t.Run("logging context carries request and correlation ids", func(t *testing.T) {
		var reqID, corrID string
		h := RequestID(func(w http.ResponseWriter, r *http.Request) {
			reqID = logging.RequestIDFromContext(r.Context())
			corrID = logging.CorrelationIDFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))

		if reqID == "" || reqID != rec.Header().Get("X-Request-ID") {
			t.Errorf("logging context request id = %q, response id = %q", reqID, rec.Header().Get("X-Request-ID"))
		}
		if corrID == "" {
			t.Error("no correlation id in the logging context")
		}
	})
}

func TestGetRequestID_BareContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)

	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("got %q from a context the middleware never touched", id)
	}
}

func BenchmarkRequestID(b *testing.B) {
	h := RequestID(func(w http.ResponseWriter, r *http.Request) {
		_ = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h(httptest.NewRecorder(), req)
	}
}
