// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/kinograph/kinograph/internal/config"
	"github.com/kinograph/kinograph/internal/middleware"
)

// Router configures the HTTP routes using the Chi router.
type Router struct {
	handler  *Handler
	security *ChiMiddleware
}

// NewRouter creates a router for the given handler. The middleware stack
// (CORS origins, rate limits) is derived from the security section of
// the configuration; a nil config uses the secure defaults.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	var sec *ChiMiddleware
	if cfg != nil {
		sec = NewChiMiddlewareFromConfig(
			cfg.Security.CORSOrigins,
			cfg.Security.RateLimitReqs,
			cfg.Security.RateLimitWindow,
			cfg.Security.RateLimitDisabled,
		)
	} else {
		sec = NewChiMiddleware(nil)
	}

	return &Router{
		handler:  handler,
		security: sec,
	}
}

// adapt bridges http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so the middleware package composes
// with r.Use().
func adapt(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Routes configures all HTTP routes and returns the root handler.
func (router *Router) Routes() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Every route passes through these, in the order listed.
	r.Use(RequestIDWithLogging()) // X-Request-ID header plus logging context
	r.Use(chimiddleware.RealIP)   // client IP from X-Forwarded-For / X-Real-IP
	r.Use(chimiddleware.Recoverer)
	r.Use(router.security.CORS()) // global, so OPTIONS preflight is answered on every route

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting (1000/min) so monitors can poll freely
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.security.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Core API Endpoints
	// ========================
	// Search, recommendations, graph stats, and server status
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.security.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(adapt(middleware.PrometheusMetrics))
		r.Use(adapt(middleware.Compression))
		r.Use(router.handler.perfMon.Middleware)

		r.Get("/search", router.handler.SearchMovies)
		r.Get("/graph", router.handler.GraphStats)
		r.Get("/status", router.handler.Status)

		// Recommendation scoring is the most expensive operation, so it
		// carries its own stricter limit on top of the group limit.
		r.With(router.security.RateLimitRecommend()).Post("/recommend", router.handler.Recommend)
	})

	// ========================
	// Movie Catalog Endpoints
	// ========================
	r.Route("/api/v1/movies", func(r chi.Router) {
		r.Use(router.security.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(adapt(middleware.PrometheusMetrics))
		r.Use(adapt(middleware.Compression))
		r.Use(router.handler.perfMon.Middleware)

		r.Get("/", router.handler.ListMovies)
		r.Get("/{movieID}", router.handler.GetMovie)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Unknown routes and wrong methods answer in the envelope too, so
	// clients never have to special-case chi's plain-text defaults.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found: " + req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed("Method " + req.Method + " not allowed")
	})

	return r
}
