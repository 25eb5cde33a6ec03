// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package api provides Chi middleware factories built on the
// production-hardened go-chi ecosystem (cors, httprate).
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/kinograph/kinograph/internal/metrics"
	"github.com/kinograph/kinograph/internal/middleware"
)

// CORSPolicy configures cross-origin access to the API endpoints.
type CORSPolicy struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAgeSeconds    int
}

// RateLimitPolicy configures the default limiter. Zero-valued KeyFunc
// and OnLimit fall back to IP keying and the metric-counting 429.
type RateLimitPolicy struct {
	Limit    RateLimitConfig
	Disabled bool
	KeyFunc  httprate.KeyFunc
	OnLimit  http.HandlerFunc
}

// ChiMiddlewareConfig holds configuration for the Chi middleware factories.
type ChiMiddlewareConfig struct {
	CORS      CORSPolicy
	RateLimit RateLimitPolicy
}

// DefaultChiMiddlewareConfig returns the starting configuration: no
// allowed CORS origins, so cross-origin access stays off until the
// deployment names its origins, and the RateLimitAPI limit class.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORS: CORSPolicy{
			AllowedOrigins: []string{},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAgeSeconds:  86400, // 24 hours
		},
		RateLimit: RateLimitPolicy{Limit: RateLimitAPI},
	}
}

// ChiMiddleware hands out the CORS and rate limit middleware built
// from one configuration.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a Chi middleware factory with the given
// configuration. A nil config falls back to the secure defaults.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	return &ChiMiddleware{
		config: config,
		cors: cors.Handler(cors.Options{
			AllowedOrigins:   config.CORS.AllowedOrigins,
			AllowedMethods:   config.CORS.AllowedMethods,
			AllowedHeaders:   config.CORS.AllowedHeaders,
			ExposedHeaders:   config.CORS.ExposedHeaders,
			AllowCredentials: config.CORS.AllowCredentials,
			MaxAge:           config.CORS.MaxAgeSeconds,
		}),
	}
}

// NewChiMiddlewareFromConfig creates a ChiMiddleware from the security
// section of the application configuration. This bridges the koanf
// config layer to the Chi middleware factories.
func NewChiMiddlewareFromConfig(corsOrigins []string, rateLimitReqs int, rateLimitWindow time.Duration, rateLimitDisabled bool) *ChiMiddleware {
	config := DefaultChiMiddlewareConfig()
	config.CORS.AllowedOrigins = corsOrigins
	config.RateLimit.Limit = RateLimitConfig{Requests: rateLimitReqs, Window: rateLimitWindow}
	config.RateLimit.Disabled = rateLimitDisabled

	return NewChiMiddleware(config)
}

// passthrough is the no-op middleware returned when rate limiting is
// disabled.
func passthrough(next http.Handler) http.Handler {
	return next
}

// CORS returns the shared go-chi/cors handler.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the default IP-keyed rate limiting middleware using
// go-chi/httprate.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	rl := m.config.RateLimit
	if rl.Disabled {
		return passthrough
	}

	key := rl.KeyFunc
	if key == nil {
		key = httprate.KeyByIP
	}
	onLimit := rl.OnLimit
	if onLimit == nil {
		onLimit = rateLimitExceeded
	}

	return httprate.Limit(
		rl.Limit.Requests,
		rl.Limit.Window,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(onLimit),
	)
}

// rateLimitExceeded is the default over-limit handler. It counts the
// rejection before writing the same plain 429 httprate would.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// ========================
// Endpoint-Specific Rate Limits
// ========================

// RateLimitConfig defines rate limit parameters for a class of endpoints.
type RateLimitConfig struct {
	// Requests allowed per Window before the limiter answers 429.
	Requests int
	// Window is the measurement period.
	Window time.Duration
}

// Endpoint-specific rate limit configurations, tuned per endpoint class.
var (
	// RateLimitAPI is the default limit for catalog read endpoints.
	RateLimitAPI = RateLimitConfig{Requests: 100, Window: time.Minute}

	// RateLimitRecommend bounds recommendation scoring, which walks the
	// neighbor list of the base movie on every cache miss.
	RateLimitRecommend = RateLimitConfig{Requests: 60, Window: time.Minute}

	// RateLimitHealth is permissive so monitoring tools can poll
	// frequently without tripping the limiter.
	RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}
)

// RateLimitCustom returns an IP-keyed rate limiter with the given
// per-endpoint configuration.
func (m *ChiMiddleware) RateLimitCustom(limit RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimit.Disabled {
		return passthrough
	}

	return httprate.Limit(
		limit.Requests,
		limit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitRecommend returns the rate limiter for recommendation requests.
func (m *ChiMiddleware) RateLimitRecommend() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitRecommend)
}

// RateLimitHealth returns the rate limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// ========================
// API Security Headers
// ========================

// securityHeaders are set on every API response. Content-Security-Policy
// is omitted: it is an HTML concern and these endpoints serve JSON.
var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
}

// APISecurityHeaders returns a middleware that adds security headers to
// API responses. HSTS is added only when the request arrives over HTTPS
// or from a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDWithLogging adapts the middleware package's RequestID to
// chi's middleware signature. Each request gets a unique ID (IDs
// supplied by an upstream proxy are preserved), echoed in the
// X-Request-ID response header and pushed into the logging context as
// request_id along with a fresh correlation_id.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return middleware.RequestID(next.ServeHTTP)
	}
}
