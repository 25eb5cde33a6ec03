// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: listen address (default: 0.0.0.0)
//   - HTTP_PORT: listen port (default: 8080)
//   - HTTP_READ_TIMEOUT: request read timeout (default: 15s)
//   - HTTP_WRITE_TIMEOUT: response write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 15s)
//   - ENVIRONMENT: development, staging or production (default: development)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// CatalogConfig selects and tunes the movie source loaded at boot.
//
// Environment Variables:
//   - CATALOG_SOURCE: "csv" or "mongodb" (default: csv)
//   - CATALOG_PATH: CSV file path (default: movies.csv)
//   - CATALOG_MAX_RECORDS: cap on loaded movies, 0 = unlimited (default: 0)
//   - MONGO_URI: MongoDB connection string
//   - MONGO_DATABASE: database name (default: kinograph)
//   - MONGO_COLLECTION: collection name (default: movies)
//   - MONGO_TIMEOUT: per-operation timeout (default: 10s)
type CatalogConfig struct {
	// Source is the catalog backend: "csv" or "mongodb".
	// Default: csv
	Source string `koanf:"source"`

	// Path is the CSV file location for the csv source.
	// Default: movies.csv
	Path string `koanf:"path"`

	// MaxRecords caps the number of movies loaded. Zero means unlimited.
	// Default: 0
	MaxRecords int `koanf:"max_records"`

	// Mongo configures the mongodb source.
	Mongo MongoConfig `koanf:"mongo"`
}

// MongoConfig holds MongoDB connection settings for the catalog source.
type MongoConfig struct {
	URI        string        `koanf:"uri"`
	Database   string        `koanf:"database"`
	Collection string        `koanf:"collection"`
	Timeout    time.Duration `koanf:"timeout"`
}

// RecommendConfig tunes the recommendation engine and its response cache.
//
// Environment Variables:
//   - RECOMMEND_GENRE_WEIGHT: default genre weight 0-10 (default: 5)
//   - RECOMMEND_RATING_WEIGHT: default rating weight 0-10 (default: 5)
//   - RECOMMEND_DIRECTOR_WEIGHT: default director weight 0-10 (default: 5)
//   - RECOMMEND_DEFAULT_RESULTS: result count when unset (default: 20)
//   - RECOMMEND_MAX_RESULTS: per-request result cap (default: 100)
//   - CACHE_ENABLED: response caching on/off (default: true)
//   - CACHE_BACKEND: "memory" or "redis" (default: memory)
//   - CACHE_TTL: cache entry lifetime (default: 5m)
//   - CACHE_MAX_ENTRIES: in-memory entry cap (default: 10000)
//   - REDIS_ADDR: host:port of the redis server
//   - REDIS_PASSWORD: redis password (default: empty)
//   - REDIS_DB: redis logical database (default: 0)
type RecommendConfig struct {
	// DefaultWeights apply when a request carries no weights.
	DefaultWeights WeightsConfig `koanf:"default_weights"`

	// DefaultResults is the result count for requests that do not set one.
	// Default: 20
	DefaultResults int `koanf:"default_results"`

	// MaxResults caps the per-request result count.
	// Default: 100
	MaxResults int `koanf:"max_results"`

	// Cache configures the response cache.
	Cache CacheConfig `koanf:"cache"`
}

// WeightsConfig holds the default relation weights, each 0-10.
type WeightsConfig struct {
	Genre    int `koanf:"genre"`
	Rating   int `koanf:"rating"`
	Director int `koanf:"director"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Backend    string        `koanf:"backend"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
	Redis      RedisConfig   `koanf:"redis"`
	Breaker    BreakerConfig `koanf:"breaker"`
}

// RedisConfig holds redis connection settings for the cache backend.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// BreakerConfig tunes the circuit breaker guarding redis calls.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// SecurityConfig holds the HTTP hardening settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - TRUSTED_PROXIES: comma-separated proxy CIDRs trusted for client IPs
//   - RATE_LIMIT_REQS: requests allowed per window (default: 100)
//   - RATE_LIMIT_WINDOW: rate limit window (default: 1m)
//   - RATE_LIMIT_DISABLED: disable rate limiting entirely (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig feeds the zerolog setup in internal/logging.
//
// Environment Variables:
//   - LOG_LEVEL: lowest level emitted, trace through error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: stamp file:line on each event (default: false)
type LoggingConfig struct {
	// Level drops events below it: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format chooses json (machine-parseable) or console (for
	// development) output.
	// Default: json
	Format string `koanf:"format"`

	// Caller stamps each event with the emitting file:line.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Catalog source backends selectable via CatalogConfig.Source.
const (
	SourceCSV     = "csv"
	SourceMongoDB = "mongodb"
)

// Environments selectable via ServerConfig.Environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// IsProduction reports whether the server runs in production mode.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}
