// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package config provides centralized configuration management for Kinograph.

This package handles loading, merging, and validation of server settings
from defaults, an optional YAML file, and environment variables. It ensures
the rest of the application only ever sees a fully validated *Config.

# Configuration Sources

Configuration is merged from three layers, later layers overriding earlier
ones:

 1. Built-in defaults (see the Defaults section below)
 2. A YAML config file, located via CONFIG_PATH or the well-known paths
    in DefaultConfigPaths (config.yaml, /etc/kinograph/config.yaml, ...)
 3. Environment variables (production/Docker)

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeouts, environment)
  - CatalogConfig: movie catalog source (CSV file or MongoDB)
  - RecommendConfig: scoring weights, result limits, and response caching
  - SecurityConfig: CORS, trusted proxies, and rate limiting
  - LoggingConfig: log level, format, and caller reporting

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_READ_TIMEOUT: Request read timeout (default: 15s)
  - HTTP_WRITE_TIMEOUT: Response write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 15s)
  - ENVIRONMENT: development, staging, or production (default: development)

Catalog (CatalogConfig):
  - CATALOG_SOURCE: Catalog backend, csv or mongodb (default: csv)
  - CATALOG_PATH: CSV file path (default: movies.csv, required for csv)
  - CATALOG_MAX_RECORDS: Load at most N records, 0 = unlimited (default: 0)
  - MONGO_URI: MongoDB connection string (required for mongodb)
  - MONGO_DATABASE: Database name (default: kinograph)
  - MONGO_COLLECTION: Collection name (default: movies)
  - MONGO_TIMEOUT: Per-operation timeout (default: 10s)

Recommendations (RecommendConfig):
  - RECOMMEND_GENRE_WEIGHT: Points per shared genre, 0-10 (default: 5)
  - RECOMMEND_RATING_WEIGHT: Points per close rating, 0-10 (default: 5)
  - RECOMMEND_DIRECTOR_WEIGHT: Points per shared director, 0-10 (default: 5)
  - RECOMMEND_DEFAULT_RESULTS: Results when unspecified (default: 20)
  - RECOMMEND_MAX_RESULTS: Hard cap per request (default: 100)

Response Cache (CacheConfig):
  - CACHE_ENABLED: Enable response caching (default: true)
  - CACHE_BACKEND: memory or redis (default: memory)
  - CACHE_TTL: Entry time-to-live (default: 5m)
  - CACHE_MAX_ENTRIES: Memory backend capacity (default: 10000)
  - REDIS_ADDR: Redis host:port (required for redis backend)
  - REDIS_PASSWORD: Redis password (default: none)
  - REDIS_DB: Redis database number (default: 0)
  - CACHE_BREAKER_MAX_REQUESTS: Half-open probe budget (default: 3)
  - CACHE_BREAKER_INTERVAL: Closed-state counter reset (default: 1m)
  - CACHE_BREAKER_TIMEOUT: Open-state cooldown (default: 2m)
  - CACHE_BREAKER_MIN_REQUESTS: Min samples before tripping (default: 10)
  - CACHE_BREAKER_FAILURE_RATIO: Trip threshold, 0-1 (default: 0.6)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - TRUSTED_PROXIES: Comma-separated proxy IPs/CIDRs (default: none)
  - RATE_LIMIT_REQS: Requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - RATE_LIMIT_DISABLED: Disable rate limiting (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: Lowest level emitted, trace through error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line in log events (default: false)

# Usage Example

Basic configuration loading:

	import "github.com/kinograph/kinograph/internal/config"

	// Load configuration from defaults, file, and environment
	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}

	// Access configuration values
	fmt.Printf("Starting server on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Catalog source: %s\n", cfg.Catalog.Source)

Testing with custom configuration:

	// t.Setenv values win over file and defaults
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("CATALOG_PATH", "testdata/movies.csv")

	cfg, err := config.Load()

# Validation

Load validates the merged result before returning it:

  - Numeric ranges: HTTP_PORT (1-65535), weights (0-10)
  - Consistency: RECOMMEND_MAX_RESULTS >= RECOMMEND_DEFAULT_RESULTS
  - Conditional requirements: CATALOG_PATH for csv, MONGO_URI for
    mongodb, REDIS_ADDR for the redis cache backend
  - Enumerations: ENVIRONMENT, CATALOG_SOURCE, CACHE_BACKEND,
    LOG_LEVEL, LOG_FORMAT

Validation errors name the environment variable that controls the
offending field, which keeps container deployments debuggable without
reading this package.

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for
concurrent access from multiple goroutines without synchronization.

# See Also

  - config.yaml.example: Complete configuration template
  - README.md: User-facing configuration documentation
*/
package config
