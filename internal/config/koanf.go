// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/kinograph/config.yaml",
	"/etc/kinograph/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaults returns the built-in configuration. Fields whose default is
// the zero value are omitted from the literal.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     EnvDevelopment,
		},
		Catalog: CatalogConfig{
			Source: SourceCSV,
			Path:   "movies.csv",
			Mongo: MongoConfig{
				Database:   "kinograph",
				Collection: "movies",
				Timeout:    10 * time.Second,
			},
		},
		Recommend: RecommendConfig{
			DefaultWeights: WeightsConfig{
				Genre:    5,
				Rating:   5,
				Director: 5,
			},
			DefaultResults: 20,
			MaxResults:     100,
			Cache: CacheConfig{
				Enabled:    true,
				Backend:    "memory",
				TTL:        5 * time.Minute,
				MaxEntries: 10000,
				Breaker: BreakerConfig{
					MaxRequests:  3,
					Interval:     time.Minute,
					Timeout:      2 * time.Minute,
					MinRequests:  10,
					FailureRatio: 0.6,
				},
			},
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from three layered sources:
//  1. Built-in defaults
//  2. An optional YAML config file
//  3. Environment variables
//
// Later layers win. The merged result is validated before it is
// returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := resolveConfigPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", mapEnvVar), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	// Environment values arrive as plain strings; comma-split the
	// fields that hold lists.
	if err := splitListValues(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}
	return &cfg, nil
}

// resolveConfigPath returns the first config file present on disk. A
// path named by CONFIG_PATH is tried ahead of the defaults; empty
// means run on defaults and environment alone.
func resolveConfigPath() string {
	candidates := DefaultConfigPaths
	if override := os.Getenv(ConfigPathEnvVar); override != "" {
		candidates = append([]string{override}, candidates...)
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// envListPaths holds the config paths whose values are lists. A YAML
// file delivers real slices; the environment delivers one
// comma-separated string.
var envListPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// splitListValues rewrites comma-separated environment strings at the
// known list paths into proper slices.
func splitListValues(k *koanf.Koanf) error {
	for _, path := range envListPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}
		var items []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		if len(items) == 0 {
			continue
		}
		if err := k.Set(path, items); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}

// envVarPaths maps recognized environment variables to their dotted
// config paths. Anything not listed here is ignored, which keeps
// unrelated process environment out of the configuration.
var envVarPaths = map[string]string{
	// Server
	"http_host":          "server.host",
	"http_port":          "server.port",
	"http_read_timeout":  "server.read_timeout",
	"http_write_timeout": "server.write_timeout",
	"shutdown_timeout":   "server.shutdown_timeout",
	"environment":        "server.environment",

	// Catalog
	"catalog_source":      "catalog.source",
	"catalog_path":        "catalog.path",
	"catalog_max_records": "catalog.max_records",
	"mongo_uri":           "catalog.mongo.uri",
	"mongo_database":      "catalog.mongo.database",
	"mongo_collection":    "catalog.mongo.collection",
	"mongo_timeout":       "catalog.mongo.timeout",

	// Recommendation engine
	"recommend_genre_weight":    "recommend.default_weights.genre",
	"recommend_rating_weight":   "recommend.default_weights.rating",
	"recommend_director_weight": "recommend.default_weights.director",
	"recommend_default_results": "recommend.default_results",
	"recommend_max_results":     "recommend.max_results",

	// Response cache
	"cache_enabled":               "recommend.cache.enabled",
	"cache_backend":               "recommend.cache.backend",
	"cache_ttl":                   "recommend.cache.ttl",
	"cache_max_entries":           "recommend.cache.max_entries",
	"redis_addr":                  "recommend.cache.redis.addr",
	"redis_password":              "recommend.cache.redis.password",
	"redis_db":                    "recommend.cache.redis.db",
	"cache_breaker_max_requests":  "recommend.cache.breaker.max_requests",
	"cache_breaker_interval":      "recommend.cache.breaker.interval",
	"cache_breaker_timeout":       "recommend.cache.breaker.timeout",
	"cache_breaker_min_requests":  "recommend.cache.breaker.min_requests",
	"cache_breaker_failure_ratio": "recommend.cache.breaker.failure_ratio",

	// Security
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",
	"rate_limit_reqs":     "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"rate_limit_disabled": "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// mapEnvVar translates one environment variable name for the koanf env
// provider. An empty result drops the variable.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_SOURCE -> catalog.source
//   - REDIS_ADDR -> recommend.cache.redis.addr
func mapEnvVar(key string) string {
	return envVarPaths[strings.ToLower(key)]
}
