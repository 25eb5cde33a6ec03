// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package recommend

import (
	"fmt"
	"time"
)

// MaxWeight is the largest accepted value for a single relation weight.
const MaxWeight = 10

// Cache backends selectable via CacheConfig.Backend.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config carries every knob the recommendation engine reads.
type Config struct {
	// DefaultWeights apply when a request carries no weights.
	// Default: 5 for every kind.
	DefaultWeights Weights `json:"default_weights"`

	// DefaultResults is the result count for requests that do not set one.
	// Default: 20.
	DefaultResults int `json:"default_results"`

	// MaxResults caps the per-request result count.
	// Default: 100.
	MaxResults int `json:"max_results"`

	// Cache contains response cache parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains response cache parameters.
type CacheConfig struct {
	// Enabled controls whether response caching is active.
	// Default: true.
	Enabled bool `json:"enabled"`

	// Backend selects the cache implementation: "memory" or "redis".
	// Default: "memory".
	Backend string `json:"backend"`

	// TTL bounds how long a cached response keeps being served.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of in-memory cache entries.
	// Ignored by the redis backend. Default: 10000.
	MaxEntries int `json:"max_entries"`

	// Redis configures the redis backend.
	Redis RedisConfig `json:"redis"`

	// Breaker configures the circuit breaker guarding redis calls.
	Breaker BreakerConfig `json:"breaker"`
}

// RedisConfig contains connection parameters for the redis cache backend.
type RedisConfig struct {
	// Addr is the host:port of the redis server.
	Addr string `json:"addr"`

	// Password authenticates against the server. Empty disables auth.
	Password string `json:"password"`

	// DB selects the redis logical database.
	DB int `json:"db"`
}

// BreakerConfig tunes the circuit breaker in front of redis. Zero values
// fall back to the defaults listed per field.
type BreakerConfig struct {
	// MaxRequests allowed through while the breaker is half-open.
	// Default: 3.
	MaxRequests uint32 `json:"max_requests"`

	// Interval after which the breaker resets its counts while closed.
	// Default: 1m.
	Interval time.Duration `json:"interval"`

	// Timeout before an open breaker transitions to half-open.
	// Default: 2m.
	Timeout time.Duration `json:"timeout"`

	// MinRequests observed before the failure ratio is evaluated.
	// Default: 10.
	MinRequests uint32 `json:"min_requests"`

	// FailureRatio at or above which the breaker trips.
	// Default: 0.6.
	FailureRatio float64 `json:"failure_ratio"`
}

// DefaultConfig returns the engine configuration the server ships with:
// every weight at 5, 20 results per query, in-memory caching on.
func DefaultConfig() *Config {
	return &Config{
		DefaultWeights: Weights{Genre: 5, Rating: 5, Director: 5},
		DefaultResults: 20,
		MaxResults:     100,
		Cache: CacheConfig{
			Enabled:    true,
			Backend:    CacheBackendMemory,
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
	}
}

// Validate reports the first out-of-range field, or nil when the
// configuration is usable.
func (c *Config) Validate() error {
	if err := validateWeight("default_weights.genre", c.DefaultWeights.Genre); err != nil {
		return err
	}
	if err := validateWeight("default_weights.rating", c.DefaultWeights.Rating); err != nil {
		return err
	}
	if err := validateWeight("default_weights.director", c.DefaultWeights.Director); err != nil {
		return err
	}

	if c.DefaultResults < 1 {
		return fmt.Errorf("default_results must be positive, got %d", c.DefaultResults)
	}
	if c.MaxResults < c.DefaultResults {
		return fmt.Errorf("max_results must be >= default_results, got %d < %d", c.MaxResults, c.DefaultResults)
	}

	if !c.Cache.Enabled {
		return nil
	}

	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("cache.backend must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	if c.Cache.Backend == CacheBackendMemory && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
	}
	if c.Cache.Backend == CacheBackendRedis && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for backend %q", c.Cache.Backend)
	}
	if r := c.Cache.Breaker.FailureRatio; r < 0 || r > 1 {
		return fmt.Errorf("cache.breaker.failure_ratio must be in [0, 1], got %f", r)
	}

	return nil
}

func validateWeight(field string, v int) error {
	if v < 0 || v > MaxWeight {
		return fmt.Errorf("%s must be in [0, %d], got %d", field, MaxWeight, v)
	}
	return nil
}
