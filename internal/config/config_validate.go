// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package config

import (
	"fmt"
	"time"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

const maxWeight = 10

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the allowed server environments
var validEnvironments = map[string]bool{
	EnvDevelopment: true,
	EnvStaging:     true,
	EnvProduction:  true,
}

// validateServer validates the HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateCatalog validates the catalog source configuration
func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceCSV:
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=csv")
		}
	case SourceMongoDB:
		if c.Catalog.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required when CATALOG_SOURCE=mongodb")
		}
		if c.Catalog.Mongo.Database == "" {
			return fmt.Errorf("MONGO_DATABASE is required when CATALOG_SOURCE=mongodb")
		}
		if c.Catalog.Mongo.Collection == "" {
			return fmt.Errorf("MONGO_COLLECTION is required when CATALOG_SOURCE=mongodb")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: csv, mongodb")
	}

	if c.Catalog.MaxRecords < 0 {
		return fmt.Errorf("CATALOG_MAX_RECORDS must not be negative")
	}
	return nil
}

// validateRecommend validates the recommendation engine configuration
func (c *Config) validateRecommend() error {
	if err := c.validateWeights(); err != nil {
		return err
	}

	if c.Recommend.DefaultResults < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_RESULTS must be positive")
	}
	if c.Recommend.MaxResults < c.Recommend.DefaultResults {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be >= RECOMMEND_DEFAULT_RESULTS")
	}

	return c.validateCache()
}

// validateWeights validates the default relation weights
func (c *Config) validateWeights() error {
	weights := map[string]int{
		"RECOMMEND_GENRE_WEIGHT":    c.Recommend.DefaultWeights.Genre,
		"RECOMMEND_RATING_WEIGHT":   c.Recommend.DefaultWeights.Rating,
		"RECOMMEND_DIRECTOR_WEIGHT": c.Recommend.DefaultWeights.Director,
	}
	for name, w := range weights {
		if w < 0 || w > maxWeight {
			return fmt.Errorf("%s must be between 0 and %d", name, maxWeight)
		}
	}
	return nil
}

// validateCache validates the response cache configuration (only if enabled)
func (c *Config) validateCache() error {
	if !c.Recommend.Cache.Enabled {
		return nil
	}

	switch c.Recommend.Cache.Backend {
	case "memory":
		if c.Recommend.Cache.MaxEntries < 1 {
			return fmt.Errorf("CACHE_MAX_ENTRIES must be positive")
		}
	case "redis":
		if c.Recommend.Cache.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis")
	}

	if c.Recommend.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

// validateSecurity validates rate limiting bounds (only when enabled)
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels is the accepted LOG_LEVEL set.
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats is the accepted LOG_FORMAT set.
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging rejects unknown level or format names.
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
