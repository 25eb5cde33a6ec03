// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kinograph/kinograph/internal/metrics"
)

const redisBreakerName = "redis_cache"

// redisCache stores responses in Redis behind a circuit breaker. Every
// failure path degrades to a cache miss: a broken or unreachable Redis
// slows nothing down once the breaker opens and never fails a request.
type redisCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	ttl     time.Duration
	logger  zerolog.Logger
}

func newRedisCache(cfg CacheConfig, logger zerolog.Logger) *redisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	c := &redisCache{
		client: client,
		ttl:    cfg.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
	c.breaker = newCacheBreaker(cfg.Breaker, c.logger)

	// Probe the server once so a misconfigured address surfaces in the
	// logs at boot. The cache still degrades rather than failing.
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		c.logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).
			Msg("Redis unreachable, cache will degrade to misses")
	}

	return c
}

// newCacheBreaker builds the circuit breaker guarding Redis calls.
// A cache miss (redis.Nil) counts as success so an empty cache cannot
// trip the breaker.
func newCacheBreaker(cfg BreakerConfig, logger zerolog.Logger) *gobreaker.CircuitBreaker[[]byte] {
	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = 3
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = time.Minute
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 10
	}
	failureRatio := cfg.FailureRatio
	if failureRatio == 0 {
		failureRatio = 0.6
	}

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        redisBreakerName,
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minRequests && ratio >= failureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateGauge(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateLabel(from), stateLabel(to)).Inc()
			logger.Warn().
				Str("from", stateLabel(from)).
				Str("to", stateLabel(to)).
				Msg("Redis circuit breaker state changed")
		},
	})
}

func (c *redisCache) Get(ctx context.Context, key string) *Response {
	data, err := c.breaker.Execute(func() ([]byte, error) {
		return c.client.Get(ctx, key).Bytes()
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			recordBreakerResult(nil)
			return nil
		}
		recordBreakerResult(err)
		c.logger.Debug().Err(err).Msg("Redis read degraded to miss")
		return nil
	}
	recordBreakerResult(nil)

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Discarding corrupt cache entry")
		return nil
	}
	return &resp
}

func (c *redisCache) Set(ctx context.Context, key string, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to encode response for cache")
		return
	}

	_, err = c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, key, data, c.ttl).Err()
	})
	recordBreakerResult(err)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Redis write dropped")
	}
}

func (c *redisCache) Name() string { return CacheBackendRedis }

func (c *redisCache) Close() error {
	return c.client.Close()
}

// recordBreakerResult classifies one pass through the breaker for the
// request counter. Rejections are calls the breaker refused to attempt.
func recordBreakerResult(err error) {
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(redisBreakerName, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(redisBreakerName, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(redisBreakerName, "failure").Inc()
	}
}

// stateGauge maps a breaker state to the value exported on the state
// gauge: 0 closed, 1 half-open, 2 open.
func stateGauge(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateLabel(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
