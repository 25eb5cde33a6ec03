// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package recommend

import (
	"context"
	"sync"
	"time"

	"github.com/kinograph/kinograph/internal/metrics"
)

// ResponseCache stores computed responses keyed by request shape.
// Implementations absorb their own failures: a broken backend behaves
// like a cache miss and must never fail a request.
type ResponseCache interface {
	// Get returns a copy of the cached response for key, or nil on miss.
	Get(ctx context.Context, key string) *Response

	// Set stores resp under key for the configured TTL.
	Set(ctx context.Context, key string, resp *Response)

	// Name identifies the backend in logs and metric labels.
	Name() string

	// Close releases backend resources.
	Close() error
}

type cacheEntry struct {
	response  *Response
	expiresAt time.Time
}

// memoryCache is an in-process TTL cache. Entries expire lazily: reads
// treat expired entries as misses, and writes sweep them out once the
// entry cap is reached.
type memoryCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
}

func newMemoryCache(ttl time.Duration, maxEntries int) *memoryCache {
	return &memoryCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns a copy so callers can adjust response metadata without
// mutating the cached entry.
func (c *memoryCache) Get(_ context.Context, key string) *Response {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return copyResponse(entry.response)
}

func (c *memoryCache) Set(_ context.Context, key string, resp *Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictExpiredLocked()
	}
	c.entries[key] = cacheEntry{
		response:  copyResponse(resp),
		expiresAt: time.Now().Add(c.ttl),
	}
	metrics.CacheSize.WithLabelValues(CacheBackendMemory).Set(float64(len(c.entries)))
}

func (c *memoryCache) Name() string { return CacheBackendMemory }

func (c *memoryCache) Close() error { return nil }

// len reports the current entry count, expired entries included.
func (c *memoryCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictExpiredLocked removes expired entries. Caller must hold the
// write lock.
func (c *memoryCache) evictExpiredLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			metrics.CacheEvictions.WithLabelValues(CacheBackendMemory).Inc()
		}
	}
}

// copyResponse returns a deep enough copy of resp for safe mutation of
// the metadata and the recommendations slice.
func copyResponse(resp *Response) *Response {
	if resp == nil {
		return nil
	}
	out := *resp
	out.Recommendations = make([]Recommendation, len(resp.Recommendations))
	copy(out.Recommendations, resp.Recommendations)
	return &out
}

// noopCache is used when caching is disabled.
type noopCache struct{}

func (noopCache) Get(context.Context, string) *Response { return nil }
func (noopCache) Set(context.Context, string, *Response) {}
func (noopCache) Name() string { return "none" }
func (noopCache) Close() error { return nil }
