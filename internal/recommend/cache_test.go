// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/kinograph/kinograph/internal/catalog"
)

func cachedResponse(baseID int) *Response {
	return &Response{
		BaseMovie: catalog.Movie{ID: baseID, Title: "Base", Genre: "Action", Rating: 8.0, Director: "Stone"},
		Recommendations: []Recommendation{
			{Movie: catalog.Movie{ID: baseID + 1, Title: "Rec", Genre: "Action", Rating: 7.5, Director: "Young"}, Score: 5},
		},
		Weights:  Weights{Genre: 5, Rating: 3, Director: 2},
		Metadata: Metadata{Timestamp: time.Now().UTC()},
	}
}

func TestMemoryCache_GetSet(t *testing.T) {
	t.Parallel()

	c := newMemoryCache(time.Minute, 10)
	ctx := context.Background()

	if got := c.Get(ctx, "missing"); got != nil {
		t.Errorf("Get() on empty cache = %+v, want nil", got)
	}

	c.Set(ctx, "k1", cachedResponse(1))
	got := c.Get(ctx, "k1")
	if got == nil {
		t.Fatal("Get() after Set() = nil, want cached response")
	}
	if got.BaseMovie.ID != 1 {
		t.Errorf("BaseMovie.ID = %d, want 1", got.BaseMovie.ID)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	c := newMemoryCache(15*time.Millisecond, 10)
	ctx := context.Background()

	c.Set(ctx, "k1", cachedResponse(1))
	time.Sleep(40 * time.Millisecond)

	if got := c.Get(ctx, "k1"); got != nil {
		t.Errorf("Get() after TTL = %+v, want nil", got)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	c := newMemoryCache(time.Minute, 10)
	ctx := context.Background()
	c.Set(ctx, "k1", cachedResponse(1))

	first := c.Get(ctx, "k1")
	first.Metadata.CacheHit = true
	first.Recommendations[0].Score = 999

	second := c.Get(ctx, "k1")
	if second.Metadata.CacheHit {
		t.Error("mutating a returned response leaked into the cache (CacheHit)")
	}
	if second.Recommendations[0].Score != 5 {
		t.Errorf("Recommendations[0].Score = %d, want 5", second.Recommendations[0].Score)
	}
}

func TestMemoryCache_SetCopiesInput(t *testing.T) {
	t.Parallel()

	c := newMemoryCache(time.Minute, 10)
	ctx := context.Background()

	resp := cachedResponse(1)
	c.Set(ctx, "k1", resp)
	resp.Recommendations[0].Score = 999

	if got := c.Get(ctx, "k1"); got.Recommendations[0].Score != 5 {
		t.Errorf("Recommendations[0].Score = %d, want 5", got.Recommendations[0].Score)
	}
}

func TestMemoryCache_EvictsExpiredAtCap(t *testing.T) {
	t.Parallel()

	c := newMemoryCache(15*time.Millisecond, 2)
	ctx := context.Background()

	c.Set(ctx, "k1", cachedResponse(1))
	c.Set(ctx, "k2", cachedResponse(2))
	time.Sleep(40 * time.Millisecond)

	// Both entries are expired; hitting the cap sweeps them out.
	c.Set(ctx, "k3", cachedResponse(3))

	if got := c.len(); got != 1 {
		t.Errorf("len() = %d, want 1 after sweeping expired entries", got)
	}
	if got := c.Get(ctx, "k3"); got == nil {
		t.Error("Get(k3) = nil, want the fresh entry to survive the sweep")
	}
}

func TestNoopCache(t *testing.T) {
	t.Parallel()

	c := noopCache{}
	ctx := context.Background()

	c.Set(ctx, "k1", cachedResponse(1))
	if got := c.Get(ctx, "k1"); got != nil {
		t.Errorf("Get() = %+v, want nil", got)
	}
	if got := c.Name(); got != "none" {
		t.Errorf("Name() = %q, want %q", got, "none")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestCacheKey_CoversRequestShape(t *testing.T) {
	t.Parallel()

	base := cacheKey(1, Weights{Genre: 5, Rating: 3, Director: 2}, 10)
	variants := []string{
		cacheKey(2, Weights{Genre: 5, Rating: 3, Director: 2}, 10),
		cacheKey(1, Weights{Genre: 6, Rating: 3, Director: 2}, 10),
		cacheKey(1, Weights{Genre: 5, Rating: 4, Director: 2}, 10),
		cacheKey(1, Weights{Genre: 5, Rating: 3, Director: 3}, 10),
		cacheKey(1, Weights{Genre: 5, Rating: 3, Director: 2}, 20),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d produced the same key %q, want distinct", i, v)
		}
	}

	if again := cacheKey(1, Weights{Genre: 5, Rating: 3, Director: 2}, 10); again != base {
		t.Errorf("cacheKey() not deterministic: %q vs %q", base, again)
	}
}
