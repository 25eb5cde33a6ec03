// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/graph"
	"github.com/kinograph/kinograph/internal/metrics"
)

// Engine answers recommendation requests against a populated catalog
// and similarity graph. It is safe for concurrent use; the store and
// graph must not be mutated after the engine is constructed.
type Engine struct {
	store  *catalog.Store
	graph  *graph.Graph
	config *Config
	cache  ResponseCache
	logger zerolog.Logger

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine constructs an engine over a built store and graph. A nil
// cfg applies DefaultConfig.
func NewEngine(store *catalog.Store, g *graph.Graph, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}
	if g == nil {
		return nil, errors.New("similarity graph is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	e := &Engine{
		store:  store,
		graph:  g,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	e.cache = e.newCache()

	e.logger.Info().
		Str("cache_backend", e.cache.Name()).
		Int("default_results", cfg.DefaultResults).
		Int("max_results", cfg.MaxResults).
		Msg("Recommendation engine ready")
	return e, nil
}

func (e *Engine) newCache() ResponseCache {
	if !e.config.Cache.Enabled {
		return noopCache{}
	}
	switch e.config.Cache.Backend {
	case CacheBackendRedis:
		return newRedisCache(e.config.Cache, e.logger)
	default:
		return newMemoryCache(e.config.Cache.TTL, e.config.Cache.MaxEntries)
	}
}

// Recommend resolves the base movie, ranks its neighborhood, and
// returns a fully resolved response. An unknown movie returns an error
// wrapping catalog.ErrMovieNotFound; everything else sparse about the
// input (no relations, muted weights) shows up as an empty result.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)

	base, err := e.resolveBase(req)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(time.Since(start), 0, err)
		return nil, err
	}

	key := cacheKey(base.ID, *req.Weights, req.MaxResults)
	if resp := e.cache.Get(ctx, key); resp != nil {
		e.cacheHits.Add(1)
		metrics.RecordCacheHit(e.cache.Name())
		resp.Metadata.CacheHit = true
		resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
		metrics.RecordRecommendation(time.Since(start), len(resp.Recommendations), nil)
		e.logger.Debug().
			Int("movie_id", base.ID).
			Int("results", len(resp.Recommendations)).
			Msg("Served recommendations from cache")
		return resp, nil
	}
	e.cacheMisses.Add(1)
	metrics.RecordCacheMiss(e.cache.Name())

	candidates := Rank(e.graph, e.store, base.ID, *req.Weights, req.MaxResults)
	metrics.RecommendationCandidates.Observe(float64(len(candidates)))

	resp := e.buildResponse(base, candidates, *req.Weights, start)
	e.cache.Set(ctx, key, resp)

	metrics.RecordRecommendation(time.Since(start), len(resp.Recommendations), nil)
	e.logger.Debug().
		Int("movie_id", base.ID).
		Int("results", len(resp.Recommendations)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("Computed recommendations")
	return resp, nil
}

// prepareRequest fills defaults and clamps the result limit.
func (e *Engine) prepareRequest(req Request) Request {
	if req.Weights == nil {
		w := e.config.DefaultWeights
		req.Weights = &w
	}
	if req.MaxResults <= 0 {
		req.MaxResults = e.config.DefaultResults
	}
	if req.MaxResults > e.config.MaxResults {
		req.MaxResults = e.config.MaxResults
	}
	return req
}

// resolveBase looks up the base movie by ID when set, by name otherwise.
func (e *Engine) resolveBase(req Request) (catalog.Movie, error) {
	if req.MovieID > 0 {
		movie, ok := e.store.Lookup(req.MovieID)
		if !ok {
			return catalog.Movie{}, fmt.Errorf("resolve movie %d: %w", req.MovieID, catalog.ErrMovieNotFound)
		}
		return movie, nil
	}

	movie, err := e.store.FindByName(req.MovieName)
	if err != nil {
		return catalog.Movie{}, fmt.Errorf("resolve movie %q: %w", req.MovieName, err)
	}
	return movie, nil
}

// buildResponse resolves candidates into full movie records.
func (e *Engine) buildResponse(base catalog.Movie, candidates []Candidate, w Weights, start time.Time) *Response {
	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		movie, ok := e.store.Lookup(c.MovieID)
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{Movie: movie, Score: c.Score})
	}

	return &Response{
		BaseMovie:       base,
		Recommendations: recs,
		Weights:         w,
		Metadata: Metadata{
			LatencyMS: time.Since(start).Milliseconds(),
			Timestamp: time.Now().UTC(),
		},
	}
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	gs := e.graph.Stats()
	return Stats{
		Requests:       e.requestCount.Load(),
		CacheHits:      e.cacheHits.Load(),
		CacheMisses:    e.cacheMisses.Load(),
		Errors:         e.errorCount.Load(),
		CatalogSize:    e.store.Len(),
		GraphNodes:     gs.Nodes,
		GraphRelations: gs.Relations,
	}
}

// Close releases cache resources.
func (e *Engine) Close() error {
	return e.cache.Close()
}

// cacheKey covers everything that shapes a response.
func cacheKey(baseID int, w Weights, maxResults int) string {
	return fmt.Sprintf("rec:%d:%d:%d:%d:%d", baseID, w.Genre, w.Rating, w.Director, maxResults)
}
