// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package recommend scores and ranks movies over the similarity graph.
//
// # Architecture
//
// The package has two layers:
//
//   - Rank: a pure function that walks the one-hop neighborhood of a base
//     movie, accumulates per-kind weights into integer scores, and returns
//     candidates ordered by score, then rating.
//   - Engine: the request-facing orchestrator. It resolves the base movie
//     (by ID or by name), applies configured defaults, consults the
//     response cache, invokes Rank, and assembles the full response with
//     resolved movie records and timing metadata.
//
// # Scoring
//
// Every relation from the base movie to a neighbor contributes the weight
// configured for its kind (genre, rating, director). A neighbor reachable
// through several kinds accumulates all of them, so scores are additive.
// Candidates scoring zero or less are dropped, which means all-zero
// weights always produce an empty result.
//
// # Determinism
//
// Same catalog, weights, and base movie produce identical output. Sorting
// is stable: equal (score, rating) candidates keep the order in which the
// graph enumerates relations.
//
// # Caching
//
// Responses are cached keyed by (base movie, weights, result limit). Two
// backends exist: an in-process TTL map and Redis. The Redis backend is
// guarded by a circuit breaker; any cache failure degrades to a cache
// miss and never fails the request.
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	engine, err := recommend.NewEngine(store, g, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    MovieID:    42,
//	    MaxResults: 10,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog store and graph are
// read-only after boot, and the response cache guards its own state.
package recommend
