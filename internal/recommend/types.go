// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package recommend

import (
	"time"

	"github.com/kinograph/kinograph/internal/catalog"
)

// Weights control how strongly each relation kind contributes to a
// candidate's score. Valid values are 0 through 10; a zero weight mutes
// its relation kind entirely.
type Weights struct {
	// Genre is the contribution of a shared-genre relation.
	Genre int `json:"genre"`

	// Rating is the contribution of a close-rating relation.
	Rating int `json:"rating"`

	// Director is the contribution of a shared-director relation.
	Director int `json:"director"`
}

// IsZero reports whether every weight is zero.
func (w Weights) IsZero() bool {
	return w.Genre == 0 && w.Rating == 0 && w.Director == 0
}

// Candidate is one scored movie produced by Rank, before the full
// catalog record is resolved into a Recommendation.
type Candidate struct {
	// MovieID identifies the candidate movie.
	MovieID int `json:"movie_id"`

	// Score is the accumulated weight across all relations to the base.
	Score int `json:"score"`

	// Rating is the candidate's catalog rating, used for tie-breaking.
	Rating float64 `json:"rating"`
}

// Request describes one recommendation request. The base movie is
// selected by MovieID when positive, otherwise by MovieName.
type Request struct {
	// MovieID selects the base movie by catalog ID.
	MovieID int `json:"movie_id"`

	// MovieName selects the base movie by title when MovieID is unset.
	// Matching is case-insensitive: exact title first, then substring.
	MovieName string `json:"movie_name"`

	// Weights override the configured defaults. Nil applies defaults.
	Weights *Weights `json:"weights,omitempty"`

	// MaxResults caps the number of recommendations. Zero applies the
	// configured default; values above the configured maximum are
	// clamped down to it.
	MaxResults int `json:"max_results"`
}

// Recommendation is one recommended movie together with its score.
type Recommendation struct {
	catalog.Movie

	// Score is the accumulated relation weight against the base movie.
	Score int `json:"score"`
}

// Response is a complete recommendation response.
type Response struct {
	// BaseMovie is the resolved movie the recommendations relate to.
	BaseMovie catalog.Movie `json:"base_movie"`

	// Recommendations are ordered by score, then rating, descending.
	Recommendations []Recommendation `json:"recommendations"`

	// Weights are the weights the ranking actually used.
	Weights Weights `json:"weights"`

	// Metadata carries timing and cache information.
	Metadata Metadata `json:"metadata"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	// CacheHit is true when the response was served from the cache.
	CacheHit bool `json:"cache_hit"`

	// LatencyMS is the total request latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp marks when the response was computed, which for cache
	// hits predates the request.
	Timestamp time.Time `json:"timestamp"`
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	// Requests counts Recommend calls since boot.
	Requests int64 `json:"requests"`

	// CacheHits counts responses served from the cache.
	CacheHits int64 `json:"cache_hits"`

	// CacheMisses counts responses computed from the graph.
	CacheMisses int64 `json:"cache_misses"`

	// Errors counts failed Recommend calls.
	Errors int64 `json:"errors"`

	// CatalogSize is the number of movies in the catalog.
	CatalogSize int `json:"catalog_size"`

	// GraphNodes is the number of movies with at least one relation.
	GraphNodes int `json:"graph_nodes"`

	// GraphRelations is the number of directed relations in the graph.
	GraphRelations int `json:"graph_relations"`
}
