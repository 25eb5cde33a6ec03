// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package graph

import (
	"math"
	"strings"
	"time"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/metrics"
)

// RatingTolerance is the inclusive rating distance within which two movies
// are considered similar. A difference of exactly 0.5 relates; 0.50001 does
// not.
const RatingTolerance = 0.5

// Build constructs the similarity graph from a full catalog snapshot.
//
// Every unordered pair of records is compared once, in ascending ID order
// with strict i < j pairing, so self-loops cannot occur. Each of the three
// predicates that holds adds a bidirectional relation of its kind. The pass
// is O(n^2) over catalog size; at the intended scale of hundreds of records
// that is cheaper to reason about than maintaining indexes.
func Build(store *catalog.Store) *Graph {
	log := logging.WithComponent("graph")
	start := time.Now()

	movies := store.Movies()
	g := NewGraph()

	for i := 0; i < len(movies); i++ {
		for j := i + 1; j < len(movies); j++ {
			a, b := movies[i], movies[j]

			if strings.EqualFold(a.Genre, b.Genre) {
				g.AddRelation(a.ID, b.ID, GenreSimilar)
			}
			if math.Abs(a.Rating-b.Rating) <= RatingTolerance {
				g.AddRelation(a.ID, b.ID, RatingSimilar)
			}
			if strings.EqualFold(a.Director, b.Director) {
				g.AddRelation(a.ID, b.ID, DirectorSimilar)
			}
		}
	}

	duration := time.Since(start)
	g.setBuildDuration(duration)

	pairs := len(movies) * (len(movies) - 1) / 2
	stats := g.Stats()
	metrics.RecordGraphBuild(duration, stats.Nodes, pairs, stats.ByKind)

	log.Info().
		Int("movies", len(movies)).
		Int("nodes", stats.Nodes).
		Int("relations", stats.Relations).
		Int("components", stats.Components).
		Int("pairs_compared", pairs).
		Dur("duration", duration).
		Msg("Similarity graph built")

	return g
}
