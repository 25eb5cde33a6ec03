// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package recommend

import (
	"sort"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/graph"
)

// Rank scores every movie related to baseID and returns at most
// maxResults candidates ordered by score descending, then rating
// descending. Each relation contributes the weight configured for its
// kind, and a neighbor reachable through several kinds accumulates all
// of them.
//
// Rank is pure: it never mutates the graph or the store, and identical
// inputs produce identical output. Equal (score, rating) candidates keep
// the order in which the graph enumerates relations.
//
// An unknown baseID, all-zero weights, or a non-positive maxResults
// yield an empty result. Candidates scoring zero or less, and candidates
// no longer resolvable in the store, are dropped.
func Rank(g *graph.Graph, store *catalog.Store, baseID int, w Weights, maxResults int) []Candidate {
	if maxResults <= 0 || w.IsZero() {
		return nil
	}

	relations := g.Neighbors(baseID)
	if len(relations) == 0 {
		return nil
	}

	// Accumulate one score per distinct neighbor. The order slice
	// preserves first-seen order so ties stay deterministic.
	scores := make(map[int]int, len(relations))
	order := make([]int, 0, len(relations))
	for _, rel := range relations {
		if rel.TargetID == baseID {
			continue
		}
		if _, seen := scores[rel.TargetID]; !seen {
			order = append(order, rel.TargetID)
		}
		scores[rel.TargetID] += w.forKind(rel.Kind)
	}

	candidates := make([]Candidate, 0, len(order))
	for _, id := range order {
		score := scores[id]
		if score <= 0 {
			continue
		}
		movie, ok := store.Lookup(id)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{
			MovieID: id,
			Score:   score,
			Rating:  movie.Rating,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Rating > candidates[j].Rating
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	return candidates
}

// forKind returns the weight configured for a relation kind. Unknown
// kinds score zero.
func (w Weights) forKind(kind graph.RelationKind) int {
	switch kind {
	case graph.GenreSimilar:
		return w.Genre
	case graph.RatingSimilar:
		return w.Rating
	case graph.DirectorSimilar:
		return w.Director
	default:
		return 0
	}
}
