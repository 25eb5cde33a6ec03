// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package graph

// RelationKind identifies why two movies are considered similar.
type RelationKind int

const (
	// GenreSimilar relates movies sharing a genre.
	GenreSimilar RelationKind = iota

	// RatingSimilar relates movies whose ratings differ by at most
	// RatingTolerance.
	RatingSimilar

	// DirectorSimilar relates movies sharing a director.
	DirectorSimilar
)

// kinds lists every RelationKind, in declaration order, for Stats iteration.
var kinds = [...]RelationKind{GenreSimilar, RatingSimilar, DirectorSimilar}

// String returns the label used in metrics and API payloads.
func (k RelationKind) String() string {
	switch k {
	case GenreSimilar:
		return "shared_genre"
	case RatingSimilar:
		return "close_rating"
	case DirectorSimilar:
		return "shared_director"
	default:
		return "unknown"
	}
}

// Relation is one directed edge in the similarity graph.
type Relation struct {
	TargetID int          `json:"target_id"`
	Kind     RelationKind `json:"kind"`
}
