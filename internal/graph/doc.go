// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package graph builds and serves the movie similarity graph.
//
// The graph is an adjacency map from movie ID to typed relations. Two movies
// are related when at least one of three predicates holds:
//
//   - shared genre (case-insensitive exact match)
//   - close rating (absolute difference at most RatingTolerance, inclusive)
//   - shared director (case-insensitive exact match)
//
// Each holding predicate contributes its own relation kind, so a pair can be
// connected up to three times under different kinds. Relations are stored
// symmetrically: A relating to B implies B relating to A under the same
// kind.
//
// Build compares every unordered pair of catalog records once. The cost is
// O(n^2) in catalog size, which is deliberate: Kinograph targets catalogs of
// hundreds of movies, where a full pairwise pass is cheaper to reason about
// than an index. The graph is constructed once at startup, after the catalog
// is populated, and is read-only from then on.
//
// A small FIFO Queue is included for breadth-first traversal. The one-hop
// ranker never needs it; component counting in Stats uses it, and multi-hop
// exploration can build on it.
package graph
