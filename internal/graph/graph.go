// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package graph

import (
	"sync"
	"time"
)

// Graph is the movie similarity graph: an adjacency map from movie ID to
// typed relations. Relations are symmetric and deduplicated per (target,
// kind) pair. Movies without any relation have no entry.
//
// The graph is built once at startup and read-only afterward; the mutex
// exists so concurrent API reads stay safe against a late build.
type Graph struct {
	mu sync.RWMutex

	// relations maps movie ID to its outgoing edges
	relations map[int][]Relation

	// relationCount tracks directed edges across all nodes
	relationCount int

	// byKind tracks directed edges per relation kind
	byKind map[RelationKind]int

	// buildDuration is recorded once by Build
	buildDuration time.Duration
}

// Stats is a snapshot of graph shape for the status and graph endpoints.
type Stats struct {
	Nodes           int            `json:"nodes"`
	Relations       int            `json:"relations"`
	ByKind          map[string]int `json:"relations_by_kind"`
	Components      int            `json:"components"`
	BuildDurationMS float64        `json:"build_duration_ms"`
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		relations: make(map[int][]Relation),
		byKind:    make(map[RelationKind]int),
	}
}

// AddRelation records that a and b are similar under kind, in both
// directions. Duplicate (target, kind) pairs are suppressed; relating a
// movie to itself is a no-op.
func (g *Graph) AddRelation(a, b int, kind RelationKind) {
	if a == b {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addDirected(a, b, kind)
	g.addDirected(b, a, kind)
}

// Neighbors returns the outgoing relations of id, nil when the movie has
// none. The slice is a copy and safe to retain.
func (g *Graph) Neighbors(id int) []Relation {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rels, ok := g.relations[id]
	if !ok {
		return nil
	}

	out := make([]Relation, len(rels))
	copy(out, rels)
	return out
}

// HasRelation reports whether a relates to b under kind.
func (g *Graph) HasRelation(a, b int, kind RelationKind) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasDirected(a, b, kind)
}

// NodeCount returns the number of movies with at least one relation.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.relations)
}

// RelationCount returns the number of directed edges. Every AddRelation
// call that inserts contributes two.
func (g *Graph) RelationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.relationCount
}

// Stats returns the current graph shape, including per-kind directed edge
// counts and the number of connected components.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	byKind := make(map[string]int, len(kinds))
	for _, k := range kinds {
		byKind[k.String()] = g.byKind[k]
	}

	return Stats{
		Nodes:           len(g.relations),
		Relations:       g.relationCount,
		ByKind:          byKind,
		Components:      g.components(),
		BuildDurationMS: float64(g.buildDuration.Microseconds()) / 1000.0,
	}
}

// Components returns the number of connected groups of related movies.
// Isolated movies, having no graph entry, are not counted.
func (g *Graph) Components() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.components()
}

// setBuildDuration records how long Build took, for Stats.
func (g *Graph) setBuildDuration(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.buildDuration = d
}

// addDirected and hasDirected assume the caller holds g.mu.

func (g *Graph) addDirected(from, to int, kind RelationKind) {
	if g.hasDirected(from, to, kind) {
		return
	}

	g.relations[from] = append(g.relations[from], Relation{TargetID: to, Kind: kind})
	g.relationCount++
	g.byKind[kind]++
}

func (g *Graph) hasDirected(from, to int, kind RelationKind) bool {
	for _, r := range g.relations[from] {
		if r.TargetID == to && r.Kind == kind {
			return true
		}
	}
	return false
}

// components counts connected groups with a breadth-first sweep over the
// adjacency map.
func (g *Graph) components() int {
	visited := make(map[int]bool, len(g.relations))
	count := 0

	for id := range g.relations {
		if visited[id] {
			continue
		}
		count++
		visited[id] = true

		q := NewQueue()
		q.Enqueue(id)
		for !q.Empty() {
			cur, _ := q.Dequeue()
			for _, rel := range g.relations[cur] {
				if !visited[rel.TargetID] {
					visited[rel.TargetID] = true
					q.Enqueue(rel.TargetID)
				}
			}
		}
	}

	return count
}
