// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Store is a thread-safe, in-memory movie catalog keyed by movie ID.
//
// Inserting a record whose ID is already present replaces the stored entry
// (last write wins). The insert counter still advances on overwrites, so
// Inserted() can exceed Len() when a source contains duplicate IDs.
type Store struct {
	mu sync.RWMutex

	// movies maps movie ID to its catalog record
	movies map[int]Movie

	// inserted counts every Insert call, including overwrites
	inserted int
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		movies: make(map[int]Movie),
	}
}

// Insert adds a record to the catalog. A record with a duplicate ID
// replaces the existing entry.
func (s *Store) Insert(m Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies[m.ID] = m
	s.inserted++
}

// Lookup retrieves a record by ID.
func (s *Store) Lookup(id int) (Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	return m, ok
}

// Len returns the number of distinct movies in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.movies)
}

// Inserted returns the total number of Insert calls, counting overwrites.
func (s *Store) Inserted() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inserted
}

// Movies returns every record ordered by ascending ID. The slice is a copy
// and safe to retain; graph construction depends on this ordering being
// stable.
func (s *Store) Movies() []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedMovies()
}

// FindByName resolves a record by title, case-insensitively. An exact title
// match wins; otherwise the substring match with the lowest ID is returned.
// Returns ErrMovieNotFound when nothing matches.
func (s *Store) FindByName(name string) (Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Movie{}, ErrMovieNotFound
	}

	var (
		partial    Movie
		hasPartial bool
	)
	for _, m := range s.sortedMovies() {
		title := strings.ToLower(m.Title)
		if title == needle {
			return m, nil
		}
		if !hasPartial && strings.Contains(title, needle) {
			partial = m
			hasPartial = true
		}
	}

	if hasPartial {
		return partial, nil
	}
	return Movie{}, ErrMovieNotFound
}

// Search returns up to limit records whose titles contain name,
// case-insensitively, ordered by ascending ID. A limit <= 0 returns nil.
func (s *Store) Search(name string, limit int) []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return nil
	}

	needle := strings.ToLower(strings.TrimSpace(name))

	var out []Movie
	for _, m := range s.sortedMovies() {
		if !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// The helpers below assume the caller holds s.mu.

// sortedMovies returns all records ordered by ascending ID.
func (s *Store) sortedMovies() []Movie {
	ids := make([]int, 0, len(s.movies))
	for id := range s.movies {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.movies[id])
	}
	return out
}
