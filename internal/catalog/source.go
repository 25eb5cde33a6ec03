// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/metrics"
)

// Source supplies catalog records from an external backing store.
type Source interface {
	// Name identifies the source in logs and metric labels.
	Name() string

	// Load fetches every record. Implementations honor ctx where the
	// backing store supports cancellation.
	Load(ctx context.Context) ([]Movie, error)
}

// Populate loads all records from src into s and records catalog metrics.
// Called once at startup, before the similarity graph is built.
func Populate(ctx context.Context, s *Store, src Source) error {
	start := time.Now()
	movies, err := src.Load(ctx)
	metrics.RecordCatalogLoad(time.Since(start), len(movies), err)
	if err != nil {
		return fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}

	for _, m := range movies {
		s.Insert(m)
	}
	metrics.CatalogMovies.Set(float64(s.Len()))

	log := logging.WithComponent("catalog")
	log.Info().
		Str("source", src.Name()).
		Int("records", s.Inserted()).
		Int("movies", s.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog populated")

	return nil
}

// LimitSource caps how many records an inner source may contribute.
// A max of zero or less passes everything through unchanged.
type LimitSource struct {
	inner Source
	max   int
}

// NewLimitSource wraps src so Load returns at most max records.
func NewLimitSource(src Source, max int) *LimitSource {
	return &LimitSource{inner: src, max: max}
}

// Name implements Source.
func (l *LimitSource) Name() string { return l.inner.Name() }

// Load delegates to the inner source and truncates the result.
func (l *LimitSource) Load(ctx context.Context) ([]Movie, error) {
	movies, err := l.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	if l.max > 0 && len(movies) > l.max {
		log := logging.WithComponent("catalog")
		log.Warn().
			Str("source", l.inner.Name()).
			Int("loaded", len(movies)).
			Int("max_records", l.max).
			Msg("Catalog truncated to record limit")
		movies = movies[:l.max]
	}
	return movies, nil
}

// FileSource loads the catalog from a delimited text file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from the file at path. The file is
// opened on Load, not here.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (f *FileSource) Name() string { return "csv" }

// Load reads and parses the file. The context is accepted for interface
// symmetry; local file reads are not cancellable mid-parse.
func (f *FileSource) Load(_ context.Context) ([]Movie, error) {
	start := time.Now()
	movies, err := LoadCSVFile(f.path)
	metrics.RecordSourceFetch(f.Name(), time.Since(start), err)
	return movies, err
}
