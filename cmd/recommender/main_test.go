// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/recommend"
)

func TestMain(m *testing.M) {
	logging.Init(logging.Config{Level: "disabled", Output: io.Discard})
	os.Exit(m.Run())
}

const testCatalog = `id,title,genre,rating,director
1,The Matrix,Sci-Fi,8.7,Lana Wachowski
2,Inception,Sci-Fi,8.8,Christopher Nolan
3,Interstellar,Sci-Fi,8.6,Christopher Nolan
4,Heat,Crime,8.3,Michael Mann
5,The Dark Knight,Action,9.0,Christopher Nolan
`

// writeCatalog puts the fixture catalog into a temp file.
func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	opts, err := parseArgs([]string{"2", "5", "5", "5"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs returned error: %v", err)
	}
	if opts.baseID != 2 {
		t.Errorf("baseID = %d, want 2", opts.baseID)
	}
	if w := (recommend.Weights{Genre: 5, Rating: 5, Director: 5}); opts.weights != w {
		t.Errorf("weights = %+v, want %+v", opts.weights, w)
	}
	if opts.file != "movies.csv" {
		t.Errorf("file = %q, want movies.csv", opts.file)
	}
	if opts.max != maxRecommendations {
		t.Errorf("max = %d, want %d", opts.max, maxRecommendations)
	}
	if opts.quiet {
		t.Error("quiet = true, want false")
	}
}

func TestParseArgs_Flags(t *testing.T) {
	t.Parallel()

	opts, err := parseArgs([]string{"-file", "other.csv", "-max", "3", "-quiet", "7", "0", "10", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs returned error: %v", err)
	}
	if opts.file != "other.csv" {
		t.Errorf("file = %q, want other.csv", opts.file)
	}
	if opts.max != 3 {
		t.Errorf("max = %d, want 3", opts.max)
	}
	if !opts.quiet {
		t.Error("quiet = false, want true")
	}
	if opts.baseID != 7 {
		t.Errorf("baseID = %d, want 7", opts.baseID)
	}
	if w := (recommend.Weights{Genre: 0, Rating: 10, Director: 2}); opts.weights != w {
		t.Errorf("weights = %+v, want %+v", opts.weights, w)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"no args", []string{}, "usage"},
		{"too few args", []string{"1", "5", "5"}, "usage"},
		{"too many args", []string{"1", "5", "5", "5", "5"}, "usage"},
		{"movie id not integer", []string{"abc", "5", "5", "5"}, "movie_id must be an integer"},
		{"genre weight not integer", []string{"1", "x", "5", "5"}, "genre_weight must be an integer"},
		{"rating weight not integer", []string{"1", "5", "1.5", "5"}, "rating_weight must be an integer"},
		{"director weight not integer", []string{"1", "5", "5", "ten"}, "director_weight must be an integer"},
		{"genre weight too high", []string{"1", "11", "5", "5"}, "Weights must be between 0 and 10"},
		{"rating weight negative", []string{"1", "5", "-1", "5"}, "Weights must be between 0 and 10"},
		{"director weight too high", []string{"1", "5", "5", "999"}, "Weights must be between 0 and 10"},
		{"zero max", []string{"-max", "0", "1", "5", "5", "5"}, "max must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseArgs(tt.args, io.Discard)
			if err == nil {
				t.Fatal("parseArgs returned nil error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParseArgs_UsagePrinted(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	_, err := parseArgs([]string{"1"}, &stderr)
	if err == nil {
		t.Fatal("parseArgs returned nil error")
	}
	out := stderr.String()
	if !strings.Contains(out, "Usage: recommender") {
		t.Errorf("stderr missing usage line:\n%s", out)
	}
	if !strings.Contains(out, "genre_weight: Weight for genre similarity (0-10)") {
		t.Errorf("stderr missing weight help:\n%s", out)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	opts := &options{
		file:    writeCatalog(t, testCatalog),
		max:     maxRecommendations,
		baseID:  2,
		weights: recommend.Weights{Genre: 5, Rating: 5, Director: 5},
	}

	var stdout bytes.Buffer
	if code := run(context.Background(), opts, &stdout); code != 0 {
		t.Fatalf("run returned %d, want 0", code)
	}

	want := "id,title,genre,rating,director\n" +
		"3,Interstellar,Sci-Fi,8.6,Christopher Nolan\n" +
		"5,The Dark Knight,Action,9.0,Christopher Nolan\n" +
		"1,The Matrix,Sci-Fi,8.7,Lana Wachowski\n" +
		"4,Heat,Crime,8.3,Michael Mann\n"
	if got := stdout.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRun_MaxResults(t *testing.T) {
	t.Parallel()

	opts := &options{
		file:    writeCatalog(t, testCatalog),
		max:     2,
		baseID:  2,
		weights: recommend.Weights{Genre: 5, Rating: 5, Director: 5},
	}

	var stdout bytes.Buffer
	if code := run(context.Background(), opts, &stdout); code != 0 {
		t.Fatalf("run returned %d, want 0", code)
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2):\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[1], "3,") || !strings.HasPrefix(lines[2], "5,") {
		t.Errorf("unexpected order:\n%s", stdout.String())
	}
}

func TestRun_DirectorOnlyWeights(t *testing.T) {
	t.Parallel()

	opts := &options{
		file:    writeCatalog(t, testCatalog),
		max:     maxRecommendations,
		baseID:  2,
		weights: recommend.Weights{Director: 10},
	}

	var stdout bytes.Buffer
	if code := run(context.Background(), opts, &stdout); code != 0 {
		t.Fatalf("run returned %d, want 0", code)
	}

	// Both Nolan movies score 10; the tie breaks on rating.
	want := "id,title,genre,rating,director\n" +
		"5,The Dark Knight,Action,9.0,Christopher Nolan\n" +
		"3,Interstellar,Sci-Fi,8.6,Christopher Nolan\n"
	if got := stdout.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	opts := &options{
		file:    filepath.Join(t.TempDir(), "absent.csv"),
		max:     maxRecommendations,
		baseID:  1,
		weights: recommend.Weights{Genre: 5, Rating: 5, Director: 5},
	}

	var stdout bytes.Buffer
	if code := run(context.Background(), opts, &stdout); code != 1 {
		t.Errorf("run returned %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout not empty on failure: %q", stdout.String())
	}
}

func TestRun_EmptyCatalog(t *testing.T) {
	t.Parallel()

	opts := &options{
		file:    writeCatalog(t, "id,title,genre,rating,director\n"),
		max:     maxRecommendations,
		baseID:  1,
		weights: recommend.Weights{Genre: 5, Rating: 5, Director: 5},
	}

	var stdout bytes.Buffer
	if code := run(context.Background(), opts, &stdout); code != 1 {
		t.Errorf("run returned %d, want 1", code)
	}
}

func TestRun_UnknownBaseMovie(t *testing.T) {
	t.Parallel()

	opts := &options{
		file:    writeCatalog(t, testCatalog),
		max:     maxRecommendations,
		baseID:  999,
		weights: recommend.Weights{Genre: 5, Rating: 5, Director: 5},
	}

	var stdout bytes.Buffer
	if code := run(context.Background(), opts, &stdout); code != 1 {
		t.Errorf("run returned %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout not empty on failure: %q", stdout.String())
	}
}

func TestWriteRecommendations_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeRecommendations(&buf, catalog.NewStore(), nil)
	if got := buf.String(); got != "id,title,genre,rating,director\n" {
		t.Errorf("output = %q, want header only", got)
	}
}
