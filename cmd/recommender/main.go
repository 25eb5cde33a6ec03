// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package main is the Kinograph one-shot recommender.
//
// It loads a catalog CSV, builds the similarity graph, ranks the
// neighbors of a base movie, and prints the recommendations as CSV on
// stdout:
//
//	recommender [-file movies.csv] [-max 20] [-quiet] \
//	    <movie_id> <genre_weight> <rating_weight> <director_weight>
//
// Weights range from 0 to 10; a weight of 0 mutes that relation kind.
// Diagnostics go to stderr, the CSV goes to stdout, so the output pipes
// cleanly:
//
//	recommender -quiet 102 5 3 8 > recommendations.csv
//
// The exit code is 1 on bad usage, when the catalog cannot be loaded or
// is empty, or when the base movie is not in the catalog.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/graph"
	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/recommend"
)

// maxRecommendations caps the output when -max is not given.
const maxRecommendations = 20

// errUsage marks argument errors whose usage text is already printed.
var errUsage = errors.New("usage")

// options holds the parsed command line.
type options struct {
	file    string
	max     int
	quiet   bool
	baseID  int
	weights recommend.Weights
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	level := "info"
	if opts.quiet {
		level = "error"
	}
	logging.Init(logging.Config{
		Level:     level,
		Format:    "console",
		Timestamp: true,
		Output:    os.Stderr,
	})

	os.Exit(run(context.Background(), opts, os.Stdout))
}

// parseArgs parses flags and positional arguments. Flag errors and the
// usage text go to stderr; the returned error is only for the exit code.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("recommender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "file", "movies.csv", "catalog CSV file")
	fs.IntVar(&opts.max, "max", maxRecommendations, "maximum recommendations to print")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress diagnostics, print only the CSV")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) != 4 {
		usage(stderr, fs)
		return nil, errUsage
	}

	var err error
	if opts.baseID, err = strconv.Atoi(rest[0]); err != nil {
		return nil, fmt.Errorf("movie_id must be an integer, got %q", rest[0])
	}
	if opts.weights.Genre, err = strconv.Atoi(rest[1]); err != nil {
		return nil, fmt.Errorf("genre_weight must be an integer, got %q", rest[1])
	}
	if opts.weights.Rating, err = strconv.Atoi(rest[2]); err != nil {
		return nil, fmt.Errorf("rating_weight must be an integer, got %q", rest[2])
	}
	if opts.weights.Director, err = strconv.Atoi(rest[3]); err != nil {
		return nil, fmt.Errorf("director_weight must be an integer, got %q", rest[3])
	}

	if !weightInRange(opts.weights.Genre) ||
		!weightInRange(opts.weights.Rating) ||
		!weightInRange(opts.weights.Director) {
		return nil, errors.New("Weights must be between 0 and 10")
	}
	if opts.max <= 0 {
		return nil, fmt.Errorf("max must be positive, got %d", opts.max)
	}

	return opts, nil
}

func weightInRange(w int) bool {
	return w >= 0 && w <= 10
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: recommender [flags] <movie_id> <genre_weight> <rating_weight> <director_weight>")
	fmt.Fprintln(w, "  movie_id: ID of base movie (integer)")
	fmt.Fprintln(w, "  genre_weight: Weight for genre similarity (0-10)")
	fmt.Fprintln(w, "  rating_weight: Weight for rating similarity (0-10)")
	fmt.Fprintln(w, "  director_weight: Weight for director similarity (0-10)")
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

// run loads the catalog, builds the graph, ranks, and prints. It
// returns the process exit code.
func run(ctx context.Context, opts *options, stdout io.Writer) int {
	log := logging.WithComponent("recommender")

	store := catalog.NewStore()
	if err := catalog.Populate(ctx, store, catalog.NewFileSource(opts.file)); err != nil {
		log.Error().Err(err).Str("file", opts.file).Msg("Cannot load catalog")
		return 1
	}
	if store.Len() == 0 {
		log.Error().Str("file", opts.file).Msg("No movies loaded from file")
		return 1
	}

	base, ok := store.Lookup(opts.baseID)
	if !ok {
		log.Error().Int("movie_id", opts.baseID).Msg("Movie not found")
		return 1
	}

	g := graph.Build(store)

	candidates := recommend.Rank(g, store, opts.baseID, opts.weights, opts.max)
	log.Info().
		Str("base_movie", base.Title).
		Int("genre_weight", opts.weights.Genre).
		Int("rating_weight", opts.weights.Rating).
		Int("director_weight", opts.weights.Director).
		Int("count", len(candidates)).
		Msg("Recommendations computed")

	writeRecommendations(stdout, store, candidates)
	return 0
}

// writeRecommendations prints the header line and one CSV line per
// candidate, rating formatted to one decimal place.
func writeRecommendations(w io.Writer, store *catalog.Store, candidates []recommend.Candidate) {
	fmt.Fprintln(w, "id,title,genre,rating,director")
	for _, c := range candidates {
		movie, ok := store.Lookup(c.MovieID)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%d,%s,%s,%.1f,%s\n",
			movie.ID, movie.Title, movie.Genre, movie.Rating, movie.Director)
	}
}
