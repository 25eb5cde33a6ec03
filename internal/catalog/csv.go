// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/metrics"
)

// csvFieldCount is the number of columns a record needs:
// id, title, genre, rating, director.
const csvFieldCount = 5

// LoadCSV parses catalog records from r.
//
// The first line is a header and is always skipped. Records with fewer than
// csvFieldCount fields, or with an unparseable id or rating, are skipped
// rather than failing the load; each skip is counted in metrics and logged
// at debug level. All fields are whitespace-trimmed. Input that contains
// only the header (or nothing at all) yields an empty catalog, not an
// error.
func LoadCSV(r io.Reader) ([]Movie, error) {
	log := logging.WithComponent("catalog")

	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1 // records are validated per line below

	// Header line. Empty input just yields no movies.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var (
		movies  []Movie
		skipped int
		line    = 1 // header consumed above
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line++

		if len(record) < csvFieldCount {
			skipped++
			metrics.RecordSkippedRecord("field_count")
			log.Debug().Int("line", line).Int("fields", len(record)).Msg("Skipping short record")
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			skipped++
			metrics.RecordSkippedRecord("bad_id")
			log.Debug().Int("line", line).Str("id", record[0]).Msg("Skipping record with unparseable id")
			continue
		}

		rating, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			skipped++
			metrics.RecordSkippedRecord("bad_rating")
			log.Debug().Int("line", line).Str("rating", record[3]).Msg("Skipping record with unparseable rating")
			continue
		}

		movies = append(movies, Movie{
			ID:       id,
			Title:    strings.TrimSpace(record[1]),
			Genre:    strings.TrimSpace(record[2]),
			Rating:   rating,
			Director: strings.TrimSpace(record[4]),
		})
	}

	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("parsed", len(movies)).Msg("Finished parsing with skipped records")
	}

	return movies, nil
}

// LoadCSVFile opens path and parses it with LoadCSV. A missing or
// unreadable file is an error.
func LoadCSVFile(path string) ([]Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	movies, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return movies, nil
}
