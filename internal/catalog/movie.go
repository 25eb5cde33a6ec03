// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package catalog

import "errors"

// ErrMovieNotFound indicates that no catalog record matched the requested
// ID or title. API handlers translate it into an HTTP 404.
var ErrMovieNotFound = errors.New("movie not found")

// Movie is a single catalog record.
//
// Genre and Director comparisons are case-insensitive everywhere in
// Kinograph; the stored values keep their original casing for display.
// Rating uses a 0.0 to 10.0 scale.
//
// The bson tags match the document layout of the MongoDB source collection,
// where the ID field is stored as movieId.
type Movie struct {
	ID       int     `json:"id" bson:"movieId"`
	Title    string  `json:"title" bson:"title"`
	Genre    string  `json:"genre" bson:"genre"`
	Rating   float64 `json:"rating" bson:"rating"`
	Director string  `json:"director" bson:"director"`
}
