// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package api accepts only validated input. Every query string and body
// the handlers parse lands in one of the request structs below, whose
// go-playground/validator tags declare the accepted shape; a handler
// fills the struct from the raw request and calls validateRequest
// before touching the engine.
//
// Tags in use, in validator v10 syntax:
//   - required: the zero value is rejected
//   - min,max: numeric bounds, or length bounds on strings
//   - omitempty: an empty field skips the remaining tags (nil for pointers)
//   - movietitle: no control characters in title text, registered by
//     internal/validation
//
// Example usage:
//
//	req := MoviesRequest{
//	    Limit:  queryInt(r, "limit", 50),
//	    Offset: queryInt(r, "offset", 0),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
package api

// MoviesRequest holds the query parameters for the /movies listing.
// Pagination is offset-based: the catalog is held in memory and enumerated in
// ID order, so offsets are cheap.
//
// Fields:
//   - Limit: Results per page (1-500)
//   - Offset: Number of movies to skip (0-1000000)
type MoviesRequest struct {
	Limit  int `validate:"min=1,max=500"`
	Offset int `validate:"min=0,max=1000000"`
}

// SearchRequest holds the query parameters for /search.
//
// Fields:
//   - Name: Title fragment to match (required, case-insensitive, printable)
//   - Limit: Maximum matches to return (1-100)
type SearchRequest struct {
	Name  string `validate:"required,min=1,max=200,movietitle"`
	Limit int    `validate:"min=1,max=100"`
}

// RecommendBody is the JSON body accepted by POST /recommend.
// The base movie is selected by MovieID when positive, otherwise by MovieName.
// Handlers reject requests that set neither.
//
// Weight fields are pointers so an explicit zero (mute that relation kind)
// is distinguishable from an omitted field (use the configured default).
//
// Fields:
//   - MovieID: Base movie catalog ID (optional, takes precedence)
//   - MovieName: Base movie title, case-insensitive (optional)
//   - GenreWeight: Weight for shared-genre relations (0-10, default from config)
//   - RatingWeight: Weight for close-rating relations (0-10, default from config)
//   - DirectorWeight: Weight for shared-director relations (0-10, default from config)
//   - MaxResults: Result cap (0 = configured default, clamped to configured max)
type RecommendBody struct {
	MovieID        int    `json:"movie_id" validate:"min=0"`
	MovieName      string `json:"movie_name" validate:"omitempty,max=200,movietitle"`
	GenreWeight    *int   `json:"genre_weight" validate:"omitempty,min=0,max=10"`
	RatingWeight   *int   `json:"rating_weight" validate:"omitempty,min=0,max=10"`
	DirectorWeight *int   `json:"director_weight" validate:"omitempty,min=0,max=10"`
	MaxResults     int    `json:"max_results" validate:"min=0,max=100"`
}
