// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/logging"
)

// Defaults for list pagination and title search.
const (
	defaultPageSize    = 50
	defaultSearchLimit = 10
)

// ListMovies returns a page of the catalog in ascending ID order.
//
// @Summary List movies
// @Description Returns movies from the catalog in ascending ID order with
// @Description offset-based pagination.
// @Tags Movies
// @Accept json
// @Produce json
// @Param limit query int false "Results per page (1-500)" default(50)
// @Param offset query int false "Number of movies to skip" default(0)
// @Success 200 {object} APIResponse{data=[]catalog.Movie} "Page of movies"
// @Failure 400 {object} APIResponse "Invalid pagination parameters"
// @Failure 503 {object} APIResponse "Catalog not loaded"
// @Router /movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.store == nil {
		rw.ServiceUnavailable("Catalog is not loaded")
		return
	}

	req := MoviesRequest{
		Limit:  queryInt(r, "limit", defaultPageSize),
		Offset: queryInt(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	movies := h.store.Movies()
	total := len(movies)

	start := req.Offset
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	page := movies[start:end]

	rw.SuccessWithPagination(page, &PaginationMeta{
		Total:   total,
		Count:   len(page),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: end < total,
	})
}

// GetMovie returns a single movie by its catalog ID.
//
// @Summary Get a movie by ID
// @Description Returns the catalog record for one movie.
// @Tags Movies
// @Accept json
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} APIResponse{data=catalog.Movie} "Movie found"
// @Failure 400 {object} APIResponse "Invalid movie ID"
// @Failure 404 {object} APIResponse "Movie not found"
// @Failure 503 {object} APIResponse "Catalog not loaded"
// @Router /movies/{movieID} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.store == nil {
		rw.ServiceUnavailable("Catalog is not loaded")
		return
	}

	idStr := chi.URLParam(r, "movieID")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		rw.BadRequest("Movie ID must be a positive integer")
		return
	}

	movie, ok := h.store.Lookup(id)
	if !ok {
		rw.NotFound("Movie " + idStr + " not found")
		return
	}

	rw.Success(movie)
}

// SearchMovies returns movies whose titles match the name parameter.
// Matching is case-insensitive: an exact title match is returned first,
// then substring matches in ascending ID order.
//
// @Summary Search movies by title
// @Description Case-insensitive title search. Exact matches sort before
// @Description substring matches.
// @Tags Movies
// @Accept json
// @Produce json
// @Param name query string true "Title fragment to search for"
// @Param limit query int false "Maximum matches to return (1-100)" default(10)
// @Success 200 {object} APIResponse{data=[]catalog.Movie} "Matching movies"
// @Failure 400 {object} APIResponse "Missing or invalid name"
// @Failure 503 {object} APIResponse "Catalog not loaded"
// @Router /search [get]
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.store == nil {
		rw.ServiceUnavailable("Catalog is not loaded")
		return
	}

	req := SearchRequest{
		Name:  strings.TrimSpace(r.URL.Query().Get("name")),
		Limit: queryInt(r, "limit", defaultSearchLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	matches := h.store.Search(req.Name, req.Limit)
	if matches == nil {
		matches = []catalog.Movie{}
	}

	logging.Debug().
		Str("name", sanitizeLogValue(req.Name)).
		Int("matches", len(matches)).
		Msg("Catalog search")

	rw.Success(matches)
}
