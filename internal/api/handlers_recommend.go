// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/config"
	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/recommend"
)

// recommendTimeout bounds a single recommendation request, including any
// cache round trip. Graph walks are in-memory and finish in microseconds;
// this only matters when the Redis cache is slow.
const recommendTimeout = 10 * time.Second

// defaultWeights returns the configured default relation weights, falling
// back to a balanced profile when the handler has no config (tests).
func (h *Handler) defaultWeights() config.WeightsConfig {
	if h.config != nil {
		return h.config.Recommend.DefaultWeights
	}
	return config.WeightsConfig{Genre: 5, Rating: 5, Director: 5}
}

// Recommend computes recommendations from a JSON request body. The base
// movie is selected by movie_id when positive, otherwise by movie_name.
// Omitted weights fall back to the configured defaults; supplied weights
// must be in [0, 10].
//
// @Summary Compute recommendations
// @Description Ranks movies related to the requested base movie in the
// @Description similarity graph. The base is selected by movie_id when set,
// @Description otherwise by case-insensitive title match (exact first, then
// @Description substring). Results are ordered by accumulated relation
// @Description weight, then rating.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendBody true "Recommendation request"
// @Success 200 {object} APIResponse{data=recommend.Response} "Ranked recommendations"
// @Failure 400 {object} APIResponse "Malformed body, missing selector, or invalid weights"
// @Failure 404 {object} APIResponse "Base movie not found"
// @Failure 503 {object} APIResponse "Engine not ready"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if !h.ready() {
		rw.ServiceUnavailable("Recommendation engine is not ready")
		return
	}

	var body RecommendBody
	if err := decodeJSONBody(w, r, &body); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if apiErr := validateRequest(&body); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	if body.MovieID <= 0 && strings.TrimSpace(body.MovieName) == "" {
		rw.BadRequest("Either movie_id or movie_name is required")
		return
	}

	defaults := h.defaultWeights()
	weights := recommend.Weights{
		Genre:    defaults.Genre,
		Rating:   defaults.Rating,
		Director: defaults.Director,
	}
	if body.GenreWeight != nil {
		weights.Genre = *body.GenreWeight
	}
	if body.RatingWeight != nil {
		weights.Rating = *body.RatingWeight
	}
	if body.DirectorWeight != nil {
		weights.Director = *body.DirectorWeight
	}

	req := recommend.Request{
		MovieID:    body.MovieID,
		MovieName:  body.MovieName,
		Weights:    &weights,
		MaxResults: body.MaxResults,
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, req)
	if err != nil {
		if errors.Is(err, catalog.ErrMovieNotFound) {
			rw.NotFound("Base movie not found")
			return
		}
		logging.Error().Err(err).
			Int("movie_id", req.MovieID).
			Str("movie_name", sanitizeLogValue(req.MovieName)).
			Msg("Recommendation failed")
		rw.InternalError("Failed to compute recommendations")
		return
	}

	rw.Success(resp)
}
