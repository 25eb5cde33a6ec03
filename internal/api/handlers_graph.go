// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"net/http"
)

// GraphStats returns the shape of the similarity graph: node and relation
// counts, relations per kind, connected components, and how long the
// build took.
//
// @Summary Similarity graph statistics
// @Description Returns node and relation counts, a per-kind relation
// @Description breakdown, the number of connected components, and the
// @Description build duration in milliseconds.
// @Tags Graph
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=graph.Stats} "Graph statistics"
// @Failure 503 {object} APIResponse "Graph not built"
// @Router /graph [get]
func (h *Handler) GraphStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.graph == nil {
		rw.ServiceUnavailable("Similarity graph is not built")
		return
	}

	rw.Success(h.graph.Stats())
}
