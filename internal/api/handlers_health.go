// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"net/http"

	"github.com/kinograph/kinograph/internal/models"
)

// HealthLive handles liveness probes. It always returns 200 while the
// process is running; orchestrators use it to detect hung processes,
// not missing dependencies.
//
// @Summary Liveness probe
// @Description Returns 200 as long as the process is able to serve HTTP.
// @Description Does not check the catalog or graph; use /health/ready for that.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": h.uptime(),
	})
}

// HealthReady handles readiness probes. It returns 200 only once the
// catalog store, similarity graph, and recommendation engine are all
// wired; before that it returns 503 so load balancers hold traffic.
//
// @Summary Readiness probe
// @Description Returns 200 when the catalog is loaded, the graph is built,
// @Description and the recommendation engine is up. Returns 503 otherwise.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "All dependencies ready"
// @Failure 503 {object} APIResponse "One or more dependencies not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	data := map[string]interface{}{
		"catalog_loaded": h.store != nil,
		"graph_ready":    h.graph != nil,
		"engine_ready":   h.engine != nil,
	}

	if !h.ready() {
		data["status"] = "not_ready"
		rw.SuccessWithStatus(http.StatusServiceUnavailable, data)
		return
	}

	data["status"] = "ready"
	rw.Success(data)
}

// Health reports overall service health including catalog and graph
// state. Unlike the readiness probe it always returns 200; the payload
// status field distinguishes "healthy" from "degraded".
//
// @Summary Service health report
// @Description Returns version, uptime, and dependency state. Status is
// @Description "healthy" when the catalog and graph are available, "degraded" otherwise.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=models.HealthStatus} "Health report"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !h.ready() {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       appVersion,
		CatalogLoaded: h.store != nil,
		GraphReady:    h.graph != nil,
		Uptime:        h.uptime(),
	}
	if h.store != nil {
		health.MovieCount = h.store.Len()
	}
	if h.config != nil && h.config.Recommend.Cache.Enabled {
		health.CacheBackend = h.config.Recommend.Cache.Backend
	}

	WriteSuccess(w, r, health)
}
