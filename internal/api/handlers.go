// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"time"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/config"
	"github.com/kinograph/kinograph/internal/graph"
	"github.com/kinograph/kinograph/internal/middleware"
	"github.com/kinograph/kinograph/internal/recommend"
)

// appVersion is reported by the health and status endpoints and in the
// app_info metric. Bumped on release.
const appVersion = "1.0.0"

// Handler holds the dependencies shared by every HTTP endpoint.
//
// All fields are set once at construction and never mutated afterwards,
// so handlers can read them concurrently without locking. The catalog
// store, graph, and engine carry their own synchronization internally.
type Handler struct {
	store     *catalog.Store
	graph     *graph.Graph
	engine    *recommend.Engine
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a handler with the given dependencies.
//
// The store, graph, and engine are normally fully populated before the
// server starts listening, but every endpoint tolerates nil dependencies
// and reports 503 instead of panicking, so a handler wired up mid-boot
// (or in tests) degrades cleanly.
//
// Example:
//
//	store := catalog.NewStore()
//	catalog.Populate(ctx, store, catalog.NewFileSource(cfg.Catalog.Path))
//	g := graph.Build(store)
//	engine, _ := recommend.NewEngine(store, g, engineCfg, logger)
//
//	handler := api.NewHandler(store, g, engine, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":8080", router.Routes())
func NewHandler(store *catalog.Store, g *graph.Graph, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		graph:     g,
		engine:    engine,
		config:    cfg,
		perfMon:   middleware.NewPerformanceMonitor(1000), // keep last 1000 requests
		startTime: time.Now(),
	}
}

// PerformanceStats returns the per-endpoint latency statistics
// collected by the router's performance middleware.
func (h *Handler) PerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.Stats()
	}
	return nil
}

// ready reports whether every dependency a data endpoint needs is wired.
func (h *Handler) ready() bool {
	return h.store != nil && h.graph != nil && h.engine != nil
}

// uptime returns the seconds elapsed since the handler was constructed.
func (h *Handler) uptime() float64 {
	return time.Since(h.startTime).Seconds()
}
