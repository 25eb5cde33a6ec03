// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package api provides the HTTP REST API layer for Kinograph.

This package implements the JSON endpoints for browsing the movie catalog,
inspecting the similarity graph, and requesting recommendations. It is the
only interface between HTTP clients and the catalog, graph, and
recommendation engine built at boot.

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers for all API endpoints
  - Response formatting: Standardized JSON envelope with request metadata
  - Error handling: Machine-readable error codes under matching HTTP statuses
  - Rate limiting: Per-endpoint-class limits via go-chi/httprate
  - CORS: Cross-Origin Resource Sharing for browser clients

API Categories:

The API is organized into the following categories:

1. Health Endpoints (/api/v1/health):
  - Liveness (health/live) and readiness (health/ready) probes
  - Full health report with catalog and graph state

2. Catalog Endpoints (/api/v1/movies, /api/v1/search):
  - Paginated catalog listing and single-movie lookup
  - Case-insensitive title substring search

3. Recommendation Endpoint (/api/v1/recommend):
  - Weighted one-hop recommendations for a base movie
  - Base selected by ID or by title, weights 0-10 per signal

4. Introspection Endpoints (/api/v1/graph, /api/v1/status):
  - Graph statistics (nodes, relations per kind, build duration)
  - Server status with engine counters and system resource usage

5. Operational Endpoints:
  - Prometheus metrics (/metrics)
  - Swagger UI (/swagger/)

Usage Example:

	import (
	    "github.com/kinograph/kinograph/internal/api"
	    "github.com/kinograph/kinograph/internal/catalog"
	    "github.com/kinograph/kinograph/internal/graph"
	    "github.com/kinograph/kinograph/internal/recommend"
	)

	// Build the immutable read path
	store := catalog.NewStore()
	catalog.Populate(ctx, store, source)
	g := graph.Build(store)
	engine, _ := recommend.NewEngine(store, g, engineCfg, logger)

	// Create handler and router
	handler := api.NewHandler(store, g, engine, cfg)
	router := api.NewRouter(handler, cfg)

	http.ListenAndServe(":8080", router.Routes())

Performance Characteristics:

  - The catalog and graph are immutable after boot; reads take no locks
  - Recommendation responses are cached (in-memory TTL or Redis)
  - Gzip compression for clients that accept it

Thread Safety:

All handlers are safe for concurrent request handling. The store and graph
are read-only shared state; the engine's cache and counters carry their own
synchronization.

Security:

  - Security headers (nosniff, frame deny, referrer policy, conditional HSTS)
  - Rate limiting per endpoint class (tighter on /recommend)
  - Request body size cap and strict JSON decoding
  - Input validation via go-playground/validator

See Also:

  - internal/catalog: Movie store and catalog sources
  - internal/graph: Similarity graph and builder
  - internal/recommend: Ranker and engine
  - internal/middleware: HTTP middleware components
  - internal/models: Shared response payload structs
*/
package api
