// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package main provides the Kinograph HTTP server
//
// Kinograph serves weighted movie recommendations from a precomputed
// similarity knowledge graph.
//
// @title Kinograph API
// @version 1.0
// @description Knowledge-graph movie recommendation service
// @description
// @description ## How It Works
// @description
// @description At boot Kinograph loads a movie catalog and compares every pair of
// @description movies on three dimensions, recording a relation for each match:
// @description
// @description - **shared_genre**: genres match (case-insensitive)
// @description - **close_rating**: ratings differ by at most 0.5
// @description - **shared_director**: directors match (case-insensitive)
// @description
// @description A recommendation query walks the graph one hop out from a base movie
// @description and scores each neighbor as the weighted sum of its relations. Results
// @description are ordered by score, ties broken by rating.
// @description
// @description ## Weights
// @description
// @description Each relation kind carries a caller-supplied weight from 0 to 10.
// @description Omitted weights fall back to the server defaults. A weight of 0
// @description removes that relation kind from scoring entirely.
// @description
// @description ## Rate Limiting
// @description
// @description Requests are limited per client IP: 100 per minute on the general
// @description API, 60 per minute on /recommend. Every response carries
// @description `X-RateLimit-Limit`, `X-RateLimit-Remaining`, and `X-RateLimit-Reset`.
// @description
// @description ## Errors
// @description
// @description Errors share one envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Movie 42 not found"
// @description   },
// @description   "meta": {
// @description     "request_id": "unique request identifier",
// @description     "timestamp": "2026-08-23T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name Kinograph Issue Tracker
// @contact.url https://github.com/kinograph/kinograph/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness, readiness, and component health checks
//
// @tag.name Movies
// @tag.description Catalog listing, lookup by ID, and name search
//
// @tag.name Recommendations
// @tag.description Weighted graph-walk recommendation queries
//
// @tag.name Graph
// @tag.description Similarity graph statistics
//
// @tag.name Status
// @tag.description Server status, runtime metrics, and endpoint latencies
package main
