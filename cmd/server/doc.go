// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package main is the entry point for the Kinograph server application.

Kinograph is a self-hosted movie recommendation service. It loads a movie
catalog, precomputes a knowledge graph of similarity relations between
every pair of movies, and answers recommendation queries by walking the
graph from a base movie and scoring its neighbors with configurable
weights.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("kinograph")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router, REST API)

The catalog store and similarity graph are built during boot, before the
supervisor starts, and are immutable afterward. They need no supervision;
only the HTTP server runs as a supervised service.

Component initialization order:

 1. Configuration: Koanf v2 layering defaults, YAML file, and environment
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: CSV file or MongoDB collection loaded into the in-memory store
 4. Graph: pairwise similarity build (genre, rating, director relations)
 5. Engine: weighted ranker with response cache and circuit breaker
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Koanf v2 merges the configuration from three layers:

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=8080               # HTTP server port
	LOG_LEVEL=info               # or trace, debug, warn, error
	LOG_FORMAT=json              # json or console

	# Catalog (choose one source)
	CATALOG_SOURCE=csv           # csv or mongodb
	CATALOG_PATH=movies.csv      # CSV source
	MONGO_URI=mongodb://localhost:27017
	MONGO_DATABASE=kinograph
	MONGO_COLLECTION=movies

	# Recommendation defaults
	RECOMMEND_GENRE_WEIGHT=5     # 0-10
	RECOMMEND_RATING_WEIGHT=5    # 0-10
	RECOMMEND_DIRECTOR_WEIGHT=5  # 0-10
	RECOMMEND_DEFAULT_RESULTS=20

	# Response cache
	CACHE_BACKEND=memory         # memory or redis
	CACHE_TTL=5m
	REDIS_ADDR=localhost:6379

See internal/config for the complete reference.

# Catalog Sources

Kinograph reads its catalog from a CSV file by default:

	export CATALOG_SOURCE=csv CATALOG_PATH=movies.csv
	./kinograph

or from a MongoDB collection:

	export CATALOG_SOURCE=mongodb
	export MONGO_URI=mongodb://localhost:27017
	./kinograph

Either way the catalog is loaded once at boot. Changing the underlying
data requires a restart; the graph is never rebuilt while serving.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (configurable drain timeout)
 3. Closes the response cache (Redis connection if one is open)
 4. Closes the MongoDB client if one was opened
 5. Reports any services that failed to stop

# Usage Examples

Development (console logs, bundled CSV):

	export LOG_FORMAT=console
	export CATALOG_PATH=testdata/movies.csv
	go run ./cmd/server

Production (MongoDB catalog, Redis cache):

	export ENVIRONMENT=production
	export CATALOG_SOURCE=mongodb MONGO_URI=mongodb://mongo:27017
	export CACHE_BACKEND=redis REDIS_ADDR=redis:6379
	./kinograph

Docker:

	docker run -d \
	  -e CATALOG_SOURCE=csv \
	  -e CATALOG_PATH=/data/movies.csv \
	  -v $(pwd)/movies.csv:/data/movies.csv:ro \
	  -p 8080:8080 \
	  ghcr.io/kinograph/kinograph

# API Documentation

The running server serves its Swagger documentation at
/swagger/index.html. The API groups its endpoints into categories:

  - Health: Liveness, readiness, and component health
  - Movies: Catalog listing, lookup, and name search
  - Recommendations: Weighted graph-walk recommendation queries
  - Graph: Similarity graph statistics
  - Status: Server status, runtime metrics, endpoint latencies

# See Also

  - internal/config: Configuration management
  - internal/catalog: Catalog store and sources
  - internal/graph: Similarity graph construction
  - internal/recommend: Recommendation engine and caching
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
*/
package main
