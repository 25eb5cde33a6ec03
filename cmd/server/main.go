// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package main is the entry point for the Kinograph server.
//
// The server loads a movie catalog, builds the similarity graph over it,
// and serves graph-walk recommendations over a JSON API.
//
// # Boot Order
//
//  1. Configuration: Koanf v2 layered load (defaults, YAML file, env vars)
//  2. Logging: zerolog with JSON or console output
//  3. Catalog: CSV file or MongoDB collection into the in-memory store
//  4. Graph: full O(n^2) similarity build over the catalog
//  5. Engine: ranker plus response cache (in-memory TTL or Redis)
//  6. HTTP server: chi router under suture supervision
//
// The catalog and graph are immutable once built; the server accepts no
// traffic until both are ready.
//
// # Configuration
//
// Every setting has an environment variable (see internal/config). The
// common ones:
//
//	export HTTP_PORT=8080
//	export CATALOG_SOURCE=csv          # or mongodb
//	export CATALOG_PATH=movies.csv
//	export CACHE_BACKEND=memory        # or redis
//	export LOG_FORMAT=console          # for development
//	./kinograph
//
// MongoDB catalog with a Redis response cache:
//
//	export CATALOG_SOURCE=mongodb
//	export MONGO_URI=mongodb://localhost:27017
//	export CACHE_BACKEND=redis
//	export REDIS_ADDR=localhost:6379
//	./kinograph
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the server stops
// accepting connections, in-flight requests get the configured drain
// timeout, and the supervisor tree reports anything that failed to stop.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/kinograph/kinograph/docs" // generated swagger spec
	"github.com/kinograph/kinograph/internal/api"
	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/config"
	"github.com/kinograph/kinograph/internal/graph"
	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/metrics"
	"github.com/kinograph/kinograph/internal/recommend"
	"github.com/kinograph/kinograph/internal/supervisor"
	"github.com/kinograph/kinograph/internal/supervisor/services"
)

// version is stamped at release time via -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("catalog_source", cfg.Catalog.Source).
		Str("cache_backend", cfg.Recommend.Cache.Backend).
		Msg("Starting Kinograph")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog load and graph build happen before the server accepts
	// traffic. Both are read-only afterward.
	source, closeSource, err := buildSource(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog source")
	}
	defer closeSource()

	store := catalog.NewStore()
	if err := catalog.Populate(ctx, store, source); err != nil {
		logging.Fatal().Err(err).Msg("Failed to populate catalog")
	}
	if store.Len() == 0 {
		logging.Fatal().Str("source", source.Name()).Msg("Catalog is empty")
	}

	g := graph.Build(store)

	engine, err := recommend.NewEngine(store, g, engineConfig(cfg), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing recommendation engine")
		}
	}()

	handler := api.NewHandler(store, g, engine, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// The slog adapter bridges zerolog into sutureslog.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Kinograph stopped gracefully")
}

// buildSource selects the catalog source from configuration. The
// returned cleanup closes the MongoDB client when one was opened, and
// is a no-op otherwise.
func buildSource(ctx context.Context, cfg *config.Config) (catalog.Source, func(), error) {
	var (
		src     catalog.Source
		cleanup = func() {}
	)

	switch cfg.Catalog.Source {
	case config.SourceCSV:
		src = catalog.NewFileSource(cfg.Catalog.Path)

	case config.SourceMongoDB:
		mongoSrc, err := catalog.NewMongoSource(ctx, catalog.MongoConfig{
			URI:        cfg.Catalog.Mongo.URI,
			Database:   cfg.Catalog.Mongo.Database,
			Collection: cfg.Catalog.Mongo.Collection,
			Timeout:    cfg.Catalog.Mongo.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongodb: %w", err)
		}
		src = mongoSrc
		cleanup = func() {
			closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelClose()
			if err := mongoSrc.Close(closeCtx); err != nil {
				logging.Error().Err(err).Msg("Error closing mongodb source")
			}
		}

	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Catalog.MaxRecords > 0 {
		src = catalog.NewLimitSource(src, cfg.Catalog.MaxRecords)
	}

	return src, cleanup, nil
}

// engineConfig maps the application config onto the engine's own config
// type. The two are kept separate so the engine package does not import
// koanf-tagged structs.
func engineConfig(cfg *config.Config) *recommend.Config {
	rc := cfg.Recommend
	return &recommend.Config{
		DefaultWeights: recommend.Weights{
			Genre:    rc.DefaultWeights.Genre,
			Rating:   rc.DefaultWeights.Rating,
			Director: rc.DefaultWeights.Director,
		},
		DefaultResults: rc.DefaultResults,
		MaxResults:     rc.MaxResults,
		Cache: recommend.CacheConfig{
			Enabled:    rc.Cache.Enabled,
			Backend:    rc.Cache.Backend,
			TTL:        rc.Cache.TTL,
			MaxEntries: rc.Cache.MaxEntries,
			Redis: recommend.RedisConfig{
				Addr:     rc.Cache.Redis.Addr,
				Password: rc.Cache.Redis.Password,
				DB:       rc.Cache.Redis.DB,
			},
			Breaker: recommend.BreakerConfig{
				MaxRequests:  rc.Cache.Breaker.MaxRequests,
				Interval:     rc.Cache.Breaker.Interval,
				Timeout:      rc.Cache.Breaker.Timeout,
				MinRequests:  rc.Cache.Breaker.MinRequests,
				FailureRatio: rc.Cache.Breaker.FailureRatio,
			},
		},
	}
}
