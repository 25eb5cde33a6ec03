// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package testinfra provides container helpers for integration tests.
//
// It wraps testcontainers-go to start the external services Kinograph can
// talk to: MongoDB as a catalog source and Redis as a cache backend. All
// helpers live behind the integration build tag; plain unit test runs never
// touch Docker.
//
// # MongoDB
//
//	func TestMongoSource(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//
//	    ctx := context.Background()
//	    mongoC, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongoC)
//
//	    err = mongoC.SeedMovies(ctx, "kinograph", "movies", fixtures)
//	    // connect catalog.NewMongoSource against mongoC.URI
//	}
//
// # Redis
//
// NewRedisContainer starts a Redis instance and exposes its host:port in
// Addr, ready for the recommendation cache configuration.
//
// # CI Considerations
//
// These tests require Docker and network access for the first image pull.
// SkipIfNoDocker keeps runs green on machines without a Docker daemon.
package testinfra
