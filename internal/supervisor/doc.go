// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package supervisor provides process supervision for the Kinograph server
using suture v4.

It implements an Erlang/OTP-style supervisor tree with automatic
restart, exponential backoff, and graceful shutdown. Kinograph's data
(catalog store and similarity graph) is built before the tree starts and
is immutable afterward, so the tree only supervises the serving layer:

	RootSupervisor ("kinograph")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed HTTP server is restarted automatically; rapid crash loops
trigger backoff instead of a restart storm.

# Usage

Basic setup in main:

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	server := &http.Server{Addr: addr, Handler: router.Routes()}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	// ... wait for a signal, then cancel ctx ...
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

TreeConfig controls restart behavior:

	config := supervisor.TreeConfig{
	    FailureThreshold: 5.0,              // failures before backoff
	    FailureDecay:     30.0,             // seconds for failures to decay
	    FailureBackoff:   15 * time.Second, // backoff duration
	    ShutdownTimeout:  10 * time.Second, // per-service shutdown timeout
	}

The defaults match suture's production defaults. The failure counter
decays exponentially: a service that crashes five times in quick
succession enters backoff, while isolated failures restart immediately.

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Returning nil stops the service cleanly without a restart; returning an
error triggers a supervised restart. Services must return promptly when
their context is canceled.

# Debugging Shutdown Issues

If services do not stop within the timeout:

	report, _ := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    log.Printf("service didn't stop: %v", svc)
	}

Structured supervision events (starts, stops, failures, backoff) are
logged through the sutureslog adapter; main bridges them into zerolog
via logging.NewSlogLogger.
*/
package supervisor
