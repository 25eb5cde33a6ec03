// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

/*
Package services provides suture.Service wrappers for Kinograph
components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

translating a component's own lifecycle into suture's context-aware
Serve pattern: graceful shutdown on context cancellation, error
propagation for restart decisions, and service identification via
fmt.Stringer.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

The catalog store and similarity graph are populated during boot before
the supervisor tree starts, and the recommendation engine has no
background loop of its own, so the HTTP server is the only long-running
component that needs supervision.

# Design Principles

Wrappers stay minimal: no retry logic (suture restarts on error), no
state beyond what shutdown needs, and a fresh shutdown context since
the serve context is already canceled when shutdown begins.

Cancellation must be respected promptly; a wrapper that ignores its
context shows up in UnstoppedServiceReport and delays process exit.
*/
package services
