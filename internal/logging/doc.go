// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package logging provides centralized zerolog-based structured logging for Kinograph.
//
// Every component logs through this package: JSON output feeds log
// aggregation in production, console output keeps development readable,
// and the request/correlation ID helpers tie log lines to API calls.
//
// # Quick Start
//
//	import "github.com/kinograph/kinograph/internal/logging"
//
//	// Once, during boot
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Caller: false,
//	})
//
//	// Anywhere afterwards
//	logging.Info().Int("movies", count).Msg("Catalog loaded")
//	logging.Error().Err(err).Str("file", path).Msg("Load failed")
//
//	// With request/correlation IDs from the context
//	logging.Ctx(ctx).Info().Msg("Recommendation served")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - minimum level, one of trace|debug|info|warn|error (info)
//	LOG_FORMAT  - json or console (json)
//	LOG_CALLER  - annotate lines with file:line, true or false (false)
//
// # Component Loggers
//
// A component logger stamps every line it emits:
//
//	graphLogger := logging.WithComponent("graph")
//	graphLogger.Info().Msg("Build started")
//
// # slog Adapter
//
// Libraries that speak log/slog (the supervisor tree among them) get a
// handler backed by the same zerolog output:
//
//	slogLogger := logging.NewSlogLogger()
//
// # Thread Safety
//
// All exported functions are safe for concurrent use; a sync.RWMutex
// guards reconfiguration of the shared logger.
//
// # Testing
//
// A test logger writes to any io.Writer for assertions on the output:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("seeded")
//	output := buf.String()
package logging
