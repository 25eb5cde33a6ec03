// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package logging provides centralized zerolog-based logging for Kinograph.
//
// All components log through a single global zerolog instance configured once
// at startup:
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//	logging.Error().Err(err).Msg("Graph build failed")
//
//	// With context (request/correlation IDs added by the HTTP middleware)
//	logging.Ctx(ctx).Info().Int("base_id", id).Msg("Recommendation served")
//
// A chain only emits once .Msg() or .Send() closes it:
//
//	logging.Info().Str("key", "value").Msg("message")  // emitted
//	logging.Info().Str("key", "value")                 // silently dropped
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config describes the output the global logger writes.
type Config struct {
	// Level is the minimum level to emit: trace, debug, info, warn,
	// error, fatal, disabled. Unknown values fall back to info.
	Level string

	// Format selects json (production) or console (development) output.
	Format string

	// Caller adds the file:line of the call site to every event.
	Caller bool

	// Timestamp adds an RFC3339 time field to every event.
	Timestamp bool

	// Output receives the log stream. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns JSON logging at info level without caller info.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	initLogger(DefaultConfig())
}

// Init reconfigures the global logger. Called from main once the
// configuration is loaded; safe to call again.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// initLogger rebuilds the global logger. Caller holds mu.
func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	l := zerolog.New(out)
	if cfg.Timestamp {
		l = l.With().Timestamp().Logger()
	}
	if cfg.Caller {
		l = l.With().Caller().Logger()
	}
	log = l
}

// levelNames maps configuration strings to zerolog levels.
var levelNames = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"disabled": zerolog.Disabled,
}

// parseLevel resolves a level name case-insensitively, defaulting to info.
func parseLevel(level string) zerolog.Level {
	if l, ok := levelNames[strings.ToLower(level)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// current snapshots the global logger under the read lock. zerolog's
// event starters take a pointer receiver, so the snapshot is returned
// by address.
func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// Logger returns the global zerolog.Logger for direct use.
func Logger() zerolog.Logger { return *current() }

// SetLogger swaps the global logger. Tests use this to capture output.
//
//nolint:gocritic // hugeParam: a zerolog.Logger travels by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// With opens a child logger context for attaching default fields.
//
//	builderLogger := logging.With().Str("component", "graph-builder").Logger()
func With() zerolog.Context { return current().With() }

// Debug starts a debug-level event.
func Debug() *zerolog.Event { return current().Debug() }

// Info starts an info-level event.
func Info() *zerolog.Event { return current().Info() }

// Warn starts a warn-level event.
func Warn() *zerolog.Event { return current().Warn() }

// Error starts an error-level event.
func Error() *zerolog.Event { return current().Error() }

// Fatal starts a fatal-level event. The process exits once the event is
// sent, so only boot code should use it.
func Fatal() *zerolog.Event { return current().Fatal() }

// NewTestLogger returns an independent logger writing to w, for tests that
// assert on log output.
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test")
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
