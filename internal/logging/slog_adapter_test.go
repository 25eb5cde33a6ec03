// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// captureHandler returns a handler whose zerolog backend writes into the
// returned buffer at trace level.
func captureHandler() (*bytes.Buffer, *SlogHandler) {
	var buf bytes.Buffer
	return &buf, NewSlogHandlerWithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))
}

func TestNewSlogHandler(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler()
	if h == nil {
		t.Fatal("NewSlogHandler() = nil")
	}
	if h.attrs != nil || h.groups != nil {
		t.Errorf("fresh handler should carry no attrs or groups, got attrs=%v groups=%v", h.attrs, h.groups)
	}
}

func TestNewSlogHandlerWithLogger(t *testing.T) {
	t.Parallel()

	buf, h := captureHandler()

	slog.New(h).Info("catalog loaded")

	if !strings.Contains(buf.String(), "catalog loaded") {
		t.Errorf("message did not reach the wrapped zerolog logger: %s", buf.String())
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend zerolog.Level
		record  slog.Level
		want    bool
	}{
		{"debug backend passes debug", zerolog.DebugLevel, slog.LevelDebug, true},
		{"info backend drops debug", zerolog.InfoLevel, slog.LevelDebug, false},
		{"info backend passes info", zerolog.InfoLevel, slog.LevelInfo, true},
		{"info backend passes warn", zerolog.InfoLevel, slog.LevelWarn, true},
		{"warn backend drops info", zerolog.WarnLevel, slog.LevelInfo, false},
		{"error backend drops warn", zerolog.ErrorLevel, slog.LevelWarn, false},
		{"trace backend passes everything", zerolog.TraceLevel, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(tt.backend))

			if got := h.Enabled(context.Background(), tt.record); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.record, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	// Not parallel: the debug case needs the global level below info.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	levels := []struct {
		level slog.Level
		label string
	}{
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
	}

	for _, lv := range levels {
		t.Run(lv.label, func(t *testing.T) {
			buf, h := captureHandler()

			record := slog.NewRecord(time.Now(), lv.level, "graph rebuild", 0)
			if err := h.Handle(context.Background(), record); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			out := buf.String()
			if !strings.Contains(out, `"level":"`+lv.label+`"`) {
				t.Errorf("expected level %q in output: %s", lv.label, out)
			}
			if !strings.Contains(out, "graph rebuild") {
				t.Errorf("expected message in output: %s", out)
			}
		})
	}
}

func TestSlogHandler_Handle_RecordAttrs(t *testing.T) {
	t.Parallel()

	buf, h := captureHandler()

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "scored", 0)
	record.AddAttrs(
		slog.String("movie", "Heat"),
		slog.Int("neighbors", 17),
	)

	if err := h.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"movie", "Heat", "neighbors", "17"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestSlogHandler_Handle_PreConfiguredAttrs(t *testing.T) {
	t.Parallel()

	buf, h := captureHandler()
	withService := h.WithAttrs([]slog.Attr{slog.String("service", "recommender")})

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "ready", 0)
	if err := withService.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "service") || !strings.Contains(out, "recommender") {
		t.Errorf("output missing attrs set via WithAttrs: %s", out)
	}
}

func TestSlogHandler_Handle_UnknownLevel(t *testing.T) {
	t.Parallel()

	buf, h := captureHandler()

	// Levels with no zerolog counterpart emit at info.
	record := slog.NewRecord(time.Now(), slog.Level(100), "odd level", 0)
	if err := h.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), "odd level") {
		t.Errorf("message at unmapped level was dropped: %s", buf.String())
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	base := NewSlogHandler()

	one := base.WithAttrs([]slog.Attr{slog.String("a", "1")}).(*SlogHandler)
	if len(one.attrs) != 1 {
		t.Errorf("after one WithAttrs, len(attrs) = %d, want 1", len(one.attrs))
	}

	three := one.WithAttrs([]slog.Attr{slog.String("b", "2"), slog.Int("c", 3)}).(*SlogHandler)
	if len(three.attrs) != 3 {
		t.Errorf("after chained WithAttrs, len(attrs) = %d, want 3", len(three.attrs))
	}

	if len(base.attrs) != 0 {
		t.Error("WithAttrs must not mutate the receiver")
	}
}

func TestSlogHandler_WithAttrs_Empty(t *testing.T) {
	t.Parallel()

	if NewSlogHandler().WithAttrs([]slog.Attr{}) == nil {
		t.Fatal("WithAttrs([]) = nil")
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	t.Parallel()

	base := NewSlogHandler()

	outer := base.WithGroup("catalog").(*SlogHandler)
	if len(outer.groups) != 1 || outer.groups[0] != "catalog" {
		t.Errorf("groups = %v, want [catalog]", outer.groups)
	}

	inner := outer.WithGroup("mongo").(*SlogHandler)
	if len(inner.groups) != 2 || inner.groups[1] != "mongo" {
		t.Errorf("chained groups = %v, want [catalog mongo]", inner.groups)
	}

	if len(base.groups) != 0 {
		t.Error("WithGroup must not mutate the receiver")
	}
}

func TestSlogHandler_WithGroup_Empty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler()
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the receiver unchanged")
	}
}

func TestSlogHandler_WithGroup_KeyPrefix(t *testing.T) {
	t.Parallel()

	buf, h := captureHandler()

	slog.New(h.WithGroup("queue")).Info("enqueued", "depth", 3)

	if !strings.Contains(buf.String(), "queue.depth") {
		t.Errorf("group name should prefix keys: %s", buf.String())
	}
}

func TestAddAttr_AllKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		want []string
	}{
		{"string", slog.String("title", "Alien"), []string{"title", "Alien"}},
		{"int64", slog.Int64("year", 1979), []string{"year", "1979"}},
		{"uint64", slog.Uint64("edges", 4200), []string{"edges", "4200"}},
		{"float64", slog.Float64("rating", 8.5), []string{"rating", "8.5"}},
		{"bool true", slog.Bool("cached", true), []string{"cached", "true"}},
		{"bool false", slog.Bool("cached", false), []string{"cached", "false"}},
		{"duration", slog.Duration("took", 250 * time.Millisecond), []string{"took"}},
		{"time", slog.Time("built", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), []string{"built"}},
		{"any", slog.Any("weights", map[string]int{"genre": 2}), []string{"weights"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf, h := captureHandler()

			record := slog.NewRecord(time.Now(), slog.LevelInfo, "attr", 0)
			record.AddAttrs(tt.attr)
			_ = h.Handle(context.Background(), record)

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q: %s", want, buf.String())
				}
			}
		})
	}
}

func TestAddAttr_GroupValue(t *testing.T) {
	t.Parallel()

	buf, h := captureHandler()

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "hit", 0)
	record.AddAttrs(slog.Group("cache",
		slog.String("backend", "redis"),
		slog.Int("ttl", 300),
	))
	_ = h.Handle(context.Background(), record)

	out := buf.String()
	if !strings.Contains(out, "cache.backend") || !strings.Contains(out, "cache.ttl") {
		t.Errorf("group members should carry the group prefix: %s", out)
	}
}

func TestAddAttr_NestedGroups(t *testing.T) {
	t.Parallel()

	buf, h := captureHandler()

	nested := h.WithGroup("outer").WithGroup("inner")
	slog.New(nested).Info("nested", "key", "value")

	// Prefixes are prepended one at a time, so the innermost group ends
	// up leftmost: inner.outer.key.
	if !strings.Contains(buf.String(), "inner.outer.key") {
		t.Errorf("unexpected nested prefix: %s", buf.String())
	}
}

func TestZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.Level(-8), zerolog.TraceLevel},
		{slog.Level(2), zerolog.InfoLevel},
		{slog.Level(12), zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := zerologLevel(tt.in); got != tt.want {
			t.Errorf("zerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLogger(t *testing.T) {
	// Not parallel because it swaps the global logger.

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))

	slogger := NewSlogLogger()
	if slogger == nil {
		t.Fatal("NewSlogLogger() = nil")
	}

	slogger.Info("wired through global")

	if !strings.Contains(buf.String(), "wired through global") {
		t.Errorf("NewSlogLogger should write via the global logger: %s", buf.String())
	}
}

func TestSlogHandler_EndToEnd(t *testing.T) {
	// Not parallel: the debug line needs the global level below info.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	buf, h := captureHandler()
	slogger := slog.New(h).With("component", "ranker")

	slogger.Debug("walking neighbors", "base", "Heat")
	slogger.Info("ranked", "candidates", 12)
	slogger.Warn("cache miss", "stale", true)
	slogger.Error("source gone", "retry_in", 1.5)

	out := buf.String()
	for _, want := range []string{
		"walking neighbors", "base", "Heat",
		"ranked", "candidates", "12",
		"cache miss", "stale", "true",
		"source gone", "retry_in", "1.5",
		"component", "ranker",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}
