// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

// stopByDeadline waits for the tree to exit on errCh, tolerating the
// context errors a deadline-driven shutdown reports.
func stopByDeadline(t *testing.T, errCh <-chan error) {
	t.Helper()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("tree exited with %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("tree kept running past its deadline")
	}
}

// TestTreeIntegration exercises the full tree the way main wires it:
// background serve, supervised restarts, graceful shutdown.
func TestTreeIntegration(t *testing.T) {
	t.Run("api services run under a background serve", func(t *testing.T) {
		tree, err := NewTree(testSlogLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   50 * time.Millisecond,
			ShutdownTimeout:  500 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("NewTree() error = %v", err)
		}

		web := NewMockService("web")
		tree.AddAPIService(web)

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		errCh := tree.ServeBackground(ctx)

		if !waitFor(t, time.Second, func() bool { return web.StartCount() >= 1 }) {
			t.Error("web service never ran")
		}

		stopByDeadline(t, errCh)
	})

	t.Run("a crash-looping service does not block its sibling", func(t *testing.T) {
		tree, _ := NewTree(testSlogLogger(), TreeConfig{
			FailureThreshold: 10,
			FailureBackoff:   10 * time.Millisecond,
			ShutdownTimeout:  500 * time.Millisecond,
		})

		crashy := NewMockService("crashy-api")
		crashy.SetFailCount(3)
		healthy := NewMockService("healthy-api")

		tree.AddAPIService(crashy)
		tree.AddAPIService(healthy)

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()
		errCh := tree.ServeBackground(ctx)

		if !waitFor(t, time.Second, func() bool { return crashy.StartCount() >= 3 }) {
			t.Errorf("crashy restarted %d times, want at least 3", crashy.StartCount())
		}
		if healthy.StartCount() < 1 {
			t.Error("healthy sibling never ran")
		}

		stopByDeadline(t, errCh)
	})
}

// TestTreeConcurrency verifies concurrent service additions are safe.
func TestTreeConcurrency(t *testing.T) {
	tree, _ := NewTree(testSlogLogger(), TreeConfig{
		ShutdownTimeout: 500 * time.Millisecond,
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			tree.AddAPIService(NewMockService(fmt.Sprintf("worker-%d", n)))
		}(i)
	}
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	stopByDeadline(t, tree.ServeBackground(ctx))
}

// TestTreeEdgeCases covers degenerate configurations.
func TestTreeEdgeCases(t *testing.T) {
	t.Run("a tree with no services still stops cleanly", func(t *testing.T) {
		tree, _ := NewTree(testSlogLogger(), TreeConfig{
			ShutdownTimeout: 500 * time.Millisecond,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		stopByDeadline(t, tree.ServeBackground(ctx))
	})

	t.Run("clean shutdown leaves no unstopped services", func(t *testing.T) {
		tree, _ := NewTree(testSlogLogger(), TreeConfig{
			ShutdownTimeout: 500 * time.Millisecond,
		})
		tree.AddAPIService(NewMockService("clean"))

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		stopByDeadline(t, tree.ServeBackground(ctx))

		report, err := tree.UnstoppedServiceReport()
		if err != nil {
			t.Fatalf("UnstoppedServiceReport() error = %v", err)
		}
		if len(report) != 0 {
			t.Errorf("report lists %d services, want none", len(report))
		}
	})
}
