// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// defaultShutdownTimeout bounds connection draining when the caller
// passes no explicit timeout.
const defaultShutdownTimeout = 10 * time.Second

// HTTPServer matches the *http.Server lifecycle methods the service
// needs, so tests can substitute a mock.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService adapts an HTTP server to suture.Service. It bridges
// http.Server's blocking ListenAndServe to suture's context-aware Serve:
// the listener runs in a goroutine, and context cancellation triggers a
// graceful Shutdown bounded by the configured timeout.
//
// Example:
//
//	server := &http.Server{Addr: ":8080", Handler: router.Routes()}
//	svc := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout)
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server       HTTPServer
	drainTimeout time.Duration
}

// NewHTTPServerService wraps server as a supervised service. The
// shutdown timeout bounds how long active connections get to drain; a
// non-positive value falls back to defaultShutdownTimeout.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &HTTPServerService{server: server, drainTimeout: shutdownTimeout}
}

// Serve implements suture.Service. It returns nil after a clean
// external close, the wrapped error if the server fails, and ctx.Err()
// after a graceful shutdown. http.ErrServerClosed is treated as clean.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	// The channel is buffered so the goroutine can exit even when Serve
	// has already returned on the shutdown-failure path.
	exit := make(chan error, 1)
	go func() {
		exit <- h.server.ListenAndServe()
	}()

	select {
	case err := <-exit:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)

	case <-ctx.Done():
		if err := h.stop(exit); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// stop drains active connections and waits for the listener goroutine.
// The serve context is already canceled, so shutdown gets its own.
func (h *HTTPServerService) stop(exit <-chan error) error {
	drainCtx, cancel := context.WithTimeout(context.Background(), h.drainTimeout)
	defer cancel()

	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-exit
	return nil
}

// String implements fmt.Stringer; suture uses it to identify the
// service in log output.
func (h *HTTPServerService) String() string {
	return "http-server"
}
