// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// MockService is a test helper that implements suture.Service with
// controllable failure behavior.
type MockService struct {
	name      string
	starts    atomic.Int32
	stops     atomic.Int32
	remaining atomic.Int32

	mu      sync.Mutex
	failErr error
}

// NewMockService creates a mock service for supervisor tests.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// Serve implements suture.Service. It fails the configured number of
// times, then blocks until the context is canceled.
func (m *MockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	defer m.stops.Add(1)

	if m.remaining.Add(-1) >= 0 {
		return errors.New("induced mock failure")
	}

	m.mu.Lock()
	failErr := m.failErr
	m.mu.Unlock()
	if failErr != nil {
		return failErr
	}

	<-ctx.Done()
	return ctx.Err()
}

// SetError configures the service to return this error immediately on
// every Serve call.
func (m *MockService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

// SetFailCount configures the service to fail n times before running
// normally.
func (m *MockService) SetFailCount(n int) {
	m.remaining.Store(int32(n))
}

// StartCount reports the number of Serve entries so far.
func (m *MockService) StartCount() int32 {
	return m.starts.Load()
}

// StopCount reports the number of Serve exits so far.
func (m *MockService) StopCount() int32 {
	return m.stops.Load()
}

// String implements fmt.Stringer; suture uses it to identify the
// service in log output.
func (m *MockService) String() string {
	return m.name
}
