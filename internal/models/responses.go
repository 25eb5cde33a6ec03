// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package models

// HealthStatus represents the health check response.
//
// Status values:
//   - "healthy": catalog loaded and graph built
//   - "degraded": one or more dependencies missing
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	GraphReady    bool    `json:"graph_ready"`
	CacheBackend  string  `json:"cache_backend,omitempty"`
	MovieCount    int     `json:"movie_count"`
	Uptime        float64 `json:"uptime_seconds"`
}

// SystemStats reports process and host resource usage for the status
// endpoint. Process fields come from the Go runtime, host fields from
// gopsutil. Host fields are zero when the platform probe fails.
type SystemStats struct {
	// Process specific
	NumGoroutine int    `json:"num_goroutine"`
	AllocBytes   uint64 `json:"alloc_bytes"`
	SysBytes     uint64 `json:"sys_bytes"`
	NumGC        uint32 `json:"num_gc"`

	// System wide
	TotalRAM        uint64    `json:"total_ram"`
	AvailableRAM    uint64    `json:"available_ram"`
	UsedRAMPercent  float64   `json:"used_ram_percent"`
	CPUCores        int       `json:"cpu_cores"`
	CPUUsagePercent []float64 `json:"cpu_usage_percent,omitempty"`
}

// CatalogStatus summarizes the loaded catalog for the status endpoint.
type CatalogStatus struct {
	Source     string `json:"source"`
	MovieCount int    `json:"movie_count"`
	Inserted   int    `json:"inserted"`
}
