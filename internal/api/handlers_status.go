// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"net/http"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/kinograph/kinograph/internal/graph"
	"github.com/kinograph/kinograph/internal/metrics"
	"github.com/kinograph/kinograph/internal/middleware"
	"github.com/kinograph/kinograph/internal/models"
	"github.com/kinograph/kinograph/internal/recommend"
)

// ServerStatus is the full status payload. Domain stats keep their own
// types; only the system block needs a models DTO.
type ServerStatus struct {
	Version       string                     `json:"version"`
	GoVersion     string                     `json:"go_version"`
	Environment   string                     `json:"environment,omitempty"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	Catalog       models.CatalogStatus       `json:"catalog"`
	Graph         *graph.Stats               `json:"graph,omitempty"`
	Engine        *recommend.Stats           `json:"engine,omitempty"`
	System        models.SystemStats         `json:"system"`
	Performance   []middleware.EndpointStats `json:"performance,omitempty"`
}

// Status reports process health for dashboards: version, uptime, catalog
// and graph shape, engine counters, and resource usage.
//
// @Summary Server status
// @Description Returns version, uptime, catalog and graph statistics, engine
// @Description counters, and process/host resource usage.
// @Tags Status
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=ServerStatus} "Server status"
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	metrics.AppUptime.Set(h.uptime())

	status := ServerStatus{
		Version:       appVersion,
		GoVersion:     runtime.Version(),
		UptimeSeconds: h.uptime(),
		System:        collectSystemStats(),
	}

	if h.config != nil {
		status.Environment = h.config.Server.Environment
		status.Catalog.Source = h.config.Catalog.Source
	}
	if h.store != nil {
		status.Catalog.MovieCount = h.store.Len()
		status.Catalog.Inserted = h.store.Inserted()
	}
	if h.graph != nil {
		gs := h.graph.Stats()
		status.Graph = &gs
	}
	if h.engine != nil {
		es := h.engine.Stats()
		status.Engine = &es
	}
	status.Performance = h.PerformanceStats()

	WriteSuccess(w, r, status)
}

// collectSystemStats gathers runtime and host resource usage. The host
// probes can fail on unsupported platforms; those fields stay zero and
// the endpoint still answers.
func collectSystemStats() models.SystemStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := models.SystemStats{
		NumGoroutine: runtime.NumGoroutine(),
		AllocBytes:   memStats.Alloc,
		SysBytes:     memStats.Sys,
		NumGC:        memStats.NumGC,
		CPUCores:     runtime.NumCPU(),
	}

	if vMem, err := mem.VirtualMemory(); err == nil && vMem != nil {
		stats.TotalRAM = vMem.Total
		stats.AvailableRAM = vMem.Available
		stats.UsedRAMPercent = vMem.UsedPercent
	}
	if cpuPercent, err := cpu.Percent(0, true); err == nil {
		stats.CPUUsagePercent = cpuPercent
	}

	return stats
}
