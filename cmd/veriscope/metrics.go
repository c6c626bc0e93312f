// cmd/veriscope/metrics.go
package main

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Metrics holds system and application metrics
type Metrics struct {
	Timestamp          time.Time `json:"timestamp"`
	MemoryUsageMB      float64   `json:"memory_usage_mb"`
	MemoryUsagePercent float64   `json:"memory_usage_percent"`
	CPUUsagePercent    float64   `json:"cpu_usage_percent"`
	GoroutineCount     int       `json:"goroutine_count"`
	UptimeHours        float64   `json:"uptime_hours"`

	// Application counters, reset daily by the scheduler
	Counters map[string]int64 `json:"counters"`
}

var (
	countersMutex sync.Mutex
	counters      = make(map[string]int64)
	startTime     = time.Now()
)

// IncrementCounter bumps a named application counter
func IncrementCounter(name string) {
	countersMutex.Lock()
	defer countersMutex.Unlock()
	counters[name]++
}

// CounterValue reads a named application counter
func CounterValue(name string) int64 {
	countersMutex.Lock()
	defer countersMutex.Unlock()
	return counters[name]
}

// ResetDailyCounters clears all application counters
func ResetDailyCounters() {
	countersMutex.Lock()
	defer countersMutex.Unlock()
	counters = make(map[string]int64)
}

// snapshotCounters copies the counters for a metrics report
func snapshotCounters() map[string]int64 {
	countersMutex.Lock()
	defer countersMutex.Unlock()

	snapshot := make(map[string]int64, len(counters))
	for k, v := range counters {
		snapshot[k] = v
	}
	return snapshot
}

// collectMetrics gathers system and application metrics
func collectMetrics() *Metrics {
	metrics := &Metrics{
		Timestamp:      time.Now(),
		GoroutineCount: runtime.NumGoroutine(),
		UptimeHours:    time.Since(startTime).Hours(),
		Counters:       snapshotCounters(),
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	metrics.MemoryUsageMB = float64(memStats.Alloc) / 1024 / 1024

	if vmem, err := mem.VirtualMemory(); err == nil {
		metrics.MemoryUsagePercent = vmem.UsedPercent
	}

	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		metrics.CPUUsagePercent = cpuPercent[0]
	}

	return metrics
}
