// Package monitoring samples host resources and raises alerts when they run low.
package monitoring

import (
	"context"
	"fmt"
	"time"

	"polar-backend/internal/events"
	"polar-backend/internal/timeutil"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
)

const (
	memoryWarnPercent = 90.0
	diskWarnPercent   = 90.0
)

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryTotal   string  `json:"memory_total"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskUsed      string  `json:"disk_used"`
	DiskTotal     string  `json:"disk_total"`
	Uptime        string  `json:"uptime"` // Process uptime
	Clients       int     `json:"websocket_clients"`
}

// AlertSink receives alerts raised by the monitor
type AlertSink interface {
	PublishAlert(events.Alert)
	ClientCount() int
}

type Monitor struct {
	sink      AlertSink
	log       *zap.Logger
	startedAt time.Time
	interval  time.Duration
}

func NewMonitor(sink AlertSink, log *zap.Logger) *Monitor {
	return &Monitor{
		sink:      sink,
		log:       log,
		startedAt: timeutil.Now(),
		interval:  30 * time.Second,
	}
}

// Collect samples cpu, memory and root disk usage. Sampling failures leave the field zero.
func (m *Monitor) Collect(ctx context.Context) SystemStats {
	var stats SystemStats

	if cpuPercents, err := cpu.PercentWithContext(ctx, 200*time.Millisecond, false); err == nil && len(cpuPercents) > 0 {
		stats.CPUPercent = cpuPercents[0]
	}

	if memStats, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats.MemoryPercent = memStats.UsedPercent
		stats.MemoryUsed = formatBytes(memStats.Used)
		stats.MemoryTotal = formatBytes(memStats.Total)
	}

	if diskStats, err := disk.UsageWithContext(ctx, "/"); err == nil {
		stats.DiskPercent = diskStats.UsedPercent
		stats.DiskUsed = formatBytes(diskStats.Used)
		stats.DiskTotal = formatBytes(diskStats.Total)
	}

	stats.Uptime = formatUptime(int(timeutil.Now().Sub(m.startedAt).Seconds()))
	stats.Clients = m.sink.ClientCount()
	return stats
}

// Run samples on a ticker until ctx is done
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(m.Collect(ctx))
		}
	}
}

func (m *Monitor) check(stats SystemStats) {
	for _, alert := range alertsFor(stats) {
		m.log.Warn("[Monitor] "+alert.Message, zap.String("type", alert.Type))
		m.sink.PublishAlert(alert)
	}
}

func alertsFor(stats SystemStats) []events.Alert {
	var alerts []events.Alert
	if stats.MemoryPercent > memoryWarnPercent {
		alerts = append(alerts, events.Alert{
			Severity: "warning",
			Type:     "high_memory",
			Message:  fmt.Sprintf("Memory usage: %.1f%%", stats.MemoryPercent),
		})
	}
	if stats.DiskPercent > diskWarnPercent {
		alerts = append(alerts, events.Alert{
			Severity: "critical",
			Type:     "disk_full",
			Message:  fmt.Sprintf("Disk usage: %.1f%%", stats.DiskPercent),
		})
	}
	return alerts
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
