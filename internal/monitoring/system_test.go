package monitoring

import (
	"context"
	"testing"

	"polar-backend/internal/events"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingSink struct {
	alerts []events.Alert
}

func (r *recordingSink) PublishAlert(a events.Alert) { r.alerts = append(r.alerts, a) }
func (r *recordingSink) ClientCount() int            { return 2 }

func TestAlertsFor(t *testing.T) {
	assert.Empty(t, alertsFor(SystemStats{MemoryPercent: 40, DiskPercent: 50}))

	alerts := alertsFor(SystemStats{MemoryPercent: 95, DiskPercent: 97})
	if assert.Len(t, alerts, 2) {
		assert.Equal(t, "high_memory", alerts[0].Type)
		assert.Equal(t, "disk_full", alerts[1].Type)
	}
}

func TestCheckPublishesAlerts(t *testing.T) {
	sink := &recordingSink{}
	m := NewMonitor(sink, zap.NewNop())

	m.check(SystemStats{DiskPercent: 99})

	assert.Len(t, sink.alerts, 1)
}

func TestCollectReportsClients(t *testing.T) {
	m := NewMonitor(&recordingSink{}, zap.NewNop())

	stats := m.Collect(context.Background())

	assert.Equal(t, 2, stats.Clients)
	assert.Equal(t, "0m", stats.Uptime)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "512.0 MB", formatBytes(512*1024*1024))
	assert.Equal(t, "2.0 GB", formatBytes(2*1024*1024*1024))
	assert.Equal(t, "1d 2h", formatUptime(93600))
	assert.Equal(t, "1h 5m", formatUptime(3900))
}
