// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"polar-backend/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "polar"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	StoreEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "events_total",
			Help:      "Completed store operations by event kind",
		},
		[]string{"kind"},
	)

	ActionLogEntriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "action_log_entries_total",
			Help:      "Activity log entries appended since start",
		},
	)

	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "websocket_clients",
			Help:      "Connected websocket subscribers",
		},
	)

	ArchiveUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "archive",
			Name:      "uploads_total",
			Help:      "Report archive uploads by result",
		},
		[]string{"result"},
	)
)

// ObserveStore counts every event the store emits. The returned func unsubscribes.
func ObserveStore(s *store.Store) func() {
	return s.Subscribe(func(ev store.Event) {
		StoreEventsTotal.WithLabelValues(string(ev.Kind)).Inc()
		if ev.Log != nil {
			ActionLogEntriesTotal.Inc()
		}
	})
}
