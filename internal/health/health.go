package health

import (
	"context"
	"time"

	"polar-backend/internal/cache"
	"polar-backend/internal/store"
)

type HealthChecker struct {
	store *store.Store
}

type HealthStatus struct {
	Status string      `json:"status"`
	Store  StoreHealth `json:"store"`
	Cache  string      `json:"cache"` // enabled | disabled
}

type StoreHealth struct {
	Status       string `json:"status"`
	Shipments    int    `json:"shipments"`
	Flights      int    `json:"flights"`
	Equipment    int    `json:"equipment"`
	LogEntries   int    `json:"log_entries"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(st *store.Store) *HealthChecker {
	return &HealthChecker{store: st}
}

func (h *HealthChecker) CheckBasic(ctx context.Context) HealthStatus {
	storeHealth := h.checkStore(ctx)

	status := "healthy"
	if storeHealth.Status != "healthy" {
		status = "unhealthy"
	}

	cacheStatus := "disabled"
	if cache.Enabled() {
		cacheStatus = "enabled"
	}

	return HealthStatus{
		Status: status,
		Store:  storeHealth,
		Cache:  cacheStatus,
	}
}

// checkStore takes a read snapshot; a store wedged behind its lock shows up as a timeout
func (h *HealthChecker) checkStore(ctx context.Context) StoreHealth {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	result := make(chan StoreHealth, 1)
	go func() {
		result <- StoreHealth{
			Status:     "healthy",
			Shipments:  len(h.store.Shipments()),
			Flights:    len(h.store.Flights()),
			Equipment:  len(h.store.Equipment()),
			LogEntries: len(h.store.Logs(0)),
		}
	}()

	select {
	case sh := <-result:
		sh.ResponseTime = time.Since(start).Milliseconds()
		return sh
	case <-ctx.Done():
		return StoreHealth{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}
	}
}
