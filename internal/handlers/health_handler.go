package handlers

import (
	"context"
	"net/http"
	"time"

	"polar-backend/internal/health"
	"polar-backend/internal/monitoring"
	"polar-backend/pkg/utils"
)

type HealthHandler struct {
	checker *health.HealthChecker
	monitor *monitoring.Monitor
}

func NewHealthHandler(checker *health.HealthChecker, monitor *monitoring.Monitor) *HealthHandler {
	return &HealthHandler{checker: checker, monitor: monitor}
}

// BasicHealth - liveness probe
func (h *HealthHandler) BasicHealth(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessHealth - readiness probe, 503 while the store does not answer
func (h *HealthHandler) ReadinessHealth(w http.ResponseWriter, r *http.Request) {
	status := h.checker.CheckBasic(r.Context())
	if status.Status != "healthy" {
		utils.JSON(w, http.StatusServiceUnavailable, status)
		return
	}
	utils.JSON(w, http.StatusOK, status)
}

type detailedHealth struct {
	health.HealthStatus
	System monitoring.SystemStats `json:"system"`
}

// DetailedHealth adds host stats to the readiness report; always 200
func (h *HealthHandler) DetailedHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	utils.JSON(w, http.StatusOK, detailedHealth{
		HealthStatus: h.checker.CheckBasic(ctx),
		System:       h.monitor.Collect(ctx),
	})
}
