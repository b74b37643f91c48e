package handlers

import (
	"context"
	"net/http"
	"time"

	"polar-backend/internal/monitoring"
	"polar-backend/pkg/utils"
)

type MonitoringHandler struct {
	monitor *monitoring.Monitor
}

func NewMonitoringHandler(monitor *monitoring.Monitor) *MonitoringHandler {
	return &MonitoringHandler{monitor: monitor}
}

// GetSystemStats handles GET /api/monitoring/system
func (h *MonitoringHandler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	utils.JSON(w, http.StatusOK, h.monitor.Collect(ctx))
}
