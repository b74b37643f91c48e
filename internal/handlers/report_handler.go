package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"polar-backend/internal/cache"
	"polar-backend/internal/services"
	"polar-backend/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	Service *services.ReportService
	Query   *services.QueryService
	log     *zap.Logger
}

func NewReportHandler(service *services.ReportService, query *services.QueryService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{Service: service, Query: query, log: log}
}

// Dashboard handles GET /api/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	key := cache.Key(cache.DashboardKey)
	if data, ok := cache.GetCached(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	dashboard := h.Query.Dashboard()
	if data, err := json.Marshal(dashboard); err == nil {
		cache.SetCached(r.Context(), key, data, cache.ReportTTL)
	}
	utils.JSON(w, http.StatusOK, dashboard)
}

// Summary handles GET /api/reports/summary
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Summary(r.Context()))
}

// SummaryPDF handles GET /api/reports/summary/pdf
func (h *ReportHandler) SummaryPDF(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	pdfData, err := h.Service.SummaryPDF(ctx)
	if err != nil {
		h.log.Error("[Reports] pdf failed", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}

	writeAttachment(w, "application/pdf", services.SummaryPDFName, services.SummaryPDFName, pdfData)
}

// ShipmentsCSV handles GET /api/reports/shipments/csv
func (h *ReportHandler) ShipmentsCSV(w http.ResponseWriter, r *http.Request) {
	csvData, err := h.Service.ShipmentsCSV()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate CSV: "+err.Error())
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", services.ShipmentsCSVName, "shipments.csv", csvData)
}

// EquipmentCSV handles GET /api/reports/equipment/csv
func (h *ReportHandler) EquipmentCSV(w http.ResponseWriter, r *http.Request) {
	csvData, err := h.Service.EquipmentCSV()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate CSV: "+err.Error())
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", services.EquipmentCSVName, "equipment.csv", csvData)
}

// PlanningCSV handles GET /api/reports/planning/csv with the planning table filters
func (h *ReportHandler) PlanningCSV(w http.ResponseWriter, r *http.Request) {
	csvData, err := h.Service.PlanningCSV(shipmentFilterFrom(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate CSV: "+err.Error())
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", services.PlanningCSVName, services.PlanningCSVName, csvData)
}
