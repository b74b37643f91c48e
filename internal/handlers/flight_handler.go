package handlers

import (
	"encoding/json"
	"net/http"

	"polar-backend/internal/cache"
	"polar-backend/internal/models"
	"polar-backend/internal/services"
	"polar-backend/internal/store"
	"polar-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type FlightHandler struct {
	Store *store.Store
	Query *services.QueryService
}

func NewFlightHandler(query *services.QueryService) *FlightHandler {
	return &FlightHandler{Store: query.Store, Query: query}
}

func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Store.Flights())
}

// Board handles GET /api/flights/board: flights with their shipments and readiness
func (h *FlightHandler) Board(w http.ResponseWriter, r *http.Request) {
	key := cache.Key(cache.BoardKey)
	if data, ok := cache.GetCached(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	board := h.Query.FlightBoard()
	if data, err := json.Marshal(board); err == nil {
		cache.SetCached(r.Context(), key, data, cache.ReportTTL)
	}
	utils.JSON(w, http.StatusOK, board)
}

func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	f, err := h.Query.CreateFlight(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, f)
}

// UpdateFlight handles PATCH /api/flights/{id}; flight edits are not audited
func (h *FlightHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	var patch models.FlightPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Store.UpdateFlight(id, patch); err != nil {
		writeStoreError(w, err)
		return
	}

	f, _ := h.Store.Flight(id)
	utils.JSON(w, http.StatusOK, f)
}

// DeleteFlight removes the flight and unassigns its shipments
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteFlight(mux.Vars(r)["id"], actor); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
