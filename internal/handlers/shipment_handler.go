package handlers

import (
	"encoding/json"
	"net/http"

	"polar-backend/internal/models"
	"polar-backend/internal/services"
	"polar-backend/internal/store"
	"polar-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ShipmentHandler struct {
	Store *store.Store
	Query *services.QueryService
}

func NewShipmentHandler(query *services.QueryService) *ShipmentHandler {
	return &ShipmentHandler{Store: query.Store, Query: query}
}

func shipmentFilterFrom(r *http.Request) models.ShipmentFilter {
	q := r.URL.Query()
	return models.ShipmentFilter{
		Search:   q.Get("q"),
		Status:   models.ShipmentStatus(q.Get("status")),
		FlightID: q.Get("flight_id"),
	}
}

// ListShipments handles GET /api/shipments?q=&status=&flight_id=
func (h *ShipmentHandler) ListShipments(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Query.FilterShipments(shipmentFilterFrom(r)))
}

func (h *ShipmentHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	sh, ok := h.Store.Shipment(mux.Vars(r)["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "shipment not found")
		return
	}
	utils.JSON(w, http.StatusOK, sh)
}

// CreateShipment adds a fully formed record; the caller supplies the id
func (h *ShipmentHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var sh models.Shipment
	if err := json.NewDecoder(r.Body).Decode(&sh); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// Edit stamps are only ever set by audited updates
	sh.EditedBy, sh.EditedAt = "", ""

	if err := h.Store.AddShipment(sh); err != nil {
		writeStoreError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, sh)
}

// UpdateShipment handles PATCH /api/shipments/{id}
func (h *ShipmentHandler) UpdateShipment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var patch models.ShipmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Store.UpdateShipment(id, patch, actor); err != nil {
		writeStoreError(w, err)
		return
	}

	sh, _ := h.Store.Shipment(id)
	utils.JSON(w, http.StatusOK, sh)
}

func (h *ShipmentHandler) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteShipment(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveShipment handles PUT /api/shipments/{id}/flight, the drag-and-drop between flights
func (h *ShipmentHandler) MoveShipment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req models.MoveShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Store.MoveShipmentToFlight(id, req.FlightID, actor); err != nil {
		writeStoreError(w, err)
		return
	}

	sh, _ := h.Store.Shipment(id)
	utils.JSON(w, http.StatusOK, sh)
}

// ListRequests handles GET /api/requests?q=
func (h *ShipmentHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Query.SearchRequests(r.URL.Query().Get("q")))
}

// CreateRequest handles POST /api/requests; id and display number are assigned here
func (h *ShipmentHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sh, err := h.Query.CreateRequest(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, sh)
}
