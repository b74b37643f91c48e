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

type EquipmentHandler struct {
	Store *store.Store
	Query *services.QueryService
}

func NewEquipmentHandler(query *services.QueryService) *EquipmentHandler {
	return &EquipmentHandler{Store: query.Store, Query: query}
}

// ListEquipment handles GET /api/equipment?q=&type=&status=&terminal=
func (h *EquipmentHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.EquipmentFilter{
		Search:   q.Get("q"),
		Type:     models.EquipmentType(q.Get("type")),
		Status:   models.EquipmentStatus(q.Get("status")),
		Terminal: q.Get("terminal"),
	}
	utils.JSON(w, http.StatusOK, h.Query.FilterEquipment(filter))
}

func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	e, err := h.Query.CreateEquipment(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, e)
}

// UpdateEquipment handles PATCH /api/equipment/{id}
func (h *EquipmentHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var patch models.EquipmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Store.UpdateEquipment(id, patch, actor); err != nil {
		writeStoreError(w, err)
		return
	}

	e, _ := h.Store.EquipmentItem(id)
	utils.JSON(w, http.StatusOK, e)
}

func (h *EquipmentHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEquipment(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
