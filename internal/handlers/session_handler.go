package handlers

import (
	"encoding/json"
	"net/http"

	"polar-backend/internal/models"
	"polar-backend/internal/store"
	"polar-backend/pkg/utils"
)

// SessionHandler exposes the desk's UI state: section, sidebar and theme
type SessionHandler struct {
	Store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{Store: st}
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Store.Session())
}

// SetSection accepts any section id; unknown ids are stored as given
func (h *SessionHandler) SetSection(w http.ResponseWriter, r *http.Request) {
	var req models.SetSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.Store.SetSection(req.Section)
	utils.JSON(w, http.StatusOK, h.Store.Session())
}

func (h *SessionHandler) SetSidebar(w http.ResponseWriter, r *http.Request) {
	var req models.SetSidebarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.Store.SetSidebarOpen(req.Open)
	utils.JSON(w, http.StatusOK, h.Store.Session())
}

func (h *SessionHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	dark := h.Store.ToggleDarkMode()
	utils.JSON(w, http.StatusOK, map[string]bool{"dark_mode": dark})
}

// Reset reloads the built-in seed
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Store.Reset()
	utils.JSON(w, http.StatusOK, h.Store.Session())
}
