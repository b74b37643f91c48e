package handlers

import (
	"net/http"
	"strconv"

	"polar-backend/internal/services"
	"polar-backend/pkg/utils"
)

// UserHandler serves the accounts section
type UserHandler struct {
	Query *services.QueryService
}

func NewUserHandler(query *services.QueryService) *UserHandler {
	return &UserHandler{Query: query}
}

// ListUsers returns all users; passwords never leave the store
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Query.Store.Users())
}

// ListLogs handles GET /api/logs?limit=50; limit 0 returns the whole log
func (h *UserHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit := services.RecentLogLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	utils.JSON(w, http.StatusOK, h.Query.Store.Logs(limit))
}

func (h *UserHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Query.Accounts())
}
