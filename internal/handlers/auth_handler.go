package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"polar-backend/internal/auth"
	"polar-backend/internal/models"
	"polar-backend/internal/store"
	"polar-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	Store      *store.Store
	JWT        *auth.JWTManager
	LoginDelay time.Duration
	log        *zap.Logger
}

func NewAuthHandler(st *store.Store, jwtManager *auth.JWTManager, loginDelay time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		Store:      st,
		JWT:        jwtManager,
		LoginDelay: loginDelay,
		log:        log,
	}
}

// Login checks credentials after the configured pause and issues a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.LoginDelay > 0 {
		select {
		case <-time.After(h.LoginDelay):
		case <-r.Context().Done():
			return
		}
	}

	user, ok := h.Store.Login(req.Email, req.Password)
	if !ok {
		h.log.Info("[Auth] login rejected", zap.String("email", req.Email), zap.String("ip", getIPAddress(r)))
		utils.Error(w, http.StatusUnauthorized, "Неверный email или пароль")
		return
	}

	token, err := h.JWT.GenerateToken(user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	h.log.Info("[Auth] login", zap.String("user_id", user.ID), zap.String("ip", getIPAddress(r)))
	utils.JSON(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
}

// Logout clears the desk's current user; section and UI flags stay
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// getIPAddress extracts the real IP address from the request
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header first (for proxies/load balancers)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	return r.RemoteAddr
}
