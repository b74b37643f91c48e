package middleware

import (
	"context"
	"net/http"
	"strings"

	"polar-backend/internal/auth"
	"polar-backend/internal/models"
	"polar-backend/internal/store"
	"polar-backend/pkg/utils"
)

type contextKey string

const ActorKey contextKey = "actor"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	store      *store.Store
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, st *store.Store) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		store:      st,
	}
}

// Authenticate resolves the acting user. A bearer token wins; without one the
// desk's logged-in user acts; with neither the request is rejected.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var actor models.Actor

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.Error(w, http.StatusUnauthorized, "Invalid authorization format")
				return
			}

			claims, err := m.jwtManager.ValidateToken(parts[1])
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			actor = claims.Actor()
		} else {
			user, ok := m.store.CurrentUser()
			if !ok {
				utils.Error(w, http.StatusUnauthorized, "Not logged in")
				return
			}
			actor = models.ActorOf(user)
		}

		ctx := context.WithValue(r.Context(), ActorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorFromContext extracts the acting user from request context
func GetActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(models.Actor)
	return actor, ok
}
