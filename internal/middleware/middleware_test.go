package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"polar-backend/internal/auth"
	"polar-backend/internal/config"
	"polar-backend/internal/models"
	"polar-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuth(t *testing.T) (*AuthMiddleware, *auth.JWTManager, *store.Store) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "polar-backend"
	jwtManager := auth.NewJWTManager(cfg)
	st := store.New(store.DefaultSeed())
	return NewAuthMiddleware(jwtManager, st), jwtManager, st
}

func actorEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, _ := GetActorFromContext(r.Context())
		w.Write([]byte(actor.UserID))
	})
}

func TestAuthenticateRejectsWithoutUser(t *testing.T) {
	m, _, _ := newAuth(t)

	rec := httptest.NewRecorder()
	m.Authenticate(actorEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shipments", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateFallsBackToCurrentUser(t *testing.T) {
	m, _, st := newAuth(t)
	_, ok := st.Login("director@polarstar.ru", "123456")
	require.True(t, ok)

	rec := httptest.NewRecorder()
	m.Authenticate(actorEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shipments", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Body.String())
}

func TestAuthenticateBearerWins(t *testing.T) {
	m, jwtManager, st := newAuth(t)
	_, _ = st.Login("director@polarstar.ru", "123456")
	token, err := jwtManager.GenerateToken(models.User{ID: "1", Name: "Алексей Петров", Role: models.RoleLogist})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/shipments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(actorEcho()).ServeHTTP(rec, req)

	assert.Equal(t, "1", rec.Body.String())
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	m, _, _ := newAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/api/shipments", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec := httptest.NewRecorder()
	m.Authenticate(actorEcho()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPanicRecovery(t *testing.T) {
	h := PanicRecovery(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}
