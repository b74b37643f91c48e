package auth

import (
	"testing"
	"time"

	"polar-backend/internal/config"
	"polar-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "polar-backend"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())
	user := models.User{ID: "2", Name: "Марина Соколова", Email: "manager@polarstar.ru", Role: models.RoleManager}

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.Actor{UserID: "2", UserName: "Марина Соколова"}, claims.Actor())
	assert.Equal(t, "manager", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager(testConfig())
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateToken(models.User{ID: "1"})
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewJWTManager(testConfig()).GenerateToken(models.User{ID: "1"})
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "another"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}
