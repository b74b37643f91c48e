package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"polar-backend/internal/auth"
	"polar-backend/internal/config"
	"polar-backend/internal/events"
	"polar-backend/internal/handlers"
	"polar-backend/internal/health"
	"polar-backend/internal/middleware"
	"polar-backend/internal/models"
	"polar-backend/internal/monitoring"
	"polar-backend/internal/services"
	"polar-backend/internal/store"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	handler http.Handler
	store   *store.Store
	hub     *events.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "polar-backend"
	cfg.Server.CorsAllowedOrigins = []string{"*"}

	log := zap.NewNop()
	hub := events.NewHub(log)
	st := store.New(store.DefaultSeed(), store.WithTheme(hub), store.WithLogger(log))
	jwtManager := auth.NewJWTManager(cfg)
	query := services.NewQueryService(st)
	reports := services.NewReportService(query, "", log)
	monitor := monitoring.NewMonitor(hub, log)

	h := NewRouter(
		cfg,
		log,
		handlers.NewAuthHandler(st, jwtManager, 0, log),
		handlers.NewSessionHandler(st),
		handlers.NewUserHandler(query),
		handlers.NewShipmentHandler(query),
		handlers.NewFlightHandler(query),
		handlers.NewEquipmentHandler(query),
		handlers.NewReportHandler(reports, query, log),
		handlers.NewHealthHandler(health.NewHealthChecker(st), monitor),
		handlers.NewMonitoringHandler(monitor),
		hub.ServeWS,
		middleware.NewAuthMiddleware(jwtManager, st),
	)
	return &testServer{handler: h, store: st, hub: hub}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/auth/login", "", models.LoginRequest{Email: email, Password: "123456"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAPIRequiresActingUser(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/shipments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/shipments", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/auth/login", "", models.LoginRequest{Email: "logist@polarstar.ru", Password: "654321"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, ok := s.store.CurrentUser()
	assert.False(t, ok)
}

func TestSessionRoutesArePublic(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/session/theme", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dark_mode":true}`, rec.Body.String())

	rec = s.do(t, http.MethodPut, "/api/session/section", "", models.SetSectionRequest{Section: models.SectionReports})
	require.Equal(t, http.StatusOK, rec.Code)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, models.SectionReports, session.Section)
	assert.True(t, session.DarkMode)
	assert.Nil(t, session.CurrentUser)
}

func TestResetRequiresActingUser(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "manager@polarstar.ru")

	rec := s.do(t, http.MethodPatch, "/api/shipments/s2", token, map[string]string{"status": "ready"})
	require.Equal(t, http.StatusOK, rec.Code)
	s.store.Logout()

	rec = s.do(t, http.MethodPost, "/api/session/reset", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sh, ok := s.store.Shipment("s2")
	require.True(t, ok)
	assert.Equal(t, models.ShipmentReady, sh.Status)
	assert.Equal(t, "Марина Соколова", sh.EditedBy)
	assert.Len(t, s.store.Logs(0), 5)

	rec = s.do(t, http.MethodPost, "/api/session/reset", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sh, _ = s.store.Shipment("s2")
	assert.Equal(t, models.ShipmentNotReady, sh.Status)
	assert.Len(t, s.store.Logs(0), 4)
}

func TestPatchShipmentStampsActor(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "manager@polarstar.ru")

	rec := s.do(t, http.MethodPatch, "/api/shipments/s2", token, map[string]string{"status": "ready"})
	require.Equal(t, http.StatusOK, rec.Code)

	var sh models.Shipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sh))
	assert.Equal(t, models.ShipmentReady, sh.Status)
	assert.Equal(t, "f2", sh.FlightID)
	assert.Equal(t, "Марина Соколова", sh.EditedBy)

	rec = s.do(t, http.MethodGet, "/api/logs?limit=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []models.ActionLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "Редактирование отправки", logs[0].Action)
	assert.Equal(t, "s2", logs[0].EntityID)
}

func TestDeskSessionActsWithoutToken(t *testing.T) {
	s := newTestServer(t)
	s.login(t, "logist@polarstar.ru")

	rec := s.do(t, http.MethodPut, "/api/shipments/s1/flight", "", models.MoveShipmentRequest{FlightID: "f4"})
	require.Equal(t, http.StatusOK, rec.Code)

	logs := s.store.Logs(1)
	assert.Equal(t, "1", logs[0].UserID)
	assert.Equal(t, models.ActionMovePrefix+"f4", logs[0].Action)
}

func TestStoreErrorsMapToStatuses(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "logist@polarstar.ru")

	rec := s.do(t, http.MethodGet, "/api/shipments/nope", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/shipments/s1/flight", token, models.MoveShipmentRequest{FlightID: "f99"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	sh, _ := s.store.Shipment("s1")
	rec = s.do(t, http.MethodPost, "/api/shipments", token, sh)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/equipment/e1", token, map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/logs?limit=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRequestAssignsNumber(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "logist@polarstar.ru")

	rec := s.do(t, http.MethodPost, "/api/requests", token, models.CreateRequestRequest{Request: "ЗЯ-2026-051", Client: "ООО Север", Weight: 9000})
	require.Equal(t, http.StatusCreated, rec.Code)

	var sh models.Shipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sh))
	assert.Equal(t, "007", sh.Number)
	assert.NotEmpty(t, sh.ID)
	assert.Len(t, s.store.Shipments(), 7)
}

func TestDeleteFlightUnassigns(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "director@polarstar.ru")

	rec := s.do(t, http.MethodDelete, "/api/flights/f1", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	for _, id := range []string{"s1", "s4"} {
		sh, ok := s.store.Shipment(id)
		require.True(t, ok)
		assert.Empty(t, sh.FlightID, id)
	}

	rec = s.do(t, http.MethodDelete, "/api/flights/f1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFlightBoardAndDashboard(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "logist@polarstar.ru")

	rec := s.do(t, http.MethodGet, "/api/flights/board", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board []models.FlightBoardItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	assert.Len(t, board, 4)

	rec = s.do(t, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash models.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, 12, dash.EquipmentTotal)
	assert.Equal(t, 3, dash.ShipmentsReady)
	assert.Equal(t, 3, dash.ShipmentsNotReady)
}

func TestCSVDownloads(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "logist@polarstar.ru")

	for _, tc := range []struct{ path, name string }{
		{"/api/reports/shipments/csv", "shipments.csv"},
		{"/api/reports/equipment/csv", "equipment.csv"},
		{"/api/reports/planning/csv?status=ready", "planning.csv"},
	} {
		rec := s.do(t, http.MethodGet, tc.path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, tc.path)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), tc.name)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\uFEFF"), tc.path)
	}
}

func TestSummaryPDF(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "director@polarstar.ru")

	rec := s.do(t, http.MethodGet, "/api/reports/summary/pdf", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/health/ready", "/health/detailed", "/metrics"} {
		rec := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestEventsSocketReceivesThemeFrames(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.hub.Run(ctx)

	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/events", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return s.hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/api/session/theme", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	var msg events.Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, events.TypeTheme, msg.Type)
	require.NotNil(t, msg.Dark)
	assert.True(t, *msg.Dark)
}
