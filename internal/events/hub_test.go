package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"polar-backend/internal/models"
	"polar-backend/internal/store"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHubBroadcastsStoreEventsAndTheme(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	s := store.New(store.DefaultSeed(), store.WithTheme(hub))
	stop := s.Subscribe(hub.OnStoreEvent)

	actor := models.Actor{UserID: "2", UserName: "Марина Соколова"}
	require.NoError(t, s.MoveShipmentToFlight("s2", "f1", actor))
	s.ToggleDarkMode()

	var first, second, third Message
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))
	require.NoError(t, conn.ReadJSON(&third))

	assert.Equal(t, TypeStore, first.Type)
	require.NotNil(t, first.Event)
	assert.Equal(t, store.EventShipmentMoved, first.Event.Kind)
	require.NotNil(t, first.Event.Log)
	assert.Equal(t, "Перемещён в рейс f1", first.Event.Log.Action)

	// ApplyTheme runs before the store event is dispatched
	assert.Equal(t, TypeTheme, second.Type)
	require.NotNil(t, second.Dark)
	assert.True(t, *second.Dark)
	assert.Equal(t, store.EventTheme, third.Event.Kind)

	stop()
	conn.Close()
	srv.Close()
	cancel()
	<-done
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	hub := NewHub(zap.NewNop())

	for i := 0; i < bufferSize+10; i++ {
		hub.PublishAlert(Alert{Severity: "warning", Type: "test"})
	}

	assert.Len(t, hub.broadcast, bufferSize)
}
