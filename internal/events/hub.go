// Package events pushes store changes and the theme flag to websocket subscribers.
package events

import (
	"context"
	"net/http"
	"sync"
	"time"

	"polar-backend/internal/metrics"
	"polar-backend/internal/store"
	"polar-backend/internal/timeutil"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	TypeStore = "store"
	TypeTheme = "theme"
	TypeAlert = "alert"

	writeWait  = 5 * time.Second
	bufferSize = 256
)

// Message is one frame sent to every subscriber
type Message struct {
	Type      string       `json:"type"`
	Event     *store.Event `json:"event,omitempty"`
	Dark      *bool        `json:"dark,omitempty"` // Set for theme frames
	Alert     *Alert       `json:"alert,omitempty"`
	Timestamp string       `json:"timestamp"`
}

// Alert is a host-level warning raised by the monitor
type Alert struct {
	Severity string `json:"severity"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Hub struct {
	log        *zap.Logger
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Message
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:       log,
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Message, bufferSize),
	}
}

// Run fans queued messages out to clients until ctx is done, then closes every connection
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.send(msg)
		}
	}
}

func (h *Hub) send(msg Message) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	for client := range h.clients {
		client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteJSON(msg); err != nil {
			client.Close()
			delete(h.clients, client)
			metrics.WebsocketClients.Dec()
		}
	}
}

func (h *Hub) closeAll() {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
		metrics.WebsocketClients.Dec()
	}
}

// Publish queues msg; when the queue is full the frame is dropped so store
// operations never wait on slow subscribers
func (h *Hub) Publish(msg Message) {
	if msg.Timestamp == "" {
		msg.Timestamp = timeutil.FormatRU(timeutil.Now())
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("[Events] broadcast queue full, dropping frame", zap.String("type", msg.Type))
	}
}

// OnStoreEvent is a store.Listener
func (h *Hub) OnStoreEvent(ev store.Event) {
	h.Publish(Message{Type: TypeStore, Event: &ev})
}

// ApplyTheme mirrors the dark-mode flag to subscribers; it satisfies store.ThemeApplier
func (h *Hub) ApplyTheme(dark bool) {
	h.Publish(Message{Type: TypeTheme, Dark: &dark})
}

// PublishAlert forwards a monitor alert
func (h *Hub) PublishAlert(a Alert) {
	h.Publish(Message{Type: TypeAlert, Alert: &a})
}

// ServeWS upgrades the request and keeps the connection registered until the client goes away
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("[Events] websocket upgrade failed", zap.Error(err))
		return
	}

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()
	metrics.WebsocketClients.Inc()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.clientsMux.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				metrics.WebsocketClients.Dec()
			}
			h.clientsMux.Unlock()
			conn.Close()
			return
		}
	}
}

// ClientCount returns the number of connected subscribers
func (h *Hub) ClientCount() int {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	return len(h.clients)
}
