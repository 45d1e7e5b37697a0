package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans events out to connected dashboard clients. Delivery is
// fire-and-forget: a client that cannot be written to is dropped, and an
// empty room is not an error.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*wsConn
	logger  *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*wsConn),
		logger:  logger,
	}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Register attaches a dashboard client. An existing connection under the
// same id is closed and replaced.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[clientID]; ok {
		old.conn.Close()
	}
	h.clients[clientID] = &wsConn{conn: conn}
	h.logger.Debug("Realtime client registered", zap.String("client_id", clientID))
}

// Unregister detaches and closes a dashboard client.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		c.conn.Close()
		delete(h.clients, clientID)
	}
}

// Broadcast sends a typed event payload to every connected client. Failed
// writes are logged and the offending connections removed; Broadcast itself
// never fails.
func (h *Hub) Broadcast(event string, payload interface{}) {
	msg := map[string]interface{}{
		"event":     event,
		"data":      payload,
		"timestamp": time.Now().UTC(),
	}

	h.mu.RLock()
	conns := make(map[string]*wsConn, len(h.clients))
	for id, c := range h.clients {
		conns[id] = c
	}
	h.mu.RUnlock()

	var failed []string
	for id, wc := range conns {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			h.logger.Warn("Realtime write failed; dropping client",
				zap.String("client_id", id),
				zap.String("event", event),
				zap.Error(err))
			failed = append(failed, id)
		}
	}

	for _, id := range failed {
		h.Unregister(id)
	}
}

// PaymentCompletedPayload is pushed to the dashboard when a tracked payment
// completes.
type PaymentCompletedPayload struct {
	CustomerID   string    `json:"customer_id,omitempty"`
	CustomerName string    `json:"customer_name"`
	Amount       string    `json:"amount"`
	Purpose      string    `json:"purpose"`
	Timestamp    time.Time `json:"timestamp"`
}
