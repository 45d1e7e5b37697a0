package handlers

import (
	"net/http"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/logger"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// RealtimeHandler upgrades dashboard connections onto the notification hub.
type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

// NewRealtimeHandler creates the websocket endpoint handler. Origin checks
// happen at the CORS layer; the upgrader accepts whatever reaches it.
func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Notifications handles GET /ws/notifications.
func (h *RealtimeHandler) Notifications(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed",
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err))
		return
	}

	clientID := uuid.New().String()
	h.hub.Register(clientID, conn)

	// The dashboard never sends application messages; the read loop only
	// exists to notice disconnects.
	go func() {
		defer h.hub.Unregister(clientID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
