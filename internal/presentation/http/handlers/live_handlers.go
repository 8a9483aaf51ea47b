package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/messaging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
)

const (
	feedWriteWait = 10 * time.Second
	feedPingEvery = 30 * time.Second
)

// LiveHandlers streams ingestion events to the admin dashboard over a
// websocket. Auth happens in middleware before the upgrade.
type LiveHandlers struct {
	broadcaster messaging.Broadcaster
	logger      *logging.ChanneledLogger
	upgrader    websocket.Upgrader
}

// NewLiveHandlers creates live feed handlers with injected dependencies
func NewLiveHandlers(broadcaster messaging.Broadcaster, logger *logging.ChanneledLogger) *LiveHandlers {
	return &LiveHandlers{
		broadcaster: broadcaster,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Token auth already gates this endpoint; the dashboard may be
			// served from a different origin than the API.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// GetLiveFeed handles GET /api/v1/admin/live - upgrades to a websocket and
// relays lead and page-view events until the client disconnects.
func (h *LiveHandlers) GetLiveFeed(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Analytics().Debug("Websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	events := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(events)

	// Drain client frames so close frames and pongs are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(feedPingEvery)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Analytics().Debug("Feed write failed, dropping client", "error", err.Error())
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
