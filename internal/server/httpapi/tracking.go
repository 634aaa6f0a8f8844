package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the API is served to the SPA from another origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// trackTicket upgrades the request to a WebSocket and pushes simulated
// technician positions for the ticket until the client disconnects. The
// position feed is owned by this connection: closing the connection
// cancels its timer, and a send failure is treated as an implicit close,
// logged but never escalated.
func (s *Server) trackTicket(c *gin.Context) {
	ticketID := c.Param("ticketId")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error(c.Request.Context(), "websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	logger := s.logger.With("ticket_id", ticketID)
	logger.Info(ctx, "Tracking stream opened")

	// reader pump: its only job is to notice the peer going away
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for pos := range s.tracking.Stream(ctx, ticketID) {
		if err := conn.WriteJSON(pos); err != nil {
			logger.Info(ctx, "Tracking stream send failed, closing", "reason", err.Error())
			cancel()
		}
	}

	logger.Info(ctx, "Tracking stream closed")
}
