package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades the connection and hands it to the ConnectionManager,
// which owns subscribe/unsubscribe and catch-up from there.
// GET /ws
func (s *Server) wsHandler(c *gin.Context) {
	if s.manager == nil {
		respondError(c, http.StatusServiceUnavailable, codeUnavailable, "WebSocket not available")
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// TODO: replace with an OriginPatterns allowlist from server config.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}

	// Blocks until the WebSocket closes.
	s.manager.HandleConnection(c.Request.Context(), conn)
}
