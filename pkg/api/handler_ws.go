package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades GET /ws/events to a WebSocket connection. An optional
// ?since=<event_id> query triggers a backfill of events published after that
// ID before live delivery begins.
func (s *Server) wsHandler(c *gin.Context) {
	if s.conns == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "event streaming unavailable", Code: "streaming_unavailable"})
		return
	}

	var sinceID *int
	if v := c.Query("since"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "since must be an integer event id",
				Code:    "invalid_request",
				Details: map[string]interface{}{"field": "since"},
			})
			return
		}
		sinceID = &n
	}

	opts := &websocket.AcceptOptions{}
	if len(s.wsOrigins) > 0 {
		opts.OriginPatterns = s.wsOrigins
	} else {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err, "remote", c.Request.RemoteAddr)
		return
	}

	s.conns.HandleConnection(c.Request.Context(), conn, sinceID)
}
