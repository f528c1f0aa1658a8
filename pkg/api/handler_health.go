package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/existential-birds/amelia-sub003/pkg/version"
)

// healthHandler reports process health including database reachability,
// running orchestrator tasks and open WebSocket connections.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	dbStatus := "ok"
	if s.db == nil {
		status = http.StatusServiceUnavailable
		dbStatus = "unconfigured"
	} else if err := s.db.DB().PingContext(ctx); err != nil {
		status = http.StatusServiceUnavailable
		dbStatus = "unreachable: " + err.Error()
	}

	activeTasks := 0
	if s.orch != nil {
		activeTasks = s.orch.ActiveTaskCount()
	}
	wsConns := 0
	if s.conns != nil {
		wsConns = s.conns.ActiveConnections()
	}

	// Active workflows can exceed active tasks: blocked workflows hold no
	// task while they wait at the approval gate.
	activeWorkflows := 0
	if dbStatus == "ok" && s.workflows != nil {
		if n, err := s.workflows.CountActive(ctx); err == nil {
			activeWorkflows = n
		}
	}

	body := gin.H{
		"status":           "ok",
		"version":          version.Full(),
		"database":         dbStatus,
		"active_tasks":     activeTasks,
		"active_workflows": activeWorkflows,
		"ws_connections":   wsConns,
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
