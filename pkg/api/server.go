// Package api exposes the REST and WebSocket surface over gin.
package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/database"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/orchestrator"
	"github.com/existential-birds/amelia-sub003/pkg/services"
)

// Server holds the handler dependencies.
type Server struct {
	orch      *orchestrator.Service
	workflows *services.WorkflowService
	events    *services.EventService
	tokens    *services.TokenService
	conns     *events.ConnectionManager
	db        *database.Client
	wsOrigins []string
}

// NewServer creates the API server.
func NewServer(
	orch *orchestrator.Service,
	workflows *services.WorkflowService,
	eventService *services.EventService,
	tokens *services.TokenService,
	conns *events.ConnectionManager,
	db *database.Client,
	serverCfg *config.ServerConfig,
) *Server {
	var origins []string
	if serverCfg != nil {
		origins = serverCfg.AllowedWSOrigins
	}
	return &Server{
		orch:      orch,
		workflows: workflows,
		events:    eventService,
		tokens:    tokens,
		conns:     conns,
		db:        db,
		wsOrigins: origins,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", s.healthHandler)
	r.GET("/ws/events", s.wsHandler)

	api := r.Group("/api")
	{
		api.POST("/workflows", s.createWorkflowHandler)
		api.GET("/workflows", s.listWorkflowsHandler)
		api.GET("/workflows/:id", s.getWorkflowHandler)
		api.GET("/workflows/:id/events", s.listEventsHandler)
		api.POST("/workflows/:id/approve", s.approveWorkflowHandler)
		api.POST("/workflows/:id/reject", s.rejectWorkflowHandler)
		api.POST("/workflows/:id/cancel", s.cancelWorkflowHandler)
	}

	return r
}

// requestLogger logs each request with slog after completion.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.URL.Path == "/healthz" {
			return
		}
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
