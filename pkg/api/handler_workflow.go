package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
)

// createWorkflowRequest is the POST /api/workflows body.
type createWorkflowRequest struct {
	IssueID         string `json:"issue_id"`
	WorktreePath    string `json:"worktree_path"`
	WorktreeName    string `json:"worktree_name"`
	Profile         string `json:"profile"`
	Driver          string `json:"driver"`
	TaskTitle       string `json:"task_title"`
	TaskDescription string `json:"task_description"`
}

// createWorkflowResponse is the 201 body.
type createWorkflowResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// workflowDetail is the GET /api/workflows/:id response.
type workflowDetail struct {
	*ent.Workflow
	Plan         *models.PlanArtifact  `json:"plan,omitempty"`
	TokenUsage   *services.TokenTotals `json:"token_usage"`
	RecentEvents []*ent.Event          `json:"recent_events"`
}

// actionResponse acknowledges approve/reject/cancel.
type actionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// rejectRequest is the POST /api/workflows/:id/reject body.
type rejectRequest struct {
	Feedback string `json:"feedback"`
}

// createWorkflowHandler handles POST /api/workflows.
func (s *Server) createWorkflowHandler(c *gin.Context) {
	var req createWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error(), Code: "invalid_request"})
		return
	}

	wf, err := s.orch.StartWorkflow(c.Request.Context(), models.CreateWorkflowRequest{
		IssueID:         req.IssueID,
		WorktreePath:    req.WorktreePath,
		WorktreeName:    req.WorktreeName,
		ProfileID:       req.Profile,
		Driver:          req.Driver,
		TaskTitle:       req.TaskTitle,
		TaskDescription: req.TaskDescription,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createWorkflowResponse{
		ID:      wf.ID,
		Status:  string(wf.Status),
		Message: "workflow created",
	})
}

// listWorkflowsHandler handles GET /api/workflows.
func (s *Server) listWorkflowsHandler(c *gin.Context) {
	filters := models.WorkflowFilters{
		Status:       c.Query("status"),
		ProfileID:    c.Query("profile"),
		WorktreePath: c.Query("worktree_path"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Offset = n
		}
	}

	result, err := s.workflows.ListWorkflows(c.Request.Context(), filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getWorkflowHandler handles GET /api/workflows/:id.
func (s *Server) getWorkflowHandler(c *gin.Context) {
	workflowID := c.Param("id")

	wf, err := s.workflows.GetWorkflow(c.Request.Context(), workflowID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	totals, err := s.tokens.WorkflowTotals(c.Request.Context(), workflowID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	recent, err := s.events.Recent(c.Request.Context(), workflowID, 20)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workflowDetail{
		Workflow:     wf,
		Plan:         models.PlanArtifactFromMap(wf.PlanCache),
		TokenUsage:   totals,
		RecentEvents: recent,
	})
}

// listEventsHandler handles GET /api/workflows/:id/events.
func (s *Server) listEventsHandler(c *gin.Context) {
	workflowID := c.Param("id")

	// 404 for unknown workflows rather than an empty list.
	if _, err := s.workflows.GetWorkflow(c.Request.Context(), workflowID); err != nil {
		writeServiceError(c, err)
		return
	}

	filters := models.EventFilters{
		Level:     c.Query("level"),
		EventType: c.Query("event_type"),
	}
	if v := c.Query("after_sequence"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.AfterSequence = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}

	list, err := s.events.ListEvents(c.Request.Context(), workflowID, filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": list})
}

// approveWorkflowHandler handles POST /api/workflows/:id/approve.
func (s *Server) approveWorkflowHandler(c *gin.Context) {
	workflowID := c.Param("id")

	err := s.orch.Approve(c.Request.Context(), workflowID)
	s.writeActionResult(c, workflowID, err, "approval accepted")
}

// rejectWorkflowHandler handles POST /api/workflows/:id/reject.
func (s *Server) rejectWorkflowHandler(c *gin.Context) {
	workflowID := c.Param("id")

	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error(), Code: "invalid_request"})
		return
	}

	err := s.orch.Reject(c.Request.Context(), workflowID, req.Feedback)
	s.writeActionResult(c, workflowID, err, "plan rejected")
}

// cancelWorkflowHandler handles POST /api/workflows/:id/cancel.
func (s *Server) cancelWorkflowHandler(c *gin.Context) {
	workflowID := c.Param("id")

	err := s.orch.Cancel(c.Request.Context(), workflowID)
	s.writeActionResult(c, workflowID, err, "cancellation requested")
}

// writeActionResult reports an approval-style action. Terminal workflows
// return success without side effects.
func (s *Server) writeActionResult(c *gin.Context, workflowID string, err error, message string) {
	if errors.Is(err, services.ErrAlreadyTerminal) {
		c.JSON(http.StatusOK, actionResponse{ID: workflowID, Message: "workflow already in a terminal status"})
		return
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, actionResponse{ID: workflowID, Message: message})
}
