package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/existential-birds/amelia-sub003/pkg/services"
)

// errorResponse is the error envelope for every non-2xx API response.
type errorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// writeServiceError maps service-layer errors to HTTP responses.
func writeServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   validErr.Message,
			Code:    "invalid_request",
			Details: map[string]interface{}{"field": validErr.Field},
		})
		return
	}
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_request"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found", Code: "not_found"})
	case errors.Is(err, services.ErrWorkflowConflict):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error(), Code: "workflow_conflict"})
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error(), Code: "rate_limit"})
	case errors.Is(err, services.ErrNotApprovable):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error(), Code: "not_approvable"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error(), Code: "invalid_transition"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error(), Code: "already_exists"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "internal_error"})
	}
}
