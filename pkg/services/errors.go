package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrWorkflowConflict is returned when an active workflow already holds
	// the requested worktree
	ErrWorkflowConflict = errors.New("active workflow exists for worktree")

	// ErrRateLimited is returned when the global active-workflow cap is reached
	ErrRateLimited = errors.New("maximum concurrent workflows reached")

	// ErrInvalidTransition is returned for an illegal workflow status change
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotApprovable is returned when approve/reject is called on a
	// workflow that is not waiting on human action
	ErrNotApprovable = errors.New("workflow is not awaiting approval")

	// ErrAlreadyTerminal is returned by idempotent terminal actions so
	// callers can report success without side effects
	ErrAlreadyTerminal = errors.New("workflow already in terminal status")

	// ErrCursorNotFound is returned when a backfill cursor no longer
	// resolves to a stored event
	ErrCursorNotFound = errors.New("event cursor not found")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransitionError describes a rejected status change.
type TransitionError struct {
	WorkflowID string
	From       string
	To         string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("workflow %s: invalid transition %s -> %s", e.WorkflowID, e.From, e.To)
}

// Unwrap makes TransitionError match ErrInvalidTransition.
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
