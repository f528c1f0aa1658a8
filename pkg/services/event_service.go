package services

import (
	"context"
	"fmt"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// EventService provides read and retention access to the append-only event
// log. Appends go through the events.Publisher so that persistence and
// live notification stay in one transaction.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ListEvents lists a workflow's events with filtering and pagination,
// ordered by sequence.
func (s *EventService) ListEvents(ctx context.Context, workflowID string, filters models.EventFilters) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(event.WorkflowIDEQ(workflowID))

	if filters.Level != "" {
		query = query.Where(event.LevelEQ(event.Level(filters.Level)))
	}
	if filters.EventType != "" {
		query = query.Where(event.EventTypeEQ(filters.EventType))
	}
	if filters.AfterSequence > 0 {
		query = query.Where(event.SequenceGT(filters.AfterSequence))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	events, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(event.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// Recent returns the last k events of a workflow in ascending sequence order.
func (s *EventService) Recent(ctx context.Context, workflowID string, k int) ([]*ent.Event, error) {
	if k <= 0 {
		k = 20
	}

	events, err := s.client.Event.Query().
		Where(event.WorkflowIDEQ(workflowID)).
		Order(ent.Desc(event.FieldSequence)).
		Limit(k).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent events: %w", err)
	}

	// Flip to ascending for callers.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	return events, nil
}

// GetEventsSince retrieves stored events after a global cursor ID, across
// all workflows, for WebSocket backfill. The cursor event itself must still
// exist; otherwise ErrCursorNotFound is returned and the client should
// resubscribe from live.
func (s *EventService) GetEventsSince(ctx context.Context, sinceID int, limit int) ([]*ent.Event, error) {
	exists, err := s.client.Event.Query().
		Where(event.IDEQ(sinceID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve event cursor: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrCursorNotFound, sinceID)
	}

	if limit <= 0 {
		limit = 1000
	}

	events, err := s.client.Event.Query().
		Where(event.IDGT(sinceID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events since cursor: %w", err)
	}

	return events, nil
}

// MaxSequence returns the highest assigned sequence for a workflow, 0 when
// the workflow has no events.
func (s *EventService) MaxSequence(ctx context.Context, workflowID string) (int, error) {
	last, err := s.client.Event.Query().
		Where(event.WorkflowIDEQ(workflowID)).
		Order(ent.Desc(event.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get max sequence: %w", err)
	}

	return last.Sequence, nil
}

// CleanupWorkflowEvents removes all events for a workflow
func (s *EventService) CleanupWorkflowEvents(ctx context.Context, workflowID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.WorkflowIDEQ(workflowID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup workflow events: %w", err)
	}

	return count, nil
}

// PurgeExpiredEvents removes info/debug events older than the retention
// window.
func (s *EventService) PurgeExpiredEvents(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(
			event.LevelIn(event.LevelInfo, event.LevelDebug),
			event.CreatedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired events: %w", err)
	}

	return count, nil
}

// PurgeExpiredTraceEvents removes trace events older than the trace
// retention window.
func (s *EventService) PurgeExpiredTraceEvents(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(
			event.LevelEQ(event.LevelTrace),
			event.CreatedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired trace events: %w", err)
	}

	return count, nil
}

// TrimEventsOverCap deletes the oldest non-trace events beyond the global
// count cap. Returns the number of rows deleted.
func (s *EventService) TrimEventsOverCap(ctx context.Context, maxEvents int) (int, error) {
	if maxEvents <= 0 {
		return 0, fmt.Errorf("max_events must be positive, got %d", maxEvents)
	}

	total, err := s.client.Event.Query().
		Where(event.LevelIn(event.LevelInfo, event.LevelDebug)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	if total <= maxEvents {
		return 0, nil
	}

	excess := total - maxEvents
	victims, err := s.client.Event.Query().
		Where(event.LevelIn(event.LevelInfo, event.LevelDebug)).
		Order(ent.Asc(event.FieldID)).
		Limit(excess).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to select events over cap: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.IDIn(victims...)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to trim events over cap: %w", err)
	}

	return count, nil
}
