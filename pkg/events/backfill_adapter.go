package events

import (
	"context"
	"fmt"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/event"
)

// EventServiceAdapter wraps the database client to implement BackfillQuerier.
type EventServiceAdapter struct {
	client *ent.Client
}

// NewEventServiceAdapter creates a BackfillQuerier backed by the event table.
func NewEventServiceAdapter(client *ent.Client) *EventServiceAdapter {
	return &EventServiceAdapter{client: client}
}

// BackfillSince resolves a cursor event and returns the later events of the
// same workflow in sequence order, up to limit. A cursor that no longer
// exists (purged by retention) yields ErrCursorExpired.
func (a *EventServiceAdapter) BackfillSince(ctx context.Context, sinceID, limit int) (*BackfillResult, error) {
	cursor, err := a.client.Event.Get(ctx, sinceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", ErrCursorExpired, sinceID)
		}
		return nil, fmt.Errorf("failed to resolve backfill cursor: %w", err)
	}

	rows, err := a.client.Event.Query().
		Where(
			event.WorkflowIDEQ(cursor.WorkflowID),
			event.SequenceGT(cursor.Sequence),
		).
		Order(ent.Asc(event.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query backfill events: %w", err)
	}

	envelopes := make([]*Envelope, len(rows))
	for i, row := range rows {
		envelopes[i] = EnvelopeFromEnt(row)
	}

	return &BackfillResult{
		WorkflowID: cursor.WorkflowID,
		Events:     envelopes,
	}, nil
}
