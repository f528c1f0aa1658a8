package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// EventPublisher is the single append path of the event log. It assigns
// per-workflow sequence numbers under a per-workflow lock, persists the row
// and broadcasts via NOTIFY in one transaction (pg_notify is transactional,
// held until COMMIT), so subscribers never observe a sequence gap.
//
// Trace events are special-cased: when trace persistence is disabled they
// are broadcast via NOTIFY only and carry no sequence.
type EventPublisher struct {
	db *sql.DB

	// persistTrace is consulted per publish so runtime settings can flip
	// trace persistence without a restart.
	persistTrace func() bool

	// Per-workflow sequence locks. Entries are never removed; the map is
	// bounded by the number of workflows seen by this process.
	seqMu sync.Mutex
	seqs  map[string]*sync.Mutex
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
// persistTrace reports whether trace-level events are written to the store;
// pass nil to always persist.
func NewEventPublisher(db *sql.DB, persistTrace func() bool) *EventPublisher {
	if persistTrace == nil {
		persistTrace = func() bool { return true }
	}
	return &EventPublisher{
		db:           db,
		persistTrace: persistTrace,
		seqs:         make(map[string]*sync.Mutex),
	}
}

// Publish appends an event and broadcasts it. Returns the wire envelope,
// with ID and Sequence filled in for persisted events.
func (p *EventPublisher) Publish(ctx context.Context, req models.CreateEventRequest) (*Envelope, error) {
	if req.WorkflowID == "" {
		return nil, fmt.Errorf("workflow_id is required")
	}
	if req.EventType == "" {
		return nil, fmt.Errorf("event_type is required")
	}

	agent := req.Agent
	if agent == "" {
		agent = event.AgentSystem
	}

	level := LevelFor(req.EventType)
	env := &Envelope{
		Type:          "event",
		WorkflowID:    req.WorkflowID,
		Agent:         string(agent),
		EventType:     req.EventType,
		Level:         string(level),
		Message:       req.Message,
		Data:          req.Data,
		CorrelationID: req.CorrelationID,
		TraceID:       req.TraceID,
		ParentID:      req.ParentID,
		ToolName:      req.ToolName,
		ToolInput:     req.ToolInput,
		IsError:       req.IsError,
		CreatedAt:     time.Now(),
	}

	if level == event.LevelTrace {
		if !p.persistTrace() {
			return env, p.notifyEnvelope(ctx, TraceChannel, env)
		}
		if err := p.persistAndNotify(ctx, TraceChannel, env); err != nil {
			return nil, err
		}
		return env, nil
	}

	if err := p.persistAndNotify(ctx, WorkflowChannel(req.WorkflowID), env); err != nil {
		return nil, err
	}

	// Transient copy for wildcard subscribers and the workflow list page.
	// Best-effort: the event is already durable.
	if err := p.notifyEnvelope(ctx, GlobalWorkflowsChannel, env); err != nil {
		slog.Warn("Failed to publish event to global channel",
			"workflow_id", req.WorkflowID, "event_type", req.EventType, "error", err)
	}

	return env, nil
}

// persistAndNotify assigns the next sequence, inserts the event row and
// broadcasts via NOTIFY in a single transaction.
func (p *EventPublisher) persistAndNotify(ctx context.Context, channel string, env *Envelope) error {
	lock := p.workflowLock(env.WorkflowID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Next sequence under the per-workflow lock; the unique
	// (workflow_id, sequence) index backs this up.
	var sequence int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sequence), 0) + 1 FROM events WHERE workflow_id = $1`,
		env.WorkflowID,
	).Scan(&sequence)
	if err != nil {
		return fmt.Errorf("failed to assign sequence: %w", err)
	}
	env.Sequence = sequence

	dataJSON, toolInputJSON, err := marshalJSONColumns(env)
	if err != nil {
		return err
	}

	// 2. Persist to events table (within transaction)
	var eventID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (
			workflow_id, sequence, agent, event_type, level, message,
			data, correlation_id, trace_id, parent_id, tool_name,
			tool_input, is_error, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		env.WorkflowID, env.Sequence, env.Agent, env.EventType, env.Level,
		env.Message, dataJSON, nullable(env.CorrelationID), nullable(env.TraceID),
		nullable(env.ParentID), nullable(env.ToolName), toolInputJSON,
		env.IsError, env.CreatedAt,
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}
	env.ID = eventID

	payloadJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}

	// 3. pg_notify within same transaction, held until COMMIT
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 4. Commit: INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyEnvelope broadcasts an envelope via NOTIFY without persisting it.
func (p *EventPublisher) notifyEnvelope(ctx context.Context, channel string, env *Envelope) error {
	payloadJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// workflowLock returns the sequence lock for a workflow.
func (p *EventPublisher) workflowLock(workflowID string) *sync.Mutex {
	p.seqMu.Lock()
	defer p.seqMu.Unlock()
	lock, ok := p.seqs[workflowID]
	if !ok {
		lock = &sync.Mutex{}
		p.seqs[workflowID] = lock
	}
	return lock
}

func marshalJSONColumns(env *Envelope) (dataJSON, toolInputJSON interface{}, err error) {
	if env.Data != nil {
		b, err := json.Marshal(env.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal event data: %w", err)
		}
		dataJSON = b
	}
	if env.ToolInput != nil {
		b, err := json.Marshal(env.ToolInput)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal tool input: %w", err)
		}
		toolInputJSON = b
	}
	return dataJSON, toolInputJSON, nil
}

// nullable maps empty strings onto SQL NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
