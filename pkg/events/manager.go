package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// backfillLimit is the maximum number of events replayed for a reconnect
// cursor. The cap is a hard contract: clients needing more history must use
// the REST API.
const backfillLimit = 1000

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel. Without this, a stalled connection would block the
// subscribing goroutine (and thus the client's read loop) indefinitely.
const listenTimeout = 10 * time.Second

// ErrCursorExpired indicates a backfill cursor no longer resolves to a
// stored event (typically purged by retention).
var ErrCursorExpired = errors.New("backfill cursor expired")

// BackfillResult holds the events replayed for one cursor.
type BackfillResult struct {
	WorkflowID string
	Events     []*Envelope
}

// BackfillQuerier resolves a reconnect cursor and returns the later events
// of the cursor's workflow. Implemented by EventServiceAdapter.
type BackfillQuerier interface {
	BackfillSince(ctx context.Context, sinceID, limit int) (*BackfillResult, error)
}

// ConnectionManager manages WebSocket connections and subscription routing.
// Each Go process (pod) has one ConnectionManager instance.
//
// Routing policy: events on a workflow channel go to that workflow's
// subscribers; events on the global workflows channel go to wildcard
// subscribers (skipping connections that already received the workflow
// channel copy); events on the trace channel go to every connection.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	// BackfillQuerier for reconnect cursors
	backfillQuerier BackfillQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex

	// Write timeout for WebSocket sends
	writeTimeout time.Duration

	// Server-initiated heartbeat cadence and pong deadline
	heartbeatInterval time.Duration
	idleTimeout       time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions and wildcard are written only by the goroutine that owns
// this connection (HandleConnection's read loop and its deferred cleanup),
// but read by broadcast goroutines, so they are guarded by subMu.
type Connection struct {
	ID   string
	Conn *websocket.Conn

	subMu         sync.RWMutex
	subscriptions map[string]bool // channels this connection is subscribed to
	wildcard      bool

	pongMu   sync.Mutex
	lastPong time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

func (c *Connection) markPong() {
	c.pongMu.Lock()
	c.lastPong = time.Now()
	c.pongMu.Unlock()
}

func (c *Connection) sincePong() time.Duration {
	c.pongMu.Lock()
	defer c.pongMu.Unlock()
	return time.Since(c.lastPong)
}

func (c *Connection) isWildcard() bool {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return c.wildcard
}

func (c *Connection) isSubscribed(channel string) bool {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return c.subscriptions[channel]
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(backfillQuerier BackfillQuerier, writeTimeout, heartbeatInterval, idleTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:       make(map[string]*Connection),
		channels:          make(map[string]map[string]bool),
		backfillQuerier:   backfillQuerier,
		writeTimeout:      writeTimeout,
		heartbeatInterval: heartbeatInterval,
		idleTimeout:       idleTimeout,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both ConnectionManager and NotifyListener
// are created.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// ListenGlobals establishes the always-on LISTENs for the trace and global
// workflows channels. Called once at startup after the listener connects.
func (m *ConnectionManager) ListenGlobals(ctx context.Context) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return fmt.Errorf("notify listener not set")
	}
	if err := l.Subscribe(ctx, TraceChannel); err != nil {
		return fmt.Errorf("LISTEN on trace channel: %w", err)
	}
	if err := l.Subscribe(ctx, GlobalWorkflowsChannel); err != nil {
		return fmt.Errorf("LISTEN on workflows channel: %w", err)
	}
	return nil
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes. sinceID, when non-nil, triggers a backfill before
// entering live mode.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, sinceID *int) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		lastPong:      time.Now(),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	// Send connection established message
	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	if sinceID != nil {
		m.handleBackfill(ctx, c, *sinceID)
	}

	go m.heartbeatLoop(c)

	// Read loop: process client messages until connection closes
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed or error, exit read loop
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// heartbeatLoop sends ping frames on a fixed cadence and closes the
// connection when the client stops answering with pong.
func (m *ConnectionManager) heartbeatLoop(c *Connection) {
	ticker := time.NewTicker(m.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
		}

		if c.sincePong() > m.idleTimeout {
			slog.Info("Closing idle WebSocket connection",
				"connection_id", c.ID, "idle_timeout", m.idleTimeout)
			c.cancel()
			return
		}

		m.sendJSON(c, map[string]string{"type": "ping"})
	}
}

// Broadcast routes an event payload arriving on a NOTIFY channel to the
// matching WebSocket connections.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	switch channel {
	case TraceChannel:
		m.broadcastAll(event)
	case GlobalWorkflowsChannel:
		m.broadcastWildcard(event)
	default:
		m.broadcastChannel(channel, event)
	}
}

// broadcastChannel sends to connections subscribed to a workflow channel.
func (m *ConnectionManager) broadcastChannel(channel string, event []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	// Copy IDs to avoid holding lock during sends
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers under the lock, then release before
	// sending. This avoids holding mu.RLock during potentially slow
	// writes (up to writeTimeout per connection), which would stall
	// connection register/unregister operations.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	m.send(conns, event)
}

// broadcastAll sends to every active connection (trace semantics).
func (m *ConnectionManager) broadcastAll(event []byte) {
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, conn := range m.connections {
		conns = append(conns, conn)
	}
	m.mu.RUnlock()

	m.send(conns, event)
}

// broadcastWildcard sends to wildcard connections. Connections already
// subscribed to the event's workflow channel are skipped: they receive the
// workflow channel copy instead.
func (m *ConnectionManager) broadcastWildcard(event []byte) {
	var routing struct {
		WorkflowID string `json:"workflow_id"`
	}
	if err := json.Unmarshal(event, &routing); err != nil {
		slog.Warn("Unroutable global event payload", "error", err)
		return
	}
	workflowChannel := WorkflowChannel(routing.WorkflowID)

	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, conn := range m.connections {
		if conn.isWildcard() && !conn.isSubscribed(workflowChannel) {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	m.send(conns, event)
}

func (m *ConnectionManager) send(conns []*Connection, event []byte) {
	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported: used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.WorkflowID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "workflow_id is required for subscribe"})
			return
		}
		channel := WorkflowChannel(msg.WorkflowID)
		if err := m.subscribe(c, channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":        "subscription.error",
				"workflow_id": msg.WorkflowID,
				"message":     "failed to subscribe to workflow",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":        "subscription.confirmed",
			"workflow_id": msg.WorkflowID,
		})

	case "unsubscribe":
		if msg.WorkflowID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "workflow_id is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, WorkflowChannel(msg.WorkflowID))

	case "subscribe_all":
		c.subMu.Lock()
		c.wildcard = true
		c.subMu.Unlock()
		m.sendJSON(c, map[string]string{
			"type": "subscription.confirmed",
		})

	case "catchup":
		if msg.SinceID != nil {
			m.handleBackfill(ctx, c, *msg.SinceID)
		}

	case "pong":
		c.markPong()
	}
}

// subscribe registers a connection for a channel and starts LISTEN if first
// subscriber. LISTEN is synchronous so it completes before subscribe
// returns, which guarantees no event published after the confirmation can
// be missed.
//
// Returns an error if LISTEN fails so the caller can inform the client
// instead of sending a false subscription.confirmed.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, listenCancel := context.WithTimeout(context.Background(), listenTimeout)
			defer listenCancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.cleanupFailedChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.subMu.Lock()
	c.subscriptions[channel] = true
	c.subMu.Unlock()
	return nil
}

// cleanupFailedChannel removes ALL subscribers from a channel after a LISTEN
// failure and notifies every affected connection (except the triggering one,
// which is notified by the caller via the returned error).
//
// Between unlocking channelMu (after creating the channel entry) and
// l.Subscribe completing, other goroutines may have subscribed to the same
// channel. Because they saw the channel already existed they skipped LISTEN
// and returned success. Those connections are now orphaned; this helper
// cleans them up. Clients must treat subscription.error as authoritative:
// discard prior events for that workflow and re-subscribe with back-off or
// fall back to REST polling.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Connection, channel string) {
	// Collect all affected connection IDs and delete the channel entirely.
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[channel]))
	for connID := range m.channels[channel] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	// Look up connection pointers (without holding channelMu).
	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	// Notify each affected connection that the subscription failed.
	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes a connection from a channel and stops LISTEN if last
// subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			// Last subscriber left; stop LISTEN. The goroutine re-checks
			// m.channels before issuing UNLISTEN to prevent a race where a
			// rapid unsubscribe/resubscribe cycle would drop the LISTEN.
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()

	c.subMu.Lock()
	delete(c.subscriptions, channel)
	c.subMu.Unlock()
}

// handleBackfill replays stored events after a cursor, then subscribes the
// connection to the cursor's workflow so it transitions seamlessly to live
// mode.
func (m *ConnectionManager) handleBackfill(ctx context.Context, c *Connection, sinceID int) {
	if m.backfillQuerier == nil {
		return
	}

	result, err := m.backfillQuerier.BackfillSince(ctx, sinceID, backfillLimit)
	if err != nil {
		if errors.Is(err, ErrCursorExpired) {
			m.sendJSON(c, map[string]string{
				"type":    "backfill_expired",
				"message": "cursor no longer in store; clear it and reload",
			})
			return
		}
		slog.Error("Backfill query failed", "since_id", sinceID, "error", err)
		return
	}

	// Subscribe BEFORE replaying so no event published during the replay
	// can be missed; duplicates are possible and clients dedupe by id.
	if err := m.subscribe(c, WorkflowChannel(result.WorkflowID)); err != nil {
		return
	}

	sent := 0
	for _, env := range result.Events {
		payload, err := json.Marshal(env)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send backfill event",
				"connection_id", c.ID, "error", err)
			return
		}
		sent++
	}

	m.sendJSON(c, map[string]interface{}{
		"type":  "backfill_complete",
		"count": sent,
	})
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	// Remove from all channel subscriptions
	c.subMu.RLock()
	subs := make([]string, 0, len(c.subscriptions))
	for ch := range c.subscriptions {
		subs = append(subs, ch)
	}
	c.subMu.RUnlock()
	for _, ch := range subs {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
