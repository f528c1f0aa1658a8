package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/pkg/models"
	testdb "github.com/existential-birds/amelia-sub003/test/database"
)

// streamFixture wires the full delivery path: publisher → pg_notify →
// NotifyListener → ConnectionManager → WebSocket client.
type streamFixture struct {
	pub        *EventPublisher
	workflowID string
	conn       *websocket.Conn
}

func newStreamFixture(t *testing.T) *streamFixture {
	t.Helper()

	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	manager := NewConnectionManager(NewEventServiceAdapter(client.Client),
		5*time.Second, 30*time.Second, 90*time.Second)

	listener := NewNotifyListener(shared.ConnString(), manager)
	require.NoError(t, listener.Start(t.Context()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		listener.Stop(ctx)
	})
	manager.SetListener(listener)
	require.NoError(t, manager.ListenGlobals(t.Context()))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn, nil)
	}))
	t.Cleanup(ts.Close)

	wfID := createTestWorkflow(t, client, "/repos/stream")

	ctx, cancel := context.WithTimeout(t.Context(), 15*time.Second)
	t.Cleanup(cancel)
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	f := &streamFixture{
		pub:        NewEventPublisher(client.DB(), nil),
		workflowID: wfID,
		conn:       conn,
	}

	established := f.readMsg(t)
	require.Equal(t, "connection.established", established["type"])
	return f
}

func (f *streamFixture) readMsg(t *testing.T) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), 15*time.Second)
	defer cancel()
	_, data, err := f.conn.Read(ctx)
	require.NoError(t, err)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// readEvent skips ping frames until an event (or control) message arrives.
func (f *streamFixture) readEvent(t *testing.T) map[string]interface{} {
	t.Helper()
	for {
		msg := f.readMsg(t)
		if msg["type"] != "ping" {
			return msg
		}
	}
}

func (f *streamFixture) send(t *testing.T, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.conn.Write(ctx, websocket.MessageText, data))
}

func TestStream_SubscribedConnectionReceivesPublishedEvent(t *testing.T) {
	f := newStreamFixture(t)

	f.send(t, ClientMessage{Action: "subscribe", WorkflowID: f.workflowID})
	confirmed := f.readEvent(t)
	require.Equal(t, "subscription.confirmed", confirmed["type"])

	_, err := f.pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: f.workflowID,
		EventType:  EventTypeWorkflowStarted,
		Message:    "workflow started",
	})
	require.NoError(t, err)

	msg := f.readEvent(t)
	assert.Equal(t, "event", msg["type"])
	assert.Equal(t, f.workflowID, msg["workflow_id"])
	assert.Equal(t, EventTypeWorkflowStarted, msg["event_type"])
	assert.EqualValues(t, 1, msg["sequence"])
}

func TestStream_WildcardReceivesGlobalCopy(t *testing.T) {
	f := newStreamFixture(t)

	f.send(t, ClientMessage{Action: "subscribe_all"})
	confirmed := f.readEvent(t)
	require.Equal(t, "subscription.confirmed", confirmed["type"])

	_, err := f.pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: f.workflowID,
		EventType:  EventTypeWorkflowCreated,
		Message:    "workflow created",
	})
	require.NoError(t, err)

	msg := f.readEvent(t)
	assert.Equal(t, "event", msg["type"])
	assert.Equal(t, EventTypeWorkflowCreated, msg["event_type"])
}

func TestStream_TraceEventsFanOutToAllConnections(t *testing.T) {
	f := newStreamFixture(t)

	// No subscription at all: trace payloads reach every connection.
	_, err := f.pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: f.workflowID,
		EventType:  EventTypeClaudeThinking,
		Message:    "reasoning",
	})
	require.NoError(t, err)

	msg := f.readEvent(t)
	assert.Equal(t, "event", msg["type"])
	assert.Equal(t, EventTypeClaudeThinking, msg["event_type"])
	assert.Equal(t, "trace", msg["level"])
}

func TestStream_CatchupReplaysMissedEvents(t *testing.T) {
	f := newStreamFixture(t)

	first, err := f.pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: f.workflowID,
		EventType:  EventTypeWorkflowCreated,
		Message:    "created",
	})
	require.NoError(t, err)
	second, err := f.pub.Publish(t.Context(), models.CreateEventRequest{
		WorkflowID: f.workflowID,
		EventType:  EventTypeWorkflowStarted,
		Message:    "started",
	})
	require.NoError(t, err)

	f.send(t, ClientMessage{Action: "catchup", SinceID: &first.ID})

	replayed := f.readEvent(t)
	assert.Equal(t, "event", replayed["type"])
	assert.EqualValues(t, second.ID, replayed["id"])

	complete := f.readEvent(t)
	assert.Equal(t, "backfill_complete", complete["type"])
	assert.EqualValues(t, 1, complete["count"])
}

func TestStream_ExpiredCursorReportsBackfillExpired(t *testing.T) {
	f := newStreamFixture(t)

	missing := 999999
	f.send(t, ClientMessage{Action: "catchup", SinceID: &missing})

	msg := f.readEvent(t)
	assert.Equal(t, "backfill_expired", msg["type"])
}
