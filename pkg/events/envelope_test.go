package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/event"
)

func TestTruncateIfNeeded_SmallPayloadPassesThrough(t *testing.T) {
	payload := `{"type":"event","workflow_id":"wf-1","event_type":"task_started"}`
	got, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestTruncateIfNeeded_OversizedPayloadKeepsRouting(t *testing.T) {
	env := &Envelope{
		Type:       "event",
		ID:         42,
		WorkflowID: "wf-1",
		Sequence:   7,
		Agent:      "developer",
		EventType:  EventTypeAgentOutput,
		Level:      "trace",
		Message:    strings.Repeat("x", 9000),
		CreatedAt:  time.Now(),
	}
	payload, err := json.Marshal(env)
	require.NoError(t, err)
	require.Greater(t, len(payload), 7900)

	got, err := truncateIfNeeded(string(payload))
	require.NoError(t, err)
	require.Less(t, len(got), 7900)

	var truncated map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &truncated))
	assert.Equal(t, true, truncated["truncated"])
	assert.Equal(t, "wf-1", truncated["workflow_id"])
	assert.Equal(t, EventTypeAgentOutput, truncated["event_type"])
	assert.EqualValues(t, 42, truncated["id"])
	assert.EqualValues(t, 7, truncated["sequence"])
	assert.NotContains(t, truncated, "message")
}

func TestTruncateIfNeeded_TransientOversizedOmitsCursorFields(t *testing.T) {
	// Transient events carry no ID; the truncation envelope must not invent
	// a zero cursor.
	env := &Envelope{
		Type:       "event",
		WorkflowID: "wf-1",
		EventType:  EventTypeClaudeThinking,
		Level:      "trace",
		Message:    strings.Repeat("y", 9000),
		CreatedAt:  time.Now(),
	}
	payload, err := json.Marshal(env)
	require.NoError(t, err)

	got, err := truncateIfNeeded(string(payload))
	require.NoError(t, err)

	var truncated map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &truncated))
	assert.NotContains(t, truncated, "id")
	assert.NotContains(t, truncated, "sequence")
}

func TestEnvelopeFromEnt(t *testing.T) {
	toolName := "bash"
	row := &ent.Event{
		ID:         11,
		WorkflowID: "wf-2",
		Sequence:   3,
		Agent:      event.AgentReviewer,
		EventType:  EventTypeClaudeToolCall,
		Level:      event.LevelTrace,
		Message:    "running tests",
		ToolName:   &toolName,
		IsError:    false,
		CreatedAt:  time.Now(),
	}

	env := EnvelopeFromEnt(row)
	assert.Equal(t, "event", env.Type)
	assert.Equal(t, 11, env.ID)
	assert.Equal(t, "wf-2", env.WorkflowID)
	assert.Equal(t, 3, env.Sequence)
	assert.Equal(t, "reviewer", env.Agent)
	assert.Equal(t, "bash", env.ToolName)

	// Nil optional columns map onto empty strings.
	bare := EnvelopeFromEnt(&ent.Event{ID: 12, WorkflowID: "wf-2", EventType: EventTypeTaskStarted})
	assert.Empty(t, bare.ToolName)
	assert.Empty(t, bare.TraceID)
}
