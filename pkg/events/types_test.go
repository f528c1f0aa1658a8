package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/existential-birds/amelia-sub003/ent/event"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, event.LevelInfo, LevelFor(EventTypeWorkflowCreated))
	assert.Equal(t, event.LevelInfo, LevelFor(EventTypeApprovalRequired))
	assert.Equal(t, event.LevelInfo, LevelFor(EventTypeRevisionRequested))
	assert.Equal(t, event.LevelDebug, LevelFor(EventTypeTaskStarted))
	assert.Equal(t, event.LevelDebug, LevelFor(EventTypeSystemError))
	assert.Equal(t, event.LevelTrace, LevelFor(EventTypeClaudeThinking))
	assert.Equal(t, event.LevelTrace, LevelFor(EventTypeClaudeToolResult))

	// Unknown types are persisted but stay off the lifecycle surfaces.
	assert.Equal(t, event.LevelDebug, LevelFor("something_new"))
}

func TestWorkflowChannel(t *testing.T) {
	assert.Equal(t, "workflow:abc-123", WorkflowChannel("abc-123"))
}
