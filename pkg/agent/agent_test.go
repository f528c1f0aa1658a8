package agent

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/masking"
	"github.com/existential-birds/amelia-sub003/pkg/models"
)

// scriptedDriver replays a fixed message sequence.
type scriptedDriver struct {
	script []driver.Message
	runErr error
}

func (d *scriptedDriver) Run(_ context.Context, _ driver.Request) (<-chan driver.Message, error) {
	if d.runErr != nil {
		return nil, d.runErr
	}
	ch := make(chan driver.Message, len(d.script))
	for _, msg := range d.script {
		ch <- msg
	}
	close(ch)
	return ch, nil
}

// capturingPublisher records every published event.
type capturingPublisher struct {
	mu     sync.Mutex
	events []models.CreateEventRequest
}

func (p *capturingPublisher) Publish(_ context.Context, req models.CreateEventRequest) (*events.Envelope, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, req)
	return &events.Envelope{Type: "event", WorkflowID: req.WorkflowID, EventType: req.EventType}, nil
}

func (p *capturingPublisher) byType(eventType string) []models.CreateEventRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []models.CreateEventRequest
	for _, e := range p.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

func testDeps(pub *capturingPublisher) *Deps {
	return &Deps{
		Publisher:         pub,
		Masker:            masking.NewService(config.MaskingConfig{Enabled: false}),
		StreamToolResults: true,
	}
}

func TestArchitect_Execute(t *testing.T) {
	planMarkdown := "# Add the blue button\n\nSteps...\n\n## Key Files\n- `web/button.tsx`\n- web/theme.css\n"
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageThinking, Content: "reading the code"},
		{Type: driver.MessageResult, SessionID: "sess-arch", FinalText: planMarkdown},
	}}
	pub := &capturingPublisher{}
	planDir := t.TempDir()

	arch := NewArchitect(testDeps(pub))
	plan, err := arch.Execute(t.Context(), Invocation{
		WorkflowID: "wf-1",
		Driver:     drv,
		WorkingDir: "/w",
	}, &models.Issue{ID: "TASK-1", Title: "Add button"}, planDir)
	require.NoError(t, err)

	assert.Equal(t, "Add the blue button", plan.Goal)
	assert.Equal(t, []string{"web/button.tsx", "web/theme.css"}, plan.KeyFiles)
	assert.Equal(t, "sess-arch", plan.SessionID)

	content, err := os.ReadFile(plan.MarkdownPath)
	require.NoError(t, err)
	assert.Equal(t, planMarkdown, string(content))
	assert.Equal(t, planDir, filepath.Dir(plan.MarkdownPath))

	require.Len(t, pub.byType(events.EventTypeStageStarted), 1)
	completed := pub.byType(events.EventTypeStageCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, plan.MarkdownPath, completed[0].Data["plan_path"])
	require.Len(t, pub.byType(events.EventTypeClaudeThinking), 1)
}

func TestArchitect_Execute_DriverError(t *testing.T) {
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageError, Reason: "model overloaded"},
	}}
	pub := &capturingPublisher{}

	arch := NewArchitect(testDeps(pub))
	_, err := arch.Execute(t.Context(), Invocation{WorkflowID: "wf-1", Driver: drv},
		&models.Issue{ID: "TASK-1", Title: "t"}, t.TempDir())
	require.Error(t, err)

	errs := pub.byType(events.EventTypeSystemError)
	require.Len(t, errs, 1)
	assert.True(t, errs[0].IsError)
	assert.Contains(t, errs[0].Message, "model overloaded")
	assert.Empty(t, pub.byType(events.EventTypeStageCompleted))
}

func TestArchitect_Execute_EmptyPlan(t *testing.T) {
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageResult, FinalText: "   "},
	}}
	pub := &capturingPublisher{}

	arch := NewArchitect(testDeps(pub))
	_, err := arch.Execute(t.Context(), Invocation{WorkflowID: "wf-1", Driver: drv},
		&models.Issue{ID: "TASK-1", Title: "t"}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty plan")
}

func TestDeveloper_Execute_StreamsTraceEvents(t *testing.T) {
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageToolCall, ID: "toolu_1", ToolName: "Edit", ToolInput: map[string]interface{}{"file_path": "a.go"}},
		{Type: driver.MessageToolResult, CallID: "toolu_1", Output: "ok"},
		{Type: driver.MessageOutput, Content: "done editing"},
		{Type: driver.MessageResult, SessionID: "sess-dev", FinalText: "Updated a.go"},
	}}
	pub := &capturingPublisher{}

	dev := NewDeveloper(testDeps(pub))
	result, err := dev.Execute(t.Context(), Invocation{WorkflowID: "wf-1", Driver: drv}, "the plan", nil)
	require.NoError(t, err)
	assert.Equal(t, "Updated a.go", result.Summary)
	assert.Equal(t, "sess-dev", result.SessionID)

	calls := pub.byType(events.EventTypeClaudeToolCall)
	require.Len(t, calls, 1)
	assert.Equal(t, "Edit", calls[0].ToolName)
	assert.Equal(t, "toolu_1", calls[0].CorrelationID)

	results := pub.byType(events.EventTypeClaudeToolResult)
	require.Len(t, results, 1)
	assert.Equal(t, "toolu_1", results[0].CorrelationID)

	require.Len(t, pub.byType(events.EventTypeAgentOutput), 1)
}

func TestDeveloper_Execute_ToolResultsSuppressed(t *testing.T) {
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageToolResult, CallID: "toolu_1", Output: "secret dump"},
		{Type: driver.MessageResult, FinalText: "done"},
	}}
	pub := &capturingPublisher{}
	deps := testDeps(pub)
	deps.StreamToolResults = false

	_, err := NewDeveloper(deps).Execute(t.Context(), Invocation{WorkflowID: "wf-1", Driver: drv}, "plan", nil)
	require.NoError(t, err)
	assert.Empty(t, pub.byType(events.EventTypeClaudeToolResult))
}

func TestReviewer_Execute_Approved(t *testing.T) {
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageResult, SessionID: "sess-rev", FinalText: `{"approved": true}`},
	}}
	pub := &capturingPublisher{}

	verdict, err := NewReviewer(testDeps(pub)).Execute(t.Context(), Invocation{WorkflowID: "wf-1", Driver: drv}, "plan")
	require.NoError(t, err)
	assert.True(t, verdict.Approved)

	completed := pub.byType(events.EventTypeStageCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, true, completed[0].Data["approved"])
}

func TestReviewer_Execute_Rejected(t *testing.T) {
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageResult, FinalText: `{"approved": false, "feedback": "missing tests"}`},
	}}
	pub := &capturingPublisher{}

	verdict, err := NewReviewer(testDeps(pub)).Execute(t.Context(), Invocation{WorkflowID: "wf-1", Driver: drv}, "plan")
	require.NoError(t, err)
	assert.False(t, verdict.Approved)
	assert.Equal(t, "missing tests", verdict.Feedback)

	// The revision event itself belongs to the orchestrator; the agent
	// only reports the stage outcome.
	assert.Empty(t, pub.byType(events.EventTypeRevisionRequested))
	completed := pub.byType(events.EventTypeStageCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, false, completed[0].Data["approved"])
}

func TestReviewer_Execute_MalformedVerdict(t *testing.T) {
	drv := &scriptedDriver{script: []driver.Message{
		{Type: driver.MessageResult, FinalText: "Looks good to me!"},
	}}
	pub := &capturingPublisher{}

	_, err := NewReviewer(testDeps(pub)).Execute(t.Context(), Invocation{WorkflowID: "wf-1", Driver: drv}, "plan")
	require.Error(t, err)
	require.Len(t, pub.byType(events.EventTypeSystemError), 1)
}
