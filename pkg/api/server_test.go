package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/pkg/agent"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/masking"
	"github.com/existential-birds/amelia-sub003/pkg/orchestrator"
	"github.com/existential-birds/amelia-sub003/pkg/services"
	"github.com/existential-birds/amelia-sub003/pkg/tracker"
	testdb "github.com/existential-birds/amelia-sub003/test/database"
)

const testPlan = "# API goal\n\n1. Wire the endpoint.\n\n## Key Files\n- handler.go\n"

// queueDriver replays scripted message sequences in invocation order.
type queueDriver struct {
	mu      sync.Mutex
	scripts [][]driver.Message
}

func (d *queueDriver) push(msgs ...driver.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scripts = append(d.scripts, msgs)
}

func (d *queueDriver) Run(_ context.Context, _ driver.Request) (<-chan driver.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.scripts) == 0 {
		return nil, errors.New("no scripted response left")
	}
	script := d.scripts[0]
	d.scripts = d.scripts[1:]

	ch := make(chan driver.Message, len(script))
	for _, msg := range script {
		ch <- msg
	}
	close(ch)
	return ch, nil
}

func resultMsg(text string) driver.Message {
	return driver.Message{Type: driver.MessageResult, FinalText: text, SessionID: "sess-1"}
}

type apiFixture struct {
	ts  *httptest.Server
	drv *queueDriver
}

func newAPIFixture(t *testing.T, cfg *config.OrchestratorConfig) *apiFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	drv := &queueDriver{}

	profiles := config.NewProfileRegistry(map[string]*config.ProfileConfig{
		"local": {
			Tracker:       config.TrackerNoop,
			PlanOutputDir: t.TempDir(),
			Default:       config.AgentConfig{Driver: config.DriverClaudeCLI},
		},
	})

	publisher := events.NewEventPublisher(client.DB(), func() bool { return true })
	workflows := services.NewWorkflowService(client.Client)

	orch := orchestrator.NewService(orchestrator.Deps{
		Config:      cfg,
		Profiles:    profiles,
		DefaultPro:  "local",
		Workflows:   workflows,
		Checkpoints: services.NewCheckpointService(client.Client),
		Prompts:     services.NewPromptService(client.Client),
		Publisher:   publisher,
		Agents: &agent.Deps{
			Publisher:         publisher,
			Masker:            masking.NewService(config.MaskingConfig{Enabled: false}),
			Tokens:            services.NewTokenService(client.Client),
			StreamToolResults: true,
		},
		Drivers:  func(config.DriverType) (driver.Driver, error) { return drv, nil },
		Trackers: func(tt config.TrackerType) (tracker.Tracker, error) { return tracker.New(tt) },
		PodID:    "test-pod",
	})
	require.NoError(t, orch.Start(t.Context()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		orch.Shutdown(ctx)
	})

	// No NotifyListener here: live delivery is covered by the events
	// package tests, the API tests only exercise upgrade and backfill.
	conns := events.NewConnectionManager(
		events.NewEventServiceAdapter(client.Client),
		5*time.Second, 30*time.Second, 90*time.Second)

	srv := NewServer(orch, workflows,
		services.NewEventService(client.Client),
		services.NewTokenService(client.Client),
		conns, client, &config.ServerConfig{})

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return &apiFixture{ts: ts, drv: drv}
}

func (f *apiFixture) postJSON(t *testing.T, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(f.ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func (f *apiFixture) getJSON(t *testing.T, path string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(f.ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (f *apiFixture) createWorkflow(t *testing.T, worktree string) string {
	t.Helper()
	resp, data := f.postJSON(t, "/api/workflows", map[string]string{
		"issue_id":      "TASK-1",
		"worktree_path": worktree,
		"task_title":    "Add feature",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", data)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(data, &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func (f *apiFixture) waitForStatus(t *testing.T, workflowID, want string) map[string]interface{} {
	t.Helper()
	var detail map[string]interface{}
	require.Eventually(t, func() bool {
		resp := f.getJSON(t, "/api/workflows/"+workflowID, &detail)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return detail["status"] == want
	}, 15*time.Second, 20*time.Millisecond, "workflow never reached %s", want)
	return detail
}

func TestAPI_CreateApproveComplete(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))
	f.drv.push(resultMsg("implemented"))
	f.drv.push(resultMsg(`{"approved": true}`))

	id := f.createWorkflow(t, "/repos/api-happy")
	detail := f.waitForStatus(t, id, "blocked")

	plan, ok := detail["plan"].(map[string]interface{})
	require.True(t, ok, "detail missing plan: %v", detail)
	assert.Equal(t, "API goal", plan["goal"])
	assert.Contains(t, detail, "token_usage")
	assert.Contains(t, detail, "recent_events")

	resp, data := f.postJSON(t, "/api/workflows/"+id+"/approve", map[string]string{})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", data)

	f.waitForStatus(t, id, "completed")

	// Terminal actions stay idempotent over HTTP.
	resp, _ = f.postJSON(t, "/api/workflows/"+id+"/cancel", map[string]string{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_RejectRecordsFeedback(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	id := f.createWorkflow(t, "/repos/api-reject")
	f.waitForStatus(t, id, "blocked")

	resp, data := f.postJSON(t, "/api/workflows/"+id+"/reject", map[string]string{
		"feedback": "wrong direction",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", data)

	detail := f.waitForStatus(t, id, "failed")
	assert.Equal(t, "wrong direction", detail["failure_reason"])
}

func TestAPI_ListFiltersByStatus(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	id := f.createWorkflow(t, "/repos/api-list")
	f.waitForStatus(t, id, "blocked")

	var list struct {
		Workflows  []map[string]interface{} `json:"workflows"`
		TotalCount int                      `json:"total_count"`
	}
	resp := f.getJSON(t, "/api/workflows?status=blocked,in_progress", &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Workflows, 1)
	assert.Equal(t, id, list.Workflows[0]["id"])

	resp = f.getJSON(t, "/api/workflows?status=completed", &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, list.TotalCount)
}

func TestAPI_ListEvents(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	id := f.createWorkflow(t, "/repos/api-events")
	f.waitForStatus(t, id, "blocked")

	var body struct {
		Events []map[string]interface{} `json:"events"`
	}
	resp := f.getJSON(t, "/api/workflows/"+id+"/events?event_type=approval_required", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Events, 1)
	assert.Equal(t, "approval_required", body.Events[0]["event_type"])
}

func TestAPI_ValidationAndErrorMapping(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())

	// Missing task_title with a description set.
	resp, data := f.postJSON(t, "/api/workflows", map[string]string{
		"issue_id":         "TASK-1",
		"worktree_path":    "/repos/x",
		"task_description": "details without a title",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody struct {
		Code    string                 `json:"code"`
		Details map[string]interface{} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(data, &errBody))
	assert.Equal(t, "invalid_request", errBody.Code)
	assert.Equal(t, "task_title", errBody.Details["field"])

	// Unknown workflow.
	resp = f.getJSON(t, "/api/workflows/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Approve on a workflow that is not blocked.
	f.drv.push(resultMsg(testPlan))
	id := f.createWorkflow(t, "/repos/api-conflict")
	f.waitForStatus(t, id, "blocked")

	// Second workflow on the same worktree.
	resp, data = f.postJSON(t, "/api/workflows", map[string]string{
		"issue_id":      "TASK-2",
		"worktree_path": "/repos/api-conflict",
		"task_title":    "Another",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode, "body: %s", data)
	require.NoError(t, json.Unmarshal(data, &errBody))
	assert.Equal(t, "workflow_conflict", errBody.Code)
}

func TestAPI_ConcurrentCreateSingleWinner(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	// Two simultaneous creates for the same worktree: exactly one may win,
	// even though both rows would start out pending.
	type outcome struct {
		status int
		body   []byte
	}
	results := make(chan outcome, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resp, data := f.postJSON(t, "/api/workflows", map[string]string{
				"issue_id":      fmt.Sprintf("TASK-%d", n),
				"worktree_path": "/repos/api-race",
				"task_title":    "Racing task",
			})
			results <- outcome{status: resp.StatusCode, body: data}
		}(i)
	}
	wg.Wait()
	close(results)

	statuses := make([]int, 0, 2)
	for r := range results {
		statuses = append(statuses, r.status)
		if r.status == http.StatusConflict {
			var errBody struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(r.body, &errBody))
			assert.Equal(t, "workflow_conflict", errBody.Code)
		}
	}
	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, statuses)
}

func TestAPI_RateLimitReturns429(t *testing.T) {
	cfg := config.DefaultOrchestratorConfig()
	cfg.MaxConcurrent = 1
	f := newAPIFixture(t, cfg)
	f.drv.push(resultMsg(testPlan))

	id := f.createWorkflow(t, "/repos/api-cap")
	f.waitForStatus(t, id, "blocked")

	resp, data := f.postJSON(t, "/api/workflows", map[string]string{
		"issue_id":      "TASK-2",
		"worktree_path": "/repos/api-cap-2",
		"task_title":    "Over the cap",
	})
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "body: %s", data)
	var errBody struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(data, &errBody))
	assert.Equal(t, "rate_limit", errBody.Code)
}

func TestAPI_Healthz(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())

	var body map[string]interface{}
	resp := f.getJSON(t, "/healthz", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["database"])
	assert.Contains(t, body, "active_tasks")
	assert.Contains(t, body, "active_workflows")
	assert.Contains(t, body, "ws_connections")
}

func TestAPI_WebSocketBackfill(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())
	f.drv.push(resultMsg(testPlan))

	id := f.createWorkflow(t, "/repos/api-ws")
	f.waitForStatus(t, id, "blocked")

	// Use the first stored event as the reconnect cursor; the gate flow has
	// published several more since.
	var body struct {
		Events []struct {
			ID int `json:"id"`
		} `json:"events"`
	}
	resp := f.getJSON(t, "/api/workflows/"+id+"/events", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body.Events)
	cursor := body.Events[0].ID

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(f.ts.URL, "http") + fmt.Sprintf("/ws/events?since=%d", cursor)
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	readMsg := func() map[string]interface{} {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}

	established := readMsg()
	assert.Equal(t, "connection.established", established["type"])

	replayed := 0
	for {
		msg := readMsg()
		if msg["type"] == "backfill_complete" {
			assert.EqualValues(t, replayed, msg["count"])
			break
		}
		require.Equal(t, "event", msg["type"])
		assert.Equal(t, id, msg["workflow_id"])
		replayed++
	}
	assert.Greater(t, replayed, 0)
}

func TestAPI_WebSocketSubscribeConfirmed(t *testing.T) {
	f := newAPIFixture(t, config.DefaultOrchestratorConfig())

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(f.ts.URL, "http") + "/ws/events"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var established map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &established))
	require.Equal(t, "connection.established", established["type"])

	sub, err := json.Marshal(map[string]string{
		"action":      "subscribe",
		"workflow_id": uuid.New().String(),
	})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, sub))

	_, data, err = conn.Read(ctx)
	require.NoError(t, err)
	var confirmed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &confirmed))
	assert.Equal(t, "subscription.confirmed", confirmed["type"])
}
