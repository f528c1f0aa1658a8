package claudecli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existential-birds/amelia-sub003/pkg/driver"
)

func parseLine(t *testing.T, line string) []driver.Message {
	t.Helper()
	var ev streamEvent
	require.NoError(t, json.Unmarshal([]byte(line), &ev))
	return ev.toMessages()
}

func TestToMessages_AssistantBlocks(t *testing.T) {
	line := `{"type":"assistant","message":{"content":[
		{"type":"thinking","thinking":"plan the edit"},
		{"type":"text","text":"I'll update the handler."},
		{"type":"tool_use","id":"toolu_1","name":"Edit","input":{"file_path":"main.go"}}
	]}}`

	msgs := parseLine(t, line)
	require.Len(t, msgs, 3)

	assert.Equal(t, driver.MessageThinking, msgs[0].Type)
	assert.Equal(t, "plan the edit", msgs[0].Content)

	assert.Equal(t, driver.MessageOutput, msgs[1].Type)
	assert.Equal(t, "I'll update the handler.", msgs[1].Content)

	assert.Equal(t, driver.MessageToolCall, msgs[2].Type)
	assert.Equal(t, "toolu_1", msgs[2].ID)
	assert.Equal(t, "Edit", msgs[2].ToolName)
	assert.Equal(t, "main.go", msgs[2].ToolInput["file_path"])
}

func TestToMessages_ToolResult(t *testing.T) {
	line := `{"type":"user","message":{"content":[
		{"type":"tool_result","tool_use_id":"toolu_1","content":"file updated","is_error":false}
	]}}`

	msgs := parseLine(t, line)
	require.Len(t, msgs, 1)
	assert.Equal(t, driver.MessageToolResult, msgs[0].Type)
	assert.Equal(t, "toolu_1", msgs[0].CallID)
	assert.Equal(t, "file updated", msgs[0].Output)
	assert.False(t, msgs[0].IsError)
}

func TestToMessages_ToolResultBlockArray(t *testing.T) {
	line := `{"type":"user","message":{"content":[
		{"type":"tool_result","tool_use_id":"toolu_2","content":[
			{"type":"text","text":"line one\n"},
			{"type":"text","text":"line two"}
		],"is_error":true}
	]}}`

	msgs := parseLine(t, line)
	require.Len(t, msgs, 1)
	assert.Equal(t, "line one\nline two", msgs[0].Output)
	assert.True(t, msgs[0].IsError)
}

func TestToMessages_Result(t *testing.T) {
	line := `{"type":"result","subtype":"success","session_id":"sess-42",
		"result":"All changes applied.","usage":{"input_tokens":1200,"output_tokens":340}}`

	msgs := parseLine(t, line)
	require.Len(t, msgs, 1)
	assert.Equal(t, driver.MessageResult, msgs[0].Type)
	assert.Equal(t, "sess-42", msgs[0].SessionID)
	assert.Equal(t, "All changes applied.", msgs[0].FinalText)
	require.NotNil(t, msgs[0].Usage)
	assert.Equal(t, 1200, msgs[0].Usage.InputTokens)
	assert.Equal(t, 340, msgs[0].Usage.OutputTokens)
}

func TestToMessages_ErrorResult(t *testing.T) {
	line := `{"type":"result","subtype":"error_max_turns","is_error":true,"result":"max turns exceeded"}`

	msgs := parseLine(t, line)
	require.Len(t, msgs, 1)
	assert.Equal(t, driver.MessageError, msgs[0].Type)
	assert.Equal(t, "max turns exceeded", msgs[0].Reason)
}

func TestToMessages_IgnoresSystemInit(t *testing.T) {
	line := `{"type":"system","subtype":"init","session_id":"sess-42"}`
	assert.Empty(t, parseLine(t, line))
}

func TestBuildArgs(t *testing.T) {
	args := buildArgs(driver.Request{
		Prompt:       "fix the bug",
		SystemPrompt: "you are the developer",
		PriorSession: "sess-7",
		Model:        "claude-sonnet-4-5",
		Options: map[string]string{
			"skip_permissions": "true",
			"allowed_tools":    "Edit, Bash",
		},
	})

	assert.Contains(t, args, "--print")
	assert.Contains(t, args, "--resume")
	assert.Contains(t, args, "sess-7")
	assert.Contains(t, args, "--model")
	assert.Contains(t, args, "claude-sonnet-4-5")
	assert.Contains(t, args, "--append-system-prompt")
	assert.Contains(t, args, "--dangerously-skip-permissions")
	assert.Contains(t, args, "Edit")
	assert.Contains(t, args, "Bash")
	// Prompt is last, after the -- separator
	require.GreaterOrEqual(t, len(args), 2)
	assert.Equal(t, "--", args[len(args)-2])
	assert.Equal(t, "fix the bug", args[len(args)-1])
}

func TestDecodeToolResultContent(t *testing.T) {
	assert.Equal(t, "", decodeToolResultContent(nil))
	assert.Equal(t, "plain", decodeToolResultContent(json.RawMessage(`"plain"`)))
	assert.Equal(t, "ab", decodeToolResultContent(json.RawMessage(`[{"type":"text","text":"a"},{"type":"text","text":"b"}]`)))
}
