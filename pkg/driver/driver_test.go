package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsume_ReturnsResult(t *testing.T) {
	ch := make(chan Message, 4)
	ch <- Message{Type: MessageThinking, Content: "considering"}
	ch <- Message{Type: MessageOutput, Content: "partial"}
	ch <- Message{Type: MessageResult, SessionID: "sess-1", FinalText: "done"}
	close(ch)

	var observed []MessageType
	terminal, err := Consume(context.Background(), ch, func(m Message) error {
		observed = append(observed, m.Type)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, MessageResult, terminal.Type)
	assert.Equal(t, "sess-1", terminal.SessionID)
	assert.Equal(t, "done", terminal.FinalText)
	assert.Equal(t, []MessageType{MessageThinking, MessageOutput}, observed)
}

func TestConsume_TerminalError(t *testing.T) {
	ch := make(chan Message, 2)
	ch <- Message{Type: MessageError, Reason: "model overloaded"}
	close(ch)

	terminal, err := Consume(context.Background(), ch, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
	assert.Equal(t, MessageError, terminal.Type)
}

func TestConsume_UnterminatedStream(t *testing.T) {
	ch := make(chan Message, 2)
	ch <- Message{Type: MessageOutput, Content: "half an answer"}
	close(ch)

	_, err := Consume(context.Background(), ch, nil)
	require.ErrorIs(t, err, ErrUnterminated)
}

func TestConsume_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan Message)
	_, err := Consume(ctx, ch, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestConsume_ObserveErrorStopsDraining(t *testing.T) {
	ch := make(chan Message, 3)
	ch <- Message{Type: MessageOutput, Content: "x"}
	ch <- Message{Type: MessageResult}
	close(ch)

	_, err := Consume(context.Background(), ch, func(Message) error {
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestMessageType_Terminal(t *testing.T) {
	assert.True(t, MessageResult.Terminal())
	assert.True(t, MessageError.Terminal())
	assert.False(t, MessageThinking.Terminal())
	assert.False(t, MessageToolCall.Terminal())
	assert.False(t, MessageToolResult.Terminal())
	assert.False(t, MessageOutput.Terminal())
}
