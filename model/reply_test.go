package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReply_ToolCallsWin(t *testing.T) {
	calls := []ToolCall{NewToolCall("t1", "echo", "{}")}

	reply := NewReply("some text too", calls)
	tcr, ok := reply.(ToolCallReply)
	require.True(t, ok)
	assert.Equal(t, "some text too", tcr.Text)
	assert.Equal(t, calls, tcr.Calls)
}

func TestNewReply_TextOnly(t *testing.T) {
	reply := NewReply("final answer", nil)
	fr, ok := reply.(FinalReply)
	require.True(t, ok)
	assert.Equal(t, "final answer", fr.Text)
}

func TestNewReply_Empty(t *testing.T) {
	reply := NewReply("", nil)
	_, ok := reply.(EmptyReply)
	assert.True(t, ok)

	// An empty calls slice is the same as no calls.
	reply = NewReply("", []ToolCall{})
	_, ok = reply.(EmptyReply)
	assert.True(t, ok)
}

func TestToolCallReplyMessage(t *testing.T) {
	calls := []ToolCall{NewToolCall("t1", "echo", "{}")}
	msg := ToolCallReply{Text: "hold on", Calls: calls}.Message()

	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, "hold on", msg.Content)
	assert.Equal(t, calls, msg.ToolCalls)
	assert.Empty(t, msg.ToolCallID)
}
