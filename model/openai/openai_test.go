package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponderai/agentic/model"
)

// fakeEndpoint serves a canned chat-completions response and captures the
// request body for assertions.
func fakeEndpoint(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newTestCaller(baseURL string) *Caller {
	return New(func(o *Options) {
		o.BaseURL = baseURL
		o.APIKey = "test-key"
		o.Model = "test-model"
	})
}

func TestCall_FinalText(t *testing.T) {
	srv, captured := fakeEndpoint(t, http.StatusOK, `{
		"id": "cmpl-1",
		"choices": [{"index": 0, "finish_reason": "stop",
			"message": {"role": "assistant", "content": "There are two files."}}]
	}`)

	caller := newTestCaller(srv.URL)
	reply, err := caller.Call(context.Background(), []model.Message{
		model.SystemMessage("You are a test agent."),
		model.UserMessage("list files"),
	}, nil)
	require.NoError(t, err)

	final, ok := reply.(model.FinalReply)
	require.True(t, ok)
	assert.Equal(t, "There are two files.", final.Text)

	req := *captured
	assert.Equal(t, "test-model", req["model"])
	msgs := req["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	// No tools offered: the field must be absent entirely.
	assert.NotContains(t, req, "tools")
}

func TestCall_ToolCalls(t *testing.T) {
	srv, captured := fakeEndpoint(t, http.StatusOK, `{
		"id": "cmpl-2",
		"choices": [{"index": 0, "finish_reason": "tool_calls",
			"message": {"role": "assistant", "content": "",
				"tool_calls": [{"id": "t1", "type": "function",
					"function": {"name": "list_dir", "arguments": "{}"}}]}}]
	}`)

	caller := newTestCaller(srv.URL)
	tools := []model.ToolDefinition{{
		Name:        "list_dir",
		Description: "List directory contents",
		Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
	}}

	reply, err := caller.Call(context.Background(), []model.Message{
		model.UserMessage("list files"),
	}, tools)
	require.NoError(t, err)

	tcr, ok := reply.(model.ToolCallReply)
	require.True(t, ok)
	require.Len(t, tcr.Calls, 1)
	assert.Equal(t, "t1", tcr.Calls[0].ID)
	assert.Equal(t, "list_dir", tcr.Calls[0].Function.Name)

	req := *captured
	sentTools := req["tools"].([]any)
	require.Len(t, sentTools, 1)
	fn := sentTools[0].(map[string]any)["function"].(map[string]any)
	assert.Equal(t, "list_dir", fn["name"])
}

func TestCall_NonSuccessStatus(t *testing.T) {
	srv, _ := fakeEndpoint(t, http.StatusInternalServerError, `{"error": {"message": "overloaded"}}`)

	caller := newTestCaller(srv.URL)
	reply, err := caller.Call(context.Background(), []model.Message{model.UserMessage("hi")}, nil)
	require.Error(t, err)
	assert.Nil(t, reply)

	var endpointErr *model.EndpointError
	assert.True(t, errors.As(err, &endpointErr))
}

func TestCall_EmptyChoices(t *testing.T) {
	srv, _ := fakeEndpoint(t, http.StatusOK, `{"id": "cmpl-3", "choices": []}`)

	caller := newTestCaller(srv.URL)
	_, err := caller.Call(context.Background(), []model.Message{model.UserMessage("hi")}, nil)
	require.Error(t, err)

	var endpointErr *model.EndpointError
	assert.True(t, errors.As(err, &endpointErr))
}

// -------------------- Message Conversion --------------------

func TestBuildMessages_RoundTripShape(t *testing.T) {
	calls := []model.ToolCall{model.NewToolCall("t1", "list_dir", "{}")}
	msgs := buildMessages([]model.Message{
		model.SystemMessage("sys"),
		model.UserMessage("hi"),
		model.AssistantToolCalls("checking", calls),
		model.ToolResult("t1", "a.txt"),
		model.AssistantText("done"),
	})

	require.Len(t, msgs, 5)
	assert.NotNil(t, msgs[0].OfSystem)
	assert.NotNil(t, msgs[1].OfUser)
	require.NotNil(t, msgs[2].OfAssistant)
	require.Len(t, msgs[2].OfAssistant.ToolCalls, 1)
	assert.Equal(t, "t1", msgs[2].OfAssistant.ToolCalls[0].ID)
	require.NotNil(t, msgs[3].OfTool)
	assert.NotNil(t, msgs[4].OfAssistant)
}
