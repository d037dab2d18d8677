package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponderai/agentic/model"
)

func TestBuildMessages_SystemExcluded(t *testing.T) {
	msgs := buildMessages([]model.Message{
		model.SystemMessage("sys"),
		model.UserMessage("hi"),
	})
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", string(msgs[0].Role))
}

func TestExtractSystem(t *testing.T) {
	blocks := extractSystem([]model.Message{
		model.SystemMessage("first"),
		model.UserMessage("hi"),
		model.SystemMessage("second"),
	})
	require.Len(t, blocks, 2)
	assert.Equal(t, "first", blocks[0].Text)
	assert.Equal(t, "second", blocks[1].Text)
}

func TestBuildMessages_AssistantToolCalls(t *testing.T) {
	calls := []model.ToolCall{model.NewToolCall("t1", "list_dir", `{"path":"."}`)}
	msgs := buildMessages([]model.Message{
		model.AssistantToolCalls("checking", calls),
		model.ToolResult("t1", "a.txt"),
	})

	require.Len(t, msgs, 2)
	assert.Equal(t, "assistant", string(msgs[0].Role))
	// Text block plus one tool_use block.
	require.Len(t, msgs[0].Content, 2)
	toolUse := msgs[0].Content[1].OfToolUse
	require.NotNil(t, toolUse)
	assert.Equal(t, "t1", toolUse.ID)
	assert.Equal(t, "list_dir", toolUse.Name)

	// Tool results ride inside a user message.
	assert.Equal(t, "user", string(msgs[1].Role))
	result := msgs[1].Content[0].OfToolResult
	require.NotNil(t, result)
	assert.Equal(t, "t1", result.ToolUseID)
}

func TestBuildMessages_InvalidArgumentsKeptAsString(t *testing.T) {
	calls := []model.ToolCall{model.NewToolCall("t1", "echo", `{"broken`)}
	msgs := buildMessages([]model.Message{model.AssistantToolCalls("", calls)})

	require.Len(t, msgs, 1)
	toolUse := msgs[0].Content[0].OfToolUse
	require.NotNil(t, toolUse)
	assert.Equal(t, `{"broken`, toolUse.Input)
}

func TestBuildTools(t *testing.T) {
	out := buildTools([]model.ToolDefinition{{
		Name:        "search",
		Description: "Search things",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string"},
			},
			"required": []any{"query"},
		},
	}})

	require.Len(t, out, 1)
	tl := out[0].OfTool
	require.NotNil(t, tl)
	assert.Equal(t, "search", tl.Name)
	assert.Equal(t, "Search things", tl.Description.Value)
	assert.Equal(t, []string{"query"}, tl.InputSchema.Required)
	assert.NotNil(t, tl.InputSchema.Properties)
}
