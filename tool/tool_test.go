package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponderai/agentic/logging"
)

// -------------------- Schema & Validation Tests --------------------

type sampleArgs struct {
	A string `json:"a" description:"Field A"`
	B *int   `json:"b" description:"Optional pointer field"`
	C int    `json:"c,omitempty" description:"Omit empty field"`
}

func TestSchemaFromStruct(t *testing.T) {
	schema := SchemaFromStruct(sampleArgs{})

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "a")
	assert.Contains(t, props, "b")
	assert.Contains(t, props, "c")
	assert.Equal(t, "Field A", props["a"].(map[string]any)["description"])

	// Required only includes non-pointer, non-omitempty exported fields.
	req, _ := schema["required"].([]string)
	assert.ElementsMatch(t, []string{"a"}, req)
}

func TestValidateArguments(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
		},
		// []any mirrors a JSON-decoded schema shape
		"required": []any{"x"},
	}

	assert.NoError(t, ValidateArguments(map[string]any{"x": 5}, schema))

	err := ValidateArguments(map[string]any{}, schema)
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "x", vErr.Field)

	err = ValidateArguments(map[string]any{"x": "not-int"}, schema)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "expected type integer")

	// JSON numbers decode as float64; whole values count as integers.
	assert.NoError(t, ValidateArguments(map[string]any{"x": 5.0}, schema))
	assert.Error(t, ValidateArguments(map[string]any{"x": 5.5}, schema))
}

// -------------------- FunctionTool Tests --------------------

func testContext() *Context { return NewContext(logging.NoOpLogger{}) }

func TestFunctionTool_Success(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}

	sumTool := NewFunctionTool("sum", "Add numbers", params,
		func(_ context.Context, _ *Context, args map[string]any) (any, error) {
			return args["a"].(float64) + args["b"].(float64), nil
		})

	result, err := sumTool.Call(context.Background(), testContext(), map[string]any{"a": 2.0, "b": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
		},
		"required": []any{"a"},
	}
	tl := NewFunctionTool("test", "Test", params,
		func(_ context.Context, _ *Context, _ map[string]any) (any, error) {
			return 0, nil
		})

	_, err := tl.Call(context.Background(), testContext(), map[string]any{})
	require.Error(t, err)
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	failing := NewFunctionTool("fail", "Fails", params,
		func(_ context.Context, _ *Context, _ map[string]any) (any, error) {
			return nil, errors.New("boom")
		})

	_, err := failing.Call(context.Background(), testContext(), map[string]any{})
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
	assert.Equal(t, "boom", toolErr.Message)
}

func TestFunctionTool_CustomToolErrorPreserved(t *testing.T) {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	custom := NewFunctionTool("custom", "Custom error", params,
		func(_ context.Context, _ *Context, _ map[string]any) (any, error) {
			return nil, NewToolError("custom", "quota exhausted", "RATE_LIMITED")
		})

	_, err := custom.Call(context.Background(), testContext(), map[string]any{})
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "RATE_LIMITED", toolErr.Code)
}

func TestNewFunctionToolFromStruct(t *testing.T) {
	tl := NewFunctionToolFromStruct("sample", "Sample", sampleArgs{},
		func(_ context.Context, _ *Context, _ map[string]any) (any, error) {
			return "ok", nil
		})

	props := tl.Parameters()["properties"].(map[string]any)
	assert.Contains(t, props, "a")

	_, err := tl.Call(context.Background(), testContext(), map[string]any{})
	require.Error(t, err) // "a" is required
}

// -------------------- ToolError Formatting --------------------

func TestToolErrorFormatting(t *testing.T) {
	err := NewToolError("demo", "something failed", "E123")
	assert.Contains(t, err.Error(), "E123")
	assert.Contains(t, err.Error(), "demo")

	plain := &ToolError{Tool: "demo", Message: "oops"}
	assert.Equal(t, "tool error in demo: oops", plain.Error())
}
