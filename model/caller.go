package model

import (
	"context"
	"fmt"
)

// Caller is the minimal interface the loop controller needs to drive
// generation. Implementations issue exactly one outbound request per Call,
// never retry internally, and surface every transport, status or decode
// failure as *EndpointError.
//
// An empty tools slice means no tools are offered for this call.
type Caller interface {
	Call(ctx context.Context, messages []Message, tools []ToolDefinition) (Reply, error)
}

// MockCaller is a scripted in-memory Caller useful for tests and examples.
// Replies are consumed in order; once the script is exhausted every further
// call returns a canned final reply. Each call records the message sequence
// it received so tests can assert on conversation shape.
//
// Not safe for concurrent use; intended for single-invocation tests.
type MockCaller struct {
	script []Reply
	calls  [][]Message
	tools  [][]ToolDefinition
	err    error
}

// NewMockCaller constructs a MockCaller that plays back the given replies.
func NewMockCaller(script ...Reply) *MockCaller {
	return &MockCaller{script: script}
}

// FailWith makes every subsequent Call return the given error.
func (m *MockCaller) FailWith(err error) { m.err = err }

// Call implements Caller.
func (m *MockCaller) Call(ctx context.Context, messages []Message, tools []ToolDefinition) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}

	snapshot := make([]Message, len(messages))
	copy(snapshot, messages)
	m.calls = append(m.calls, snapshot)
	m.tools = append(m.tools, tools)

	if len(m.calls) > len(m.script) {
		return FinalReply{Text: fmt.Sprintf("mock reply %d", len(m.calls))}, nil
	}

	return m.script[len(m.calls)-1], nil
}

// CallCount returns how many times Call was invoked.
func (m *MockCaller) CallCount() int { return len(m.calls) }

// Messages returns the message sequence observed by the n-th call (0-based).
func (m *MockCaller) Messages(n int) []Message { return m.calls[n] }

// Tools returns the tool schema observed by the n-th call (0-based).
func (m *MockCaller) Tools(n int) []ToolDefinition { return m.tools[n] }
