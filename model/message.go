package model

// Role identifies the speaker of a conversation message.
type Role string

// Conversation roles as used by chat-completions style endpoints.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one conversational unit in the sequence sent to the model
// endpoint. It is a pure value type: construction performs no validation;
// sequence invariants (tool-result linkage, ordering) are enforced by the
// loop controller.
//
// A message is created and owned by exactly one loop invocation and is never
// shared across invocations.
type Message struct {
	Role Role `json:"role"`
	// Content is the message text. Absent only on assistant messages that
	// carry nothing but tool calls.
	Content string `json:"content,omitempty"`
	// ToolCalls is the ordered list of tool invocations requested by an
	// assistant message. Present only on assistant messages.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	// ToolCallID links a tool-role message back to the ToolCall it answers.
	// Must match the ID of a call emitted by the immediately preceding
	// assistant message.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// ToolCall is a tool invocation requested by the model. IDs are
// model-assigned, opaque, and unique within one assistant message.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"` // "function"
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction names the concrete function target of a tool call.
// Arguments is the serialized argument object exactly as emitted by the
// model; it is not guaranteed to be valid JSON.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewToolCall constructs a function-type tool call.
func NewToolCall(id, name, arguments string) ToolCall {
	return ToolCall{
		ID:       id,
		Type:     "function",
		Function: ToolCallFunction{Name: name, Arguments: arguments},
	}
}

// ToolDefinition declaratively exposes a callable function to the model.
// Definitions are sent to the endpoint verbatim.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// SystemMessage constructs a system-role message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// UserMessage constructs a user-role message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantText constructs a plain assistant text message.
func AssistantText(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// AssistantToolCalls constructs an assistant message carrying tool calls and
// any text the model emitted alongside them.
func AssistantToolCalls(text string, calls []ToolCall) Message {
	return Message{Role: RoleAssistant, Content: text, ToolCalls: calls}
}

// ToolResult constructs a tool-role message answering the call with the
// given id.
func ToolResult(callID, text string) Message {
	return Message{Role: RoleTool, Content: text, ToolCallID: callID}
}
