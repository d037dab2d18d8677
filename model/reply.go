package model

// Reply is the parsed first-choice message of one model call. Concrete reply
// types implement the unexported isReply marker enabling a closed set, so the
// loop controller can switch exhaustively instead of interpreting two
// optional fields by convention.
type Reply interface{ isReply() }

// FinalReply carries a plain text answer with no tool calls. Terminal for
// the invocation.
type FinalReply struct {
	Text string
}

func (FinalReply) isReply() {}

// ToolCallReply carries one or more tool invocations, in the order the model
// emitted them. Text may accompany the calls; the controller does not act on
// it this iteration but preserves it in the appended assistant message.
type ToolCallReply struct {
	Text  string
	Calls []ToolCall
}

func (ToolCallReply) isReply() {}

// Message converts the reply into the assistant message appended to the
// conversation before the tool results.
func (r ToolCallReply) Message() Message {
	return AssistantToolCalls(r.Text, r.Calls)
}

// EmptyReply carries neither text nor tool calls. A legal, if unhelpful,
// terminal state for a well-formed endpoint response.
type EmptyReply struct{}

func (EmptyReply) isReply() {}

// NewReply normalizes raw (text, calls) content from a provider into the
// appropriate Reply variant.
func NewReply(text string, calls []ToolCall) Reply {
	switch {
	case len(calls) > 0:
		return ToolCallReply{Text: text, Calls: calls}
	case text != "":
		return FinalReply{Text: text}
	default:
		return EmptyReply{}
	}
}
