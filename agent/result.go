package agent

import "github.com/ponderai/agentic/tool"

// Result is the terminal artifact of one loop invocation. The controller is
// the sole writer; values are immutable once returned.
type Result struct {
	// Response is the final text from the model. Empty when the model
	// produced no text (EmptyReply termination). When the iteration limit
	// was hit it carries a synthesized notice naming the limit.
	Response string
	// ToolCalls is the full audit trail of tool calls made during the
	// invocation, in execution order.
	ToolCalls []CallRecord
	// Iterations is the number of completed iterations (model calls).
	Iterations int
	// HitLimit reports whether the loop stopped because it reached
	// MaxIterations rather than because the model finished.
	HitLimit bool
}

// CallRecord is an append-only audit entry for one tool call.
//
// Output always reflects the tool's true output: when the safety pipeline
// redacts or rejects what the model gets to see, the record still retains
// the unsanitized result.
type CallRecord struct {
	ToolName string
	// Arguments are the parsed tool arguments, or an empty map when the
	// model emitted an unparseable payload.
	Arguments map[string]any
	Output    tool.Output
}
