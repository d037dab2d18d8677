package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ponderai/agentic/logging"
	"github.com/ponderai/agentic/model"
	"github.com/ponderai/agentic/safety"
	"github.com/ponderai/agentic/tool"
)

// Options hold the optional collaborators of a Loop. Use functional options
// with NewLoop to override the defaults (pass-through safety, no-op logger).
type Options struct {
	Safety safety.Pipeline
	Logger logging.Logger
}

// WithSafety injects the safety pipeline consulted around tool execution.
func WithSafety(p safety.Pipeline) func(o *Options) {
	return func(o *Options) { o.Safety = p }
}

// WithLogger injects the structured logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Loop drives the agentic tool-calling exchange. A Loop is immutable after
// construction and safe for concurrent use: every invocation owns its own
// message sequence, iteration counter and records.
type Loop struct {
	cfg      Config
	caller   model.Caller
	registry tool.Registry
	safety   safety.Pipeline
	logger   logging.Logger
}

// NewLoop constructs a Loop around the injected caller and registry.
func NewLoop(cfg Config, caller model.Caller, registry tool.Registry, optFns ...func(o *Options)) *Loop {
	opts := Options{
		Safety: safety.AllowAll{},
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if cfg.MaxIterations < 1 {
		cfg.MaxIterations = 1
	}

	return &Loop{
		cfg:      cfg,
		caller:   caller,
		registry: registry,
		safety:   opts.Safety,
		logger:   opts.Logger,
	}
}

// Run executes the loop with the given system prompt and user message.
//
// The loop continues until the model produces a reply without tool calls or
// the maximum iteration count is reached. The only error path is a fatal
// endpoint failure (or context cancellation); both return a nil Result.
func (l *Loop) Run(ctx context.Context, systemPrompt, userMessage string, toolCtx *tool.Context) (*Result, error) {
	return l.RunWithHistory(ctx, systemPrompt, nil, userMessage, toolCtx)
}

// RunWithHistory executes the loop with existing conversation history. The
// history is inserted between the system prompt and the new user message and
// is not re-validated.
func (l *Loop) RunWithHistory(
	ctx context.Context,
	systemPrompt string,
	history []model.Message,
	userMessage string,
	toolCtx *tool.Context,
) (*Result, error) {
	if toolCtx == nil {
		toolCtx = tool.NewContext(l.logger)
	}

	messages := make([]model.Message, 0, len(history)+2)
	messages = append(messages, model.SystemMessage(systemPrompt))
	messages = append(messages, history...)
	messages = append(messages, model.UserMessage(userMessage))

	// The schema does not change mid-invocation; fetch it once up front.
	toolDefs := l.registry.Definitions()

	var records []CallRecord
	iterations := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		iterations++

		if iterations > l.cfg.MaxIterations {
			l.logger.Warn("loop.limit",
				"invocation", toolCtx.InvocationID,
				"max_iterations", l.cfg.MaxIterations,
			)
			return &Result{
				Response:   fmt.Sprintf("[Reached maximum of %d tool-calling iterations]", l.cfg.MaxIterations),
				ToolCalls:  records,
				Iterations: iterations - 1,
				HitLimit:   true,
			}, nil
		}

		l.logger.Debug("loop.iteration",
			"invocation", toolCtx.InvocationID,
			"iteration", iterations,
		)

		reply, err := l.caller.Call(ctx, messages, toolDefs)
		if err != nil {
			return nil, fmt.Errorf("model call failed in agentic loop: %w", err)
		}

		calls, ok := pendingCalls(reply)
		if !ok {
			l.logger.Debug("loop.complete",
				"invocation", toolCtx.InvocationID,
				"iterations", iterations,
				"tool_calls", len(records),
			)
			return &Result{
				Response:   finalText(reply),
				ToolCalls:  records,
				Iterations: iterations,
			}, nil
		}

		l.logger.Debug("loop.tool_calls_requested",
			"invocation", toolCtx.InvocationID,
			"count", len(calls.Calls),
		)

		// The assistant message is appended before its results so every
		// tool message links back to a call in the preceding assistant turn.
		messages = append(messages, calls.Message())

		// Execute in emission order, sequentially: later calls may be easier
		// for the model to interpret once it sees earlier results, and
		// out-of-order results would break the linkage invariant.
		for _, tc := range calls.Calls {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			record, resultMsg := l.handleToolCall(ctx, tc, toolCtx)
			records = append(records, record)
			messages = append(messages, resultMsg)
		}
	}
}

// pendingCalls extracts the tool-call variant of a reply, reporting false
// for both terminal variants (final text, empty). A tool-call reply with an
// empty call list is terminal too; providers normalize it away, but a custom
// Caller may hand one over directly.
func pendingCalls(reply model.Reply) (model.ToolCallReply, bool) {
	tcr, ok := reply.(model.ToolCallReply)
	return tcr, ok && len(tcr.Calls) > 0
}

// finalText extracts the terminal text of a reply; an EmptyReply yields "".
func finalText(reply model.Reply) string {
	switch r := reply.(type) {
	case model.FinalReply:
		return r.Text
	case model.ToolCallReply:
		return r.Text
	default:
		return ""
	}
}

// handleToolCall runs one invocation through the safety pipeline and the
// registry, returning the audit record and the tool-result message to append.
func (l *Loop) handleToolCall(ctx context.Context, tc model.ToolCall, toolCtx *tool.Context) (CallRecord, model.Message) {
	name := tc.Function.Name
	args := parseArguments(tc, l.logger)

	verdict := l.safety.ValidateInput(args)
	switch verdict.Decision {
	case safety.Block:
		l.logger.Warn("loop.tool.blocked",
			"invocation", toolCtx.InvocationID,
			"tool", name,
			"reason", verdict.Reason,
		)
		output := tool.Errorf("Input validation failed: %s", verdict.Reason)
		record := CallRecord{ToolName: name, Arguments: args, Output: output}
		return record, model.ToolResult(tc.ID, output.LLMString())
	case safety.Warn:
		l.logger.Warn("loop.tool.safety_warning",
			"invocation", toolCtx.InvocationID,
			"tool", name,
			"reason", verdict.Reason,
		)
	}

	output := l.registry.Execute(ctx, tool.Call{Name: name, Arguments: args}, toolCtx.WithCall(tc.ID))

	// The record keeps the true output; the model only sees the sanitized
	// text.
	record := CallRecord{ToolName: name, Arguments: args, Output: output}
	return record, model.ToolResult(tc.ID, l.sanitizeOutput(name, output))
}

// parseArguments decodes the raw argument payload. A malformed payload is a
// recoverable condition: it is logged and substituted with an empty object.
func parseArguments(tc model.ToolCall, logger logging.Logger) map[string]any {
	args := map[string]any{}
	raw := tc.Function.Arguments
	if raw == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		logger.Warn("loop.tool.malformed_arguments",
			"tool", tc.Function.Name,
			"error", err.Error(),
		)
		return map[string]any{}
	}
	if args == nil { // raw "null" decodes to a nil map
		return map[string]any{}
	}
	return args
}

// sanitizeOutput runs text-bearing outputs through the output check. A
// rejected output is replaced with a redaction notice that still reveals the
// reason. Error outputs pass through unchanged; the model needs to see them.
func (l *Loop) sanitizeOutput(toolName string, output tool.Output) string {
	switch output.(type) {
	case tool.TextOutput, tool.JSONOutput:
		sanitized, err := l.safety.CheckOutput(toolName, output.LLMString())
		if err != nil {
			l.logger.Warn("loop.tool.output_rejected", "tool", toolName, "reason", err.Error())
			return "[BLOCKED] " + err.Error()
		}
		return sanitized
	default:
		return output.LLMString()
	}
}
