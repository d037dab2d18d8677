package tool

import (
	"github.com/google/uuid"

	"github.com/ponderai/agentic/logging"
)

// Context is the per-call capability handle passed to tool executions. The
// caller builds one per invocation; the loop controller derives a per-call
// copy carrying the tool call id so log lines and side effects correlate
// with the model's request.
type Context struct {
	// InvocationID identifies the loop invocation this call belongs to.
	InvocationID string
	// CallID is the model-assigned tool call id, set by the controller.
	CallID string
	// Data carries caller-supplied capabilities (working directory, stores,
	// service handles). Tools downcast the values they need.
	Data map[string]any

	logger logging.Logger
}

// NewContext creates an invocation-scoped Context with a fresh id.
func NewContext(logger logging.Logger) *Context {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Context{
		InvocationID: uuid.NewString(),
		Data:         map[string]any{},
		logger:       logger,
	}
}

// WithCall returns a copy of the context bound to one tool call id.
func (c *Context) WithCall(callID string) *Context {
	nc := *c
	nc.CallID = callID
	return &nc
}

// Logger returns the context logger, never nil.
func (c *Context) Logger() logging.Logger {
	if c.logger == nil {
		return logging.NoOpLogger{}
	}
	return c.logger
}
