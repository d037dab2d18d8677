package tool

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/ponderai/agentic/model"
)

// Call is a parsed tool invocation ready for execution.
type Call struct {
	Name      string
	Arguments map[string]any
}

// Registry is the capability interface the loop controller consumes. The
// definitions are advertised to the model verbatim; Execute runs one call
// and always returns an Output — execution failures surface as ErrorOutput
// so the model can see and react to tool-level errors.
//
// Implementations must tolerate concurrent Execute calls from independent
// invocations.
type Registry interface {
	// Definitions returns the tool schema advertised to the model.
	Definitions() []model.ToolDefinition

	// Execute runs the named tool. It never returns an error; failures of
	// any kind (unknown tool, validation, execution, panic) become
	// ErrorOutput values.
	Execute(ctx context.Context, call Call, toolCtx *Context) Output
}

// MapRegistry is an in-memory Registry backed by a name-indexed map. Safe
// for concurrent use.
type MapRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewMapRegistry creates a registry pre-populated with the given tools.
func NewMapRegistry(tools ...Tool) *MapRegistry {
	r := &MapRegistry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.tools[t.Name()] = t
	}
	return r
}

// Register adds or replaces a tool.
func (r *MapRegistry) Register(t Tool) {
	r.mu.Lock()
	r.tools[t.Name()] = t
	r.mu.Unlock()
}

// Unregister removes a tool, reporting whether it was present.
func (r *MapRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[name]; !ok {
		return false
	}
	delete(r.tools, name)
	return true
}

// Definitions implements Registry. Output is sorted by tool name so the
// schema sent to the model is deterministic across calls.
func (r *MapRegistry) Definitions() []model.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]model.ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, model.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Execute implements Registry.
func (r *MapRegistry) Execute(ctx context.Context, call Call, toolCtx *Context) Output {
	r.mu.RLock()
	impl, ok := r.tools[call.Name]
	r.mu.RUnlock()

	if !ok {
		return Errorf("tool %s not found", call.Name)
	}
	if err := ctx.Err(); err != nil {
		return Errorf("tool %s not executed: %v", call.Name, err)
	}

	var (
		result any
		err    error
	)
	func() { // panic safety: a broken tool must not take down the invocation
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("panic in tool %s: %v", call.Name, rec)
				toolCtx.Logger().Error("tool.panic", "tool", call.Name, "recover", rec, "stack", string(debug.Stack()))
			}
		}()
		result, err = impl.Call(ctx, toolCtx, call.Arguments)
	}()

	if err != nil {
		return ErrorOutput{Message: err.Error()}
	}
	return normalizeResult(result)
}

// normalizeResult maps an arbitrary tool return value onto the Output sum.
func normalizeResult(result any) Output {
	switch v := result.(type) {
	case nil:
		return TextOutput{}
	case Output:
		return v
	case string:
		return TextOutput{Text: v}
	case []byte:
		return TextOutput{Text: string(v)}
	case error:
		return ErrorOutput{Message: v.Error()}
	default:
		return JSONOutput{Value: v}
	}
}
