// Package agent contains the agentic tool-calling loop: a multi-turn
// exchange between a model endpoint and a set of callable tools that runs
// until the model produces a final text answer or the iteration ceiling is
// hit.
//
// Design principles:
//   - Capability interfaces (model.Caller, tool.Registry, safety.Pipeline)
//     are injected, never constructed here, so tests substitute
//     deterministic fakes
//   - One invocation owns its message sequence and records exclusively; no
//     shared state, no synchronization, no locks across suspension points
//   - Three failure domains with distinct policies: endpoint failures are
//     fatal and propagate; malformed model output is tolerated and logged;
//     unsafe tool input/output is redirected back to the model as error or
//     redacted text
//
// Execution model: per iteration the loop issues one model call; if the
// reply requests tool calls they are executed sequentially in emission
// order, each result appended as a tool message, and control returns to the
// model. A reply without tool calls terminates the invocation.
package agent
