// Package safety defines the verdict types and the Pipeline capability
// interface the loop controller consults around every tool execution.
// Concrete policy (pattern matching, allowlists, redaction rules) lives
// outside this module; the loop only honors verdicts.
package safety

// Decision classifies a safety verdict.
type Decision int

const (
	// Allow permits the tool call without comment.
	Allow Decision = iota
	// Warn permits the tool call but flags it; the controller logs the
	// reason and proceeds.
	Warn
	// Block forbids the tool call; the controller does not execute the tool
	// and feeds the reason back to the model instead.
	Block
)

// String returns the lower-case decision name.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Warn:
		return "warn"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of an input check. Reason is empty for Allow.
type Verdict struct {
	Decision Decision
	Reason   string
}

// Allowed constructs an Allow verdict.
func Allowed() Verdict { return Verdict{Decision: Allow} }

// Warned constructs a Warn verdict with the given reason.
func Warned(reason string) Verdict { return Verdict{Decision: Warn, Reason: reason} }

// Blocked constructs a Block verdict with the given reason.
func Blocked(reason string) Verdict { return Verdict{Decision: Block, Reason: reason} }

// Pipeline checks tool input before execution and tool output before it is
// fed back to the model. Implementations must be safe for concurrent use;
// one pipeline is typically shared across invocations.
type Pipeline interface {
	// ValidateInput inspects parsed tool arguments.
	ValidateInput(args map[string]any) Verdict

	// CheckOutput inspects tool output text. It returns the sanitized text
	// to show the model, or an error carrying the rejection reason when the
	// output must be withheld entirely.
	CheckOutput(toolName, text string) (string, error)
}

// AllowAll is a pass-through Pipeline: every input is allowed and every
// output is returned unchanged. Useful as a default and in tests.
type AllowAll struct{}

// ValidateInput implements Pipeline.
func (AllowAll) ValidateInput(map[string]any) Verdict { return Allowed() }

// CheckOutput implements Pipeline.
func (AllowAll) CheckOutput(_ string, text string) (string, error) { return text, nil }
