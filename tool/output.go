package tool

import (
	"encoding/json"
	"fmt"
)

// Output is the result of one tool execution. Concrete output types
// implement the unexported isOutput marker enabling a closed set: plain
// text, a structured value, or an explicit error.
//
// Every variant has a canonical string form (LLMString) used when feeding
// the result back to the model.
type Output interface {
	isOutput()
	LLMString() string
}

// TextOutput is a plain text result.
type TextOutput struct {
	Text string
}

func (TextOutput) isOutput() {}

// LLMString returns the text unchanged.
func (o TextOutput) LLMString() string { return o.Text }

// JSONOutput is a structured result serialized as pretty-printed JSON when
// shown to the model.
type JSONOutput struct {
	Value any
}

func (JSONOutput) isOutput() {}

// LLMString returns the value as indented JSON, falling back to the Go
// string form if the value cannot be marshaled.
func (o JSONOutput) LLMString() string {
	b, err := json.MarshalIndent(o.Value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", o.Value)
	}
	return string(b)
}

// ErrorOutput is an error-shaped result. It does not abort the loop; the
// model is expected to see it and react.
type ErrorOutput struct {
	Message string
}

func (ErrorOutput) isOutput() {}

// LLMString prefixes the message so the model can distinguish failures from
// regular text results.
func (o ErrorOutput) LLMString() string { return "Error: " + o.Message }

// Errorf constructs an ErrorOutput from a format string.
func Errorf(format string, args ...any) ErrorOutput {
	return ErrorOutput{Message: fmt.Sprintf(format, args...)}
}
