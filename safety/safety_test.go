package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictConstructors(t *testing.T) {
	v := Allowed()
	assert.Equal(t, Allow, v.Decision)
	assert.Empty(t, v.Reason)

	v = Warned("suspicious path")
	assert.Equal(t, Warn, v.Decision)
	assert.Equal(t, "suspicious path", v.Reason)

	v = Blocked("forbidden target")
	assert.Equal(t, Block, v.Decision)
	assert.Equal(t, "forbidden target", v.Reason)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "warn", Warn.String())
	assert.Equal(t, "block", Block.String())
	assert.Equal(t, "unknown", Decision(99).String())
}

func TestAllowAll(t *testing.T) {
	var p Pipeline = AllowAll{}

	assert.Equal(t, Allow, p.ValidateInput(map[string]any{"anything": true}).Decision)

	text, err := p.CheckOutput("any_tool", "raw output")
	assert.NoError(t, err)
	assert.Equal(t, "raw output", text)
}
