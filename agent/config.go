package agent

import (
	"os"
	"strconv"
)

// Config is the immutable per-invocation configuration of the loop. Create
// one per caller and reuse it across invocations; it is never mutated
// mid-loop.
type Config struct {
	// MaxIterations is the hard ceiling on model calls per invocation.
	// Values below 1 are treated as 1.
	MaxIterations int
	// APIURL is the base address of the OpenAI-compatible endpoint.
	APIURL string
	// Model is the model identifier sent with every request.
	Model string
	// APIKey is the optional bearer credential.
	APIKey string
	// Temperature for model calls.
	Temperature float64
	// MaxTokens caps the model output per call.
	MaxTokens int64
}

// DefaultConfig returns the defaults for a local OpenAI-compatible endpoint.
func DefaultConfig() Config {
	return Config{
		MaxIterations: 10,
		APIURL:        "http://localhost:11434/v1",
		Model:         "llama3.2",
		Temperature:   0.7,
		MaxTokens:     4096,
	}
}

// ConfigFromEnv layers environment overrides over DefaultConfig:
// AGENTIC_API_URL, AGENTIC_MODEL, AGENTIC_API_KEY, AGENTIC_MAX_ITERATIONS.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("AGENTIC_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("AGENTIC_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AGENTIC_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AGENTIC_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.MaxIterations = n
		}
	}
	return cfg
}
