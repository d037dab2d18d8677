// Package agentic provides a high-level façade over the loop controller and
// its collaborators. Most applications interact with this package by:
//  1. Building a Config (DefaultConfig, ConfigFromEnv or by hand)
//  2. Registering tools in a registry
//  3. Creating a loop via New() and invoking Run / RunWithHistory
//
// The façade wires an OpenAI-compatible caller from the Config; callers who
// need a different provider or deterministic fakes construct agent.NewLoop
// directly with their own model.Caller.
package agentic

import (
	"github.com/ponderai/agentic/agent"
	"github.com/ponderai/agentic/logging"
	"github.com/ponderai/agentic/model"
	"github.com/ponderai/agentic/model/openai"
	"github.com/ponderai/agentic/safety"
	"github.com/ponderai/agentic/tool"
)

// Options configure the façade. Any unset collaborator is initialized with
// a safe default (pass-through safety, no-op logger, caller built from the
// Config).
type Options struct {
	// Caller overrides the endpoint caller built from the Config.
	Caller model.Caller
	// Safety is the pipeline consulted around tool execution.
	Safety safety.Pipeline
	// Logger receives structured loop and tool events.
	Logger logging.Logger
}

// New creates a ready-to-use loop. The default caller speaks the OpenAI
// Chat Completions protocol against cfg.APIURL with cfg.APIKey as bearer
// credential, which covers both hosted endpoints and local servers.
func New(cfg agent.Config, registry tool.Registry, optFns ...func(o *Options)) *agent.Loop {
	opts := Options{
		Safety: safety.AllowAll{},
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	caller := opts.Caller
	if caller == nil {
		caller = openai.New(func(o *openai.Options) {
			o.BaseURL = cfg.APIURL
			o.APIKey = cfg.APIKey
			o.Model = cfg.Model
			o.Temperature = cfg.Temperature
			o.MaxTokens = cfg.MaxTokens
		})
	}

	return agent.NewLoop(cfg, caller, registry,
		agent.WithSafety(opts.Safety),
		agent.WithLogger(opts.Logger),
	)
}
