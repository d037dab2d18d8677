// Package openai provides a model.Caller over the OpenAI Chat Completions
// API using the official client. Because the base URL and credential are
// configurable, it also serves any OpenAI-compatible endpoint such as a
// local Ollama or llama.cpp server.
package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ponderai/agentic/model"
)

// Options configure the OpenAI caller. Fields mirror the subset of Chat
// Completion parameters the loop needs; extend via functional options
// without breaking callers.
type Options struct {
	// BaseURL overrides the endpoint address. Empty means the SDK default.
	BaseURL string
	// APIKey is the optional bearer credential.
	APIKey string

	Model       string
	Temperature float64
	MaxTokens   int64
}

// Caller implements model.Caller using the OpenAI Chat Completions API.
type Caller struct {
	client openai.Client
	opts   Options
}

// New creates a Caller, building the underlying client from the options.
func New(optFns ...func(o *Options)) *Caller {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	// Retry policy belongs to the caller of the loop, not the adapter.
	clientOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	return &Caller{client: openai.NewClient(clientOpts...), opts: opts}
}

// NewFromClient creates a Caller from an existing client.
func NewFromClient(client openai.Client, optFns ...func(o *Options)) *Caller {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Caller{client: client, opts: opts}
}

// Call implements model.Caller. It issues exactly one completion request and
// parses the first choice into a model.Reply. Transport failures, non-2xx
// statuses and undecodable bodies surface as *model.EndpointError.
func (c *Caller) Call(ctx context.Context, messages []model.Message, tools []model.ToolDefinition) (model.Reply, error) {
	params := c.buildParams(messages, tools)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return nil, &model.EndpointError{
				StatusCode: apierr.StatusCode,
				Message:    "chat completion request failed",
				Err:        err,
			}
		}
		return nil, model.NewEndpointError("chat completion request failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, model.NewEndpointError("empty choices in completion response", nil)
	}

	msg := resp.Choices[0].Message
	calls := make([]model.ToolCall, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		calls = append(calls, model.NewToolCall(tc.ID, tc.Function.Name, tc.Function.Arguments))
	}

	return model.NewReply(msg.Content, calls), nil
}

// buildParams assembles the completion parameters including tool definitions.
func (c *Caller) buildParams(messages []model.Message, tools []model.ToolDefinition) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Messages:    buildMessages(messages),
		Model:       c.opts.Model,
		Temperature: openai.Float(c.opts.Temperature),
		MaxTokens:   openai.Int(c.opts.MaxTokens),
	}
	if len(tools) == 0 {
		return params
	}
	toolParams := make([]openai.ChatCompletionToolParam, len(tools))
	for i, tdef := range tools {
		toolParams[i] = openai.ChatCompletionToolParam{
			Type: "function",
			Function: openai.FunctionDefinitionParam{
				Name:        tdef.Name,
				Description: openai.String(tdef.Description),
				Parameters:  tdef.Parameters,
			},
		}
	}
	params.Tools = toolParams
	return params
}

// buildMessages converts the loop's message sequence into SDK message params.
// The sequence already carries the wire ordering (tool results directly after
// the assistant message that requested them), so the conversion is 1:1.
func buildMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case model.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case model.RoleUser:
			out = append(out, openai.UserMessage(m.Content))
		case model.RoleAssistant:
			if len(m.ToolCalls) == 0 {
				out = append(out, openai.AssistantMessage(m.Content))
				continue
			}
			assistant := openai.ChatCompletionAssistantMessageParam{
				Role:      "assistant",
				ToolCalls: buildToolCalls(m.ToolCalls),
			}
			if m.Content != "" {
				assistant.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: openai.String(m.Content),
				}
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
		case model.RoleTool:
			out = append(out, openai.ToolMessage(m.Content, m.ToolCallID))
		default:
			if m.Content != "" {
				out = append(out, openai.UserMessage(m.Content))
			}
		}
	}
	return out
}

func buildToolCalls(calls []model.ToolCall) []openai.ChatCompletionMessageToolCallParam {
	out := make([]openai.ChatCompletionMessageToolCallParam, len(calls))
	for i, tc := range calls {
		out[i] = openai.ChatCompletionMessageToolCallParam{
			ID:   tc.ID,
			Type: "function",
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		}
	}
	return out
}
