// Package model defines the wire-shaped conversation types and the
// provider-agnostic abstractions for talking to a chat-completions style
// model endpoint.
//
// Core goals:
//   - Keep Message/ToolCall shapes minimal and identical to the endpoint wire format
//   - Represent the parsed model reply as a closed sum (FinalReply, ToolCallReply, EmptyReply)
//     so the "neither text nor tool calls" edge case is a named state, not a convention
//   - Expose a single Caller capability interface so the loop controller stays
//     decoupled from vendor SDKs
//   - Facilitate lightweight scripting for tests (MockCaller)
//
// Providers (e.g. OpenAI-compatible, Anthropic) implement the Caller interface
// from this package.
package model
