// Package llm abstracts the generative-text capability behind a single
// Provider interface. The core consumes it twice: zero-shot profile
// classification (schema-constrained) and personalized instruction
// generation. Providers are explicit handles constructed from config and
// passed in; there is no process-wide client.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the generative-text capability.
type Provider interface {
	// Generate sends one request and returns the structured response.
	// When req.Schema is set the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes what to send.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn calls carry one user
	// message.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON
	// Schema. When nil the Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output; validated JSON when a Schema was
	// requested.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
