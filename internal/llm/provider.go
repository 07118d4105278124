package llm

import "context"

// Provider is a text-generation backend capable of returning a single JSON
// object for a system + user prompt pair.
type Provider interface {
	Name() string
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}
