// Package llm talks to hosted chat-completion models. Every provider takes a
// single user prompt and returns the raw text of the first completion; callers
// own any parsing of that text.
package llm

import "context"

type Provider interface {
	// Generate sends prompt as one user message and returns the model's text.
	Generate(ctx context.Context, prompt string) (string, error)
	// ModelID is the model identifier the provider is configured for.
	ModelID() string
}

// resolveModel maps a friendly name to a provider model id, passing unknown
// names through.
func resolveModel(name string, models map[string]string, def string) string {
	if name == "" {
		return def
	}
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
