package service

import "context"

// CompletionRequest is a single prompt exchange with the text generation provider.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	// JSON asks the provider for a JSON object response.
	JSON      bool
	MaxTokens int
}

// LLMClient wraps a text generation provider. Implementations are stateless
// and do not retry; callers get an UpstreamError on any failure.
type LLMClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
