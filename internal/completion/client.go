// Package completion wraps the LLM providers behind a single blocking,
// cancelable call. The rest of the pipeline sees free text in and free text
// out; provider selection, rate spacing, and retry live here and nowhere
// else.
package completion

import (
	"context"
	"errors"
)

// Request is one completion round-trip. Temperature and MaxTokens vary per
// generation stage; zero MaxTokens means the provider default.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Client is the completion-service boundary. Implementations must honor
// context cancellation: this is the only network round-trip in the pipeline.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrMissingAPIKey reports a client constructed without credentials.
var ErrMissingAPIKey = errors.New("API key not configured")
