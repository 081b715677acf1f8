package llm

import (
	"context"
)

// Request is one chat-style completion request: a system framing, a user
// turn, and sampling parameters.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// defines the interface for LLM providers
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// Settings carries provider credentials and model selection. Built from
// configuration; providers never read the environment themselves.
type Settings struct {
	APIKey  string
	Model   string
	BaseURL string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
