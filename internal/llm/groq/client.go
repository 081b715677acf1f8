package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prepmate/interview/internal/llm"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"
)

// Client talks to the Groq chat-completions endpoint (OpenAI wire format).
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(settings llm.Settings) (*Client, error) {
	if settings.APIKey == "" {
		return nil, &llm.ProviderError{
			Provider: "groq",
			Code:     llm.ErrCodeAPIKey,
			Message:  "API key is required",
		}
	}

	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := settings.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     settings.APIKey,
		model:      model,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete performs a single chat-completion round trip and returns the
// assistant message text. One attempt, no retries; the caller decides how
// to handle failure.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: req.System},
		{Role: "user", Content: req.User},
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "groq",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to encode request",
			Err:      err,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "groq",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build request",
			Err:      err,
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		code := llm.ErrCodeServiceDown
		if errors.Is(err, context.DeadlineExceeded) {
			code = llm.ErrCodeTimeout
		}
		return "", &llm.ProviderError{
			Provider: "groq",
			Code:     code,
			Message:  "Request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &llm.ProviderError{
			Provider: "groq",
			Code:     statusToCode(resp.StatusCode),
			Message:  fmt.Sprintf("Unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload))),
		}
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &llm.ProviderError{
			Provider: "groq",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to decode response",
			Err:      err,
		}
	}
	if len(completion.Choices) == 0 {
		return "", &llm.ProviderError{
			Provider: "groq",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No choices in response",
		}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (c *Client) Name() string {
	return "groq"
}

func statusToCode(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return llm.ErrCodeAPIKey
	case http.StatusTooManyRequests:
		return llm.ErrCodeRateLimit
	default:
		return llm.ErrCodeServiceDown
	}
}
