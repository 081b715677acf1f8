package gemini

import (
	"context"

	"google.golang.org/genai"

	"prepmate/interview/internal/llm"
)

const DefaultModel = "gemini-2.5-flash"

// Client represents a Gemini LLM client

type Client struct {
	client *genai.Client
	model  string
}

func NewClient(settings llm.Settings) (*Client, error) {
	if settings.APIKey == "" {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "API key is required",
		}
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	model := settings.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{client: client, model: model}, nil
}

// Complete sends the combined system and user framing as a single prompt.
// The Gemini API has no separate system turn in this request shape.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	prompt := req.System + "\n\n" + req.User

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	return text, nil
}

func (c *Client) Name() string {
	return "gemini"
}
