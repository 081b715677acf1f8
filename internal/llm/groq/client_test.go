package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"prepmate/interview/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(llm.Settings{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client, server
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(llm.Settings{})
	if err == nil {
		t.Fatalf("expected error without API key")
	}
	var provErr *llm.ProviderError
	if !errors.As(err, &provErr) || provErr.Code != llm.ErrCodeAPIKey {
		t.Fatalf("expected api key provider error, got %v", err)
	}
}

func TestCompleteSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("expected system+user message turns, got %+v", req.Messages)
		}
		if req.Model == "" {
			t.Errorf("expected a model identifier in the request")
		}

		json.NewEncoder(w).Encode(chatCompletionResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{{Message: chatMessage{Role: "assistant", Content: "  hello  "}}},
		})
	})

	text, err := client.Complete(context.Background(), llm.Request{System: "sys", User: "usr", Temperature: 0.3, MaxTokens: 100})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if text != "hello" {
		t.Fatalf("expected trimmed content, got %q", text)
	}
}

func TestCompleteUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Complete(context.Background(), llm.Request{User: "usr"})
	var provErr *llm.ProviderError
	if !errors.As(err, &provErr) || provErr.Code != llm.ErrCodeAPIKey {
		t.Fatalf("expected api key error for 401, got %v", err)
	}
}

func TestCompleteRateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), llm.Request{User: "usr"})
	var provErr *llm.ProviderError
	if !errors.As(err, &provErr) || provErr.Code != llm.ErrCodeRateLimit {
		t.Fatalf("expected rate limit error for 429, got %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletionResponse{})
	})

	_, err := client.Complete(context.Background(), llm.Request{User: "usr"})
	var provErr *llm.ProviderError
	if !errors.As(err, &provErr) || provErr.Code != llm.ErrCodeInvalidInput {
		t.Fatalf("expected invalid input error for empty choices, got %v", err)
	}
}

func TestCompleteCancelledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Complete(ctx, llm.Request{User: "usr"}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
