package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGroqProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGroqProvider("test-key", "", server.URL+"/openai/v1", 0)
	if err != nil {
		t.Fatalf("NewGroqProvider: %v", err)
	}
	return p
}

func TestGroqProvider_HappyPath(t *testing.T) {
	var gotBody map[string]any
	var gotPath, gotAuth string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   DefaultGroqModel,
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": `{"skills":["Go"]}`},
					"finish_reason": "stop",
				},
			},
		})
	}

	p := newTestGroqProvider(t, handler)
	text, err := p.Generate(context.Background(), "suggest skills")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"skills":["Go"]}` {
		t.Fatalf("unexpected text: %q", text)
	}
	if gotPath != "/openai/v1/chat/completions" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotBody["model"] != DefaultGroqModel {
		t.Fatalf("unexpected model: %v", gotBody["model"])
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	msg, _ := msgs[0].(map[string]any)
	if msg["role"] != "user" || msg["content"] != "suggest skills" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestGroqProvider_NoChoices(t *testing.T) {
	p := newTestGroqProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "x", "choices": []any{}})
	})
	_, err := p.Generate(context.Background(), "x")
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got %T (%v)", err, err)
	}
}

func TestGroqProvider_RateLimit(t *testing.T) {
	p := newTestGroqProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "tokens", "message": "Rate limit exceeded", "code": "rate_limit_exceeded"},
		})
	})
	_, err := p.Generate(context.Background(), "x")
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
}

func TestGroqProvider_ServerError(t *testing.T) {
	p := newTestGroqProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "Internal server error"},
		})
	})
	_, err := p.Generate(context.Background(), "x")
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestGroqProvider_Defaults(t *testing.T) {
	p, err := NewGroqProvider("k", "", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != DefaultGroqModel {
		t.Fatalf("expected %q, got %q", DefaultGroqModel, p.ModelID())
	}
	if _, err := NewGroqProvider("", "", "", 0); err == nil {
		t.Fatal("expected error for missing key")
	}
}
