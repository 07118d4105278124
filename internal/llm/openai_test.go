package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tinysteps/backend/internal/config"
	"github.com/tinysteps/backend/internal/pkg/json"
)

func newTestProvider(baseURL string) *OpenAIProvider {
	return NewOpenAIProvider(config.OpenAIConfig{
		APIKey:         "test-key",
		Model:          "gpt-4o-mini",
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	})
}

func TestCompleteJSON(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq openAIRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"steps\":[\"a\"]}"}}]}`))
	}))
	defer server.Close()

	content, err := newTestProvider(server.URL).CompleteJSON(context.Background(), "system prompt", "user prompt", 1000)
	if err != nil {
		t.Fatalf("CompleteJSON failed: %v", err)
	}
	if content != `{"steps":["a"]}` {
		t.Fatalf("content mismatch: %q", content)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Fatalf("model mismatch: %q", gotReq.Model)
	}
	if gotReq.ResponseFormat.Type != "json_object" {
		t.Fatalf("expected json_object response format, got %q", gotReq.ResponseFormat.Type)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
	if gotReq.MaxTokens != 1000 {
		t.Fatalf("max_tokens mismatch: %d", gotReq.MaxTokens)
	}
}

func TestCompleteJSONHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).CompleteJSON(context.Background(), "s", "u", 100)
	if err == nil {
		t.Fatalf("expected an error for a non-2xx status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected the status in the error, got %v", err)
	}
}

func TestCompleteJSONEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).CompleteJSON(context.Background(), "s", "u", 100)
	if err == nil {
		t.Fatalf("expected an error for an empty choices list")
	}
}

func TestCompleteJSONAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).CompleteJSON(context.Background(), "s", "u", 100)
	if err == nil {
		t.Fatalf("expected an error for an error payload")
	}
	if !strings.Contains(err.Error(), "bad model") {
		t.Fatalf("expected API error message, got %v", err)
	}
}
