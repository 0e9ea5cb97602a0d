package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contractwatch/contractwatch/internal/common"
)

func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
	}, slog.New(slog.DiscardHandler))
}

func TestCompleteReturnsFirstTextBlock(t *testing.T) {
	var gotReq messagesRequest
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("api key header: got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("version header missing")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "thinking", "text": ""},
				{"type": "text", "text": `{"title":"Lease"}`},
			},
		})
	})

	text, err := c.Complete(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != `{"title":"Lease"}` {
		t.Errorf("got %q", text)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model: got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "analyze this" {
		t.Errorf("messages: %+v", gotReq.Messages)
	}
}

func TestCompleteStatusError(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	})

	_, err := c.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error for a 503")
	}
	if !common.Retryable(err) {
		t.Error("API status errors should be retryable")
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	})

	_, err := c.Complete(context.Background(), "prompt")
	if !errors.Is(err, common.ErrResponseParse) {
		t.Errorf("expected ErrResponseParse, got %v", err)
	}
}

func TestCompleteTransportError(t *testing.T) {
	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Model:   "test-model",
	}, slog.New(slog.DiscardHandler))

	if _, err := c.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected a transport error")
	}
}

func TestConfigDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	if c.cfg.BaseURL != "https://api.anthropic.com" {
		t.Errorf("base url: got %q", c.cfg.BaseURL)
	}
	if c.cfg.MaxTokens != 4096 {
		t.Errorf("max tokens: got %d", c.cfg.MaxTokens)
	}
	if c.cfg.Model == "" {
		t.Error("model default missing")
	}
}
