package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"gpt-4", "gpt-4", "openai/gpt-4o"},
		{"claude", "claude", "anthropic/claude-3.5-sonnet"},
		{"gemini", "gemini", "google/gemini-pro-1.5"},
		{"uppercase", "CLAUDE", "anthropic/claude-3.5-sonnet"},
		{"padded", "  gpt-4  ", "openai/gpt-4o"},
		{"unknown", "some-model", DefaultModelID},
		{"empty", "", DefaultModelID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveModel(tt.in); got != tt.want {
				t.Errorf("ResolveModel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Optimized text."}},
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key")
	got, err := c.Complete(context.Background(), "system text", "user text", Params{
		Model:             "gpt-4",
		Temperature:       0.7,
		MaxTokens:         512,
		TopP:              0.9,
		RepetitionPenalty: 1.1,
	})
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	if got != "Optimized text." {
		t.Errorf("content = %q, want %q", got, "Optimized text.")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotReq.Model != "openai/gpt-4o" {
		t.Errorf("model = %q, want resolved identifier", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v, want system then user", gotReq.Messages)
	}
	if gotReq.TopP != 0.9 || gotReq.RepetitionPenalty != 1.1 {
		t.Errorf("sampling params not forwarded: %+v", gotReq)
	}
}

func TestCompleteHTTPErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantClass string
	}{
		{"unauthorized", http.StatusUnauthorized, "bad credentials"},
		{"forbidden", http.StatusForbidden, "access denied"},
		{"rate limited", http.StatusTooManyRequests, "rate limited upstream"},
		{"server error", http.StatusBadGateway, "upstream failure"},
		{"other", http.StatusBadRequest, "request rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			c := NewClient(server.URL, "test-key")
			_, err := c.Complete(context.Background(), "sys", "user", Params{})

			var remoteErr *RemoteError
			if !errors.As(err, &remoteErr) {
				t.Fatalf("error = %v, want *RemoteError", err)
			}
			if remoteErr.Status != tt.status {
				t.Errorf("status = %d, want %d", remoteErr.Status, tt.status)
			}
			if remoteErr.Class() != tt.wantClass {
				t.Errorf("class = %q, want %q", remoteErr.Class(), tt.wantClass)
			}
		})
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	bodies := []string{
		`{"choices": []}`,
		`{"choices": [{"message": {"content": ""}}]}`,
		`not json at all`,
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		c := NewClient(server.URL, "test-key")
		_, err := c.Complete(context.Background(), "sys", "user", Params{})
		server.Close()

		var remoteErr *RemoteError
		if !errors.As(err, &remoteErr) {
			t.Errorf("body %q: error = %v, want *RemoteError", body, err)
		}
	}
}

func TestCompleteNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	c := NewClient(server.URL, "test-key")
	_, err := c.Complete(context.Background(), "sys", "user", Params{})

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("error = %v, want *RemoteError", err)
	}
	if remoteErr.Status != 0 {
		t.Errorf("status = %d, want 0 for network failure", remoteErr.Status)
	}
	if remoteErr.Class() != "network failure" {
		t.Errorf("class = %q, want %q", remoteErr.Class(), "network failure")
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient("", "key")
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}

	c = NewClient("https://example.test/v1/", "key")
	if c.baseURL != "https://example.test/v1" {
		t.Errorf("baseURL = %q, want trailing slash trimmed", c.baseURL)
	}
}
