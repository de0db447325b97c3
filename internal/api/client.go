// Package api provides clients for the remote completion endpoints that
// promptforge can send optimization instructions to.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the default chat-completions endpoint base.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModelID is used when no target model is configured or the
// friendly name is unknown.
const DefaultModelID = "openai/gpt-4o-mini"

// Params contains the generation knobs for a single completion call.
type Params struct {
	// Model is the friendly target-model name (e.g. "gpt-4", "claude").
	// It is translated to a provider identifier via ResolveModel.
	Model string
	// Temperature is the sampling temperature.
	Temperature float64
	// MaxTokens caps the completion length.
	MaxTokens int
	// TopP is the nucleus sampling cutoff.
	TopP float64
	// RepetitionPenalty discourages repeated phrases.
	RepetitionPenalty float64
}

// Completer is the interface the template engine consumes. A nil
// Completer means no remote credentials are configured.
type Completer interface {
	// Complete sends one instruction with a system preamble and returns
	// the raw completion text.
	Complete(ctx context.Context, system, user string, p Params) (string, error)
}

// RemoteError describes a failed completion call. Status is the HTTP
// status code, or 0 for network-level failures. The caller's behavior is
// the same for every class (fall back to local generation); the status
// only changes what gets logged.
type RemoteError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote completion: %s", e.Message)
	}
	return fmt.Sprintf("remote completion: %s (status %d): %s", e.Class(), e.Status, e.Message)
}

// Class returns a short diagnostic label for the failure.
func (e *RemoteError) Class() string {
	switch {
	case e.Status == 0:
		return "network failure"
	case e.Status == http.StatusUnauthorized:
		return "bad credentials"
	case e.Status == http.StatusForbidden:
		return "access denied"
	case e.Status == http.StatusTooManyRequests:
		return "rate limited upstream"
	case e.Status >= 500:
		return "upstream failure"
	default:
		return "request rejected"
	}
}

// modelIDs maps friendly target-model names to provider identifiers.
var modelIDs = map[string]string{
	"gpt-4":   "openai/gpt-4o",
	"gpt-4o":  "openai/gpt-4o",
	"gpt-3.5": "openai/gpt-3.5-turbo",
	"claude":  "anthropic/claude-3.5-sonnet",
	"gemini":  "google/gemini-pro-1.5",
	"llama":   "meta-llama/llama-3.1-70b-instruct",
	"mistral": "mistralai/mistral-large",
}

// ResolveModel translates a friendly model name to a provider
// identifier. Unknown or empty names fall back to DefaultModelID.
func ResolveModel(name string) string {
	if id, ok := modelIDs[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id
	}
	return DefaultModelID
}

// Client calls an OpenRouter-compatible chat-completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a completion client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model             string        `json:"model"`
	Messages          []chatMessage `json:"messages"`
	Temperature       float64       `json:"temperature"`
	MaxTokens         int           `json:"max_tokens"`
	TopP              float64       `json:"top_p"`
	RepetitionPenalty float64       `json:"repetition_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implements Completer.
func (c *Client) Complete(ctx context.Context, system, user string, p Params) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: ResolveModel(p.Model),
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:       p.Temperature,
		MaxTokens:         p.MaxTokens,
		TopP:              p.TopP,
		RepetitionPenalty: p.RepetitionPenalty,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &RemoteError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RemoteError{Status: resp.StatusCode, Message: truncate(string(respBody), 200)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &RemoteError{Status: resp.StatusCode, Message: fmt.Sprintf("malformed response body: %v", err)}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &RemoteError{Status: resp.StatusCode, Message: "no completion content in response"}
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
