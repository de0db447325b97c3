package api

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient is an alternative Completer backed by the Anthropic
// messages API, selected with `provider.name: anthropic` in the config.
// Model translation does not apply here: the configured model is used
// directly.
type AnthropicClient struct {
	inner anthropic.Client
	model anthropic.Model
}

// NewAnthropicClient creates an Anthropic-backed completion client. An
// empty model selects a current Sonnet model.
func NewAnthropicClient(apiKey string, model string) *AnthropicClient {
	m := anthropic.Model(model)
	if model == "" {
		m = anthropic.ModelClaudeSonnet4_20250514
	}
	return &AnthropicClient{
		inner: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model: m,
	}
}

// Complete implements Completer.
func (c *AnthropicClient) Complete(ctx context.Context, system, user string, p Params) (string, error) {
	maxTokens := int64(p.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 1024
	}

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}
	if p.TopP > 0 {
		params.TopP = anthropic.Float(p.TopP)
	}

	resp, err := c.inner.Messages.New(ctx, params)
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", &RemoteError{Status: apierr.StatusCode, Message: apierr.Error()}
		}
		return "", &RemoteError{Message: err.Error()}
	}

	var result string
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			result += variant.Text
		}
	}
	if result == "" {
		return "", &RemoteError{Message: "no text content in response"}
	}

	return result, nil
}
