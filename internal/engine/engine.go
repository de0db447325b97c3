package engine

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/pkg/models"
)

// systemPreamble is the fixed system message for every remote call.
const systemPreamble = "You are an expert prompt engineer. You rewrite prompts to be clearer, " +
	"more specific, and more effective for large language models. " +
	"Return ONLY the optimized prompt text, with no commentary, preamble, or explanation."

// minAdequateLength is the shortest sanitized completion accepted as a
// real optimization; anything shorter is treated as a failed response.
const minAdequateLength = 50

// refusalMarkers flag completions where the model declined instead of
// optimizing. Matched case-insensitively.
var refusalMarkers = []string{"i cannot", "i'm sorry"}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1024
	defaultTopP        = 0.9
	defaultRepPenalty  = 1.1
)

// Engine orchestrates prompt optimization: rate limiting, instruction
// building, the remote call, response cleanup, and local fallback.
type Engine struct {
	completer  api.Completer
	limiter    *RateLimiter
	pickOpener func() string
}

// New creates an Engine. A nil completer means no remote credentials
// are configured; every call then produces a local fallback.
func New(completer api.Completer, limiter *RateLimiter) *Engine {
	return &Engine{
		completer:  completer,
		limiter:    limiter,
		pickOpener: RandomOpener,
	}
}

// SetOpenerFunc replaces the opener chooser. Tests inject a fixed
// opener to make built instructions deterministic.
func (e *Engine) SetOpenerFunc(f func() string) {
	e.pickOpener = f
}

// Generate optimizes req.Text. It never fails and never returns an
// empty result: every remote failure mode (rate limited, missing
// credentials, transport or HTTP error, malformed body, inadequate or
// refused completion, canceled context) is absorbed into a locally
// generated fallback. Failure causes are logged, not returned; the
// result only distinguishes remote from fallback.
func (e *Engine) Generate(ctx context.Context, req models.OptimizeRequest) models.OptimizeResult {
	if e.limiter != nil && !e.limiter.Allow() {
		log.Printf("[engine] rate limit reached, generating locally")
		return e.fallbackResult(req)
	}

	if e.completer == nil {
		log.Printf("[engine] no remote credentials configured, generating locally")
		return e.fallbackResult(req)
	}

	if e.limiter != nil {
		e.limiter.Record()
	}

	instruction := BuildInstruction(req.Text, req.Technique, req.TargetModel, req.Config, e.pickOpener())

	raw, err := e.completer.Complete(ctx, systemPreamble, instruction, e.params(req))
	if err != nil {
		log.Printf("[engine] remote optimization failed, generating locally: %v", err)
		return e.fallbackResult(req)
	}

	text := Clean(raw)
	if inadequate(text) {
		log.Printf("[engine] remote response inadequate (%d chars), generating locally", len(text))
		return e.fallbackResult(req)
	}

	return models.OptimizeResult{Text: text, Source: models.SourceRemote}
}

// GenerateVariants produces up to two optimization variants
// concurrently, for A/B comparison. Each variant is an independent
// Generate call with its own opener and counts against the rate limit
// separately.
func (e *Engine) GenerateVariants(ctx context.Context, req models.OptimizeRequest, n int) []models.OptimizeResult {
	if n < 1 {
		n = 1
	}
	if n > 2 {
		n = 2
	}

	results := make([]models.OptimizeResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Generate(ctx, req)
		}(i)
	}
	wg.Wait()

	return results
}

func (e *Engine) params(req models.OptimizeRequest) api.Params {
	p := api.Params{
		Model:             req.TargetModel,
		Temperature:       req.Config.Temperature,
		MaxTokens:         req.Config.MaxTokens,
		TopP:              defaultTopP,
		RepetitionPenalty: defaultRepPenalty,
	}
	if p.Temperature == 0 {
		p.Temperature = defaultTemperature
	}
	if p.MaxTokens == 0 {
		p.MaxTokens = defaultMaxTokens
	}
	return p
}

func (e *Engine) fallbackResult(req models.OptimizeRequest) models.OptimizeResult {
	return models.OptimizeResult{
		Text:   Fallback(req.Text, req.Technique, req.TargetModel),
		Source: models.SourceFallback,
	}
}

// inadequate reports whether a sanitized completion is too short or
// contains a refusal instead of an optimized prompt.
func inadequate(text string) bool {
	if len(text) < minAdequateLength {
		return true
	}
	lower := strings.ToLower(text)
	for _, marker := range refusalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
