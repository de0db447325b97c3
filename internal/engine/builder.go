package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/promptforge/promptforge/pkg/models"
)

// Openers are the role-opener phrases an instruction can start with.
// One is chosen per call so repeated optimizations of the same text do
// not produce identical boilerplate.
var Openers = []string{
	"You are a world-class prompt engineer.",
	"You are a senior prompt engineer reviewing a draft prompt.",
	"Act as an expert in prompt design.",
	"You are a specialist in writing effective AI prompts.",
	"Take the role of a prompt optimization expert.",
	"You are an experienced AI interaction designer.",
	"You are a prompt engineering consultant.",
	"Act as a careful editor of AI prompts.",
	"You are an expert at making prompts precise and effective.",
	"You are a language model whisperer with years of practice.",
	"Assume the role of a prompt quality reviewer.",
	"You are a professional prompt writer.",
	"You are an AI communication specialist.",
	"Act as a rigorous prompt craftsman.",
	"You are an expert in structuring instructions for language models.",
}

// RandomOpener picks an opener uniformly at random. Callers that need
// deterministic output pass a fixed opener to BuildInstruction instead.
func RandomOpener() string {
	return Openers[rand.Intn(len(Openers))]
}

// BuildInstruction deterministically builds the optimization instruction
// for one technique. It is pure: the only variation between calls with
// the same arguments is the injected opener. The original text always
// appears verbatim in the result.
func BuildInstruction(text, techniqueKey, targetModel string, cfg models.OptimizeConfig, opener string) string {
	var b strings.Builder

	b.WriteString(opener)
	b.WriteString("\n\n")

	tmpl, ok := instructionTemplates[techniqueKey]
	if !ok {
		tmpl = genericInstruction
	}
	tmpl(&b, text)

	appendContext(&b, targetModel, cfg)

	return b.String()
}

// appendContext adds optional context blocks for the target model and
// any configured complexity, domain, tone, or style hints.
func appendContext(b *strings.Builder, targetModel string, cfg models.OptimizeConfig) {
	if targetModel != "" {
		fmt.Fprintf(b, "\nThe optimized prompt will be used with %s; phrase it to suit that model.\n", targetModel)
	}
	if cfg.Complexity != "" {
		fmt.Fprintf(b, "\nTarget a %s level of complexity in the optimized prompt.\n", cfg.Complexity)
	}
	if cfg.Domain != "" {
		fmt.Fprintf(b, "\nThe prompt concerns the %s domain; use its terminology accurately.\n", cfg.Domain)
	}
	if cfg.Tone != "" {
		fmt.Fprintf(b, "\nKeep a %s tone throughout the optimized prompt.\n", cfg.Tone)
	}
	if cfg.Style != "" {
		fmt.Fprintf(b, "\nWrite the optimized prompt in a %s style.\n", cfg.Style)
	}
}
