package models

// OptimizeConfig carries the optional knobs for a single optimization.
// Zero values mean "not set" and are omitted from the built instruction.
type OptimizeConfig struct {
	// Temperature is the sampling temperature for the remote call.
	Temperature float64
	// MaxTokens caps the remote completion length.
	MaxTokens int
	// Style is a free-form writing style hint (e.g. "concise").
	Style string
	// Tone is a free-form tone hint (e.g. "formal").
	Tone string
	// Complexity is the desired complexity of the optimized prompt
	// (e.g. "beginner", "expert").
	Complexity string
	// Domain is the subject-matter domain (e.g. "legal", "backend").
	Domain string
}

// OptimizeRequest describes one optimization call. It is ephemeral and
// never persisted.
type OptimizeRequest struct {
	// Text is the original prompt text to optimize.
	Text string
	// Technique is the technique key, or empty to use the generic template.
	Technique string
	// TargetModel is the friendly name of the model the optimized prompt
	// will eventually be used with, or empty.
	TargetModel string
	// Config holds the optional generation knobs.
	Config OptimizeConfig
}

// ResultSource identifies how an optimization result was produced.
type ResultSource string

const (
	// SourceRemote means the text came from the remote completion endpoint.
	SourceRemote ResultSource = "remote"
	// SourceFallback means the text was generated locally.
	SourceFallback ResultSource = "fallback"
)

// OptimizeResult is the outcome of an optimization call. Text is never
// empty: when the remote path fails for any reason the engine substitutes
// a locally generated fallback.
type OptimizeResult struct {
	Text   string
	Source ResultSource
}
