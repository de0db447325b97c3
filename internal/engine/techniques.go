// Package engine implements the prompt-optimization template engine:
// instruction building, technique recommendation, quality scoring,
// response cleanup, rate limiting, and local fallback generation.
package engine

import (
	"fmt"
	"strings"

	"github.com/promptforge/promptforge/pkg/models"
)

// Technique keys. New techniques are added by appending a catalog entry
// and registering an instruction template and a fallback template under
// the same key.
const (
	TechRoleBased         = "role-based"
	TechFewShot           = "few-shot"
	TechChainOfThought    = "chain-of-thought"
	TechSocraticMethod    = "socratic-method"
	TechStepBack          = "step-back"
	TechTreeOfThought     = "tree-of-thought"
	TechPerspectiveTaking = "perspective-taking"
	TechSelfConsistency   = "self-consistency"
)

// Catalog is the static technique catalog, loaded at process start and
// never mutated at runtime.
var Catalog = []models.Technique{
	{
		Key:         TechRoleBased,
		Name:        "Role-Based",
		Description: "Assigns the model an expert persona suited to the task.",
		Tier:        models.TierSimple,
	},
	{
		Key:         TechFewShot,
		Name:        "Few-Shot Examples",
		Description: "Anchors the expected output with worked examples.",
		Tier:        models.TierSimple,
	},
	{
		Key:         TechChainOfThought,
		Name:        "Chain-of-Thought",
		Description: "Asks the model to reason through numbered steps before answering.",
		Tier:        models.TierIntermediate,
	},
	{
		Key:         TechSocraticMethod,
		Name:        "Socratic Method",
		Description: "Teaches through guiding questions instead of direct answers.",
		Tier:        models.TierIntermediate,
	},
	{
		Key:         TechStepBack,
		Name:        "Step-Back",
		Description: "Derives general principles before tackling the specific task.",
		Tier:        models.TierIntermediate,
	},
	{
		Key:         TechTreeOfThought,
		Name:        "Tree-of-Thought",
		Description: "Explores several solution branches and synthesizes the best one.",
		Tier:        models.TierAdvanced,
	},
	{
		Key:         TechPerspectiveTaking,
		Name:        "Perspective-Taking",
		Description: "Approaches the task from multiple distinct viewpoints.",
		Tier:        models.TierAdvanced,
	},
	{
		Key:         TechSelfConsistency,
		Name:        "Self-Consistency",
		Description: "Solves the task independently several times and reconciles the answers.",
		Tier:        models.TierAdvanced,
	},
}

// LookupTechnique returns the catalog entry for a key, or nil.
func LookupTechnique(key string) *models.Technique {
	for i := range Catalog {
		if Catalog[i].Key == key {
			return &Catalog[i]
		}
	}
	return nil
}

// KnownTechnique reports whether key names a cataloged technique.
func KnownTechnique(key string) bool {
	return LookupTechnique(key) != nil
}

// instructionFunc writes the technique-specific body of an optimization
// instruction. The original text must appear verbatim in the output.
type instructionFunc func(b *strings.Builder, text string)

// instructionTemplates maps technique keys to their instruction bodies.
var instructionTemplates = map[string]instructionFunc{
	TechChainOfThought:    chainOfThoughtInstruction,
	TechTreeOfThought:     treeOfThoughtInstruction,
	TechFewShot:           fewShotInstruction,
	TechSocraticMethod:    socraticInstruction,
	TechPerspectiveTaking: perspectiveInstruction,
	TechRoleBased:         roleBasedInstruction,
	TechStepBack:          stepBackInstruction,
	TechSelfConsistency:   selfConsistencyInstruction,
}

func writeOriginal(b *strings.Builder, text string) {
	b.WriteString("\nOriginal prompt:\n\"\"\"\n")
	b.WriteString(text)
	b.WriteString("\n\"\"\"\n")
}

func chainOfThoughtInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below so the answering model reasons through the task before committing to an answer. The optimized prompt must:
1. Restate the task precisely.
2. Instruct the model to work through the problem in numbered steps.
3. Require each intermediate result to be shown.
4. End by asking for a clearly marked final answer.
`)
	writeOriginal(b, text)
}

func treeOfThoughtInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below so the answering model explores the task as a tree of approaches. The optimized prompt must ask for three named branches - each a distinct approach with its own reasoning and trade-offs - followed by a synthesis section that combines the strongest elements of the branches into a final recommendation.
`)
	writeOriginal(b, text)
}

func fewShotInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below as a few-shot prompt. The optimized prompt must include three short input/output examples demonstrating the expected format and quality, followed by the actual task presented in the same structure as the examples.
`)
	writeOriginal(b, text)
}

func socraticInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below so the answering model teaches through questions. The optimized prompt must instruct the model to lead the reader from first principles to understanding with a sequence of guiding questions, pausing after each to supply the insight the question was designed to surface.
`)
	writeOriginal(b, text)
}

func perspectiveInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below so the answering model examines the task from multiple viewpoints. The optimized prompt must name at least three distinct perspectives relevant to the task, require a section for each, and close with a balanced synthesis of where the perspectives agree and diverge.
`)
	writeOriginal(b, text)
}

func roleBasedInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below as a role-based prompt. The optimized prompt must open by assigning the model a specific expert persona appropriate to the task, state the task from that persona's point of view, and list the standards the persona would hold the output to.
`)
	writeOriginal(b, text)
}

func stepBackInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below using step-back prompting. The optimized prompt must first ask the model to identify the general principles or concepts behind the task, then apply those principles to the specific question.
`)
	writeOriginal(b, text)
}

func selfConsistencyInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below for self-consistency. The optimized prompt must ask the model to solve the task independently three times, compare the attempts, and present the answer the attempts converge on, noting any disagreement.
`)
	writeOriginal(b, text)
}

// genericInstruction is the fallback for unknown or empty technique
// keys: a plain role + context + constraints + output-format rewrite.
func genericInstruction(b *strings.Builder, text string) {
	b.WriteString(`Rewrite the prompt below into a well-structured prompt with four parts: a role for the model, the context it needs, the constraints it must respect, and the expected output format.
`)
	writeOriginal(b, text)
}

// TechniqueSummary renders a one-line catalog listing for CLI output.
func TechniqueSummary(t models.Technique) string {
	return fmt.Sprintf("%-20s %-13s %s", t.Key, t.Tier, t.Description)
}
