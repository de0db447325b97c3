package engine

import (
	"fmt"
	"strings"
)

// fallbackFunc writes a locally generated optimized prompt for one
// technique. Fallbacks mirror the structure the remote path would
// produce but are fully self-contained.
type fallbackFunc func(b *strings.Builder, text string)

var fallbackTemplates = map[string]fallbackFunc{
	TechChainOfThought:    chainOfThoughtFallback,
	TechTreeOfThought:     treeOfThoughtFallback,
	TechFewShot:           fewShotFallback,
	TechSocraticMethod:    socraticFallback,
	TechPerspectiveTaking: perspectiveFallback,
	TechRoleBased:         roleBasedFallback,
	TechStepBack:          stepBackFallback,
	TechSelfConsistency:   selfConsistencyFallback,
}

// Fallback generates a technique-flavored optimized prompt locally,
// without any remote call. It never returns an empty string.
func Fallback(text, techniqueKey, targetModel string) string {
	var b strings.Builder

	tmpl, ok := fallbackTemplates[techniqueKey]
	if !ok {
		tmpl = genericFallback
	}
	tmpl(&b, text)

	if targetModel != "" {
		fmt.Fprintf(&b, "\nOptimize your response for %s.\n", targetModel)
	}

	return strings.TrimSpace(b.String()) + "\n"
}

func chainOfThoughtFallback(b *strings.Builder, text string) {
	b.WriteString("You are an expert assistant. Work through the following task step by step, showing your reasoning before the final answer.\n\nTask: ")
	b.WriteString(text)
	b.WriteString(`

Approach:
1. Restate the task in your own words.
2. Break it into smaller sub-problems.
3. Solve each sub-problem in order, showing intermediate results.
4. Combine the results and state your final answer clearly.
`)
}

func treeOfThoughtFallback(b *strings.Builder, text string) {
	b.WriteString("You are an expert analyst. Explore the following task through three distinct approaches before deciding.\n\nTask: ")
	b.WriteString(text)
	b.WriteString(`

Branch A - the conventional approach: describe it and evaluate its trade-offs.
Branch B - an alternative approach: describe it and evaluate its trade-offs.
Branch C - an unconventional approach: describe it and evaluate its trade-offs.

Synthesis: compare the branches and recommend the strongest path, borrowing elements from the others where they help.
`)
}

func fewShotFallback(b *strings.Builder, text string) {
	b.WriteString("You are an expert assistant. Follow the pattern of the examples when completing the task.\n\nExample 1: a short input followed by a well-structured, complete response.\nExample 2: a more detailed input followed by a response in the same format.\nExample 3: an edge-case input followed by a response that handles it gracefully.\n\nNow, in the same format:\n\nTask: ")
	b.WriteString(text)
	b.WriteString("\n")
}

func socraticFallback(b *strings.Builder, text string) {
	b.WriteString("You are a patient teacher using the Socratic method. Guide the reader to understanding rather than handing them the answer.\n\nTopic: ")
	b.WriteString(text)
	b.WriteString(`

Lead with a question that surfaces what the reader already knows, then build on each answer with a follow-up question. After each question, supply the insight it was designed to reveal. Close with a summary of the understanding reached.
`)
}

func perspectiveFallback(b *strings.Builder, text string) {
	b.WriteString("You are a well-rounded advisor. Consider the following from several viewpoints before concluding.\n\nTask: ")
	b.WriteString(text)
	b.WriteString(`

Address the task from three distinct perspectives relevant to it (for example: a practitioner, a skeptic, and an end user). Give each its own section, then close with a synthesis of where the perspectives agree and where they diverge.
`)
}

func roleBasedFallback(b *strings.Builder, text string) {
	b.WriteString("You are a domain expert with years of hands-on experience in the subject below. Apply the standards a senior practitioner would hold this work to.\n\nTask: ")
	b.WriteString(text)
	b.WriteString(`

Respond with the rigor of an expert: be precise, justify your choices, and flag anything a less experienced reader might get wrong.
`)
}

func stepBackFallback(b *strings.Builder, text string) {
	b.WriteString("You are an expert assistant. Before answering, step back and identify the general principles behind the task.\n\nTask: ")
	b.WriteString(text)
	b.WriteString(`

First: state the broader concepts or principles this task depends on.
Then: apply those principles to the specific question and give your answer.
`)
}

func selfConsistencyFallback(b *strings.Builder, text string) {
	b.WriteString("You are an expert assistant. Answer the following by solving it independently three times.\n\nTask: ")
	b.WriteString(text)
	b.WriteString(`

Produce three independent attempts, each reasoning from scratch. Compare the attempts, note any disagreement, and present the answer they converge on as your final response.
`)
}

func genericFallback(b *strings.Builder, text string) {
	b.WriteString("You are a knowledgeable assistant.\n\nContext: the request below needs a thorough, well-organized response.\n\nTask: ")
	b.WriteString(text)
	b.WriteString(`

Constraints: be accurate, be specific, and state assumptions explicitly.
Output format: a structured response with clear sections or steps where they aid readability.
`)
}
