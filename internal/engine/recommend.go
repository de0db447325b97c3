package engine

import "strings"

// keywordCategory maps a set of trigger keywords to a technique. The
// categories are checked in order and the first match wins, so the
// order below is the tie-break policy and must not be rearranged.
type keywordCategory struct {
	technique string
	keywords  []string
}

var recommendCategories = []keywordCategory{
	{
		// Analysis and comparison work benefits from branching.
		technique: TechTreeOfThought,
		keywords: []string{
			"analyze", "analysis", "compare", "comparison", "evaluate",
			"assess", "pros and cons", "trade-off", "tradeoff", "weigh",
		},
	},
	{
		// Creative work benefits from multiple viewpoints.
		technique: TechPerspectiveTaking,
		keywords: []string{
			"creative", "imagine", "brainstorm", "story", "invent",
			"original idea", "novel",
		},
	},
	{
		// Learning and explanation requests suit guided questioning.
		technique: TechSocraticMethod,
		keywords: []string{
			"explain", "teach", "learn", "understand", "how does",
			"how do", "what is", "why does",
		},
	},
	{
		// Format and example requests suit few-shot anchoring.
		technique: TechFewShot,
		keywords: []string{
			"example", "sample", "template", "format", "style",
		},
	},
	{
		// Problem solving benefits from explicit steps.
		technique: TechChainOfThought,
		keywords: []string{
			"solve", "problem", "calculate", "debug", "fix",
			"step", "plan", "build",
		},
	},
}

// Recommend picks a technique for the given text using keyword
// heuristics. Text with no category match gets role-based prompting.
func Recommend(text string) string {
	lower := strings.ToLower(text)
	for _, cat := range recommendCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.technique
			}
		}
	}
	return TechRoleBased
}
