package engine

import "testing"

func TestRecommend(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"analysis", "Analyze the performance of this query", TechTreeOfThought},
		{"comparison", "Compare PostgreSQL and MySQL for this workload", TechTreeOfThought},
		{"trade-offs", "What are the trade-offs of microservices?", TechTreeOfThought},
		{"creative", "Write a creative story about a lighthouse keeper", TechPerspectiveTaking},
		{"brainstorm", "Brainstorm names for a coffee shop", TechPerspectiveTaking},
		{"explanation", "Explain how garbage collection works", TechSocraticMethod},
		{"teaching", "Teach me the basics of statistics", TechSocraticMethod},
		{"examples", "Give me an example response in this format", TechFewShot},
		{"templates", "I need a template for a cover letter", TechFewShot},
		{"problem solving", "Solve this scheduling problem", TechChainOfThought},
		{"debugging", "Debug why the tests are flaky", TechChainOfThought},
		{"no keywords", "Hello there", TechRoleBased},
		{"case-insensitive", "ANALYZE THIS DATASET", TechTreeOfThought},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommend(tt.text); got != tt.want {
				t.Errorf("Recommend(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Analysis keywords outrank creative ones: the category order is the
// tie-break policy.
func TestRecommendTieBreak(t *testing.T) {
	got := Recommend("Analyze this story for pacing issues")
	if got != TechTreeOfThought {
		t.Errorf("Recommend() = %q, want %q when analysis and creative keywords both match", got, TechTreeOfThought)
	}
}

func TestRecommendReturnsCatalogKey(t *testing.T) {
	inputs := []string{
		"Analyze the logs", "imagine a city", "explain recursion",
		"sample output please", "fix the build", "plain request",
	}
	for _, text := range inputs {
		if key := Recommend(text); !KnownTechnique(key) {
			t.Errorf("Recommend(%q) = %q, not in catalog", text, key)
		}
	}
}
