package engine

import (
	"strings"
	"testing"
)

func TestScoreBareGreeting(t *testing.T) {
	got := Score("hi")

	if got.Factors.Clarity.Score != 25 {
		t.Errorf("clarity = %d, want 25", got.Factors.Clarity.Score)
	}
	if got.Factors.Specificity.Score != 0 {
		t.Errorf("specificity = %d, want 0", got.Factors.Specificity.Score)
	}
	if got.Factors.Structure.Score != 0 {
		t.Errorf("structure = %d, want 0", got.Factors.Structure.Score)
	}
	if got.Factors.Completeness.Score != 0 {
		t.Errorf("completeness = %d, want 0", got.Factors.Completeness.Score)
	}
	if got.Score != 6 {
		t.Errorf("overall = %d, want 6", got.Score)
	}
}

func TestScoreFullFeaturedPrompt(t *testing.T) {
	text := "You are a senior engineer. Context: a Go service under review.\n\n" +
		"1. List exactly 3 risks.\n" +
		"- Use markdown format.\n" +
		"Summarize each risk within two sentences."

	got := Score(text)

	if got.Factors.Clarity.Score != 100 {
		t.Errorf("clarity = %d, want 100", got.Factors.Clarity.Score)
	}
	if got.Factors.Specificity.Score != 100 {
		t.Errorf("specificity = %d, want 100", got.Factors.Specificity.Score)
	}
	if got.Factors.Structure.Score != 100 {
		t.Errorf("structure = %d, want 100", got.Factors.Structure.Score)
	}
	if got.Factors.Completeness.Score != 100 {
		t.Errorf("completeness = %d, want 100", got.Factors.Completeness.Score)
	}
	if got.Score != 100 {
		t.Errorf("overall = %d, want 100", got.Score)
	}
}

// Adding structure never lowers the structure score.
func TestScoreStructureMonotonic(t *testing.T) {
	base := "Describe the deployment process for the payments service."
	withSteps := base + "\n1. First step.\n2. Second step."
	withAll := withSteps + "\n- a requirement\n\nFinal section."

	s0 := Score(base).Factors.Structure.Score
	s1 := Score(withSteps).Factors.Structure.Score
	s2 := Score(withAll).Factors.Structure.Score

	if s1 < s0 {
		t.Errorf("structure dropped after adding numbered steps: %d -> %d", s0, s1)
	}
	if s2 < s1 {
		t.Errorf("structure dropped after adding bullets and sections: %d -> %d", s1, s2)
	}
}

func TestScoreDeterministic(t *testing.T) {
	text := "You are a teacher. Explain binary search with 2 examples."
	first := Score(text)
	for i := 0; i < 5; i++ {
		if got := Score(text); got != first {
			t.Fatalf("Score is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"hi",
		"You are an expert. Analyze the data.",
		strings.Repeat("1. Do the thing.\n- Carefully.\n\n", 20),
	}

	for _, text := range inputs {
		got := Score(text)
		all := []int{
			got.Score,
			got.Factors.Clarity.Score,
			got.Factors.Specificity.Score,
			got.Factors.Structure.Score,
			got.Factors.Completeness.Score,
		}
		for _, s := range all {
			if s < 0 || s > 100 {
				t.Errorf("Score(%q) produced out-of-range score %d", text, s)
			}
		}
	}
}

func TestScoreFeedbackNamesMissingRole(t *testing.T) {
	got := Score("summarize the quarterly report focusing on revenue and churn")
	if !strings.Contains(got.Factors.Clarity.Feedback, "role") {
		t.Errorf("clarity feedback = %q, want mention of a missing role", got.Factors.Clarity.Feedback)
	}
}
