package engine

import "regexp"

// FactorScore is one quality dimension with human-readable feedback.
type FactorScore struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// QualityFactors holds the four scored dimensions.
type QualityFactors struct {
	Clarity      FactorScore `json:"clarity"`
	Specificity  FactorScore `json:"specificity"`
	Structure    FactorScore `json:"structure"`
	Completeness FactorScore `json:"completeness"`
}

// QualityScore is the overall heuristic quality of a prompt. Score is
// the arithmetic mean of the four factor scores.
type QualityScore struct {
	Score   int            `json:"score"`
	Factors QualityFactors `json:"factors"`
}

var (
	roleRe       = regexp.MustCompile(`(?i)\b(you are|act as|as an? |imagine you|assume the role)\b`)
	contextRe    = regexp.MustCompile(`(?i)\b(context|background|given|scenario|situation)\b`)
	actionVerbRe = regexp.MustCompile(`(?i)\b(write|list|describe|explain|compare|summarize|create|generate|analyze)\b`)
	constraintRe = regexp.MustCompile(`(?i)\b(must|should|exactly|at least|at most|no more than|limit|within)\b`)
	quantityRe   = regexp.MustCompile(`\d`)
	numberedRe   = regexp.MustCompile(`(?m)^\s*\d+[.)]\s`)
	bulletRe     = regexp.MustCompile(`(?m)^\s*[-*•]\s`)
	sectionRe    = regexp.MustCompile(`\n\s*\n`)
	formatRe     = regexp.MustCompile(`(?i)\b(format|json|markdown|table|bullet|list|paragraph|section)\b`)
)

// Score computes the heuristic quality of a prompt. It is deterministic
// and performs no I/O.
func Score(text string) QualityScore {
	clarity := scoreClarity(text)
	specificity := scoreSpecificity(text)
	structure := scoreStructure(text)
	completeness := scoreCompleteness(text)

	overall := (clarity.Score + specificity.Score + structure.Score + completeness.Score) / 4

	return QualityScore{
		Score: overall,
		Factors: QualityFactors{
			Clarity:      clarity,
			Specificity:  specificity,
			Structure:    structure,
			Completeness: completeness,
		},
	}
}

func scoreClarity(text string) FactorScore {
	// Baseline 25 plus 25 each for a role indicator, a context
	// indicator, and non-trivial length.
	score := 25
	feedback := "Clear enough to act on."

	if roleRe.MatchString(text) {
		score += 25
	} else {
		feedback = "Assign the model a role (\"You are a ...\") to anchor the response."
	}
	if contextRe.MatchString(text) {
		score += 25
	} else if score == 75 {
		feedback = "Add background or context so the model knows the situation."
	}
	if len(text) > 50 {
		score += 25
	} else if score <= 50 {
		feedback = "The prompt is very short; add detail about what you want."
	}

	return FactorScore{Score: score, Feedback: feedback}
}

func scoreSpecificity(text string) FactorScore {
	score := 0
	feedback := "Specific about the task and its boundaries."

	if actionVerbRe.MatchString(text) {
		score += 30
	} else {
		feedback = "Name the action you want (write, list, compare, ...)."
	}
	if constraintRe.MatchString(text) {
		score += 30
	} else if score == 30 {
		feedback = "State constraints (length, scope, requirements) explicitly."
	}
	if quantityRe.MatchString(text) {
		score += 40
	} else if score == 60 {
		feedback = "Quantify where possible (how many, how long, which range)."
	}

	return FactorScore{Score: score, Feedback: feedback}
}

func scoreStructure(text string) FactorScore {
	score := 0
	feedback := "Well structured."

	if numberedRe.MatchString(text) {
		score += 40
	} else {
		feedback = "Numbered steps make multi-part prompts easier to follow."
	}
	if bulletRe.MatchString(text) {
		score += 30
	} else if score == 40 {
		feedback = "Bullet points help separate independent requirements."
	}
	if sectionRe.MatchString(text) {
		score += 30
	} else if score == 70 {
		feedback = "Blank lines between sections improve readability."
	}

	return FactorScore{Score: score, Feedback: feedback}
}

func scoreCompleteness(text string) FactorScore {
	score := 0
	feedback := "Covers role, task, format, and detail."

	if roleRe.MatchString(text) {
		score += 25
	} else {
		feedback = "Missing a role for the model."
	}
	if actionVerbRe.MatchString(text) {
		score += 25
	} else if score == 25 {
		feedback = "Missing a concrete task."
	}
	if formatRe.MatchString(text) {
		score += 25
	} else if score == 50 {
		feedback = "Missing an expected output format."
	}
	if len(text) > 100 {
		score += 25
	} else if score == 75 {
		feedback = "Could use more detail about expectations."
	}

	return FactorScore{Score: score, Feedback: feedback}
}
