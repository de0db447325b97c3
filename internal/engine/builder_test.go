package engine

import (
	"strings"
	"testing"

	"github.com/promptforge/promptforge/pkg/models"
)

func TestBuildInstructionStartsWithOpener(t *testing.T) {
	opener := Openers[0]
	got := BuildInstruction("summarize this", TechChainOfThought, "", models.OptimizeConfig{}, opener)

	if !strings.HasPrefix(got, opener+"\n\n") {
		t.Errorf("instruction does not start with the opener:\n%s", got)
	}
}

func TestBuildInstructionEmbedsOriginalText(t *testing.T) {
	text := "Review this contract for unusual indemnification clauses."
	for _, tech := range Catalog {
		got := BuildInstruction(text, tech.Key, "", models.OptimizeConfig{}, Openers[0])
		if !strings.Contains(got, text) {
			t.Errorf("technique %s: instruction does not embed the original text", tech.Key)
		}
	}
}

func TestBuildInstructionUnknownTechniqueUsesGeneric(t *testing.T) {
	text := "summarize this"
	unknown := BuildInstruction(text, "no-such-technique", "", models.OptimizeConfig{}, Openers[0])
	empty := BuildInstruction(text, "", "", models.OptimizeConfig{}, Openers[0])

	if unknown != empty {
		t.Error("unknown technique and empty technique should build the same generic instruction")
	}
	if !strings.Contains(unknown, text) {
		t.Error("generic instruction does not embed the original text")
	}
}

func TestBuildInstructionContextBlocks(t *testing.T) {
	cfg := models.OptimizeConfig{
		Complexity: "expert",
		Domain:     "maritime law",
		Tone:       "formal",
		Style:      "concise",
	}
	got := BuildInstruction("draft a clause", TechRoleBased, "gpt-4", cfg, Openers[0])

	for _, want := range []string{"gpt-4", "expert", "maritime law", "formal", "concise"} {
		if !strings.Contains(got, want) {
			t.Errorf("instruction missing %q:\n%s", want, got)
		}
	}
}

func TestBuildInstructionOmitsUnsetContext(t *testing.T) {
	got := BuildInstruction("draft a clause", TechRoleBased, "", models.OptimizeConfig{}, Openers[0])

	if strings.Contains(got, "will be used with") {
		t.Error("instruction mentions a target model when none was given")
	}
	if strings.Contains(got, "level of complexity") {
		t.Error("instruction mentions complexity when none was given")
	}
}

func TestBuildInstructionDeterministicWithFixedOpener(t *testing.T) {
	a := BuildInstruction("draft a clause", TechFewShot, "claude", models.OptimizeConfig{Tone: "formal"}, Openers[3])
	b := BuildInstruction("draft a clause", TechFewShot, "claude", models.OptimizeConfig{Tone: "formal"}, Openers[3])
	if a != b {
		t.Error("BuildInstruction is not deterministic with a fixed opener")
	}
}

func TestRandomOpenerIsFromCatalog(t *testing.T) {
	for i := 0; i < 50; i++ {
		opener := RandomOpener()
		found := false
		for _, o := range Openers {
			if o == opener {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("RandomOpener() = %q, not in Openers", opener)
		}
	}
}
