package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/engine"
)

var scoreFile string

var scoreCmd = &cobra.Command{
	Use:   "score [prompt text]",
	Short: "Score a prompt's quality",
	Long: `Score a prompt across four quality dimensions: clarity, specificity,
structure, and completeness. Each dimension scores 0-100 and the overall
score is their average. Scoring is deterministic and fully local.

Examples:
  promptforge score "You are a lawyer. Review this contract for risks."
  promptforge score --file prompt.txt`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Read the prompt text from a file")
}

func runScore(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, scoreFile)
	if err != nil {
		return err
	}

	result := engine.Score(text)

	fmt.Printf("Overall: %s\n\n", colorScore(result.Score))
	printFactor("Clarity", result.Factors.Clarity)
	printFactor("Specificity", result.Factors.Specificity)
	printFactor("Structure", result.Factors.Structure)
	printFactor("Completeness", result.Factors.Completeness)

	return nil
}

func printFactor(name string, f engine.FactorScore) {
	fmt.Printf("  %-13s %s  %s\n", name, colorScore(f.Score), f.Feedback)
}

// colorScore renders a 0-100 score green/yellow/red.
func colorScore(score int) string {
	s := fmt.Sprintf("%3d/100", score)
	switch {
	case score >= 80:
		return color.GreenString(s)
	case score >= 50:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}
