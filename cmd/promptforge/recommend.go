package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/engine"
)

var recommendFile string

var recommendCmd = &cobra.Command{
	Use:   "recommend [prompt text]",
	Short: "Recommend a technique for a prompt",
	Long: `Recommend the prompt-engineering technique best suited to a prompt,
based on keywords in the text. Analytical prompts get tree-of-thought,
creative ones perspective-taking, explanatory ones the socratic method,
and so on. With no matching keywords the recommendation is role-based.

Examples:
  promptforge recommend "analyze the trade-offs between SQL and NoSQL"
  promptforge recommend --file prompt.txt`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendFile, "file", "f", "", "Read the prompt text from a file")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, recommendFile)
	if err != nil {
		return err
	}

	key := engine.Recommend(text)
	t := engine.LookupTechnique(key)
	if t == nil {
		// The recommender only returns catalog keys.
		return fmt.Errorf("recommended technique %q not in catalog", key)
	}

	fmt.Printf("%s (%s)\n", t.Name, t.Tier)
	fmt.Printf("  %s\n", t.Description)
	fmt.Printf("\nUse it with:\n  promptforge optimize --technique %s \"...\"\n", t.Key)

	return nil
}
