package main

import (
	"os"

	"github.com/spf13/cobra"
)

var userFlag string

var rootCmd = &cobra.Command{
	Use:   "promptforge",
	Short: "Prompt optimization and version management",
	Long: `Promptforge rewrites rough prompts into well-structured ones and keeps
a branchable version history of every prompt you save.

Optimization applies a named prompt-engineering technique (chain-of-thought,
few-shot, tree-of-thought, ...) via a remote model when credentials are
configured, and falls back to a local template rendering otherwise. Saved
prompts live in a local SQLite database with full version history, diffs,
and branching.

Core capabilities:
- Optimizes prompts with eight selectable techniques
- Recommends a technique from the prompt text itself
- Scores prompt quality across clarity, specificity, structure, completeness
- Tracks versions with promote, delete, branch, and line-level diff
- Interactive history browser`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "User identity that scopes saved prompts (default from config)")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(techniquesCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(branchCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
