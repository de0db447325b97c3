package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/pkg/models"
)

var diffCmd = &cobra.Command{
	Use:   "diff <version-id-a> <version-id-b>",
	Short: "Show the line diff between two versions",
	Long: `Show a positional line diff between two versions of a prompt. Lines
are compared by position: a line that changed shows as a removal
followed by an addition on the same line number.

Example:
  promptforge diff 9b1c... 4e7d...`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := mgr.DiffVersions(currentUser(cfg), args[0], args[1])
	if err != nil {
		return err
	}

	added, removed := 0, 0
	for _, e := range entries {
		switch e.Type {
		case models.DiffAdded:
			added++
			color.Green("+%4d %s", e.LineNumber, e.Content)
		case models.DiffRemoved:
			removed++
			color.Red("-%4d %s", e.LineNumber, e.Content)
		default:
			fmt.Printf(" %4d %s\n", e.LineNumber, e.Content)
		}
	}

	fmt.Printf("\n%s, %s\n", color.GreenString("%d added", added), color.RedString("%d removed", removed))
	return nil
}
