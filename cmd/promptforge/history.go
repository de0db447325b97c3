package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/pkg/models"
)

var historyCmd = &cobra.Command{
	Use:   "history [prompt-id]",
	Short: "Show a prompt's version history",
	Long: `Display the version history of a saved prompt, newest first.

Without a prompt ID, lists all saved prompts instead.

Examples:
  promptforge history
  promptforge history 3f2a...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 0 {
		prompts, err := db.ListPrompts(currentUser(cfg))
		if err != nil {
			return fmt.Errorf("list prompts: %w", err)
		}
		if len(prompts) == 0 {
			fmt.Println("No saved prompts. Run 'promptforge save --title ...' to create one.")
			return nil
		}
		fmt.Println("Saved prompts:")
		for _, p := range prompts {
			fmt.Printf("  %s  %s\n", p.ID, p.Title)
		}
		return nil
	}

	history, err := mgr.GetHistory(currentUser(cfg), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Versions: %d\n", history.TotalVersions)
	if history.CurrentVersion != nil {
		fmt.Printf("Current:  v%d\n", history.CurrentVersion.VersionNumber)
	}
	fmt.Println()

	for _, v := range history.Versions {
		printVersionLine(v)
	}

	return nil
}

func printVersionLine(v *models.PromptVersion) {
	marker := " "
	if v.IsCurrent {
		marker = color.GreenString("*")
	}
	line := fmt.Sprintf("%s v%-3d %s  %s  (%s ago)", marker, v.VersionNumber, v.ID, v.Title, formatAge(v.CreatedAt))
	fmt.Println(line)
	if v.ChangeDescription != "" {
		fmt.Printf("        %s\n", v.ChangeDescription)
	}
}

// formatAge formats time elapsed since t in a human-readable way.
func formatAge(t time.Time) string {
	d := time.Since(t)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours())/24)
}
