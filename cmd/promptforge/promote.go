package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var promoteCmd = &cobra.Command{
	Use:   "promote <version-id>",
	Short: "Make a version the current version",
	Long: `Promote a version to be the current version of its prompt. The
previously current version keeps its content and number, it just loses
the current flag.

Example:
  promptforge promote 9b1c...`,
	Args: cobra.ExactArgs(1),
	RunE: runPromote,
}

func runPromote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	v, err := mgr.SetCurrentVersion(currentUser(cfg), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s Version %d of prompt %s is now current\n", color.GreenString("✓"), v.VersionNumber, v.PromptID)
	return nil
}
