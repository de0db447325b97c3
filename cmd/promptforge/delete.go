package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <version-id>",
	Short: "Delete a non-current version",
	Long: `Delete a version from a prompt's history. The current version cannot
be deleted; promote another version first. Remaining versions keep their
numbers, and deleted numbers are never reused.

Example:
  promptforge delete 9b1c...`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := mgr.DeleteVersion(currentUser(cfg), args[0]); err != nil {
		return err
	}

	fmt.Printf("%s Deleted version %s\n", color.GreenString("✓"), args[0])
	return nil
}
