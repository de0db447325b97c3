package main

import (
	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <prompt-id>",
	Short: "Browse a prompt's history interactively",
	Long: `Open an interactive browser for a prompt's version history: a version
list on the left and the diff of the selected version against the
current version on the right. Versions can be promoted and deleted
from inside the browser.

Example:
  promptforge browse 3f2a...`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return tui.Run(mgr, currentUser(cfg), args[0])
}
