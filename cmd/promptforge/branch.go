package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	branchTitle   string
	branchFile    string
	branchMessage string
)

var branchCmd = &cobra.Command{
	Use:   "branch <version-id> [new content]",
	Short: "Branch a new version off an existing one",
	Long: `Create a new version whose parent is the given version. The branch
becomes the current version of the prompt. The parent link records
where the variant came from; deleting the parent later does not
affect the branch.

Examples:
  promptforge branch 9b1c... --title "Formal variant" "You are a..."
  promptforge branch 9b1c... --title "Formal variant" --file prompt.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBranch,
}

func init() {
	branchCmd.Flags().StringVar(&branchTitle, "title", "", "Title for the branched version (required)")
	branchCmd.Flags().StringVarP(&branchFile, "file", "f", "", "Read the new content from a file")
	branchCmd.Flags().StringVarP(&branchMessage, "message", "m", "", "Change description for the branch")
	branchCmd.MarkFlagRequired("title")
}

func runBranch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	content, err := readInput(args[1:], branchFile)
	if err != nil {
		return err
	}

	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	v, err := mgr.BranchFromVersion(currentUser(cfg), args[0], branchTitle, content, branchMessage)
	if err != nil {
		return err
	}

	fmt.Printf("%s Branched version %d (%s) from %s\n", color.GreenString("✓"), v.VersionNumber, v.ID, args[0])
	return nil
}
