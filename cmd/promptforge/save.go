package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	saveTitle   string
	saveFile    string
	savePrompt  string
	saveMessage string
)

var saveCmd = &cobra.Command{
	Use:   "save [prompt text]",
	Short: "Save a prompt version",
	Long: `Save prompt text as a new version.

Without --prompt, a new prompt is created and the text becomes version 1.
With --prompt, the text is appended as the next version of that prompt
and becomes the current version.

Examples:
  promptforge save --title "Code reviewer" "You are a senior engineer..."
  promptforge save --prompt 3f2a... --title "Code reviewer" --message "tighter scope" --file prompt.txt`,
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVar(&saveTitle, "title", "", "Version title (required)")
	saveCmd.Flags().StringVarP(&saveFile, "file", "f", "", "Read the prompt text from a file")
	saveCmd.Flags().StringVar(&savePrompt, "prompt", "", "Existing prompt ID to append a version to")
	saveCmd.Flags().StringVarP(&saveMessage, "message", "m", "", "Change description for this version")
	saveCmd.MarkFlagRequired("title")
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	content, err := readInput(args, saveFile)
	if err != nil {
		return err
	}

	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	promptID := savePrompt
	created := false
	if promptID == "" {
		promptID = uuid.New().String()
		created = true
	}

	v, err := mgr.CreateVersion(currentUser(cfg), promptID, saveTitle, content, saveMessage, "")
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("%s Created prompt %s\n", color.GreenString("✓"), promptID)
	}
	fmt.Printf("%s Saved version %d (%s)\n", color.GreenString("✓"), v.VersionNumber, v.ID)
	return nil
}
