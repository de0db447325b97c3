package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/store"
)

var (
	initForce       bool
	initWithProject bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize promptforge configuration",
	Long: `Set up promptforge for first use.

This command:
  - Creates the user config file with commented defaults
  - Creates the local version database
  - Optionally creates a project-level .promptforge.yaml template

Examples:
  promptforge init
  promptforge init --force         # Rewrite the config file
  promptforge init --with-project  # Also create .promptforge.yaml here`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Rewrite the config file even if it exists")
	initCmd.Flags().BoolVar(&initWithProject, "with-project", false, "Create a .promptforge.yaml template in the current directory")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := config.GetUserConfigPath()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		printStatus("✓", fmt.Sprintf("Config exists at %s (use --force to rewrite)", configPath), color.FgGreen)
	} else {
		if err := writeExampleConfig(configPath); err != nil {
			printStatus("✗", "Could not write config", color.FgRed)
			return err
		}
		printStatus("✓", fmt.Sprintf("Wrote %s", configPath), color.FgGreen)
	}

	if os.Getenv("OPENROUTER_API_KEY") == "" && os.Getenv("ANTHROPIC_API_KEY") == "" {
		printStatus("⚠", "No API key set; optimizations will use local fallback templates", color.FgYellow)
	} else {
		printStatus("✓", "API key found in environment", color.FgGreen)
	}

	db, err := store.Open(store.DefaultDBPath())
	if err != nil {
		printStatus("✗", "Could not create version database", color.FgRed)
		return err
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		printStatus("✗", "Could not migrate version database", color.FgRed)
		return err
	}
	printStatus("✓", fmt.Sprintf("Version database ready at %s", db.Path()), color.FgGreen)

	if initWithProject {
		if err := createProjectConfig(); err != nil {
			return err
		}
		printStatus("✓", "Created .promptforge.yaml template", color.FgGreen)
	}

	fmt.Printf("\n%s promptforge is ready!\n\n", color.GreenString("✓"))
	fmt.Println("Next steps:")
	fmt.Println("  1. Set an API key for remote optimization (optional):")
	fmt.Println("     export OPENROUTER_API_KEY=your-key-here")
	fmt.Println()
	fmt.Println("  2. Optimize a prompt:")
	fmt.Println("     promptforge optimize \"summarize this meeting transcript\"")
	fmt.Println()
	fmt.Println("  3. Learn more:")
	fmt.Println("     promptforge --help")

	return nil
}

// writeExampleConfig renders the default configuration as YAML and
// writes it to path.
func writeExampleConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.Default()
	example := map[string]any{
		"provider": map[string]any{
			"name":    cfg.Provider.Name,
			"api_key": "${OPENROUTER_API_KEY}",
		},
		"defaults": map[string]any{
			"user":        cfg.Defaults.User,
			"temperature": cfg.Defaults.Temperature,
			"max_tokens":  cfg.Defaults.MaxTokens,
		},
		"limits": map[string]any{
			"max_requests": cfg.Limits.MaxRequests,
			"window":       cfg.Limits.Window.String(),
		},
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := "# promptforge configuration\n# Project-specific overrides can be placed in .promptforge.yaml\n\n"
	return os.WriteFile(path, append([]byte(header), data...), 0600)
}

// createProjectConfig creates a .promptforge.yaml template in the
// current directory.
func createProjectConfig() error {
	configPath := ".promptforge.yaml"

	if _, err := os.Stat(configPath); err == nil {
		return nil // Already exists, don't overwrite
	}

	template := `# promptforge project configuration
# This file overrides defaults from ~/.config/promptforge/config.yaml

# defaults:
#   technique: chain-of-thought
#   target_model: gpt-4
#   user: local

# limits:
#   max_requests: 10
#   window: 60s
`

	return os.WriteFile(configPath, []byte(template), 0644)
}

// printStatus prints a status line with color
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}
