package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/engine"
	"github.com/promptforge/promptforge/pkg/models"
)

var (
	optimizeTechnique   string
	optimizeModel       string
	optimizeTone        string
	optimizeStyle       string
	optimizeComplexity  string
	optimizeDomain      string
	optimizeTemperature float64
	optimizeMaxTokens   int
	optimizeVariants    int
	optimizeSaveTitle   string
	optimizeFile        string
	optimizeWatch       bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [prompt text]",
	Short: "Optimize a prompt with a prompt-engineering technique",
	Long: `Optimize a prompt using a named technique.

The prompt text can be given as an argument, read from a file with --file,
or piped on stdin. Without --technique, a technique is recommended from
the prompt text itself.

When an API key is configured the optimization runs remotely; otherwise
(or when the remote call fails) a local template rendering is produced.

Examples:
  promptforge optimize "summarize this meeting transcript"
  promptforge optimize --technique chain-of-thought --model gpt-4 "solve ..."
  promptforge optimize --file prompt.txt --watch
  promptforge optimize --variants 2 "compare these two databases"
  promptforge optimize --save "Meeting summarizer" "summarize ..."`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeTechnique, "technique", "t", "", "Technique key (see 'promptforge techniques')")
	optimizeCmd.Flags().StringVarP(&optimizeModel, "model", "m", "", "Target model the optimized prompt is for (gpt-4, claude, gemini, ...)")
	optimizeCmd.Flags().StringVar(&optimizeTone, "tone", "", "Tone hint (e.g. formal)")
	optimizeCmd.Flags().StringVar(&optimizeStyle, "style", "", "Style hint (e.g. concise)")
	optimizeCmd.Flags().StringVar(&optimizeComplexity, "complexity", "", "Complexity hint (e.g. beginner, expert)")
	optimizeCmd.Flags().StringVar(&optimizeDomain, "domain", "", "Subject-matter domain hint")
	optimizeCmd.Flags().Float64Var(&optimizeTemperature, "temperature", 0, "Sampling temperature for the remote call")
	optimizeCmd.Flags().IntVar(&optimizeMaxTokens, "max-tokens", 0, "Completion token cap for the remote call")
	optimizeCmd.Flags().IntVar(&optimizeVariants, "variants", 1, "Number of variants to generate (1 or 2)")
	optimizeCmd.Flags().StringVar(&optimizeSaveTitle, "save", "", "Save the result as a new prompt with this title")
	optimizeCmd.Flags().StringVarP(&optimizeFile, "file", "f", "", "Read the prompt text from a file")
	optimizeCmd.Flags().BoolVarP(&optimizeWatch, "watch", "w", false, "Watch --file and re-optimize on change")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if optimizeWatch {
		if optimizeFile == "" {
			return fmt.Errorf("--watch requires --file")
		}
		return watchAndOptimize(cfg)
	}

	text, err := readInput(args, optimizeFile)
	if err != nil {
		return err
	}

	return optimizeOnce(cfg, text)
}

func optimizeOnce(cfg *config.Config, text string) error {
	eng := newEngine(cfg)

	technique := optimizeTechnique
	if technique == "" {
		technique = cfg.Defaults.Technique
	}
	if technique == "" {
		technique = engine.Recommend(text)
		fmt.Printf("Technique: %s (recommended)\n\n", technique)
	} else {
		if !engine.KnownTechnique(technique) {
			return fmt.Errorf("unknown technique %q: run 'promptforge techniques' for the catalog", technique)
		}
		fmt.Printf("Technique: %s\n\n", technique)
	}

	targetModel := optimizeModel
	if targetModel == "" {
		targetModel = cfg.Defaults.TargetModel
	}

	req := models.OptimizeRequest{
		Text:        text,
		Technique:   technique,
		TargetModel: targetModel,
		Config: models.OptimizeConfig{
			Temperature: pickFloat(optimizeTemperature, cfg.Defaults.Temperature),
			MaxTokens:   pickInt(optimizeMaxTokens, cfg.Defaults.MaxTokens),
			Style:       optimizeStyle,
			Tone:        optimizeTone,
			Complexity:  optimizeComplexity,
			Domain:      optimizeDomain,
		},
	}

	ctx := cmdContext()

	if optimizeVariants > 1 {
		results := eng.GenerateVariants(ctx, req, optimizeVariants)
		for i, res := range results {
			printResultHeader(fmt.Sprintf("Variant %d", i+1), res.Source)
			fmt.Println(res.Text)
			fmt.Println()
		}
		return nil
	}

	res := eng.Generate(ctx, req)
	printResultHeader("Optimized prompt", res.Source)
	fmt.Println(res.Text)
	fmt.Printf("\n~%d tokens\n", engine.EstimateTokens(res.Text))

	if optimizeSaveTitle != "" {
		return saveResult(cfg, optimizeSaveTitle, res.Text, technique)
	}

	return nil
}

// watchAndOptimize re-optimizes the file on every write until interrupted.
func watchAndOptimize(cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save,
	// which drops a watch set on the file itself.
	dir := filepath.Dir(optimizeFile)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(optimizeFile)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", optimizeFile, err)
	}

	runFromFile := func() {
		data, err := os.ReadFile(optimizeFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", optimizeFile, err)
			return
		}
		text := strings.TrimRight(string(data), "\n")
		if text == "" {
			return
		}
		if err := optimizeOnce(cfg, text); err != nil {
			fmt.Fprintf(os.Stderr, "optimize: %v\n", err)
		}
	}

	fmt.Printf("Watching %s (ctrl-c to stop)\n\n", optimizeFile)
	runFromFile()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fmt.Printf("--- %s changed ---\n\n", optimizeFile)
				runFromFile()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-sigs:
			fmt.Println("\nStopped watching.")
			return nil
		}
	}
}

// saveResult stores the optimized text as version 1 of a new prompt.
func saveResult(cfg *config.Config, title, content, technique string) error {
	db, mgr, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	promptID := uuid.New().String()
	v, err := mgr.CreateVersion(currentUser(cfg), promptID, title, content,
		fmt.Sprintf("Optimized with %s", technique), "")
	if err != nil {
		return fmt.Errorf("save prompt: %w", err)
	}

	fmt.Printf("\n%s Saved as prompt %s (version %d)\n", color.GreenString("✓"), promptID, v.VersionNumber)
	return nil
}

func printResultHeader(label string, source models.ResultSource) {
	sourceNote := color.GreenString("remote")
	if source == models.SourceFallback {
		sourceNote = color.YellowString("local fallback")
	}
	fmt.Printf("%s (%s):\n", label, sourceNote)
}

func pickFloat(flag, def float64) float64 {
	if flag != 0 {
		return flag
	}
	return def
}

func pickInt(flag, def int) int {
	if flag != 0 {
		return flag
	}
	return def
}
