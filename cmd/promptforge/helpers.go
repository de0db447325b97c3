package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/engine"
	"github.com/promptforge/promptforge/internal/store"
	"github.com/promptforge/promptforge/internal/versions"
)

// cmdContext is the context for one command invocation.
func cmdContext() context.Context {
	return context.Background()
}

// loadConfig loads configuration or fails with a wrapped error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// currentUser resolves the identity that scopes prompt storage:
// --user flag first, then config, then "local".
func currentUser(cfg *config.Config) string {
	if userFlag != "" {
		return userFlag
	}
	if cfg.Defaults.User != "" {
		return cfg.Defaults.User
	}
	return "local"
}

// newEngine builds the optimization engine from config. A missing API
// key yields a nil completer; the engine then generates locally.
func newEngine(cfg *config.Config) *engine.Engine {
	var completer api.Completer
	switch cfg.Provider.Name {
	case "anthropic":
		if cfg.Anthropic.APIKey != "" {
			completer = api.NewAnthropicClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
		}
	default:
		if cfg.Provider.APIKey != "" {
			completer = api.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey)
		}
	}

	limiter := engine.NewRateLimiter(cfg.Limits.MaxRequests, cfg.Limits.Window)
	return engine.New(completer, limiter)
}

// openManager opens the version database and wraps it in a Manager.
// The caller must Close the returned DB.
func openManager(cfg *config.Config) (*store.DB, *versions.Manager, error) {
	path := cfg.Store.Path
	if path == "" {
		path = store.DefaultDBPath()
	}

	db, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, versions.NewManager(db), nil
}

// readInput resolves the prompt text for a command: positional args
// first, then --file, then stdin when piped.
func readInput(args []string, filePath string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filePath, err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	return "", fmt.Errorf("no prompt text given: pass it as an argument, via --file, or on stdin")
}
