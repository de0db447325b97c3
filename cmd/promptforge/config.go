package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify promptforge configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/promptforge/config.yaml
Project-specific overrides can be placed in .promptforge.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	fmt.Printf("provider.name: %s\n", cfg.Provider.Name)
	fmt.Printf("provider.api_key: %s\n", maskKey(cfg.Provider.APIKey))
	fmt.Printf("provider.base_url: %s\n", orNotSet(cfg.Provider.BaseURL))
	fmt.Printf("anthropic.api_key: %s\n", maskKey(cfg.Anthropic.APIKey))
	fmt.Printf("anthropic.model: %s\n", orNotSet(cfg.Anthropic.Model))
	fmt.Printf("defaults.technique: %s\n", orNotSet(cfg.Defaults.Technique))
	fmt.Printf("defaults.target_model: %s\n", orNotSet(cfg.Defaults.TargetModel))
	fmt.Printf("defaults.user: %s\n", cfg.Defaults.User)
	fmt.Printf("defaults.temperature: %g\n", cfg.Defaults.Temperature)
	fmt.Printf("defaults.max_tokens: %d\n", cfg.Defaults.MaxTokens)
	fmt.Printf("limits.max_requests: %d\n", cfg.Limits.MaxRequests)
	fmt.Printf("limits.window: %s\n", cfg.Limits.Window)
	fmt.Printf("store.path: %s\n", orNotSet(cfg.Store.Path))
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	return "****"
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "provider.name":
		return cfg.Provider.Name, nil
	case "provider.api_key":
		return maskKey(cfg.Provider.APIKey), nil
	case "provider.base_url":
		return orNotSet(cfg.Provider.BaseURL), nil
	case "anthropic.api_key":
		return maskKey(cfg.Anthropic.APIKey), nil
	case "anthropic.model":
		return orNotSet(cfg.Anthropic.Model), nil
	case "defaults.technique":
		return orNotSet(cfg.Defaults.Technique), nil
	case "defaults.target_model":
		return orNotSet(cfg.Defaults.TargetModel), nil
	case "defaults.user":
		return cfg.Defaults.User, nil
	case "defaults.temperature":
		return strconv.FormatFloat(cfg.Defaults.Temperature, 'g', -1, 64), nil
	case "defaults.max_tokens":
		return strconv.Itoa(cfg.Defaults.MaxTokens), nil
	case "limits.max_requests":
		return strconv.Itoa(cfg.Limits.MaxRequests), nil
	case "limits.window":
		return cfg.Limits.Window.String(), nil
	case "store.path":
		return orNotSet(cfg.Store.Path), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "provider.name":
		if value != "openrouter" && value != "anthropic" {
			return fmt.Errorf("invalid provider name %q (openrouter or anthropic)", value)
		}
		cfg.Provider.Name = value
	case "provider.api_key":
		cfg.Provider.APIKey = value
	case "provider.base_url":
		cfg.Provider.BaseURL = value
	case "anthropic.api_key":
		cfg.Anthropic.APIKey = value
	case "anthropic.model":
		cfg.Anthropic.Model = value
	case "defaults.technique":
		cfg.Defaults.Technique = value
	case "defaults.target_model":
		cfg.Defaults.TargetModel = value
	case "defaults.user":
		cfg.Defaults.User = value
	case "defaults.temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for temperature: %w", err)
		}
		cfg.Defaults.Temperature = f
	case "defaults.max_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_tokens: %w", err)
		}
		cfg.Defaults.MaxTokens = n
	case "limits.max_requests":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_requests: %w", err)
		}
		cfg.Limits.MaxRequests = n
	case "limits.window":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for window: %w", err)
		}
		cfg.Limits.Window = d
	case "store.path":
		cfg.Store.Path = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
