// Package config handles configuration loading and management for
// promptforge. It supports XDG config paths, project-level overrides,
// and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for promptforge.
type Config struct {
	Provider  ProviderConfig  `mapstructure:"provider"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	Limits    LimitsConfig    `mapstructure:"limits"`
	Store     StoreConfig     `mapstructure:"store"`
}

// ProviderConfig selects and configures the remote completion provider.
type ProviderConfig struct {
	// Name is "openrouter" (default) or "anthropic".
	Name string `mapstructure:"name"`
	// APIKey authenticates against the OpenRouter-compatible endpoint.
	APIKey string `mapstructure:"api_key"`
	// BaseURL overrides the endpoint base, mainly for tests.
	BaseURL string `mapstructure:"base_url"`
}

// AnthropicConfig holds settings for the Anthropic provider backend.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// DefaultsConfig holds default values for optimization calls.
type DefaultsConfig struct {
	// Technique is the technique key used when none is given;
	// empty means "recommend one from the input text".
	Technique string `mapstructure:"technique"`
	// TargetModel is the friendly model name optimized prompts target.
	TargetModel string `mapstructure:"target_model"`
	// User is the identity that scopes saved prompts and versions.
	User string `mapstructure:"user"`
	// Temperature is the default sampling temperature.
	Temperature float64 `mapstructure:"temperature"`
	// MaxTokens is the default completion cap.
	MaxTokens int `mapstructure:"max_tokens"`
}

// LimitsConfig throttles outbound optimization calls.
type LimitsConfig struct {
	// MaxRequests is the number of remote calls allowed per window.
	MaxRequests int `mapstructure:"max_requests"`
	// Window is the rate-limit window duration.
	Window time.Duration `mapstructure:"window"`
}

// StoreConfig locates the local version database.
type StoreConfig struct {
	// Path is the SQLite database path; empty selects the XDG default.
	Path string `mapstructure:"path"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables. Precedence (highest to lowest):
// 1. Environment variables (OPENROUTER_API_KEY, ANTHROPIC_API_KEY)
// 2. Project config (.promptforge.yaml in current directory or parent)
// 3. User config (~/.config/promptforge/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("provider.api_key", "OPENROUTER_API_KEY")
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Provider.APIKey = expandEnv(cfg.Provider.APIKey)
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Provider.APIKey = expandEnv(cfg.Provider.APIKey)
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// Save writes the configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("provider.name", cfg.Provider.Name)
	v.Set("provider.api_key", cfg.Provider.APIKey)
	v.Set("provider.base_url", cfg.Provider.BaseURL)
	v.Set("anthropic.api_key", cfg.Anthropic.APIKey)
	v.Set("anthropic.model", cfg.Anthropic.Model)
	v.Set("defaults.technique", cfg.Defaults.Technique)
	v.Set("defaults.target_model", cfg.Defaults.TargetModel)
	v.Set("defaults.user", cfg.Defaults.User)
	v.Set("defaults.temperature", cfg.Defaults.Temperature)
	v.Set("defaults.max_tokens", cfg.Defaults.MaxTokens)
	v.Set("limits.max_requests", cfg.Limits.MaxRequests)
	v.Set("limits.window", cfg.Limits.Window.String())
	v.Set("store.path", cfg.Store.Path)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if
// it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("provider.name", "openrouter")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.base_url", "")

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")

	v.SetDefault("defaults.technique", "")
	v.SetDefault("defaults.target_model", "")
	v.SetDefault("defaults.user", "local")
	v.SetDefault("defaults.temperature", 0.7)
	v.SetDefault("defaults.max_tokens", 1024)

	v.SetDefault("limits.max_requests", 10)
	v.SetDefault("limits.window", "60s")

	v.SetDefault("store.path", "")
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{Name: "openrouter"},
		Defaults: DefaultsConfig{
			User:        "local",
			Temperature: 0.7,
			MaxTokens:   1024,
		},
		Limits: LimitsConfig{
			MaxRequests: 10,
			Window:      60 * time.Second,
		},
	}
}

// getUserConfigDir returns the XDG config directory for promptforge.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "promptforge")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "promptforge")
	}
	return filepath.Join(home, ".config", "promptforge")
}

// findProjectConfig searches for .promptforge.yaml in the current
// directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".promptforge.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}
