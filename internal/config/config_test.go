package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Provider.Name != "openrouter" {
		t.Errorf("expected default provider 'openrouter', got %q", cfg.Provider.Name)
	}

	if cfg.Defaults.User != "local" {
		t.Errorf("expected default user 'local', got %q", cfg.Defaults.User)
	}

	if cfg.Defaults.Temperature != 0.7 {
		t.Errorf("expected default temperature 0.7, got %g", cfg.Defaults.Temperature)
	}

	if cfg.Defaults.MaxTokens != 1024 {
		t.Errorf("expected default max_tokens 1024, got %d", cfg.Defaults.MaxTokens)
	}

	if cfg.Limits.MaxRequests != 10 {
		t.Errorf("expected default max_requests 10, got %d", cfg.Limits.MaxRequests)
	}

	if cfg.Limits.Window != 60*time.Second {
		t.Errorf("expected default window 60s, got %v", cfg.Limits.Window)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `provider:
  name: anthropic
  api_key: test-key
anthropic:
  api_key: other-key
  model: test-model
defaults:
  technique: chain-of-thought
  target_model: gpt-4
  user: alice
  temperature: 0.3
  max_tokens: 256
limits:
  max_requests: 3
  window: 30s
store:
  path: /tmp/test.db
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Provider.Name != "anthropic" {
		t.Errorf("provider.name = %q, want anthropic", cfg.Provider.Name)
	}
	if cfg.Provider.APIKey != "test-key" {
		t.Errorf("provider.api_key = %q, want test-key", cfg.Provider.APIKey)
	}
	if cfg.Anthropic.Model != "test-model" {
		t.Errorf("anthropic.model = %q, want test-model", cfg.Anthropic.Model)
	}
	if cfg.Defaults.Technique != "chain-of-thought" {
		t.Errorf("defaults.technique = %q, want chain-of-thought", cfg.Defaults.Technique)
	}
	if cfg.Defaults.User != "alice" {
		t.Errorf("defaults.user = %q, want alice", cfg.Defaults.User)
	}
	if cfg.Defaults.Temperature != 0.3 {
		t.Errorf("defaults.temperature = %g, want 0.3", cfg.Defaults.Temperature)
	}
	if cfg.Limits.MaxRequests != 3 {
		t.Errorf("limits.max_requests = %d, want 3", cfg.Limits.MaxRequests)
	}
	if cfg.Limits.Window != 30*time.Second {
		t.Errorf("limits.window = %v, want 30s", cfg.Limits.Window)
	}
	if cfg.Store.Path != "/tmp/test.db" {
		t.Errorf("store.path = %q, want /tmp/test.db", cfg.Store.Path)
	}
}

func TestLoadFromPathPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `defaults:
  user: bob
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Defaults.User != "bob" {
		t.Errorf("defaults.user = %q, want bob", cfg.Defaults.User)
	}
	if cfg.Provider.Name != "openrouter" {
		t.Errorf("provider.name = %q, want default openrouter", cfg.Provider.Name)
	}
	if cfg.Defaults.MaxTokens != 1024 {
		t.Errorf("defaults.max_tokens = %d, want default 1024", cfg.Defaults.MaxTokens)
	}
}

func TestLoadFromPathExpandsEnvInAPIKey(t *testing.T) {
	t.Setenv("PROMPTFORGE_TEST_KEY", "expanded-secret")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `provider:
  api_key: ${PROMPTFORGE_TEST_KEY}
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Provider.APIKey != "expanded-secret" {
		t.Errorf("provider.api_key = %q, want env-expanded value", cfg.Provider.APIKey)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadFromPath() on a missing file succeeded, want error")
	}
}
