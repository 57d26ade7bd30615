package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the config lookup at an empty temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvThemeFile, "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configDir := filepath.Join(dir, "charla")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddComment != "a" {
		t.Errorf("Default AddComment key = %s, want a", defaults.AddComment)
	}
	if defaults.ViewComment != "space" {
		t.Errorf("Default ViewComment key = %q, want space", defaults.ViewComment)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.API.Timeout, DefaultTimeout)
	}
	if cfg.UI.SuccessDuration != 1500*time.Millisecond {
		t.Errorf("SuccessDuration = %v, want 1.5s", cfg.UI.SuccessDuration)
	}
	if cfg.UI.HighlightDuration != 600*time.Millisecond {
		t.Errorf("HighlightDuration = %v, want 600ms", cfg.UI.HighlightDuration)
	}
	if cfg.UI.GetDeleteDelay() != 200*time.Millisecond {
		t.Errorf("DeleteDelay = %v, want 200ms", cfg.UI.GetDeleteDelay())
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected accent to have default value")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `api:
  base_url: http://comments.internal:8080
  timeout: 3s
ui:
  success_duration: 2s
  delete_delay: 0s
  default_author: asha
key_mappings:
  quit: "x"
  add_comment: "n"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.API.BaseURL != "http://comments.internal:8080" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.API.Timeout)
	}
	if cfg.UI.SuccessDuration != 2*time.Second {
		t.Errorf("SuccessDuration = %v, want 2s", cfg.UI.SuccessDuration)
	}
	if cfg.UI.GetDeleteDelay() != 0 {
		t.Errorf("DeleteDelay = %v, want 0 (explicitly disabled)", cfg.UI.GetDeleteDelay())
	}
	if cfg.UI.DefaultAuthor != "asha" {
		t.Errorf("DefaultAuthor = %s, want asha", cfg.UI.DefaultAuthor)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddComment != "n" {
		t.Errorf("Loaded AddComment key = %s, want n", cfg.KeyMappings.AddComment)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditComment != "e" {
		t.Errorf("Loaded EditComment key = %s, want e (default)", cfg.KeyMappings.EditComment)
	}
	if cfg.UI.HighlightDuration != DefaultHighlightDuration {
		t.Errorf("HighlightDuration = %v, want default", cfg.UI.HighlightDuration)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "api: [unclosed")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with invalid YAML should fail")
	}
}

func TestEnvBaseURLOverridesFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "api:\n  base_url: http://from-file:1\n")
	t.Setenv(EnvBaseURL, "http://from-env:2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "http://from-env:2" {
		t.Errorf("BaseURL = %s, want env override", cfg.API.BaseURL)
	}
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestMonochromePreset(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "theme:\n  preset: monochrome\n  title: \"#123456\"\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	mono := MonochromeColorScheme()
	if cfg.ColorScheme.Accent != mono.Accent {
		t.Errorf("Accent = %s, want monochrome %s", cfg.ColorScheme.Accent, mono.Accent)
	}
	if cfg.ColorScheme.Title != "#123456" {
		t.Errorf("Title = %s, want custom override", cfg.ColorScheme.Title)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := isolate(t)

	cfg := Default()
	cfg.KeyMappings.Quit = "x"
	cfg.API.BaseURL = "http://saved:9"
	disabled := time.Duration(0)
	cfg.UI.DeleteDelay = &disabled

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "charla", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.API.BaseURL != "http://saved:9" {
		t.Errorf("Reloaded BaseURL = %s", cfg2.API.BaseURL)
	}
	if cfg2.UI.GetDeleteDelay() != 0 {
		t.Errorf("Reloaded DeleteDelay = %v, want 0", cfg2.UI.GetDeleteDelay())
	}
	if cfg2.API.Timeout != DefaultTimeout {
		t.Errorf("Reloaded Timeout = %v, want %v", cfg2.API.Timeout, DefaultTimeout)
	}
}
