// Package config loads and saves the charla YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvBaseURL overrides api.base_url
	EnvBaseURL = "CHARLA_BASE_URL"

	// EnvThemeFile points at a YAML file whose theme section is merged over the config
	EnvThemeFile = "CHARLA_THEME_FILE"

	DefaultBaseURL           = "http://127.0.0.1:5000"
	DefaultTimeout           = 10 * time.Second
	DefaultSuccessDuration   = 1500 * time.Millisecond
	DefaultHighlightDuration = 600 * time.Millisecond
	DefaultDeleteDelay       = 200 * time.Millisecond
)

// Config represents the application configuration
type Config struct {
	API         APIConfig   `yaml:"api"`
	UI          UIConfig    `yaml:"ui"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// APIConfig locates the comment service
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// UIConfig holds timings and defaults for the interactive views
type UIConfig struct {
	SuccessDuration   time.Duration `yaml:"success_duration"`
	HighlightDuration time.Duration `yaml:"highlight_duration"`

	// DeleteDelay is a pointer so that an explicit 0 (delete immediately)
	// survives applyDefaults.
	DeleteDelay *time.Duration `yaml:"delete_delay,omitempty"`

	// DefaultAuthor pre-fills the author field; empty uses the OS username
	DefaultAuthor string `yaml:"default_author"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// GetDeleteDelay returns the configured delete delay or the default
func (u UIConfig) GetDeleteDelay() time.Duration {
	if u.DeleteDelay == nil {
		return DefaultDeleteDelay
	}
	return max(*u.DeleteDelay, 0)
}

// loadThemeFile loads and merges theme from CHARLA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme, true)
	}
}

// loadEnv applies environment overrides
func loadEnv(config *Config) {
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		config.API.BaseURL = baseURL
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return finish(&Config{}), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return finish(&Config{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return finish(&config), nil
}

// finish layers the theme file, environment and defaults over a parsed config
func finish(config *Config) *Config {
	loadThemeFile(config)
	loadEnv(config)
	config.applyDefaults()
	return config
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location of the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "charla", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "charla", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.UI.SuccessDuration <= 0 {
		c.UI.SuccessDuration = DefaultSuccessDuration
	}
	if c.UI.HighlightDuration <= 0 {
		c.UI.HighlightDuration = DefaultHighlightDuration
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
