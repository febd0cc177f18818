// Package config provides configuration loading and validation for the CLI
// and the reference backend.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Client
	BaseURL        string `json:"base_url,omitempty"`        // Backend base URL
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-call ceiling, sized for slow AI endpoints
	SessionPath    string `json:"session_path,omitempty"`    // Session file override
	CacheDir       string `json:"cache_dir,omitempty"`       // Resume list cache directory
	ChromePath     string `json:"chrome_path,omitempty"`     // Chromium binary for PDF export
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information

	// Server
	Port        int    `json:"port,omitempty"`         // Listen port for the serve command
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UploadDir   string `json:"upload_dir,omitempty"`   // Image upload directory
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BaseURL:        "http://localhost:8080",
		TimeoutSeconds: 60,
		Port:           8080,
		UploadDir:      "uploads",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Timeout converts the configured per-call ceiling to a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	// Validate file paths exist (if specified)
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.SessionPath == "" {
		result.SessionPath = defaults.SessionPath
	}
	if result.CacheDir == "" {
		result.CacheDir = defaults.CacheDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills server secrets from the environment. Environment values
// override file values when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
}
