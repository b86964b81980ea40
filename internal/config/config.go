// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lmoreno/resume-wizard/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Language string `json:"language,omitempty"` // "en" or "es"

	// Layout
	LeftColumnWidth float64 `json:"left_column_width,omitempty"` // mm, shaded column
	Margin          float64 `json:"margin,omitempty"`            // mm, page margin

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Gemini model name
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ChromePath  string `json:"chrome_path,omitempty"`  // Headless Chrome binary

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Language != "" && !types.Language(c.Language).Valid() {
		return fmt.Errorf("config error: unsupported language %q", c.Language)
	}

	if c.LeftColumnWidth < 0 {
		return fmt.Errorf("config error: 'left_column_width' must be non-negative")
	}
	if c.Margin < 0 {
		return fmt.Errorf("config error: 'margin' must be non-negative")
	}
	// A margin outside the supported band produces unusable columns.
	if c.Margin != 0 && (c.Margin < 10 || c.Margin > 15) {
		return fmt.Errorf("config error: 'margin' must be between 10 and 15 mm")
	}
	if c.LeftColumnWidth != 0 && c.Margin != 0 && c.LeftColumnWidth <= 2*c.Margin {
		return fmt.Errorf("config error: 'left_column_width' leaves no room for content")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}
