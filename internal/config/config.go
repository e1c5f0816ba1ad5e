// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags after merging.
type Config struct {
	// Paths
	Dataset string `json:"dataset,omitempty"`  // Explicit scraped CSV path
	DataDir string `json:"data_dir,omitempty"` // Directory searched for the latest scraped CSV
	Profile string `json:"profile,omitempty"`  // Advisor profile text file
	OutDir  string `json:"out_dir,omitempty"`  // Where drafts and run summaries are written
	StateDir string `json:"state_dir,omitempty"` // Feedback ledger and variant batch storage

	// Generation constraints
	MinWords    int     `json:"min_words,omitempty"`
	MaxWords    int     `json:"max_words,omitempty"`
	Tone        string  `json:"tone,omitempty"`
	MaxAttempts int     `json:"max_attempts,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	Variants    int     `json:"variants,omitempty"` // Batch size for variant runs

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // Optional PostgreSQL ledger backend
	Workers     int    `json:"workers,omitempty"`      // Concurrent company pipelines
	Verbose     bool   `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
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

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.MinWords < 0 || c.MaxWords < 0 {
		return fmt.Errorf("config error: word bounds must be non-negative")
	}
	if c.MinWords > 0 && c.MaxWords > 0 && c.MinWords >= c.MaxWords {
		return fmt.Errorf("config error: 'min_words' must be below 'max_words'")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.MaxAttempts < 0 || c.MaxAttempts > 5 {
		return fmt.Errorf("config error: 'max_attempts' must be between 1 and 5")
	}
	if c.Variants < 0 {
		return fmt.Errorf("config error: 'variants' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.Dataset != "" {
		if _, err := os.Stat(c.Dataset); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.Dataset)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Dataset == "" {
		result.Dataset = defaults.Dataset
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.Tone == "" {
		result.Tone = defaults.Tone
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MinWords == 0 {
		result.MinWords = defaults.MinWords
	}
	if result.MaxWords == 0 {
		result.MaxWords = defaults.MaxWords
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.Variants == 0 {
		result.Variants = defaults.Variants
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
