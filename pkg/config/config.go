// Package config provides configuration management for the stock dashboard
package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Backend server
	ServerURL string `yaml:"server_url,omitempty"`

	// Query defaults
	DefaultSymbol string `yaml:"default_symbol,omitempty"`
	Period        string `yaml:"period,omitempty"`
	Interval      string `yaml:"interval,omitempty"`
	AnalysisType  string `yaml:"analysis_type,omitempty"`

	// Session settings
	HistorySize int `yaml:"history_size,omitempty"`

	// Logging
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ServerURL:     "http://127.0.0.1:12000",
		DefaultSymbol: "AAPL",
		Period:        "1mo",
		Interval:      "1d",
		AnalysisType:  "quick",
		HistorySize:   50,
	}
}

// Load reads a YAML config file over the defaults. A missing file is not
// an error: the defaults stand.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ValidationError describes one invalid or suspicious field
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no errors
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate checks the configuration for problems
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{
		Errors:   make([]ValidationError, 0),
		Warnings: make([]ValidationError, 0),
	}

	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server_url",
			Value:   c.ServerURL,
			Message: "must be an absolute http(s) URL",
		})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server_url",
			Value:   c.ServerURL,
			Message: "scheme must be http or https",
		})
	}

	validPeriods := map[string]bool{
		"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
		"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
	}
	if c.Period != "" && !validPeriods[c.Period] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "period",
			Value:   c.Period,
			Message: "unknown period, the backend may reject it",
		})
	}

	validIntervals := map[string]bool{
		"1m": true, "2m": true, "5m": true, "15m": true, "30m": true,
		"60m": true, "90m": true, "1h": true, "1d": true, "5d": true,
		"1wk": true, "1mo": true, "3mo": true,
	}
	if c.Interval != "" && !validIntervals[c.Interval] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "interval",
			Value:   c.Interval,
			Message: "unknown interval, the backend may reject it",
		})
	}

	if c.HistorySize < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "history_size",
			Value:   c.HistorySize,
			Message: "must be non-negative",
		})
	}

	return result
}
