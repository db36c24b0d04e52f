// Package config loads pdf2excel configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "pdf2excel.yaml"

// Config holds all pdf2excel configuration.
type Config struct {
	// Mode is the row acceptance mode: lenient or strict.
	Mode string `yaml:"mode"`
	// Workers bounds concurrent row processing (0 = number of CPUs).
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Table   TableConfig   `yaml:"table"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // xlsx, json
	Pretty bool   `yaml:"pretty"`
	Sheet  string `yaml:"sheet"`
}

// TableConfig configures table-region detection.
type TableConfig struct {
	DensityMin float64 `yaml:"density_min"`
	MinTokens  int     `yaml:"min_tokens"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Mode:    "lenient",
		Workers: 0,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "xlsx",
			Sheet:  "Dimensions",
		},
		Table: TableConfig{
			DensityMin: 0.3,
			MinTokens:  3,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if mode := os.Getenv("PDF2EXCEL_MODE"); mode != "" {
		c.Mode = mode
	}
	if workers := os.Getenv("PDF2EXCEL_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid PDF2EXCEL_WORKERS %q: %w", workers, err)
		}
		c.Workers = n
	}
	if level := os.Getenv("PDF2EXCEL_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "lenient", "strict":
	default:
		return fmt.Errorf("invalid mode: %s (must be lenient or strict)", c.Mode)
	}
	switch strings.ToLower(c.Output.Format) {
	case "xlsx", "json":
	default:
		return fmt.Errorf("invalid output format: %s (must be xlsx or json)", c.Output.Format)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	if c.Table.MinTokens < 0 {
		return fmt.Errorf("invalid table.min_tokens: %d", c.Table.MinTokens)
	}
	if c.Table.DensityMin < 0 || c.Table.DensityMin > 1 {
		return fmt.Errorf("invalid table.density_min: %v (must be within 0 and 1)", c.Table.DensityMin)
	}
	return nil
}
