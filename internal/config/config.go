// Package config provides configuration management for bibstr.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/bibstr/pkg/bibstr"
)

// Config holds the bibstr configuration.
type Config struct {
	Macros               *bibstr.MacroTable `yaml:"macros,omitempty"`
	CaseInsensitive      bool               `yaml:"case_insensitive,omitempty"`
	DiacriticInsensitive bool               `yaml:"diacritic_insensitive,omitempty"`
	Strict               bool               `yaml:"strict,omitempty"`
	OutputFormat         string             `yaml:"output_format,omitempty"`
}

var validOutputFormats = map[string]bool{"": true, "table": true, "json": true, "plain": true}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output_format %q: must be table, json or plain", c.OutputFormat)
	}
	if c.Macros == nil {
		return nil
	}
	for _, key := range c.Macros.Keys() {
		if !bibstr.ValidMacroKey(key) {
			return fmt.Errorf("invalid macro key %q", key)
		}
	}
	return nil
}

// MacroTable returns the configured macros, creating an empty table if none are set.
func (c *Config) MacroTable() *bibstr.MacroTable {
	if c.Macros == nil {
		c.Macros = &bibstr.MacroTable{}
	}
	return c.Macros
}

// Options returns the comparison options selected by the configuration.
func (c *Config) Options() bibstr.Options {
	var opts bibstr.Options
	if c.CaseInsensitive {
		opts |= bibstr.CaseInsensitive
	}
	if c.DiacriticInsensitive {
		opts |= bibstr.DiacriticInsensitive
	}
	return opts
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() error {
	var errs []error
	setBool := func(name string, dst *bool) {
		v := os.Getenv(name)
		if v == "" {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		*dst = b
	}

	setBool("BIBSTR_CASE_INSENSITIVE", &c.CaseInsensitive)
	setBool("BIBSTR_DIACRITIC_INSENSITIVE", &c.DiacriticInsensitive)
	setBool("BIBSTR_STRICT", &c.Strict)
	if output := os.Getenv("BIBSTR_OUTPUT"); output != "" {
		c.OutputFormat = output
	}

	return errors.Join(errs...)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bibstr", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bibstr", "config.yml")
	}

	return filepath.Join(home, ".config", "bibstr", "config.yml")
}

// ResolvePath returns path, or the default path when path is empty.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	return DefaultConfigPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadOrEmpty reads the configuration file at path. A missing file yields
// an empty configuration; a file that exists but cannot be parsed is an error.
func LoadOrEmpty(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return &Config{}, nil
	}
	return cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. Commands that write the file back should use LoadOrEmpty so
// that environment overrides are not persisted.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := LoadOrEmpty(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}
