package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRoot       = "."
	DefaultPanelWidth = 20
	DefaultPanelStep  = 5
	DefaultPanelMin   = 10
	DefaultPanelMax   = 90
)

// Config holds user settings loaded from config.yaml
type Config struct {
	PanelWidth int `yaml:"panel_width"`
	PanelStep  int `yaml:"panel_step"`
	PanelMin   int `yaml:"panel_min"`
	PanelMax   int `yaml:"panel_max"`

	// Session restores open directories and panel width per root; off by default
	Session bool `yaml:"session"`

	// Editor is the command line for external editing; empty uses $VISUAL/$EDITOR
	Editor string `yaml:"editor,omitempty"`

	// Keys overrides bindings per context: context -> key -> action
	Keys map[string]map[string]string `yaml:"keys,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		PanelWidth: DefaultPanelWidth,
		PanelStep:  DefaultPanelStep,
		PanelMin:   DefaultPanelMin,
		PanelMax:   DefaultPanelMax,
	}
}

// Root returns the directory to browse from GROVE_ROOT env var,
// falling back to DefaultRoot.
func Root() string {
	if env := os.Getenv("GROVE_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}

// DebugLogPath returns the log file from GROVE_DEBUG, or "" when logging is off
func DebugLogPath() string {
	return os.Getenv("GROVE_DEBUG")
}

// Path returns the config file from GROVE_CONFIG env var,
// falling back to $XDG_CONFIG_HOME/grove/config.yaml.
func Path() string {
	if env := os.Getenv("GROVE_CONFIG"); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "grove", "config.yaml")
}

// Load reads the config file at path over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the panel bounds
func (c *Config) Validate() error {
	if c.PanelMin < 1 || c.PanelMax > 99 {
		return fmt.Errorf("panel bounds must lie within [1,99], got [%d,%d]", c.PanelMin, c.PanelMax)
	}
	if c.PanelMin > c.PanelMax {
		return fmt.Errorf("panel_min %d exceeds panel_max %d", c.PanelMin, c.PanelMax)
	}
	if c.PanelWidth < c.PanelMin || c.PanelWidth > c.PanelMax {
		return fmt.Errorf("panel_width %d outside [%d,%d]", c.PanelWidth, c.PanelMin, c.PanelMax)
	}
	if c.PanelStep < 1 {
		return fmt.Errorf("panel_step must be positive, got %d", c.PanelStep)
	}
	return nil
}
