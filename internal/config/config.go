package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the persisted pager preferences.
type Config struct {
	// TabAlignment places the tab bar: "top", "bottom", or "hidden".
	TabAlignment string `json:"tab_alignment"`
	// Bounce allows panning past the first and last page.
	Bounce bool `json:"bounce"`
	// InitialPage is the page shown on startup, zero-based.
	InitialPage int `json:"initial_page"`
	// AsciiIcons forces the ASCII icon set even on capable terminals.
	AsciiIcons bool `json:"ascii_icons"`
	// MouseEnabled turns on tab bar click handling.
	MouseEnabled bool `json:"mouse_enabled"`
}

// DefaultConfig returns the default pager configuration.
func DefaultConfig() *Config {
	return &Config{
		TabAlignment: "top",
		Bounce:       false,
		InitialPage:  0,
		AsciiIcons:   false,
		MouseEnabled: true,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tab-pager", "config.json"), nil
}

// Load reads the configuration from disk, filling missing fields with
// defaults. A missing file is not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TabAlignment == "" {
		cfg.TabAlignment = DefaultConfig().TabAlignment
	}

	return &cfg, nil
}

// Save writes the configuration to disk
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
