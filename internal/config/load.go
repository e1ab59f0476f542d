package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over discovery.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "TorusGL")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "TorusGL")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "torusgl")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "torusgl")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) validate() error {
	if c.Graphics.Width < 1 || c.Graphics.Height < 1 {
		return fmt.Errorf("invalid resolution %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FOV < 30 || c.Graphics.FOV > 115 {
		return fmt.Errorf("fov %.1f out of range [30, 115]", c.Graphics.FOV)
	}
	switch c.Render.MinimapMode {
	case MinimapModeDepth, MinimapModeCells:
	default:
		return fmt.Errorf("unknown minimap mode %q", c.Render.MinimapMode)
	}
	if c.Render.Visibility < 0 {
		return fmt.Errorf("visibility must be non-negative, got %v", c.Render.Visibility)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v out of range [0, 1]", c.Audio.Volume)
	}
	return nil
}
