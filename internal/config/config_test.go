package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.FOV != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Graphics.FOV)
	}

	if cfg.Render.MinimapMode != MinimapModeCells {
		t.Errorf("expected minimap mode %q, got %q", MinimapModeCells, cfg.Render.MinimapMode)
	}
	if cfg.Render.MinimapWeight != 0.42 {
		t.Errorf("expected minimap weight 0.42, got %v", cfg.Render.MinimapWeight)
	}
	if !cfg.Render.Bloom {
		t.Error("expected bloom to be on by default")
	}
	if cfg.Render.Visibility != 0 {
		t.Errorf("expected visibility 0 (derived from FOV), got %v", cfg.Render.Visibility)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
render:
  minimap_mode: depth
  minimap_weight: 0.5
  bloom: false
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Render.MinimapMode != MinimapModeDepth {
		t.Errorf("expected minimap mode depth, got %q", cfg.Render.MinimapMode)
	}
	if cfg.Render.Bloom {
		t.Error("expected bloom false")
	}
	// Unset fields keep their defaults.
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to keep default true")
	}
	if cfg.Graphics.FOV != 60 {
		t.Errorf("expected fov to keep default 60, got %v", cfg.Graphics.FOV)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, true},
		{"narrow fov", func(c *Config) { c.Graphics.FOV = 10 }, true},
		{"bad minimap mode", func(c *Config) { c.Render.MinimapMode = "radar" }, true},
		{"negative visibility", func(c *Config) { c.Render.Visibility = -1 }, true},
		{"explicit visibility", func(c *Config) { c.Render.Visibility = 12 }, false},
		{"audio volume out of range", func(c *Config) { c.Audio.Volume = 1.5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("round-trip width = %d, want 800", loaded.Graphics.Width)
	}
}
