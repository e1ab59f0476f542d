// Package config handles client configuration loading and management.
package config

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	World    WorldConfig    `yaml:"world"`
	Control  ControlConfig  `yaml:"control"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float64 `yaml:"fov"` // horizontal field of view, degrees
}

// RenderConfig holds tuning for the render pipeline.
type RenderConfig struct {
	Background    [3]float32 `yaml:"background"`     // scene clear color
	Visibility    float32    `yaml:"visibility"`     // draw distance override; 0 derives it from FOV
	MinimapMode   string     `yaml:"minimap_mode"`   // "depth" or "cells"
	MinimapWeight float32    `yaml:"minimap_weight"` // overlay blend factor in the composite
	Bloom         bool       `yaml:"bloom"`
	Highlight     bool       `yaml:"highlight"` // saturation highlight filter
}

// WorldConfig holds world generation settings.
type WorldConfig struct {
	Seed int64 `yaml:"seed"`
}

// ControlConfig holds input tuning.
type ControlConfig struct {
	MouseSpeed float64 `yaml:"mouse_speed"` // radians per count at FOV 60
	ZoomSpeed  float64 `yaml:"zoom_speed"`  // scroll steps per zoom range
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MinimapModeDepth colors the orientation overlay by normalized depth through
// the Turbo-like colormap; MinimapModeCells tints it by periodic cell phase.
const (
	MinimapModeDepth = "depth"
	MinimapModeCells = "cells"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        60,
		},
		Render: RenderConfig{
			Background:    [3]float32{0, 0, 0},
			Visibility:    0,
			MinimapMode:   MinimapModeCells,
			MinimapWeight: 0.42,
			Bloom:         true,
			Highlight:     true,
		},
		World: WorldConfig{
			Seed: 0,
		},
		Control: ControlConfig{
			MouseSpeed: 1.0 / 800,
			ZoomSpeed:  8,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
