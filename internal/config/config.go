// Package config handles viewer configuration loading and management.
package config

import "github.com/Faultbox/meshview/internal/viewer"

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
	MSAASamples int    `yaml:"msaa_samples"` // multisample buffer size requested at startup
}

// ControlsConfig holds input step sizes and key bindings.
type ControlsConfig struct {
	TranslationSpeed float32 `yaml:"translation_speed"`
	RotationSpeed    float32 `yaml:"rotation_speed"`
	LightStep        float32 `yaml:"light_step"`
	ColorStep        float32 `yaml:"color_step"`
	TransparencyStep float32 `yaml:"transparency_step"`

	// Bindings overrides default keys: action name -> SDL key name.
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	controls := viewer.DefaultControls()
	return &Config{
		Window: WindowConfig{
			Title:       "meshview",
			Width:       1280,
			Height:      720,
			Fullscreen:  false,
			VSync:       true,
			MSAASamples: 16,
		},
		Controls: ControlsConfig{
			TranslationSpeed: controls.TranslationSpeed,
			RotationSpeed:    controls.RotationSpeed,
			LightStep:        controls.LightStep,
			ColorStep:        controls.ColorStep,
			TransparencyStep: controls.TransparencyStep,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ViewerControls converts the control settings for the viewer core.
func (c ControlsConfig) ViewerControls() viewer.Controls {
	return viewer.Controls{
		TranslationSpeed: c.TranslationSpeed,
		RotationSpeed:    c.RotationSpeed,
		LightStep:        c.LightStep,
		ColorStep:        c.ColorStep,
		TransparencyStep: c.TransparencyStep,
	}
}
