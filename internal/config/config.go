// Package config loads tracey settings through viper: defaults, then the
// config file, then TRACEY_* environment variables, then flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete tracey configuration.
type Config struct {
	Highlight HighlightConfig `mapstructure:"highlight"`
	Panel     PanelConfig     `mapstructure:"panel"`
	Generate  GenerateConfig  `mapstructure:"generate"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// HighlightConfig controls how highlighted list items look in the terminal.
type HighlightConfig struct {
	// Color is a lipgloss colour (ANSI number or #hex). A presentation's own
	// hex highlight colour takes precedence.
	Color string `mapstructure:"color"`
}

// PanelConfig controls the floating control panel of the terminal player.
type PanelConfig struct {
	// Enabled shows the panel even when the presentation does not ask for it.
	Enabled bool `mapstructure:"enabled"`
	// FloatX and FloatY offset the panel from the top-left corner, in cells.
	FloatX int `mapstructure:"float_x"`
	FloatY int `mapstructure:"float_y"`
	// RefreshMs is the panel position refresh period.
	RefreshMs int `mapstructure:"refresh_ms"`
}

// RefreshInterval returns RefreshMs as a duration.
func (p PanelConfig) RefreshInterval() time.Duration {
	return time.Duration(p.RefreshMs) * time.Millisecond
}

// GenerateConfig controls the generated HTML page.
type GenerateConfig struct {
	ScriptSrc string `mapstructure:"script_src"`
	Object    string `mapstructure:"object"`
	DisplayID string `mapstructure:"display_id"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File receives logs. Empty means stderr, except for the terminal player
	// which then logs to tracey.log in the config directory.
	File string `mapstructure:"file"`
}

// TelemetryConfig controls OTLP export. Export only happens when
// OTEL_EXPORTER_OTLP_ENDPOINT is set.
type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Highlight: HighlightConfig{Color: "205"},
		Panel: PanelConfig{
			FloatX:    2,
			FloatY:    1,
			RefreshMs: 250,
		},
		Generate: GenerateConfig{
			ScriptSrc: "TraceyText.js",
			Object:    "mainTraceyTextObj",
			DisplayID: "curSlide",
		},
		Logging:   LoggingConfig{Level: "info"},
		Telemetry: TelemetryConfig{ServiceName: "tracey"},
	}
}

// SetDefaults registers Default() with viper.
func SetDefaults() {
	d := Default()

	viper.SetDefault("highlight.color", d.Highlight.Color)

	viper.SetDefault("panel.enabled", d.Panel.Enabled)
	viper.SetDefault("panel.float_x", d.Panel.FloatX)
	viper.SetDefault("panel.float_y", d.Panel.FloatY)
	viper.SetDefault("panel.refresh_ms", d.Panel.RefreshMs)

	viper.SetDefault("generate.script_src", d.Generate.ScriptSrc)
	viper.SetDefault("generate.object", d.Generate.Object)
	viper.SetDefault("generate.display_id", d.Generate.DisplayID)

	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.file", d.Logging.File)

	viper.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// ConfigDir returns the user's tracey config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tracey")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tracey"
	}
	return filepath.Join(home, ".config", "tracey")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
