package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad colour", func(c *Config) { c.Highlight.Color = "yellowish" }, "highlight.color"},
		{"negative x", func(c *Config) { c.Panel.FloatX = -1 }, "panel.float_x"},
		{"negative y", func(c *Config) { c.Panel.FloatY = -3 }, "panel.float_y"},
		{"refresh too fast", func(c *Config) { c.Panel.RefreshMs = 1 }, "panel.refresh_ms"},
		{"object not ident", func(c *Config) { c.Generate.Object = "my deck" }, "generate.object"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			errs := cfg.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestValidate_AcceptsHexAndEmptyColour(t *testing.T) {
	cfg := Default()
	cfg.Highlight.Color = "#ff0"
	assert.Empty(t, cfg.Validate())
	cfg.Highlight.Color = ""
	assert.Empty(t, cfg.Validate())
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "", ValidationErrors{}.Error())

	one := ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}
	assert.Equal(t, "a: bad (got: 1)", one.Error())

	two := append(one, ValidationError{Field: "b", Value: "x", Message: "worse"})
	assert.Contains(t, two.Error(), "2 validation errors:")
	assert.Contains(t, two.Error(), "2. b: worse (got: x)")
}

func TestLoad_FromFileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panel:\n  float_x: 7\n  refresh_ms: 100\n"), 0o644))

	SetDefaults()
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())
	t.Setenv("TRACEY_LOGGING_LEVEL", "debug")
	viper.SetEnvPrefix("TRACEY")
	viper.AutomaticEnv()
	require.NoError(t, viper.BindEnv("logging.level"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Panel.FloatX)
	assert.Equal(t, 1, cfg.Panel.FloatY)
	assert.Equal(t, 100*time.Millisecond, cfg.Panel.RefreshInterval())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "TraceyText.js", cfg.Generate.ScriptSrc)
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("panel.refresh_ms", 0)

	_, err := Load()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "panel.refresh_ms", verrs[0].Field)
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "tracey"), ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "tracey", "config.yaml"), ConfigFile())
}
