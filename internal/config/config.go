// Package config loads hexspiral CLI settings from defaults, an optional
// YAML file, HEXSPIRAL_* environment variables and bound flags.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/hexspiral/hexgrid"
)

// EnvPrefix is the prefix for environment overrides,
// e.g. HEXSPIRAL_RENDER_BLANK for render.blank.
const EnvPrefix = "HEXSPIRAL"

// Config is the complete CLI configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

// RenderConfig controls how grids are printed.
type RenderConfig struct {
	// Blank is the single character printed for empty cells.
	Blank string `mapstructure:"blank"`
	// Separator is placed between the cells of a row.
	Separator string `mapstructure:"separator"`
	// Border frames the grid in a rounded box.
	Border bool `mapstructure:"border"`
	// Highlight emphasizes route cells in trace output.
	Highlight bool `mapstructure:"highlight"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is one of ValidLogLevels.
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Blank:     ".",
			Separator: " ",
			Border:    true,
			Highlight: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("render.blank", defaults.Render.Blank)
	v.SetDefault("render.separator", defaults.Render.Separator)
	v.SetDefault("render.border", defaults.Render.Border)
	v.SetDefault("render.highlight", defaults.Render.Highlight)

	v.SetDefault("log.level", defaults.Log.Level)
}

// New returns a viper instance with defaults and environment overrides
// registered. A non-empty configFile is read and must exist.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// HEXSPIRAL_RENDER_BLANK for render.blank
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// Load reads the configuration from v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// RenderOptions converts the render settings for hexgrid.Render.
// Call only on a validated Config.
func (r RenderConfig) RenderOptions() hexgrid.RenderOptions {
	blank, _ := utf8.DecodeRuneInString(r.Blank)
	return hexgrid.RenderOptions{
		Blank:     blank,
		Separator: r.Separator,
	}
}
