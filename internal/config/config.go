// Package config loads nadi settings from an optional TOML file and NADI_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Chart       bool `mapstructure:"chart"`
	ChartHeight int  `mapstructure:"chart_height"`
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix NADI_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.chart", true)
	v.SetDefault("ui.chart_height", 12)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("NADI_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		dir, err := ResolveDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NADI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.Log.File != "" {
		path, err := normalizePath(c.Log.File)
		if err != nil {
			return Config{}, fmt.Errorf("resolve log file: %w", err)
		}
		c.Log.File = path
	}
	if c.UI.ChartHeight < 4 {
		return Config{}, fmt.Errorf("ui.chart_height must be at least 4, got %d", c.UI.ChartHeight)
	}
	return c, nil
}
