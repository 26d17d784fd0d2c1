package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultWidth    = 900
	defaultHeight   = 640
	defaultFontSize = 15
)

// config is the resolved demo configuration.
type config struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	Theme     string  `mapstructure:"theme"`
	ThemeFile string  `mapstructure:"theme-file"`
	Font      string  `mapstructure:"font"`
	FontSize  float64 `mapstructure:"font-size"`
	LogLevel  string  `mapstructure:"log-level"`
}

// loadConfig merges flags, WIDGETS_DEMO_* environment variables and the
// optional config file.
func loadConfig(cmd *cobra.Command, path string) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix("WIDGETS_DEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("widgets-demo")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if c.Width < 320 || c.Height < 240 {
		return fmt.Errorf("window size %dx%d is below 320x240", c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %v", c.FontSize)
	}
	return nil
}
