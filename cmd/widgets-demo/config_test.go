package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "widgets-demo"}
	registerFlags(cmd)
	return cmd
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newTestCmd(t), "")
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, cfg.Width)
	assert.Equal(t, defaultHeight, cfg.Height)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, float64(defaultFontSize), cfg.FontSize)
	assert.Empty(t, cfg.ThemeFile)
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "demo.toml", "width = 1280\nheight = 800\ntheme = \"light\"\n"},
		{"yaml", "demo.yaml", "width: 1280\nheight: 800\ntheme: light\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(newTestCmd(t), writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, 1280, cfg.Width)
			assert.Equal(t, 800, cfg.Height)
			assert.Equal(t, "light", cfg.Theme)
		})
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "demo.toml", "width = 1280\ntheme = \"light\"\n")
	t.Setenv("WIDGETS_DEMO_THEME_FILE", "/tmp/theme.toml")

	cmd := newTestCmd(t)
	require.NoError(t, cmd.Flags().Set("width", "1000"))

	cfg, err := loadConfig(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width, "flag beats config file")
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "/tmp/theme.toml", cfg.ThemeFile, "env fills unset keys")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(newTestCmd(t), filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = loadConfig(newTestCmd(t), writeConfig(t, "small.toml", "width = 100\n"))
	assert.ErrorContains(t, err, "below 320x240")

	_, err = loadConfig(newTestCmd(t), writeConfig(t, "font.toml", "font-size = 0\n"))
	assert.ErrorContains(t, err, "font size must be positive")
}
