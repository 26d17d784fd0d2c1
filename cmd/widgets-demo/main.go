// Widgets-demo opens a window with a form built from every widget of the
// toolkit: text fields, a text area, buttons, checkbox, radio group, combo
// box, slider, spinner and a confirmation dialog.
//
// Usage:
//
//	widgets-demo [flags]
//
// Settings come from flags, WIDGETS_DEMO_* environment variables and an
// optional config file (TOML or YAML), in that order of precedence.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "widgets-demo",
	Short: "Widget toolkit demo window",
	Long: `Opens an OpenGL window showing a form that exercises every widget.

Tab and Shift+Tab move keyboard focus, Ctrl+S submits the form through a
confirmation dialog, F2 toggles between the dark and light themes and
Ctrl+Q quits. With --theme-file the theme is reloaded whenever the file
changes on disk.`,
	Example: `  # Default window
  widgets-demo

  # Larger window, light theme, verbose logging
  widgets-demo --width 1280 --height 800 --theme light --log-level debug

  # Live-edit a theme file
  widgets-demo --theme-file ./theme.toml`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, cfgFile)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	registerFlags(rootCmd)
}

// registerFlags declares the demo flags on cmd.
func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Config file (TOML or YAML)")
	flags.Int("width", defaultWidth, "Window width in pixels")
	flags.Int("height", defaultHeight, "Window height in pixels")
	flags.String("theme", "dark", "Built-in theme (default, dark, light)")
	flags.String("theme-file", "", "Theme file to load and watch for changes")
	flags.String("font", "", "TrueType/OpenType font file (built-in bitmap font if empty)")
	flags.Float64("font-size", defaultFontSize, "Font size in pixels")
	flags.String("log-level", "", "Log level (debug, info, warn, error); silent if empty")
}
