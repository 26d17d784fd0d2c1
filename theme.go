package widgets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
	Space2XL  float32 = 24 // 2x extra large
	Space3XL  float32 = 32 // 3x extra large
)

// ErrUnknownThemeFormat is returned by LoadTheme for extensions other than
// .toml, .yaml and .yml.
var ErrUnknownThemeFormat = errors.New("unknown theme format")

// Theme defines the visual appearance of widgets. It is plain data: the
// manager holds one, widgets may hold an override.
type Theme struct {
	// Text
	TextColor         Color `toml:"text" yaml:"text"`
	TextDisabledColor Color `toml:"text_disabled" yaml:"text_disabled"`
	PlaceholderColor  Color `toml:"placeholder" yaml:"placeholder"`

	// Panels, popups, group boxes
	PanelColor       Color `toml:"panel" yaml:"panel"`
	PanelBorderColor Color `toml:"panel_border" yaml:"panel_border"`
	TitleBgColor     Color `toml:"title_bg" yaml:"title_bg"`
	OverlayColor     Color `toml:"overlay" yaml:"overlay"` // dims the screen behind popups

	// Buttons
	ButtonColor         Color `toml:"button" yaml:"button"`
	ButtonHoveredColor  Color `toml:"button_hovered" yaml:"button_hovered"`
	ButtonActiveColor   Color `toml:"button_active" yaml:"button_active"`
	ButtonDisabledColor Color `toml:"button_disabled" yaml:"button_disabled"`

	// Selection
	SelectedBgColor   Color `toml:"selected_bg" yaml:"selected_bg"`
	SelectedTextColor Color `toml:"selected_text" yaml:"selected_text"`
	HoveredBgColor    Color `toml:"hovered_bg" yaml:"hovered_bg"`

	// Input
	InputBgColor        Color `toml:"input_bg" yaml:"input_bg"`
	InputFocusedBgColor Color `toml:"input_focused_bg" yaml:"input_focused_bg"`
	InputBorderColor    Color `toml:"input_border" yaml:"input_border"`
	CaretColor          Color `toml:"caret" yaml:"caret"`

	// Scrollbar
	ScrollbarBgColor     Color `toml:"scrollbar_bg" yaml:"scrollbar_bg"`
	ScrollbarGrabColor   Color `toml:"scrollbar_grab" yaml:"scrollbar_grab"`
	ScrollbarGrabHovered Color `toml:"scrollbar_grab_hovered" yaml:"scrollbar_grab_hovered"`

	// Slider
	SliderTrackColor Color `toml:"slider_track" yaml:"slider_track"`
	SliderFillColor  Color `toml:"slider_fill" yaml:"slider_fill"`
	SliderGrabColor  Color `toml:"slider_grab" yaml:"slider_grab"`
	SliderGrabActive Color `toml:"slider_grab_active" yaml:"slider_grab_active"`

	// Dropdown/ComboBox
	DropdownBgColor Color `toml:"dropdown_bg" yaml:"dropdown_bg"`
	ComboArrowColor Color `toml:"combo_arrow" yaml:"combo_arrow"`

	// Checkbox / radio mark
	CheckColor Color `toml:"check" yaml:"check"`

	// Focus indicator
	FocusColor Color `toml:"focus" yaml:"focus"`

	// Sizing
	Padding       float32 `toml:"padding" yaml:"padding"`
	ItemSpacing   float32 `toml:"item_spacing" yaml:"item_spacing"`
	BorderSize    float32 `toml:"border_size" yaml:"border_size"`
	Rounding      float32 `toml:"rounding" yaml:"rounding"`
	ScrollbarSize float32 `toml:"scrollbar_size" yaml:"scrollbar_size"`
	CaretWidth    float32 `toml:"caret_width" yaml:"caret_width"`
	BlinkPeriod   float32 `toml:"blink_period" yaml:"blink_period"` // seconds per on/off cycle
}

// DefaultTheme returns the default theme with sensible defaults.
func DefaultTheme() Theme {
	return Theme{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		PlaceholderColor:  RGBA(128, 128, 128, 200),

		PanelColor:       RGBA(20, 20, 20, 240),
		PanelBorderColor: RGBA(80, 80, 80, 255),
		TitleBgColor:     RGBA(40, 40, 45, 255),
		OverlayColor:     RGBA(0, 0, 0, 128),

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		CaretColor:          ColorWhite,

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		SliderTrackColor: RGBA(40, 40, 40, 255),
		SliderFillColor:  RGBA(50, 100, 150, 255),
		SliderGrabColor:  RGBA(100, 100, 100, 255),
		SliderGrabActive: RGBA(140, 140, 140, 255),

		DropdownBgColor: RGBA(25, 25, 25, 250),
		ComboArrowColor: RGBA(180, 180, 180, 255),

		CheckColor: RGBA(90, 160, 230, 255),
		FocusColor: ColorCyan,

		Padding:       SpaceSM,
		ItemSpacing:   SpaceSM,
		BorderSize:    1,
		Rounding:      0,
		ScrollbarSize: 12,
		CaretWidth:    1,
		BlinkPeriod:   1.0,
	}
}

// DarkTheme returns a modern dark theme.
func DarkTheme() Theme {
	t := DefaultTheme()
	t.PanelColor = RGBA(25, 25, 25, 240)
	t.TitleBgColor = RGBA(35, 35, 40, 255)
	t.ButtonColor = RGBA(45, 45, 45, 255)
	t.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	t.SelectedBgColor = RGBA(65, 105, 225, 255) // Royal blue
	t.SliderFillColor = t.SelectedBgColor
	t.Rounding = 3
	return t
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.TextColor = RGBA(20, 20, 20, 255)
	t.TextDisabledColor = RGBA(150, 150, 150, 255)
	t.PlaceholderColor = RGBA(160, 160, 160, 255)

	t.PanelColor = RGBA(245, 245, 245, 250)
	t.PanelBorderColor = RGBA(200, 200, 200, 255)
	t.TitleBgColor = RGBA(220, 220, 225, 255)
	t.OverlayColor = RGBA(255, 255, 255, 110)

	t.ButtonColor = RGBA(220, 220, 220, 255)
	t.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	t.ButtonActiveColor = RGBA(180, 180, 180, 255)
	t.ButtonDisabledColor = RGBA(230, 230, 230, 255)

	t.SelectedBgColor = RGBA(0, 120, 215, 255)
	t.HoveredBgColor = RGBA(230, 230, 230, 255)

	t.InputBgColor = ColorWhite
	t.InputFocusedBgColor = ColorWhite
	t.InputBorderColor = RGBA(150, 150, 150, 255)
	t.CaretColor = RGBA(20, 20, 20, 255)

	t.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	t.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	t.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)

	t.SliderTrackColor = RGBA(220, 220, 220, 255)
	t.SliderFillColor = RGBA(0, 120, 215, 255)
	t.SliderGrabColor = RGBA(180, 180, 180, 255)
	t.SliderGrabActive = RGBA(140, 140, 140, 255)

	t.DropdownBgColor = ColorWhite
	t.ComboArrowColor = RGBA(80, 80, 80, 255)
	t.CheckColor = RGBA(0, 120, 215, 255)
	t.FocusColor = RGBA(0, 120, 215, 255)
	return t
}

// ThemeByName resolves one of the built-in theme names: "default", "dark",
// "light".
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	}
	return Theme{}, false
}

var defaultTheme atomic.Pointer[Theme]

// SetDefaultTheme replaces the process-wide fallback theme used by contexts
// created without WithTheme.
func SetDefaultTheme(t Theme) {
	defaultTheme.Store(&t)
}

// CurrentDefaultTheme returns the process-wide fallback theme.
func CurrentDefaultTheme() Theme {
	if t := defaultTheme.Load(); t != nil {
		return *t
	}
	return DefaultTheme()
}

// LoadTheme reads a theme file. Keys present in the file override base;
// everything else keeps base's value. The format is chosen by extension.
func LoadTheme(path string, base Theme) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data, filepath.Ext(path), base)
}

// ParseTheme decodes theme data in the format named by ext (".toml",
// ".yaml" or ".yml") on top of base.
func ParseTheme(data []byte, ext string, base Theme) (Theme, error) {
	t := base
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil {
			return base, fmt.Errorf("decode toml theme: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
			return base, fmt.Errorf("decode yaml theme: %w", err)
		}
	default:
		return base, fmt.Errorf("%w: %q", ErrUnknownThemeFormat, ext)
	}
	return t, nil
}

// MarshalTheme encodes t as TOML.
func MarshalTheme(t Theme) ([]byte, error) {
	data, err := toml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return data, nil
}
