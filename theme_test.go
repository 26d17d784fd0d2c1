package widgets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"", "default", "Dark", "LIGHT"} {
		_, ok := ThemeByName(name)
		assert.True(t, ok, name)
	}
	_, ok := ThemeByName("solarized")
	assert.False(t, ok)

	light, _ := ThemeByName("light")
	assert.Equal(t, LightTheme(), light)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, RGBA(255, 128, 0, 255), c)
	assert.Equal(t, "#FF8000FF", c.String())

	c, err = ParseColor(" 00000080 ")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.Alpha())

	for _, bad := range []string{"", "#123", "#GGGGGG", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseThemeTOMLOverridesKeys(t *testing.T) {
	data := []byte("text = \"#FF0000\"\npadding = 10.0\n")
	th, err := ParseTheme(data, ".toml", DarkTheme())
	require.NoError(t, err)

	assert.Equal(t, RGBA(255, 0, 0, 255), th.TextColor)
	assert.Equal(t, float32(10), th.Padding)
	assert.Equal(t, DarkTheme().PanelColor, th.PanelColor, "absent keys keep the base")
}

func TestParseThemeYAML(t *testing.T) {
	th, err := ParseTheme([]byte("caret: '#00FF0080'\nrounding: 6\n"), ".yml", DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, RGBA(0, 255, 0, 128), th.CaretColor)
	assert.Equal(t, float32(6), th.Rounding)

	th, err = ParseTheme(nil, ".yaml", LightTheme())
	require.NoError(t, err)
	assert.Equal(t, LightTheme(), th, "an empty document is the base")
}

func TestParseThemeErrors(t *testing.T) {
	base := DefaultTheme()
	cases := []struct {
		name string
		data string
		ext  string
	}{
		{"unknown toml key", "colour = \"#FFFFFF\"", ".toml"},
		{"unknown yaml key", "colour: '#FFFFFF'", ".yaml"},
		{"bad color", "text = \"white\"", ".toml"},
		{"bad syntax", "text = ", ".toml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th, err := ParseTheme([]byte(tc.data), tc.ext, base)
			assert.Error(t, err)
			assert.Equal(t, base, th)
		})
	}

	_, err := ParseTheme([]byte("{}"), ".json", base)
	assert.ErrorIs(t, err, ErrUnknownThemeFormat)
}

func TestMarshalThemeReloads(t *testing.T) {
	data, err := MarshalTheme(LightTheme())
	require.NoError(t, err)
	assert.Contains(t, string(data), "text = ")

	th, err := ParseTheme(data, ".toml", DarkTheme())
	require.NoError(t, err)
	assert.Equal(t, LightTheme(), th)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("rounding = 4.0\n"), 0o600))

	th, err := LoadTheme(path, DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, float32(4), th.Rounding)

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.toml"), DefaultTheme())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestThemeWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("padding: 1\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := NewThemeWatcher(ctx, path, DefaultTheme())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("padding: 9\n"), 0o600))

	// Truncation and the write may arrive as separate events; wait for the
	// revision carrying the new content.
	got := float32(0)
	timeout := time.After(5 * time.Second)
	for got != 9 {
		select {
		case th, ok := <-w.Themes():
			require.True(t, ok)
			got = th.Padding
		case <-timeout:
			t.Fatalf("no reload delivered, last padding %v", got)
		}
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-w.Themes():
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond, "channel closes after cancel")
}

func TestDefaultThemeIsProcessWide(t *testing.T) {
	t.Cleanup(func() { SetDefaultTheme(DefaultTheme()) })
	SetDefaultTheme(LightTheme())

	m := NewManager()
	assert.Equal(t, LightTheme(), m.Theme())
}

func TestWidgetThemeOverride(t *testing.T) {
	m := testManager()
	custom := DefaultTheme()
	custom.ButtonColor = ColorRed
	m.AddElement(NewButton(Rect{W: 50, H: 20}, "a", nil, WithWidgetTheme(&custom)))
	m.AddElement(NewButton(Rect{Y: 30, W: 50, H: 20}, "b", nil))

	c := &recordingCanvas{size: Vec2{X: 800, Y: 600}}
	m.Render(c)
	assert.Equal(t, 1, c.count("fill", ColorRed))
	assert.Equal(t, 1, c.count("fill", m.Theme().ButtonColor))
}
