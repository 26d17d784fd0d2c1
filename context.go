package widgets

import "go.uber.org/zap"

// Context is what a widget sees of its environment while handling an event,
// updating or rendering. The manager owns it; widgets must not retain it.
type Context struct {
	// Theme is the manager theme. Use ThemeFor to honour per-widget overrides.
	Theme     *Theme
	Font      Font
	Clipboard Clipboard
	Logger    *zap.Logger

	// Viewport is the window size in pixels.
	Viewport Vec2
	// Pointer is the last known pointer position.
	Pointer Vec2
	// DeltaTime is the duration of the current Update, in seconds.
	DeltaTime float32

	m *Manager
}

// ThemeFor returns override when set, otherwise the context theme, otherwise
// the process default.
func (c *Context) ThemeFor(override *Theme) *Theme {
	if override != nil {
		return override
	}
	if c != nil && c.Theme != nil {
		return c.Theme
	}
	t := CurrentDefaultTheme()
	return &t
}

// Focus moves keyboard focus to w (see Manager.Focus).
func (c *Context) Focus(w Widget) {
	if c != nil && c.m != nil {
		c.m.Focus(w)
	}
}

// Focused returns the widget holding keyboard focus.
func (c *Context) Focused() Widget {
	if c == nil || c.m == nil {
		return nil
	}
	return c.m.Focused()
}

// IsFocused reports whether w holds keyboard focus.
func (c *Context) IsFocused(w Widget) bool {
	return w != nil && c.Focused() == w
}

// CaptureMouse routes all pointer events to w until released.
func (c *Context) CaptureMouse(w Widget) {
	if c != nil && c.m != nil {
		c.m.CaptureMouse(w)
	}
}

// ReleaseMouse releases the capture if w holds it.
func (c *Context) ReleaseMouse(w Widget) {
	if c != nil && c.m != nil && c.m.Captured() == w {
		c.m.ReleaseMouse()
	}
}

// HasCapture reports whether w holds the mouse capture.
func (c *Context) HasCapture(w Widget) bool {
	return c != nil && c.m != nil && w != nil && c.m.Captured() == w
}

// ClosePopup requests the active popup to close on the next Update.
func (c *Context) ClosePopup() {
	if c != nil && c.m != nil {
		c.m.ClosePopup()
	}
}

// StartTextInput asks the platform to enable text input (IME) with the
// candidate window near r.
func (c *Context) StartTextInput(r Rect) {
	if c != nil && c.m != nil && c.m.platform != nil {
		c.m.platform.StartTextInput(r)
	}
}

// StopTextInput disables platform text input.
func (c *Context) StopTextInput() {
	if c != nil && c.m != nil && c.m.platform != nil {
		c.m.platform.StopTextInput()
	}
}

// clipboard returns the configured clipboard or nil.
func (c *Context) clipboard() Clipboard {
	if c == nil {
		return nil
	}
	return c.Clipboard
}

// log returns a usable logger.
func (c *Context) log() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
