package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widgets"
)

// GLFWInputAdapter turns GLFW callbacks into widgets.Event values. Callbacks
// run inside glfw.PollEvents on the main thread; Drain hands the queued
// events to the caller once per frame.
type GLFWInputAdapter struct {
	window *glfw.Window
	queue  []widgets.Event
	cursor widgets.Vec2
	mods   widgets.Modifier
}

// NewGLFWInputAdapter installs the input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		queue:  make([]widgets.Event, 0, 64),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFocusCallback(adapter.focusCallback)

	x, y := window.GetCursorPos()
	adapter.cursor = widgets.Vec2{X: float32(x), Y: float32(y)}
	return adapter
}

// Drain returns the events queued since the previous call. The slice is
// reused by the next PollEvents, so consume it before polling again.
func (a *GLFWInputAdapter) Drain() []widgets.Event {
	out := a.queue
	a.queue = a.queue[:0]
	return out
}

// Cursor returns the last known pointer position.
func (a *GLFWInputAdapter) Cursor() widgets.Vec2 { return a.cursor }

// Mods returns the modifiers of the most recent key event.
func (a *GLFWInputAdapter) Mods() widgets.Modifier { return a.mods }

func (a *GLFWInputAdapter) push(ev widgets.Event) {
	a.queue = append(a.queue, ev)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	a.mods = glfwModsToModifier(mods)
	k := glfwKeyToKey(key)
	if k == widgets.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.push(widgets.KeyPress(k, a.mods))
	case glfw.Release:
		a.push(widgets.KeyRelease(k, a.mods))
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	// Ctrl/Super chords never produce text.
	if a.mods.Command() {
		return
	}
	a.push(widgets.TextCommit(string(char)))
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	a.mods = glfwModsToModifier(mods)

	var ev widgets.Event
	switch action {
	case glfw.Press:
		ev = widgets.PointerDown(a.cursor.X, a.cursor.Y, b)
	case glfw.Release:
		ev = widgets.PointerUp(a.cursor.X, a.cursor.Y, b)
	default:
		return
	}
	ev.Mods = a.mods
	a.push(ev)
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.push(widgets.WheelAt(a.cursor.X, a.cursor.Y, float32(xoff), float32(yoff)))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.cursor = widgets.Vec2{X: float32(xpos), Y: float32(ypos)}
	a.push(widgets.PointerMove(a.cursor.X, a.cursor.Y))
}

func (a *GLFWInputAdapter) focusCallback(w *glfw.Window, focused bool) {
	if !focused {
		a.mods = widgets.ModNone
		a.push(widgets.Event{Kind: widgets.EventWindowFocusLost})
	}
}

func glfwModsToModifier(mods glfw.ModifierKey) widgets.Modifier {
	var m widgets.Modifier
	if mods&glfw.ModShift != 0 {
		m |= widgets.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= widgets.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= widgets.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= widgets.ModSuper
	}
	return m
}

// glfwKeyToKey maps GLFW keys to widget keys.
func glfwKeyToKey(key glfw.Key) widgets.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return widgets.KeyA + widgets.Key(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return widgets.Key0 + widgets.Key(key-glfw.Key0)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return widgets.KeyF1 + widgets.Key(key-glfw.KeyF1)
	}
	switch key {
	case glfw.KeyTab:
		return widgets.KeyTab
	case glfw.KeyLeft:
		return widgets.KeyLeft
	case glfw.KeyRight:
		return widgets.KeyRight
	case glfw.KeyUp:
		return widgets.KeyUp
	case glfw.KeyDown:
		return widgets.KeyDown
	case glfw.KeyPageUp:
		return widgets.KeyPageUp
	case glfw.KeyPageDown:
		return widgets.KeyPageDown
	case glfw.KeyHome:
		return widgets.KeyHome
	case glfw.KeyEnd:
		return widgets.KeyEnd
	case glfw.KeyInsert:
		return widgets.KeyInsert
	case glfw.KeyDelete:
		return widgets.KeyDelete
	case glfw.KeyBackspace:
		return widgets.KeyBackspace
	case glfw.KeySpace:
		return widgets.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return widgets.KeyEnter
	case glfw.KeyEscape:
		return widgets.KeyEscape
	default:
		return widgets.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons to widget buttons.
func glfwMouseButton(button glfw.MouseButton) (widgets.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return widgets.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return widgets.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return widgets.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// GLFWPlatform implements widgets.Platform for a GLFW window. GLFW exposes
// no IME positioning, so text input requests are only recorded.
type GLFWPlatform struct {
	window  *glfw.Window
	cursors map[widgets.CursorKind]*glfw.Cursor
	current widgets.CursorKind

	textInput bool
	textRect  widgets.Rect
}

// NewGLFWPlatform creates the standard cursors for window.
func NewGLFWPlatform(window *glfw.Window) *GLFWPlatform {
	return &GLFWPlatform{
		window: window,
		cursors: map[widgets.CursorKind]*glfw.Cursor{
			widgets.CursorArrow: glfw.CreateStandardCursor(glfw.ArrowCursor),
			widgets.CursorIBeam: glfw.CreateStandardCursor(glfw.IBeamCursor),
			widgets.CursorHand:  glfw.CreateStandardCursor(glfw.HandCursor),
		},
	}
}

// SetCursor implements widgets.Platform.
func (p *GLFWPlatform) SetCursor(kind widgets.CursorKind) {
	if kind == p.current {
		return
	}
	p.current = kind
	p.window.SetCursor(p.cursors[kind])
}

// StartTextInput implements widgets.Platform.
func (p *GLFWPlatform) StartTextInput(r widgets.Rect) {
	p.textInput = true
	p.textRect = r
}

// StopTextInput implements widgets.Platform.
func (p *GLFWPlatform) StopTextInput() { p.textInput = false }

// TextInputActive reports whether a text widget holds focus, and its rect.
func (p *GLFWPlatform) TextInputActive() (widgets.Rect, bool) {
	return p.textRect, p.textInput
}

// Destroy frees the cursors.
func (p *GLFWPlatform) Destroy() {
	for _, c := range p.cursors {
		c.Destroy()
	}
	clear(p.cursors)
}

// GLFWClipboard implements widgets.Clipboard through the window's clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard wraps window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// Text implements widgets.Clipboard.
func (c *GLFWClipboard) Text() string { return c.window.GetClipboardString() }

// SetText implements widgets.Clipboard.
func (c *GLFWClipboard) SetText(text string) { c.window.SetClipboardString(text) }
