package widgets

import "unicode/utf8"

// testFont measures every codepoint at a fixed advance, with per-rune
// overrides.
type testFont struct {
	advance float32
	lh      float32
	widths  map[rune]float32
}

func newTestFont() *testFont {
	return &testFont{advance: 10, lh: 16, widths: map[rune]float32{'•': 6}}
}

func (f *testFont) Measure(text string) Vec2 {
	w := float32(0)
	for _, r := range text {
		if rw, ok := f.widths[r]; ok {
			w += rw
			continue
		}
		w += f.advance
	}
	return Vec2{X: w, Y: f.lh}
}

func (f *testFont) LineHeight() float32 { return f.lh }

// canvasOp is one recorded Canvas call.
type canvasOp struct {
	kind  string
	rect  Rect
	text  string
	color Color
}

// recordingCanvas records draw calls for assertions.
type recordingCanvas struct {
	ops   []canvasOp
	clips int
	size  Vec2
}

func (c *recordingCanvas) FillRect(r Rect, _ float32, color Color) {
	c.ops = append(c.ops, canvasOp{kind: "fill", rect: r, color: color})
}

func (c *recordingCanvas) StrokeRect(r Rect, _, _ float32, color Color) {
	c.ops = append(c.ops, canvasOp{kind: "stroke", rect: r, color: color})
}

func (c *recordingCanvas) FillCircle(center Vec2, radius float32, color Color) {
	c.ops = append(c.ops, canvasOp{kind: "circle", rect: Rect{X: center.X - radius, Y: center.Y - radius, W: radius * 2, H: radius * 2}, color: color})
}

func (c *recordingCanvas) StrokeCircle(center Vec2, radius, _ float32, color Color) {
	c.ops = append(c.ops, canvasOp{kind: "ring", rect: Rect{X: center.X - radius, Y: center.Y - radius, W: radius * 2, H: radius * 2}, color: color})
}

func (c *recordingCanvas) Line(a, b Vec2, _ float32, color Color) {
	c.ops = append(c.ops, canvasOp{kind: "line", rect: Rect{X: a.X, Y: a.Y, W: b.X - a.X, H: b.Y - a.Y}, color: color})
}

func (c *recordingCanvas) Text(_ Font, pos Vec2, text string, color Color) {
	c.ops = append(c.ops, canvasOp{kind: "text", rect: Rect{X: pos.X, Y: pos.Y}, text: text, color: color})
}

func (c *recordingCanvas) Image(_ uint32, dst Rect, _ [4]float32, tint Color) {
	c.ops = append(c.ops, canvasOp{kind: "image", rect: dst, color: tint})
}

func (c *recordingCanvas) PushClip(Rect) { c.clips++ }

func (c *recordingCanvas) PopClip() { c.clips-- }

func (c *recordingCanvas) Size() Vec2 { return c.size }

// texts returns the strings drawn, in order.
func (c *recordingCanvas) texts() []string {
	var out []string
	for _, op := range c.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

// count returns how many ops of kind used color.
func (c *recordingCanvas) count(kind string, color Color) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind && op.color == color {
			n++
		}
	}
	return n
}

// recorder is a focusable widget that records what it receives.
type recorder struct {
	Base
	name      string
	focusable bool
	consume   bool
	edits     bool
	events    []Event
	focusLog  *[]string
	closed    int
}

func newRecorder(name string, r Rect) *recorder {
	p := &recorder{name: name, focusable: true, consume: true}
	p.rect = r
	return p
}

func (p *recorder) Focusable() bool { return p.focusable }

func (p *recorder) EditsText() bool { return p.edits }

func (p *recorder) PopupClosed(*Context) { p.closed++ }

func (p *recorder) HandleEvent(_ *Context, ev Event) bool {
	p.events = append(p.events, ev)
	return p.consume
}

func (p *recorder) FocusChanged(ctx *Context, focused bool) {
	p.Base.FocusChanged(ctx, focused)
	if p.focusLog != nil {
		state := "-"
		if focused {
			state = "+"
		}
		*p.focusLog = append(*p.focusLog, state+p.name)
	}
}

// kinds returns the kinds of the received events.
func (p *recorder) kinds() []EventKind {
	out := make([]EventKind, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Kind
	}
	return out
}

// testManager builds a manager with the test font and an in-memory clipboard.
func testManager(opts ...ManagerOption) *Manager {
	base := []ManagerOption{
		WithFont(newTestFont()),
		WithClipboard(&MemoryClipboard{}),
		WithViewport(800, 600),
	}
	return NewManager(append(base, opts...)...)
}

// typeText sends one text-input event per codepoint.
func typeText(m *Manager, s string) {
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		m.HandleEvent(TextCommit(s[:size]))
		s = s[size:]
	}
}

// click sends a left press and release at (x, y).
func click(m *Manager, x, y float32) {
	m.HandleEvent(PointerDown(x, y, MouseButtonLeft))
	m.HandleEvent(PointerUp(x, y, MouseButtonLeft))
}
