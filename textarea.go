package widgets

// wheelLines is how many lines one wheel notch scrolls.
const wheelLines = 3

// TextArea is a multi-line, word-wrapped text input bound to a string.
type TextArea struct {
	Base
	ed          *Editor
	placeholder string
	inputType   InputType

	scrollY    float32
	preferredX float32 // pixel column kept across Up/Down, -1 = none

	dragging        bool
	thumbDrag       bool
	dragStartY      float32
	dragStartScroll float32
	clicks          clickTracker

	// wrap cache
	lines     []textLine
	wrapText  string
	wrapWidth float32
	wrapFont  Font
}

// NewTextArea creates a multi-line text input editing the bound string.
// Options: WithPlaceholder, WithMaxLength, ReadOnly, WithInputType,
// WithCharFilter and the core options.
func NewTextArea(bounds Rect, text Binding[string], opts ...Option) *TextArea {
	o := applyOptions(opts)
	t := &TextArea{
		ed:          NewEditor(text),
		placeholder: GetOpt(o, OptPlaceholder),
		inputType:   GetOpt(o, OptInputType),
		preferredX:  -1,
	}
	t.rect = bounds
	applyBase(&t.Base, o)
	t.ed.multiline = true
	t.ed.MaxLen = GetOpt(o, OptMaxLength)
	t.ed.ReadOnly = GetOpt(o, OptReadOnly)
	t.ed.Filter = inputFilter(t.inputType, GetOpt(o, OptCharFilter))
	return t
}

// inputFilter combines the input type restriction with a custom filter.
func inputFilter(it InputType, custom func(rune) bool) func(rune) bool {
	var typed func(rune) bool
	switch it {
	case InputNumeric:
		typed = isASCIIDigit
	case InputEmail:
		typed = func(r rune) bool {
			return isASCIIDigit(r) || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') ||
				r == '@' || r == '.' || r == '-' || r == '_'
		}
	}
	switch {
	case typed == nil:
		return custom
	case custom == nil:
		return typed
	}
	return func(r rune) bool { return typed(r) && custom(r) }
}

func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }

// Editor exposes the caret/selection model.
func (t *TextArea) Editor() *Editor { return t.ed }

// Text returns the bound text.
func (t *TextArea) Text() string { return t.ed.Text() }

// SetText replaces the text and moves the caret to the end.
func (t *TextArea) SetText(s string) {
	t.ed.setText(s)
	t.ed.SetCaret(len(s))
}

// InputType returns the accepted character class.
func (t *TextArea) InputType() InputType { return t.inputType }

// ScrollY returns the vertical scroll offset in pixels.
func (t *TextArea) ScrollY() float32 { return t.scrollY }

// Focusable reports true.
func (t *TextArea) Focusable() bool { return true }

// EditsText is true unless the area is read-only.
func (t *TextArea) EditsText() bool { return !t.ed.ReadOnly }

// CursorHint returns the I-beam.
func (t *TextArea) CursorHint() CursorKind { return CursorIBeam }

// FocusChanged starts or stops platform text input.
func (t *TextArea) FocusChanged(ctx *Context, focused bool) {
	t.Base.FocusChanged(ctx, focused)
	if focused {
		t.ed.ResetBlink()
		ctx.StartTextInput(t.rect)
		return
	}
	ctx.StopTextInput()
	t.ed.ClearComposition()
	t.stopDrag(ctx)
}

func (t *TextArea) stopDrag(ctx *Context) {
	if t.dragging || t.thumbDrag {
		t.dragging = false
		t.thumbDrag = false
		ctx.ReleaseMouse(t)
	}
}

// areaMetrics is the geometry derived from bounds, theme and font.
type areaMetrics struct {
	text      Rect // wrapped text area
	scrollbar Rect
	lh        float32
}

func (t *TextArea) metrics(ctx *Context) areaMetrics {
	th := ctx.ThemeFor(t.theme)
	inner := t.rect.Inset(th.Padding)
	sb := th.ScrollbarSize
	return areaMetrics{
		text:      Rect{X: inner.X, Y: inner.Y, W: maxf(0, inner.W-sb), H: inner.H},
		scrollbar: Rect{X: t.rect.X + t.rect.W - sb, Y: t.rect.Y, W: sb, H: t.rect.H},
		lh:        lineHeightOf(ctx.Font, defaultLineHeight),
	}
}

// layout returns the display lines, rewrapping only when the text, width
// or font changed.
func (t *TextArea) layout(ctx *Context) []textLine {
	s := t.ed.Text()
	w := t.metrics(ctx).text.W
	if t.lines == nil || s != t.wrapText || w != t.wrapWidth || ctx.Font != t.wrapFont {
		t.lines = wrapLines(ctx.Font, s, w)
		t.wrapText, t.wrapWidth, t.wrapFont = s, w, ctx.Font
	}
	return t.lines
}

// Lines returns the current display lines as strings.
func (t *TextArea) Lines(ctx *Context) []string {
	s := t.ed.Text()
	lines := t.layout(ctx)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = s[l.start:l.end]
	}
	return out
}

// ContentHeight returns the height of all display lines.
func (t *TextArea) ContentHeight(ctx *Context) float32 {
	return float32(len(t.layout(ctx))) * t.metrics(ctx).lh
}

func (t *TextArea) maxScroll(ctx *Context) float32 {
	return maxf(0, t.ContentHeight(ctx)-t.metrics(ctx).text.H)
}

func (t *TextArea) setScroll(ctx *Context, y float32) {
	t.scrollY = clampf(y, 0, t.maxScroll(ctx))
}

// CaretLine returns the display line index holding the caret.
func (t *TextArea) CaretLine(ctx *Context) int {
	return lineIndexAt(t.layout(ctx), t.ed.Caret())
}

// reveal scrolls the minimum amount that brings the caret line into view.
func (t *TextArea) reveal(ctx *Context) {
	m := t.metrics(ctx)
	top := float32(t.CaretLine(ctx)) * m.lh
	t.scrollY = revealRange(t.scrollY, top, top+m.lh, m.text.H, t.ContentHeight(ctx))
}

// caretX returns the caret's pixel column within its display line.
func (t *TextArea) caretX(ctx *Context) float32 {
	s := t.ed.Text()
	ln := t.layout(ctx)[t.CaretLine(ctx)]
	return t.ed.PrefixWidth(ctx.Font, s[ln.start:ln.end], t.ed.Caret()-ln.start)
}

// offsetInLine maps a pixel column on display line i to a byte offset. The
// end of a soft-wrapped line is the start of the next one, so the caret
// stops one codepoint short there.
func (t *TextArea) offsetInLine(ctx *Context, i int, x float32) int {
	s := t.ed.Text()
	lines := t.layout(ctx)
	i = clampi(i, 0, len(lines)-1)
	ln := lines[i]
	off := ln.start + t.ed.OffsetAtX(ctx.Font, s[ln.start:ln.end], x)
	if off == ln.end && i < len(lines)-1 && lines[i+1].start == ln.end && off > ln.start {
		off = prevBoundary(s, off)
	}
	return off
}

// offsetAt maps a window position to a byte offset.
func (t *TextArea) offsetAt(ctx *Context, p Vec2) int {
	m := t.metrics(ctx)
	i := int((p.Y - m.text.Y + t.scrollY) / m.lh)
	if p.Y-m.text.Y+t.scrollY < 0 {
		i = 0
	}
	return t.offsetInLine(ctx, i, p.X-m.text.X)
}

// thumbRect returns the scrollbar thumb, or false when everything fits.
func (t *TextArea) thumbRect(ctx *Context) (Rect, bool) {
	m := t.metrics(ctx)
	content := t.ContentHeight(ctx)
	if content <= m.text.H || m.scrollbar.W <= 0 {
		return Rect{}, false
	}
	track := m.scrollbar.H
	thumbH := maxf(20, track*(m.text.H/content))
	thumbH = minf(thumbH, track)
	pos := float32(0)
	if ms := content - m.text.H; ms > 0 {
		pos = (t.scrollY / ms) * (track - thumbH)
	}
	return Rect{X: m.scrollbar.X, Y: m.scrollbar.Y + pos, W: m.scrollbar.W, H: thumbH}, true
}

// HandleEvent implements Widget.
func (t *TextArea) HandleEvent(ctx *Context, ev Event) bool {
	t.trackHover(ev)
	if !interactive(t) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button != MouseButtonLeft || !t.HitTest(ev.Pos) {
			return false
		}
		t.preferredX = -1
		if thumb, ok := t.thumbRect(ctx); ok && t.metrics(ctx).scrollbar.Contains(ev.Pos) {
			switch {
			case thumb.Contains(ev.Pos):
				t.thumbDrag = true
				t.dragStartY = ev.Pos.Y
				t.dragStartScroll = t.scrollY
				ctx.CaptureMouse(t)
			case ev.Pos.Y < thumb.Y:
				t.setScroll(ctx, t.scrollY-t.metrics(ctx).text.H)
			default:
				t.setScroll(ctx, t.scrollY+t.metrics(ctx).text.H)
			}
			return true
		}
		off := t.offsetAt(ctx, ev.Pos)
		switch t.clicks.press(ev.Pos) {
		case 1:
			t.ed.MoveTo(off, ev.Mods.Shift())
			t.dragging = true
			ctx.CaptureMouse(t)
		case 2:
			start, end := WordAt(t.ed.Text(), off)
			t.ed.SetSelection(start, end)
		default:
			ln := t.layout(ctx)[lineIndexAt(t.layout(ctx), off)]
			t.ed.SetSelection(ln.start, ln.end)
		}
		t.reveal(ctx)
		return true

	case EventPointerMove:
		switch {
		case t.thumbDrag:
			thumb, ok := t.thumbRect(ctx)
			if track := t.metrics(ctx).scrollbar.H - thumb.H; ok && track > 0 {
				t.setScroll(ctx, t.dragStartScroll+(ev.Pos.Y-t.dragStartY)*(t.maxScroll(ctx)/track))
			}
			return true
		case t.dragging:
			t.ed.MoveTo(t.offsetAt(ctx, ev.Pos), true)
			t.reveal(ctx)
			return true
		}
		return false

	case EventPointerUp:
		if !t.dragging && !t.thumbDrag {
			return false
		}
		t.stopDrag(ctx)
		return true

	case EventWheel:
		if ev.Wheel.Y == 0 {
			return false
		}
		t.setScroll(ctx, t.scrollY-ev.Wheel.Y*t.metrics(ctx).lh*wheelLines)
		return true

	case EventKeyDown:
		if !t.focused {
			return false
		}
		return t.handleKey(ctx, ev)

	case EventTextInput:
		if !t.focused {
			return false
		}
		t.preferredX = -1
		t.ed.Commit(ev.Text)
		t.reveal(ctx)
		return true

	case EventTextComposition:
		if !t.focused || t.ed.ReadOnly {
			return false
		}
		t.ed.SetComposition(ev.Text, ev.CompositionCursor)
		t.reveal(ctx)
		return true

	case EventWindowFocusLost:
		t.stopDrag(ctx)
		t.ed.ClearComposition()
	}
	return false
}

func (t *TextArea) handleKey(ctx *Context, ev Event) bool {
	shift := ev.Mods.Shift()
	lines := t.layout(ctx)
	cur := t.CaretLine(ctx)

	vertical := func(target int) {
		if t.preferredX < 0 {
			t.preferredX = t.caretX(ctx)
		}
		switch {
		case target < 0:
			t.ed.MoveTo(0, shift)
		case target >= len(lines):
			t.ed.MoveTo(len(t.ed.Text()), shift)
		default:
			t.ed.MoveTo(t.offsetInLine(ctx, target, t.preferredX), shift)
		}
		t.reveal(ctx)
	}

	switch ev.Key {
	case KeyUp:
		vertical(cur - 1)
		return true
	case KeyDown:
		vertical(cur + 1)
		return true
	case KeyPageUp, KeyPageDown:
		m := t.metrics(ctx)
		page := max(1, int(m.text.H/m.lh))
		if ev.Key == KeyPageUp {
			t.setScroll(ctx, t.scrollY-float32(page)*m.lh)
			vertical(max(0, cur-page))
		} else {
			t.setScroll(ctx, t.scrollY+float32(page)*m.lh)
			vertical(min(len(lines)-1, cur+page))
		}
		return true
	}

	t.preferredX = -1
	handled := true
	switch ev.Key {
	case KeyEscape:
		if !t.ed.Composing() {
			return false
		}
		t.ed.ClearComposition()
	case KeyEnter:
		if t.ed.ReadOnly {
			return false
		}
		t.ed.Insert("\n")
	case KeyHome:
		if ev.Mods.Command() {
			t.ed.MoveHome(shift)
		} else {
			t.ed.MoveTo(lines[cur].start, shift)
		}
	case KeyEnd:
		if ev.Mods.Command() {
			t.ed.MoveEnd(shift)
		} else {
			t.ed.MoveTo(t.offsetInLine(ctx, cur, 1e9), shift)
		}
	default:
		handled, _ = t.ed.editKey(ev, ctx.clipboard())
		if !handled {
			return (ev.Key.IsPrintable() || ev.Key == KeySpace) && !ev.Mods.Command()
		}
	}
	t.reveal(ctx)
	return handled
}

// Update advances the caret blink and keeps the scroll offset valid when
// the bound text changed underneath.
func (t *TextArea) Update(ctx *Context, dt float32) {
	t.clicks.tick(dt)
	t.setScroll(ctx, t.scrollY)
	if t.focused {
		t.ed.Tick(dt, ctx.ThemeFor(t.theme).BlinkPeriod)
	}
}

// Render implements Widget.
func (t *TextArea) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(t.theme)
	bg := th.InputBgColor
	if t.focused {
		bg = th.InputFocusedBgColor
	}
	c.FillRect(t.rect, th.Rounding, bg)
	c.StrokeRect(t.rect, th.Rounding, th.BorderSize, th.InputBorderColor)

	m := t.metrics(ctx)
	f := ctx.Font
	s := t.ed.Text()
	lines := t.layout(ctx)
	caretLine := lineIndexAt(lines, t.ed.Caret())

	c.PushClip(m.text)
	if s == "" && !t.ed.Composing() && t.placeholder != "" {
		c.Text(f, Vec2{X: m.text.X, Y: m.text.Y}, t.placeholder, th.PlaceholderColor)
	}
	clip := NewListClipper(len(lines), m.lh, m.text.H, t.scrollY)
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		y := clip.ItemY(i, m.text.Y, t.scrollY)
		t.ed.drawLine(c, f, th, s, lines[i], Vec2{X: m.text.X, Y: y}, m.lh, t.focused, i == caretLine, !t.Enabled())
	}
	c.PopClip()

	if thumb, ok := t.thumbRect(ctx); ok {
		c.FillRect(m.scrollbar, 0, th.ScrollbarBgColor)
		col := th.ScrollbarGrabColor
		if t.thumbDrag || (t.hovered && thumb.Contains(ctx.Pointer)) {
			col = th.ScrollbarGrabHovered
		}
		c.FillRect(thumb, th.Rounding, col)
	}

	if t.focused {
		DrawFocusRing(c, t.rect, th)
	}
}
