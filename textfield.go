package widgets

// doubleClickTime is the maximum delay between two presses of a double click,
// in seconds.
const doubleClickTime float32 = 0.4

// clickTracker counts consecutive presses at roughly the same spot. Its clock
// only advances through Update, so presses between two frames always chain.
type clickTracker struct {
	clock float32
	last  float32
	pos   Vec2
	count int
}

func (c *clickTracker) tick(dt float32) { c.clock += dt }

// press records a button-down and returns the click count (1, 2, 3...).
func (c *clickTracker) press(p Vec2) int {
	if c.count > 0 && c.clock-c.last <= doubleClickTime &&
		absf(p.X-c.pos.X) <= 4 && absf(p.Y-c.pos.Y) <= 4 {
		c.count++
	} else {
		c.count = 1
	}
	c.last = c.clock
	c.pos = p
	return c.count
}

// TextField is a single-line text input bound to a string.
type TextField struct {
	Base
	ed          *Editor
	placeholder string
	scroll      float32
	dragging    bool
	clicks      clickTracker

	// OnSubmit runs when Enter is pressed. Without it Enter is not consumed.
	OnSubmit func(text string)
}

// NewTextField creates a text field editing the bound string.
// Options: WithPlaceholder, WithMaxLength, Password, WithMask, ReadOnly,
// WithInputType, WithCharFilter and the core options.
func NewTextField(bounds Rect, text Binding[string], opts ...Option) *TextField {
	o := applyOptions(opts)
	t := &TextField{
		ed:          NewEditor(text),
		placeholder: GetOpt(o, OptPlaceholder),
	}
	t.rect = bounds
	applyBase(&t.Base, o)
	t.ed.MaxLen = GetOpt(o, OptMaxLength)
	t.ed.Mask = GetOpt(o, OptMask)
	t.ed.ReadOnly = GetOpt(o, OptReadOnly)
	t.ed.Filter = inputFilter(GetOpt(o, OptInputType), GetOpt(o, OptCharFilter))
	return t
}

// Editor exposes the caret/selection model.
func (t *TextField) Editor() *Editor { return t.ed }

// Text returns the bound text.
func (t *TextField) Text() string { return t.ed.Text() }

// SetText replaces the text and moves the caret to the end.
func (t *TextField) SetText(s string) {
	t.ed.setText(s)
	t.ed.SetCaret(len(s))
}

// Scroll returns the horizontal scroll offset in pixels.
func (t *TextField) Scroll() float32 { return t.scroll }

// Focusable reports true: text fields always take focus when enabled.
func (t *TextField) Focusable() bool { return true }

// EditsText is true unless the field is read-only.
func (t *TextField) EditsText() bool { return !t.ed.ReadOnly }

// CursorHint returns the I-beam.
func (t *TextField) CursorHint() CursorKind { return CursorIBeam }

// FocusChanged starts or stops platform text input and drops any
// composition or drag on blur.
func (t *TextField) FocusChanged(ctx *Context, focused bool) {
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

func (t *TextField) stopDrag(ctx *Context) {
	if t.dragging {
		t.dragging = false
		ctx.ReleaseMouse(t)
	}
}

// textRect is the clipped area the text is drawn in.
func (t *TextField) textRect(th *Theme) Rect {
	return t.rect.Inset(th.Padding)
}

// offsetAt maps a window x coordinate to a caret offset.
func (t *TextField) offsetAt(ctx *Context, x float32) int {
	inner := t.textRect(ctx.ThemeFor(t.theme))
	return t.ed.OffsetAtX(ctx.Font, t.ed.Text(), x-inner.X+t.scroll)
}

// reveal scrolls the minimum amount that brings the caret into view.
func (t *TextField) reveal(ctx *Context) {
	f := ctx.Font
	s := t.ed.Text()
	th := ctx.ThemeFor(t.theme)
	inner := t.textRect(th)
	cw := maxf(th.CaretWidth, 1)
	caretX := t.ed.PrefixWidth(f, s, t.ed.Caret())
	content := t.ed.PrefixWidth(f, s, len(s))
	if comp, cur := t.ed.Composition(); comp != "" {
		caretX += measureWidth(f, comp[:cur])
		content += measureWidth(f, comp)
	}
	// The caret is drawn right of caretX, so it must fit inside the view.
	t.scroll = revealRange(t.scroll, caretX, caretX+cw, inner.W, content+cw)
}

// HandleEvent implements Widget.
func (t *TextField) HandleEvent(ctx *Context, ev Event) bool {
	t.trackHover(ev)
	if !interactive(t) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button != MouseButtonLeft || !t.HitTest(ev.Pos) {
			return false
		}
		off := t.offsetAt(ctx, ev.Pos.X)
		switch t.clicks.press(ev.Pos) {
		case 1:
			t.ed.MoveTo(off, ev.Mods.Shift())
			t.dragging = true
			ctx.CaptureMouse(t)
		case 2:
			start, end := WordAt(t.ed.Text(), off)
			t.ed.SetSelection(start, end)
		default:
			t.ed.SelectAll()
		}
		t.reveal(ctx)
		return true

	case EventPointerMove:
		if !t.dragging {
			return false
		}
		t.ed.MoveTo(t.offsetAt(ctx, ev.Pos.X), true)
		t.reveal(ctx)
		return true

	case EventPointerUp:
		if !t.dragging {
			return false
		}
		t.stopDrag(ctx)
		return true

	case EventKeyDown:
		if !t.focused {
			return false
		}
		handled := t.handleKey(ctx, ev)
		if handled {
			t.reveal(ctx)
		}
		return handled

	case EventTextInput:
		if !t.focused {
			return false
		}
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

func (t *TextField) handleKey(ctx *Context, ev Event) bool {
	switch ev.Key {
	case KeyEscape:
		if t.ed.Composing() {
			t.ed.ClearComposition()
			return true
		}
		return false
	case KeyEnter:
		if t.OnSubmit == nil {
			return false
		}
		t.OnSubmit(t.ed.Text())
		return true
	case KeyHome:
		t.ed.MoveHome(ev.Mods.Shift())
		return true
	case KeyEnd:
		t.ed.MoveEnd(ev.Mods.Shift())
		return true
	}
	if handled, _ := t.ed.editKey(ev, ctx.clipboard()); handled {
		return true
	}
	// Printable keys arrive again as text input; claim them so letter
	// shortcuts cannot fire while typing.
	return (ev.Key.IsPrintable() || ev.Key == KeySpace) && !ev.Mods.Command()
}

// Update advances the caret blink and the double-click clock.
func (t *TextField) Update(ctx *Context, dt float32) {
	t.clicks.tick(dt)
	if t.focused {
		t.ed.Tick(dt, ctx.ThemeFor(t.theme).BlinkPeriod)
	}
}

// Render implements Widget.
func (t *TextField) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(t.theme)
	bg := th.InputBgColor
	if t.focused {
		bg = th.InputFocusedBgColor
	}
	c.FillRect(t.rect, th.Rounding, bg)
	c.StrokeRect(t.rect, th.Rounding, th.BorderSize, th.InputBorderColor)

	inner := t.textRect(th)
	f := ctx.Font
	lh := lineHeightOf(f, defaultLineHeight)
	origin := Vec2{X: inner.X - t.scroll, Y: inner.Y + (inner.H-lh)/2}

	c.PushClip(inner)
	s := t.ed.Text()
	if s == "" && !t.ed.Composing() && t.placeholder != "" {
		c.Text(f, origin, t.placeholder, th.PlaceholderColor)
	}
	t.ed.drawLine(c, f, th, s, textLine{0, len(s)}, origin, lh, t.focused, true, !t.Enabled())
	c.PopClip()

	if t.focused {
		DrawFocusRing(c, t.rect, th)
	}
}

// drawLine draws one display line of full: the selection highlight, the
// text (with the IME composition spliced in and underlined when caretHere)
// and the caret.
func (e *Editor) drawLine(c Canvas, f Font, th *Theme, full string, ln textLine, origin Vec2, lh float32, focused, caretHere, disabled bool) {
	seg := full[ln.start:ln.end]
	caret := e.Caret()
	hasCaret := focused && caretHere && caret >= ln.start && caret <= ln.end

	if focused && e.HasSelection() {
		s, end := e.SelRange()
		nl := e.selectsLineBreak(full, ln)
		s, end = clampi(s, ln.start, ln.end), clampi(end, ln.start, ln.end)
		if s < end || nl {
			x0 := e.PrefixWidth(f, seg, s-ln.start)
			x1 := e.PrefixWidth(f, seg, end-ln.start)
			if nl {
				x1 += measureWidth(f, " ")
			}
			c.FillRect(Rect{X: origin.X + x0, Y: origin.Y, W: x1 - x0, H: lh}, 0, th.SelectedBgColor)
		}
	}

	color := th.TextColor
	if disabled {
		color = th.TextDisabledColor
	}

	caretX := float32(0)
	comp, compCur := e.Composition()
	if hasCaret && comp != "" {
		pre := e.DisplayText(seg[:caret-ln.start])
		post := e.DisplayText(seg[caret-ln.start:])
		preW := measureWidth(f, pre)
		compW := measureWidth(f, comp)
		c.Text(f, origin, pre, color)
		c.Text(f, Vec2{X: origin.X + preW, Y: origin.Y}, comp, color)
		c.Line(Vec2{X: origin.X + preW, Y: origin.Y + lh - 1}, Vec2{X: origin.X + preW + compW, Y: origin.Y + lh - 1}, 1, color)
		c.Text(f, Vec2{X: origin.X + preW + compW, Y: origin.Y}, post, color)
		caretX = preW + measureWidth(f, comp[:compCur])
	} else {
		c.Text(f, origin, e.DisplayText(seg), color)
		if hasCaret {
			caretX = e.PrefixWidth(f, seg, caret-ln.start)
		}
	}

	if hasCaret && e.CaretVisible(th.BlinkPeriod) {
		w := maxf(th.CaretWidth, 1)
		c.FillRect(Rect{X: origin.X + caretX, Y: origin.Y, W: w, H: lh}, 0, th.CaretColor)
	}
}

// selectsLineBreak reports whether the selection covers the '\n' ending ln.
func (e *Editor) selectsLineBreak(full string, ln textLine) bool {
	if ln.end >= len(full) || full[ln.end] != '\n' {
		return false
	}
	s, end := e.SelRange()
	return s <= ln.end && end > ln.end
}
