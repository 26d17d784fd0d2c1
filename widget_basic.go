package widgets

// Label displays static text. It never takes focus.
type Label struct {
	Base
	text  string
	color Color
	wrap  bool
}

// NewLabel creates a label. Text that does not fit is truncated with "..".
func NewLabel(bounds Rect, text string, opts ...Option) *Label {
	l := &Label{text: text}
	l.rect = bounds
	applyBase(&l.Base, applyOptions(opts))
	return l
}

// NewWrappedLabel creates a label that word-wraps inside its bounds.
func NewWrappedLabel(bounds Rect, text string, opts ...Option) *Label {
	l := NewLabel(bounds, text, opts...)
	l.wrap = true
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(s string) { l.text = s }

// SetColor overrides the theme text color. 0 restores it.
func (l *Label) SetColor(c Color) { l.color = c }

// Render implements Widget.
func (l *Label) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(l.theme)
	color := th.TextColor
	if l.color != 0 {
		color = l.color
	}
	if !l.Enabled() {
		color = th.TextDisabledColor
	}
	f := ctx.Font
	lh := lineHeightOf(f, defaultLineHeight)

	if !l.wrap {
		y := l.rect.Y + (l.rect.H-lh)/2
		c.Text(f, Vec2{X: l.rect.X, Y: y}, TruncateText(f, l.text, l.rect.W), color)
		return
	}
	c.PushClip(l.rect)
	for i, line := range WrapText(f, l.text, l.rect.W) {
		c.Text(f, Vec2{X: l.rect.X, Y: l.rect.Y + float32(i)*lh}, line, color)
	}
	c.PopClip()
}

// Button is a push button. It clicks on release inside its bounds, or on
// Enter/Space while focused.
type Button struct {
	Base
	label   string
	pressed bool

	OnClick func()
}

// NewButton creates a button.
func NewButton(bounds Rect, label string, onClick func(), opts ...Option) *Button {
	b := &Button{label: label, OnClick: onClick}
	b.rect = bounds
	applyBase(&b.Base, applyOptions(opts))
	return b
}

// Label returns the caption.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the caption.
func (b *Button) SetLabel(s string) { b.label = s }

// Pressed reports whether the pointer is held down on the button.
func (b *Button) Pressed() bool { return b.pressed }

// Focusable reports true.
func (b *Button) Focusable() bool { return true }

// CursorHint returns the hand.
func (b *Button) CursorHint() CursorKind { return CursorHand }

// Click runs OnClick.
func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

// HandleEvent implements Widget.
func (b *Button) HandleEvent(ctx *Context, ev Event) bool {
	b.trackHover(ev)
	if !interactive(b) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button != MouseButtonLeft || !b.HitTest(ev.Pos) {
			return false
		}
		b.pressed = true
		ctx.CaptureMouse(b)
		return true
	case EventPointerUp:
		if !b.pressed {
			return false
		}
		b.pressed = false
		ctx.ReleaseMouse(b)
		if b.HitTest(ev.Pos) {
			b.Click()
		}
		return true
	case EventPointerMove:
		return b.pressed
	case EventKeyDown:
		if b.focused && (ev.Key == KeyEnter || ev.Key == KeySpace) && ev.Mods == 0 {
			b.Click()
			return true
		}
	case EventWindowFocusLost:
		b.pressed = false
	}
	return false
}

// FocusChanged implements Widget.
func (b *Button) FocusChanged(ctx *Context, focused bool) {
	b.Base.FocusChanged(ctx, focused)
	if !focused && b.pressed {
		b.pressed = false
		ctx.ReleaseMouse(b)
	}
}

// Render implements Widget.
func (b *Button) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(b.theme)

	bg := th.ButtonColor
	switch {
	case !b.Enabled():
		bg = th.ButtonDisabledColor
	case b.pressed:
		bg = th.ButtonActiveColor
	case b.hovered:
		bg = th.ButtonHoveredColor
	}
	c.FillRect(b.rect, th.Rounding, bg)

	f := ctx.Font
	size := Vec2{X: measureWidth(f, b.label), Y: lineHeightOf(f, defaultLineHeight)}
	textColor := th.TextColor
	if !b.Enabled() {
		textColor = th.TextDisabledColor
	}
	c.Text(f, Vec2{X: b.rect.X + (b.rect.W-size.X)/2, Y: b.rect.Y + (b.rect.H-size.Y)/2}, b.label, textColor)

	if b.focused {
		DrawFocusRing(c, b.rect, th)
	}
}

// Checkbox toggles a bound bool.
type Checkbox struct {
	Base
	label string
	value Binding[bool]

	OnChange func(checked bool)
}

// NewCheckbox creates a checkbox bound to value.
func NewCheckbox(bounds Rect, label string, value Binding[bool], opts ...Option) *Checkbox {
	cb := &Checkbox{label: label, value: value}
	cb.rect = bounds
	applyBase(&cb.Base, applyOptions(opts))
	return cb
}

// Checked returns the bound value.
func (cb *Checkbox) Checked() bool { return getOr(cb.value, false) }

// Toggle flips the bound value.
func (cb *Checkbox) Toggle() {
	v := !cb.Checked()
	if cb.value != nil {
		cb.value.Set(v)
	}
	if cb.OnChange != nil {
		cb.OnChange(v)
	}
}

// Focusable reports true.
func (cb *Checkbox) Focusable() bool { return true }

// CursorHint returns the hand.
func (cb *Checkbox) CursorHint() CursorKind { return CursorHand }

// HandleEvent implements Widget.
func (cb *Checkbox) HandleEvent(_ *Context, ev Event) bool {
	cb.trackHover(ev)
	if !interactive(cb) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button == MouseButtonLeft && cb.HitTest(ev.Pos) {
			cb.Toggle()
			return true
		}
	case EventKeyDown:
		if cb.focused && (ev.Key == KeySpace || ev.Key == KeyEnter) && ev.Mods == 0 {
			cb.Toggle()
			return true
		}
	}
	return false
}

// Render implements Widget.
func (cb *Checkbox) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(cb.theme)
	f := ctx.Font
	boxSize := minf(cb.rect.H, lineHeightOf(f, defaultLineHeight))
	box := Rect{X: cb.rect.X, Y: cb.rect.Y + (cb.rect.H-boxSize)/2, W: boxSize, H: boxSize}

	boxColor := th.InputBgColor
	if cb.hovered || cb.focused {
		boxColor = th.InputFocusedBgColor
	}
	c.FillRect(box, th.Rounding, boxColor)
	c.StrokeRect(box, th.Rounding, th.BorderSize, th.InputBorderColor)

	if cb.Checked() {
		pad := boxSize * 0.2
		c.Line(Vec2{X: box.X + pad, Y: box.Y + boxSize*0.5}, Vec2{X: box.X + boxSize*0.42, Y: box.Y + boxSize - pad}, 2, th.CheckColor)
		c.Line(Vec2{X: box.X + boxSize*0.42, Y: box.Y + boxSize - pad}, Vec2{X: box.X + boxSize - pad, Y: box.Y + pad}, 2, th.CheckColor)
	}

	textColor := th.TextColor
	if !cb.Enabled() {
		textColor = th.TextDisabledColor
	}
	lh := lineHeightOf(f, defaultLineHeight)
	c.Text(f, Vec2{X: box.X + boxSize + th.ItemSpacing, Y: cb.rect.Y + (cb.rect.H-lh)/2}, cb.label, textColor)

	if cb.focused {
		DrawFocusRing(c, cb.rect, th)
	}
}
