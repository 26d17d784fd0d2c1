package widgets

// RadioGroup owns a set of mutually exclusive RadioButtons sharing one bound
// index. The buttons are its children and also sit in the focus ring.
type RadioGroup struct {
	Base
	childList
	selected Binding[int]
	buttons  []*RadioButton

	OnChange func(index int)
}

// NewRadioGroup creates a group bound to selected. Buttons are added with
// AddOption.
func NewRadioGroup(bounds Rect, selected Binding[int], opts ...Option) *RadioGroup {
	g := &RadioGroup{selected: selected}
	g.rect = bounds
	applyBase(&g.Base, applyOptions(opts))
	return g
}

// NewRadioGroupWithItems creates a group and lays out one button per item
// vertically inside bounds.
func NewRadioGroupWithItems(bounds Rect, items []string, selected Binding[int], opts ...Option) *RadioGroup {
	g := NewRadioGroup(bounds, selected, opts...)
	if len(items) == 0 {
		return g
	}
	h := bounds.H / float32(len(items))
	for i, item := range items {
		g.AddOption(Rect{X: bounds.X, Y: bounds.Y + float32(i)*h, W: bounds.W, H: h}, item)
	}
	return g
}

// AddOption appends a button selecting the next index.
func (g *RadioGroup) AddOption(bounds Rect, label string) *RadioButton {
	b := &RadioButton{group: g, index: len(g.buttons), label: label}
	b.rect = bounds
	b.theme = g.theme
	g.buttons = append(g.buttons, b)
	g.Add(b)
	return b
}

// Buttons returns the group's buttons in index order.
func (g *RadioGroup) Buttons() []*RadioButton { return g.buttons }

// Selected returns the bound index.
func (g *RadioGroup) Selected() int { return getOr(g.selected, -1) }

// Select stores index i and runs OnChange when it changed.
func (g *RadioGroup) Select(i int) {
	if i < 0 || i >= len(g.buttons) || i == g.Selected() {
		return
	}
	if g.selected != nil {
		g.selected.Set(i)
	}
	if g.OnChange != nil {
		g.OnChange(i)
	}
}

// step moves the selection from button from by dir, skipping disabled or
// hidden buttons and wrapping, and focuses the new button.
func (g *RadioGroup) step(ctx *Context, from, dir int) {
	n := len(g.buttons)
	for k := 1; k <= n; k++ {
		i := ((from+dir*k)%n + n) % n
		if b := g.buttons[i]; interactive(b) {
			g.Select(i)
			ctx.Focus(b)
			return
		}
	}
}

// HandleEvent forwards pointer events to the buttons.
func (g *RadioGroup) HandleEvent(ctx *Context, ev Event) bool {
	g.trackHover(ev)
	if ev.IsPointer() && g.Enabled() {
		return g.dispatchPointer(ctx, ev)
	}
	return false
}

// Update implements Widget.
func (g *RadioGroup) Update(ctx *Context, dt float32) { g.update(ctx, dt) }

// Render implements Widget.
func (g *RadioGroup) Render(ctx *Context, c Canvas) { g.render(ctx, c) }

// RadioButton is one option of a RadioGroup.
type RadioButton struct {
	Base
	group *RadioGroup
	index int
	label string
}

// Index returns the value the button selects.
func (b *RadioButton) Index() int { return b.index }

// Label returns the caption.
func (b *RadioButton) Label() string { return b.label }

// Checked reports whether the group selects this button.
func (b *RadioButton) Checked() bool { return b.group.Selected() == b.index }

// Enabled is false when the button or its group is disabled.
func (b *RadioButton) Enabled() bool { return b.Base.Enabled() && b.group.Enabled() }

// Visible is false when the button or its group is hidden.
func (b *RadioButton) Visible() bool { return b.Base.Visible() && b.group.Visible() }

// Focusable reports true.
func (b *RadioButton) Focusable() bool { return true }

// CursorHint returns the hand.
func (b *RadioButton) CursorHint() CursorKind { return CursorHand }

// HandleEvent implements Widget.
func (b *RadioButton) HandleEvent(ctx *Context, ev Event) bool {
	b.trackHover(ev)
	if !interactive(b) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button == MouseButtonLeft && b.HitTest(ev.Pos) {
			b.group.Select(b.index)
			return true
		}
	case EventKeyDown:
		if !b.focused {
			return false
		}
		switch ev.Key {
		case KeySpace, KeyEnter:
			b.group.Select(b.index)
		case KeyUp, KeyLeft:
			b.group.step(ctx, b.index, -1)
		case KeyDown, KeyRight:
			b.group.step(ctx, b.index, 1)
		default:
			return false
		}
		return true
	}
	return false
}

// Render implements Widget.
func (b *RadioButton) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(b.theme)
	f := ctx.Font
	lh := lineHeightOf(f, defaultLineHeight)
	radius := minf(b.rect.H, lh) / 2
	center := Vec2{X: b.rect.X + radius, Y: b.rect.Y + b.rect.H/2}

	bg := th.InputBgColor
	if b.hovered || b.focused {
		bg = th.InputFocusedBgColor
	}
	c.FillCircle(center, radius, bg)
	c.StrokeCircle(center, radius, th.BorderSize, th.InputBorderColor)
	if b.Checked() {
		c.FillCircle(center, radius*0.5, th.CheckColor)
	}

	color := th.TextColor
	if !b.Enabled() {
		color = th.TextDisabledColor
	}
	c.Text(f, Vec2{X: b.rect.X + radius*2 + th.ItemSpacing, Y: b.rect.Y + (b.rect.H-lh)/2}, b.label, color)

	if b.focused {
		DrawFocusRing(c, b.rect, th)
	}
}
