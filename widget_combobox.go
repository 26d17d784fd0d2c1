package widgets

import "go.uber.org/zap"

// defaultDropdownHeight caps the dropdown when WithMaxDropdownHeight is unset.
const defaultDropdownHeight float32 = 200

// ComboBox selects one of a list of items. The selection is a bound index;
// an index outside the list shows nothing. While expanded it captures the
// mouse, so a click outside collapses it without reaching the widget below.
type ComboBox struct {
	Base
	items    []string
	selected Binding[int]
	maxH     float32

	expanded bool
	hoverIdx int
	keyIdx   int
	scrollY  float32

	OnChange func(index int)
}

// NewComboBox creates a combo box over items bound to selected.
func NewComboBox(bounds Rect, items []string, selected Binding[int], opts ...Option) *ComboBox {
	o := applyOptions(opts)
	cb := &ComboBox{
		items:    items,
		selected: selected,
		maxH:     GetOpt(o, OptMaxDropdownHeight),
		hoverIdx: -1,
		keyIdx:   -1,
	}
	if cb.maxH <= 0 {
		cb.maxH = defaultDropdownHeight
	}
	cb.rect = bounds
	applyBase(&cb.Base, o)
	return cb
}

// Items returns the item list.
func (cb *ComboBox) Items() []string { return cb.items }

// SetItems replaces the items. The bound index is left alone.
func (cb *ComboBox) SetItems(items []string) {
	cb.items = items
	cb.keyIdx = clampi(cb.keyIdx, -1, len(items)-1)
}

// Selected returns the bound index, which may be out of range.
func (cb *ComboBox) Selected() int { return getOr(cb.selected, -1) }

// SelectedText returns the selected item, or "" for an out-of-range index.
func (cb *ComboBox) SelectedText() string {
	i := cb.Selected()
	if i < 0 || i >= len(cb.items) {
		return ""
	}
	return cb.items[i]
}

// Select stores index i and runs OnChange when it changed.
func (cb *ComboBox) Select(i int) {
	if i < 0 || i >= len(cb.items) || i == cb.Selected() {
		return
	}
	if cb.selected != nil {
		cb.selected.Set(i)
	}
	if cb.OnChange != nil {
		cb.OnChange(i)
	}
}

// Expanded reports whether the dropdown is open.
func (cb *ComboBox) Expanded() bool { return cb.expanded }

// Expand opens the dropdown and captures the mouse.
func (cb *ComboBox) Expand(ctx *Context) {
	if cb.expanded || len(cb.items) == 0 {
		return
	}
	cb.expanded = true
	cb.hoverIdx = -1
	cb.keyIdx = clampi(cb.Selected(), -1, len(cb.items)-1)
	cb.scrollY = 0
	cb.revealKey()
	ctx.CaptureMouse(cb)
	ctx.log().Debug("combo box expanded", zap.Int("items", len(cb.items)), zap.Int("selected", cb.Selected()))
}

// Collapse closes the dropdown and releases the capture.
func (cb *ComboBox) Collapse(ctx *Context) {
	if !cb.expanded {
		return
	}
	cb.expanded = false
	cb.hoverIdx = -1
	ctx.ReleaseMouse(cb)
	ctx.log().Debug("combo box collapsed", zap.Int("selected", cb.Selected()))
}

// Focusable reports true.
func (cb *ComboBox) Focusable() bool { return true }

// CursorHint returns the hand.
func (cb *ComboBox) CursorHint() CursorKind { return CursorHand }

// HitTest covers the dropdown while expanded.
func (cb *ComboBox) HitTest(p Vec2) bool {
	if !cb.Visible() {
		return false
	}
	return cb.rect.Contains(p) || (cb.expanded && cb.dropdownRect().Contains(p))
}

func (cb *ComboBox) itemHeight() float32 { return cb.rect.H }

func (cb *ComboBox) dropdownRect() Rect {
	h := minf(float32(len(cb.items))*cb.itemHeight(), cb.maxH)
	return Rect{X: cb.rect.X, Y: cb.rect.Y + cb.rect.H, W: cb.rect.W, H: h}
}

func (cb *ComboBox) clipper() ListClipper {
	return NewListClipper(len(cb.items), cb.itemHeight(), cb.dropdownRect().H, cb.scrollY)
}

func (cb *ComboBox) maxScroll() float32 {
	return cb.clipper().MaxScroll(cb.dropdownRect().H)
}

// itemAt returns the item index under p, or -1.
func (cb *ComboBox) itemAt(p Vec2) int {
	dd := cb.dropdownRect()
	if !dd.Contains(p) {
		return -1
	}
	i := int((p.Y - dd.Y + cb.scrollY) / cb.itemHeight())
	if i < 0 || i >= len(cb.items) {
		return -1
	}
	return i
}

// revealKey scrolls the dropdown so the keyboard item is visible.
func (cb *ComboBox) revealKey() {
	if cb.keyIdx < 0 {
		return
	}
	cb.scrollY = cb.clipper().ScrollToItem(cb.keyIdx, cb.scrollY, cb.dropdownRect().H)
}

// HandleEvent implements Widget.
func (cb *ComboBox) HandleEvent(ctx *Context, ev Event) bool {
	cb.trackHover(ev)
	if !interactive(cb) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if !cb.expanded {
			if ev.Button != MouseButtonLeft || !cb.rect.Contains(ev.Pos) {
				return false
			}
			cb.Expand(ctx)
			return true
		}
		if i := cb.itemAt(ev.Pos); i >= 0 && ev.Button == MouseButtonLeft {
			cb.Select(i)
		}
		cb.Collapse(ctx)
		return true

	case EventPointerMove:
		if !cb.expanded {
			return false
		}
		cb.hoverIdx = cb.itemAt(ev.Pos)
		return true

	case EventPointerUp:
		return cb.expanded

	case EventWheel:
		if !cb.expanded {
			return false
		}
		cb.scrollY = clampf(cb.scrollY-ev.Wheel.Y*cb.itemHeight(), 0, cb.maxScroll())
		cb.hoverIdx = cb.itemAt(ev.Pos)
		return true

	case EventKeyDown:
		if !cb.focused {
			return false
		}
		return cb.handleKey(ctx, ev)

	case EventWindowFocusLost:
		cb.Collapse(ctx)
	}
	return false
}

func (cb *ComboBox) handleKey(ctx *Context, ev Event) bool {
	if !cb.expanded {
		switch ev.Key {
		case KeyEnter, KeySpace:
			cb.Expand(ctx)
		case KeyUp:
			cb.Select(cb.Selected() - 1)
		case KeyDown:
			cb.Select(cb.Selected() + 1)
		default:
			return false
		}
		return true
	}
	switch ev.Key {
	case KeyEscape:
		cb.Collapse(ctx)
	case KeyUp:
		cb.keyIdx = max(0, cb.keyIdx-1)
		cb.revealKey()
	case KeyDown:
		cb.keyIdx = min(len(cb.items)-1, cb.keyIdx+1)
		cb.revealKey()
	case KeyHome:
		cb.keyIdx = 0
		cb.revealKey()
	case KeyEnd:
		cb.keyIdx = len(cb.items) - 1
		cb.revealKey()
	case KeyEnter, KeySpace:
		cb.Select(cb.keyIdx)
		cb.Collapse(ctx)
	default:
		return false
	}
	return true
}

// FocusChanged collapses the dropdown on blur.
func (cb *ComboBox) FocusChanged(ctx *Context, focused bool) {
	cb.Base.FocusChanged(ctx, focused)
	if !focused {
		cb.Collapse(ctx)
	}
}

// Render draws the header. The dropdown is drawn by RenderOverlay.
func (cb *ComboBox) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(cb.theme)
	f := ctx.Font
	lh := lineHeightOf(f, defaultLineHeight)

	bg := th.ButtonColor
	switch {
	case !cb.Enabled():
		bg = th.ButtonDisabledColor
	case cb.hovered || cb.expanded:
		bg = th.ButtonHoveredColor
	}
	c.FillRect(cb.rect, th.Rounding, bg)
	c.StrokeRect(cb.rect, th.Rounding, th.BorderSize, th.InputBorderColor)

	arrowSize := minf(8, cb.rect.H/2)
	textW := cb.rect.W - th.Padding*3 - arrowSize
	textColor := th.TextColor
	if !cb.Enabled() {
		textColor = th.TextDisabledColor
	}
	c.Text(f, Vec2{X: cb.rect.X + th.Padding, Y: cb.rect.Y + (cb.rect.H-lh)/2}, TruncateText(f, cb.SelectedText(), textW), textColor)

	ax := cb.rect.X + cb.rect.W - th.Padding - arrowSize
	ay := cb.rect.Y + cb.rect.H/2
	dir := float32(1)
	if cb.expanded {
		dir = -1
	}
	tip := Vec2{X: ax + arrowSize/2, Y: ay + dir*arrowSize/4}
	left := Vec2{X: ax, Y: ay - dir*arrowSize/4}
	right := Vec2{X: ax + arrowSize, Y: ay - dir*arrowSize/4}
	if tf, ok := c.(triangleFiller); ok {
		tf.AddTriangle(tip, left, right, th.ComboArrowColor)
	} else {
		c.Line(left, tip, 1.5, th.ComboArrowColor)
		c.Line(tip, right, 1.5, th.ComboArrowColor)
	}

	if cb.focused {
		DrawFocusRing(c, cb.rect, th)
	}
}

// triangleFiller is implemented by canvases with a filled-triangle primitive
// (DrawList).
type triangleFiller interface {
	AddTriangle(p1, p2, p3 Vec2, color Color)
}

// RenderOverlay draws the dropdown list above every regular widget.
func (cb *ComboBox) RenderOverlay(ctx *Context, c Canvas) {
	if !cb.expanded {
		return
	}
	th := ctx.ThemeFor(cb.theme)
	f := ctx.Font
	lh := lineHeightOf(f, defaultLineHeight)
	dd := cb.dropdownRect()
	ih := cb.itemHeight()

	c.FillRect(dd, 0, th.DropdownBgColor)
	c.StrokeRect(dd, 0, th.BorderSize, th.InputBorderColor)
	c.PushClip(dd)
	sel := cb.Selected()
	clip := NewListClipper(len(cb.items), ih, dd.H, cb.scrollY)
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		item := cb.items[i]
		r := Rect{X: dd.X, Y: clip.ItemY(i, dd.Y, cb.scrollY), W: dd.W, H: ih}
		textColor := th.TextColor
		switch {
		case i == sel || i == cb.keyIdx:
			c.FillRect(r, 0, th.SelectedBgColor)
			textColor = th.SelectedTextColor
		case i == cb.hoverIdx:
			c.FillRect(r, 0, th.HoveredBgColor)
		}
		c.Text(f, Vec2{X: r.X + th.Padding, Y: r.Y + (ih-lh)/2}, item, textColor)
	}
	c.PopClip()
}
