package widgets

// CursorKind is the mouse cursor shape a widget asks for while hovered.
type CursorKind uint8

const (
	CursorArrow CursorKind = iota
	CursorIBeam
	CursorHand
)

// String returns the cursor name.
func (c CursorKind) String() string {
	switch c {
	case CursorIBeam:
		return "ibeam"
	case CursorHand:
		return "hand"
	default:
		return "arrow"
	}
}

// Widget is the capability set every element managed by a Manager offers.
// Embed Base to get the bookkeeping and sensible defaults.
type Widget interface {
	Bounds() Rect
	SetBounds(r Rect)
	Visible() bool
	Enabled() bool
	// Focusable reports whether the widget can currently take keyboard focus.
	Focusable() bool
	// HitTest reports whether p (window coordinates) lies on the widget.
	HitTest(p Vec2) bool
	// HandleEvent processes an event and reports whether it was consumed.
	HandleEvent(ctx *Context, ev Event) bool
	// Update advances time-based state (caret blink, hover).
	Update(ctx *Context, dt float32)
	Render(ctx *Context, c Canvas)
	// FocusChanged notifies the widget that it gained or lost keyboard focus.
	FocusChanged(ctx *Context, focused bool)
	// CursorHint returns the cursor to show while the pointer is over the
	// widget. Only consulted for hovered widgets.
	CursorHint() CursorKind
}

// Container is implemented by widgets with child widgets.
type Container interface {
	Children() []Widget
}

// Expander is implemented by widgets that can expand over their siblings
// (combo boxes). While expanded the widget updates alone.
type Expander interface {
	Expanded() bool
}

// OverlayRenderer draws content above all regular widgets, such as a combo
// box dropdown.
type OverlayRenderer interface {
	RenderOverlay(ctx *Context, c Canvas)
}

// TextEditing is implemented by widgets that consume typed text. While one
// of them has focus, WhenNoTextEditing shortcuts are suppressed.
type TextEditing interface {
	EditsText() bool
}

// Hoverer is implemented by widgets that track pointer hover.
type Hoverer interface {
	Hovered() bool
}

// Base carries the state every widget shares. Its methods provide the
// default Widget behaviour; embedding types override what they need.
type Base struct {
	rect     Rect
	hidden   bool
	disabled bool
	hovered  bool
	focused  bool
	theme    *Theme
}

// Bounds returns the widget rectangle.
func (b *Base) Bounds() Rect { return b.rect }

// SetBounds moves/resizes the widget.
func (b *Base) SetBounds(r Rect) { b.rect = r }

// Visible reports whether the widget is shown.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible shows or hides the widget.
func (b *Base) SetVisible(v bool) { b.hidden = !v }

// Enabled reports whether the widget accepts input.
func (b *Base) Enabled() bool { return !b.disabled }

// SetEnabled enables or disables the widget.
func (b *Base) SetEnabled(v bool) { b.disabled = !v }

// Focusable is false for the base; interactive widgets override it.
func (b *Base) Focusable() bool { return false }

// HitTest checks p against the bounds.
func (b *Base) HitTest(p Vec2) bool { return !b.hidden && b.rect.Contains(p) }

// HandleEvent consumes nothing.
func (b *Base) HandleEvent(*Context, Event) bool { return false }

// Update does nothing.
func (b *Base) Update(*Context, float32) {}

// Render draws nothing.
func (b *Base) Render(*Context, Canvas) {}

// FocusChanged records the focus state.
func (b *Base) FocusChanged(_ *Context, focused bool) { b.focused = focused }

// HasFocus reports the last focus state delivered by the manager.
func (b *Base) HasFocus() bool { return b.focused }

// CursorHint returns the arrow.
func (b *Base) CursorHint() CursorKind { return CursorArrow }

// Hovered reports whether the pointer was over the widget at the last
// pointer event it saw.
func (b *Base) Hovered() bool { return b.hovered }

// SetTheme installs a per-widget theme override. Nil removes it.
func (b *Base) SetTheme(t *Theme) { b.theme = t }

// ThemeOverride returns the per-widget theme, or nil.
func (b *Base) ThemeOverride() *Theme { return b.theme }

func (b *Base) setHovered(h bool) { b.hovered = h }

// trackHover updates the hovered flag from pointer events.
func (b *Base) trackHover(ev Event) {
	if ev.Kind == EventPointerMove || ev.Kind == EventPointerDown || ev.Kind == EventPointerUp {
		b.hovered = b.rect.Contains(ev.Pos)
	}
}

// interactive reports whether a widget is visible and enabled.
func interactive(w Widget) bool {
	return w != nil && w.Visible() && w.Enabled()
}

// canFocus reports whether w may receive keyboard focus right now.
func canFocus(w Widget) bool {
	return interactive(w) && w.Focusable()
}

// collectFocusable appends w and its focusable descendants in tree order.
// Visibility and enabled state are checked when focus moves, not here.
func collectFocusable(dst []Widget, w Widget) []Widget {
	if w == nil {
		return dst
	}
	if w.Focusable() {
		dst = append(dst, w)
	}
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			dst = collectFocusable(dst, child)
		}
	}
	return dst
}

// findExpanded returns the first expanded Expander in the subtree rooted at w.
func findExpanded(w Widget) Widget {
	if w == nil || !w.Visible() {
		return nil
	}
	if e, ok := w.(Expander); ok && e.Expanded() {
		return w
	}
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			if found := findExpanded(child); found != nil {
				return found
			}
		}
	}
	return nil
}

// containsWidget reports whether target is root or one of its descendants.
func containsWidget(root, target Widget) bool {
	if root == nil || target == nil {
		return false
	}
	if root == target {
		return true
	}
	if c, ok := root.(Container); ok {
		for _, child := range c.Children() {
			if containsWidget(child, target) {
				return true
			}
		}
	}
	return false
}

// cursorFor resolves the cursor of the hovered widgets in the subtree
// rooted at w: the first I-beam wins, otherwise the first hand.
func cursorFor(w Widget) CursorKind {
	if w == nil || !w.Visible() {
		return CursorArrow
	}
	best := CursorArrow
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			switch cursorFor(child) {
			case CursorIBeam:
				return CursorIBeam
			case CursorHand:
				if best == CursorArrow {
					best = CursorHand
				}
			}
		}
	}
	if h, ok := w.(Hoverer); ok && h.Hovered() {
		switch hint := w.CursorHint(); hint {
		case CursorIBeam:
			return CursorIBeam
		case CursorHand:
			if best == CursorArrow {
				best = CursorHand
			}
		}
	}
	return best
}

// composeCursor merges hints in list order: first I-beam wins, else first hand.
func composeCursor(hints ...CursorKind) CursorKind {
	best := CursorArrow
	for _, h := range hints {
		if h == CursorIBeam {
			return CursorIBeam
		}
		if h == CursorHand && best == CursorArrow {
			best = CursorHand
		}
	}
	return best
}
