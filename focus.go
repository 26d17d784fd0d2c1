package widgets

// FocusRing is the ordered list of widgets keyboard focus cycles through.
// It holds non-owning references; removing a widget from the manager drops
// it from the ring.
//
// Key features:
// - index is -1 (nothing focused) or a valid position
// - FocusNext / FocusPrev wrap around and skip entries that cannot focus
// - the whole ring can be snapshotted and restored (popups)
type FocusRing struct {
	items        []Widget
	focusedIndex int // -1 = none
}

// NewFocusRing creates an empty ring.
func NewFocusRing() *FocusRing {
	return &FocusRing{focusedIndex: -1}
}

// Len returns the number of entries.
func (r *FocusRing) Len() int { return len(r.items) }

// Items returns the entries. The slice must not be modified.
func (r *FocusRing) Items() []Widget { return r.items }

// Index returns the focused index, or -1.
func (r *FocusRing) Index() int { return r.focusedIndex }

// Current returns the focused widget, or nil.
func (r *FocusRing) Current() Widget {
	if r.focusedIndex < 0 || r.focusedIndex >= len(r.items) {
		return nil
	}
	return r.items[r.focusedIndex]
}

// IndexOf returns the position of w, or -1.
func (r *FocusRing) IndexOf(w Widget) int {
	for i, it := range r.items {
		if it == w {
			return i
		}
	}
	return -1
}

// Add appends w unless it is already present.
func (r *FocusRing) Add(w Widget) {
	if w == nil || r.IndexOf(w) >= 0 {
		return
	}
	r.items = append(r.items, w)
}

// Remove drops w and keeps the index pointing at the same widget. If w was
// focused the index becomes -1. Returns whether w was focused.
func (r *FocusRing) Remove(w Widget) bool {
	i := r.IndexOf(w)
	if i < 0 {
		return false
	}
	wasFocused := i == r.focusedIndex
	r.items = append(r.items[:i], r.items[i+1:]...)
	switch {
	case wasFocused:
		r.focusedIndex = -1
	case r.focusedIndex > i:
		r.focusedIndex--
	}
	r.clamp()
	return wasFocused
}

// SetIndex sets the focused index. Out-of-range values become -1.
func (r *FocusRing) SetIndex(i int) {
	r.focusedIndex = i
	r.clamp()
}

// next returns the index FocusNext would move to, or -1 if no entry can
// take focus.
func (r *FocusRing) next() int {
	n := len(r.items)
	if n == 0 {
		return -1
	}
	start := r.focusedIndex
	for step := 1; step <= n; step++ {
		i := (start + step) % n
		if start < 0 {
			i = step - 1
		}
		if canFocus(r.items[i]) {
			return i
		}
	}
	return -1
}

// prev is the mirror of next.
func (r *FocusRing) prev() int {
	n := len(r.items)
	if n == 0 {
		return -1
	}
	start := r.focusedIndex
	if start < 0 {
		start = n
	}
	for step := 1; step <= n; step++ {
		i := ((start-step)%n + n) % n
		if canFocus(r.items[i]) {
			return i
		}
	}
	return -1
}

// Clear removes every entry and resets the index.
func (r *FocusRing) Clear() {
	r.items = r.items[:0]
	r.focusedIndex = -1
}

// snapshot copies the ring so it can be restored later.
func (r *FocusRing) snapshot() focusSnapshot {
	items := make([]Widget, len(r.items))
	copy(items, r.items)
	return focusSnapshot{items: items, index: r.focusedIndex}
}

// restore replaces the ring with a snapshot.
func (r *FocusRing) restore(s focusSnapshot) {
	r.items = s.items
	r.focusedIndex = s.index
	r.clamp()
}

// reset replaces the entries and clears the index.
func (r *FocusRing) reset(items []Widget) {
	r.items = items
	r.focusedIndex = -1
}

func (r *FocusRing) clamp() {
	if r.focusedIndex < -1 || r.focusedIndex >= len(r.items) {
		r.focusedIndex = -1
	}
}

type focusSnapshot struct {
	items []Widget
	index int
}

// DrawFocusRing draws a focus indicator around r using the theme's
// FocusColor.
func DrawFocusRing(c Canvas, r Rect, theme *Theme) {
	offset := SpaceXS
	thickness := theme.BorderSize + 1
	color := theme.FocusColor
	if color == 0 {
		color = ColorCyan
	}
	c.StrokeRect(Rect{X: r.X - offset, Y: r.Y - offset, W: r.W + offset*2, H: r.H + offset*2},
		theme.Rounding, thickness, color)
}
