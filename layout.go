package widgets

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout holds the spacing settings of a Stack.
type Layout struct {
	Type     LayoutType
	Gap      float32
	PaddingX float32
	PaddingY float32
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children (like Tailwind gap-*).
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding (like Tailwind p-*).
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.PaddingX, l.PaddingY = pixels, pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) { l.PaddingX, l.PaddingY = x, y }
}

// Stack hands out consecutive slots of an area along one axis. It holds no
// widget state; it only assigns bounds.
//
// Usage:
//
//	col := widgets.Column(area, widgets.Gap(widgets.SpaceSM))
//	col.Place(name, 24)
//	col.Place(notes, 120)
type Stack struct {
	Layout
	area   Rect
	cursor float32
	placed int
}

// Column creates a vertical stack over area.
func Column(area Rect, opts ...LayoutOption) *Stack {
	return newStack(area, LayoutVertical, opts)
}

// Row creates a horizontal stack over area.
func Row(area Rect, opts ...LayoutOption) *Stack {
	return newStack(area, LayoutHorizontal, opts)
}

func newStack(area Rect, t LayoutType, opts []LayoutOption) *Stack {
	s := &Stack{Layout: Layout{Type: t, Gap: SpaceSM}}
	for _, opt := range opts {
		opt(&s.Layout)
	}
	s.area = Rect{
		X: area.X + s.PaddingX,
		Y: area.Y + s.PaddingY,
		W: maxf(0, area.W-s.PaddingX*2),
		H: maxf(0, area.H-s.PaddingY*2),
	}
	return s
}

// Next reserves the next slot of the given size along the stack axis and
// returns it. The cross axis spans the whole area.
func (s *Stack) Next(size float32) Rect {
	if s.placed > 0 {
		s.cursor += s.Gap
	}
	s.placed++
	var r Rect
	if s.Type == LayoutHorizontal {
		r = Rect{X: s.area.X + s.cursor, Y: s.area.Y, W: size, H: s.area.H}
	} else {
		r = Rect{X: s.area.X, Y: s.area.Y + s.cursor, W: s.area.W, H: size}
	}
	s.cursor += size
	return r
}

// Place assigns the next slot to w and returns w.
func (s *Stack) Place(w Widget, size float32) Widget {
	if w != nil {
		w.SetBounds(s.Next(size))
	}
	return w
}

// Space skips pixels along the axis without a gap.
func (s *Stack) Space(pixels float32) { s.cursor += pixels }

// Used returns the extent consumed along the axis, excluding padding.
func (s *Stack) Used() float32 { return s.cursor }

// Remaining returns the free extent along the axis.
func (s *Stack) Remaining() float32 {
	total := s.area.H
	if s.Type == LayoutHorizontal {
		total = s.area.W
	}
	return maxf(0, total-s.cursor)
}
