package widgets

import "fmt"

// grabWidth is the slider handle width in pixels.
const grabWidth float32 = 12

// Slider edits a bound float32 between a min and max.
type Slider struct {
	Base
	value    Binding[float32]
	min, max float32
	step     float32
	format   string
	dragging bool

	OnChange func(v float32)
}

// NewSlider creates a slider. The range defaults to [0, 1]; WithRange,
// WithStep and WithFormat configure it.
func NewSlider(bounds Rect, value Binding[float32], opts ...Option) *Slider {
	o := applyOptions(opts)
	s := &Slider{value: value, min: 0, max: 1, step: GetOpt(o, OptStep), format: GetOpt(o, OptFormat)}
	if r := GetOpt(o, OptRange); r.HasRange {
		s.min, s.max = r.Min, r.Max
	}
	if s.max < s.min {
		s.min, s.max = s.max, s.min
	}
	if s.format == "" {
		s.format = "%.2f"
	}
	s.rect = bounds
	applyBase(&s.Base, o)
	return s
}

// Value returns the bound value clamped to the range.
func (s *Slider) Value() float32 { return clampf(getOr(s.value, s.min), s.min, s.max) }

// Range returns min and max.
func (s *Slider) Range() (minVal, maxVal float32) { return s.min, s.max }

// SetValue snaps v to the step, clamps it and stores it when it changed.
func (s *Slider) SetValue(v float32) {
	if s.step > 0 {
		v = s.min + float32(int((v-s.min)/s.step+0.5))*s.step
	}
	v = clampf(v, s.min, s.max)
	if v == getOr(s.value, s.min) {
		return
	}
	if s.value != nil {
		s.value.Set(v)
	}
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// keyStep is the keyboard/wheel increment: the step, or 1% of the range.
func (s *Slider) keyStep() float32 {
	if s.step > 0 {
		return s.step
	}
	return (s.max - s.min) / 100
}

// Focusable reports true.
func (s *Slider) Focusable() bool { return true }

// CursorHint returns the hand.
func (s *Slider) CursorHint() CursorKind { return CursorHand }

func (s *Slider) valueAt(x float32) float32 {
	ratio := clampf((x-s.rect.X-grabWidth/2)/maxf(1, s.rect.W-grabWidth), 0, 1)
	return s.min + ratio*(s.max-s.min)
}

// HandleEvent implements Widget.
func (s *Slider) HandleEvent(ctx *Context, ev Event) bool {
	s.trackHover(ev)
	if !interactive(s) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button != MouseButtonLeft || !s.HitTest(ev.Pos) {
			return false
		}
		s.dragging = true
		ctx.CaptureMouse(s)
		s.SetValue(s.valueAt(ev.Pos.X))
		return true
	case EventPointerMove:
		if !s.dragging {
			return false
		}
		s.SetValue(s.valueAt(ev.Pos.X))
		return true
	case EventPointerUp:
		if !s.dragging {
			return false
		}
		s.dragging = false
		ctx.ReleaseMouse(s)
		return true
	case EventWheel:
		if ev.Wheel.Y == 0 {
			return false
		}
		s.SetValue(s.Value() + ev.Wheel.Y*s.keyStep())
		return true
	case EventKeyDown:
		if !s.focused {
			return false
		}
		switch ev.Key {
		case KeyLeft, KeyDown:
			s.SetValue(s.Value() - s.keyStep())
		case KeyRight, KeyUp:
			s.SetValue(s.Value() + s.keyStep())
		case KeyHome:
			s.SetValue(s.min)
		case KeyEnd:
			s.SetValue(s.max)
		default:
			return false
		}
		return true
	case EventWindowFocusLost:
		s.dragging = false
	}
	return false
}

// Render implements Widget.
func (s *Slider) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(s.theme)
	f := ctx.Font

	trackH := s.rect.H * 0.5
	track := Rect{X: s.rect.X, Y: s.rect.Y + (s.rect.H-trackH)/2, W: s.rect.W, H: trackH}
	ratio := float32(0)
	if s.max > s.min {
		ratio = (s.Value() - s.min) / (s.max - s.min)
	}
	c.FillRect(track, th.Rounding, th.SliderTrackColor)
	if fill := ratio * s.rect.W; fill > 0 {
		c.FillRect(Rect{X: track.X, Y: track.Y, W: fill, H: track.H}, th.Rounding, th.SliderFillColor)
	}

	grab := th.SliderGrabColor
	if s.dragging || s.hovered {
		grab = th.SliderGrabActive
	}
	grabX := s.rect.X + ratio*(s.rect.W-grabWidth)
	c.FillRect(Rect{X: grabX, Y: s.rect.Y, W: grabWidth, H: s.rect.H}, th.Rounding, grab)

	text := fmt.Sprintf(s.format, s.Value())
	lh := lineHeightOf(f, defaultLineHeight)
	c.Text(f, Vec2{X: s.rect.X + (s.rect.W-measureWidth(f, text))/2, Y: s.rect.Y + (s.rect.H-lh)/2}, text, th.TextColor)

	if s.focused {
		DrawFocusRing(c, s.rect, th)
	}
}

// Spinner edits a bound int with -/+ zones at either end.
type Spinner struct {
	Base
	value    Binding[int]
	min, max int
	step     int
	hasRange bool

	OnChange func(v int)
}

// NewSpinner creates a spinner. WithRange bounds it; WithStep sets the
// increment (default 1).
func NewSpinner(bounds Rect, value Binding[int], opts ...Option) *Spinner {
	o := applyOptions(opts)
	s := &Spinner{value: value, step: int(GetOpt(o, OptStep))}
	if r := GetOpt(o, OptRange); r.HasRange {
		s.min, s.max, s.hasRange = int(r.Min), int(r.Max), true
		if s.max < s.min {
			s.min, s.max = s.max, s.min
		}
	}
	if s.step <= 0 {
		s.step = 1
	}
	s.rect = bounds
	applyBase(&s.Base, o)
	return s
}

func (s *Spinner) clamp(v int) int {
	if !s.hasRange {
		return v
	}
	return clampi(v, s.min, s.max)
}

// Value returns the bound value clamped to the range.
func (s *Spinner) Value() int { return s.clamp(getOr(s.value, 0)) }

// SetValue clamps v and stores it when it changed.
func (s *Spinner) SetValue(v int) {
	v = s.clamp(v)
	if v == getOr(s.value, 0) {
		return
	}
	if s.value != nil {
		s.value.Set(v)
	}
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Increment adds n steps (negative to decrement).
func (s *Spinner) Increment(n int) { s.SetValue(s.Value() + n*s.step) }

// zones returns the decrement and increment button rects.
func (s *Spinner) zones() (dec, inc Rect) {
	w := minf(s.rect.H, s.rect.W/3)
	dec = Rect{X: s.rect.X, Y: s.rect.Y, W: w, H: s.rect.H}
	inc = Rect{X: s.rect.X + s.rect.W - w, Y: s.rect.Y, W: w, H: s.rect.H}
	return dec, inc
}

// Focusable reports true.
func (s *Spinner) Focusable() bool { return true }

// CursorHint returns the hand.
func (s *Spinner) CursorHint() CursorKind { return CursorHand }

// HandleEvent implements Widget.
func (s *Spinner) HandleEvent(_ *Context, ev Event) bool {
	s.trackHover(ev)
	if !interactive(s) {
		return false
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button != MouseButtonLeft || !s.HitTest(ev.Pos) {
			return false
		}
		dec, inc := s.zones()
		switch {
		case dec.Contains(ev.Pos):
			s.Increment(-1)
		case inc.Contains(ev.Pos):
			s.Increment(1)
		}
		return true
	case EventWheel:
		switch {
		case ev.Wheel.Y > 0:
			s.Increment(1)
		case ev.Wheel.Y < 0:
			s.Increment(-1)
		default:
			return false
		}
		return true
	case EventKeyDown:
		if !s.focused {
			return false
		}
		switch ev.Key {
		case KeyUp, KeyRight:
			s.Increment(1)
		case KeyDown, KeyLeft:
			s.Increment(-1)
		case KeyPageUp:
			s.Increment(10)
		case KeyPageDown:
			s.Increment(-10)
		case KeyHome:
			if !s.hasRange {
				return false
			}
			s.SetValue(s.min)
		case KeyEnd:
			if !s.hasRange {
				return false
			}
			s.SetValue(s.max)
		default:
			return false
		}
		return true
	}
	return false
}

// Render implements Widget.
func (s *Spinner) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(s.theme)
	f := ctx.Font
	lh := lineHeightOf(f, defaultLineHeight)

	bg := th.InputBgColor
	if s.focused {
		bg = th.InputFocusedBgColor
	}
	c.FillRect(s.rect, th.Rounding, bg)
	c.StrokeRect(s.rect, th.Rounding, th.BorderSize, th.InputBorderColor)

	dec, inc := s.zones()
	for _, z := range []struct {
		r     Rect
		label string
	}{{dec, "-"}, {inc, "+"}} {
		col := th.ButtonColor
		if s.hovered && z.r.Contains(ctx.Pointer) {
			col = th.ButtonHoveredColor
		}
		c.FillRect(z.r, th.Rounding, col)
		c.Text(f, Vec2{X: z.r.X + (z.r.W-measureWidth(f, z.label))/2, Y: z.r.Y + (z.r.H-lh)/2}, z.label, th.TextColor)
	}

	text := fmt.Sprintf("%d", s.Value())
	textColor := th.TextColor
	if !s.Enabled() {
		textColor = th.TextDisabledColor
	}
	c.Text(f, Vec2{X: s.rect.X + (s.rect.W-measureWidth(f, text))/2, Y: s.rect.Y + (s.rect.H-lh)/2}, text, textColor)

	if s.focused {
		DrawFocusRing(c, s.rect, th)
	}
}
