package widgets

// Canvas is the rendering backend widgets paint through. DrawList is the
// stock implementation; backends consume the DrawList.
type Canvas interface {
	// FillRect draws a filled rectangle with optional corner radius.
	FillRect(r Rect, radius float32, color Color)
	// StrokeRect draws a rectangle outline of the given thickness.
	StrokeRect(r Rect, radius, thickness float32, color Color)
	// FillCircle draws a filled circle.
	FillCircle(center Vec2, radius float32, color Color)
	// StrokeCircle draws a ring: outer radius plus thickness inward.
	StrokeCircle(center Vec2, radius, thickness float32, color Color)
	// Line draws a thick segment with rounded ends.
	Line(a, b Vec2, thickness float32, color Color)
	// Text draws a single line of text with its top-left corner at pos.
	// A nil font skips the draw.
	Text(font Font, pos Vec2, text string, color Color)
	// Image copies (a portion of) a texture to dst. uv is u0, v0, u1, v1.
	Image(textureID uint32, dst Rect, uv [4]float32, tint Color)
	// PushClip intersects the clip region with r until the matching PopClip.
	PushClip(r Rect)
	PopClip()
	// Size returns the output surface size.
	Size() Vec2
}
