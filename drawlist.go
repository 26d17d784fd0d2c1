package widgets

import (
	"math"
	"sync"
)

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Backend texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// drawListPool provides reuse of DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool sized to the display.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList(width, height float32) *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.size = Vec2{X: width, Y: height}
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// NewDrawList allocates a DrawList outside the pool.
func NewDrawList(width, height float32) *DrawList {
	dl := &DrawList{size: Vec2{X: width, Y: height}}
	dl.Clear()
	return dl
}

// circleSegments is the tessellation of a full circle. Arcs use a quarter.
const circleSegments = 32

// DrawList accumulates draw commands for a frame and implements Canvas.
// It batches primitives by texture and clip rect to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	size         Vec2
	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command

	path []Vec2 // scratch polygon
	hole []Vec2 // scratch inner polygon for strokes
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{0, 0, dl.size.X, dl.size.Y}
	if dl.size.X <= 0 || dl.size.Y <= 0 {
		dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetSize changes the output size reported by Size. Takes effect for the
// base clip rect on the next Clear.
func (dl *DrawList) SetSize(width, height float32) {
	dl.size = Vec2{X: width, Y: height}
}

// Size returns the output surface size.
func (dl *DrawList) Size() Vec2 { return dl.size }

// PushClip intersects the current clip rectangle with r.
func (dl *DrawList) PushClip(r Rect) {
	c := dl.currentClip
	x1 := maxf(c[0], r.X)
	y1 := maxf(c[1], r.Y)
	x2 := minf(c[2], r.X+r.W)
	y2 := minf(c[3], r.Y+r.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClip restores the clip rectangle saved by the matching PushClip.
func (dl *DrawList) PopClip() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the active clip rectangle.
func (dl *DrawList) ClipRect() Rect {
	c := dl.currentClip
	return Rect{X: c[0], Y: c[1], W: c[2] - c[0], H: c[3] - c[1]}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve makes sure n more vertices fit in the current command's 16-bit
// index range and returns the base index for them.
func (dl *DrawList) reserve(n int) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+n > math.MaxUint16 {
		dl.splitDraw()
	}
	return uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
}

func (dl *DrawList) vtx(x, y float32, color Color) {
	dl.VtxBuffer = append(dl.VtxBuffer, Vertex{Pos: [2]float32{x, y}, Color: uint32(color)})
}

func (dl *DrawList) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color Color) {
	idx := dl.reserve(4)
	c := uint32(color)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: c},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: c},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: c},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: c},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// FillRect draws a filled rectangle. A positive radius rounds the corners.
func (dl *DrawList) FillRect(r Rect, radius float32, color Color) {
	if color.Alpha() == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.SetTexture(0)
	if radius <= 0 {
		dl.quad(r.X, r.Y, r.X+r.W, r.Y+r.H, 0, 0, 0, 0, color)
		return
	}
	dl.path = appendRoundRect(dl.path[:0], r, radius)
	dl.fillConvex(dl.path, color)
}

// StrokeRect draws a rectangle outline of the given thickness, inside r.
func (dl *DrawList) StrokeRect(r Rect, radius, thickness float32, color Color) {
	if color.Alpha() == 0 || thickness <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.SetTexture(0)
	if radius <= 0 {
		t := minf(thickness, minf(r.W, r.H)/2)
		dl.quad(r.X, r.Y, r.X+r.W, r.Y+t, 0, 0, 0, 0, color)
		dl.quad(r.X, r.Y+r.H-t, r.X+r.W, r.Y+r.H, 0, 0, 0, 0, color)
		dl.quad(r.X, r.Y+t, r.X+t, r.Y+r.H-t, 0, 0, 0, 0, color)
		dl.quad(r.X+r.W-t, r.Y+t, r.X+r.W, r.Y+r.H-t, 0, 0, 0, 0, color)
		return
	}
	dl.path = appendRoundRect(dl.path[:0], r, radius)
	dl.hole = appendRoundRect(dl.hole[:0], r.Inset(thickness), maxf(radius-thickness, 0))
	dl.strokeBetween(dl.path, dl.hole, color)
}

// FillCircle draws a filled circle.
func (dl *DrawList) FillCircle(center Vec2, radius float32, color Color) {
	if color.Alpha() == 0 || radius <= 0 {
		return
	}
	dl.SetTexture(0)
	dl.path = appendArc(dl.path[:0], center, radius, 0, 2*math.Pi, circleSegments)
	dl.fillConvex(dl.path, color)
}

// StrokeCircle draws a ring with outer radius radius and the given thickness.
func (dl *DrawList) StrokeCircle(center Vec2, radius, thickness float32, color Color) {
	if color.Alpha() == 0 || radius <= 0 || thickness <= 0 {
		return
	}
	dl.SetTexture(0)
	dl.path = appendArc(dl.path[:0], center, radius, 0, 2*math.Pi, circleSegments)
	dl.hole = appendArc(dl.hole[:0], center, maxf(radius-thickness, 0), 0, 2*math.Pi, circleSegments)
	dl.strokeBetween(dl.path, dl.hole, color)
}

// Line draws a segment of the given thickness with round caps.
func (dl *DrawList) Line(a, b Vec2, thickness float32, color Color) {
	if color.Alpha() == 0 || thickness <= 0 {
		return
	}
	dl.SetTexture(0)
	dx, dy := b.X-a.X, b.Y-a.Y
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.reserve(4)
	dl.vtx(a.X+nx, a.Y+ny, color)
	dl.vtx(b.X+nx, b.Y+ny, color)
	dl.vtx(b.X-nx, b.Y-ny, color)
	dl.vtx(a.X-nx, a.Y-ny, color)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)

	if thickness > 2 {
		dl.FillCircle(a, thickness/2, color)
		dl.FillCircle(b, thickness/2, color)
	}
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(p1, p2, p3 Vec2, color Color) {
	if color.Alpha() == 0 {
		return
	}
	dl.SetTexture(0)
	idx := dl.reserve(3)
	dl.vtx(p1.X, p1.Y, color)
	dl.vtx(p2.X, p2.Y, color)
	dl.vtx(p3.X, p3.Y, color)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// Text draws one line of text with its top-left corner at pos. Fonts that
// are not atlas-backed (or have not been uploaded yet) draw nothing.
func (dl *DrawList) Text(font Font, pos Vec2, text string, color Color) {
	if font == nil || text == "" || color.Alpha() == 0 {
		return
	}
	gf, ok := font.(GlyphFont)
	if !ok || gf.TextureID() == 0 {
		return
	}
	dl.AddGlyphQuads(gf.TextureID(), gf.GlyphQuads(text, pos.X, pos.Y), color)
}

// AddGlyphQuads draws glyph quads sampled from the given atlas texture.
func (dl *DrawList) AddGlyphQuads(textureID uint32, quads []GlyphQuad, color Color) {
	if color.Alpha() == 0 || len(quads) == 0 {
		return
	}
	dl.SetTexture(textureID)
	for _, q := range quads {
		dl.quad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, color)
	}
}

// Image copies the uv sub-rectangle of a texture to dst, tinted.
func (dl *DrawList) Image(textureID uint32, dst Rect, uv [4]float32, tint Color) {
	if textureID == 0 || tint.Alpha() == 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}
	dl.SetTexture(textureID)
	dl.quad(dst.X, dst.Y, dst.X+dst.W, dst.Y+dst.H, uv[0], uv[1], uv[2], uv[3], tint)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
	// Further primitives after Finalize open a fresh command.
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
}

// fillConvex triangulates a convex polygon as a fan.
func (dl *DrawList) fillConvex(pts []Vec2, color Color) {
	if len(pts) < 3 {
		return
	}
	idx := dl.reserve(len(pts))
	for _, p := range pts {
		dl.vtx(p.X, p.Y, color)
	}
	for i := 1; i+1 < len(pts); i++ {
		dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+uint16(i), idx+uint16(i+1))
	}
}

// strokeBetween fills the band between two closed polygons with the same
// vertex count.
func (dl *DrawList) strokeBetween(outer, inner []Vec2, color Color) {
	n := len(outer)
	if n < 3 || len(inner) != n {
		return
	}
	idx := dl.reserve(2 * n)
	for i := 0; i < n; i++ {
		dl.vtx(outer[i].X, outer[i].Y, color)
		dl.vtx(inner[i].X, inner[i].Y, color)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		o0, i0 := idx+uint16(2*i), idx+uint16(2*i+1)
		o1, i1 := idx+uint16(2*j), idx+uint16(2*j+1)
		dl.IdxBuffer = append(dl.IdxBuffer, o0, o1, i1, o0, i1, i0)
	}
}

// appendArc appends segs+1 points of an arc (segs for a full circle, since
// the closing point repeats the first).
func appendArc(dst []Vec2, c Vec2, radius float32, a0, a1 float64, segs int) []Vec2 {
	full := a1-a0 >= 2*math.Pi
	n := segs
	if !full {
		n++
	}
	for i := 0; i < n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(segs)
		s, co := math.Sincos(a)
		dst = append(dst, Vec2{X: c.X + float32(co)*radius, Y: c.Y + float32(s)*radius})
	}
	return dst
}

// appendRoundRect appends the outline of a rounded rectangle, clockwise
// from the top-left arc. Always emits the same number of points for a given
// tessellation so inner and outer paths line up.
func appendRoundRect(dst []Vec2, r Rect, radius float32) []Vec2 {
	radius = minf(radius, minf(r.W, r.H)/2)
	const q = circleSegments / 4
	x0, y0 := r.X+radius, r.Y+radius
	x1, y1 := r.X+r.W-radius, r.Y+r.H-radius
	dst = appendArc(dst, Vec2{X: x0, Y: y0}, radius, math.Pi, 1.5*math.Pi, q)
	dst = appendArc(dst, Vec2{X: x1, Y: y0}, radius, 1.5*math.Pi, 2*math.Pi-1e-9, q)
	dst = appendArc(dst, Vec2{X: x1, Y: y1}, radius, 0, 0.5*math.Pi, q)
	dst = appendArc(dst, Vec2{X: x0, Y: y1}, radius, 0.5*math.Pi, math.Pi, q)
	return dst
}
