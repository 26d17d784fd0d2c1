package widgets

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/widgets/internal/logging"
)

// TextureUploader uploads an alpha coverage image and returns its texture ID.
// Passing the ID of an existing texture replaces its contents.
type TextureUploader interface {
	UploadAlpha(existing uint32, img *image.Alpha) (uint32, error)
}

const (
	atlasWidth     = 512
	atlasMaxHeight = 4096
	atlasPadding   = 1
)

type atlasGlyph struct {
	advance float32
	x, y    int // cell origin in the atlas
	w       int // cell width
}

// FaceFont renders text from a golang.org/x/image font.Face through a glyph
// atlas. Glyphs are rasterised on first use; the atlas is re-uploaded by
// Sync when it changed.
type FaceFont struct {
	face       font.Face
	ascent     int
	lineHeight int

	atlas   *image.Alpha
	glyphs  map[rune]atlasGlyph
	missing map[rune]bool
	penX    int
	penY    int

	texture uint32
	dirty   bool
	quads   []GlyphQuad
	log     *zap.Logger
}

// NewFaceFont wraps a font face. Latin-1 glyphs are rasterised eagerly.
func NewFaceFont(face font.Face) *FaceFont {
	m := face.Metrics()
	f := &FaceFont{
		face:       face,
		ascent:     m.Ascent.Ceil(),
		lineHeight: m.Height.Ceil(),
		atlas:      image.NewAlpha(image.Rect(0, 0, atlasWidth, 256)),
		glyphs:     make(map[rune]atlasGlyph, 192),
		missing:    make(map[rune]bool),
		penX:       atlasPadding,
		penY:       atlasPadding,
		log:        logging.L().Named("font"),
	}
	if f.lineHeight <= 0 {
		f.lineHeight = (m.Ascent + m.Descent).Ceil()
	}
	for r := rune(32); r < 127; r++ {
		f.glyph(r)
	}
	for r := rune(160); r < 256; r++ {
		f.glyph(r)
	}
	return f
}

// DefaultFont returns a FaceFont over the built-in 7x13 bitmap face.
func DefaultFont() *FaceFont {
	return NewFaceFont(basicfont.Face7x13)
}

// LoadFontFile parses a TrueType/OpenType file at the given pixel size.
func LoadFontFile(path string, sizePx float64) (*FaceFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return NewFaceFont(face), nil
}

// Measure returns the advance width of text and the line height.
func (f *FaceFont) Measure(text string) Vec2 {
	var w float32
	prev := rune(-1)
	for _, r := range text {
		g, ok := f.glyph(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			w += float32(f.face.Kern(prev, r).Round())
		}
		w += g.advance
		prev = r
	}
	return Vec2{X: w, Y: float32(f.lineHeight)}
}

// LineHeight returns the face's line height in pixels.
func (f *FaceFont) LineHeight() float32 {
	return float32(f.lineHeight)
}

// TextureID returns the uploaded atlas texture (0 until Sync succeeds).
func (f *FaceFont) TextureID() uint32 {
	return f.texture
}

// Sync uploads the atlas if glyphs were added since the last upload.
func (f *FaceFont) Sync(up TextureUploader) error {
	if up == nil || (!f.dirty && f.texture != 0) {
		return nil
	}
	id, err := up.UploadAlpha(f.texture, f.atlas)
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	f.texture = id
	f.dirty = false
	return nil
}

// GlyphQuads lays out text starting at (x, y) (top-left of the line box).
func (f *FaceFont) GlyphQuads(text string, x, y float32) []GlyphQuad {
	f.quads = f.quads[:0]
	aw := float32(f.atlas.Rect.Dx())
	ah := float32(f.atlas.Rect.Dy())
	pen := x
	prev := rune(-1)
	for _, r := range text {
		g, ok := f.glyph(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			pen += float32(f.face.Kern(prev, r).Round())
		}
		if r != ' ' {
			f.quads = append(f.quads, GlyphQuad{
				X0: pen, Y0: y,
				X1: pen + float32(g.w), Y1: y + float32(f.lineHeight),
				U0: float32(g.x) / aw, V0: float32(g.y) / ah,
				U1: float32(g.x+g.w) / aw, V1: float32(g.y+f.lineHeight) / ah,
			})
		}
		pen += g.advance
		prev = r
	}
	return f.quads
}

// glyph returns the atlas entry for r, rasterising it on first use. Runes
// the face cannot render fall back to '?' and are reported once.
func (f *FaceFont) glyph(r rune) (atlasGlyph, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}
	if f.missing[r] {
		return f.fallback()
	}
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		f.missing[r] = true
		f.log.Warn("glyph not available in font face", zap.String("rune", string(r)), zap.Int32("code", r))
		return f.fallback()
	}
	g, err := f.rasterize(r, adv)
	if err != nil {
		f.missing[r] = true
		f.log.Warn("glyph rasterization failed", zap.String("rune", string(r)), zap.Error(err))
		return f.fallback()
	}
	f.glyphs[r] = g
	return g, true
}

func (f *FaceFont) fallback() (atlasGlyph, bool) {
	g, ok := f.glyphs['?']
	return g, ok
}

// rasterize draws r into the next free atlas cell, growing the atlas
// vertically when the current rows are full.
func (f *FaceFont) rasterize(r rune, adv fixed.Int26_6) (atlasGlyph, error) {
	w := adv.Ceil()
	if bounds, _, ok := f.face.GlyphBounds(r); ok {
		if bw := bounds.Max.X.Ceil(); bw > w {
			w = bw
		}
	}
	if w <= 0 {
		w = 1
	}
	if f.penX+w+atlasPadding > atlasWidth {
		f.penX = atlasPadding
		f.penY += f.lineHeight + atlasPadding
	}
	if f.penY+f.lineHeight+atlasPadding > f.atlas.Rect.Dy() {
		if err := f.grow(); err != nil {
			return atlasGlyph{}, err
		}
	}

	d := font.Drawer{
		Dst:  f.atlas,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(f.penX, f.penY+f.ascent),
	}
	d.DrawString(string(r))

	g := atlasGlyph{
		advance: float32(adv.Round()),
		x:       f.penX,
		y:       f.penY,
		w:       w,
	}
	f.penX += w + atlasPadding
	f.dirty = true
	return g, nil
}

func (f *FaceFont) grow() error {
	h := f.atlas.Rect.Dy() * 2
	if h > atlasMaxHeight {
		return fmt.Errorf("font atlas full (%dx%d)", atlasWidth, atlasMaxHeight)
	}
	grown := image.NewAlpha(image.Rect(0, 0, atlasWidth, h))
	draw.Draw(grown, f.atlas.Rect, f.atlas, image.Point{}, draw.Src)
	f.atlas = grown
	return nil
}
