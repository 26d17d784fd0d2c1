package widgets

// Font is the interface widgets measure and draw text with.
//
// The toolkit does not depend on any concrete font implementation. FaceFont
// (golang.org/x/image based) is the stock one; tests inject fixed-advance
// fonts. A nil Font is legal everywhere: text measures as zero and draw
// steps that need it are skipped.
type Font interface {
	// Measure returns the pixel size of a single line of text.
	Measure(text string) Vec2

	// LineHeight returns the distance between two baselines.
	LineHeight() float32
}

// GlyphFont is a Font backed by a texture atlas that the draw list can emit
// quads for.
type GlyphFont interface {
	Font

	// TextureID returns the backend texture holding the atlas (0 = not uploaded).
	TextureID() uint32

	// GlyphQuads generates one quad per visible glyph with the text's
	// top-left corner at (x, y). The returned slice must not be retained.
	GlyphQuads(text string, x, y float32) []GlyphQuad
}

// GlyphQuad represents a single character's rendering quad.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// measureWidth is Measure(text).X with a nil-font guard.
func measureWidth(f Font, text string) float32 {
	if f == nil || text == "" {
		return 0
	}
	return f.Measure(text).X
}

// lineHeightOf returns the font's line height, or fallback for a nil font.
func lineHeightOf(f Font, fallback float32) float32 {
	if f == nil {
		return fallback
	}
	if h := f.LineHeight(); h > 0 {
		return h
	}
	return fallback
}
