package widgets

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestDrawListFillRect(t *testing.T) {
	dl := NewDrawList(800, 600)
	dl.FillRect(Rect{X: 10, Y: 20, W: 30, H: 40}, 0, ColorRed)
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorTransparent)
	dl.FillRect(Rect{W: 0, H: 10}, 0, ColorRed)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, [4]float32{0, 0, 800, 600}, dl.CmdBuffer[0].ClipRect)
	require.Len(t, dl.VtxBuffer, 4)
	assert.Equal(t, [2]float32{10, 20}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{40, 60}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, uint32(ColorRed), dl.VtxBuffer[0].Color)
}

func TestDrawListClipSplitsCommands(t *testing.T) {
	dl := NewDrawList(800, 600)
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorRed)
	dl.PushClip(Rect{X: 10, Y: 10, W: 20, H: 20})
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorRed)
	dl.PopClip()
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorRed)
	dl.PushClip(Rect{W: 5, H: 5})
	dl.PopClip()
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 3, "empty commands are dropped")
	assert.Equal(t, [4]float32{10, 10, 30, 30}, dl.CmdBuffer[1].ClipRect)
	assert.Equal(t, [4]float32{0, 0, 800, 600}, dl.CmdBuffer[2].ClipRect)
	assert.Equal(t, uint32(4), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, uint32(6), dl.CmdBuffer[1].IndexOffset)
}

func TestDrawListNestedClipIntersects(t *testing.T) {
	dl := NewDrawList(800, 600)
	dl.PushClip(Rect{W: 100, H: 100})
	dl.PushClip(Rect{X: 50, Y: 50, W: 100, H: 100})
	assert.Equal(t, Rect{X: 50, Y: 50, W: 50, H: 50}, dl.ClipRect())

	dl.PushClip(Rect{X: 500, Y: 500, W: 10, H: 10})
	assert.Equal(t, float32(0), dl.ClipRect().W, "disjoint clips are empty")

	dl.PopClip()
	dl.PopClip()
	dl.PopClip()
	dl.PopClip()
	assert.Equal(t, Rect{W: 800, H: 600}, dl.ClipRect(), "extra pops are ignored")
}

func TestDrawListBatchesByTexture(t *testing.T) {
	dl := NewDrawList(800, 600)
	dl.Image(7, Rect{W: 10, H: 10}, [4]float32{0, 0, 1, 1}, ColorWhite)
	dl.Image(7, Rect{X: 20, W: 10, H: 10}, [4]float32{0, 0, 1, 1}, ColorWhite)
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorRed)
	dl.Image(0, Rect{W: 10, H: 10}, [4]float32{}, ColorWhite)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, uint32(7), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(12), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(0), dl.CmdBuffer[1].TextureID)
}

func TestDrawListShapes(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(dl *DrawList)
		vertices int
		indices  int
	}{
		{"rounded fill", func(dl *DrawList) { dl.FillRect(Rect{W: 40, H: 20}, 4, ColorRed) }, 36, 34 * 3},
		{"square stroke", func(dl *DrawList) { dl.StrokeRect(Rect{W: 40, H: 20}, 0, 1, ColorRed) }, 16, 24},
		{"rounded stroke", func(dl *DrawList) { dl.StrokeRect(Rect{W: 40, H: 20}, 4, 1, ColorRed) }, 72, 36 * 6},
		{"circle", func(dl *DrawList) { dl.FillCircle(Vec2{X: 10, Y: 10}, 5, ColorRed) }, 32, 30 * 3},
		{"ring", func(dl *DrawList) { dl.StrokeCircle(Vec2{X: 10, Y: 10}, 5, 1, ColorRed) }, 64, 32 * 6},
		{"thin line", func(dl *DrawList) { dl.Line(Vec2{}, Vec2{X: 10}, 1, ColorRed) }, 4, 6},
		{"thick line caps", func(dl *DrawList) { dl.Line(Vec2{}, Vec2{X: 10}, 4, ColorRed) }, 4 + 64, 6 + 180},
		{"triangle", func(dl *DrawList) { dl.AddTriangle(Vec2{}, Vec2{X: 10}, Vec2{Y: 10}, ColorRed) }, 3, 3},
		{"zero radius circle", func(dl *DrawList) { dl.FillCircle(Vec2{}, 0, ColorRed) }, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := NewDrawList(100, 100)
			tt.draw(dl)
			assert.Len(t, dl.VtxBuffer, tt.vertices)
			assert.Len(t, dl.IdxBuffer, tt.indices)
		})
	}
}

func TestDrawListSplitsAt16BitIndexLimit(t *testing.T) {
	dl := NewDrawList(800, 600)
	for i := 0; i < 17000; i++ {
		dl.FillRect(Rect{W: 1, H: 1}, 0, ColorRed)
	}
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, uint32(16383*6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(16383*4), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, uint32((17000-16383)*6), dl.CmdBuffer[1].ElemCount)
}

func TestDrawListPoolClears(t *testing.T) {
	dl := AcquireDrawList(100, 50)
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorRed)
	dl.PushClip(Rect{W: 5, H: 5})
	ReleaseDrawList(dl)

	dl = AcquireDrawList(320, 240)
	defer ReleaseDrawList(dl)
	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.CmdBuffer)
	assert.Equal(t, Vec2{X: 320, Y: 240}, dl.Size())
	assert.Equal(t, Rect{W: 320, H: 240}, dl.ClipRect())
}

func TestDrawListSkipsTextWithoutAtlas(t *testing.T) {
	dl := NewDrawList(100, 100)
	dl.Text(newTestFont(), Vec2{}, "abc", ColorWhite)
	dl.Text(DefaultFont(), Vec2{}, "abc", ColorWhite)
	assert.Empty(t, dl.VtxBuffer)
}

// fakeUploader records atlas uploads.
type fakeUploader struct {
	uploads  int
	existing []uint32
	err      error
}

func (u *fakeUploader) UploadAlpha(existing uint32, img *image.Alpha) (uint32, error) {
	if u.err != nil {
		return 0, u.err
	}
	u.uploads++
	u.existing = append(u.existing, existing)
	return 5, nil
}

func TestFaceFontMetrics(t *testing.T) {
	f := DefaultFont()
	assert.Equal(t, float32(13), f.LineHeight())
	assert.Equal(t, Vec2{X: 21, Y: 13}, f.Measure("abc"))
	assert.Equal(t, float32(0), f.Measure("").X)
}

// extendedFace is the 7x13 face with U+0100..U+0105 drawn as "ABCDEF",
// runes the font does not rasterise up front.
func extendedFace() *basicfont.Face {
	face := *basicfont.Face7x13
	face.Ranges = []basicfont.Range{
		{Low: '\u0020', High: '\u007f', Offset: 0},
		{Low: '\u0100', High: '\u0106', Offset: 'A' - ' '},
		{Low: '\ufffd', High: '\ufffe', Offset: 95},
	}
	return &face
}

func TestFaceFontSyncUploadsOnlyWhenDirty(t *testing.T) {
	f := NewFaceFont(extendedFace())
	up := &fakeUploader{}

	require.NoError(t, f.Sync(up))
	require.NoError(t, f.Sync(up))
	assert.Equal(t, 1, up.uploads)
	assert.Equal(t, uint32(5), f.TextureID())

	f.Measure("ĀāĂ")
	require.NoError(t, f.Sync(up))
	assert.Equal(t, []uint32{0, 5}, up.existing, "new glyphs replace the same texture")

	f.Measure("Ą")
	assert.Error(t, f.Sync(&fakeUploader{err: errors.New("no context")}))
	assert.NoError(t, f.Sync(nil))
}

func TestFaceFontGlyphQuads(t *testing.T) {
	f := DefaultFont()
	quads := f.GlyphQuads("a b", 10, 20)
	require.Len(t, quads, 2, "spaces emit no quad")
	assert.Equal(t, float32(10), quads[0].X0)
	assert.Equal(t, float32(24), quads[1].X0)
	assert.Equal(t, float32(33), quads[0].Y1)
	for _, q := range quads {
		assert.True(t, q.U0 >= 0 && q.U1 <= 1 && q.U0 < q.U1)
		assert.True(t, q.V0 >= 0 && q.V1 <= 1 && q.V0 < q.V1)
	}
}

func TestDrawListTextWithAtlas(t *testing.T) {
	f := DefaultFont()
	require.NoError(t, f.Sync(&fakeUploader{}))

	dl := NewDrawList(100, 100)
	dl.Text(f, Vec2{}, "ab c", ColorWhite)
	dl.Finalize()
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(5), dl.CmdBuffer[0].TextureID)
	assert.Len(t, dl.VtxBuffer, 12)
}

func TestManagerRendersIntoDrawList(t *testing.T) {
	m := testManager()
	text := "hello"
	sel := 0
	panel := NewPanel(Rect{W: 300, H: 200})
	panel.Add(
		NewTextField(Rect{X: 10, Y: 10, W: 200, H: 24}, Ref(&text)),
		NewComboBox(Rect{X: 10, Y: 40, W: 200, H: 24}, []string{"one", "two"}, Ref(&sel)),
	)
	m.AddElement(panel)
	m.ShowPopup(NewPopup(Rect{X: 50, Y: 50, W: 100, H: 100}, WithTitle("t")))

	dl := NewDrawList(800, 600)
	m.Render(dl)
	dl.Finalize()
	assert.NotEmpty(t, dl.CmdBuffer)
	assert.Equal(t, Rect{W: 800, H: 600}, dl.ClipRect(), "clip stack balanced")
	for _, v := range dl.IdxBuffer {
		assert.Less(t, int(v), len(dl.VtxBuffer))
	}
}
