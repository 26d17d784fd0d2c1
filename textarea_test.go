package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newFocusedArea adds a text area at the origin and focuses it. With the
// default theme the wrapped text starts at (4, 4) and is the width minus 20
// wide (padding plus a 12px scrollbar).
func newFocusedArea(text *string, w, h float32, opts ...Option) (*Manager, *TextArea) {
	m := testManager()
	ta := NewTextArea(Rect{W: w, H: h}, Ref(text), opts...)
	m.AddElement(ta)
	m.Focus(ta)
	return m, ta
}

func TestTextAreaWrapsToWidth(t *testing.T) {
	text := "hello world"
	m, ta := newFocusedArea(&text, 80, 100)
	assert.Equal(t, []string{"hello ", "world"}, ta.Lines(m.Context()))
	assert.Equal(t, float32(32), ta.ContentHeight(m.Context()))
}

func TestTextAreaEnterInsertsNewline(t *testing.T) {
	text := "ab"
	m, ta := newFocusedArea(&text, 200, 100)

	m.HandleEvent(KeyPress(KeyLeft, ModNone))
	assert.True(t, m.HandleEvent(KeyPress(KeyEnter, ModNone)))
	assert.Equal(t, "a\nb", text)
	assert.Equal(t, 1, ta.CaretLine(m.Context()))

	m.HandleEvent(TextCommit("x\r\ny"))
	assert.Equal(t, "a\nx\nyb", text, "CRLF in a commit becomes one newline")
}

func TestTextAreaVerticalMoveKeepsColumn(t *testing.T) {
	text := "abcdef\nab\nabcdef"
	m, ta := newFocusedArea(&text, 200, 100)
	ta.Editor().SetCaret(5)

	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, 9, ta.Editor().Caret(), "clamped to the short line")
	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, 15, ta.Editor().Caret(), "column restored")
	m.HandleEvent(KeyPress(KeyUp, ModShift))
	assert.Equal(t, 9, ta.Editor().Caret())
	assert.Equal(t, "\nabcde", ta.Editor().SelectedText())

	m.HandleEvent(KeyPress(KeyDown, ModNone))
	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, len(text), ta.Editor().Caret(), "past the last line goes to the end")
	ta.Editor().SetCaret(2)
	m.HandleEvent(KeyPress(KeyUp, ModNone))
	assert.Equal(t, 0, ta.Editor().Caret(), "above the first line goes to the start")
}

func TestTextAreaHomeEndFollowDisplayLines(t *testing.T) {
	text := "hello world"
	m, ta := newFocusedArea(&text, 80, 100)
	ta.Editor().SetCaret(0)

	m.HandleEvent(KeyPress(KeyEnd, ModNone))
	assert.Equal(t, 5, ta.Editor().Caret(), "stops before the soft break")

	ta.Editor().SetCaret(9)
	m.HandleEvent(KeyPress(KeyHome, ModNone))
	assert.Equal(t, 6, ta.Editor().Caret())
	m.HandleEvent(KeyPress(KeyEnd, ModNone))
	assert.Equal(t, 11, ta.Editor().Caret())

	m.HandleEvent(KeyPress(KeyHome, ModCtrl))
	assert.Equal(t, 0, ta.Editor().Caret())
	m.HandleEvent(KeyPress(KeyEnd, ModCtrl|ModShift))
	assert.Equal(t, text, ta.Editor().SelectedText())
}

func TestTextAreaClickPlacesCaret(t *testing.T) {
	text := "abc\ndef"
	m, ta := newFocusedArea(&text, 200, 100)

	click(m, 4+20, 4+16+8)
	assert.Equal(t, 6, ta.Editor().Caret())
	assert.Nil(t, m.Captured())
}

func TestTextAreaTripleClickSelectsLine(t *testing.T) {
	text := "hello world"
	m, ta := newFocusedArea(&text, 80, 100)

	click(m, 4+14, 4+16+4)
	click(m, 4+14, 4+16+4)
	assert.Equal(t, "world", ta.Editor().SelectedText())
	click(m, 4+14, 4+16+4)
	start, end := ta.Editor().SelRange()
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)
}

func TestTextAreaScrollsToCaret(t *testing.T) {
	text := ""
	m, ta := newFocusedArea(&text, 200, 40)

	typeText(m, "a\nb\nc\nd")
	assert.Equal(t, float32(32), ta.ScrollY(), "two 16px lines fit in view")

	m.HandleEvent(KeyPress(KeyHome, ModCtrl))
	assert.Equal(t, float32(0), ta.ScrollY())
}

func TestTextAreaWheelScrollIsClamped(t *testing.T) {
	text := "a\nb\nc\nd"
	m, ta := newFocusedArea(&text, 200, 40)
	m.HandleEvent(KeyPress(KeyHome, ModCtrl))

	assert.True(t, m.HandleEvent(WheelAt(10, 10, 0, -1)))
	assert.Equal(t, float32(32), ta.ScrollY())
	m.HandleEvent(WheelAt(10, 10, 0, 5))
	assert.Equal(t, float32(0), ta.ScrollY())
	assert.False(t, m.HandleEvent(WheelAt(10, 10, 1, 0)), "horizontal wheel is ignored")
}

func TestTextAreaUpdateClampsScroll(t *testing.T) {
	text := "a\nb\nc\nd"
	m, ta := newFocusedArea(&text, 200, 40)
	ta.Editor().SetCaret(len(text))
	m.HandleEvent(KeyPress(KeyEnd, ModNone))
	assert.Equal(t, float32(32), ta.ScrollY())

	text = ""
	m.Update(0)
	assert.Equal(t, float32(0), ta.ScrollY())
	assert.Equal(t, 0, ta.Editor().Caret(), "caret clamps to the new text")
}

func TestTextAreaScrollbarPaging(t *testing.T) {
	text := "1\n2\n3\n4\n5\n6\n7\n8"
	m, ta := newFocusedArea(&text, 200, 40)
	m.HandleEvent(KeyPress(KeyHome, ModCtrl))

	// Below the thumb in the scrollbar column pages down by the view height.
	m.HandleEvent(PointerDown(195, 38, MouseButtonLeft))
	assert.Equal(t, float32(32), ta.ScrollY())
	assert.Equal(t, 0, ta.Editor().Caret(), "scrollbar clicks never move the caret")
}

func TestTextAreaReadOnlyEnter(t *testing.T) {
	text := "x"
	m, ta := newFocusedArea(&text, 200, 100, ReadOnly())

	assert.False(t, ta.EditsText())
	assert.False(t, m.HandleEvent(KeyPress(KeyEnter, ModNone)))
	assert.Equal(t, "x", text)
}

func TestTextAreaRendersVisibleLinesOnly(t *testing.T) {
	text := "1\n2\n3\n4\n5\n6"
	m, _ := newFocusedArea(&text, 200, 40)
	m.HandleEvent(KeyPress(KeyHome, ModCtrl))

	c := &recordingCanvas{size: Vec2{X: 800, Y: 600}}
	m.Render(c)
	texts := c.texts()
	assert.Contains(t, texts, "1")
	assert.Contains(t, texts, "2")
	assert.NotContains(t, texts, "5")
	assert.Equal(t, 1, c.count("fill", m.Theme().ScrollbarBgColor))
}
