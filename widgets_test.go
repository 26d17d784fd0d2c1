package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonClicksOnReleaseInside(t *testing.T) {
	m := testManager()
	clicks := 0
	b := NewButton(Rect{W: 100, H: 30}, "OK", func() { clicks++ })
	m.AddElement(b)

	m.HandleEvent(PointerDown(10, 10, MouseButtonLeft))
	assert.True(t, b.Pressed())
	assert.Equal(t, Widget(b), m.Captured())
	assert.Equal(t, Widget(b), m.Focused())
	m.HandleEvent(PointerUp(10, 10, MouseButtonLeft))
	assert.Equal(t, 1, clicks)
	assert.Nil(t, m.Captured())

	m.HandleEvent(PointerDown(10, 10, MouseButtonLeft))
	m.HandleEvent(PointerMove(300, 300))
	m.HandleEvent(PointerUp(300, 300, MouseButtonLeft))
	assert.Equal(t, 1, clicks, "released outside")
	assert.False(t, b.Pressed())
}

func TestButtonKeyboardActivation(t *testing.T) {
	m := testManager()
	clicks := 0
	b := NewButton(Rect{W: 100, H: 30}, "OK", func() { clicks++ })
	m.AddElement(b)
	m.Focus(b)

	assert.True(t, m.HandleEvent(KeyPress(KeyEnter, ModNone)))
	assert.True(t, m.HandleEvent(KeyPress(KeySpace, ModNone)))
	assert.False(t, m.HandleEvent(KeyPress(KeyEnter, ModCtrl)))
	assert.Equal(t, 2, clicks)
}

func TestDisabledButtonIgnoresInput(t *testing.T) {
	m := testManager()
	clicks := 0
	b := NewButton(Rect{W: 100, H: 30}, "OK", func() { clicks++ }, WithDisabled(true))
	m.AddElement(b)

	click(m, 10, 10)
	assert.Equal(t, 0, clicks)
	assert.Nil(t, m.Focused())
}

func TestCheckboxToggles(t *testing.T) {
	m := testManager()
	checked := false
	var seen []bool
	cb := NewCheckbox(Rect{W: 100, H: 20}, "Subscribe", Ref(&checked))
	cb.OnChange = func(v bool) { seen = append(seen, v) }
	m.AddElement(cb)

	click(m, 5, 5)
	assert.True(t, checked)
	assert.True(t, m.HandleEvent(KeyPress(KeySpace, ModNone)))
	assert.False(t, checked)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestCheckboxRendersCheckMark(t *testing.T) {
	m := testManager()
	checked := true
	m.AddElement(NewCheckbox(Rect{W: 100, H: 20}, "Subscribe", Ref(&checked)))

	c := &recordingCanvas{size: Vec2{X: 800, Y: 600}}
	m.Render(c)
	assert.Equal(t, 2, c.count("line", m.Theme().CheckColor))
	assert.Contains(t, c.texts(), "Subscribe")
}

// newTestSlider returns a slider over [0, 10] in steps of 1 whose track maps
// x = 6 + 10*v.
func newTestSlider(v *float32) *Slider {
	return NewSlider(Rect{W: 112, H: 20}, Ref(v), WithRange(0, 10), WithStep(1))
}

func TestSliderDrag(t *testing.T) {
	m := testManager()
	v := float32(0)
	s := newTestSlider(&v)
	m.AddElement(s)

	m.HandleEvent(PointerDown(56, 10, MouseButtonLeft))
	assert.Equal(t, float32(5), v)
	assert.Equal(t, Widget(s), m.Captured())

	m.HandleEvent(PointerMove(86, 200))
	assert.Equal(t, float32(8), v)
	m.HandleEvent(PointerMove(-50, 10))
	assert.Equal(t, float32(0), v)
	m.HandleEvent(PointerUp(0, 10, MouseButtonLeft))
	assert.Nil(t, m.Captured())
}

func TestSliderKeysAndWheel(t *testing.T) {
	m := testManager()
	v := float32(9)
	changes := 0
	s := newTestSlider(&v)
	s.OnChange = func(float32) { changes++ }
	m.AddElement(s)
	m.Focus(s)

	m.HandleEvent(KeyPress(KeyRight, ModNone))
	assert.Equal(t, float32(10), v)
	m.HandleEvent(KeyPress(KeyUp, ModNone))
	assert.Equal(t, float32(10), v)
	m.HandleEvent(KeyPress(KeyHome, ModNone))
	assert.Equal(t, float32(0), v)
	m.HandleEvent(WheelAt(10, 10, 0, 2))
	assert.Equal(t, float32(2), v)
	assert.Equal(t, 3, changes, "clamped no-ops do not notify")
}

func TestSliderSnapsToStep(t *testing.T) {
	v := float32(0)
	s := newTestSlider(&v)
	s.SetValue(3.4)
	assert.Equal(t, float32(3), v)
	s.SetValue(42)
	assert.Equal(t, float32(10), v)

	v = -7
	assert.Equal(t, float32(0), s.Value(), "out-of-range values read clamped")
}

func TestSliderRendersValue(t *testing.T) {
	m := testManager()
	v := float32(0.5)
	m.AddElement(NewSlider(Rect{W: 112, H: 20}, Ref(&v)))

	c := &recordingCanvas{size: Vec2{X: 800, Y: 600}}
	m.Render(c)
	assert.Equal(t, []string{"0.50"}, c.texts())
}

func TestSpinnerZonesAndKeys(t *testing.T) {
	m := testManager()
	n := 0
	s := NewSpinner(Rect{W: 90, H: 30}, Ref(&n), WithRange(0, 5))
	m.AddElement(s)

	click(m, 75, 15)
	click(m, 75, 15)
	assert.Equal(t, 2, n)
	click(m, 15, 15)
	assert.Equal(t, 1, n)
	click(m, 45, 15)
	assert.Equal(t, 1, n, "the middle shows the value")

	m.HandleEvent(KeyPress(KeyPageUp, ModNone))
	assert.Equal(t, 5, n)
	m.HandleEvent(KeyPress(KeyHome, ModNone))
	assert.Equal(t, 0, n)
	m.HandleEvent(WheelAt(45, 15, 0, 1))
	assert.Equal(t, 1, n)
}

func TestSpinnerWithoutRange(t *testing.T) {
	m := testManager()
	n := 0
	s := NewSpinner(Rect{W: 90, H: 30}, Ref(&n), WithStep(5))
	m.AddElement(s)
	m.Focus(s)

	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, -5, n)
	assert.False(t, m.HandleEvent(KeyPress(KeyHome, ModNone)))
}

func TestComboBoxPickWithMouse(t *testing.T) {
	m := testManager()
	sel := -1
	cb := NewComboBox(Rect{W: 100, H: 20}, []string{"a", "b", "c"}, Ref(&sel))
	m.AddElement(cb)
	assert.Equal(t, "", cb.SelectedText())

	click(m, 10, 10)
	require.True(t, cb.Expanded())
	assert.Equal(t, Widget(cb), m.Captured())

	click(m, 10, 45)
	assert.False(t, cb.Expanded())
	assert.Nil(t, m.Captured())
	assert.Equal(t, 1, sel)
	assert.Equal(t, "b", cb.SelectedText())
}

func TestComboBoxClickAwayCollapses(t *testing.T) {
	m := testManager()
	sel := 0
	cb := NewComboBox(Rect{W: 100, H: 20}, []string{"a", "b"}, Ref(&sel))
	below := newRecorder("below", Rect{X: 300, Y: 300, W: 50, H: 50})
	m.AddElement(cb)
	m.AddElement(below)

	click(m, 10, 10)
	require.True(t, cb.Expanded())
	m.HandleEvent(PointerDown(310, 310, MouseButtonLeft))
	assert.False(t, cb.Expanded())
	assert.Empty(t, below.events)
	assert.Equal(t, 0, sel)
}

func TestComboBoxKeyboard(t *testing.T) {
	m := testManager()
	sel := 0
	cb := NewComboBox(Rect{W: 100, H: 20}, []string{"a", "b", "c"}, Ref(&sel))
	m.AddElement(cb)
	m.Focus(cb)

	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, 1, sel, "arrows change the selection while collapsed")

	m.HandleEvent(KeyPress(KeyEnter, ModNone))
	require.True(t, cb.Expanded())
	m.HandleEvent(KeyPress(KeyDown, ModNone))
	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, 1, sel, "moving the highlight does not commit")
	m.HandleEvent(KeyPress(KeyEnter, ModNone))
	assert.False(t, cb.Expanded())
	assert.Equal(t, 2, sel)

	m.HandleEvent(KeyPress(KeySpace, ModNone))
	assert.True(t, m.HandleEvent(KeyPress(KeyEscape, ModNone)))
	assert.False(t, cb.Expanded())
	assert.Equal(t, Widget(cb), m.Focused(), "Escape only collapsed")
}

func TestComboBoxBlurCollapses(t *testing.T) {
	m := testManager()
	sel := 0
	cb := NewComboBox(Rect{W: 100, H: 20}, []string{"a", "b"}, Ref(&sel))
	m.AddElement(cb)
	m.Focus(cb)
	m.HandleEvent(KeyPress(KeyEnter, ModNone))
	require.True(t, cb.Expanded())

	m.ClearFocus()
	assert.False(t, cb.Expanded())
	assert.Nil(t, m.Captured())
}

func TestComboBoxOverlayRendersAboveSiblings(t *testing.T) {
	m := testManager()
	sel := 0
	panel := NewPanel(Rect{W: 300, H: 300})
	cb := NewComboBox(Rect{W: 100, H: 20}, []string{"a", "b"}, Ref(&sel))
	panel.Add(cb, NewLabel(Rect{Y: 25, W: 100, H: 20}, "after"))
	m.AddElement(panel)
	m.Focus(cb)
	m.HandleEvent(KeyPress(KeyEnter, ModNone))

	c := &recordingCanvas{size: Vec2{X: 800, Y: 600}}
	m.Render(c)
	assert.Equal(t, []string{"a", "after", "a", "b"}, c.texts())
}

func TestComboBoxOutOfRangeIndex(t *testing.T) {
	sel := 7
	cb := NewComboBox(Rect{W: 100, H: 20}, []string{"a"}, Ref(&sel))
	assert.Equal(t, "", cb.SelectedText())
	cb.Select(3)
	assert.Equal(t, 7, sel, "invalid indexes are ignored")
}

func TestRadioGroupSelection(t *testing.T) {
	m := testManager()
	sel := 0
	var changes []int
	g := NewRadioGroupWithItems(Rect{W: 100, H: 60}, []string{"x", "y", "z"}, Ref(&sel))
	g.OnChange = func(i int) { changes = append(changes, i) }
	m.AddElement(g)
	assert.Equal(t, 3, m.FocusRing().Len())

	click(m, 10, 30)
	assert.Equal(t, 1, sel)
	assert.Equal(t, Widget(g.Buttons()[1]), m.Focused())
	assert.True(t, g.Buttons()[1].Checked())

	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, 2, sel)
	assert.Equal(t, Widget(g.Buttons()[2]), m.Focused())

	m.HandleEvent(KeyPress(KeyDown, ModNone))
	assert.Equal(t, 0, sel, "arrows wrap")
	assert.Equal(t, []int{1, 2, 0}, changes)
}

func TestRadioGroupSkipsDisabledButtons(t *testing.T) {
	m := testManager()
	sel := 0
	g := NewRadioGroupWithItems(Rect{W: 100, H: 60}, []string{"x", "y", "z"}, Ref(&sel))
	g.Buttons()[1].SetEnabled(false)
	m.AddElement(g)
	m.Focus(g.Buttons()[0])

	m.HandleEvent(KeyPress(KeyRight, ModNone))
	assert.Equal(t, 2, sel)

	g.SetEnabled(false)
	assert.False(t, g.Buttons()[0].Enabled(), "the group disables its buttons")
}

func TestLabelTruncates(t *testing.T) {
	m := testManager()
	m.AddElement(NewLabel(Rect{W: 60, H: 20}, "hello world"))
	m.AddElement(NewWrappedLabel(Rect{Y: 40, W: 60, H: 40}, "hello world"))

	c := &recordingCanvas{size: Vec2{X: 800, Y: 600}}
	m.Render(c)
	assert.Equal(t, []string{"hell..", "hello ", "world"}, c.texts())
}

func TestGroupBoxContentRect(t *testing.T) {
	m := testManager()
	g := NewGroupBox(Rect{X: 10, Y: 10, W: 200, H: 100}, "Account")
	assert.Equal(t, Rect{X: 14, Y: 30, W: 192, H: 76}, g.ContentRect(m.Context()))
}

func TestDialogAnswersOnce(t *testing.T) {
	m := testManager()
	var answers []bool
	d := NewDialog(Rect{X: 100, Y: 100, W: 300, H: 150}, "Confirm", "Save?", func(ok bool) { answers = append(answers, ok) })
	m.ShowPopup(d)
	assert.Equal(t, Widget(d.OKButton()), m.Focused())

	click(m, 250, 230)
	m.Update(0)
	assert.Nil(t, m.ActivePopup())
	assert.Equal(t, []bool{true}, answers)

	m.ShowPopup(d)
	m.HandleEvent(KeyPress(KeyEscape, ModNone))
	m.Update(0)
	assert.Equal(t, []bool{true, false}, answers, "dismissal answers false")

	m.ShowPopup(d)
	m.HandleEvent(KeyPress(KeyTab, ModNone))
	assert.Equal(t, Widget(d.CancelButton()), m.Focused())
	m.HandleEvent(KeyPress(KeyEnter, ModNone))
	m.Update(0)
	assert.Equal(t, []bool{true, false, false}, answers)
}

func TestDialogMessage(t *testing.T) {
	d := NewDialog(Rect{W: 300, H: 150}, "Confirm", "first", nil)
	d.SetMessage("second")
	assert.Equal(t, "second", d.Message())
	assert.Equal(t, "Confirm", d.Title())
}

func TestDialogMessageSitsBelowTitleBar(t *testing.T) {
	for _, pad := range []float32{2, 10} {
		th := DefaultTheme()
		th.Padding = pad
		m := testManager(WithTheme(th))
		d := NewDialog(Rect{X: 100, Y: 100, W: 300, H: 150}, "Confirm", "Save?", nil)
		m.ShowPopup(d)

		c := &recordingCanvas{size: Vec2{X: 800, Y: 600}}
		m.Render(c)

		titleBottom := float32(100) + 16 + pad*2
		msg := d.message.Bounds()
		assert.Equal(t, titleBottom+pad, msg.Y, "padding %v", pad)
		assert.Equal(t, d.OKButton().Bounds().Y-pad, msg.Y+msg.H)
		for _, op := range c.ops {
			if op.kind == "text" && op.text == "Save?" {
				assert.GreaterOrEqual(t, op.rect.Y, titleBottom)
			}
		}
	}
}

func TestPopupCloseBox(t *testing.T) {
	m := testManager()
	p := NewPopup(Rect{X: 100, Y: 100, W: 200, H: 100}, WithTitle("Tools"), KeepOnClickAway())
	m.ShowPopup(p)

	click(m, 10, 10)
	m.Update(0)
	require.NotNil(t, m.ActivePopup(), "kept on click away")

	// The close box is the square at the right end of the 24px title bar.
	click(m, 290, 110)
	m.Update(0)
	assert.Nil(t, m.ActivePopup())
	assert.False(t, p.Visible())
}
