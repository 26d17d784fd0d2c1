package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefAliasesVariable(t *testing.T) {
	v := 3
	b := Ref(&v)
	assert.Equal(t, 3, b.Get())

	b.Set(7)
	assert.Equal(t, 7, v)

	v = 9
	assert.Equal(t, 9, b.Get())

	var nilRef Binding[string] = Ref[string](nil)
	nilRef.Set("x")
	assert.Equal(t, "", nilRef.Get())
}

func TestBindFunc(t *testing.T) {
	store := map[string]float32{"volume": 0.5}
	b := BindFunc(
		func() float32 { return store["volume"] },
		func(v float32) { store["volume"] = v },
	)
	b.Set(0.8)
	assert.Equal(t, float32(0.8), store["volume"])
	assert.Equal(t, float32(0.8), b.Get())

	ro := BindFunc(func() int { return 4 }, nil)
	ro.Set(10)
	assert.Equal(t, 4, ro.Get(), "nil setter is read-only")
}

func TestCellNotifiesOnlyOnChange(t *testing.T) {
	c := NewCell("a")
	var seen [][2]string
	c.OnChange(func(old, new string) { seen = append(seen, [2]string{old, new}) })
	c.OnChange(nil)

	c.Set("a")
	c.Set("b")
	c.Set("b")
	c.Set("c")

	assert.Equal(t, "c", c.Get())
	assert.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}}, seen)
}

func TestCellDrivesWidget(t *testing.T) {
	m := testManager()
	checked := NewCell(false)
	var changes []bool
	checked.OnChange(func(_, v bool) { changes = append(changes, v) })

	cb := NewCheckbox(Rect{W: 120, H: 20}, "Enabled", checked)
	m.AddElement(cb)
	click(m, 5, 5)
	click(m, 5, 5)

	assert.False(t, checked.Get())
	assert.Equal(t, []bool{true, false}, changes)
}

func TestGetOrFallsBackForNilBinding(t *testing.T) {
	assert.Equal(t, 5, getOr[int](nil, 5))
	v := 2
	assert.Equal(t, 2, getOr(Ref(&v), 5))
}
