package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ringOf(ws ...Widget) *FocusRing {
	r := NewFocusRing()
	for _, w := range ws {
		r.Add(w)
	}
	return r
}

func TestFocusRingStartsUnfocused(t *testing.T) {
	r := NewFocusRing()
	assert.Equal(t, -1, r.Index())
	assert.Nil(t, r.Current())
	assert.Equal(t, -1, r.next())
	assert.Equal(t, -1, r.prev())
}

func TestFocusRingAddIgnoresDuplicates(t *testing.T) {
	a := newRecorder("a", Rect{})
	r := ringOf(a, a, nil)
	assert.Equal(t, 1, r.Len())
}

func TestFocusRingNextWrapsAndSkips(t *testing.T) {
	a, b, c := newRecorder("a", Rect{}), newRecorder("b", Rect{}), newRecorder("c", Rect{})
	b.SetEnabled(false)
	r := ringOf(a, b, c)

	assert.Equal(t, 0, r.next(), "from nothing, the first entry")
	r.SetIndex(0)
	assert.Equal(t, 2, r.next(), "disabled entry skipped")
	r.SetIndex(2)
	assert.Equal(t, 0, r.next(), "wraps around")

	r.SetIndex(-1)
	assert.Equal(t, 2, r.prev(), "from nothing, the last entry")
	r.SetIndex(0)
	assert.Equal(t, 2, r.prev(), "prev wraps around")
}

func TestFocusRingNothingFocusable(t *testing.T) {
	a, b := newRecorder("a", Rect{}), newRecorder("b", Rect{})
	a.SetVisible(false)
	b.focusable = false
	r := ringOf(a, b)
	assert.Equal(t, -1, r.next())
	assert.Equal(t, -1, r.prev())
}

func TestFocusRingRemoveKeepsCurrent(t *testing.T) {
	a, b, c := newRecorder("a", Rect{}), newRecorder("b", Rect{}), newRecorder("c", Rect{})
	r := ringOf(a, b, c)
	r.SetIndex(2)

	assert.False(t, r.Remove(a))
	assert.Equal(t, Widget(c), r.Current())
	assert.Equal(t, 1, r.Index())

	assert.True(t, r.Remove(c))
	assert.Equal(t, -1, r.Index())
	assert.False(t, r.Remove(c), "already gone")
}

func TestFocusRingSetIndexOutOfRange(t *testing.T) {
	r := ringOf(newRecorder("a", Rect{}))
	r.SetIndex(5)
	assert.Equal(t, -1, r.Index())
	r.SetIndex(-3)
	assert.Equal(t, -1, r.Index())
}

func TestFocusRingSnapshotRestore(t *testing.T) {
	a, b := newRecorder("a", Rect{}), newRecorder("b", Rect{})
	r := ringOf(a, b)
	r.SetIndex(1)
	snap := r.snapshot()

	r.reset([]Widget{newRecorder("x", Rect{})})
	assert.Equal(t, -1, r.Index())

	r.restore(snap)
	assert.Equal(t, Widget(b), r.Current())
	assert.Equal(t, 2, r.Len())
}

func TestFocusRingSnapshotWithout(t *testing.T) {
	a, b := newRecorder("a", Rect{}), newRecorder("b", Rect{})
	r := ringOf(a, b)
	r.SetIndex(1)
	snap := r.snapshot().without(b)

	r.restore(snap)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, -1, r.Index())
}
