package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnStacksVertically(t *testing.T) {
	col := Column(Rect{W: 100, H: 100}, Padding(10), Gap(5))

	assert.Equal(t, Rect{X: 10, Y: 10, W: 80, H: 20}, col.Next(20))
	assert.Equal(t, Rect{X: 10, Y: 35, W: 80, H: 30}, col.Next(30))
	assert.Equal(t, float32(55), col.Used())
	assert.Equal(t, float32(25), col.Remaining())

	col.Space(40)
	assert.Equal(t, float32(0), col.Remaining())
}

func TestRowStacksHorizontally(t *testing.T) {
	row := Row(Rect{X: 50, Y: 20, W: 200, H: 30}, PaddingXY(4, 2))

	assert.Equal(t, Rect{X: 54, Y: 22, W: 60, H: 26}, row.Next(60))
	assert.Equal(t, Rect{X: 54 + 60 + SpaceSM, Y: 22, W: 40, H: 26}, row.Next(40))
	assert.Equal(t, 192-(100+SpaceSM), row.Remaining())
}

func TestStackPlaceSetsBounds(t *testing.T) {
	col := Column(Rect{W: 200, H: 100}, Gap(0))
	name := NewLabel(Rect{}, "name")
	notes := NewLabel(Rect{}, "notes")

	col.Place(name, 24)
	col.Place(notes, 40)
	assert.Nil(t, col.Place(nil, 10))

	assert.Equal(t, Rect{W: 200, H: 24}, name.Bounds())
	assert.Equal(t, Rect{Y: 24, W: 200, H: 40}, notes.Bounds())
}

func TestStackPaddingLargerThanArea(t *testing.T) {
	col := Column(Rect{W: 10, H: 10}, Padding(8))
	r := col.Next(5)
	assert.Equal(t, float32(0), r.W)
	assert.Equal(t, float32(0), col.Remaining())
}
