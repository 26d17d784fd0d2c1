package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/widgets"
)

func TestScissorFor(t *testing.T) {
	tests := []struct {
		name   string
		clip   [4]float32
		scale  float32
		want   [4]int32
		wantOK bool
	}{
		{"full screen", [4]float32{0, 0, 800, 600}, 1, [4]int32{0, 0, 800, 600}, true},
		{"flipped origin", [4]float32{10, 20, 110, 70}, 1, [4]int32{10, 530, 100, 50}, true},
		{"hidpi", [4]float32{10, 20, 110, 70}, 2, [4]int32{20, 1060, 200, 100}, true},
		{"clamped left", [4]float32{-10, 580, 20, 600}, 1, [4]int32{0, 0, 20, 20}, true},
		{"empty", [4]float32{5, 5, 5, 30}, 1, [4]int32{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorFor(tt.clip, 600, tt.scale, tt.scale)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, [4]int32{x, y, w, h})
		})
	}
}

func TestOrthoMatrixMapsWindowToClipSpace(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)
	project := func(x, y float32) (float32, float32) {
		return m[0]*x + m[12], m[5]*y + m[13]
	}
	cx, cy := project(0, 0)
	assert.InDelta(t, -1, cx, 1e-6)
	assert.InDelta(t, 1, cy, 1e-6)
	cx, cy = project(800, 600)
	assert.InDelta(t, 1, cx, 1e-6)
	assert.InDelta(t, -1, cy, 1e-6)
}

func TestGLFWKeyMapping(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want widgets.Key
	}{
		{glfw.KeyA, widgets.KeyA},
		{glfw.KeyZ, widgets.KeyZ},
		{glfw.Key7, widgets.Key7},
		{glfw.KeyF12, widgets.KeyF12},
		{glfw.KeyKPEnter, widgets.KeyEnter},
		{glfw.KeyBackspace, widgets.KeyBackspace},
		{glfw.KeyCapsLock, widgets.KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glfwKeyToKey(tt.in), "glfw key %d", tt.in)
	}
}

func TestGLFWModifiersAndButtons(t *testing.T) {
	assert.Equal(t, widgets.ModShift|widgets.ModSuper, glfwModsToModifier(glfw.ModShift|glfw.ModSuper))
	assert.Equal(t, widgets.ModNone, glfwModsToModifier(glfw.ModCapsLock))

	b, ok := glfwMouseButton(glfw.MouseButtonRight)
	assert.True(t, ok)
	assert.Equal(t, widgets.MouseButtonRight, b)
	_, ok = glfwMouseButton(glfw.MouseButton4)
	assert.False(t, ok)
}
