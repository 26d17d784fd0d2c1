package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestManagerLogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := testManager(WithLogger(zap.New(core)))

	a := newRecorder("a", Rect{W: 50, H: 20})
	a.consume = false
	m.AddElement(a)
	m.Focus(a)

	p := NewPopup(Rect{X: 100, Y: 100, W: 100, H: 100})
	m.ShowPopup(p)
	m.ClosePopup()
	m.Update(0)

	m.RegisterShortcut(KeyS, ModCtrl, ScopeGlobal, func() {})
	m.HandleEvent(KeyPress(KeyS, ModCtrl))

	var msgs []string
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "focus changed")
	assert.Contains(t, msgs, "popup shown")
	assert.Contains(t, msgs, "popup closed")

	fired := logs.FilterMessage("shortcut fired").All()
	if assert.Len(t, fired, 1) {
		assert.Equal(t, "Ctrl+S", fired[0].ContextMap()["chord"])
		assert.Equal(t, "global", fired[0].ContextMap()["scope"])
	}
}

func TestComboBoxLogsThroughContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := testManager(WithLogger(zap.New(core)))
	sel := 1
	cb := NewComboBox(Rect{W: 100, H: 20}, []string{"a", "b", "c"}, Ref(&sel))
	m.AddElement(cb)

	click(m, 10, 10)
	assert.True(t, cb.Expanded())
	expanded := logs.FilterMessage("combo box expanded").All()
	if assert.Len(t, expanded, 1) {
		assert.Equal(t, int64(3), expanded[0].ContextMap()["items"])
		assert.Equal(t, int64(1), expanded[0].ContextMap()["selected"])
	}

	m.HandleEvent(KeyPress(KeyEscape, ModNone))
	assert.False(t, cb.Expanded())
	assert.Equal(t, 1, logs.FilterMessage("combo box collapsed").Len())
}
