package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcutString(t *testing.T) {
	tests := []struct {
		sc   Shortcut
		want string
	}{
		{Shortcut{Key: KeyS, Mods: ModCtrl | ModShift}, "Ctrl+Shift+S"},
		{Shortcut{Key: KeyF5}, "F5"},
		{Shortcut{Key: Key1, Mods: ModAlt}, "Alt+1"},
		{Shortcut{Key: KeyHome, Mods: ModSuper}, "Super+Home"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sc.String())
		})
	}
}

func TestShortcutScopeString(t *testing.T) {
	assert.Equal(t, "global", ScopeGlobal.String())
	assert.Equal(t, "when-no-text-editing", ScopeWhenNoTextEditing.String())
	assert.Equal(t, "modal-only", ScopeModalOnly.String())
}

func TestShortcutTableRegister(t *testing.T) {
	var table ShortcutTable
	table.Register(KeyS, ModCtrl, ScopeGlobal, nil)
	table.Register(KeyNone, ModNone, ScopeGlobal, func() {})
	assert.Equal(t, 0, table.Len())

	table.Register(KeyS, ModCtrl, ScopeGlobal, func() {})
	assert.Equal(t, 1, table.Len())
}

func TestShortcutTableDispatch(t *testing.T) {
	var table ShortcutTable
	var fired []string
	table.Register(KeyS, ModCtrl, ScopeModalOnly, func() { fired = append(fired, "modal") })
	table.Register(KeyS, ModCtrl, ScopeGlobal, func() { fired = append(fired, "first") })
	table.Register(KeyS, ModCtrl, ScopeGlobal, func() { fired = append(fired, "second") })

	normal := func(s ShortcutScope) bool { return s != ScopeModalOnly }
	sc, ok := table.Dispatch(KeyS, ModCtrl, normal)
	require.True(t, ok)
	assert.Equal(t, ScopeGlobal, sc.Scope)
	assert.Equal(t, []string{"first"}, fired)

	_, ok = table.Dispatch(KeyS, ModCtrl|ModShift, normal)
	assert.False(t, ok, "modifiers must match exactly")
	_, ok = table.Dispatch(KeyS, ModNone, normal)
	assert.False(t, ok)

	_, ok = table.Dispatch(KeyS, ModCtrl, func(ShortcutScope) bool { return true })
	require.True(t, ok)
	assert.Equal(t, []string{"first", "modal"}, fired)
}
