package widgets

// ShortcutScope decides when a registered shortcut may fire.
type ShortcutScope uint8

const (
	// ScopeGlobal fires whenever a key-down is left unconsumed.
	ScopeGlobal ShortcutScope = iota
	// ScopeWhenNoTextEditing fires only in normal mode when no text widget
	// holds focus, so plain letter shortcuts never steal typing.
	ScopeWhenNoTextEditing
	// ScopeModalOnly fires only while a popup or modal is active.
	ScopeModalOnly
)

// String returns the scope name.
func (s ShortcutScope) String() string {
	switch s {
	case ScopeWhenNoTextEditing:
		return "when-no-text-editing"
	case ScopeModalOnly:
		return "modal-only"
	default:
		return "global"
	}
}

// Shortcut is one registered key binding.
type Shortcut struct {
	Key    Key
	Mods   Modifier
	Scope  ShortcutScope
	Action func()
}

// Matches reports whether the key-down matches exactly: same key and the
// same modifier mask.
func (s Shortcut) Matches(key Key, mods Modifier) bool {
	return s.Key == key && s.Mods == mods
}

// String formats the key chord, e.g. "Ctrl+Shift+S".
func (s Shortcut) String() string {
	out := ""
	if s.Mods&ModCtrl != 0 {
		out += "Ctrl+"
	}
	if s.Mods&ModAlt != 0 {
		out += "Alt+"
	}
	if s.Mods&ModSuper != 0 {
		out += "Super+"
	}
	if s.Mods&ModShift != 0 {
		out += "Shift+"
	}
	return out + s.Key.String()
}

// ShortcutTable holds shortcuts in registration order.
type ShortcutTable struct {
	entries []Shortcut
}

// Register adds a shortcut. A nil action is ignored.
func (t *ShortcutTable) Register(key Key, mods Modifier, scope ShortcutScope, action func()) {
	if action == nil || key == KeyNone {
		return
	}
	t.entries = append(t.entries, Shortcut{Key: key, Mods: mods, Scope: scope, Action: action})
}

// Len returns the number of registered shortcuts.
func (t *ShortcutTable) Len() int { return len(t.entries) }

// Dispatch runs the first shortcut matching key/mods whose scope is allowed
// and reports whether one fired.
func (t *ShortcutTable) Dispatch(key Key, mods Modifier, allowed func(ShortcutScope) bool) (Shortcut, bool) {
	for _, s := range t.entries {
		if !s.Matches(key, mods) || !allowed(s.Scope) {
			continue
		}
		s.Action()
		return s, true
	}
	return Shortcut{}, false
}
