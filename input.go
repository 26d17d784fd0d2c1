package widgets

import "strconv"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// IsPrintable reports whether the key normally produces a text-input event
// (letters, digits, space). Text widgets swallow the key-down of these so
// unmodified letters never reach the shortcut table while typing.
func (k Key) IsPrintable() bool {
	return (k >= KeyA && k <= Key9) || k == KeySpace
}

// String returns a human-readable name for a key.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

var keyNames = map[Key]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
}

// Modifier is a bit mask of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper

	ModNone Modifier = 0
)

// Has reports whether every bit of m2 is set in m.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

// Shift reports whether shift is held.
func (m Modifier) Shift() bool { return m&ModShift != 0 }

// Command reports whether the platform command modifier (Ctrl or Super) is held.
func (m Modifier) Command() bool { return m&(ModCtrl|ModSuper) != 0 }

// Word reports whether the word-navigation modifier (Ctrl or Alt) is held.
func (m Modifier) Word() bool { return m&(ModCtrl|ModAlt) != 0 }

// EventKind discriminates Event payloads.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventWheel
	EventKeyDown
	EventKeyUp
	EventTextInput       // committed UTF-8 text
	EventTextComposition // IME preedit update, not yet committed
	EventWindowFocusLost
)

// String returns the kind name, used in debug logs.
func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventWheel:
		return "wheel"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventTextInput:
		return "text-input"
	case EventTextComposition:
		return "text-composition"
	case EventWindowFocusLost:
		return "window-focus-lost"
	default:
		return "none"
	}
}

// Event is one platform input event. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Pointer payload
	Pos    Vec2
	Button MouseButton
	Wheel  Vec2 // wheel delta, positive Y scrolls up

	// Keyboard payload
	Key  Key
	Mods Modifier

	// Text payload. For EventTextComposition, Text is the whole preedit
	// string and CompositionCursor the cursor byte offset inside it.
	Text              string
	CompositionCursor int
}

// IsPointer reports whether the event carries pointer coordinates.
func (e Event) IsPointer() bool {
	switch e.Kind {
	case EventPointerMove, EventPointerDown, EventPointerUp, EventWheel:
		return true
	}
	return false
}

// IsKeyboard reports whether the event belongs to keyboard focus routing.
func (e Event) IsKeyboard() bool {
	switch e.Kind {
	case EventKeyDown, EventKeyUp, EventTextInput, EventTextComposition:
		return true
	}
	return false
}

// PointerMove builds a pointer-move event.
func PointerMove(x, y float32) Event {
	return Event{Kind: EventPointerMove, Pos: Vec2{X: x, Y: y}}
}

// PointerDown builds a pointer-button-down event.
func PointerDown(x, y float32, button MouseButton) Event {
	return Event{Kind: EventPointerDown, Pos: Vec2{X: x, Y: y}, Button: button}
}

// PointerUp builds a pointer-button-up event.
func PointerUp(x, y float32, button MouseButton) Event {
	return Event{Kind: EventPointerUp, Pos: Vec2{X: x, Y: y}, Button: button}
}

// WheelAt builds a wheel event at a pointer position.
func WheelAt(x, y, dx, dy float32) Event {
	return Event{Kind: EventWheel, Pos: Vec2{X: x, Y: y}, Wheel: Vec2{X: dx, Y: dy}}
}

// KeyPress builds a key-down event.
func KeyPress(key Key, mods Modifier) Event {
	return Event{Kind: EventKeyDown, Key: key, Mods: mods}
}

// KeyRelease builds a key-up event.
func KeyRelease(key Key, mods Modifier) Event {
	return Event{Kind: EventKeyUp, Key: key, Mods: mods}
}

// TextCommit builds a committed text-input event.
func TextCommit(text string) Event {
	return Event{Kind: EventTextInput, Text: text}
}

// Composition builds an IME composition update.
func Composition(text string, cursor int) Event {
	return Event{Kind: EventTextComposition, Text: text, CompositionCursor: cursor}
}
