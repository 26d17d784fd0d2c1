/*
Package widgets provides a retained-mode widget toolkit for applications
that draw their own UI over a 2D canvas, such as an OpenGL window.

# Overview

Widgets are long-lived values with bounds, state and callbacks. A Manager
owns the top-level elements and routes platform events to them, keeps the
keyboard focus ring, tracks mouse capture, and runs one popup and one modal
at a time. Widget values are bound to application data through Binding, so
the widget never keeps a stale copy.

# Quick Start

	var name string
	mgr := widgets.NewManager(
	    widgets.WithTheme(widgets.DarkTheme()),
	    widgets.WithFont(widgets.DefaultFont()),
	    widgets.WithClipboard(&widgets.SystemClipboard{}),
	)

	form := widgets.NewPanel(widgets.Rect{W: 400, H: 300})
	col := widgets.Column(widgets.Rect{W: 400, H: 300}, widgets.Padding(12))
	form.Add(widgets.NewTextField(col.Next(24), widgets.Ref(&name), widgets.WithPlaceholder("Name")))
	form.Add(widgets.NewButton(col.Next(28), "Save", save))
	mgr.AddElement(form)

	// Main loop
	for running {
	    for _, ev := range input.Drain() {
	        mgr.HandleEvent(ev)
	    }
	    mgr.Update(dt)

	    dl := widgets.AcquireDrawList(width, height)
	    mgr.Render(dl)
	    renderer.Render(dl)
	    widgets.ReleaseDrawList(dl)
	}

Children must be attached to a container before the container is added to
the Manager; the focus ring is built from the element tree at that moment.

# Event Routing

HandleEvent delivers each event to exactly one path, in priority order:

	1. Active popup     every event, exclusively
	2. Modal            every event, exclusively
	3. Mouse capture    pointer events only
	4. Keyboard focus   key and text events
	5. Hit test         pointer events, top-most element first

A pointer press on a focusable widget focuses it first. Tab and Shift+Tab
cycle the focus ring (inside a popup, the popup's own widgets). Escape goes
to the focused widget like any other key; with nothing focused it clears
focus. Unconsumed key presses are then matched against the shortcut table; see ShortcutScope for when each entry fires.

Closing a popup from inside its own event handler is deferred to the next
Update, so the handler can finish against a consistent tree.

# Text Editing

TextField and TextArea share an Editor: byte offsets kept on codepoint
boundaries, an optional selection anchor, undo history, IME composition and
a blinking caret.

Navigation:

	Left / Right          Move one codepoint
	Ctrl/Alt+Left/Right   Move one word
	Home / End            Line start / end
	Ctrl+Home / Ctrl+End  Text start / end (TextArea)
	Up / Down             Previous / next line, keeping the column (TextArea)
	PageUp / PageDown     One page (TextArea)

Selection:

	Shift + any of the above   Extend the selection
	Ctrl+A                     Select all
	Double click               Select word
	Triple click               Select all (TextField) or line (TextArea)

Editing:

	Backspace / Delete            Delete selection or one codepoint
	Ctrl+Backspace / Ctrl+Delete  Delete one word
	Ctrl+C / Ctrl+X / Ctrl+V      Copy / cut / paste
	Ctrl+Z                        Undo
	Ctrl+Shift+Z / Ctrl+Y         Redo

Masked fields (Password) never copy or cut their contents.

# Rendering

Widgets draw through the Canvas interface. DrawList implements it by
batching triangles per texture and clip rect for a GPU backend; see
backend/opengl for an OpenGL 4.1 renderer and GLFW input adapter.

# Themes

Theme holds every color and size widgets use. Themes load from TOML or
YAML with LoadTheme, and ThemeWatcher reloads a file when it changes.
A widget may override the manager theme with WithWidgetTheme.
*/
package widgets
