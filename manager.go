package widgets

import (
	"go.uber.org/zap"

	"github.com/go-theft-auto/widgets/internal/logging"
)

// Platform is the optional window-system hook the manager drives: cursor
// shape and text-input (IME) mode.
type Platform interface {
	SetCursor(kind CursorKind)
	StartTextInput(r Rect)
	StopTextInput()
}

// PopupCloser is implemented by popups that want to know when the manager
// has finished closing them.
type PopupCloser interface {
	PopupClosed(ctx *Context)
}

// visibilitySetter is satisfied by anything embedding Base.
type visibilitySetter interface {
	SetVisible(v bool)
}

// Manager owns the top-level widget list, the focus ring, mouse capture,
// the popup/modal slots and the shortcut table. It is the single routing
// authority for input events and is not safe for concurrent use.
type Manager struct {
	elements []Widget
	ring     *FocusRing
	captured Widget
	modal    Widget

	popup        Widget
	popupSaved   focusSnapshot
	popupClosing bool

	shortcuts ShortcutTable

	theme     Theme
	font      Font
	clipboard Clipboard
	platform  Platform
	log       *zap.Logger
	viewport  Vec2
	pointer   Vec2
	cursor    CursorKind

	ctx Context
}

// ManagerOption configures a Manager instance.
type ManagerOption func(*Manager)

// WithTheme sets the manager theme.
func WithTheme(t Theme) ManagerOption {
	return func(m *Manager) { m.theme = t }
}

// WithFont sets the font widgets measure and draw with.
func WithFont(f Font) ManagerOption {
	return func(m *Manager) { m.font = f }
}

// WithClipboard sets the clipboard used by text widgets.
func WithClipboard(cb Clipboard) ManagerOption {
	return func(m *Manager) { m.clipboard = cb }
}

// WithPlatform installs cursor and text-input hooks.
func WithPlatform(p Platform) ManagerOption {
	return func(m *Manager) { m.platform = p }
}

// WithLogger sets the logger for routing diagnostics.
func WithLogger(l *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithViewport sets the initial window size.
func WithViewport(w, h float32) ManagerOption {
	return func(m *Manager) { m.viewport = Vec2{X: w, Y: h} }
}

// NewManager creates a manager. Without WithTheme it starts from the
// process default theme; without WithClipboard it uses a MemoryClipboard.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		ring:  NewFocusRing(),
		theme: CurrentDefaultTheme(),
		log:   logging.L().Named("manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clipboard == nil {
		m.clipboard = &MemoryClipboard{}
	}
	m.ctx = Context{m: m}
	m.syncContext()
	return m
}

func (m *Manager) syncContext() {
	m.ctx.Theme = &m.theme
	m.ctx.Font = m.font
	m.ctx.Clipboard = m.clipboard
	m.ctx.Logger = m.log
	m.ctx.Viewport = m.viewport
	m.ctx.Pointer = m.pointer
}

// Context returns the context handed to widgets. Useful for driving widgets
// directly in tests and custom containers.
func (m *Manager) Context() *Context {
	m.syncContext()
	return &m.ctx
}

// Theme returns the manager theme.
func (m *Manager) Theme() Theme { return m.theme }

// SetTheme replaces the manager theme. Widget overrides stay in effect.
func (m *Manager) SetTheme(t Theme) {
	m.theme = t
	m.log.Debug("theme replaced")
}

// SetFont replaces the font.
func (m *Manager) SetFont(f Font) { m.font = f }

// SetViewport records the window size (used for the popup overlay).
func (m *Manager) SetViewport(w, h float32) { m.viewport = Vec2{X: w, Y: h} }

// Cursor returns the cursor resolved by the last Update.
func (m *Manager) Cursor() CursorKind { return m.cursor }

// Elements returns the top-level widgets in z-order (back to front).
func (m *Manager) Elements() []Widget { return m.elements }

// FocusRing exposes the active focus ring (the popup's while one is shown).
func (m *Manager) FocusRing() *FocusRing { return m.ring }

// AddElement appends w on top of the z-order and adds it and its focusable
// descendants to the focus ring. Children must be attached before the
// container is added.
func (m *Manager) AddElement(w Widget) {
	if w == nil {
		return
	}
	for _, el := range m.elements {
		if el == w {
			return
		}
	}
	m.elements = append(m.elements, w)
	for _, f := range collectFocusable(nil, w) {
		if m.popup != nil {
			m.popupSaved.items = appendUnique(m.popupSaved.items, f)
			continue
		}
		m.ring.Add(f)
	}
}

// RemoveElement drops a top-level widget. Focus, capture, modal and popup
// references into its subtree are released.
func (m *Manager) RemoveElement(w Widget) {
	idx := -1
	for i, el := range m.elements {
		if el == w {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	m.elements = append(m.elements[:idx], m.elements[idx+1:]...)
	m.forget(w)
}

// forget removes every reference the manager holds into the subtree of w.
func (m *Manager) forget(w Widget) {
	ctx := m.Context()
	if m.popup != nil && containsWidget(w, m.popup) {
		m.closePopupNow()
	}
	for _, it := range append([]Widget(nil), m.ring.Items()...) {
		if !containsWidget(w, it) {
			continue
		}
		if m.ring.Remove(it) {
			it.FocusChanged(ctx, false)
		}
	}
	m.popupSaved = m.popupSaved.without(w)
	if m.captured != nil && containsWidget(w, m.captured) {
		m.captured = nil
	}
	if m.modal != nil && containsWidget(w, m.modal) {
		m.modal = nil
	}
}

// --- Focus ---

// Focused returns the widget holding keyboard focus, or nil.
func (m *Manager) Focused() Widget { return m.ring.Current() }

// Focus moves keyboard focus to w. Widgets outside the ring are appended
// when they can take focus; while a popup is shown only its descendants
// are eligible. Nil clears focus.
func (m *Manager) Focus(w Widget) {
	if w == nil {
		m.ClearFocus()
		return
	}
	idx := m.ring.IndexOf(w)
	if idx < 0 {
		if !canFocus(w) {
			return
		}
		if m.popup != nil && !containsWidget(m.popup, w) {
			return
		}
		m.ring.Add(w)
		idx = m.ring.Len() - 1
	}
	if !canFocus(w) {
		return
	}
	m.setFocusIndex(idx)
}

// ClearFocus removes keyboard focus.
func (m *Manager) ClearFocus() { m.setFocusIndex(-1) }

// FocusNext moves focus to the next focusable widget, wrapping around.
func (m *Manager) FocusNext() { m.setFocusIndex(m.ring.next()) }

// FocusPrev moves focus to the previous focusable widget, wrapping around.
func (m *Manager) FocusPrev() { m.setFocusIndex(m.ring.prev()) }

// setFocusIndex is the single place focus changes. The old widget is told
// before the new one; nothing happens if the index is unchanged.
func (m *Manager) setFocusIndex(i int) {
	old := m.ring.Index()
	if i < -1 || i >= m.ring.Len() {
		i = -1
	}
	if i == old {
		return
	}
	prev := m.ring.Current()
	m.ring.SetIndex(i)
	next := m.ring.Current()

	ctx := m.Context()
	if prev != nil {
		prev.FocusChanged(ctx, false)
	}
	if next != nil {
		next.FocusChanged(ctx, true)
	}
	m.log.Debug("focus changed", zap.Int("from", old), zap.Int("to", i))
}

// --- Mouse capture ---

// CaptureMouse routes every pointer event to w until released.
func (m *Manager) CaptureMouse(w Widget) {
	if w == m.captured {
		return
	}
	m.captured = w
	m.log.Debug("mouse captured", zap.Bool("held", w != nil))
}

// ReleaseMouse clears the capture.
func (m *Manager) ReleaseMouse() {
	if m.captured != nil {
		m.captured = nil
		m.log.Debug("mouse released")
	}
}

// Captured returns the capture owner, or nil.
func (m *Manager) Captured() Widget { return m.captured }

// --- Modal / popup ---

// SetModal makes w receive every event exclusively until ClearModal.
func (m *Manager) SetModal(w Widget) {
	m.modal = w
	if w != nil && m.captured != nil && !containsWidget(w, m.captured) {
		m.captured = nil
	}
}

// ClearModal removes the modal widget.
func (m *Manager) ClearModal() { m.modal = nil }

// Modal returns the modal widget, or nil.
func (m *Manager) Modal() Widget { return m.modal }

// ShowPopup installs p as the active popup: the focus ring is saved and
// replaced by the popup's focusable descendants, the first of which takes
// focus. Showing a second popup closes the first one immediately.
func (m *Manager) ShowPopup(p Widget) {
	if p == nil || p == m.popup {
		if p != nil {
			m.popupClosing = false
		}
		return
	}
	if m.popup != nil {
		m.closePopupNow()
	}
	if vs, ok := p.(visibilitySetter); ok {
		vs.SetVisible(true)
	}

	ctx := m.Context()
	prev := m.ring.Current()
	m.popupSaved = m.ring.snapshot()
	m.popup = p
	m.popupClosing = false
	m.ring = &FocusRing{focusedIndex: -1}
	m.ring.reset(collectFocusable(nil, p))
	if m.captured != nil && !containsWidget(p, m.captured) {
		m.captured = nil
	}

	if prev != nil {
		prev.FocusChanged(ctx, false)
	}
	if i := m.ring.next(); i >= 0 {
		m.ring.SetIndex(i)
		m.ring.Current().FocusChanged(ctx, true)
	}
	m.log.Debug("popup shown", zap.Int("focusable", m.ring.Len()))
}

// ClosePopup flags the active popup for closing. The close is applied at
// the start of the next Update.
func (m *Manager) ClosePopup() {
	if m.popup != nil {
		m.popupClosing = true
	}
}

// ActivePopup returns the installed popup, or nil. A popup flagged for
// closing stays installed until the next Update.
func (m *Manager) ActivePopup() Widget { return m.popup }

func (m *Manager) closePopupNow() {
	p := m.popup
	if p == nil {
		return
	}
	ctx := m.Context()
	cur := m.ring.Current()
	m.popup = nil
	m.popupClosing = false
	m.ring = &FocusRing{focusedIndex: -1}
	m.ring.restore(m.popupSaved)
	m.popupSaved = focusSnapshot{}
	if m.captured != nil && containsWidget(p, m.captured) {
		m.captured = nil
	}
	if vs, ok := p.(visibilitySetter); ok {
		vs.SetVisible(false)
	}

	restored := m.ring.Current()
	if cur != nil && cur != restored {
		cur.FocusChanged(ctx, false)
	}
	if restored != nil && restored != cur {
		restored.FocusChanged(ctx, true)
	}
	if pc, ok := p.(PopupCloser); ok {
		pc.PopupClosed(ctx)
	}
	m.log.Debug("popup closed", zap.Int("restored_index", m.ring.Index()))
}

// --- Shortcuts ---

// RegisterShortcut binds key+mods (exact modifier match) to action.
func (m *Manager) RegisterShortcut(key Key, mods Modifier, scope ShortcutScope, action func()) {
	m.shortcuts.Register(key, mods, scope, action)
}

// dispatchShortcut offers an unconsumed key-down to the shortcut table.
func (m *Manager) dispatchShortcut(ev Event, modalMode bool, focused Widget) bool {
	if ev.Kind != EventKeyDown {
		return false
	}
	allowed := func(s ShortcutScope) bool {
		switch s {
		case ScopeGlobal:
			return true
		case ScopeModalOnly:
			return modalMode
		case ScopeWhenNoTextEditing:
			return !modalMode && !editsText(focused)
		}
		return false
	}
	s, ok := m.shortcuts.Dispatch(ev.Key, ev.Mods, allowed)
	if ok {
		m.log.Debug("shortcut fired", zap.Stringer("chord", s), zap.Stringer("scope", s.Scope))
	}
	return ok
}

func editsText(w Widget) bool {
	if w == nil {
		return false
	}
	te, ok := w.(TextEditing)
	return ok && te.EditsText()
}

// --- Routing ---

// HandleEvent routes one input event and reports whether anything
// consumed it. Priority: popup, modal, mouse capture (pointer events),
// keyboard focus, pointer hit-test.
func (m *Manager) HandleEvent(ev Event) bool {
	if ev.IsPointer() {
		m.pointer = ev.Pos
	}
	ctx := m.Context()

	if ev.Kind == EventWindowFocusLost {
		m.ReleaseMouse()
	}

	switch {
	case m.popup != nil:
		return m.routeExclusive(ctx, m.popup, ev, true)
	case m.modal != nil && m.modal.Visible():
		return m.routeExclusive(ctx, m.modal, ev, false)
	case m.captured != nil && ev.IsPointer():
		m.captured.HandleEvent(ctx, ev)
		return true
	}

	if ev.IsKeyboard() || ev.Kind == EventWindowFocusLost {
		return m.routeKeyboard(ctx, ev)
	}
	if ev.IsPointer() {
		return m.routePointer(ctx, ev)
	}
	return false
}

// routeExclusive delivers ev to a popup or modal. Tab cycles the popup's
// ring; pointer events go to a captured descendant; unconsumed key-downs
// reach Global and ModalOnly shortcuts.
func (m *Manager) routeExclusive(ctx *Context, root Widget, ev Event, isPopup bool) bool {
	if isPopup && (m.popupClosing || !root.Visible()) {
		return true
	}
	if isPopup && ev.Kind == EventKeyDown && ev.Key == KeyTab && ev.Mods&^ModShift == 0 {
		if ev.Mods.Shift() {
			m.FocusPrev()
		} else {
			m.FocusNext()
		}
		return true
	}
	if ev.IsPointer() && m.captured != nil && containsWidget(root, m.captured) {
		m.captured.HandleEvent(ctx, ev)
		return true
	}
	if root.HandleEvent(ctx, ev) {
		return true
	}
	return m.dispatchShortcut(ev, true, m.Focused())
}

func (m *Manager) routeKeyboard(ctx *Context, ev Event) bool {
	focused := m.Focused()
	if focused != nil && !interactive(focused) {
		focused = nil
	}

	if ev.Kind == EventKeyDown {
		switch {
		case ev.Key == KeyTab && ev.Mods&^ModShift == 0:
			if ev.Mods.Shift() {
				m.FocusPrev()
			} else {
				m.FocusNext()
			}
			return true
		case ev.Key == KeyEscape && focused == nil:
			// A disabled or hidden widget may still hold focus.
			hadFocus := m.Focused() != nil
			m.ClearFocus()
			return m.dispatchShortcut(ev, false, nil) || hadFocus
		}
	}

	if focused != nil && focused.HandleEvent(ctx, ev) {
		return true
	}
	return m.dispatchShortcut(ev, false, focused)
}

func (m *Manager) routePointer(ctx *Context, ev Event) bool {
	hit := m.hitTest(ev.Pos)
	if ev.Kind == EventPointerDown {
		if hit == nil {
			m.ClearFocus()
			return false
		}
		if target := focusTargetAt(hit, ev.Pos); target != nil {
			m.Focus(target)
		}
	}
	if hit == nil {
		return false
	}
	return hit.HandleEvent(ctx, ev)
}

// hitTest returns the top-most visible element containing p.
func (m *Manager) hitTest(p Vec2) Widget {
	for i := len(m.elements) - 1; i >= 0; i-- {
		el := m.elements[i]
		if el.Visible() && el.HitTest(p) {
			return el
		}
	}
	return nil
}

// focusTargetAt returns the deepest focusable widget under p in the
// subtree of w, or nil.
func focusTargetAt(w Widget, p Vec2) Widget {
	if w == nil || !w.Visible() || !w.HitTest(p) {
		return nil
	}
	if c, ok := w.(Container); ok {
		children := c.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if t := focusTargetAt(children[i], p); t != nil {
				return t
			}
		}
	}
	if canFocus(w) {
		return w
	}
	return nil
}

// --- Frame ---

// Update applies a deferred popup close, updates widgets and resolves the
// hover cursor. While a popup is shown only its subtree updates; otherwise
// an expanded combo box anywhere in the tree updates alone.
func (m *Manager) Update(dt float32) {
	ctx := m.Context()
	ctx.DeltaTime = dt

	if m.popup != nil && (m.popupClosing || !m.popup.Visible()) {
		m.closePopupNow()
	}

	cursor := CursorArrow
	switch {
	case m.popup != nil:
		m.applyHover(m.popup)
		m.popup.Update(ctx, dt)
		cursor = cursorFor(m.popup)
	default:
		if exp := m.expandedWidget(); exp != nil {
			m.applyHover(exp)
			exp.Update(ctx, dt)
			cursor = cursorFor(exp)
			break
		}
		m.applyHover(nil)
		hints := make([]CursorKind, 0, len(m.elements))
		for _, el := range m.elements {
			if !el.Visible() {
				continue
			}
			el.Update(ctx, dt)
			hints = append(hints, cursorFor(el))
		}
		if m.modal != nil && m.modal.Visible() && !m.isElement(m.modal) {
			m.modal.Update(ctx, dt)
			hints = append(hints, cursorFor(m.modal))
		}
		cursor = composeCursor(hints...)
	}

	if cursor != m.cursor {
		m.cursor = cursor
		if m.platform != nil {
			m.platform.SetCursor(cursor)
		}
	}
}

// expandedWidget returns the first expanded widget in the element tree.
func (m *Manager) expandedWidget() Widget {
	for _, el := range m.elements {
		if w := findExpanded(el); w != nil {
			return w
		}
	}
	return nil
}

func (m *Manager) isElement(w Widget) bool {
	for _, el := range m.elements {
		if el == w {
			return true
		}
	}
	return false
}

// hoverSetter is implemented by Base.
type hoverSetter interface {
	setHovered(bool)
}

// applyHover recomputes hover flags from the pointer. With only != nil,
// hover is restricted to that subtree and cleared everywhere else.
func (m *Manager) applyHover(only Widget) {
	var top Widget
	if only == nil {
		top = m.hitTest(m.pointer)
		if m.captured != nil {
			top = nil
		}
	}
	for _, el := range m.elements {
		setHoverTree(el, m.pointer, only == nil && el == top)
	}
	if m.modal != nil && !m.isElement(m.modal) {
		setHoverTree(m.modal, m.pointer, only == nil && m.modal.Visible())
	}
	if m.captured != nil && only == nil {
		setHoverTree(m.captured, m.pointer, true)
	}
	if only != nil {
		setHoverTree(only, m.pointer, true)
	}
}

func setHoverTree(w Widget, p Vec2, allowed bool) {
	if w == nil {
		return
	}
	h := allowed && w.Visible() && w.HitTest(p)
	if hs, ok := w.(hoverSetter); ok {
		hs.setHovered(h)
	}
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			setHoverTree(child, p, allowed)
		}
	}
}

// Render paints the elements back to front, then expanded overlays, then the
// popup above a translucent full-viewport overlay.
func (m *Manager) Render(c Canvas) {
	if c == nil {
		return
	}
	ctx := m.Context()
	if size := c.Size(); size.X > 0 && size.Y > 0 {
		ctx.Viewport = size
	}

	for _, el := range m.elements {
		if el.Visible() {
			el.Render(ctx, c)
		}
	}
	if m.modal != nil && m.modal.Visible() && !m.isElement(m.modal) {
		m.modal.Render(ctx, c)
	}
	for _, el := range m.elements {
		renderOverlays(ctx, c, el)
	}

	if m.popup != nil && m.popup.Visible() {
		vp := ctx.Viewport
		c.FillRect(Rect{W: vp.X, H: vp.Y}, 0, m.theme.OverlayColor)
		m.popup.Render(ctx, c)
		renderOverlays(ctx, c, m.popup)
	}
}

// renderOverlays draws the overlays of expanded widgets in the subtree.
func renderOverlays(ctx *Context, c Canvas, w Widget) {
	if w == nil || !w.Visible() {
		return
	}
	if e, ok := w.(Expander); ok && e.Expanded() {
		if o, ok := w.(OverlayRenderer); ok {
			o.RenderOverlay(ctx, c)
		}
	}
	if ct, ok := w.(Container); ok {
		for _, child := range ct.Children() {
			renderOverlays(ctx, c, child)
		}
	}
}

func appendUnique(dst []Widget, w Widget) []Widget {
	for _, it := range dst {
		if it == w {
			return dst
		}
	}
	return append(dst, w)
}

// without drops entries in the subtree of w, keeping the index on the same
// widget (or -1 if it was dropped).
func (s focusSnapshot) without(w Widget) focusSnapshot {
	if len(s.items) == 0 {
		return s
	}
	var cur Widget
	if s.index >= 0 && s.index < len(s.items) {
		cur = s.items[s.index]
	}
	out := focusSnapshot{index: -1}
	for _, it := range s.items {
		if containsWidget(w, it) {
			continue
		}
		if it == cur {
			out.index = len(out.items)
		}
		out.items = append(out.items, it)
	}
	return out
}
