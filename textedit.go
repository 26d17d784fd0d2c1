package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Editor is the caret/selection model shared by TextField and TextArea. It
// edits a string it does not own, through a Binding. All offsets are byte
// offsets kept on UTF-8 codepoint boundaries.
type Editor struct {
	text Binding[string]

	caret  int
	anchor int // -1 = no selection

	// MaxLen caps the text length in codepoints. 0 = unlimited.
	MaxLen int
	// Mask, when non-zero, replaces every rune on screen (password mode).
	Mask rune
	// Filter drops inserted runes it returns false for.
	Filter func(rune) bool
	// ReadOnly allows navigation, selection and copy only.
	ReadOnly bool
	// OnChange runs after every mutation of the bound text.
	OnChange func(text string)

	multiline bool

	composition string
	compCursor  int

	blink float32
	undo  undoHistory
}

// NewEditor creates an editor over b with the caret at the end of the text.
func NewEditor(b Binding[string]) *Editor {
	e := &Editor{text: b, anchor: -1}
	e.caret = len(e.Text())
	return e
}

// Text returns the bound text.
func (e *Editor) Text() string { return getOr(e.text, "") }

func (e *Editor) setText(s string) {
	if e.text != nil {
		e.text.Set(s)
	}
	if e.OnChange != nil {
		e.OnChange(s)
	}
}

// Multiline reports whether newlines are kept on insertion.
func (e *Editor) Multiline() bool { return e.multiline }

// Caret returns the caret byte offset, clamped to the current text.
func (e *Editor) Caret() int {
	e.clamp()
	return e.caret
}

// Anchor returns the selection anchor, or -1.
func (e *Editor) Anchor() int {
	e.clamp()
	return e.anchor
}

// SetCaret moves the caret and drops the selection. Out-of-range offsets
// are clamped and snapped back to a codepoint boundary.
func (e *Editor) SetCaret(pos int) {
	e.caret = pos
	e.anchor = -1
	e.clamp()
	e.ResetBlink()
}

// SetSelection sets anchor and caret. An anchor of -1 clears the selection.
func (e *Editor) SetSelection(anchor, caret int) {
	e.anchor = anchor
	e.caret = caret
	e.clamp()
}

// HasSelection reports whether a non-empty range is selected.
func (e *Editor) HasSelection() bool {
	e.clamp()
	return e.anchor >= 0 && e.anchor != e.caret
}

// SelRange returns the selection as (start, end), start <= end. Without a
// selection both are the caret.
func (e *Editor) SelRange() (start, end int) {
	e.clamp()
	if e.anchor < 0 {
		return e.caret, e.caret
	}
	if e.anchor < e.caret {
		return e.anchor, e.caret
	}
	return e.caret, e.anchor
}

// SelectedText returns the selected substring.
func (e *Editor) SelectedText() string {
	s, end := e.SelRange()
	return e.Text()[s:end]
}

// ClearSelection drops the anchor.
func (e *Editor) ClearSelection() { e.anchor = -1 }

// SelectAll anchors at 0 with the caret at the end.
func (e *Editor) SelectAll() {
	e.anchor = 0
	e.caret = len(e.Text())
	e.ResetBlink()
}

// clamp restores the offset invariants against the current text, which the
// application may have changed behind the binding.
func (e *Editor) clamp() {
	t := e.Text()
	e.caret = snapBoundary(t, clampi(e.caret, 0, len(t)))
	if e.anchor >= 0 {
		e.anchor = snapBoundary(t, clampi(e.anchor, 0, len(t)))
	} else {
		e.anchor = -1
	}
}

// snapBoundary moves i left until it starts a codepoint.
func snapBoundary(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// prevBoundary returns the offset of the codepoint before i.
func prevBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:i])
	return i - size
}

// nextBoundary returns the offset after the codepoint at i.
func nextBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordLeft skips non-word runes, then word runes, to the left of i.
func wordLeft(s string, i int) int {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if isWordRune(r) {
			break
		}
		i -= size
	}
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !isWordRune(r) {
			break
		}
		i -= size
	}
	return i
}

// wordRight skips non-word runes, then word runes, to the right of i.
func wordRight(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isWordRune(r) {
			break
		}
		i += size
	}
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}
	return i
}

// WordAt returns the word (or run of non-word runes) around offset i.
func WordAt(s string, i int) (start, end int) {
	i = snapBoundary(s, clampi(i, 0, len(s)))
	if s == "" {
		return 0, 0
	}
	pivot := i
	if pivot == len(s) {
		pivot = prevBoundary(s, pivot)
	}
	r, _ := utf8.DecodeRuneInString(s[pivot:])
	word := isWordRune(r)
	start, end = pivot, pivot
	for start > 0 {
		pr, size := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(pr) != word || pr == '\n' {
			break
		}
		start -= size
	}
	for end < len(s) {
		nr, size := utf8.DecodeRuneInString(s[end:])
		if isWordRune(nr) != word || nr == '\n' {
			break
		}
		end += size
	}
	return start, end
}

// MoveTo places the caret at pos. With extend the selection grows from the
// pre-move caret; without it any selection is dropped.
func (e *Editor) MoveTo(pos int, extend bool) {
	e.clamp()
	if extend {
		if e.anchor < 0 {
			e.anchor = e.caret
		}
	} else {
		e.anchor = -1
	}
	e.caret = snapBoundary(e.Text(), clampi(pos, 0, len(e.Text())))
	e.ResetBlink()
}

// MoveLeft moves one codepoint (or word) left. Without extend an active
// selection collapses to its start instead.
func (e *Editor) MoveLeft(word, extend bool) {
	if !extend && e.HasSelection() {
		s, _ := e.SelRange()
		e.MoveTo(s, false)
		return
	}
	t := e.Text()
	if word {
		e.MoveTo(wordLeft(t, e.caret), extend)
		return
	}
	e.MoveTo(prevBoundary(t, e.caret), extend)
}

// MoveRight moves one codepoint (or word) right. Without extend an active
// selection collapses to its end instead.
func (e *Editor) MoveRight(word, extend bool) {
	if !extend && e.HasSelection() {
		_, end := e.SelRange()
		e.MoveTo(end, false)
		return
	}
	t := e.Text()
	if word {
		e.MoveTo(wordRight(t, e.caret), extend)
		return
	}
	e.MoveTo(nextBoundary(t, e.caret), extend)
}

// MoveHome moves to the start of the text.
func (e *Editor) MoveHome(extend bool) { e.MoveTo(0, extend) }

// MoveEnd moves to the end of the text.
func (e *Editor) MoveEnd(extend bool) { e.MoveTo(len(e.Text()), extend) }

// filterInsert applies the char filter and, in single-line mode, strips
// line breaks.
func (e *Editor) filterInsert(s string) string {
	if !e.multiline {
		s = strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
	} else {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	if e.Filter == nil {
		return s
	}
	return strings.Map(func(r rune) rune {
		if e.Filter(r) || (e.multiline && r == '\n') {
			return r
		}
		return -1
	}, s)
}

// Insert replaces the selection with s, truncated to the remaining
// capacity, and places the caret after it. Reports whether the text changed.
func (e *Editor) Insert(s string) bool {
	if e.ReadOnly {
		return false
	}
	e.clamp()
	s = e.filterInsert(s)
	t := e.Text()
	start, end := e.SelRange()

	if e.MaxLen > 0 {
		remaining := e.MaxLen - (utf8.RuneCountInString(t) - utf8.RuneCountInString(t[start:end]))
		s = truncateRunes(s, remaining)
	}
	if s == "" {
		return false
	}

	e.undo.push(t, e.caret)
	e.setText(t[:start] + s + t[end:])
	e.caret = start + len(s)
	e.anchor = -1
	e.ResetBlink()
	return true
}

// truncateRunes keeps at most n codepoints of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// DeleteSelection removes exactly the selected range.
func (e *Editor) DeleteSelection() bool {
	if e.ReadOnly || !e.HasSelection() {
		return false
	}
	start, end := e.SelRange()
	return e.deleteRange(start, end)
}

func (e *Editor) deleteRange(start, end int) bool {
	if start >= end {
		return false
	}
	t := e.Text()
	e.undo.push(t, e.caret)
	e.setText(t[:start] + t[end:])
	e.caret = start
	e.anchor = -1
	e.ResetBlink()
	return true
}

// Backspace deletes the selection, else the codepoint (or word) before the
// caret.
func (e *Editor) Backspace(word bool) bool {
	if e.ReadOnly {
		return false
	}
	if e.HasSelection() {
		return e.DeleteSelection()
	}
	t := e.Text()
	from := prevBoundary(t, e.caret)
	if word {
		from = wordLeft(t, e.caret)
	}
	return e.deleteRange(from, e.caret)
}

// Delete deletes the selection, else the codepoint (or word) after the
// caret.
func (e *Editor) Delete(word bool) bool {
	if e.ReadOnly {
		return false
	}
	if e.HasSelection() {
		return e.DeleteSelection()
	}
	t := e.Text()
	to := nextBoundary(t, e.caret)
	if word {
		to = wordRight(t, e.caret)
	}
	return e.deleteRange(e.caret, to)
}

// Copy puts the selection on the clipboard. Masked text is never copied.
func (e *Editor) Copy(cb Clipboard) bool {
	if cb == nil || e.Mask != 0 || !e.HasSelection() {
		return false
	}
	cb.SetText(e.SelectedText())
	return true
}

// Cut copies then deletes the selection.
func (e *Editor) Cut(cb Clipboard) bool {
	if e.ReadOnly || !e.Copy(cb) {
		return false
	}
	return e.DeleteSelection()
}

// Paste inserts the clipboard text, NFC-normalised and truncated to the
// remaining capacity.
func (e *Editor) Paste(cb Clipboard) bool {
	s := clipboardText(cb)
	if s == "" {
		return false
	}
	return e.Insert(norm.NFC.String(s))
}

// Undo restores the previous text.
func (e *Editor) Undo() bool {
	if e.ReadOnly {
		return false
	}
	st, ok := e.undo.undo(e.Text(), e.caret)
	if !ok {
		return false
	}
	e.restore(st)
	return true
}

// Redo re-applies an undone edit.
func (e *Editor) Redo() bool {
	if e.ReadOnly {
		return false
	}
	st, ok := e.undo.redo()
	if !ok {
		return false
	}
	e.restore(st)
	return true
}

func (e *Editor) restore(st undoState) {
	e.setText(st.text)
	e.caret = st.caret
	e.anchor = -1
	e.clamp()
	e.ResetBlink()
}

// Composition returns the in-flight IME text and its cursor.
func (e *Editor) Composition() (string, int) { return e.composition, e.compCursor }

// Composing reports whether IME composition is in progress.
func (e *Editor) Composing() bool { return e.composition != "" }

// SetComposition replaces the IME preedit text. It is never written to the
// bound string; the platform commits it as a text-input event.
func (e *Editor) SetComposition(text string, cursor int) {
	e.composition = text
	e.compCursor = snapBoundary(text, clampi(cursor, 0, len(text)))
	e.ResetBlink()
}

// ClearComposition drops the preedit text.
func (e *Editor) ClearComposition() {
	e.composition = ""
	e.compCursor = 0
}

// Commit inserts committed IME or keyboard text, ending any composition.
func (e *Editor) Commit(text string) bool {
	e.ClearComposition()
	return e.Insert(text)
}

// ResetBlink makes the caret visible and restarts the blink cycle.
func (e *Editor) ResetBlink() { e.blink = 0 }

// Tick advances the blink phase.
func (e *Editor) Tick(dt, period float32) {
	if period <= 0 {
		return
	}
	e.blink += dt
	for e.blink >= period {
		e.blink -= period
	}
}

// CaretVisible reports whether the caret is in the "on" half of the cycle.
func (e *Editor) CaretVisible(period float32) bool {
	return period <= 0 || e.blink < period/2
}

// DisplayText returns the text as drawn: masked in password mode.
func (e *Editor) DisplayText(s string) string {
	if e.Mask == 0 {
		return s
	}
	return strings.Repeat(string(e.Mask), utf8.RuneCountInString(s))
}

// PrefixWidth measures the pixel width of s[:off]. Masked text is measured
// as codepoint count times the mask glyph width.
func (e *Editor) PrefixWidth(f Font, s string, off int) float32 {
	off = snapBoundary(s, clampi(off, 0, len(s)))
	if e.Mask != 0 {
		return float32(utf8.RuneCountInString(s[:off])) * measureWidth(f, string(e.Mask))
	}
	return measureWidth(f, s[:off])
}

// OffsetAtX returns the boundary in s whose x position is nearest to x.
func (e *Editor) OffsetAtX(f Font, s string, x float32) int {
	if x <= 0 || s == "" {
		return 0
	}
	prevX := float32(0)
	prev := 0
	for i := nextBoundary(s, 0); ; i = nextBoundary(s, i) {
		cx := e.PrefixWidth(f, s, i)
		if cx >= x {
			if x-prevX < cx-x {
				return prev
			}
			return i
		}
		prev, prevX = i, cx
		if i >= len(s) {
			return len(s)
		}
	}
}

// revealRange returns the scroll offset that brings [lo, hi] into a viewport
// of size view by the minimum amount, clamped to the content size. Applying
// it twice gives the same result.
func revealRange(scroll, lo, hi, view, content float32) float32 {
	if hi-scroll > view {
		scroll = hi - view
	}
	if lo < scroll {
		scroll = lo
	}
	return clampf(scroll, 0, maxf(0, content-view))
}

// editKey applies the editing keys shared by single- and multi-line
// widgets. Reports whether the key was handled and whether the text changed.
func (e *Editor) editKey(ev Event, cb Clipboard) (handled, changed bool) {
	mods := ev.Mods
	shift := mods.Shift()
	word := mods.Word()

	if mods.Command() {
		switch ev.Key {
		case KeyA:
			e.SelectAll()
			return true, false
		case KeyC:
			e.Copy(cb)
			return true, false
		case KeyX:
			return true, e.Cut(cb)
		case KeyV:
			return true, e.Paste(cb)
		case KeyZ:
			if shift {
				return true, e.Redo()
			}
			return true, e.Undo()
		case KeyY:
			return true, e.Redo()
		}
	}

	switch ev.Key {
	case KeyLeft:
		e.MoveLeft(word, shift)
		return true, false
	case KeyRight:
		e.MoveRight(word, shift)
		return true, false
	case KeyBackspace:
		return true, e.Backspace(word)
	case KeyDelete:
		return true, e.Delete(word)
	}
	return false, false
}

// undoState is one history entry.
type undoState struct {
	text  string
	caret int
}

// undoHistory is a bounded linear undo/redo stack.
type undoHistory struct {
	stack []undoState // previous text states
	index int         // current position in stack
}

const maxUndoSize = 50

// push saves the text before a change. Forward history is truncated.
func (h *undoHistory) push(text string, caret int) {
	if h.index < len(h.stack) {
		h.stack = h.stack[:h.index]
	}
	if n := len(h.stack); n > 0 && h.stack[n-1].text == text {
		return
	}
	h.stack = append(h.stack, undoState{text: text, caret: caret})
	h.index = len(h.stack)
	if len(h.stack) > maxUndoSize {
		h.stack = h.stack[1:]
		h.index--
	}
}

// undo returns the previous state. The current text is saved first so redo
// can come back to it.
func (h *undoHistory) undo(current string, caret int) (undoState, bool) {
	if h.index == len(h.stack) && len(h.stack) > 0 {
		if h.stack[len(h.stack)-1].text != current {
			h.stack = append(h.stack, undoState{text: current, caret: caret})
		}
	}
	if h.index > 0 {
		h.index--
		return h.stack[h.index], true
	}
	return undoState{}, false
}

func (h *undoHistory) redo() (undoState, bool) {
	if h.index < len(h.stack)-1 {
		h.index++
		return h.stack[h.index], true
	}
	return undoState{}, false
}
