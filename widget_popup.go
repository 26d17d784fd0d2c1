package widgets

// Popup is a container shown above everything through Manager.ShowPopup.
// While shown it receives every event: pointer events go to the child under
// the pointer (a press also focuses it), keyboard events go to the focused
// descendant. Escape, a click outside (unless KeepOnClickAway) or the title
// bar close box request the close.
type Popup struct {
	Base
	childList
	title       string
	dismissAway bool

	// OnClose runs once the manager has finished closing the popup.
	OnClose func()
}

// NewPopup creates a hidden popup. WithTitle adds a title bar with a close
// box.
func NewPopup(bounds Rect, opts ...Option) *Popup {
	o := applyOptions(opts)
	p := &Popup{
		title:       GetOpt(o, OptTitle),
		dismissAway: GetOpt(o, OptDismissOnClickAway),
	}
	p.rect = bounds
	applyBase(&p.Base, o)
	p.hidden = true
	return p
}

// Title returns the title bar text.
func (p *Popup) Title() string { return p.title }

// titleHeight is the height of the title bar, 0 without a title.
func (p *Popup) titleHeight(ctx *Context) float32 {
	if p.title == "" {
		return 0
	}
	return lineHeightOf(ctx.Font, defaultLineHeight) + ctx.ThemeFor(p.theme).Padding*2
}

// ContentRect returns the area below the title bar, inset by the padding.
func (p *Popup) ContentRect(ctx *Context) Rect {
	th := ctx.ThemeFor(p.theme)
	top := p.titleHeight(ctx)
	return Rect{X: p.rect.X, Y: p.rect.Y + top, W: p.rect.W, H: maxf(0, p.rect.H-top)}.Inset(th.Padding)
}

// closeBox returns the close box in the title bar.
func (p *Popup) closeBox(ctx *Context) (Rect, bool) {
	h := p.titleHeight(ctx)
	if h == 0 {
		return Rect{}, false
	}
	return Rect{X: p.rect.X + p.rect.W - h, Y: p.rect.Y, W: h, H: h}, true
}

// HandleEvent implements Widget.
func (p *Popup) HandleEvent(ctx *Context, ev Event) bool {
	p.trackHover(ev)
	switch {
	case ev.IsPointer():
		if ev.Kind == EventPointerDown {
			if !p.rect.Contains(ev.Pos) {
				if p.dismissAway {
					ctx.ClosePopup()
				}
				return true
			}
			if box, ok := p.closeBox(ctx); ok && box.Contains(ev.Pos) {
				ctx.ClosePopup()
				return true
			}
			if t := focusTargetAt(p, ev.Pos); t != nil {
				ctx.Focus(t)
			}
		}
		p.dispatchPointer(ctx, ev)
		return true

	case ev.IsKeyboard() || ev.Kind == EventWindowFocusLost:
		if f := ctx.Focused(); f != nil && f != Widget(p) && interactive(f) && containsWidget(p, f) {
			if f.HandleEvent(ctx, ev) {
				return true
			}
		}
		if ev.Kind == EventKeyDown && ev.Key == KeyEscape {
			ctx.ClosePopup()
			return true
		}
	}
	return false
}

// PopupClosed implements PopupCloser.
func (p *Popup) PopupClosed(*Context) {
	if p.OnClose != nil {
		p.OnClose()
	}
}

// Update implements Widget.
func (p *Popup) Update(ctx *Context, dt float32) { p.update(ctx, dt) }

// Render draws the frame, the title bar and the children.
func (p *Popup) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(p.theme)
	f := ctx.Font
	c.FillRect(p.rect, th.Rounding, th.PanelColor)
	c.StrokeRect(p.rect, th.Rounding, th.BorderSize, th.PanelBorderColor)

	if h := p.titleHeight(ctx); h > 0 {
		c.FillRect(Rect{X: p.rect.X, Y: p.rect.Y, W: p.rect.W, H: h}, th.Rounding, th.TitleBgColor)
		lh := lineHeightOf(f, defaultLineHeight)
		c.Text(f, Vec2{X: p.rect.X + th.Padding, Y: p.rect.Y + (h-lh)/2}, TruncateText(f, p.title, p.rect.W-h-th.Padding), th.TextColor)
		if box, ok := p.closeBox(ctx); ok {
			if box.Contains(ctx.Pointer) {
				c.FillRect(box, th.Rounding, th.ButtonHoveredColor)
			}
			in := box.Inset(box.H * 0.3)
			c.Line(Vec2{X: in.X, Y: in.Y}, Vec2{X: in.X + in.W, Y: in.Y + in.H}, 1.5, th.TextColor)
			c.Line(Vec2{X: in.X, Y: in.Y + in.H}, Vec2{X: in.X + in.W, Y: in.Y}, 1.5, th.TextColor)
		}
	}

	c.PushClip(p.rect)
	p.render(ctx, c)
	c.PopClip()
}

// Dialog is a popup with a message and OK/Cancel buttons. It reports the
// answer through OnResult; closing it any other way answers false.
type Dialog struct {
	Popup
	message  *Label
	ok       *Button
	cancel   *Button
	answered bool

	OnResult func(ok bool)
}

// dialogButtonWidth is the width of the OK/Cancel buttons.
const dialogButtonWidth float32 = 80

// NewDialog creates a hidden dialog. Show it with Manager.ShowPopup.
func NewDialog(bounds Rect, title, message string, onResult func(ok bool), opts ...Option) *Dialog {
	d := &Dialog{OnResult: onResult}
	d.Popup = *NewPopup(bounds, append([]Option{WithTitle(title)}, opts...)...)

	pad := SpaceMD
	btnH := float32(24)
	btnY := bounds.Y + bounds.H - pad - btnH

	// The message is placed against the title bar in layout, once the font
	// and theme are known.
	d.message = NewWrappedLabel(Rect{}, message)
	d.ok = NewButton(Rect{X: bounds.X + bounds.W - pad*2 - dialogButtonWidth*2, Y: btnY, W: dialogButtonWidth, H: btnH}, "OK", func() { d.answer(true) })
	d.cancel = NewButton(Rect{X: bounds.X + bounds.W - pad - dialogButtonWidth, Y: btnY, W: dialogButtonWidth, H: btnH}, "Cancel", func() { d.answer(false) })
	d.Add(d.message, d.ok, d.cancel)
	return d
}

// layout fits the message between the title bar and the buttons.
func (d *Dialog) layout(ctx *Context) {
	content := d.ContentRect(ctx)
	bottom := d.ok.Bounds().Y - ctx.ThemeFor(d.theme).Padding
	d.message.SetBounds(Rect{X: content.X, Y: content.Y, W: content.W, H: maxf(0, bottom-content.Y)})
}

// Update implements Widget.
func (d *Dialog) Update(ctx *Context, dt float32) {
	d.layout(ctx)
	d.Popup.Update(ctx, dt)
}

// Render implements Widget.
func (d *Dialog) Render(ctx *Context, c Canvas) {
	d.layout(ctx)
	d.Popup.Render(ctx, c)
}

// Message returns the dialog text.
func (d *Dialog) Message() string { return d.message.Text() }

// SetMessage replaces the dialog text.
func (d *Dialog) SetMessage(s string) { d.message.SetText(s) }

// OKButton returns the confirming button.
func (d *Dialog) OKButton() *Button { return d.ok }

// CancelButton returns the dismissing button.
func (d *Dialog) CancelButton() *Button { return d.cancel }

// answer records the result and hides the dialog; the manager completes
// the close on its next Update.
func (d *Dialog) answer(ok bool) {
	if d.answered {
		return
	}
	d.answered = true
	if d.OnResult != nil {
		d.OnResult(ok)
	}
	d.SetVisible(false)
}

// PopupClosed answers false if no button was pressed, then re-arms the
// dialog for the next show.
func (d *Dialog) PopupClosed(ctx *Context) {
	if !d.answered && d.OnResult != nil {
		d.OnResult(false)
	}
	d.answered = false
	d.Popup.PopupClosed(ctx)
}
