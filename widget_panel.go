package widgets

// childList holds the children of a container widget and forwards events,
// updates and rendering to them.
type childList struct {
	list []Widget
}

// Children implements Container.
func (cl *childList) Children() []Widget { return cl.list }

// Add appends children. Attach children before the container is added to a
// Manager so they land in its focus ring.
func (cl *childList) Add(ws ...Widget) {
	for _, w := range ws {
		if w != nil {
			cl.list = append(cl.list, w)
		}
	}
}

// dispatchPointer delivers a pointer event to the top-most visible child
// under the pointer.
func (cl *childList) dispatchPointer(ctx *Context, ev Event) bool {
	for i := len(cl.list) - 1; i >= 0; i-- {
		child := cl.list[i]
		if child.Visible() && child.HitTest(ev.Pos) {
			return child.HandleEvent(ctx, ev)
		}
	}
	return false
}

func (cl *childList) update(ctx *Context, dt float32) {
	for _, child := range cl.list {
		if child.Visible() {
			child.Update(ctx, dt)
		}
	}
}

func (cl *childList) render(ctx *Context, c Canvas) {
	for _, child := range cl.list {
		if child.Visible() {
			child.Render(ctx, c)
		}
	}
}

// Panel is a plain container with an optional background.
type Panel struct {
	Base
	childList
	background bool
}

// NewPanel creates a container. Children are added with Add.
func NewPanel(bounds Rect, opts ...Option) *Panel {
	p := &Panel{background: true}
	p.rect = bounds
	applyBase(&p.Base, applyOptions(opts))
	return p
}

// SetBackground toggles the panel fill.
func (p *Panel) SetBackground(on bool) { p.background = on }

// HandleEvent forwards pointer events to the children.
func (p *Panel) HandleEvent(ctx *Context, ev Event) bool {
	p.trackHover(ev)
	if ev.IsPointer() && p.Enabled() {
		return p.dispatchPointer(ctx, ev)
	}
	return false
}

// Update implements Widget.
func (p *Panel) Update(ctx *Context, dt float32) { p.update(ctx, dt) }

// Render implements Widget.
func (p *Panel) Render(ctx *Context, c Canvas) {
	if p.background {
		th := ctx.ThemeFor(p.theme)
		c.FillRect(p.rect, th.Rounding, th.PanelColor)
	}
	p.render(ctx, c)
}

// GroupBox is a titled frame around its children.
type GroupBox struct {
	Base
	childList
	title string
}

// NewGroupBox creates a titled frame. WithTitle may also set the title.
func NewGroupBox(bounds Rect, title string, opts ...Option) *GroupBox {
	o := applyOptions(opts)
	g := &GroupBox{title: title}
	if t := GetOpt(o, OptTitle); t != "" {
		g.title = t
	}
	g.rect = bounds
	applyBase(&g.Base, o)
	return g
}

// Title returns the frame title.
func (g *GroupBox) Title() string { return g.title }

// SetTitle replaces the frame title.
func (g *GroupBox) SetTitle(s string) { g.title = s }

// ContentRect returns the area inside the frame below the title.
func (g *GroupBox) ContentRect(ctx *Context) Rect {
	th := ctx.ThemeFor(g.theme)
	lh := lineHeightOf(ctx.Font, defaultLineHeight)
	return Rect{
		X: g.rect.X + th.Padding,
		Y: g.rect.Y + lh + th.Padding,
		W: maxf(0, g.rect.W-th.Padding*2),
		H: maxf(0, g.rect.H-lh-th.Padding*2),
	}
}

// HandleEvent forwards pointer events to the children.
func (g *GroupBox) HandleEvent(ctx *Context, ev Event) bool {
	g.trackHover(ev)
	if ev.IsPointer() && g.Enabled() {
		return g.dispatchPointer(ctx, ev)
	}
	return false
}

// Update implements Widget.
func (g *GroupBox) Update(ctx *Context, dt float32) { g.update(ctx, dt) }

// Render draws the frame with the title cut into its top edge, then the
// children.
func (g *GroupBox) Render(ctx *Context, c Canvas) {
	th := ctx.ThemeFor(g.theme)
	f := ctx.Font
	lh := lineHeightOf(f, defaultLineHeight)

	frame := Rect{X: g.rect.X, Y: g.rect.Y + lh/2, W: g.rect.W, H: g.rect.H - lh/2}
	c.StrokeRect(frame, th.Rounding, th.BorderSize, th.PanelBorderColor)
	if g.title != "" {
		tw := measureWidth(f, g.title)
		tx := g.rect.X + th.Padding*2
		c.FillRect(Rect{X: tx - th.Padding, Y: frame.Y - th.BorderSize, W: tw + th.Padding*2, H: th.BorderSize * 2}, 0, th.PanelColor)
		color := th.TextColor
		if !g.Enabled() {
			color = th.TextDisabledColor
		}
		c.Text(f, Vec2{X: tx, Y: g.rect.Y}, g.title, color)
	}
	g.render(ctx, c)
}
