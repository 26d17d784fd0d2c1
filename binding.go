package widgets

// Binding connects a widget to a value the application owns. Widgets never
// store the value themselves; they read it through Get on every update and
// write it through Set when the user edits it.
type Binding[T any] interface {
	Get() T
	Set(T)
}

// Ref aliases a caller variable. The pointer must outlive the widget.
func Ref[T any](p *T) Binding[T] {
	return refBinding[T]{p: p}
}

type refBinding[T any] struct{ p *T }

func (b refBinding[T]) Get() T {
	if b.p == nil {
		var zero T
		return zero
	}
	return *b.p
}

func (b refBinding[T]) Set(v T) {
	if b.p != nil {
		*b.p = v
	}
}

// BindFunc builds a binding from accessor functions. A nil set makes the
// binding read-only.
func BindFunc[T any](get func() T, set func(T)) Binding[T] {
	return funcBinding[T]{get: get, set: set}
}

type funcBinding[T any] struct {
	get func() T
	set func(T)
}

func (b funcBinding[T]) Get() T {
	if b.get == nil {
		var zero T
		return zero
	}
	return b.get()
}

func (b funcBinding[T]) Set(v T) {
	if b.set != nil {
		b.set(v)
	}
}

// Cell is an observable value. OnChange callbacks run synchronously from
// Set, in registration order, only when the value actually changes.
type Cell[T comparable] struct {
	v         T
	listeners []func(old, new T)
}

// NewCell returns a cell holding v.
func NewCell[T comparable](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T { return c.v }

// Set stores v and notifies listeners if it differs from the current value.
func (c *Cell[T]) Set(v T) {
	if v == c.v {
		return
	}
	old := c.v
	c.v = v
	for _, fn := range c.listeners {
		fn(old, v)
	}
}

// OnChange registers a change listener.
func (c *Cell[T]) OnChange(fn func(old, new T)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// getOr reads b, returning def when b is nil.
func getOr[T any](b Binding[T], def T) T {
	if b == nil {
		return def
	}
	return b.Get()
}
