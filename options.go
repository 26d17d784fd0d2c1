package widgets

// Option configures a widget at construction.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = widgets.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	widgets.NewTextField(r, b, widgets.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := widgets.ApplyAndGet(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// InputType restricts the characters a text area accepts.
type InputType uint8

const (
	InputText    InputType = iota // anything
	InputNumeric                  // ASCII digits only
	InputEmail                    // ASCII letters, digits and @ . - _
)

// RangeValue holds min/max range for sliders and spinners.
type RangeValue struct {
	Min, Max float32
	HasRange bool
}

// --- Core Options ---
var (
	OptDisabled = NewOptKey("disabled", false)
	OptHidden   = NewOptKey("hidden", false)
	OptTheme    = NewOptKey[*Theme]("theme", nil)
)

// --- Text Options ---
var (
	OptPlaceholder = NewOptKey("placeholder", "")
	OptMaxLength   = NewOptKey("maxLength", 0) // codepoints, 0 = unlimited
	OptMask        = NewOptKey[rune]("mask", 0)
	OptReadOnly    = NewOptKey("readOnly", false)
	OptInputType   = NewOptKey("inputType", InputText)
	OptCharFilter  = NewOptKey[func(rune) bool]("charFilter", nil)
)

// --- Slider/Spinner Options ---
var (
	OptFormat = NewOptKey("format", "")
	OptStep   = NewOptKey[float32]("step", 0)
	OptRange  = NewOptKey("range", RangeValue{})
)

// --- ComboBox Options ---
var (
	OptMaxDropdownHeight = NewOptKey[float32]("maxDropdownHeight", 0)
)

// --- Popup Options ---
var (
	OptTitle              = NewOptKey("title", "")
	OptDismissOnClickAway = NewOptKey("dismissOnClickAway", true)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// Hidden creates the widget invisible.
func Hidden() Option { return WithOpt(OptHidden, true) }

// WithWidgetTheme sets a per-widget theme override.
func WithWidgetTheme(t *Theme) Option { return WithOpt(OptTheme, t) }

// WithPlaceholder sets the text shown while a text widget is empty.
func WithPlaceholder(s string) Option { return WithOpt(OptPlaceholder, s) }

// WithMaxLength caps text length in codepoints.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// Password masks every character with '•'.
func Password() Option { return WithOpt(OptMask, '•') }

// WithMask masks every character with r.
func WithMask(r rune) Option { return WithOpt(OptMask, r) }

// ReadOnly allows selection and copy but no edits.
func ReadOnly() Option { return WithOpt(OptReadOnly, true) }

// WithInputType restricts accepted characters.
func WithInputType(t InputType) Option { return WithOpt(OptInputType, t) }

// WithCharFilter installs a custom per-rune filter for inserted text.
func WithCharFilter(fn func(rune) bool) Option { return WithOpt(OptCharFilter, fn) }

// WithFormat sets the display format for numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep sets the increment step for value adjustments.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithRange sets the minimum and maximum values.
func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithMaxDropdownHeight limits the maximum height of dropdown menus.
func WithMaxDropdownHeight(height float32) Option { return WithOpt(OptMaxDropdownHeight, height) }

// WithTitle sets a popup or group box title.
func WithTitle(title string) Option { return WithOpt(OptTitle, title) }

// KeepOnClickAway stops a popup from closing on clicks outside it.
func KeepOnClickAway() Option { return WithOpt(OptDismissOnClickAway, false) }

// applyBase applies the core options to a widget base.
func applyBase(b *Base, o options) {
	b.disabled = GetOpt(o, OptDisabled)
	b.hidden = GetOpt(o, OptHidden)
	b.theme = GetOpt(o, OptTheme)
}
