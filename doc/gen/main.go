// Command gen builds every widget with sample data, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widgets"
	"github.com/go-theft-auto/widgets/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                                        // filename without extension
	width  int                                           // viewport width
	height int                                           // viewport height
	build  func(mgr *widgets.Manager, area widgets.Rect) // adds the widgets and drives them into the pictured state
	frames int                                           // frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("widgets renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	font := widgets.DefaultFont()
	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, font, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, font *widgets.FaceFont, s screenshot, outDir string) error {
	// Only update the renderer projection; do NOT call window.SetSize because
	// GLFW processes resizes asynchronously, causing framebuffer/scissor mismatches.
	// The hidden window stays at 800×600 (larger than every screenshot).
	renderer.Resize(s.width, s.height)

	// Fresh manager per screenshot to avoid state leaking between captures.
	w, h := float32(s.width), float32(s.height)
	mgr := widgets.NewManager(
		widgets.WithTheme(widgets.DarkTheme()),
		widgets.WithFont(font),
		widgets.WithClipboard(&widgets.MemoryClipboard{}),
		widgets.WithViewport(w, h),
	)
	s.build(mgr, widgets.Rect{X: 12, Y: 12, W: w - 24, H: h - 24})

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		mgr.Update(1.0 / 60.0)

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := widgets.AcquireDrawList(w, h)
		mgr.Render(dl)
		if err := font.Sync(renderer); err != nil {
			widgets.ReleaseDrawList(dl)
			return err
		}
		err := renderer.Render(dl)
		widgets.ReleaseDrawList(dl)
		if err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// pointAt returns the centre of r, for synthetic clicks.
func pointAt(r widgets.Rect) (float32, float32) {
	c := r.Center()
	return c.X, c.Y
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state the widgets are bound to.
	var (
		checked   = true
		unchecked = false
		radioIdx  = 1
		inputText = "Hello, world!"
		password  = "hunter2"
		notes     = "Retained widgets keep their own layout.\nText wraps at the edge of the area and scrolls when it runs past the bottom.\n\nThird paragraph."
		count     = 42
		volume    = float32(0.65)
		level     = float32(7)
		comboIdx  = 1
		empty     = ""
	)

	return []screenshot{
		{
			name: "label", width: 400, height: 120,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				col := widgets.Column(area, widgets.Gap(6))
				p := widgets.NewPanel(area)
				p.Add(
					widgets.NewLabel(col.Next(16), "Plain label"),
					widgets.NewLabel(col.Next(16), "A label that is far too long for its box is truncated"),
					widgets.NewWrappedLabel(col.Next(48), "Wrapped labels break across lines when they reach the edge of their bounds."),
				)
				mgr.AddElement(p)
			},
		},
		{
			name: "button", width: 400, height: 80,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				row := widgets.Row(area, widgets.Gap(8))
				p := widgets.NewPanel(area)
				p.Add(
					widgets.NewButton(row.Next(120), "Standard", nil),
					widgets.NewButton(row.Next(120), "Disabled", nil, widgets.WithDisabled(true)),
				)
				mgr.AddElement(p)
			},
		},
		{
			name: "checkbox", width: 300, height: 80,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				col := widgets.Column(area, widgets.Gap(6))
				p := widgets.NewPanel(area)
				p.Add(
					widgets.NewCheckbox(col.Next(20), "Enabled feature", widgets.Ref(&checked)),
					widgets.NewCheckbox(col.Next(20), "Disabled feature", widgets.Ref(&unchecked)),
				)
				mgr.AddElement(p)
			},
		},
		{
			name: "radio_group", width: 300, height: 120,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				mgr.AddElement(widgets.NewRadioGroupWithItems(area, []string{"Low", "Medium", "High"}, widgets.Ref(&radioIdx)))
			},
		},
		{
			name: "text_field", width: 400, height: 110,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				col := widgets.Column(area, widgets.Gap(8))
				field := widgets.NewTextField(col.Next(24), widgets.Ref(&inputText))
				p := widgets.NewPanel(area)
				p.Add(
					field,
					widgets.NewTextField(col.Next(24), widgets.Ref(&password), widgets.WithMask('•')),
					widgets.NewTextField(col.Next(24), widgets.Ref(&empty), widgets.WithPlaceholder("Placeholder")),
				)
				mgr.AddElement(p)
				mgr.Focus(field)
				mgr.HandleEvent(widgets.KeyPress(widgets.KeyHome, widgets.ModShift))
			},
		},
		{
			name: "text_area", width: 400, height: 140,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				mgr.AddElement(widgets.NewTextArea(area, widgets.Ref(&notes)))
			},
		},
		{
			name: "slider", width: 400, height: 90,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				col := widgets.Column(area, widgets.Gap(8))
				p := widgets.NewPanel(area)
				p.Add(
					widgets.NewSlider(col.Next(20), widgets.Ref(&volume), widgets.WithRange(0, 1)),
					widgets.NewSlider(col.Next(20), widgets.Ref(&level), widgets.WithRange(0, 10), widgets.WithStep(1), widgets.WithFormat("%.0f")),
				)
				mgr.AddElement(p)
			},
		},
		{
			name: "spinner", width: 300, height: 70,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				mgr.AddElement(widgets.NewSpinner(widgets.Rect{X: area.X, Y: area.Y, W: 160, H: 28}, widgets.Ref(&count), widgets.WithRange(0, 100)))
			},
		},
		{
			name: "combobox", width: 400, height: 200, frames: 3,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				r := widgets.Rect{X: area.X, Y: area.Y, W: 240, H: 24}
				mgr.AddElement(widgets.NewComboBox(r, []string{"Easy", "Normal", "Hard", "Nightmare"}, widgets.Ref(&comboIdx)))
				x, y := pointAt(r)
				mgr.HandleEvent(widgets.PointerDown(x, y, widgets.MouseButtonLeft))
				mgr.HandleEvent(widgets.PointerUp(x, y, widgets.MouseButtonLeft))
			},
		},
		{
			name: "group_box", width: 350, height: 160,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				g := widgets.NewGroupBox(area, "Game Settings")
				col := widgets.Column(g.ContentRect(mgr.Context()), widgets.Gap(6))
				g.Add(
					widgets.NewLabel(col.Next(16), "Player: CJ"),
					widgets.NewCheckbox(col.Next(20), "Subtitles", widgets.Ref(&checked)),
					widgets.NewButton(col.Next(26), "Apply", nil),
				)
				mgr.AddElement(g)
			},
		},
		{
			name: "dialog", width: 500, height: 300, frames: 3,
			build: func(mgr *widgets.Manager, area widgets.Rect) {
				mgr.AddElement(widgets.NewLabel(area, "Background content"))
				d := widgets.NewDialog(widgets.Rect{X: 100, Y: 80, W: 300, H: 140}, "Quit", "Are you sure you want to exit?", nil)
				mgr.ShowPopup(d)
			},
		},
	}
}
