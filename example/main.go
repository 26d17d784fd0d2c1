// Example demonstrates a minimal window with a panel and a few widgets.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL renderer, and
// runs a panel with a label, a text field, a button and a slider.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widgets"
	"github.com/go-theft-auto/widgets/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "widgets example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("widgets renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	font := widgets.DefaultFont()

	mgr := widgets.NewManager(
		widgets.WithTheme(widgets.DarkTheme()),
		widgets.WithFont(font),
		widgets.WithClipboard(opengl.NewGLFWClipboard(window)),
		widgets.WithViewport(windowWidth, windowHeight),
	)

	// Application state. Widgets read and write it through bindings.
	name := ""
	clickCount := 0
	sliderVal := float32(0.5)

	area := widgets.Rect{X: 20, Y: 20, W: 300, H: 200}
	panel := widgets.NewPanel(area)
	col := widgets.Column(area, widgets.Padding(12), widgets.Gap(8))

	greeting := widgets.NewLabel(col.Next(16), "Hello from widgets!")
	button := widgets.NewButton(col.Next(28), "Click me (0)", nil)
	button.OnClick = func() {
		clickCount++
		button.SetLabel(fmt.Sprintf("Click me (%d)", clickCount))
	}
	panel.Add(
		greeting,
		widgets.NewTextField(col.Next(24), widgets.Ref(&name), widgets.WithPlaceholder("Your name")),
		button,
		widgets.NewSlider(col.Next(20), widgets.Ref(&sliderVal), widgets.WithRange(0, 1)),
	)
	mgr.AddElement(panel)

	// Main loop.
	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		for _, ev := range input.Drain() {
			mgr.HandleEvent(ev)
		}
		if name != "" {
			greeting.SetText("Hello, " + name + "!")
		}

		now := time.Now()
		mgr.Update(float32(now.Sub(last).Seconds()))
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := widgets.AcquireDrawList(windowWidth, windowHeight)
		mgr.Render(dl)
		if err := font.Sync(renderer); err != nil {
			widgets.ReleaseDrawList(dl)
			return fmt.Errorf("font upload: %w", err)
		}
		if err := renderer.Render(dl); err != nil {
			widgets.ReleaseDrawList(dl)
			return fmt.Errorf("widgets render: %w", err)
		}
		widgets.ReleaseDrawList(dl)

		window.SwapBuffers()
	}

	return nil
}
