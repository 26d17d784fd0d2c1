package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/go-theft-auto/widgets"
	"github.com/go-theft-auto/widgets/backend/opengl"
	"github.com/go-theft-auto/widgets/internal/logging"
)

const windowTitle = "widgets demo"

func run(ctx context.Context, cfg *config) error {
	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.L().Named("demo")

	theme, ok := widgets.ThemeByName(cfg.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	if cfg.ThemeFile != "" {
		t, err := widgets.LoadTheme(cfg.ThemeFile, theme)
		if err != nil {
			return err
		}
		theme = t
	}

	font := widgets.DefaultFont()
	if cfg.Font != "" {
		f, err := widgets.LoadFontFile(cfg.Font, cfg.FontSize)
		if err != nil {
			return err
		}
		font = f
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("widgets renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	platform := opengl.NewGLFWPlatform(window)
	defer platform.Destroy()

	mgr := widgets.NewManager(
		widgets.WithTheme(theme),
		widgets.WithFont(font),
		widgets.WithClipboard(opengl.NewGLFWClipboard(window)),
		widgets.WithPlatform(platform),
		widgets.WithLogger(log),
		widgets.WithViewport(float32(cfg.Width), float32(cfg.Height)),
	)

	f := buildForm(mgr, float32(cfg.Width), float32(cfg.Height))
	dark := cfg.Theme != "light"
	mgr.RegisterShortcut(widgets.KeyQ, widgets.ModCtrl, widgets.ScopeGlobal, func() {
		window.SetShouldClose(true)
	})
	mgr.RegisterShortcut(widgets.KeyS, widgets.ModCtrl, widgets.ScopeGlobal, f.submit)
	mgr.RegisterShortcut(widgets.KeyF2, widgets.ModNone, widgets.ScopeWhenNoTextEditing, func() {
		dark = !dark
		if dark {
			mgr.SetTheme(widgets.DarkTheme())
		} else {
			mgr.SetTheme(widgets.LightTheme())
		}
	})

	var themes <-chan widgets.Theme
	if cfg.ThemeFile != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		tw, err := widgets.NewThemeWatcher(watchCtx, cfg.ThemeFile, theme)
		if err != nil {
			return err
		}
		defer func() { _ = tw.Close() }()
		themes = tw.Themes()
	}

	log.Info("window open", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		for _, ev := range input.Drain() {
			mgr.HandleEvent(ev)
		}

		select {
		case t := <-themes:
			mgr.SetTheme(t)
			log.Info("theme reloaded", zap.String("path", cfg.ThemeFile))
		default:
		}

		now := time.Now()
		mgr.Update(float32(now.Sub(last).Seconds()))
		last = now

		w, h := window.GetSize()
		fbw, fbh := window.GetFramebufferSize()
		renderer.Resize(w, h)
		if w > 0 && h > 0 {
			renderer.SetFramebufferScale(float32(fbw)/float32(w), float32(fbh)/float32(h))
		}
		mgr.SetViewport(float32(w), float32(h))

		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		r, g, b, _ := mgr.Theme().PanelColor.Components()
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := widgets.AcquireDrawList(float32(w), float32(h))
		mgr.Render(dl)
		// Glyphs rasterised while rendering land in the atlas; upload it
		// before the batch references the texture.
		if err := font.Sync(renderer); err != nil {
			log.Warn("font atlas upload failed", zap.Error(err))
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
