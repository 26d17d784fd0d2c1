package widgets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/go-theft-auto/widgets/internal/logging"
)

// ThemeWatcher reloads a theme file whenever it changes on disk and
// delivers the result on Themes. The manager is not safe for concurrent
// use, so the host drains Themes on its own loop and calls
// Manager.SetTheme.
type ThemeWatcher struct {
	path    string
	base    Theme
	watcher *fsnotify.Watcher
	themes  chan Theme
	log     *zap.Logger
}

// NewThemeWatcher starts watching path. Parse errors are logged and the
// previous theme stays in effect. The watcher stops when ctx is done.
func NewThemeWatcher(ctx context.Context, path string, base Theme) (*ThemeWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve theme path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create theme watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch theme dir: %w", err)
	}

	tw := &ThemeWatcher{
		path:    abs,
		base:    base,
		watcher: w,
		themes:  make(chan Theme, 1),
		log:     logging.L().Named("theme"),
	}
	go tw.run(ctx)
	return tw, nil
}

// Themes delivers every successfully parsed revision of the file. Only the
// newest pending revision is kept.
func (tw *ThemeWatcher) Themes() <-chan Theme {
	return tw.themes
}

// Close stops the watcher.
func (tw *ThemeWatcher) Close() error {
	return tw.watcher.Close()
}

func (tw *ThemeWatcher) run(ctx context.Context) {
	defer close(tw.themes)
	for {
		select {
		case <-ctx.Done():
			_ = tw.watcher.Close()
			return
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != tw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			tw.log.Debug("theme file changed", zap.String("op", ev.Op.String()), zap.String("file", ev.Name))
			t, err := LoadTheme(tw.path, tw.base)
			if err != nil {
				tw.log.Warn("theme reload failed", zap.Error(err))
				continue
			}
			tw.publish(t)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.log.Warn("theme watcher error", zap.Error(err))
		}
	}
}

// publish replaces any undelivered theme with t.
func (tw *ThemeWatcher) publish(t Theme) {
	select {
	case <-tw.themes:
	default:
	}
	tw.themes <- t
}
