package widgets

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard abstracts system clipboard access.
//
// For GLFW, backend/opengl provides GLFWClipboard; SystemClipboard uses the
// OS clipboard tools directly; MemoryClipboard is process-local.
type Clipboard interface {
	// Text retrieves text from the clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	Text() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// MemoryClipboard is an in-process clipboard. The zero value is ready to use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// Text returns the stored text.
func (c *MemoryClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

// SystemClipboard talks to the OS clipboard via github.com/atotto/clipboard.
// When the platform has no clipboard utility it degrades to process-local
// storage instead of failing.
type SystemClipboard struct {
	fallback MemoryClipboard
}

// Text reads the OS clipboard.
func (c *SystemClipboard) Text() string {
	if clipboard.Unsupported {
		return c.fallback.Text()
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return c.fallback.Text()
	}
	return s
}

// SetText writes the OS clipboard.
func (c *SystemClipboard) SetText(text string) {
	c.fallback.SetText(text)
	if clipboard.Unsupported {
		return
	}
	_ = clipboard.WriteAll(text)
}

// clipboardText reads cb, treating nil as empty.
func clipboardText(cb Clipboard) string {
	if cb == nil {
		return ""
	}
	return cb.Text()
}
