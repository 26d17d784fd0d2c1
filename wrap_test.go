package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	f := newTestFont()
	tests := []struct {
		name  string
		text  string
		width float32
		want  []string
	}{
		{"fits", "hello", 100, []string{"hello"}},
		{"breaks between words", "hello world", 60, []string{"hello ", "world"}},
		{"spaces hang at line end", "aa   bb", 40, []string{"aa   ", "bb"}},
		{"long word is split", "abcdefghij", 35, []string{"abc", "def", "ghi", "j"}},
		{"one codepoint per line minimum", "ab", 5, []string{"a", "b"}},
		{"hard newlines", "a\n\nb", 100, []string{"a", "", "b"}},
		{"trailing newline opens a line", "a\n", 100, []string{"a", ""}},
		{"no width disables wrapping", "hello world", 0, []string{"hello world"}},
		{"empty", "", 50, []string{""}},
		{"multibyte split", "日本語日本", 25, []string{"日本", "語日", "本"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(f, tt.text, tt.width))
		})
	}
}

func TestWrapTextNilFont(t *testing.T) {
	assert.Equal(t, []string{"hello world", "x"}, WrapText(nil, "hello world\nx", 10))
}

func TestLineIndexAt(t *testing.T) {
	lines := wrapLines(newTestFont(), "hello world", 60)
	assert.Equal(t, 0, lineIndexAt(lines, 0))
	assert.Equal(t, 0, lineIndexAt(lines, 5))
	assert.Equal(t, 1, lineIndexAt(lines, 6), "soft-wrap boundary belongs to the next line")
	assert.Equal(t, 1, lineIndexAt(lines, 11))
}

func TestMeasureWrappedText(t *testing.T) {
	size := MeasureWrappedText(newTestFont(), "hello world", 60)
	assert.InDelta(t, 60, size.X, 0.001)
	assert.InDelta(t, 32, size.Y, 0.001)
}

func TestTruncateText(t *testing.T) {
	f := newTestFont()
	assert.Equal(t, "hi", TruncateText(f, "hi", 60))
	assert.Equal(t, "hell..", TruncateText(f, "hello world", 60))
	assert.Equal(t, "..", TruncateText(f, "hello world", 25))
	assert.Equal(t, "", TruncateText(f, "hello world", 15))
	assert.Equal(t, "日..", TruncateText(f, "日本語日", 30))
}
