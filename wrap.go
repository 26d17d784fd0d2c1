package widgets

// defaultLineHeight is used when no font is configured.
const defaultLineHeight float32 = 16

// textLine is one display line of wrapped text as a byte range of the
// source string. end excludes the '\n' that terminated the line, if any.
type textLine struct {
	start, end int
}

// wrapLines breaks s into display lines no wider than maxWidth.
//
// Wrapping is greedy: runs of spaces hang at the end of a line, a word that
// would overflow a line that already has content moves to the next line,
// and a word wider than an empty line is split at the last codepoint that
// fits (at least one codepoint per line). '\n' always breaks. maxWidth <= 0
// disables soft wrapping. The result always has at least one line.
func wrapLines(f Font, s string, maxWidth float32) []textLine {
	var lines []textLine
	pStart := 0
	for {
		pEnd := pStart
		for pEnd < len(s) && s[pEnd] != '\n' {
			pEnd++
		}
		lines = wrapParagraph(lines, f, s, pStart, pEnd, maxWidth)
		if pEnd >= len(s) {
			break
		}
		pStart = pEnd + 1
	}
	return lines
}

func wrapParagraph(lines []textLine, f Font, s string, pStart, pEnd int, maxWidth float32) []textLine {
	if maxWidth <= 0 || f == nil {
		return append(lines, textLine{pStart, pEnd})
	}
	ls, pos := pStart, pStart
	for pos < pEnd {
		tokEnd := pos
		space := s[pos] == ' '
		for tokEnd < pEnd && (s[tokEnd] == ' ') == space {
			tokEnd++
		}
		if space {
			pos = tokEnd
			continue
		}
		if measureWidth(f, s[ls:tokEnd]) <= maxWidth {
			pos = tokEnd
			continue
		}
		if pos > ls {
			lines = append(lines, textLine{ls, pos})
			ls = pos
			continue
		}
		cut := nextBoundary(s, ls)
		for next := nextBoundary(s, cut); next <= tokEnd && next > cut; next = nextBoundary(s, cut) {
			if measureWidth(f, s[ls:next]) > maxWidth {
				break
			}
			cut = next
		}
		if cut == tokEnd {
			// A single codepoint wider than the line; it stays on its own.
			pos = tokEnd
			continue
		}
		lines = append(lines, textLine{ls, cut})
		ls, pos = cut, cut
	}
	return append(lines, textLine{ls, pEnd})
}

// lineIndexAt returns the display line holding byte offset off. An offset
// on a soft-wrap boundary belongs to the line it starts.
func lineIndexAt(lines []textLine, off int) int {
	for i := len(lines) - 1; i > 0; i-- {
		if lines[i].start <= off {
			return i
		}
	}
	return 0
}

// WrapText wraps text to fit within maxWidth and returns the lines.
func WrapText(f Font, text string, maxWidth float32) []string {
	lines := wrapLines(f, text, maxWidth)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = text[l.start:l.end]
	}
	return out
}

// MeasureWrappedText returns the size of text when wrapped to maxWidth.
func MeasureWrappedText(f Font, text string, maxWidth float32) Vec2 {
	lines := WrapText(f, text, maxWidth)
	maxLineWidth := float32(0)
	for _, line := range lines {
		maxLineWidth = maxf(maxLineWidth, measureWidth(f, line))
	}
	return Vec2{
		X: maxLineWidth,
		Y: float32(len(lines)) * lineHeightOf(f, defaultLineHeight),
	}
}

// TruncateText truncates text to fit within maxWidth, adding ".." if needed.
func TruncateText(f Font, text string, maxWidth float32) string {
	if measureWidth(f, text) <= maxWidth {
		return text
	}
	const suffix = ".."
	target := maxWidth - measureWidth(f, suffix)
	end := len(text)
	for end > 0 {
		end = snapBoundary(text, end-1)
		if measureWidth(f, text[:end]) <= target {
			return text[:end] + suffix
		}
	}
	if measureWidth(f, suffix) <= maxWidth {
		return suffix
	}
	return ""
}
