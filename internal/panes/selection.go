package panes

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"panedeck/internal/ui"
)

// cell is a position in document coordinates: a line index and a column
// measured in terminal cells.
type cell struct {
	line, col int
}

func (c cell) before(o cell) bool {
	return c.line < o.line || (c.line == o.line && c.col < o.col)
}

// selection is a pointer-driven text range. The range runs from anchor to
// head in either direction; the end column is exclusive.
type selection struct {
	active   bool
	dragging bool
	anchor   cell
	head     cell
}

func (s *selection) start(at cell) {
	s.active, s.dragging = true, true
	s.anchor, s.head = at, at
}

func (s *selection) update(at cell) {
	if s.dragging {
		s.head = at
	}
}

func (s *selection) end() {
	s.dragging = false
	if s.anchor == s.head {
		s.active = false
	}
}

func (s *selection) clear() { *s = selection{} }

// nonEmpty reports whether the selection covers at least one cell.
func (s selection) nonEmpty() bool {
	return s.active && s.anchor != s.head
}

// bounds returns the range ordered top-left first.
func (s selection) bounds() (from, to cell) {
	if s.head.before(s.anchor) {
		return s.head, s.anchor
	}
	return s.anchor, s.head
}

// columns returns the selected column span of line i, or ok=false when the
// line is outside the selection.
func (s selection) columns(i, width int) (from, to int, ok bool) {
	if !s.nonEmpty() {
		return 0, 0, false
	}
	start, end := s.bounds()
	if i < start.line || i > end.line {
		return 0, 0, false
	}
	from, to = 0, width
	if i == start.line {
		from = start.col
	}
	if i == end.line {
		to = end.col
	}
	from, to = max(from, 0), min(to, width)
	if from >= to {
		return 0, 0, false
	}
	return from, to, true
}

// text extracts the selected plain text from lines.
func (s selection) text(lines []string) (string, bool) {
	if !s.nonEmpty() {
		return "", false
	}
	start, end := s.bounds()
	var out []string
	for i := start.line; i <= end.line && i < len(lines); i++ {
		plain := ansi.Strip(lines[i])
		width := ansi.StringWidth(plain)
		from, to, ok := s.columns(i, width)
		if !ok {
			out = append(out, "")
			continue
		}
		out = append(out, ansi.Cut(plain, from, to))
	}
	text := strings.Join(out, "\n")
	return text, text != ""
}

// highlight renders line i with the selected span in the selection style.
func (s selection) highlight(i int, line string) string {
	width := ansi.StringWidth(line)
	from, to, ok := s.columns(i, width)
	if !ok {
		return line
	}
	mid := ansi.Strip(ansi.Cut(line, from, to))
	return ansi.Truncate(line, from, "") + ui.Styles.Selection.Render(mid) + ansi.TruncateLeft(line, to, "")
}
