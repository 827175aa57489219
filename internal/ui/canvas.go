package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// segment is a run of styled text occupying width cells starting at x.
type segment struct {
	x     int
	width int
	text  string
}

// Canvas is one frame of output. Content is drawn as rectangular blocks of
// styled lines; a later draw replaces whatever it overlaps.
type Canvas struct {
	width, height int
	rows          [][]segment
}

// NewCanvas returns an empty frame of the given size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		rows:   make([][]segment, height),
	}
}

// Width returns the frame width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the frame height in cells.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the full frame rectangle.
func (c *Canvas) Bounds() Rect { return Rect{W: c.width, H: c.height} }

// Draw places the lines of s into area, clipping each line to the area width
// and padding short lines with spaces. Missing lines are drawn blank.
func (c *Canvas) Draw(area Rect, s string) {
	clip := area.Intersect(c.Bounds())
	if clip.Empty() {
		return
	}
	lines := strings.Split(s, "\n")
	skipCols := clip.X - area.X
	for row := clip.Y; row < clip.Bottom(); row++ {
		i := row - area.Y
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if skipCols > 0 {
			line = ansi.TruncateLeft(line, skipCols, "")
		}
		c.put(row, clip.X, fitWidth(line, clip.W))
	}
}

// Fill draws a block of the same character.
func (c *Canvas) Fill(area Rect, ch string) {
	if area.Empty() {
		return
	}
	line := strings.Repeat(ch, area.W)
	lines := make([]string, area.H)
	for i := range lines {
		lines[i] = line
	}
	c.Draw(area, strings.Join(lines, "\n"))
}

// fitWidth truncates or pads line to exactly width cells.
func fitWidth(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func (c *Canvas) put(row, x int, text string) {
	w := ansi.StringWidth(text)
	end := x + w
	kept := c.rows[row][:0:0]
	for _, seg := range c.rows[row] {
		segEnd := seg.x + seg.width
		if segEnd <= x || seg.x >= end {
			kept = append(kept, seg)
			continue
		}
		if seg.x < x {
			kept = append(kept, segment{x: seg.x, width: x - seg.x, text: ansi.Truncate(seg.text, x-seg.x, "")})
		}
		if segEnd > end {
			kept = append(kept, segment{x: end, width: segEnd - end, text: ansi.TruncateLeft(seg.text, end-seg.x, "")})
		}
	}
	c.rows[row] = append(kept, segment{x: x, width: w, text: text})
}

// String composes the frame, filling gaps with spaces.
func (c *Canvas) String() string {
	var b strings.Builder
	for row, segs := range c.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].x < segs[j].x })
		cursor := 0
		for _, seg := range segs {
			if seg.x > cursor {
				b.WriteString(strings.Repeat(" ", seg.x-cursor))
			}
			b.WriteString(seg.text)
			cursor = seg.x + seg.width
		}
		if cursor < c.width {
			b.WriteString(strings.Repeat(" ", c.width-cursor))
		}
	}
	return b.String()
}

// Line returns row y with styling removed. It is meant for tests and debugging.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	lines := strings.Split(c.String(), "\n")
	return ansi.Strip(lines[y])
}
