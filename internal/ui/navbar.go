package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"panedeck/internal/ui/textutil"
)

// NavBarHeight is the fixed height of the navigation band: one row of tab
// buttons inside a border.
const NavBarHeight = 3

// maxTabLabel caps the width of a single tab button label.
const maxTabLabel = 24

type navButton struct {
	label string
	area  Rect
}

// NavigationBar shows one button per tab and maps clicks back to tab indices.
type NavigationBar struct {
	buttons []navButton
	area    Rect
}

// Layout places a button per tab name inside area.
func (n *NavigationBar) Layout(area Rect, names []string) {
	n.area = area
	n.buttons = n.buttons[:0]
	x := area.X + 2
	for i, name := range names {
		label := " " + strconv.Itoa(i+1) + ":" + textutil.Truncate(name, maxTabLabel) + " "
		w := lipgloss.Width(label)
		n.buttons = append(n.buttons, navButton{
			label: label,
			area:  Rect{X: x, Y: area.Y, W: w, H: area.H},
		})
		x += w + 1
	}
}

// HandleClick returns the index of the tab button under (x, y).
func (n *NavigationBar) HandleClick(x, y int) (int, bool) {
	if !n.area.Contains(x, y) {
		return -1, false
	}
	for i, b := range n.buttons {
		if b.area.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// Render draws the bar with the active tab highlighted. Layout must have
// been called for the current frame.
func (n *NavigationBar) Render(c *Canvas, active int) {
	if n.area.Empty() {
		return
	}
	labels := make([]string, len(n.buttons))
	for i, b := range n.buttons {
		if i == active {
			labels[i] = Styles.TabActive.Render(b.label)
			continue
		}
		labels[i] = Styles.TabInactive.Render(b.label)
	}
	line := " " + strings.Join(labels, " ")
	if len(n.buttons) == 0 {
		line = Styles.Empty.Render(" no tabs")
	}
	inner := max(n.area.W-2, 0)
	bar := Styles.NavBar.Width(inner).Render(ansi.Truncate(line, inner, ""))
	c.Draw(n.area, bar)
}
