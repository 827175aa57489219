package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"panedeck/internal/ui/textutil"
)

// Pane wraps one content object with its last computed rectangle and hover flag.
type Pane struct {
	id      PaneID
	content Content
	area    Rect
	laidOut bool
	hovered bool
}

// NewPane wraps content with a fresh ID.
func NewPane(content Content) *Pane {
	return &Pane{id: NewPaneID(), content: content}
}

func (p *Pane) ID() PaneID { return p.id }

func (p *Pane) Content() Content { return p.content }

// Area returns the rectangle from the last layout pass. ok is false until the
// pane has been laid out once.
func (p *Pane) Area() (area Rect, ok bool) { return p.area, p.laidOut }

// SetArea records the pane rectangle for this frame.
func (p *Pane) SetArea(r Rect) {
	p.area = r
	p.laidOut = true
}

// clearArea marks the pane as not placed, e.g. a grid cell overflow.
func (p *Pane) clearArea() {
	p.area = Rect{}
	p.laidOut = false
}

func (p *Pane) Title() string { return p.content.Title() }

// IsFocusable reports whether the pane can be selected. Defaults to true.
func (p *Pane) IsFocusable() bool {
	if f, ok := p.content.(Focusable); ok {
		return f.Focusable()
	}
	return true
}

// RequiresFocusMode reports whether the content opts out of auto-focus passthrough.
func (p *Pane) RequiresFocusMode() bool {
	if f, ok := p.content.(FocusModeRequirer); ok {
		return f.RequiresFocusMode()
	}
	return false
}

func (p *Pane) HandleKey(msg tea.KeyMsg) bool { return p.content.HandleKey(msg) }

func (p *Pane) HandleMouse(msg tea.MouseMsg) bool { return p.content.HandleMouse(msg) }

func (p *Pane) selectable() (Selectable, bool) {
	s, ok := p.content.(Selectable)
	return s, ok
}

// HasSelection reports whether the content holds an active text selection.
func (p *Pane) HasSelection() bool {
	if s, ok := p.selectable(); ok {
		return s.HasSelection()
	}
	return false
}

func (p *Pane) StartSelection(x, y int) {
	if s, ok := p.selectable(); ok {
		s.StartSelection(x, y)
	}
}

func (p *Pane) UpdateSelection(x, y int) {
	if s, ok := p.selectable(); ok {
		s.UpdateSelection(x, y)
	}
}

func (p *Pane) EndSelection() {
	if s, ok := p.selectable(); ok {
		s.EndSelection()
	}
}

func (p *Pane) SelectedText() (string, bool) {
	if s, ok := p.selectable(); ok {
		return s.SelectedText()
	}
	return "", false
}

func (p *Pane) ClearSelection() {
	if s, ok := p.selectable(); ok {
		s.ClearSelection()
	}
}

// ContainsPoint reports whether (x, y) lies inside the pane's last rectangle.
func (p *Pane) ContainsPoint(x, y int) bool {
	return p.laidOut && p.area.Contains(x, y)
}

// contentArea is the pane rectangle minus its border.
func (p *Pane) contentArea() Rect {
	return p.area.Inset(1)
}

// TranslateMouse converts msg to coordinates relative to the pane's content
// area. Coordinates left of or above the content area become 0.
func (p *Pane) TranslateMouse(msg tea.MouseMsg) tea.MouseMsg {
	inner := p.contentArea()
	msg.X = max(msg.X-inner.X, 0)
	msg.Y = max(msg.Y-inner.Y, 0)
	return msg
}

func (p *Pane) Hovered() bool { return p.hovered }

func (p *Pane) SetHovered(v bool) { p.hovered = v }

// titleIndicator decorates the title with the pane's interaction state.
func (p *Pane) titleIndicator(selected, focused bool) string {
	title := p.Title()
	switch {
	case focused:
		return "█ " + title + " (Focused)"
	case selected && p.RequiresFocusMode():
		return "● " + title + " (Press Enter)"
	case selected:
		return "● " + title + " (Selected)"
	}
	return title
}

// Render draws the pane frame and its content. A pane that has not been laid
// out draws nothing.
func (p *Pane) Render(c *Canvas, selected, focused bool, border lipgloss.Style) {
	if fa, ok := p.content.(FocusAware); ok {
		fa.SetFocused(focused)
	}
	if !p.laidOut || p.area.Empty() {
		return
	}
	if p.area.W < 3 || p.area.H < 3 {
		c.Fill(p.area, " ")
		return
	}
	drawFrame(c, p.area, p.titleIndicator(selected, focused), border)
	p.content.Render(p.contentArea(), c)
}

// drawFrame draws a rounded border around area as four non-overlapping pieces
// with title embedded in the top edge.
func drawFrame(c *Canvas, area Rect, title string, style lipgloss.Style) {
	b := lipgloss.RoundedBorder()
	inner := area.W - 2

	label := ""
	if title != "" && inner > 2 {
		label = " " + textutil.Truncate(title, inner-2) + " "
	}
	fill := inner - lipgloss.Width(label)
	top := style.Render(b.TopLeft) + Styles.Title.Render(label) +
		style.Render(strings.Repeat(b.Top, max(fill, 0))+b.TopRight)
	bottom := style.Render(b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight)

	c.Draw(Rect{X: area.X, Y: area.Y, W: area.W, H: 1}, top)
	c.Draw(Rect{X: area.X, Y: area.Bottom() - 1, W: area.W, H: 1}, bottom)

	side := make([]string, area.H-2)
	for i := range side {
		side[i] = style.Render(b.Left)
	}
	column := strings.Join(side, "\n")
	c.Draw(Rect{X: area.X, Y: area.Y + 1, W: 1, H: area.H - 2}, column)
	c.Draw(Rect{X: area.Right() - 1, Y: area.Y + 1, W: 1, H: area.H - 2}, column)
}
