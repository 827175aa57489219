package ui

import "github.com/charmbracelet/lipgloss"

// Overlay is a popup drawn centered over the tab area. Any key dismisses it.
type Overlay struct {
	visible bool
	body    func(width int) string
}

// NewOverlay returns a hidden overlay whose content is produced by body,
// given the maximum width available.
func NewOverlay(body func(width int) string) *Overlay {
	return &Overlay{body: body}
}

func (o *Overlay) Show() { o.visible = true }
func (o *Overlay) Hide() { o.visible = false }
func (o *Overlay) Toggle() { o.visible = !o.visible }
func (o *Overlay) Visible() bool { return o.visible }

// Render draws the overlay centered in area when visible.
func (o *Overlay) Render(c *Canvas, area Rect) {
	if !o.visible || o.body == nil || area.Empty() {
		return
	}
	frame := Styles.Box.GetHorizontalFrameSize()
	box := Styles.Box.Render(o.body(max(area.W-frame, 1)))
	w, h := min(lipgloss.Width(box), area.W), min(lipgloss.Height(box), area.H)
	c.Draw(Rect{
		X: area.X + (area.W-w)/2,
		Y: area.Y + (area.H-h)/2,
		W: w,
		H: h,
	}, box)
}
