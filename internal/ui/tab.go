package ui

// Tab is a named page holding one PaneContainer and a Footer.
type Tab struct {
	name      string
	container *PaneContainer
	footer    *Footer
}

// NewTab returns an empty tab laid out with a.
func NewTab(name string, a Arrangement) *Tab {
	return &Tab{
		name:      name,
		container: NewPaneContainer(a),
		footer:    NewFooter(),
	}
}

func (t *Tab) Name() string { return t.name }

func (t *Tab) SetName(name string) { t.name = name }

func (t *Tab) Container() *PaneContainer { return t.container }

func (t *Tab) Footer() *Footer { return t.footer }

// AddPane wraps content in a new pane and appends it. Returns the pane id.
func (t *Tab) AddPane(content Content) PaneID {
	p := NewPane(content)
	t.container.Add(p)
	return p.ID()
}

// RemovePane drops a pane. Returns false for an unknown id.
func (t *Tab) RemovePane(id PaneID) bool {
	return t.container.Remove(id)
}

// SetArrangement switches the layout, keeping the panes.
func (t *Tab) SetArrangement(a Arrangement) {
	t.container.SetArrangement(a)
}

func (t *Tab) PaneCount() int { return t.container.Len() }

// Layout computes pane geometry for a tab drawn in area.
func (t *Tab) Layout(area Rect) {
	t.container.UpdateLayout(t.paneArea(area))
}

func (t *Tab) paneArea(area Rect) Rect {
	return Rect{X: area.X, Y: area.Y, W: area.W, H: max(area.H-FooterHeight, 0)}
}

// Render lays out and draws the panes above the footer.
func (t *Tab) Render(c *Canvas, area Rect, mode Mode, kb KeyBindings) {
	panes := t.paneArea(area)
	t.container.UpdateLayout(panes)
	t.container.Render(c, mode)
	footer := Rect{X: area.X, Y: panes.Bottom(), W: area.W, H: min(FooterHeight, area.H)}
	t.footer.Render(c, footer, mode, kb)
}
