package ui

import "github.com/charmbracelet/lipgloss"

// PaneContainer owns the ordered panes of one tab, lays them out and answers
// spatial queries. Order is selection order, not screen order.
//
// Geometry is pull-based: call UpdateLayout with the current area before any
// query that depends on pane rectangles or divider positions.
type PaneContainer struct {
	panes       []*Pane
	arrangement Arrangement
	dividers    []*Divider
	area        Rect

	minPercent int
	maxPercent int
}

// NewPaneContainer returns an empty container using arrangement a.
func NewPaneContainer(a Arrangement) *PaneContainer {
	return &PaneContainer{
		arrangement: a,
		minPercent:  DefaultMinPercent,
		maxPercent:  DefaultMaxPercent,
	}
}

// Add appends p. Divider positions are reset to the arrangement's percents.
func (c *PaneContainer) Add(p *Pane) {
	if p == nil {
		return
	}
	c.panes = append(c.panes, p)
	c.rebuildDividers()
}

// Remove drops the pane with id. Returns false if no such pane exists.
func (c *PaneContainer) Remove(id PaneID) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.panes = append(c.panes[:i], c.panes[i+1:]...)
	c.rebuildDividers()
	return true
}

// Panes returns the panes in selection order. The slice must not be modified.
func (c *PaneContainer) Panes() []*Pane { return c.panes }

func (c *PaneContainer) Len() int { return len(c.panes) }

// Pane looks up a pane by id.
func (c *PaneContainer) Pane(id PaneID) (*Pane, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.panes[i], true
	}
	return nil, false
}

func (c *PaneContainer) indexOf(id PaneID) int {
	if id == NoPane {
		return -1
	}
	for i, p := range c.panes {
		if p.id == id {
			return i
		}
	}
	return -1
}

// Arrangement returns the layout descriptor.
func (c *PaneContainer) Arrangement() Arrangement { return c.arrangement }

// SetArrangement switches the layout descriptor, keeping the panes.
func (c *PaneContainer) SetArrangement(a Arrangement) {
	c.arrangement = a
	c.rebuildDividers()
}

// Dividers returns the container's dividers, one per adjacent pane pair for
// horizontal and vertical arrangements and none otherwise.
func (c *PaneContainer) Dividers() []*Divider { return c.dividers }

// Area returns the rectangle from the last UpdateLayout.
func (c *PaneContainer) Area() Rect { return c.area }

// SetDividerBounds changes the clamp range of every divider.
func (c *PaneContainer) SetDividerBounds(minPercent, maxPercent int) {
	c.minPercent, c.maxPercent = minPercent, maxPercent
	for _, d := range c.dividers {
		d.SetBounds(minPercent, maxPercent)
	}
}

func (c *PaneContainer) rebuildDividers() {
	c.dividers = nil
	if !c.arrangement.Resizable() {
		return
	}
	o := c.arrangement.orientation()
	for _, pct := range c.arrangement.boundaries(len(c.panes)) {
		d := NewDivider(pct, o)
		d.SetBounds(c.minPercent, c.maxPercent)
		c.dividers = append(c.dividers, d)
	}
}

// UpdateLayout computes divider positions and pane rectangles for area.
// Panes the arrangement has no room for are left without an area.
func (c *PaneContainer) UpdateLayout(area Rect) {
	c.area = area
	for _, d := range c.dividers {
		d.UpdatePosition(area)
	}

	var areas []Rect
	if len(c.dividers) > 0 {
		areas = c.splitAreas(area)
	} else {
		areas = c.arrangement.Areas(area, len(c.panes))
	}

	for i, p := range c.panes {
		if i < len(areas) {
			p.SetArea(areas[i])
			continue
		}
		p.clearArea()
	}
}

// splitAreas cuts area at each divider position. The last pane extends to the
// container's far edge.
func (c *PaneContainer) splitAreas(area Rect) []Rect {
	areas := make([]Rect, 0, len(c.panes))
	vertical := c.arrangement.orientation() == DividerVertical
	last := area.Y
	end := area.Bottom()
	if vertical {
		last, end = area.X, area.Right()
	}
	for i := range c.panes {
		next := end
		if i < len(c.dividers) {
			next = c.dividers[i].Pos
		}
		extent := max(next-last, 0)
		if vertical {
			areas = append(areas, Rect{X: last, Y: area.Y, W: extent, H: area.H})
		} else {
			areas = append(areas, Rect{X: area.X, Y: last, W: area.W, H: extent})
		}
		last = max(next, last)
	}
	return areas
}

// FindPaneAt returns the first pane whose rectangle contains (x, y).
func (c *PaneContainer) FindPaneAt(x, y int) (*Pane, bool) {
	for _, p := range c.panes {
		if p.ContainsPoint(x, y) {
			return p, true
		}
	}
	return nil, false
}

// FindDividerAt returns the index of the first divider whose hit region
// contains (x, y).
func (c *PaneContainer) FindDividerAt(x, y int) (int, bool) {
	for i, d := range c.dividers {
		if d.HitTest(x, y, c.area) {
			return i, true
		}
	}
	return -1, false
}

// FocusableIDs returns the ids of focusable panes in selection order.
func (c *PaneContainer) FocusableIDs() []PaneID {
	var ids []PaneID
	for _, p := range c.panes {
		if p.IsFocusable() {
			ids = append(ids, p.id)
		}
	}
	return ids
}

// FirstFocusable returns the first focusable pane.
func (c *PaneContainer) FirstFocusable() (PaneID, bool) {
	for _, p := range c.panes {
		if p.IsFocusable() {
			return p.id, true
		}
	}
	return NoPane, false
}

// SelectNext returns the focusable pane after current, wrapping around. With
// no current pane, or one that is not focusable, it returns the first.
func (c *PaneContainer) SelectNext(current PaneID) (PaneID, bool) {
	cycle := FocusCycle{Current: current, Order: c.FocusableIDs()}
	next := cycle.Next()
	return next, next != NoPane
}

// SelectPrev returns the focusable pane before current, wrapping around.
// With no current pane it returns the last; with an unknown one, the first.
func (c *PaneContainer) SelectPrev(current PaneID) (PaneID, bool) {
	cycle := FocusCycle{Current: current, Order: c.FocusableIDs()}
	prev := cycle.Prev()
	return prev, prev != NoPane
}

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
)

func (d direction) String() string {
	return [...]string{"left", "right", "up", "down"}[d]
}

// SelectLeft returns the nearest focusable pane strictly left of current.
func (c *PaneContainer) SelectLeft(current PaneID) (PaneID, bool) {
	return c.selectDirection(current, dirLeft)
}

// SelectRight returns the nearest focusable pane strictly right of current.
func (c *PaneContainer) SelectRight(current PaneID) (PaneID, bool) {
	return c.selectDirection(current, dirRight)
}

// SelectUp returns the nearest focusable pane strictly above current.
func (c *PaneContainer) SelectUp(current PaneID) (PaneID, bool) {
	return c.selectDirection(current, dirUp)
}

// SelectDown returns the nearest focusable pane strictly below current.
func (c *PaneContainer) SelectDown(current PaneID) (PaneID, bool) {
	return c.selectDirection(current, dirDown)
}

// selectDirection compares rectangle centers. Candidates must lie strictly
// in dir; the closest wins and ties go to the earlier pane. There is no
// wraparound.
func (c *PaneContainer) selectDirection(current PaneID, dir direction) (PaneID, bool) {
	cur, ok := c.Pane(current)
	if !ok || !cur.laidOut {
		return NoPane, false
	}
	cx, cy := cur.area.Center()

	best, bestDist := NoPane, -1
	for _, p := range c.panes {
		if p.id == current || !p.laidOut || !p.IsFocusable() {
			continue
		}
		px, py := p.area.Center()
		var qualifies bool
		switch dir {
		case dirLeft:
			qualifies = px < cx
		case dirRight:
			qualifies = px > cx
		case dirUp:
			qualifies = py < cy
		case dirDown:
			qualifies = py > cy
		}
		if !qualifies {
			continue
		}
		dx, dy := px-cx, py-cy
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			best, bestDist = p.id, dist
		}
	}
	return best, best != NoPane
}

// StartDrag arms divider i and disarms the rest. Out-of-range indices are
// ignored.
func (c *PaneContainer) StartDrag(i int) bool {
	if i < 0 || i >= len(c.dividers) {
		return false
	}
	for j, d := range c.dividers {
		if j == i {
			d.StartDrag()
			continue
		}
		d.StopDrag()
	}
	return true
}

// UpdateDrag moves the armed divider to the pointer. Returns false if no
// divider is armed.
func (c *PaneContainer) UpdateDrag(x, y int) bool {
	i, ok := c.DraggingIndex()
	if !ok {
		return false
	}
	d := c.dividers[i]
	d.DragTo(x, y, c.area)
	c.keepOrdered(i)
	d.UpdatePosition(c.area)
	return true
}

// keepOrdered holds divider i strictly between its neighbours so no pane
// extent becomes negative.
func (c *PaneContainer) keepOrdered(i int) {
	d := c.dividers[i]
	lo, hi := d.MinPercent, d.MaxPercent
	if i > 0 {
		lo = max(lo, c.dividers[i-1].Percent+1)
	}
	if i < len(c.dividers)-1 {
		hi = min(hi, c.dividers[i+1].Percent-1)
	}
	if lo > hi {
		return
	}
	d.Percent = clampInt(d.Percent, lo, hi)
}

// StopDrag disarms every divider.
func (c *PaneContainer) StopDrag() {
	for _, d := range c.dividers {
		d.StopDrag()
	}
}

// Dragging reports whether any divider is armed.
func (c *PaneContainer) Dragging() bool {
	_, ok := c.DraggingIndex()
	return ok
}

// DraggingIndex returns the index of the armed divider.
func (c *PaneContainer) DraggingIndex() (int, bool) {
	for i, d := range c.dividers {
		if d.Dragging() {
			return i, true
		}
	}
	return -1, false
}

// UpdateHover sets the hover flag of every divider from the pointer position.
func (c *PaneContainer) UpdateHover(x, y int) {
	for _, d := range c.dividers {
		d.SetHovering(d.HitTest(x, y, c.area))
	}
}

// ClearHover clears every divider hover flag.
func (c *PaneContainer) ClearHover() {
	for _, d := range c.dividers {
		d.SetHovering(false)
	}
}

// UpdatePaneHover marks the pane under the pointer as hovered.
func (c *PaneContainer) UpdatePaneHover(x, y int) {
	for _, p := range c.panes {
		p.SetHovered(p.ContainsPoint(x, y))
	}
}

// ResizeAround grows the pane with id by delta percent (shrinks it when delta
// is negative) by moving the divider after it, or the one before it for the
// last pane. Returns false when there is no divider to move.
func (c *PaneContainer) ResizeAround(id PaneID, delta int) bool {
	i := c.indexOf(id)
	if i < 0 || len(c.dividers) == 0 {
		return false
	}
	di := i
	if di >= len(c.dividers) {
		di, delta = i-1, -delta
	}
	c.dividers[di].Nudge(delta)
	c.keepOrdered(di)
	c.dividers[di].UpdatePosition(c.area)
	return true
}

// dividerHot reports whether a divider next to pane index i is hovered or
// being dragged.
func (c *PaneContainer) dividerHot(i int) bool {
	for _, di := range []int{i - 1, i} {
		if di < 0 || di >= len(c.dividers) {
			continue
		}
		if d := c.dividers[di]; d.Hovering() || d.Dragging() {
			return true
		}
	}
	return false
}

// Render draws every laid-out pane with the frame style for its state.
func (c *PaneContainer) Render(cv *Canvas, mode Mode) {
	selected, _ := SelectedPane(mode)
	focused, _ := FocusedPane(mode)
	for i, p := range c.panes {
		isSelected := p.id == selected
		isFocused := p.id == focused
		p.Render(cv, isSelected, isFocused, c.borderStyle(i, isSelected, isFocused))
	}
}

func (c *PaneContainer) borderStyle(i int, selected, focused bool) lipgloss.Style {
	switch {
	case focused:
		return Styles.BorderFocused
	case selected:
		return Styles.BorderSelected
	case c.dividerHot(i):
		return Styles.BorderDivider
	}
	return Styles.BorderIdle
}
