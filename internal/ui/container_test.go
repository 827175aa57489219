package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContainer builds a container with one pane per content and lays it out.
func newContainer(a Arrangement, area Rect, contents ...Content) (*PaneContainer, []PaneID) {
	c := NewPaneContainer(a)
	ids := make([]PaneID, len(contents))
	for i, content := range contents {
		p := NewPane(content)
		c.Add(p)
		ids[i] = p.ID()
	}
	c.UpdateLayout(area)
	return c, ids
}

func TestPaneContainer_SideBySideAreas(t *testing.T) {
	c, ids := newContainer(Horizontal(50), Rect{W: 80, H: 20}, newFake("A"), newFake("B"))

	a, _ := c.Pane(ids[0])
	b, _ := c.Pane(ids[1])
	ra, ok := a.Area()
	require.True(t, ok)
	rb, _ := b.Area()
	assert.Equal(t, Rect{X: 0, Y: 0, W: 40, H: 20}, ra)
	assert.Equal(t, Rect{X: 40, Y: 0, W: 40, H: 20}, rb)
	require.Len(t, c.Dividers(), 1)
	assert.Equal(t, 40, c.Dividers()[0].Pos)
}

func TestPaneContainer_StackedAreas(t *testing.T) {
	c, ids := newContainer(Vertical(25), Rect{Y: 2, W: 40, H: 20}, newFake("A"), newFake("B"))
	a, _ := c.Pane(ids[0])
	b, _ := c.Pane(ids[1])
	ra, _ := a.Area()
	rb, _ := b.Area()
	assert.Equal(t, Rect{X: 0, Y: 2, W: 40, H: 5}, ra)
	assert.Equal(t, Rect{X: 0, Y: 7, W: 40, H: 15}, rb)
	assert.Equal(t, DividerHorizontal, c.Dividers()[0].Orientation)
}

func TestPaneContainer_SelectNextIsCyclic(t *testing.T) {
	skip := newFake("S")
	skip.notFocusable = true
	c, ids := newContainer(Horizontal(), Rect{W: 90, H: 10}, newFake("A"), skip, newFake("B"), newFake("C"))
	a, b, cc := ids[0], ids[2], ids[3]

	next, ok := c.SelectNext(a)
	require.True(t, ok)
	assert.Equal(t, b, next, "non-focusable panes are skipped")
	next, _ = c.SelectNext(b)
	assert.Equal(t, cc, next)
	next, _ = c.SelectNext(cc)
	assert.Equal(t, a, next, "wraps to the first")

	next, _ = c.SelectNext(NoPane)
	assert.Equal(t, a, next)
	prev, _ := c.SelectPrev(NoPane)
	assert.Equal(t, cc, prev)

	for _, id := range []PaneID{a, b, cc} {
		n, _ := c.SelectNext(id)
		p, _ := c.SelectPrev(n)
		assert.Equal(t, id, p, "prev undoes next")
	}
}

func TestPaneContainer_SelectNextNoFocusable(t *testing.T) {
	s := newFake("S")
	s.notFocusable = true
	c, _ := newContainer(Horizontal(), Rect{W: 10, H: 10}, s)
	_, ok := c.SelectNext(NoPane)
	assert.False(t, ok)
	_, ok = c.FirstFocusable()
	assert.False(t, ok)
}

func TestPaneContainer_Directional(t *testing.T) {
	c, ids := newContainer(Horizontal(50), Rect{W: 80, H: 20}, newFake("A"), newFake("B"))
	a, b := ids[0], ids[1]

	got, ok := c.SelectRight(a)
	require.True(t, ok)
	assert.Equal(t, b, got)
	got, ok = c.SelectLeft(b)
	require.True(t, ok)
	assert.Equal(t, a, got)

	_, ok = c.SelectLeft(a)
	assert.False(t, ok, "no wraparound")
	_, ok = c.SelectUp(a)
	assert.False(t, ok)
	_, ok = c.SelectDown(a)
	assert.False(t, ok)
	_, ok = c.SelectRight(NoPane)
	assert.False(t, ok)
}

func TestPaneContainer_DirectionalGrid(t *testing.T) {
	c, ids := newContainer(Grid(2, 2), Rect{W: 80, H: 20},
		newFake("0"), newFake("1"), newFake("2"), newFake("3"), newFake("overflow"))

	got, _ := c.SelectRight(ids[0])
	assert.Equal(t, ids[1], got, "nearest of the panes to the right")
	got, _ = c.SelectDown(ids[0])
	assert.Equal(t, ids[2], got)
	got, _ = c.SelectUp(ids[3])
	assert.Equal(t, ids[1], got)
	got, _ = c.SelectLeft(ids[3])
	assert.Equal(t, ids[2], got)

	overflow, _ := c.Pane(ids[4])
	_, laidOut := overflow.Area()
	assert.False(t, laidOut, "panes beyond the grid get no area")
	_, ok := c.SelectRight(ids[4])
	assert.False(t, ok)
}

func TestPaneContainer_DirectionalTieGoesToEarlierPane(t *testing.T) {
	a := CustomArrangement(func(Rect) []Rect {
		return []Rect{
			{X: 10, Y: 10, W: 10, H: 10},
			{X: 30, Y: 0, W: 10, H: 10},
			{X: 30, Y: 20, W: 10, H: 10},
		}
	})
	c, ids := newContainer(a, Rect{W: 50, H: 30}, newFake("cur"), newFake("upper"), newFake("lower"))
	got, ok := c.SelectRight(ids[0])
	require.True(t, ok)
	assert.Equal(t, ids[1], got)
}

func TestPaneContainer_DirectionalSkipsNonFocusable(t *testing.T) {
	s := newFake("S")
	s.notFocusable = true
	c, ids := newContainer(Horizontal(), Rect{W: 90, H: 10}, newFake("A"), s, newFake("B"))
	got, ok := c.SelectRight(ids[0])
	require.True(t, ok)
	assert.Equal(t, ids[2], got)
}

func TestPaneContainer_FindPaneAndDivider(t *testing.T) {
	c, ids := newContainer(Horizontal(50), Rect{W: 100, H: 20}, newFake("A"), newFake("B"))

	p, ok := c.FindPaneAt(10, 5)
	require.True(t, ok)
	assert.Equal(t, ids[0], p.ID())
	p, ok = c.FindPaneAt(60, 5)
	require.True(t, ok)
	assert.Equal(t, ids[1], p.ID())
	_, ok = c.FindPaneAt(100, 5)
	assert.False(t, ok)

	for _, x := range []int{49, 50, 51} {
		i, ok := c.FindDividerAt(x, 5)
		assert.True(t, ok, "x=%d", x)
		assert.Equal(t, 0, i)
	}
	for _, x := range []int{10, 90} {
		_, ok := c.FindDividerAt(x, 5)
		assert.False(t, ok, "x=%d", x)
	}
}

func TestPaneContainer_DragResizesPanes(t *testing.T) {
	c, ids := newContainer(Horizontal(50), Rect{W: 100, H: 20}, newFake("A"), newFake("B"))

	assert.False(t, c.UpdateDrag(60, 5), "nothing armed")
	require.True(t, c.StartDrag(0))
	assert.False(t, c.StartDrag(3))
	assert.True(t, c.Dragging())

	require.True(t, c.UpdateDrag(60, 5))
	assert.Equal(t, 60, c.Dividers()[0].Percent)
	assert.Equal(t, 60, c.Dividers()[0].Pos)

	require.True(t, c.UpdateDrag(99, 5))
	assert.Equal(t, DefaultMaxPercent, c.Dividers()[0].Percent)

	c.StopDrag()
	assert.False(t, c.Dragging())

	c.UpdateLayout(Rect{W: 100, H: 20})
	a, _ := c.Pane(ids[0])
	ra, _ := a.Area()
	assert.Equal(t, 90, ra.W)
}

func TestPaneContainer_DragKeepsDividersOrdered(t *testing.T) {
	c, _ := newContainer(Horizontal(), Rect{W: 100, H: 20}, newFake("A"), newFake("B"), newFake("C"))
	require.Len(t, c.Dividers(), 2)
	assert.Equal(t, 33, c.Dividers()[0].Percent)
	assert.Equal(t, 66, c.Dividers()[1].Percent)

	c.StartDrag(0)
	c.UpdateDrag(80, 5)
	assert.Equal(t, 65, c.Dividers()[0].Percent)
}

func TestPaneContainer_DividerBounds(t *testing.T) {
	c, _ := newContainer(Horizontal(50), Rect{W: 100, H: 20}, newFake("A"), newFake("B"))
	c.SetDividerBounds(30, 70)
	c.StartDrag(0)
	c.UpdateDrag(95, 5)
	assert.Equal(t, 70, c.Dividers()[0].Percent)

	c.Add(NewPane(newFake("C")))
	for _, d := range c.Dividers() {
		assert.Equal(t, 30, d.MinPercent)
		assert.Equal(t, 70, d.MaxPercent)
	}
}

func TestPaneContainer_ResizeAround(t *testing.T) {
	c, ids := newContainer(Horizontal(50), Rect{W: 100, H: 20}, newFake("A"), newFake("B"))

	require.True(t, c.ResizeAround(ids[0], 5))
	assert.Equal(t, 55, c.Dividers()[0].Percent)
	require.True(t, c.ResizeAround(ids[1], 10), "last pane grows by moving the divider before it")
	assert.Equal(t, 45, c.Dividers()[0].Percent)
	assert.False(t, c.ResizeAround(NoPane, 5))

	grid, gids := newContainer(Grid(1, 2), Rect{W: 100, H: 20}, newFake("A"), newFake("B"))
	assert.False(t, grid.ResizeAround(gids[0], 5), "grids have no dividers")
}

func TestPaneContainer_MembershipResetsDividers(t *testing.T) {
	c, ids := newContainer(Horizontal(30, 30), Rect{W: 100, H: 20}, newFake("A"), newFake("B"), newFake("C"))
	c.StartDrag(0)
	c.UpdateDrag(20, 5)

	require.True(t, c.Remove(ids[1]))
	assert.False(t, c.Remove(ids[1]))
	require.Len(t, c.Dividers(), 1)
	assert.Equal(t, 30, c.Dividers()[0].Percent)
	assert.False(t, c.Dragging())
	assert.Equal(t, 2, c.Len())

	c.SetArrangement(Grid(1, 2))
	assert.Empty(t, c.Dividers())
	assert.Equal(t, 2, c.Len(), "changing the arrangement keeps the panes")
}

func TestPaneContainer_Hover(t *testing.T) {
	c, ids := newContainer(Horizontal(50), Rect{W: 100, H: 20}, newFake("A"), newFake("B"))
	c.UpdateHover(50, 5)
	assert.True(t, c.Dividers()[0].Hovering())
	c.UpdateHover(10, 5)
	assert.False(t, c.Dividers()[0].Hovering())

	c.UpdatePaneHover(70, 5)
	b, _ := c.Pane(ids[1])
	a, _ := c.Pane(ids[0])
	assert.True(t, b.Hovered())
	assert.False(t, a.Hovered())
}

func TestPaneContainer_RenderFrames(t *testing.T) {
	a, b := newFake("A"), newFake("B")
	b.needsFocus = true
	c, ids := newContainer(Horizontal(50), Rect{W: 60, H: 6}, a, b)

	cv := NewCanvas(60, 6)
	c.Render(cv, LayoutMode{Selected: ids[0]})
	top := cv.Line(0)
	assert.Contains(t, top, "● A (Selected)")
	assert.True(t, strings.HasPrefix(top, "╭"))
	assert.Contains(t, cv.Line(1), "A body")
	assert.True(t, strings.HasPrefix(cv.Line(5), "╰"))
	assert.False(t, a.focused)

	cv = NewCanvas(60, 6)
	c.Render(cv, LayoutMode{Selected: ids[1]})
	assert.Contains(t, cv.Line(0), "● B (Press Enter)")

	cv = NewCanvas(60, 6)
	c.Render(cv, FocusMode{Focused: ids[1]})
	assert.Contains(t, cv.Line(0), "█ B (Focused)")
	assert.True(t, b.focused)
	assert.False(t, a.focused)
}

func TestPane_Defaults(t *testing.T) {
	p := NewPane(plainContent{title: "plain"})
	assert.True(t, p.IsFocusable())
	assert.False(t, p.RequiresFocusMode())
	assert.False(t, p.HasSelection())
	_, ok := p.SelectedText()
	assert.False(t, ok)
	p.StartSelection(1, 1)

	_, ok = p.Area()
	assert.False(t, ok)
	assert.False(t, p.ContainsPoint(0, 0), "a pane that was never laid out contains nothing")
}

func TestPane_TranslateMouse(t *testing.T) {
	p := NewPane(newFake("A"))
	p.SetArea(Rect{X: 10, Y: 5, W: 20, H: 10})

	local := p.TranslateMouse(tea.MouseMsg{X: 12, Y: 7, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, local.X)
	assert.Equal(t, 1, local.Y)
	assert.Equal(t, tea.MouseButtonLeft, local.Button)

	border := p.TranslateMouse(tea.MouseMsg{X: 10, Y: 5})
	assert.Equal(t, 0, border.X)
	assert.Equal(t, 0, border.Y)
}

func TestPane_RenderTooSmall(t *testing.T) {
	p := NewPane(newFake("A"))
	p.SetArea(Rect{W: 2, H: 2})
	cv := NewCanvas(4, 2)
	cv.Draw(cv.Bounds(), "xxxx\nxxxx")
	p.Render(cv, false, false, Styles.BorderIdle)
	assert.Equal(t, "  xx", cv.Line(0))
}
