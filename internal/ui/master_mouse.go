package ui

import tea "github.com/charmbracelet/bubbletea"

type pointerKind int

const (
	pointerOther pointerKind = iota
	pointerDown
	pointerDrag
	pointerUp
	pointerHover
	pointerScroll
)

func classifyPointer(msg tea.MouseMsg) pointerKind {
	ev := tea.MouseEvent(msg)
	switch {
	case ev.IsWheel():
		return pointerScroll
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return pointerDown
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		return pointerDrag
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		return pointerHover
	case msg.Action == tea.MouseActionRelease:
		return pointerUp
	}
	return pointerOther
}

// HandleMouse routes a pointer event: navigation bar clicks, divider drags
// (Layout mode only), pane selection and focus changes, text selection in
// the active pane, and forwarding to the focused pane.
func (m *MasterLayout) HandleMouse(msg tea.MouseMsg) EventResult {
	kind := classifyPointer(msg)
	nav := m.navArea()

	if kind == pointerDown && nav.Contains(msg.X, msg.Y) {
		if i, ok := m.navBar.HandleClick(msg.X, msg.Y); ok && m.SetActiveTab(i) {
			return Consumed
		}
		return NotHandled
	}

	c, ok := m.container()
	if !ok {
		return NotHandled
	}

	if kind == pointerUp && c.Dragging() {
		c.StopDrag()
		return Consumed
	}
	if _, layout := m.mode.(LayoutMode); layout {
		if r, done := m.handleDividerMouse(c, kind, msg); done {
			return r
		}
	}

	if kind == pointerHover || kind == pointerScroll {
		c.UpdatePaneHover(msg.X, msg.Y)
	}
	if kind == pointerHover {
		if !IsFocus(m.mode) {
			return Consumed
		}
	}

	if msg.Y >= nav.Bottom() {
		if r, done := m.handleSelectionMouse(c, kind, msg); done {
			return r
		}
	}

	switch mode := m.mode.(type) {
	case FocusMode:
		return m.forwardToFocused(c, mode, kind, msg)
	case LayoutMode:
		if kind == pointerScroll {
			return m.forwardScroll(c, msg)
		}
	}
	return NotHandled
}

// handleDividerMouse starts, moves and ends divider drags and tracks divider
// hover. done is false when the event is not about a divider.
func (m *MasterLayout) handleDividerMouse(c *PaneContainer, kind pointerKind, msg tea.MouseMsg) (EventResult, bool) {
	switch kind {
	case pointerDown:
		if i, ok := c.FindDividerAt(msg.X, msg.Y); ok {
			c.StartDrag(i)
			return Consumed, true
		}
	case pointerDrag:
		if c.UpdateDrag(msg.X, msg.Y) {
			return Consumed, true
		}
	case pointerHover:
		c.UpdateHover(msg.X, msg.Y)
	}
	return NotHandled, false
}

// handleSelectionMouse handles clicks on panes. A press on the active pane
// starts a text selection; a press on another focusable pane selects it, or
// focuses it in Focus mode.
func (m *MasterLayout) handleSelectionMouse(c *PaneContainer, kind pointerKind, msg tea.MouseMsg) (EventResult, bool) {
	active, hasActive := ActivePane(m.mode)
	switch kind {
	case pointerDown:
		pane, ok := c.FindPaneAt(msg.X, msg.Y)
		if !ok {
			return NotHandled, false
		}
		if hasActive && pane.ID() == active {
			local := pane.TranslateMouse(msg)
			pane.StartSelection(local.X, local.Y)
			return Consumed, true
		}
		if !pane.IsFocusable() {
			return NotHandled, true
		}
		if IsFocus(m.mode) {
			m.EnterFocusMode(pane.ID())
		} else {
			m.SelectPane(pane.ID())
		}
		return Consumed, true
	case pointerDrag:
		if !hasActive {
			return NotHandled, false
		}
		if pane, ok := c.Pane(active); ok && pane.ContainsPoint(msg.X, msg.Y) {
			local := pane.TranslateMouse(msg)
			pane.UpdateSelection(local.X, local.Y)
			return Consumed, true
		}
	case pointerUp:
		if !hasActive {
			return NotHandled, false
		}
		if pane, ok := c.Pane(active); ok {
			pane.EndSelection()
			return Consumed, true
		}
	}
	return NotHandled, false
}

// forwardToFocused sends pointer events inside the focused pane to its
// content in pane-local coordinates.
func (m *MasterLayout) forwardToFocused(c *PaneContainer, mode FocusMode, kind pointerKind, msg tea.MouseMsg) EventResult {
	pane, ok := c.Pane(mode.Focused)
	if !ok || !pane.ContainsPoint(msg.X, msg.Y) {
		if kind == pointerHover {
			return Consumed
		}
		return NotHandled
	}
	if pane.HandleMouse(pane.TranslateMouse(msg)) || kind == pointerHover {
		return Consumed
	}
	return NotHandled
}

// forwardScroll sends wheel events in Layout mode to the pane under the
// pointer without changing the selection.
func (m *MasterLayout) forwardScroll(c *PaneContainer, msg tea.MouseMsg) EventResult {
	pane, ok := c.FindPaneAt(msg.X, msg.Y)
	if !ok {
		return NotHandled
	}
	if pane.HandleMouse(pane.TranslateMouse(msg)) {
		return Consumed
	}
	return NotHandled
}
