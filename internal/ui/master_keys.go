package ui

import tea "github.com/charmbracelet/bubbletea"

// HandleKey routes a key event.
//
// In Focus mode only the exit-focus key is interpreted; everything else,
// quit keys included, goes to the focused pane. In Layout mode quit and tab
// switching are checked first, then auto-focus passthrough, then the layout
// keys. An open help overlay is closed by any other key.
func (m *MasterLayout) HandleKey(msg tea.KeyMsg) EventResult {
	switch mode := m.mode.(type) {
	case FocusMode:
		return m.handleFocusKey(mode, msg)
	case LayoutMode:
		return m.handleLayoutKey(mode, msg)
	}
	return NotHandled
}

func (m *MasterLayout) handleFocusKey(mode FocusMode, msg tea.KeyMsg) EventResult {
	if m.keys.IsExitFocus(msg) {
		m.setMode(mode.Exit())
		return Consumed
	}
	pane, ok := m.activePane(mode.Focused)
	if !ok {
		m.log.Debug("focused pane not found", "pane", mode.Focused)
		return NotHandled
	}
	if pane.HandleKey(msg) {
		return Consumed
	}
	return NotHandled
}

func (m *MasterLayout) handleLayoutKey(mode LayoutMode, msg tea.KeyMsg) EventResult {
	if m.keys.IsQuit(msg) {
		m.help.Hide()
		return Quit
	}
	if i, ok := m.keys.TabIndex(msg); ok {
		if m.SetActiveTab(i) {
			m.help.Hide()
			return Consumed
		}
		return NotHandled
	}

	if m.help.Visible() {
		m.help.Hide()
		return Consumed
	}

	if m.autoFocus && mode.Selected != NoPane {
		if pane, ok := m.activePane(mode.Selected); ok && !pane.RequiresFocusMode() {
			return m.handleAutoFocusKey(pane, msg)
		}
	}

	if pane, ok := m.activePane(mode.Selected); ok && pane.HasSelection() {
		if m.keys.IsCopySelection(msg) || m.keys.IsClearSelection(msg) {
			if pane.HandleKey(msg) {
				return Consumed
			}
		}
	}

	if m.keys.IsClearSelection(msg) || m.keys.IsDeselect(msg) {
		m.Deselect()
		return Consumed
	}
	if nav := m.keys.Navigation(msg); nav != NavNone {
		m.navigate(nav)
		return Consumed
	}
	if delta, ok := m.keys.ResizeDelta(msg); ok {
		if c, ok := m.container(); ok && c.ResizeAround(mode.Selected, delta) {
			return Consumed
		}
		return NotHandled
	}
	if m.keys.IsHelp(msg) {
		m.help.Toggle()
		return Consumed
	}
	if m.keys.IsFocus(msg) {
		if m.FocusSelected() {
			return Consumed
		}
		return NotHandled
	}
	return NotHandled
}

// handleAutoFocusKey passes a key straight to the selected pane. Navigation
// keys move the selection first and then go to the newly selected pane.
func (m *MasterLayout) handleAutoFocusKey(pane *Pane, msg tea.KeyMsg) EventResult {
	if nav := m.keys.Navigation(msg); nav != NavNone && m.navigate(nav) {
		next, _ := SelectedPane(m.mode)
		if p, ok := m.activePane(next); ok {
			pane = p
		}
	}
	if pane.HandleKey(msg) {
		return Consumed
	}
	return NotHandled
}
