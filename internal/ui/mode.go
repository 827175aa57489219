package ui

// Mode is the interaction mode: exactly one of LayoutMode or FocusMode.
// The unexported method closes the set so no third variant can exist.
type Mode interface {
	isMode()
	String() string
}

// LayoutMode navigates and selects panes. Selected is NoPane when nothing
// is selected.
type LayoutMode struct {
	Selected PaneID
}

// FocusMode delivers input to a single pane.
type FocusMode struct {
	Focused PaneID
}

func (LayoutMode) isMode() {}
func (FocusMode) isMode()  {}

func (LayoutMode) String() string { return "Layout" }
func (FocusMode) String() string  { return "Focus" }

// Focus enters focus mode on the selected pane. Without a selection the
// mode is unchanged and ok is false.
func (m LayoutMode) Focus() (mode Mode, ok bool) {
	if m.Selected == NoPane {
		return m, false
	}
	return FocusMode{Focused: m.Selected}, true
}

// Select moves the selection without leaving layout mode.
func (m LayoutMode) Select(id PaneID) LayoutMode {
	return LayoutMode{Selected: id}
}

// Deselect clears the selection.
func (m LayoutMode) Deselect() LayoutMode {
	return LayoutMode{}
}

// Exit returns to layout mode with the focused pane still selected.
func (m FocusMode) Exit() LayoutMode {
	return LayoutMode{Selected: m.Focused}
}

// SelectedPane returns the selected pane when m is a layout mode with a
// selection.
func SelectedPane(m Mode) (PaneID, bool) {
	if l, ok := m.(LayoutMode); ok && l.Selected != NoPane {
		return l.Selected, true
	}
	return NoPane, false
}

// FocusedPane returns the focused pane when m is a focus mode.
func FocusedPane(m Mode) (PaneID, bool) {
	if f, ok := m.(FocusMode); ok {
		return f.Focused, true
	}
	return NoPane, false
}

// ActivePane is the pane that pointer selection gestures apply to: the
// selected pane in layout mode or the focused pane in focus mode.
func ActivePane(m Mode) (PaneID, bool) {
	switch m := m.(type) {
	case LayoutMode:
		return m.Selected, m.Selected != NoPane
	case FocusMode:
		return m.Focused, true
	}
	return NoPane, false
}

// IsFocus reports whether m is a focus mode.
func IsFocus(m Mode) bool {
	_, ok := m.(FocusMode)
	return ok
}
