package ui

// FocusCycle rotates through an ordered list of selectable panes.
type FocusCycle struct {
	Current PaneID   // Currently selected pane, NoPane if none
	Order   []PaneID // Selection order, usually insertion order of focusable panes
}

func (f *FocusCycle) indexOf(id PaneID) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

// Next advances to the following pane, wrapping to the first.
// Returns the new current pane, or NoPane when the order is empty.
func (f *FocusCycle) Next() PaneID {
	if len(f.Order) == 0 {
		return NoPane
	}
	idx := f.indexOf(f.Current)
	f.Current = f.Order[(idx+1)%len(f.Order)]
	return f.Current
}

// Prev moves to the preceding pane, wrapping to the last. An unknown
// current pane moves to the first.
func (f *FocusCycle) Prev() PaneID {
	if len(f.Order) == 0 {
		return NoPane
	}
	idx := f.indexOf(f.Current)
	var prevIdx int
	switch {
	case f.Current == NoPane:
		prevIdx = len(f.Order) - 1
	case idx < 0:
		prevIdx = 0
	case idx == 0:
		prevIdx = len(f.Order) - 1
	default:
		prevIdx = idx - 1
	}
	f.Current = f.Order[prevIdx]
	return f.Current
}
