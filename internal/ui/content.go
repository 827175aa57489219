package ui

import tea "github.com/charmbracelet/bubbletea"

// Content is what a pane shows. The engine only talks to content through
// these methods and the optional capability interfaces below.
type Content interface {
	// HandleKey consumes a key event and reports whether it was used.
	HandleKey(msg tea.KeyMsg) bool
	// HandleMouse consumes a pointer event in pane-local coordinates.
	HandleMouse(msg tea.MouseMsg) bool
	Title() string
	// Render draws into area of the canvas.
	Render(area Rect, c *Canvas)
}

// Focusable lets content opt out of selection. Content without it is focusable.
type Focusable interface {
	Focusable() bool
}

// FocusModeRequirer lets content opt out of auto-focus passthrough, so keys
// only reach it after an explicit focus (terminals, editors, chat inputs).
type FocusModeRequirer interface {
	RequiresFocusMode() bool
}

// Selectable is implemented by content that supports pointer text selection.
// Coordinates are pane-local.
type Selectable interface {
	HasSelection() bool
	StartSelection(x, y int)
	UpdateSelection(x, y int)
	EndSelection()
	SelectedText() (string, bool)
	ClearSelection()
}

// FocusAware content is told on every render whether it holds focus.
type FocusAware interface {
	SetFocused(focused bool)
}

// Initializer content starts background work when the program starts.
type Initializer interface {
	Init() tea.Cmd
}

// Updater content receives messages that are not key or pointer input,
// such as PTY output or file change notifications.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}
