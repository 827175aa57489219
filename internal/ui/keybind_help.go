package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help model with the shared key/description colors.
func newHelpModel() help.Model {
	h := help.New()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = descStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = descStyle
	return h
}

// RenderKeybindHelp produces the body of the hotkey overlay: every layout
// mode binding grouped in columns under a title.
func RenderKeybindHelp(kb KeyBindings, width int) string {
	h := newHelpModel()
	h.Width = width
	h.ShowAll = true
	body := h.View(kb.KeyMap(LayoutMode{}))
	hint := Styles.Hint.Render("press any key to close")
	return lipgloss.JoinVertical(lipgloss.Left, Styles.Title.Render("Keys"), "", body, "", hint)
}
