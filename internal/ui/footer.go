package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// FooterHeight is the number of rows a tab reserves for its footer.
const FooterHeight = 1

// Footer is the status line under a tab's panes: a mode badge, optional
// text set by the embedder and key hints for the current mode.
type Footer struct {
	text string
	help help.Model
}

// NewFooter returns an empty footer.
func NewFooter() *Footer {
	return &Footer{help: newHelpModel()}
}

// SetText sets the embedder-provided status text.
func (f *Footer) SetText(s string) { f.text = s }

func (f *Footer) Text() string { return f.text }

func modeBadge(mode Mode) string {
	if IsFocus(mode) {
		return Styles.ModeFocus.Render("FOCUS")
	}
	return Styles.ModeLayout.Render("LAYOUT")
}

// Render draws the footer line into area.
func (f *Footer) Render(c *Canvas, area Rect, mode Mode, kb KeyBindings) {
	if area.Empty() {
		return
	}
	parts := []string{modeBadge(mode), " "}
	if f.text != "" {
		parts = append(parts, Styles.Normal.Render(f.text), "  ")
	}
	f.help.Width = max(area.W-lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, parts...)), 0)
	parts = append(parts, f.help.ShortHelpView(kb.KeyMap(mode).ShortHelp()))
	c.Draw(area, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}
