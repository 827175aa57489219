package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused borders
	ColorHighlight = "205" // Magenta - selected borders, active tab
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - idle borders, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - inactive tabs
	ColorWarning   = "208" // Orange - divider hover/drag
)

// Styles contains shared style definitions used by the engine and pane contents.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - for main titles

	// Pane frame colors, picked per frame by state
	BorderIdle     lipgloss.Style
	BorderSelected lipgloss.Style
	BorderFocused  lipgloss.Style
	BorderDivider  lipgloss.Style // divider hovered or being dragged

	// Navigation bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	NavBar      lipgloss.Style

	// Footer
	ModeLayout lipgloss.Style
	ModeFocus  lipgloss.Style

	// Overlay
	Box lipgloss.Style

	Selected  lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted     lipgloss.Style
	Normal    lipgloss.Style
	Hint      lipgloss.Style
	Empty     lipgloss.Style
	Error     lipgloss.Style
	Selection lipgloss.Style // Text selected with the pointer
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	BorderIdle:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	BorderSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)),
	BorderFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Bold(true),
	BorderDivider:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	NavBar: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	ModeLayout: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)),
	ModeFocus: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Selection: lipgloss.NewStyle().
		Reverse(true),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
