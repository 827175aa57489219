package panes

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panedeck/internal/ui"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line " + string(rune('a'+i%26))
	}
	return strings.Join(lines, "\n")
}

func TestTextPane_Scroll(t *testing.T) {
	p := NewTextPane("Notes", numbered(30))
	c := ui.NewCanvas(20, 5)
	p.Render(ui.Rect{W: 20, H: 5}, c)

	assert.True(t, p.HandleKey(keyMsg("j")))
	assert.Equal(t, 1, p.Offset())
	assert.True(t, p.HandleKey(keyMsg("k")))
	assert.Equal(t, 0, p.Offset())
	assert.True(t, p.HandleKey(keyMsg("G")))
	assert.Equal(t, 25, p.Offset())
	assert.True(t, p.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}))
	assert.Equal(t, 22, p.Offset())
	assert.False(t, p.HandleKey(keyMsg("x")))
}

func TestTextPane_SelectionAndCopy(t *testing.T) {
	p := NewTextPane("Notes", "hello world\nsecond line\nthird")
	var copied string
	p.WriteClipboard = func(s string) error {
		copied = s
		return nil
	}
	p.Render(ui.Rect{W: 20, H: 5}, ui.NewCanvas(20, 5))

	p.StartSelection(6, 0)
	p.UpdateSelection(6, 1)
	p.EndSelection()
	require.True(t, p.HasSelection())

	text, ok := p.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "world\nsecond", text)

	assert.True(t, p.HandleKey(keyMsg("y")))
	assert.Equal(t, "world\nsecond", copied)
	assert.Equal(t, "Copied 12 chars", p.Status())

	assert.True(t, p.HandleKey(keyMsg("esc")))
	assert.False(t, p.HasSelection())
	assert.False(t, p.HandleKey(keyMsg("y")), "copy without selection is not handled")
}

func TestTextPane_SelectionBackwards(t *testing.T) {
	p := NewTextPane("Notes", "abcdef")
	p.StartSelection(4, 0)
	p.UpdateSelection(1, 0)
	p.EndSelection()

	text, ok := p.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "bcd", text)
}

func TestTextPane_ClickWithoutDragSelectsNothing(t *testing.T) {
	p := NewTextPane("Notes", "abcdef")
	p.StartSelection(2, 0)
	p.EndSelection()
	assert.False(t, p.HasSelection())
	_, ok := p.SelectedText()
	assert.False(t, ok)
}

func TestTextPane_CopyFailure(t *testing.T) {
	p := NewTextPane("Notes", "abcdef")
	p.WriteClipboard = func(string) error { return errors.New("no clipboard") }
	p.StartSelection(0, 0)
	p.UpdateSelection(3, 0)

	assert.True(t, p.HandleKey(keyMsg("y")))
	assert.Equal(t, "Clipboard copy failed", p.Status())
	assert.True(t, p.HasSelection())
}

func TestTextPane_RenderHighlightsSelection(t *testing.T) {
	p := NewTextPane("Notes", "abcdef\nghijkl")
	p.StartSelection(1, 0)
	p.UpdateSelection(3, 0)

	c := ui.NewCanvas(10, 2)
	p.Render(ui.Rect{W: 10, H: 2}, c)
	assert.Equal(t, "abcdef    ", c.Line(0))
	assert.Equal(t, "ghijkl    ", c.Line(1))
}

func TestTextPane_FocusedShowsStatus(t *testing.T) {
	p := NewTextPane("Notes", "abcdef\nghijkl\nmnopqr")
	p.WriteClipboard = func(string) error { return nil }
	p.StartSelection(0, 0)
	p.UpdateSelection(3, 0)
	require.True(t, p.HandleKey(keyMsg("y")))

	c := ui.NewCanvas(20, 3)
	p.Render(ui.Rect{W: 20, H: 3}, c)
	assert.NotContains(t, c.String(), "Copied", "status is hidden while unfocused")

	p.SetFocused(true)
	c = ui.NewCanvas(20, 3)
	p.Render(ui.Rect{W: 20, H: 3}, c)
	assert.Contains(t, c.Line(2), "Copied 3 chars")
	assert.Contains(t, c.Line(1), "ghijkl")
}
