// Package panes holds the pane contents shipped with panedeck: scrollable
// text, rendered markdown, lists, a PTY terminal and a read-only status panel.
package panes

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"panedeck/internal/logging"
	"panedeck/internal/ui"
)

var log = logging.New("panes")

// wheelStep is how many lines one wheel notch scrolls.
const wheelStep = 3

// TextKeys are the keys a TextPane reacts to.
type TextKeys struct {
	Up, Down         key.Binding
	PageUp, PageDown key.Binding
	Top, Bottom      key.Binding
	Copy, Clear      key.Binding
}

// DefaultTextKeys returns the stock scrolling and selection keys.
func DefaultTextKeys() TextKeys {
	return TextKeys{
		Up:       key.NewBinding(key.WithKeys("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " ")),
		Top:      key.NewBinding(key.WithKeys("g", "home")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end")),
		Copy:     key.NewBinding(key.WithKeys("y")),
		Clear:    key.NewBinding(key.WithKeys("esc")),
	}
}

// TextPane is a scrollable block of text with pointer selection and
// clipboard copy.
type TextPane struct {
	title   string
	lines   []string
	vp      viewport.Model
	sel     selection
	focused bool
	status  string

	Keys TextKeys

	// WriteClipboard receives copied text. Defaults to the system clipboard.
	WriteClipboard func(string) error
}

var (
	_ ui.Content    = (*TextPane)(nil)
	_ ui.Selectable = (*TextPane)(nil)
	_ ui.FocusAware = (*TextPane)(nil)
)

// NewTextPane returns a pane showing text.
func NewTextPane(title, text string) *TextPane {
	t := &TextPane{
		title:          title,
		vp:             viewport.New(0, 0),
		Keys:           DefaultTextKeys(),
		WriteClipboard: clipboard.WriteAll,
	}
	t.SetText(text)
	return t
}

func (t *TextPane) Title() string { return t.title }

// SetText replaces the content and clears any selection.
func (t *TextPane) SetText(text string) {
	t.setLines(strings.Split(strings.TrimRight(text, "\n"), "\n"))
}

func (t *TextPane) setLines(lines []string) {
	t.lines = lines
	t.sel.clear()
	t.vp.SetContent(strings.Join(t.lines, "\n"))
}

// AppendLine adds a line at the bottom.
func (t *TextPane) AppendLine(line string) {
	t.lines = append(t.lines, line)
	t.vp.SetContent(strings.Join(t.lines, "\n"))
}

// Lines returns the current content lines.
func (t *TextPane) Lines() []string { return t.lines }

// Status is the outcome of the last copy, for display by the embedder.
func (t *TextPane) Status() string { return t.status }

// Offset returns the index of the first visible line.
func (t *TextPane) Offset() int { return t.vp.YOffset }

func (t *TextPane) SetFocused(focused bool) { t.focused = focused }

// HandleKey scrolls, copies or clears the selection.
func (t *TextPane) HandleKey(msg tea.KeyMsg) bool {
	if t.sel.nonEmpty() {
		switch {
		case key.Matches(msg, t.Keys.Copy):
			t.copySelection()
			return true
		case key.Matches(msg, t.Keys.Clear):
			t.sel.clear()
			return true
		}
	}
	switch {
	case key.Matches(msg, t.Keys.Up):
		t.vp.ScrollUp(1)
	case key.Matches(msg, t.Keys.Down):
		t.vp.ScrollDown(1)
	case key.Matches(msg, t.Keys.PageUp):
		t.vp.ScrollUp(max(t.vp.Height-1, 1))
	case key.Matches(msg, t.Keys.PageDown):
		t.vp.ScrollDown(max(t.vp.Height-1, 1))
	case key.Matches(msg, t.Keys.Top):
		t.vp.GotoTop()
	case key.Matches(msg, t.Keys.Bottom):
		t.vp.GotoBottom()
	default:
		return false
	}
	return true
}

// HandleMouse scrolls on wheel events.
func (t *TextPane) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		t.vp.ScrollUp(wheelStep)
	case tea.MouseButtonWheelDown:
		t.vp.ScrollDown(wheelStep)
	default:
		return false
	}
	return true
}

func (t *TextPane) copySelection() {
	text, ok := t.sel.text(t.lines)
	if !ok {
		return
	}
	if err := t.WriteClipboard(text); err != nil {
		log.Warn("clipboard copy failed", "pane", t.title, "error", err)
		t.status = "Clipboard copy failed"
		return
	}
	t.status = fmt.Sprintf("Copied %d chars", len([]rune(text)))
}

func (t *TextPane) docCell(x, y int) cell {
	return cell{line: t.vp.YOffset + y, col: x}
}

func (t *TextPane) HasSelection() bool { return t.sel.nonEmpty() }

func (t *TextPane) StartSelection(x, y int) { t.sel.start(t.docCell(x, y)) }

func (t *TextPane) UpdateSelection(x, y int) { t.sel.update(t.docCell(x, y)) }

func (t *TextPane) EndSelection() { t.sel.end() }

func (t *TextPane) SelectedText() (string, bool) { return t.sel.text(t.lines) }

func (t *TextPane) ClearSelection() { t.sel.clear() }

// Render draws the visible lines with the selection highlighted. While the
// pane is focused the last copy status takes the bottom row.
func (t *TextPane) Render(area ui.Rect, c *ui.Canvas) {
	if t.focused && t.status != "" && area.H > 1 {
		area.H--
		c.Draw(ui.Rect{X: area.X, Y: area.Bottom(), W: area.W, H: 1}, ui.Styles.Hint.Render(t.status))
	}
	t.vp.Width, t.vp.Height = area.W, area.H
	content := t.lines
	if t.sel.nonEmpty() {
		content = make([]string, len(t.lines))
		for i, line := range t.lines {
			content[i] = t.sel.highlight(i, line)
		}
	}
	offset := t.vp.YOffset
	t.vp.SetContent(strings.Join(content, "\n"))
	t.vp.SetYOffset(offset)
	c.Draw(area, t.vp.View())
}
