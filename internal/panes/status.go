package panes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"panedeck/internal/ui"
	"panedeck/internal/ui/textutil"
)

// StatusPane is a read-only key/value panel. It can never be selected.
type StatusPane struct {
	title  string
	keys   []string
	values map[string]string
}

var (
	_ ui.Content   = (*StatusPane)(nil)
	_ ui.Focusable = (*StatusPane)(nil)
)

func NewStatusPane(title string) *StatusPane {
	return &StatusPane{title: title, values: map[string]string{}}
}

// Set adds or updates an entry; entries keep their first insertion order.
func (s *StatusPane) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value of an entry.
func (s *StatusPane) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *StatusPane) Title() string { return s.title }

func (s *StatusPane) Focusable() bool { return false }

func (s *StatusPane) HandleKey(tea.KeyMsg) bool { return false }

func (s *StatusPane) HandleMouse(tea.MouseMsg) bool { return false }

func (s *StatusPane) Render(area ui.Rect, c *ui.Canvas) {
	labelW := 0
	for _, k := range s.keys {
		labelW = max(labelW, textutil.Width(k))
	}
	lines := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		lines = append(lines, ui.Styles.Muted.Render(textutil.PadRight(k, labelW))+"  "+ui.Styles.Normal.Render(s.values[k]))
	}
	if len(lines) == 0 {
		lines = append(lines, ui.Styles.Empty.Render("nothing to report"))
	}
	c.Draw(area, strings.Join(lines, "\n"))
}
