package panes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fsnotify/fsnotify"

	"panedeck/internal/ui"
)

// minMarkdownWidth keeps glamour from wrapping into a single column.
const minMarkdownWidth = 10

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by wrap width; building one parses the style JSON.
	mdRenderers = map[int]*glamour.TermRenderer{}
)

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	if r, ok := mdRenderers[width]; ok {
		return r, nil
	}
	// A fixed style avoids terminal background queries that can block.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	mdRenderers[width] = r
	return r, nil
}

// renderMarkdown renders md wrapped to width. On failure the source is
// returned unchanged.
func renderMarkdown(md string, width int) string {
	width = max(width, minMarkdownWidth)
	r, err := markdownRenderer(width)
	if err != nil {
		log.Warn("markdown renderer", "width", width, "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warn("markdown render", "error", err)
		return md
	}
	return strings.Trim(out, "\n")
}

// MarkdownChangedMsg carries new file content for a watched markdown pane.
type MarkdownChangedMsg struct {
	Path    string
	Content string
}

// markdownWatchErrMsg reports that watching a file stopped.
type markdownWatchErrMsg struct {
	Path string
	Err  error
}

// MarkdownPane shows rendered markdown. When backed by a file it reloads on
// change. Scrolling, selection and copy behave like TextPane.
type MarkdownPane struct {
	*TextPane

	source      string
	path        string
	watcher     *fsnotify.Watcher
	renderWidth int
	dirty       bool
}

var (
	_ ui.Content     = (*MarkdownPane)(nil)
	_ ui.Initializer = (*MarkdownPane)(nil)
	_ ui.Updater     = (*MarkdownPane)(nil)
)

// NewMarkdownPane returns a pane rendering source.
func NewMarkdownPane(title, source string) *MarkdownPane {
	return &MarkdownPane{
		TextPane: NewTextPane(title, ""),
		source:   source,
		dirty:    true,
	}
}

// NewMarkdownFilePane loads path and watches it for changes once the
// program starts.
func NewMarkdownFilePane(path string) (*MarkdownPane, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown %s: %w", path, err)
	}
	m := NewMarkdownPane(filepath.Base(path), string(data))
	m.path = path
	return m, nil
}

// Source returns the markdown source.
func (m *MarkdownPane) Source() string { return m.source }

// SetSource replaces the markdown and schedules a re-render.
func (m *MarkdownPane) SetSource(md string) {
	m.source = md
	m.dirty = true
}

// Init starts watching the backing file, if any.
func (m *MarkdownPane) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("markdown watcher", "path", m.path, "error", err)
		return nil
	}
	// Watch the directory: editors often replace files instead of writing them.
	if err := w.Add(filepath.Dir(m.path)); err != nil {
		log.Warn("markdown watch", "path", m.path, "error", err)
		w.Close()
		return nil
	}
	m.watcher = w
	return m.waitForChange()
}

func (m *MarkdownPane) waitForChange() tea.Cmd {
	w, path := m.watcher, m.path
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				data, err := os.ReadFile(path)
				if err != nil {
					continue
				}
				return MarkdownChangedMsg{Path: path, Content: string(data)}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return markdownWatchErrMsg{Path: path, Err: err}
			}
		}
	}
}

// Update applies reloads for this pane's file.
func (m *MarkdownPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case MarkdownChangedMsg:
		if msg.Path != m.path {
			return nil
		}
		m.SetSource(msg.Content)
		return m.waitForChange()
	case markdownWatchErrMsg:
		if msg.Path != m.path {
			return nil
		}
		log.Warn("markdown watch", "path", m.path, "error", msg.Err)
		return m.waitForChange()
	}
	return nil
}

// Close stops watching the file.
func (m *MarkdownPane) Close() error {
	if m.watcher == nil {
		return nil
	}
	err := m.watcher.Close()
	m.watcher = nil
	return err
}

// Render re-renders the markdown when the width or source changed.
func (m *MarkdownPane) Render(area ui.Rect, c *ui.Canvas) {
	if m.dirty || area.W != m.renderWidth {
		m.renderWidth = area.W
		m.dirty = false
		offset := m.Offset()
		m.setLines(strings.Split(renderMarkdown(m.source, area.W), "\n"))
		m.vp.SetYOffset(offset)
	}
	m.TextPane.Render(area, c)
}
