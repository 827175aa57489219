package panes

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panedeck/internal/pty"
	"panedeck/internal/ui"
)

func TestMarkdownPane_RendersAndRerendersOnWidth(t *testing.T) {
	m := NewMarkdownPane("Readme", "# Title\n\nSome *body* text.")
	m.Render(ui.Rect{W: 40, H: 10}, ui.NewCanvas(40, 10))

	joined := ansi.Strip(strings.Join(m.Lines(), "\n"))
	assert.Contains(t, joined, "Title")
	assert.Contains(t, joined, "body")
	assert.NotContains(t, joined, "# Title", "markdown should be rendered, not shown raw")
	assert.Equal(t, 40, m.renderWidth)

	m.Render(ui.Rect{W: 30, H: 10}, ui.NewCanvas(30, 10))
	assert.Equal(t, 30, m.renderWidth)
}

func TestMarkdownPane_UpdateFiltersByPath(t *testing.T) {
	m := NewMarkdownPane("Doc", "old")
	m.path = "/tmp/a.md"
	m.Render(ui.Rect{W: 40, H: 5}, ui.NewCanvas(40, 5))

	assert.Nil(t, m.Update(MarkdownChangedMsg{Path: "/tmp/other.md", Content: "nope"}))
	assert.Equal(t, "old", m.Source())

	m.Update(MarkdownChangedMsg{Path: "/tmp/a.md", Content: "new text"})
	assert.Equal(t, "new text", m.Source())
	m.Render(ui.Rect{W: 40, H: 5}, ui.NewCanvas(40, 5))
	assert.Contains(t, ansi.Strip(strings.Join(m.Lines(), "\n")), "new")
}

func TestMarkdownFilePane_WatchesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

	m, err := NewMarkdownFilePane(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.md", m.Title())
	assert.Equal(t, "first", m.Source())

	cmd := m.Init()
	require.NotNil(t, cmd)
	defer m.Close()

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
	msg := cmd()
	changed, ok := msg.(MarkdownChangedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, path, changed.Path)
	assert.Contains(t, []string{"", "second"}, changed.Content)
}

func TestMarkdownFilePane_MissingFile(t *testing.T) {
	_, err := NewMarkdownFilePane(filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListPane(t *testing.T) {
	var chosen []string
	p := NewListPane("Files", []ListItem{{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"}})
	p.OnChoose = func(it ListItem) { chosen = append(chosen, it.Name) }
	p.Render(ui.Rect{W: 20, H: 5}, ui.NewCanvas(20, 5))

	assert.True(t, p.HandleKey(keyMsg("j")))
	assert.Equal(t, 1, p.Index())
	assert.True(t, p.HandleKey(keyMsg("enter")))
	assert.Equal(t, []string{"beta"}, chosen)

	assert.True(t, p.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}))
	assert.Equal(t, 2, p.Index())
	assert.False(t, p.HandleKey(keyMsg("x")))
}

func TestListPane_EnterWithoutHandler(t *testing.T) {
	p := NewListPane("Files", []ListItem{{Name: "alpha"}})
	assert.False(t, p.HandleKey(keyMsg("enter")))
}

func TestStatusPane(t *testing.T) {
	s := NewStatusPane("Status")
	s.Set("mode", "layout")
	s.Set("tabs", "3")
	s.Set("mode", "focus")

	v, ok := s.Get("mode")
	require.True(t, ok)
	assert.Equal(t, "focus", v)

	pane := ui.NewPane(s)
	assert.False(t, pane.IsFocusable())
	assert.False(t, s.HandleKey(keyMsg("j")))

	c := ui.NewCanvas(20, 2)
	s.Render(ui.Rect{W: 20, H: 2}, c)
	assert.Equal(t, "mode  focus         ", c.Line(0))
	assert.Equal(t, "tabs  3             ", c.Line(1))
}

// pipeTerminal is an in-memory PTY for terminal pane tests.
type pipeTerminal struct {
	pr *io.PipeReader
	pw *io.PipeWriter

	mu    sync.Mutex
	input []byte
}

func (p *pipeTerminal) Read(b []byte) (int, error) { return p.pr.Read(b) }

func (p *pipeTerminal) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = append(p.input, b...)
	return len(b), nil
}

func (p *pipeTerminal) Close() error { return p.pr.Close() }

type pipeRunner struct {
	term    *pipeTerminal
	resizes []pty.Size
}

func (r *pipeRunner) Start(ctx context.Context, cmd *exec.Cmd, size pty.Size) (io.ReadWriteCloser, error) {
	return r.term, nil
}

func (r *pipeRunner) Resize(rwc io.ReadWriteCloser, size pty.Size) error {
	r.resizes = append(r.resizes, size)
	return nil
}

func newPipeRunner() *pipeRunner {
	pr, pw := io.Pipe()
	return &pipeRunner{term: &pipeTerminal{pr: pr, pw: pw}}
}

func TestTerminalPane_OutputAndInput(t *testing.T) {
	runner := newPipeRunner()
	term := NewTerminalPane("Shell", runner, "sh", "")
	assert.True(t, term.RequiresFocusMode())

	cmd := term.Init()
	require.NotNil(t, cmd)
	defer term.Close()

	go func() { _, _ = runner.term.pw.Write([]byte("hello\r\nwor")) }()
	msg := cmd()
	out, ok := msg.(TerminalOutputMsg)
	require.True(t, ok, "got %T", msg)
	require.NotNil(t, term.Update(out))
	assert.Equal(t, []string{"hello", "wor"}, term.Output())

	assert.Nil(t, term.Update(TerminalOutputMsg{ID: out.ID + 1000, Data: []byte("x\n")}))
	assert.Equal(t, []string{"hello", "wor"}, term.Output())

	assert.True(t, term.HandleKey(keyMsg("q")))
	assert.True(t, term.HandleKey(keyMsg("ctrl+c")))
	assert.True(t, term.HandleKey(keyMsg("enter")))
	runner.term.mu.Lock()
	assert.Equal(t, []byte{'q', 0x03, '\r'}, runner.term.input)
	runner.term.mu.Unlock()

	c := ui.NewCanvas(10, 4)
	term.Render(ui.Rect{W: 10, H: 4}, c)
	assert.Equal(t, "hello     ", c.Line(0))
	assert.Equal(t, []pty.Size{{Rows: 4, Cols: 10}}, runner.resizes)
}

func TestTerminalPane_Exit(t *testing.T) {
	runner := newPipeRunner()
	term := NewTerminalPane("Shell", runner, "sh", "")
	cmd := term.Init()
	require.NotNil(t, cmd)

	require.NoError(t, term.Close())
	msg := cmd()
	exited, ok := msg.(TerminalExitedMsg)
	require.True(t, ok, "got %T", msg)
	term.Update(exited)
	assert.Equal(t, "Shell [exited]", term.Title())
	assert.False(t, term.HandleKey(keyMsg("q")))
}

func TestCleanTerminalLine(t *testing.T) {
	assert.Equal(t, "done", cleanTerminalLine("progress 10%\rdone"))
	assert.Equal(t, "red", cleanTerminalLine("\x1b[31mred\x1b[0m"))
}

func TestKeyToPTYBytes(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []byte
	}{
		{"runes", keyMsg("ab"), []byte("ab")},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []byte{'\r'}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []byte{'\t'}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []byte{0x1b, '[', 'A'}},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, []byte{0x01}},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, []byte{0x04}},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyToPTYBytes(tt.msg))
		})
	}
}
