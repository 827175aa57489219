package panes

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"panedeck/internal/pty"
	"panedeck/internal/ui"
)

// scrollbackLines caps how much terminal output is kept.
const scrollbackLines = 2000

var lastTerminalID atomic.Uint64

// TerminalOutputMsg carries bytes read from a terminal pane's PTY.
type TerminalOutputMsg struct {
	ID   uint64
	Data []byte
}

// TerminalExitedMsg is sent when a terminal pane's command ends.
type TerminalExitedMsg struct {
	ID uint64
}

// TerminalPane runs a command in a PTY and shows its output. Keys only
// reach it in focus mode, so shells get q, hjkl and the rest untouched.
type TerminalPane struct {
	id      uint64
	title   string
	shell   string
	workDir string
	runner  pty.Runner
	session *pty.Session

	lines   []string
	partial string
	scroll  int // lines scrolled back from the bottom
	exited  bool
	failure string
	focused bool
	height  int
}

var (
	_ ui.Content           = (*TerminalPane)(nil)
	_ ui.FocusModeRequirer = (*TerminalPane)(nil)
	_ ui.Initializer       = (*TerminalPane)(nil)
	_ ui.Updater           = (*TerminalPane)(nil)
	_ ui.FocusAware        = (*TerminalPane)(nil)
)

// NewTerminalPane returns a pane that will run shell in workDir when the
// program starts. An empty shell picks $SHELL, then bash, then sh.
func NewTerminalPane(title string, runner pty.Runner, shell, workDir string) *TerminalPane {
	return &TerminalPane{
		id:      lastTerminalID.Add(1),
		title:   title,
		shell:   shell,
		workDir: workDir,
		runner:  runner,
	}
}

func resolveShell(shell string) string {
	if shell != "" {
		return shell
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env
	}
	if path, err := exec.LookPath("bash"); err == nil {
		return path
	}
	return "sh"
}

func (t *TerminalPane) Title() string {
	if t.exited {
		return t.title + " [exited]"
	}
	return t.title
}

func (t *TerminalPane) RequiresFocusMode() bool { return true }

func (t *TerminalPane) SetFocused(focused bool) { t.focused = focused }

// Init spawns the command and starts streaming its output.
func (t *TerminalPane) Init() tea.Cmd {
	cmd := exec.Command(resolveShell(t.shell))
	cmd.Dir = t.workDir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}
	cmd.Env = append(os.Environ(), "TERM=dumb")

	s, err := pty.Spawn(context.Background(), t.runner, cmd, pty.SizeOf(80, 24))
	if err != nil {
		log.Error("spawn terminal", "shell", cmd.Path, "error", err)
		t.failure = "Failed to spawn shell: " + err.Error()
		return nil
	}
	t.session = s
	return t.waitForOutput()
}

func (t *TerminalPane) waitForOutput() tea.Cmd {
	s, id := t.session, t.id
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		data, ok := <-s.Output()
		if !ok {
			return TerminalExitedMsg{ID: id}
		}
		return TerminalOutputMsg{ID: id, Data: data}
	}
}

// Update consumes this pane's output messages.
func (t *TerminalPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TerminalOutputMsg:
		if msg.ID != t.id {
			return nil
		}
		t.write(msg.Data)
		return t.waitForOutput()
	case TerminalExitedMsg:
		if msg.ID != t.id {
			return nil
		}
		t.exited = true
		return nil
	}
	return nil
}

// write appends output, keeping an unterminated last line pending.
func (t *TerminalPane) write(data []byte) {
	text := t.partial + strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.Split(text, "\n")
	t.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		t.lines = append(t.lines, cleanTerminalLine(line))
	}
	if over := len(t.lines) - scrollbackLines; over > 0 {
		t.lines = t.lines[over:]
	}
}

// cleanTerminalLine drops escape sequences and keeps the text after the
// last carriage return, which is what a terminal would show.
func cleanTerminalLine(line string) string {
	line = ansi.Strip(line)
	if i := strings.LastIndexByte(line, '\r'); i >= 0 {
		line = line[i+1:]
	}
	return line
}

// Output returns the visible scrollback, including the pending line.
func (t *TerminalPane) Output() []string {
	out := append([]string(nil), t.lines...)
	if t.partial != "" {
		out = append(out, cleanTerminalLine(t.partial))
	}
	return out
}

// HandleKey sends the key to the PTY.
func (t *TerminalPane) HandleKey(msg tea.KeyMsg) bool {
	if t.session == nil || t.exited {
		return false
	}
	b := keyToPTYBytes(msg)
	if len(b) == 0 {
		return false
	}
	if _, err := t.session.Write(b); err != nil {
		log.Warn("terminal write", "pane", t.title, "error", err)
		return false
	}
	t.scroll = 0
	return true
}

// HandleMouse scrolls the scrollback on wheel events.
func (t *TerminalPane) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		t.scroll = min(t.scroll+wheelStep, max(len(t.Output())-t.height, 0))
	case tea.MouseButtonWheelDown:
		t.scroll = max(t.scroll-wheelStep, 0)
	default:
		return false
	}
	return true
}

// Render shows the tail of the output and keeps the PTY sized to the pane.
func (t *TerminalPane) Render(area ui.Rect, c *ui.Canvas) {
	t.height = area.H
	if t.session != nil && !t.exited {
		if err := t.session.Resize(pty.SizeOf(area.W, area.H)); err != nil {
			log.Debug("terminal resize", "error", err)
		}
	}
	if t.failure != "" {
		c.Draw(area, ui.Styles.Error.Render(t.failure))
		return
	}
	out := t.Output()
	end := max(len(out)-t.scroll, 0)
	start := max(end-area.H, 0)
	c.Draw(area, strings.Join(out[start:end], "\n"))
}

// Close ends the PTY session.
func (t *TerminalPane) Close() error {
	if t.session == nil {
		return nil
	}
	return t.session.Close()
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	}
	// Control keys map to their ASCII codes (ctrl+a = 0x01 ... ctrl+z = 0x1a).
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []byte{byte(msg.Type)}
	}
	if len(msg.Runes) > 0 {
		return []byte(string(msg.Runes))
	}
	return nil
}
