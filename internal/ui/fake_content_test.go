package ui

import tea "github.com/charmbracelet/bubbletea"

// fakeContent records what the engine sends it.
type fakeContent struct {
	title        string
	notFocusable bool
	needsFocus   bool
	consume      bool

	keys    []string
	mouse   []tea.MouseMsg
	focused bool

	selecting  bool
	hasSel     bool
	selStart   [2]int
	selUpdates [][2]int
	selEnded   bool

	initCalled bool
	updates    []tea.Msg
}

func newFake(title string) *fakeContent {
	return &fakeContent{title: title, consume: true}
}

func (f *fakeContent) HandleKey(msg tea.KeyMsg) bool {
	f.keys = append(f.keys, msg.String())
	return f.consume
}

func (f *fakeContent) HandleMouse(msg tea.MouseMsg) bool {
	f.mouse = append(f.mouse, msg)
	return f.consume
}

func (f *fakeContent) Title() string { return f.title }

func (f *fakeContent) Render(area Rect, c *Canvas) {
	c.Draw(area, f.title+" body")
}

func (f *fakeContent) Focusable() bool { return !f.notFocusable }

func (f *fakeContent) RequiresFocusMode() bool { return f.needsFocus }

func (f *fakeContent) SetFocused(focused bool) { f.focused = focused }

func (f *fakeContent) HasSelection() bool { return f.hasSel }

func (f *fakeContent) StartSelection(x, y int) {
	f.selecting = true
	f.selStart = [2]int{x, y}
}

func (f *fakeContent) UpdateSelection(x, y int) {
	f.selUpdates = append(f.selUpdates, [2]int{x, y})
	f.hasSel = true
}

func (f *fakeContent) EndSelection() {
	f.selecting = false
	f.selEnded = true
}

func (f *fakeContent) SelectedText() (string, bool) {
	if !f.hasSel {
		return "", false
	}
	return "text", true
}

func (f *fakeContent) ClearSelection() { f.hasSel = false }

func (f *fakeContent) Init() tea.Cmd {
	f.initCalled = true
	return nil
}

func (f *fakeContent) Update(msg tea.Msg) tea.Cmd {
	f.updates = append(f.updates, msg)
	return nil
}

// plainContent implements only the required Content methods.
type plainContent struct{ title string }

func (p plainContent) HandleKey(tea.KeyMsg) bool     { return false }
func (p plainContent) HandleMouse(tea.MouseMsg) bool { return false }
func (p plainContent) Title() string                 { return p.title }
func (p plainContent) Render(area Rect, c *Canvas)   { c.Draw(area, p.title) }
