package ui

import tea "github.com/charmbracelet/bubbletea"

// Program runs a MasterLayout as a Bubble Tea model. Key, pointer and resize
// messages go through the event-routing protocol; any other message is
// offered to every content that implements Updater.
type Program struct {
	Layout *MasterLayout
}

// NewProgram wraps layout.
func NewProgram(layout *MasterLayout) *Program {
	return &Program{Layout: layout}
}

// Ensure Program can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps Program to implement tea.Model.
type appModelAdapter struct {
	*Program
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (p *Program) AsTeaModel() tea.Model {
	return &appModelAdapter{Program: p}
}

// contents returns every pane content across all tabs.
func (p *Program) contents() []Content {
	var out []Content
	for i := 0; i < p.Layout.TabCount(); i++ {
		tab, _ := p.Layout.Tab(i)
		for _, pane := range tab.Container().Panes() {
			out = append(out, pane.Content())
		}
	}
	return out
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range a.contents() {
		if in, ok := c.(Initializer); ok {
			cmds = append(cmds, in.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg, tea.WindowSizeMsg:
		if a.Layout.HandleEvent(msg) == Quit {
			return a, tea.Quit
		}
		return a, nil
	}

	var cmds []tea.Cmd
	for _, c := range a.contents() {
		if u, ok := c.(Updater); ok {
			cmds = append(cmds, u.Update(msg))
		}
	}
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	area := a.Layout.Area()
	if area.Empty() {
		return ""
	}
	c := NewCanvas(area.W, area.H)
	a.Layout.Render(c)
	return c.String()
}
