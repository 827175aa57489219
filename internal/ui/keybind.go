package ui

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnknownAction is returned by Override for an action name that has no binding.
var ErrUnknownAction = errors.New("unknown key action")

// TabSwitchCount is the number of tab switch bindings (keys 1 through 9).
const TabSwitchCount = 9

// KeyBindings maps keys to engine actions. It is plain data; the match
// methods never change it.
type KeyBindings struct {
	Quit           key.Binding
	FocusPane      key.Binding
	ExitFocus      key.Binding
	Deselect       key.Binding
	ClearSelection key.Binding
	CopySelection  key.Binding
	Left           key.Binding
	Down           key.Binding
	Up             key.Binding
	Right          key.Binding
	NextPane       key.Binding
	PrevPane       key.Binding
	GrowPane       key.Binding
	ShrinkPane     key.Binding
	Help           key.Binding
	TabSwitch      [TabSwitchCount]key.Binding
}

// DefaultKeyBindings returns the stock bindings.
func DefaultKeyBindings() KeyBindings {
	kb := KeyBindings{
		Quit:           key.NewBinding(key.WithKeys("q", "Q", "ctrl+q"), key.WithHelp("q", "quit")),
		FocusPane:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "focus")),
		ExitFocus:      key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "exit focus")),
		Deselect:       key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "deselect")),
		ClearSelection: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		CopySelection:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Left:           key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Down:           key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Up:             key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Right:          key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		NextPane:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		GrowPane:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow")),
		ShrinkPane:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
	for i := range kb.TabSwitch {
		n := strconv.Itoa(i + 1)
		kb.TabSwitch[i] = key.NewBinding(key.WithKeys(n), key.WithHelp(n, "tab "+n))
	}
	return kb
}

func (kb KeyBindings) IsQuit(msg tea.KeyMsg) bool { return key.Matches(msg, kb.Quit) }
func (kb KeyBindings) IsFocus(msg tea.KeyMsg) bool { return key.Matches(msg, kb.FocusPane) }
func (kb KeyBindings) IsExitFocus(msg tea.KeyMsg) bool { return key.Matches(msg, kb.ExitFocus) }
func (kb KeyBindings) IsDeselect(msg tea.KeyMsg) bool { return key.Matches(msg, kb.Deselect) }
func (kb KeyBindings) IsClearSelection(msg tea.KeyMsg) bool {
	return key.Matches(msg, kb.ClearSelection)
}
func (kb KeyBindings) IsCopySelection(msg tea.KeyMsg) bool {
	return key.Matches(msg, kb.CopySelection)
}
func (kb KeyBindings) IsHelp(msg tea.KeyMsg) bool { return key.Matches(msg, kb.Help) }

// ResizeDelta returns the percent step for grow/shrink keys.
func (kb KeyBindings) ResizeDelta(msg tea.KeyMsg) (int, bool) {
	switch {
	case key.Matches(msg, kb.GrowPane):
		return resizeStep, true
	case key.Matches(msg, kb.ShrinkPane):
		return -resizeStep, true
	}
	return 0, false
}

// resizeStep is how far one grow/shrink key press moves a divider, in percent.
const resizeStep = 5

// TabIndex returns the zero-based tab index for a tab switch key.
func (kb KeyBindings) TabIndex(msg tea.KeyMsg) (int, bool) {
	for i, b := range kb.TabSwitch {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return -1, false
}

// Navigation is a pane selection move requested by a key.
type Navigation int

const (
	NavNone Navigation = iota
	NavLeft
	NavDown
	NavUp
	NavRight
	NavNext
	NavPrev
)

// Navigation classifies msg as a selection move.
func (kb KeyBindings) Navigation(msg tea.KeyMsg) Navigation {
	switch {
	case key.Matches(msg, kb.Left):
		return NavLeft
	case key.Matches(msg, kb.Down):
		return NavDown
	case key.Matches(msg, kb.Up):
		return NavUp
	case key.Matches(msg, kb.Right):
		return NavRight
	case key.Matches(msg, kb.NextPane):
		return NavNext
	case key.Matches(msg, kb.PrevPane):
		return NavPrev
	}
	return NavNone
}

// IsNavigation reports whether msg moves the selection.
func (kb KeyBindings) IsNavigation(msg tea.KeyMsg) bool {
	return kb.Navigation(msg) != NavNone
}

// bindings names every action for Override and the help overlay.
func (kb *KeyBindings) bindings() map[string]*key.Binding {
	m := map[string]*key.Binding{
		"quit":            &kb.Quit,
		"focus_pane":      &kb.FocusPane,
		"exit_focus":      &kb.ExitFocus,
		"deselect":        &kb.Deselect,
		"clear_selection": &kb.ClearSelection,
		"copy_selection":  &kb.CopySelection,
		"left":            &kb.Left,
		"down":            &kb.Down,
		"up":              &kb.Up,
		"right":           &kb.Right,
		"next_pane":       &kb.NextPane,
		"prev_pane":       &kb.PrevPane,
		"grow_pane":       &kb.GrowPane,
		"shrink_pane":     &kb.ShrinkPane,
		"help":            &kb.Help,
	}
	for i := range kb.TabSwitch {
		m["tab_"+strconv.Itoa(i+1)] = &kb.TabSwitch[i]
	}
	return m
}

// ActionNames returns every action name accepted by Override, sorted.
func ActionNames() []string {
	var kb KeyBindings
	names := make([]string, 0, len(kb.bindings()))
	for name := range kb.bindings() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Override replaces the keys of the named actions. An empty key list
// disables the action. Unknown names are reported together, wrapping
// ErrUnknownAction; known names in the same call are still applied.
func (kb *KeyBindings) Override(keys map[string][]string) error {
	named := kb.bindings()
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		b, ok := named[strings.ToLower(name)]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownAction, name))
			continue
		}
		ks := keys[name]
		if len(ks) == 0 {
			b.SetEnabled(false)
			continue
		}
		desc := b.Help().Desc
		b.SetKeys(ks...)
		b.SetHelp(strings.Join(ks, "/"), desc)
		b.SetEnabled(true)
	}
	return errors.Join(errs...)
}

// KeyMap returns the help.KeyMap describing the keys that apply in mode.
func (kb KeyBindings) KeyMap(mode Mode) help.KeyMap {
	return modeKeyMap{kb: kb, focus: IsFocus(mode)}
}

// modeKeyMap implements help.KeyMap for one interaction mode.
type modeKeyMap struct {
	kb    KeyBindings
	focus bool
}

// ShortHelp returns the footer hints.
func (m modeKeyMap) ShortHelp() []key.Binding {
	if m.focus {
		return []key.Binding{m.kb.ExitFocus}
	}
	return []key.Binding{m.kb.NextPane, m.kb.FocusPane, m.kb.GrowPane, m.kb.ShrinkPane, m.kb.Help, m.kb.Quit}
}

// FullHelp returns bindings grouped by columns for the help overlay.
func (m modeKeyMap) FullHelp() [][]key.Binding {
	if m.focus {
		return [][]key.Binding{{m.kb.ExitFocus}}
	}
	tabs := key.NewBinding(
		key.WithKeys(m.kb.TabSwitch[0].Keys()...),
		key.WithHelp(m.kb.TabSwitch[0].Help().Key+"-"+m.kb.TabSwitch[TabSwitchCount-1].Help().Key, "switch tab"),
	)
	return [][]key.Binding{
		{m.kb.Left, m.kb.Down, m.kb.Up, m.kb.Right},
		{m.kb.NextPane, m.kb.PrevPane, m.kb.FocusPane, m.kb.ExitFocus},
		{m.kb.GrowPane, m.kb.ShrinkPane, tabs},
		{m.kb.ClearSelection, m.kb.CopySelection, m.kb.Help, m.kb.Quit},
	}
}
