package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"panedeck/internal/logging"
)

var uiLog = logging.New("ui")

// EventResult tells the embedder what happened to an event.
type EventResult int

const (
	// NotHandled means no handler used the event; an outer dispatcher may try.
	NotHandled EventResult = iota
	// Consumed means the event was used.
	Consumed
	// Quit means the application should exit.
	Quit
)

func (r EventResult) String() string {
	switch r {
	case NotHandled:
		return "not_handled"
	case Consumed:
		return "consumed"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// MasterLayout is the top of the engine: ordered tabs, the navigation bar,
// the interaction mode, key bindings and the event-routing protocol.
//
// It is not safe for concurrent use; events and renders are expected to
// arrive one at a time from the program loop.
type MasterLayout struct {
	tabs   []*Tab
	active int
	navBar NavigationBar

	mode      Mode
	keys      KeyBindings
	autoFocus bool
	area      Rect
	help      *Overlay

	minPercent, maxPercent int

	tracer trace.Tracer
	log    *slog.Logger
}

// Option configures a MasterLayout.
type Option func(*MasterLayout)

// WithKeyBindings replaces the default key bindings.
func WithKeyBindings(kb KeyBindings) Option {
	return func(m *MasterLayout) { m.keys = kb }
}

// WithAutoFocus sets the auto-focus flag.
func WithAutoFocus(enabled bool) Option {
	return func(m *MasterLayout) { m.autoFocus = enabled }
}

// WithDividerBounds sets the divider clamp range for every tab added later.
func WithDividerBounds(minPercent, maxPercent int) Option {
	return func(m *MasterLayout) { m.minPercent, m.maxPercent = minPercent, maxPercent }
}

// WithTracer sets the tracer used for event spans.
func WithTracer(t trace.Tracer) Option {
	return func(m *MasterLayout) { m.tracer = t }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *MasterLayout) { m.log = l }
}

// NewMasterLayout returns an empty layout in Layout mode with nothing selected.
func NewMasterLayout(opts ...Option) *MasterLayout {
	m := &MasterLayout{
		mode:       LayoutMode{},
		keys:       DefaultKeyBindings(),
		minPercent: DefaultMinPercent,
		maxPercent: DefaultMaxPercent,
		tracer:     otel.Tracer("panedeck/ui"),
		log:        uiLog,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.help = NewOverlay(func(width int) string { return RenderKeybindHelp(m.keys, width) })
	return m
}

// Mode returns the current interaction mode.
func (m *MasterLayout) Mode() Mode { return m.mode }

func (m *MasterLayout) setMode(next Mode) {
	if next == m.mode {
		return
	}
	m.log.Debug("mode change", "from", describeMode(m.mode), "to", describeMode(next))
	m.mode = next
	if IsFocus(next) {
		if c, ok := m.container(); ok {
			c.StopDrag()
		}
	}
}

func describeMode(mode Mode) string {
	if id, ok := ActivePane(mode); ok {
		return mode.String() + "(" + id.String() + ")"
	}
	return mode.String()
}

func (m *MasterLayout) AutoFocus() bool { return m.autoFocus }

// HelpVisible reports whether the hotkey overlay is open.
func (m *MasterLayout) HelpVisible() bool { return m.help.Visible() }

// AddTab appends a tab and returns its index. The first tab becomes active
// with its first focusable pane selected; later tabs leave the mode alone.
func (m *MasterLayout) AddTab(t *Tab) int {
	if t == nil {
		return -1
	}
	t.Container().SetDividerBounds(m.minPercent, m.maxPercent)
	m.tabs = append(m.tabs, t)
	if len(m.tabs) == 1 {
		m.active = 0
		m.selectFirstPane()
	}
	return len(m.tabs) - 1
}

// RemoveTab drops the tab at i. Removing the active tab activates its
// successor (or the new last tab) with its first focusable pane selected.
func (m *MasterLayout) RemoveTab(i int) bool {
	if i < 0 || i >= len(m.tabs) {
		m.log.Debug("remove tab out of range", "index", i, "count", len(m.tabs))
		return false
	}
	wasActive := i == m.active
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	if i < m.active {
		m.active--
	}
	m.active = clampInt(m.active, 0, max(len(m.tabs)-1, 0))
	if wasActive {
		m.selectFirstPane()
	}
	return true
}

// SetActiveTab switches to tab i in Layout mode with its first focusable pane
// selected. Out-of-range indices are ignored.
func (m *MasterLayout) SetActiveTab(i int) bool {
	if i < 0 || i >= len(m.tabs) {
		m.log.Debug("tab index out of range", "index", i, "count", len(m.tabs))
		return false
	}
	if prev, ok := m.ActiveTab(); ok {
		prev.Container().StopDrag()
		prev.Container().ClearHover()
	}
	m.active = i
	m.selectFirstPane()
	return true
}

// selectFirstPane puts the active tab in Layout mode with its first
// focusable pane selected, or nothing selected.
func (m *MasterLayout) selectFirstPane() {
	tab, ok := m.ActiveTab()
	if !ok {
		m.setMode(LayoutMode{})
		return
	}
	first, _ := tab.Container().FirstFocusable()
	m.setMode(LayoutMode{Selected: first})
}

// ActiveTab returns the active tab, if any.
func (m *MasterLayout) ActiveTab() (*Tab, bool) {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil, false
	}
	return m.tabs[m.active], true
}

func (m *MasterLayout) ActiveTabIndex() int { return m.active }

func (m *MasterLayout) TabCount() int { return len(m.tabs) }

// Tab returns the tab at index i.
func (m *MasterLayout) Tab(i int) (*Tab, bool) {
	if i < 0 || i >= len(m.tabs) {
		return nil, false
	}
	return m.tabs[i], true
}

// activePane looks up id in the active tab.
func (m *MasterLayout) activePane(id PaneID) (*Pane, bool) {
	tab, ok := m.ActiveTab()
	if !ok {
		return nil, false
	}
	return tab.Container().Pane(id)
}

func (m *MasterLayout) container() (*PaneContainer, bool) {
	tab, ok := m.ActiveTab()
	if !ok {
		return nil, false
	}
	return tab.Container(), true
}

// SelectPane selects a focusable pane of the active tab in Layout mode.
func (m *MasterLayout) SelectPane(id PaneID) bool {
	if _, ok := m.mode.(LayoutMode); !ok {
		return false
	}
	p, ok := m.activePane(id)
	if !ok || !p.IsFocusable() {
		m.log.Debug("select ignored", "pane", id)
		return false
	}
	m.setMode(LayoutMode{Selected: id})
	return true
}

// EnterFocusMode focuses a focusable pane of the active tab.
func (m *MasterLayout) EnterFocusMode(id PaneID) bool {
	p, ok := m.activePane(id)
	if !ok || !p.IsFocusable() {
		m.log.Debug("focus ignored", "pane", id)
		return false
	}
	m.setMode(FocusMode{Focused: id})
	return true
}

// ExitFocusMode returns to Layout mode with the focused pane selected.
func (m *MasterLayout) ExitFocusMode() bool {
	f, ok := m.mode.(FocusMode)
	if !ok {
		return false
	}
	m.setMode(f.Exit())
	return true
}

// EnterLayoutMode makes sure the layout is in Layout mode. A focused pane
// stays selected.
func (m *MasterLayout) EnterLayoutMode() {
	m.ExitFocusMode()
}

// FocusSelected focuses the selected pane. Without a selection nothing happens.
func (m *MasterLayout) FocusSelected() bool {
	l, ok := m.mode.(LayoutMode)
	if !ok {
		return false
	}
	if _, ok := m.activePane(l.Selected); !ok {
		return false
	}
	next, ok := l.Focus()
	if ok {
		m.setMode(next)
	}
	return ok
}

// Deselect clears the selection in Layout mode.
func (m *MasterLayout) Deselect() {
	if l, ok := m.mode.(LayoutMode); ok {
		m.setMode(l.Deselect())
	}
}

func (m *MasterLayout) SelectNextPane() bool { return m.navigate(NavNext) }
func (m *MasterLayout) SelectPrevPane() bool { return m.navigate(NavPrev) }
func (m *MasterLayout) SelectLeft() bool { return m.navigate(NavLeft) }
func (m *MasterLayout) SelectRight() bool { return m.navigate(NavRight) }
func (m *MasterLayout) SelectUp() bool { return m.navigate(NavUp) }
func (m *MasterLayout) SelectDown() bool { return m.navigate(NavDown) }

// navigate moves the selection in Layout mode. Directional moves need a
// current selection; next/prev start from the first or last pane.
func (m *MasterLayout) navigate(nav Navigation) bool {
	l, ok := m.mode.(LayoutMode)
	if !ok {
		return false
	}
	c, ok := m.container()
	if !ok {
		return false
	}
	var next PaneID
	switch nav {
	case NavNext:
		next, ok = c.SelectNext(l.Selected)
	case NavPrev:
		next, ok = c.SelectPrev(l.Selected)
	case NavLeft:
		next, ok = c.SelectLeft(l.Selected)
	case NavRight:
		next, ok = c.SelectRight(l.Selected)
	case NavUp:
		next, ok = c.SelectUp(l.Selected)
	case NavDown:
		next, ok = c.SelectDown(l.Selected)
	default:
		return false
	}
	if !ok {
		return false
	}
	m.setMode(l.Select(next))
	return true
}

// HandleEvent routes one event and records a span for it.
func (m *MasterLayout) HandleEvent(msg tea.Msg) EventResult {
	_, span := m.tracer.Start(context.Background(), "ui.HandleEvent")
	defer span.End()

	kind := "other"
	result := NotHandled
	switch msg := msg.(type) {
	case tea.KeyMsg:
		kind = "key"
		result = m.HandleKey(msg)
	case tea.MouseMsg:
		kind = "mouse"
		result = m.HandleMouse(msg)
	case tea.WindowSizeMsg:
		kind = "resize"
		m.Resize(msg.Width, msg.Height)
		result = Consumed
	}

	span.SetAttributes(
		attribute.String("ui.event", kind),
		attribute.String("ui.mode", m.mode.String()),
		attribute.String("ui.result", result.String()),
	)
	return result
}

// Resize records the screen size and lays out the active tab, so pointer
// events can be routed before the next render.
func (m *MasterLayout) Resize(width, height int) {
	m.area = Rect{W: max(width, 0), H: max(height, 0)}
	m.layout()
}

// Area returns the last screen rectangle.
func (m *MasterLayout) Area() Rect { return m.area }

func (m *MasterLayout) navArea() Rect {
	return Rect{X: m.area.X, Y: m.area.Y, W: m.area.W, H: min(NavBarHeight, m.area.H)}
}

func (m *MasterLayout) tabArea() Rect {
	nav := m.navArea()
	return Rect{X: m.area.X, Y: nav.Bottom(), W: m.area.W, H: m.area.H - nav.H}
}

func (m *MasterLayout) tabNames() []string {
	names := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		names[i] = t.Name()
	}
	return names
}

func (m *MasterLayout) layout() {
	m.navBar.Layout(m.navArea(), m.tabNames())
	if tab, ok := m.ActiveTab(); ok {
		tab.Layout(m.tabArea())
	}
}

// Render draws a full frame: navigation band on top, the active tab below
// and the help overlay when open.
func (m *MasterLayout) Render(c *Canvas) {
	m.area = c.Bounds()
	m.navBar.Layout(m.navArea(), m.tabNames())
	m.navBar.Render(c, m.active)

	body := m.tabArea()
	if tab, ok := m.ActiveTab(); ok {
		tab.Render(c, body, m.mode, m.keys)
	} else {
		c.Draw(body, Styles.Empty.Render("no tabs"))
	}
	m.help.Render(c, body)
}
