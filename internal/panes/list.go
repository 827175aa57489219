package panes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"panedeck/internal/ui"
)

// ListItem is one entry of a ListPane.
type ListItem struct {
	Name string
	Desc string
}

func (i ListItem) Title() string       { return i.Name }
func (i ListItem) Description() string { return i.Desc }
func (i ListItem) FilterValue() string { return i.Name }

// ListPane is a cursor list. Enter calls OnChoose with the selected item.
type ListPane struct {
	title string
	list  list.Model
	// OnChoose is called when an item is chosen with enter.
	OnChoose func(ListItem)
	choose   key.Binding
}

var _ ui.Content = (*ListPane)(nil)

// NewListPane returns a list pane over items.
func NewListPane(title string, items []ListItem) *ListPane {
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = it
	}
	l := list.New(li, ui.NewCompactListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	return &ListPane{
		title:  title,
		list:   l,
		choose: key.NewBinding(key.WithKeys("enter")),
	}
}

func (p *ListPane) Title() string { return p.title }

// Selected returns the item under the cursor.
func (p *ListPane) Selected() (ListItem, bool) {
	it, ok := p.list.SelectedItem().(ListItem)
	return it, ok
}

// Index returns the cursor position.
func (p *ListPane) Index() int { return p.list.Index() }

// HandleKey moves the cursor or chooses the current item.
func (p *ListPane) HandleKey(msg tea.KeyMsg) bool {
	if key.Matches(msg, p.choose) {
		it, ok := p.Selected()
		if !ok || p.OnChoose == nil {
			return false
		}
		p.OnChoose(it)
		return true
	}
	km := p.list.KeyMap
	if !key.Matches(msg, km.CursorUp, km.CursorDown, km.PrevPage, km.NextPage, km.GoToStart, km.GoToEnd) {
		return false
	}
	p.list, _ = p.list.Update(msg)
	return true
}

// HandleMouse moves the cursor on wheel events.
func (p *ListPane) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.list.CursorUp()
	case tea.MouseButtonWheelDown:
		p.list.CursorDown()
	default:
		return false
	}
	return true
}

func (p *ListPane) Render(area ui.Rect, c *ui.Canvas) {
	p.list.SetSize(area.W, area.H)
	c.Draw(area, p.list.View())
}
