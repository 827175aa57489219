package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"panedeck/internal/config"
	"panedeck/internal/panes"
	"panedeck/internal/pty"
	"panedeck/internal/ui"
)

const introMarkdown = `# panedeck

Panes live in **tabs**. Each tab arranges its panes side by side, stacked or in a grid.

## Layout mode

- ` + "`h j k l`" + ` or arrows move the selection, ` + "`tab`" + ` cycles
- ` + "`enter`" + ` focuses the selected pane, ` + "`ctrl+a`" + ` comes back
- ` + "`+ -`" + ` resize, or drag a divider with the mouse
- ` + "`1`" + `-` + "`9`" + ` switch tabs, ` + "`?`" + ` shows every key, ` + "`q`" + ` quits

## Focus mode

Every key goes to the focused pane, ` + "`q`" + ` included.
`

const notesText = `The terminal pane only takes keys in focus mode.

Select it, press enter and type. Press ctrl+a to get back to layout mode.

Drag across this text with the mouse and press y to copy it.`

// demo holds what the demo tabs need cleaned up on exit.
type demo struct {
	closers []io.Closer
}

// Close releases watchers and PTY sessions.
func (d *demo) Close() error {
	var errs []error
	for _, c := range d.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// buildDemo adds the sample tabs to layout.
func buildDemo(layout *ui.MasterLayout, cfg config.Config) (*demo, error) {
	d := &demo{}

	doc := panes.NewMarkdownPane("Readme", introMarkdown)
	if cfg.Demo.Markdown != "" {
		md, err := panes.NewMarkdownFilePane(cfg.Demo.Markdown)
		if err != nil {
			return nil, fmt.Errorf("demo markdown: %w", err)
		}
		doc = md
	}
	d.closers = append(d.closers, doc)

	files, err := listDir(".")
	if err != nil {
		return nil, err
	}
	workspace := ui.NewTab("Workspace", ui.Horizontal(30))
	browser := panes.NewListPane("Files", files)
	browser.OnChoose = func(it panes.ListItem) {
		if err := openFile(doc, it.Name); err != nil {
			workspace.Footer().SetText(err.Error())
			return
		}
		workspace.SetName("Workspace:" + it.Name)
		workspace.Footer().SetText("opened " + it.Name)
	}
	workspace.AddPane(browser)
	workspace.AddPane(doc)
	layout.AddTab(workspace)

	term := panes.NewTerminalPane("Shell", &pty.CreackPTY{}, cfg.Demo.Shell, "")
	d.closers = append(d.closers, term)
	terminal := ui.NewTab("Terminal", ui.Vertical(60))
	terminal.AddPane(term)
	terminal.AddPane(panes.NewTextPane("Notes", notesText))
	layout.AddTab(terminal)

	status := panes.NewStatusPane("Status")
	status.Set("auto focus", strconv.FormatBool(layout.AutoFocus()))
	status.Set("dividers", fmt.Sprintf("%d%%-%d%%", cfg.UI.MinPercent, cfg.UI.MaxPercent))
	status.Set("config", config.DefaultPath())

	grid := ui.NewTab("Grid", ui.Grid(2, 2))
	grid.AddPane(panes.NewTextPane("Keys", strings.Join(ui.ActionNames(), "\n")))
	grid.AddPane(status)
	grid.AddPane(panes.NewTextPane("Scratch", ""))
	grid.AddPane(panes.NewListPane("Colors", []panes.ListItem{
		{Name: "accent"}, {Name: "highlight"}, {Name: "muted"}, {Name: "warning"},
	}))
	layout.AddTab(grid)
	status.Set("tabs", strconv.Itoa(layout.TabCount()))

	return d, nil
}

// listDir returns the regular files of dir, sorted by name.
func listDir(dir string) ([]panes.ListItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var items []panes.ListItem
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		items = append(items, panes.ListItem{Name: e.Name()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// openFile shows path in the markdown pane. Other files are shown as a
// code block.
func openFile(doc *panes.MarkdownPane, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".md") {
		doc.SetSource(string(data))
		return nil
	}
	lang := strings.TrimPrefix(filepath.Ext(path), ".")
	doc.SetSource("```" + lang + "\n" + string(data) + "\n```")
	return nil
}
