package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// paletteItem shows one command search result in the palette list.
type paletteItem struct {
	CommandResult
}

func (i paletteItem) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}

func (i paletteItem) Description() string { return i.Desc }
func (i paletteItem) FilterValue() string { return i.CommandID }

// CommandScreen is the command palette popup. Typing narrows the commands
// available where it was opened; the close, select, up and down actions come
// from the key registry.
type CommandScreen struct {
	s      *Session
	search func(query string) []CommandResult
	query  string
	input  textinput.Model
	list   list.Model
}

func NewCommandScreen(s *Session, search func(query string) []CommandResult) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "› "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	lst.DisableQuitKeybindings()
	c := &CommandScreen{s: s, search: search, input: inp, list: lst}
	c.refresh()
	return c
}

func (c *CommandScreen) Title() string { return "Commands" }
func (c *CommandScreen) Scope() string { return scopeCommand }
func (c *CommandScreen) Popup() bool   { return true }

func (c *CommandScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd, false
	}
	keys := c.s.Keys
	switch {
	case keys.IsAction(km, "close", scopeCommand):
		return c, nil, true
	case keys.IsAction(km, "select", scopeCommand):
		return c, c.run(), true
	case keys.IsAction(km, "up", scopeCommand):
		c.list.CursorUp()
		return c, nil, false
	case keys.IsAction(km, "down", scopeCommand):
		c.list.CursorDown()
		return c, nil, false
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(km)
	if q := strings.TrimSpace(c.input.Value()); q != c.query {
		c.query = q
		c.refresh()
	}
	return c, cmd, false
}

// run executes the highlighted command, or explains why it cannot run.
func (c *CommandScreen) run() tea.Cmd {
	it, ok := c.selected()
	if !ok {
		return nil
	}
	if it.Disabled {
		return StatusCmd(it.Reason)
	}
	id := it.CommandID
	return func() tea.Msg { return CommandExecuteMsg{CommandID: id} }
}

func (c *CommandScreen) refresh() {
	results := c.search(c.query)
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = paletteItem{r}
	}
	_ = c.list.SetItems(items)
	c.list.ResetSelected()
}

func (c *CommandScreen) selected() (CommandResult, bool) {
	it, ok := c.list.SelectedItem().(paletteItem)
	return it.CommandResult, ok
}

// delegate styles the list for the current display context. Descriptions are
// dropped at accessibility sizes so each command keeps one line.
func (c *CommandScreen) delegate() list.DefaultDelegate {
	p := c.s.Display.Palette()
	d := list.NewDefaultDelegate()
	d.ShowDescription = !c.s.Display.IsAccessibilitySize()
	if !d.ShowDescription {
		d.SetSpacing(0)
	}
	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(p.Text)
	d.Styles.NormalDesc = d.Styles.NormalDesc.Foreground(p.Secondary)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(p.Accent).BorderForeground(p.Accent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(p.Secondary).BorderForeground(p.Accent)
	return d
}

func (c *CommandScreen) View(width, height int) string {
	p := c.s.Display.Palette()
	c.list.SetDelegate(c.delegate())
	c.list.SetWidth(width)
	c.list.SetHeight(max(3, height-3))

	heading := lipgloss.NewStyle().Foreground(p.Text).Bold(true).Render("Commands")
	body := c.list.View()
	if len(c.list.Items()) == 0 {
		body = lipgloss.NewStyle().Foreground(p.Secondary).Render(fmt.Sprintf("No commands match %q", c.query))
	}
	return heading + "\n" + c.input.View() + "\n" + body
}
