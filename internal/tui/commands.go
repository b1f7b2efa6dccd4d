package tui

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nutritionlabel/internal/display"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		h := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if q != "" && !strings.Contains(h, q) {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// DefaultCommands opens every catalog feature and flips every display setting.
func DefaultCommands(s *Session) []Command {
	cmds := []Command{
		{
			ID: "display:settings", Name: "Display Settings", Description: "Text size, appearance, contrast and motion",
			Execute: func(m *Model) tea.Cmd { return pushCmd(NewSettingsScreen(m.session)) },
		},
		{
			ID: "display:larger", Name: "Larger Text", Description: "Step the text size up",
			Execute: func(m *Model) tea.Cmd {
				return m.session.changeDisplay(func(c *display.Context) { c.TextSize = c.TextSize.Larger() })
			},
			Disabled: func(m *Model) (bool, string) {
				return m.session.Display.TextSize == display.Accessibility5, "Already at the largest size"
			},
		},
		{
			ID: "display:smaller", Name: "Smaller Text", Description: "Step the text size down",
			Execute: func(m *Model) tea.Cmd {
				return m.session.changeDisplay(func(c *display.Context) { c.TextSize = c.TextSize.Smaller() })
			},
			Disabled: func(m *Model) (bool, string) {
				return m.session.Display.TextSize == display.XSmall, "Already at the smallest size"
			},
		},
		{
			ID: "display:scheme", Name: "Toggle Dark Interface", Description: "Switch between light and dark",
			Execute: func(m *Model) tea.Cmd {
				return m.session.changeDisplay(func(c *display.Context) {
					c.ColorScheme = display.Light + display.Dark - c.ColorScheme
				})
			},
		},
		{
			ID: "display:contrast", Name: "Toggle Increase Contrast", Description: "Standard or increased contrast",
			Execute: func(m *Model) tea.Cmd {
				return m.session.changeDisplay(func(c *display.Context) {
					c.Contrast = display.StandardContrast + display.IncreasedContrast - c.Contrast
				})
			},
		},
		{
			ID: "display:reduce-motion", Name: "Toggle Reduce Motion", Description: "Disable spring animations and fades",
			Execute: func(m *Model) tea.Cmd {
				return m.session.changeDisplay(func(c *display.Context) { c.ReduceMotion = !c.ReduceMotion })
			},
		},
		{
			ID: "display:differentiate", Name: "Toggle Differentiate Without Color", Description: "Show icons next to status colors",
			Execute: func(m *Model) tea.Cmd {
				return m.session.changeDisplay(func(c *display.Context) { c.DifferentiateWithoutColor = !c.DifferentiateWithoutColor })
			},
		},
		{
			ID: "history:clear", Name: "Clear History", Description: "Forget recently viewed features and favorites",
			Execute: func(m *Model) tea.Cmd { return m.session.clearHistory() },
			Disabled: func(m *Model) (bool, string) {
				return !m.session.HasHistory(), "Nothing to clear"
			},
		},
		{
			ID: "app:quit", Name: "Quit", Description: "Leave Nutrition Label",
			Execute: func(m *Model) tea.Cmd { m.quitting = true; return tea.Quit },
		},
	}
	for _, f := range s.Catalog.All() {
		id := f.ID
		cmds = append(cmds, Command{
			ID:          "open:" + string(id),
			Name:        "Open " + f.Name,
			Description: f.ShortDescription,
			Execute:     func(*Model) tea.Cmd { return openCmd(id) },
		})
	}
	return cmds
}
