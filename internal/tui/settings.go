package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
	"github.com/jask/nutritionlabel/internal/widgets"
)

const (
	settingTextSize = iota
	settingScheme
	settingContrast
	settingReduceMotion
	settingDifferentiate
	settingCount
)

// SettingsScreen edits the display context. Changes apply as they are made;
// the app saves them when the popup closes.
type SettingsScreen struct {
	s       *Session
	cursor  int
	changed bool
}

func NewSettingsScreen(s *Session) *SettingsScreen {
	return &SettingsScreen{s: s}
}

func (m *SettingsScreen) Title() string { return "Display Settings" }
func (m *SettingsScreen) Scope() string { return scopeSettings }
func (m *SettingsScreen) Popup() bool   { return true }

func (m *SettingsScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	keys, scope := m.s.Keys, m.Scope()
	switch {
	case keys.IsAction(km, "close", scope):
		changed := m.changed
		return m, func() tea.Msg { return settingsClosedMsg{changed: changed} }, true
	case keys.IsAction(km, "down", scope):
		m.cursor = (m.cursor + 1) % settingCount
	case keys.IsAction(km, "up", scope):
		m.cursor = (m.cursor + settingCount - 1) % settingCount
	case keys.IsAction(km, "toggle", scope), keys.IsAction(km, "increase", scope):
		m.adjust(1)
	case keys.IsAction(km, "decrease", scope):
		m.adjust(-1)
	}
	return m, nil, false
}

// adjust steps the text size by dir or flips the selected switch.
func (m *SettingsScreen) adjust(dir int) {
	c := &m.s.Display
	before := *c
	switch m.cursor {
	case settingTextSize:
		if dir > 0 {
			c.TextSize = c.TextSize.Larger()
		} else {
			c.TextSize = c.TextSize.Smaller()
		}
	case settingScheme:
		c.ColorScheme = display.Light + display.Dark - c.ColorScheme
	case settingContrast:
		c.Contrast = display.StandardContrast + display.IncreasedContrast - c.Contrast
	case settingReduceMotion:
		c.ReduceMotion = !c.ReduceMotion
	case settingDifferentiate:
		c.DifferentiateWithoutColor = !c.DifferentiateWithoutColor
	}
	if *c != before {
		m.changed = true
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func (m *SettingsScreen) View(width, height int) string {
	c := m.s.Display
	st := newStyles(c)
	scheme := "Light"
	if c.ColorScheme == display.Dark {
		scheme = "Dark"
	}
	rows := []struct{ label, value string }{
		{"Text Size", "‹ " + c.TextSize.String() + " ›"},
		{"Appearance", scheme},
		{"Increase Contrast", onOff(c.Contrast == display.IncreasedContrast)},
		{"Reduce Motion", onOff(c.ReduceMotion)},
		{"Differentiate Without Color", onOff(c.DifferentiateWithoutColor)},
	}
	inner := max(20, min(width, 52))
	lines := []string{st.title.Render("Display Settings"), ""}
	for i, r := range rows {
		prefix := "  "
		label := r.label
		value := st.muted.Render(r.value)
		if i == m.cursor {
			prefix = st.accent.Render("▶ ")
			label = st.title.Render(label)
			value = st.accent.Render(r.value)
		}
		row := widgets.HStack{
			Widgets: []widgets.Widget{widgets.Raw(prefix + label), widgets.Raw(value)},
			Widths:  []int{0, lipgloss.Width(value)},
			Gap:     1,
		}
		lines = append(lines, row.Render(inner, 1))
	}
	lines = append(lines, "", st.muted.Width(inner).Render("Changes apply immediately and are saved when you close this panel."))
	return widgets.FitHeight(strings.Join(lines, "\n"), min(height, len(lines)))
}
