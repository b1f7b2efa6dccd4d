package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/nutritionlabel/internal/widgets"
)

const appName = "Nutrition Label"

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	st := newStyles(m.session.Display)
	header := renderHeader(m, st)
	status := renderStatusBar(m, st)
	footer := renderFooter(m, st)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	body := m.fade.blend(m.body())
	body = widgets.FitHeight(body, bodyHeight)

	parts := []string{header, status}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	view := widgets.FitHeight(strings.Join(parts, "\n"), max(1, m.height))
	return st.app.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) bodyHeight() int {
	return max(0, m.height-3)
}

// body renders the current page with its popups on top.
func (m Model) body() string {
	height := m.bodyHeight()
	if height == 0 {
		return ""
	}
	page, idx := m.screens.page()
	var out string
	if page != nil {
		out = page.View(max(1, m.width), height)
	}
	st := newStyles(m.session.Display)
	for _, s := range m.screens.items[idx+1:] {
		popup := s.View(min(64, max(20, m.width-12)), max(4, height-6))
		out = widgets.RenderPopup(out, popup, max(1, m.width), height, st.p.Accent)
	}
	lines := strings.Split(widgets.FitHeight(out, height), "\n")
	for i, line := range lines {
		lines[i] = widgets.PadRight(line, max(1, m.width))
	}
	return strings.Join(lines, "\n")
}

func renderHeader(m Model, st styles) string {
	crumbs := make([]string, 0, m.screens.Len())
	for _, s := range m.screens.items {
		if isPopup(s) {
			continue
		}
		crumbs = append(crumbs, s.Title())
	}
	left := st.accent.Inherit(st.headerBar).Render(" " + appName + " ")
	right := st.crumb.Render(strings.Join(crumbs, " › ") + "  Aa " + m.session.Display.TextSize.String() + " ")
	width := max(1, m.width)
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < width {
		gap = width - leftW - rightW
	}
	return renderBar(st.headerBar, width, left+st.headerBar.Render(strings.Repeat(" ", gap))+right)
}

func renderStatusBar(m Model, st styles) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(st.statusErr, max(1, m.width), " "+msg)
	}
	return renderBar(st.statusBar, max(1, m.width), " "+msg)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += style.Render(strings.Repeat(" ", width-w))
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
