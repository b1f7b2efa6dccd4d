package playground

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/nutritionlabel/internal/display"
)

func wrap(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// panel renders content on a tinted background one cell in from each side.
func panel(ctx display.Context, content string, width int, bg lipgloss.Color) string {
	p := ctx.Palette()
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(p.Text).
		Padding(0, 1).
		Width(max(1, width)).
		Render(content)
}

// instructions is the secondary-colored hint panel that opens every demo.
func instructions(ctx display.Context, text string, width int) string {
	p := ctx.Palette()
	body := lipgloss.NewStyle().Foreground(p.Secondary).Render(text)
	return panel(ctx, body, width, p.Fill(ctx.PanelOpacity()))
}

func heading(ctx display.Context, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(ctx.Palette().Secondary).Render(text)
}

func secondary(ctx display.Context, text string) string {
	return lipgloss.NewStyle().Foreground(ctx.Palette().Secondary).Render(text)
}

// filledButton is a solid button in the given color.
func filledButton(ctx display.Context, label string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Background(color).
		Foreground(ctx.Palette().OnAccent).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// outlineButton is a bracketed button drawn in the given color.
func outlineButton(label string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render("[ " + label + " ]")
}

// row joins items horizontally, or stacks them one per line when the text
// size is an accessibility size or they would not fit.
func row(ctx display.Context, width, gap int, items ...string) string {
	if !ctx.IsAccessibilitySize() {
		total := gap * max(0, len(items)-1)
		for _, it := range items {
			total += lipgloss.Width(it)
		}
		if total <= width {
			parts := make([]string, 0, len(items)*2)
			for i, it := range items {
				if i > 0 {
					parts = append(parts, strings.Repeat(" ", gap))
				}
				parts = append(parts, it)
			}
			return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// stack joins blocks with the spacing for the current text size.
func stack(ctx display.Context, blocks ...string) string {
	sep := "\n"
	if ctx.TextSize >= display.XXLarge {
		sep = "\n\n"
	}
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, sep)
}

// truncateLines cuts every line of s to width cells.
func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

func isKey(msg tea.KeyMsg, keys ...string) bool {
	pressed := msg.String()
	for _, k := range keys {
		if pressed == k {
			return true
		}
	}
	return false
}
