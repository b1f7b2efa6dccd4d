package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell box. A height of zero or
// less means "as tall as the content needs".
type Widget interface {
	Render(width, height int) string
}

// Text is a pre-rendered block, wrapped to the available width.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	out := lipgloss.NewStyle().Width(width).Render(string(t))
	return clipHeight(out, height)
}

// Raw is a pre-rendered block that is only truncated, never rewrapped.
type Raw string

func (r Raw) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(string(r), "\n")
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return clipHeight(strings.Join(lines, "\n"), height)
}

// Divider is a full-width horizontal rule.
type Divider struct {
	Color lipgloss.TerminalColor
}

func (d Divider) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle()
	if d.Color != nil {
		style = style.Foreground(d.Color)
	}
	return style.Render(strings.Repeat("─", width))
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// FitHeight pads or clips s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// PadRight truncates or pads s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
