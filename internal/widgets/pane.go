package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PaneColors are the chrome colors of a Pane. Zero values fall back to
// terminal defaults.
type PaneColors struct {
	Border   lipgloss.TerminalColor
	Selected lipgloss.TerminalColor
	Focused  lipgloss.TerminalColor
	Title    lipgloss.TerminalColor
}

// Pane is a rounded box with the title set into the top border.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
	Colors   PaneColors
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	contentLines := splitLines(p.Content)
	if len(contentLines) == 0 {
		contentLines = []string{""}
	}
	h := p.Height
	if h <= 0 {
		h = len(contentLines) + 2
	}
	if h < 3 {
		h = 3
	}
	if height > 0 && h > height {
		h = height
	}
	if width < 4 {
		width = 4
	}

	border := p.Colors.Border
	if p.Selected && p.Colors.Selected != nil {
		border = p.Colors.Selected
	}
	if p.Focused && p.Colors.Focused != nil {
		border = p.Colors.Focused
	}
	borderStyle := lipgloss.NewStyle()
	if border != nil {
		borderStyle = borderStyle.Foreground(border)
	}
	titleStyle := lipgloss.NewStyle().Bold(true)
	if p.Colors.Title != nil {
		titleStyle = titleStyle.Foreground(p.Colors.Title)
	}

	titlePrefix := "  "
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	titleW := ansi.StringWidth(titleText)
	dashes := max(0, innerWidth-titleW)
	leftDash := 1
	if dashes == 0 {
		leftDash = 0
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := h - 2
	rows := make([]string, 0, innerHeight+2)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// InnerWidth is the content width available inside a pane of the given width.
func (Pane) InnerWidth(width int) int {
	return max(1, width-4)
}

func splitLines(s string) []string {
	if strings.TrimSpace(ansi.Strip(s)) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
