package playground

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

// darkInterface shows semantic colors and surfaces for the current scheme.
// It has no state of its own.
type darkInterface struct {
	color string
}

func newDarkInterface(env Env) Playground {
	return &darkInterface{color: env.Feature.Color}
}

func (d *darkInterface) Hints() []Hint { return nil }

func (d *darkInterface) Update(display.Context, tea.Msg) (Playground, tea.Cmd) { return d, nil }

func (d *darkInterface) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	accent := p.Color(d.color)

	icon, mode := "☀", "Light Mode Active"
	info := "Light mode provides better visibility in bright environments"
	if ctx.ColorScheme == display.Dark {
		icon, mode = "☾", "Dark Mode Active"
		info = "Dark mode reduces glare and eye strain in low-light environments"
	}
	status := panel(ctx,
		lipgloss.NewStyle().Foreground(accent).Render(icon)+" "+lipgloss.NewStyle().Bold(true).Render(mode)+"\n  "+
			secondary(ctx, "All elements adapt automatically"),
		width, p.Tint(d.color, ctx.PanelOpacity()))

	colorRow := func(label string, c lipgloss.Color) string {
		return lipgloss.NewStyle().Width(10).Render(label) +
			lipgloss.NewStyle().Foreground(c).Render("████") + " " +
			lipgloss.NewStyle().Foreground(c).Render("Text adapts")
	}
	semantic := heading(ctx, "Semantic Colors") + "\n" + strings.Join([]string{
		colorRow("Primary", p.Text),
		colorRow("Secondary", p.Secondary),
		colorRow("Tertiary", p.Tertiary),
	}, "\n")

	layer := func(fill lipgloss.Color, name, caption string) string {
		block := lipgloss.NewStyle().Background(fill).Foreground(p.Text).Width(12).Align(lipgloss.Center).Render(name)
		return block + "\n" + lipgloss.PlaceHorizontal(12, lipgloss.Center, secondary(ctx, caption))
	}
	layers := heading(ctx, "Background Layers") + "\n" + row(ctx, width, 1,
		layer(p.Background, "Base", "Background"),
		layer(p.Surface, "Card", "Secondary"),
		layer(p.Fill(0.2), "Fill", "Tertiary"),
	)

	cell := func(icon, title, value string) string {
		return spread(max(1, min(width, 40)), icon+" "+title, secondary(ctx, value))
	}
	elements := heading(ctx, "UI Elements") + "\n" +
		filledButton(ctx, "★ Accent Button", accent) + "\n" +
		spread(max(1, min(width, 40)), "▣ "+lipgloss.NewStyle().Bold(true).Render("Card Title"), secondary(ctx, "›")) + "\n" +
		"  " + secondary(ctx, "Subtitle adapts to color scheme") + "\n" +
		cell("🔔", "Notifications", "On") + "\n" +
		secondary(ctx, strings.Repeat("─", max(1, min(width, 40)))) + "\n" +
		cell("🔒", "Privacy", "Enabled")

	note := lipgloss.NewStyle().Foreground(accent).Render("ⓘ") + " " + secondary(ctx, info)

	return truncateLines(stack(ctx,
		instructions(ctx, "Toggle Dark Mode in Settings > Display & Brightness to see all UI elements adapt instantly.", width),
		status,
		semantic,
		layers,
		elements,
		wrap(note, width),
	), width)
}
