package playground

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

// contrast reports the contrast level on a panel whose tint follows it.
type contrast struct {
	color string
}

func newContrast(env Env) Playground {
	return &contrast{color: env.Feature.Color}
}

func (c *contrast) Hints() []Hint { return nil }

func (c *contrast) Update(display.Context, tea.Msg) (Playground, tea.Cmd) { return c, nil }

func contrastLabel(ctx display.Context) string {
	if ctx.Contrast == display.IncreasedContrast {
		return "Increased ✓"
	}
	return "Standard"
}

func (c *contrast) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	accent := p.Color(c.color)
	opacity := ctx.PanelOpacity()

	body := spread(max(1, width-2), "Current Contrast:", lipgloss.NewStyle().Bold(true).Foreground(accent).Render(contrastLabel(ctx))) + "\n" +
		secondary(ctx, fmt.Sprintf("Panel tint: %d%%", int(opacity*100))) + "\n" +
		wrap("Notice how background opacity increases when you enable this feature for better visibility.", max(1, width-2))

	return truncateLines(stack(ctx,
		instructions(ctx, "Enable Increase Contrast in Accessibility settings. The app automatically adjusts backgrounds!", width),
		panel(ctx, body, width, p.Tint(c.color, opacity)),
	), width)
}
