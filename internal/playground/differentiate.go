package playground

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

type statusKind struct {
	label string
	color string
	icon  string
}

var statuses = []statusKind{
	{"Success", "green", "✔"},
	{"Warning", "orange", "⚠"},
	{"Error", "red", "✖"},
}

// differentiate shows status indicators that fall back to shape and text
// when color alone should not carry meaning.
type differentiate struct {
	color string
}

func newDifferentiate(env Env) Playground {
	return &differentiate{color: env.Feature.Color}
}

func (d *differentiate) Hints() []Hint { return nil }

func (d *differentiate) Update(display.Context, tea.Msg) (Playground, tea.Cmd) { return d, nil }

// indicator is a colored dot, or an icon when differentiation is on.
func indicator(ctx display.Context, s statusKind) string {
	p := ctx.Palette()
	mark := "●"
	if ctx.DifferentiateWithoutColor {
		mark = s.icon
	}
	return lipgloss.NewStyle().Foreground(p.Color(s.color)).Render(mark) + " " + s.label
}

func (d *differentiate) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	mode := "Color only (Feature OFF)"
	if ctx.DifferentiateWithoutColor {
		mode = "Icons shown (Feature ON)"
	}
	items := make([]string, len(statuses))
	for i, s := range statuses {
		items[i] = indicator(ctx, s)
	}
	return truncateLines(stack(ctx,
		instructions(ctx, "Enable this setting in Accessibility to see icons appear automatically. The app responds instantly!", width),
		lipgloss.NewStyle().Bold(true).Foreground(p.Color(d.color)).Render(mode),
		row(ctx, width, 4, items...),
	), width)
}
