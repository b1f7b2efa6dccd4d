package playground

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

const defaultAlerts = 3

// largerText shows how content reflows as the text size grows.
type largerText struct {
	color  string
	alerts int
}

func newLargerText(env Env) Playground {
	return &largerText{color: env.Feature.Color, alerts: defaultAlerts}
}

func (l *largerText) Hints() []Hint {
	return []Hint{{"a", "add alert"}, {"c", "clear"}, {"o", "ok"}, {"x", "cancel"}}
}

func (l *largerText) Update(_ display.Context, msg tea.Msg) (Playground, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch {
	case isKey(km, "a", "+"):
		l.alerts++
	case isKey(km, "c"):
		l.alerts = 0
	case isKey(km, "o", "x"):
		l.alerts = defaultAlerts
	}
	return l, nil
}

// sizeLabel is the short size category shown in the indicator.
func sizeLabel(ctx display.Context) string {
	if ctx.IsAccessibilitySize() {
		return "Access."
	}
	return "Standard"
}

func (l *largerText) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	accent := p.Color(l.color)

	labelColor := p.Color("blue")
	if ctx.IsAccessibilitySize() {
		labelColor = p.Color("green")
	}
	indicator := lipgloss.NewStyle().Foreground(accent).Render("𝐀") + " " + lipgloss.NewStyle().Bold(true).Render("Size") + "\n" +
		spread(max(1, width-2),
			lipgloss.NewStyle().Bold(true).Foreground(labelColor).Render(sizeLabel(ctx)),
			secondary(ctx, ctx.TextSize.String()))
	size := panel(ctx, indicator, width, p.Tint(l.color, ctx.PanelOpacity()))

	bold := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Foreground(p.Secondary)
	styles := strings.Join([]string{
		heading(ctx, "Styles"),
		bold.Underline(true).Render("Large Title"),
		bold.Render("Title"),
		bold.Render("Headline"),
		"Body text scales smoothly",
		"Callout",
		faint.Render("Footnote"),
		faint.Render("Caption"),
	}, "\n")

	icons := heading(ctx, "Icons + Text") + "\n" + row(ctx, width, 3,
		lipgloss.NewStyle().Foreground(p.Color("red")).Render("♥")+" Favorite",
		lipgloss.NewStyle().Foreground(p.Color("orange")).Render("★")+" Featured",
		lipgloss.NewStyle().Foreground(accent).Render("🔔")+" Alerts",
	)

	messages := "✉ " + bold.Render("New Message") + "  " + faint.Render("5 unread")
	notes := "🔔 " + bold.Render("Notifications") + "  " + faint.Render(fmt.Sprintf("%d alerts", l.alerts))
	if ctx.IsAccessibilitySize() {
		messages = "✉ " + bold.Render("New Message") + "\n  " + faint.Render("5 unread")
		notes = "🔔 " + bold.Render("Notifications") + "\n  " + faint.Render(fmt.Sprintf("%d alerts", l.alerts))
	}
	list := heading(ctx, "List Items") + "\n" + messages + "\n" +
		faint.Render(strings.Repeat("─", max(1, min(width, 30)))) + "\n" + notes

	buttons := heading(ctx, "Buttons") + "\n" + row(ctx, width, 1,
		filledButton(ctx, "⊕ Add Alert", accent),
		outlineButton("🗑 Clear", accent),
		outlineButton("Cancel", p.Secondary),
		filledButton(ctx, "OK", accent),
	)

	text := heading(ctx, "Text Wrap") + "\n" +
		wrap("This shows how text wraps when you scale text size. Layout adapts to fit larger text while staying readable.", width)

	return truncateLines(stack(ctx,
		instructions(ctx, "Go to Settings > Accessibility > Display & Text Size > Larger Text. Watch elements scale!", width),
		size,
		styles,
		icons,
		list,
		buttons,
		text,
	), width)
}

// spread places left and right at the two ends of a width-cell line.
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}
