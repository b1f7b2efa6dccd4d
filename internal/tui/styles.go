package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
	"github.com/jask/nutritionlabel/internal/widgets"
)

// styles are derived from the display palette on every render.
type styles struct {
	p display.Palette

	app        lipgloss.Style
	title      lipgloss.Style
	subtitle   lipgloss.Style
	muted      lipgloss.Style
	heading    lipgloss.Style
	accent     lipgloss.Style
	headerBar  lipgloss.Style
	statusBar  lipgloss.Style
	statusErr  lipgloss.Style
	footer     lipgloss.Style
	footerKey  lipgloss.Style
	footerDesc lipgloss.Style
	crumb      lipgloss.Style
}

func newStyles(ctx display.Context) styles {
	p := ctx.Palette()
	bar := p.Fill(0.15)
	return styles{
		p:          p,
		app:        lipgloss.NewStyle().Foreground(p.Text),
		title:      lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		subtitle:   lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		muted:      lipgloss.NewStyle().Foreground(p.Secondary),
		heading:    lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		accent:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		headerBar:  lipgloss.NewStyle().Background(bar).Foreground(p.Text),
		statusBar:  lipgloss.NewStyle().Background(p.Surface).Foreground(p.Color("green")),
		statusErr:  lipgloss.NewStyle().Background(p.Surface).Foreground(p.Color("red")),
		footer:     lipgloss.NewStyle().Background(bar),
		footerKey:  lipgloss.NewStyle().Background(bar).Foreground(p.Accent).Bold(true),
		footerDesc: lipgloss.NewStyle().Background(bar).Foreground(p.Secondary),
		crumb:      lipgloss.NewStyle().Background(bar).Foreground(p.Secondary),
	}
}

func (s styles) paneColors() widgets.PaneColors {
	return widgets.PaneColors{
		Border:   s.p.Border,
		Selected: s.p.Accent,
		Focused:  s.p.Accent,
		Title:    s.p.Text,
	}
}

func (s styles) divider() widgets.Divider {
	return widgets.Divider{Color: s.p.Border}
}
