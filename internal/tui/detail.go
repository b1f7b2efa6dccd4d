package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/display"
	"github.com/jask/nutritionlabel/internal/playground"
	"github.com/jask/nutritionlabel/internal/widgets"
)

const (
	tryItOutBlurb   = "Test how this accessibility feature works with the interactive elements below."
	developersBlurb = "Ensure your app supports this feature by following Apple's Human Interface Guidelines and testing with the Accessibility Inspector."
)

// DetailScreen is the scrollable page of one feature. Tab moves key focus
// into its playground.
type DetailScreen struct {
	s       *Session
	feature catalog.Feature
	pg      playground.Playground
	focused bool
	vp      viewport.Model

	// line span of the Try It Out section in the last render
	pgTop, pgBottom int
}

func NewDetailScreen(s *Session, f catalog.Feature) *DetailScreen {
	return &DetailScreen{
		s:       s,
		feature: f,
		pg:      playground.New(playground.Env{Feature: f, SampleVideoURL: s.SampleVideoURL}),
		vp:      viewport.New(80, 20),
	}
}

func (d *DetailScreen) Title() string { return d.feature.Name }

func (d *DetailScreen) Scope() string {
	if d.focused {
		return scopePlayground
	}
	return scopeDetail
}

func (d *DetailScreen) Capturing() bool { return d.focused }

// Hints are the playground's own keys while it has focus.
func (d *DetailScreen) Hints() []playground.Hint {
	if !d.focused {
		return nil
	}
	return d.pg.Hints()
}

func (d *DetailScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.pg, cmd = d.pg.Update(d.s.Display, msg)
		return d, cmd, false
	}
	keys, scope := d.s.Keys, d.Scope()

	if d.focused {
		if keys.IsAction(km, "leave-playground", scope) {
			d.focused = false
			return d, nil, false
		}
		var cmd tea.Cmd
		d.pg, cmd = d.pg.Update(d.s.Display, km)
		return d, cmd, false
	}

	switch {
	case keys.IsAction(km, "back", scope):
		return d, nil, true
	case keys.IsAction(km, "focus-playground", scope):
		d.focused = true
		return d, nil, false
	case keys.IsAction(km, "favorite", scope):
		return d, d.s.toggleFavorite(d.feature.ID), false
	}
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(km)
	return d, cmd, false
}

func (d *DetailScreen) View(width, height int) string {
	content := d.content(width)
	d.vp.Width = width
	d.vp.Height = max(1, height)
	d.vp.SetContent(content)
	if d.focused {
		off := d.vp.YOffset
		if d.pgBottom-d.pgTop > d.vp.Height {
			off = d.pgBottom - d.vp.Height
		} else if d.pgTop < off {
			off = d.pgTop
		} else if d.pgBottom > off+d.vp.Height {
			off = d.pgBottom - d.vp.Height
		}
		d.vp.SetYOffset(off)
	}
	return d.vp.View()
}

// content renders the whole page at width and records where the playground
// section sits.
func (d *DetailScreen) content(width int) string {
	ctx := d.s.Display
	st := newStyles(ctx)
	f := d.feature
	acc := ctx.IsAccessibilitySize()
	accent := lipgloss.NewStyle().Foreground(st.p.Color(f.Color)).Bold(true)
	gap := sectionGap(ctx)

	var pre []widgets.Widget
	if !acc {
		pre = append(pre, widgets.Raw(accent.Render(f.Glyph)+"  "+st.muted.Render(f.Icon)))
	}
	name := st.title.Underline(true).Render(f.Name)
	if d.s.IsFavorite(f.ID) {
		name += " " + accent.Render("★")
	}
	pre = append(pre, widgets.Text(name))
	if !acc {
		pre = append(pre, widgets.Text(st.muted.Render(f.ShortDescription)))
	}
	pre = append(pre, st.divider())
	if !acc {
		pre = append(pre,
			widgets.Raw(st.heading.Render("Available On")+"\n"+d.badges(st).Render(width, 0)),
			st.divider(),
		)
	}
	pre = append(pre,
		widgets.Text(st.heading.Render("About")+"\n"+f.FullDescription),
		st.divider(),
		widgets.Raw(st.heading.Render("How to Enable")+"\n"+d.steps(ctx, st, width)),
		st.divider(),
	)
	top := widgets.VStack{Widgets: pre, Spacing: gap}.Render(width, 0)

	hint := "tab to try it"
	body := d.pg.View(ctx, width)
	if d.focused {
		hint = "esc to leave"
		body = indent(d.pg.View(ctx, max(1, width-2)), st.accent.Render("┃ "))
	}
	try := st.heading.Render("Try It Out") + "  " + st.muted.Render(hint) + "\n" +
		st.muted.Width(width).Render(tryItOutBlurb) + "\n" + body

	sep := strings.Repeat("\n", gap+1)
	d.pgTop = lipgloss.Height(top) + gap
	d.pgBottom = d.pgTop + lipgloss.Height(try)
	out := top + sep + try
	if !acc {
		tips := widgets.VStack{Widgets: []widgets.Widget{
			st.divider(),
			widgets.Text(st.heading.Render("For Developers") + "\n" + st.muted.Render(developersBlurb)),
		}, Spacing: gap}.Render(width, 0)
		out += sep + tips
	}
	return out
}

// badges are the platform chips arranged by the flow engine.
func (d *DetailScreen) badges(st styles) widgets.Flow {
	chip := lipgloss.NewStyle().
		Background(st.p.Tint("blue", 0.15)).
		Foreground(st.p.Accent).
		Padding(0, 1)
	chips := make([]string, len(d.feature.Platforms))
	for i, p := range d.feature.Platforms {
		chips[i] = chip.Render(p.Glyph() + " " + string(p))
	}
	return widgets.Flow{Chips: chips, Spacing: d.s.BadgeSpacing}
}

// steps numbers the activation steps; at accessibility sizes the number sits
// on its own line above the step.
func (d *DetailScreen) steps(ctx display.Context, st styles, width int) string {
	num := lipgloss.NewStyle().Foreground(st.p.Color(d.feature.Color)).Bold(true)
	rows := make([]string, len(d.feature.ActivationSteps))
	for i, step := range d.feature.ActivationSteps {
		label := num.Render(fmt.Sprintf("%d.", i+1))
		if ctx.IsAccessibilitySize() {
			rows[i] = label + "\n" + lipgloss.NewStyle().Width(width).Render(step)
			continue
		}
		rows[i] = widgets.HStack{
			Widgets: []widgets.Widget{widgets.Raw(label), widgets.Text(step)},
			Widths:  []int{4},
		}.Render(width, 0)
	}
	sep := "\n"
	if ctx.IsAccessibilitySize() {
		sep = "\n\n"
	}
	return strings.Join(rows, sep)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
