package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/display"
	"github.com/jask/nutritionlabel/internal/widgets"
)

const listBlurb = "Discover how apps can support accessibility features to ensure everyone can use them effectively."

// ListScreen is the catalog page: header, search box, recently viewed strip
// and one card per feature grouped by category.
type ListScreen struct {
	s         *Session
	search    textinput.Model
	searching bool
	cursor    int
	offset    int
}

func NewListScreen(s *Session) *ListScreen {
	in := textinput.New()
	in.Prompt = "⌕ "
	in.Placeholder = "Search features"
	in.CharLimit = 64
	return &ListScreen{s: s, search: in}
}

func (l *ListScreen) Title() string { return "Accessibility" }

func (l *ListScreen) Scope() string {
	if l.searching {
		return scopeSearch
	}
	return scopeList
}

func (l *ListScreen) Capturing() bool { return l.searching }

func (l *ListScreen) query() string {
	return strings.TrimSpace(l.search.Value())
}

// results are the matching features in grouped display order.
func (l *ListScreen) results() []catalog.Feature {
	var out []catalog.Feature
	for _, g := range catalog.GroupByCategory(l.s.Catalog.Search(l.query())) {
		out = append(out, g.Features...)
	}
	return out
}

// Selected is the feature under the cursor.
func (l *ListScreen) Selected() (catalog.Feature, bool) {
	res := l.results()
	if len(res) == 0 {
		return catalog.Feature{}, false
	}
	return res[min(l.cursor, len(res)-1)], true
}

func (l *ListScreen) suggestion() (catalog.Feature, bool) {
	q := l.query()
	if q == "" || len(l.results()) > 0 {
		return catalog.Feature{}, false
	}
	return l.s.Catalog.Suggest(q)
}

// openSelected opens the highlighted feature, or the suggested one when the
// search matched nothing.
func (l *ListScreen) openSelected() tea.Cmd {
	if f, ok := l.Selected(); ok {
		return openCmd(f.ID)
	}
	if f, ok := l.suggestion(); ok {
		return openCmd(f.ID)
	}
	return nil
}

func (l *ListScreen) move(delta int) {
	n := len(l.results())
	if n == 0 {
		l.cursor = 0
		return
	}
	l.cursor = min(n-1, max(0, l.cursor+delta))
}

func (l *ListScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if l.searching {
			var cmd tea.Cmd
			l.search, cmd = l.search.Update(msg)
			return l, cmd, false
		}
		return l, nil, false
	}
	keys, scope := l.s.Keys, l.Scope()

	if l.searching {
		switch {
		case keys.IsAction(km, "search-clear", scope):
			l.search.SetValue("")
			l.search.Blur()
			l.searching = false
			l.cursor = 0
		case keys.IsAction(km, "search-done", scope):
			l.search.Blur()
			l.searching = false
			if len(l.results()) == 0 {
				return l, l.openSelected(), false
			}
		case keys.IsAction(km, "down", scope):
			l.move(1)
		case keys.IsAction(km, "up", scope):
			l.move(-1)
		default:
			before := l.search.Value()
			var cmd tea.Cmd
			l.search, cmd = l.search.Update(km)
			if l.search.Value() != before {
				l.cursor = 0
				l.offset = 0
			}
			return l, cmd, false
		}
		return l, nil, false
	}

	switch {
	case keys.IsAction(km, "down", scope):
		l.move(1)
	case keys.IsAction(km, "up", scope):
		l.move(-1)
	case keys.IsAction(km, "open", scope):
		return l, l.openSelected(), false
	case keys.IsAction(km, "search", scope):
		l.searching = true
		return l, l.search.Focus(), false
	case keys.IsAction(km, "favorite", scope):
		if f, ok := l.Selected(); ok {
			return l, l.s.toggleFavorite(f.ID), false
		}
	case keys.IsAction(km, "open-recent", scope):
		recent := l.s.Recent()
		if i := keys.KeyIndex(km, "open-recent", scope); i >= 0 && i < len(recent) {
			return l, openCmd(recent[i].ID), false
		}
	}
	return l, nil, false
}

func (l *ListScreen) View(width, height int) string {
	content, top, bottom := l.render(width)
	lines := strings.Split(content, "\n")
	if height <= 0 {
		return content
	}
	if top >= 0 {
		if top < l.offset {
			l.offset = top
		}
		if bottom > l.offset+height {
			l.offset = bottom - height
		}
	}
	l.offset = max(0, min(l.offset, len(lines)-height))
	end := min(len(lines), l.offset+height)
	return widgets.FitHeight(strings.Join(lines[l.offset:end], "\n"), height)
}

// render lays out the whole page and reports the line span of the selected
// card (top is -1 when nothing is selected).
func (l *ListScreen) render(width int) (string, int, int) {
	ctx := l.s.Display
	st := newStyles(ctx)
	gap := sectionGap(ctx)

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}
	space := func() {
		for i := 0; i < gap; i++ {
			lines = append(lines, "")
		}
	}

	add(st.title.Underline(true).Render("Accessibility"))
	add(st.subtitle.Render("iOS Nutrition Labels"))
	add(st.muted.Width(width).Render(listBlurb))
	space()
	add(widgets.PadRight(l.search.View(), width))

	if recent := l.s.Recent(); len(recent) > 0 && l.query() == "" {
		chips := make([]string, len(recent))
		for i, f := range recent {
			chips[i] = st.accent.Render(fmt.Sprint(i+1)) + " " + f.Glyph + " " + f.Name
		}
		space()
		add(st.heading.Render("Recently Viewed"))
		add(widgets.Flow{Chips: chips, Spacing: max(1, l.s.BadgeSpacing)}.Render(width, 0))
	}

	groups := catalog.GroupByCategory(l.s.Catalog.Search(l.query()))
	if len(groups) == 0 {
		space()
		add(st.muted.Width(width).Render(fmt.Sprintf("No features match %q.", l.query())))
		if f, ok := l.suggestion(); ok {
			add(st.accent.Width(width).Render(fmt.Sprintf("Did you mean %s? Press enter to open it.", f.Name)))
		}
		return strings.Join(lines, "\n"), -1, -1
	}

	top, bottom := -1, -1
	sel := min(l.cursor, l.total(groups)-1)
	idx := 0
	for _, g := range groups {
		space()
		catStyle := lipgloss.NewStyle().Foreground(st.p.Color(g.Category.Color())).Bold(true)
		add(catStyle.Render(g.Category.Glyph()) + " " + st.title.Render(string(g.Category)))
		for _, f := range g.Features {
			selected := idx == sel
			if selected {
				top = len(lines)
			}
			add(l.card(st, f, width, selected))
			if selected {
				bottom = len(lines)
			}
			idx++
		}
	}
	return strings.Join(lines, "\n"), top, bottom
}

func (l *ListScreen) total(groups []catalog.Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Features)
	}
	return n
}

func (l *ListScreen) card(st styles, f catalog.Feature, width int, selected bool) string {
	pane := widgets.Pane{Selected: selected, Colors: st.paneColors()}
	title := f.Glyph + " " + f.Name
	if l.s.IsFavorite(f.ID) {
		title += " ★"
	}
	pane.Title = title

	inner := pane.InnerWidth(width)
	desc := strings.Split(lipgloss.NewStyle().Width(max(1, inner-2)).Render(f.ShortDescription), "\n")
	if len(desc) > 2 {
		desc = desc[:2]
	}
	for i := range desc {
		desc[i] = st.muted.Render(widgets.PadRight(desc[i], max(1, inner-2)))
	}
	desc[0] += " " + lipgloss.NewStyle().Foreground(st.p.Tertiary).Render("›")
	pane.Content = strings.Join(desc, "\n")
	return pane.Render(width, 0)
}

// sectionGap is the blank lines between sections; larger text gets more air.
func sectionGap(ctx display.Context) int {
	if ctx.TextSize >= display.XXLarge {
		return 2
	}
	return 1
}
