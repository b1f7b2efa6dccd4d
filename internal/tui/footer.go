package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/nutritionlabel/internal/playground"
)

// HintProvider screens add their own key help to the footer.
type HintProvider interface {
	Hints() []playground.Hint
}

func renderFooter(m Model, st styles) string {
	scope := m.ActiveScope()
	var help []key.Help
	if hp, ok := m.screens.Top().(HintProvider); ok {
		for _, h := range hp.Hints() {
			help = append(help, key.Help{Key: h.Key, Desc: h.Desc})
		}
	}
	help = append(help, m.session.Keys.HelpForScope(scope)...)

	space := st.footer.Render(" ")
	sep := st.footer.Render("  ")
	parts := make([]string, 0, len(help))
	seen := map[string]bool{}
	for _, h := range help {
		if (h.Key == "" && h.Desc == "") || seen[h.Key+h.Desc] {
			continue
		}
		seen[h.Key+h.Desc] = true
		parts = append(parts, st.footerKey.Render(h.Key)+space+st.footerDesc.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = st.footerDesc.Render("No shortcuts")
	}
	return renderBar(st.footer, max(1, m.width), space+line)
}

// helpKey labels a binding by its first key, joining digit runs as 1-9.
func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if len(keys) > 2 && keys[0] == "1" {
		return keys[0] + "-" + keys[len(keys)-1]
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}
