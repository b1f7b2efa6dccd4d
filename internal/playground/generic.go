package playground

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nutritionlabel/internal/display"
)

type generic struct{}

func newGeneric(Env) Playground { return generic{} }

func (generic) Hints() []Hint { return nil }

func (g generic) Update(display.Context, tea.Msg) (Playground, tea.Cmd) { return g, nil }

func (generic) View(ctx display.Context, width int) string {
	return instructions(ctx, "Enable this accessibility feature in Settings to experience how it improves app usability.", width)
}
