package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/nutritionlabel/internal/flow"
)

// Flow wraps pre-rendered chips into rows using flow.Layout. Chips are
// measured in terminal cells on every render, so a width change reflows them.
type Flow struct {
	Chips   []string
	Spacing int
}

// Measure returns the cell footprint of every chip, in order.
func (f Flow) Measure() []flow.Size {
	sizes := make([]flow.Size, len(f.Chips))
	for i, chip := range f.Chips {
		sizes[i] = flow.Size{Width: float64(lipgloss.Width(chip)), Height: float64(lipgloss.Height(chip))}
	}
	return sizes
}

// Layout runs the flow engine for the given width. A width of zero or less
// lays the chips out on a single row.
func (f Flow) Layout(width int) (flow.Result, []flow.Size, error) {
	sizes := f.Measure()
	res, err := flow.Layout(float64(max(0, width)), float64(max(0, f.Spacing)), sizes)
	return res, sizes, err
}

func (f Flow) Render(width, height int) string {
	if len(f.Chips) == 0 {
		return ""
	}
	res, sizes, err := f.Layout(width)
	if err != nil {
		return ""
	}
	canvasHeight := int(res.Height)
	if height > 0 && canvasHeight > height {
		canvasHeight = height
	}
	type segment struct {
		x    int
		text string
	}
	lines := make([][]segment, canvasHeight)
	for i, p := range res.Placements {
		x, y := int(p.X), int(p.Y)
		chipLines := strings.Split(f.Chips[i], "\n")
		for dy := 0; dy < int(sizes[i].Height) && dy < len(chipLines); dy++ {
			row := y + dy
			if row >= canvasHeight {
				break
			}
			lines[row] = append(lines[row], segment{x: x, text: chipLines[dy]})
		}
	}
	out := make([]string, canvasHeight)
	for row, segs := range lines {
		var b strings.Builder
		col := 0
		for _, s := range segs {
			if s.x > col {
				b.WriteString(strings.Repeat(" ", s.x-col))
				col = s.x
			}
			text := s.text
			if width > 0 {
				text = ansi.Truncate(text, max(0, width-col), "")
			}
			b.WriteString(text)
			col += ansi.StringWidth(text)
		}
		out[row] = b.String()
	}
	return strings.Join(out, "\n")
}
