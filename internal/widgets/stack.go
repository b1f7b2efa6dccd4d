package widgets

import "strings"

// VStack stacks widgets top to bottom, each at its natural height. A positive
// height pads or clips the result to exactly that many lines.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	blocks := make([]string, 0, len(v.Widgets))
	for _, w := range v.Widgets {
		if out := w.Render(width, 0); out != "" {
			blocks = append(blocks, out)
		}
	}
	out := strings.Join(blocks, "\n"+strings.Repeat("\n", max(0, v.Spacing)))
	if height > 0 {
		return FitHeight(out, height)
	}
	return out
}

// HStack lays widgets side by side. A positive entry in Widths fixes that
// column's width; the other columns share what is left evenly.
type HStack struct {
	Widgets []Widget
	Widths  []int
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := columnWidths(max(1, width-gapTotal), len(h.Widgets), h.Widths)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = PadRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

func columnWidths(total, n int, fixed []int) []int {
	out := make([]int, n)
	flex := 0
	left := total
	for i := range out {
		if i < len(fixed) && fixed[i] > 0 {
			out[i] = min(fixed[i], max(0, left))
			left -= out[i]
		} else {
			flex++
		}
	}
	if flex == 0 {
		return out
	}
	left = max(0, left)
	share, extra := left/flex, left%flex
	for i := range out {
		if i < len(fixed) && fixed[i] > 0 {
			continue
		}
		out[i] = share
		if extra > 0 {
			out[i]++
			extra--
		}
	}
	return out
}
