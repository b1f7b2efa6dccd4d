package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestFlowWrapsChipsAtWidth(t *testing.T) {
	f := Flow{Chips: []string{"aaaa", "bbbb", "cccc"}, Spacing: 1}
	got := f.Render(10, 0)
	want := "aaaa bbbb\n\ncccc"
	if got != want {
		t.Fatalf("Render(10) = %q, want %q", got, want)
	}
}

func TestFlowReflowsOnWidthChange(t *testing.T) {
	f := Flow{Chips: []string{"aaaa", "bbbb", "cccc"}, Spacing: 1}
	if got := f.Render(14, 0); got != "aaaa bbbb cccc" {
		t.Fatalf("Render(14) = %q", got)
	}
	if got := f.Render(0, 0); got != "aaaa bbbb cccc" {
		t.Fatalf("unbounded render = %q", got)
	}
	if got := f.Render(4, 0); got != "aaaa\n\nbbbb\n\ncccc" {
		t.Fatalf("Render(4) = %q", got)
	}
}

func TestFlowTruncatesOversizedFirstChip(t *testing.T) {
	f := Flow{Chips: []string{"abcdefghij", "xy"}, Spacing: 1}
	got := f.Render(6, 0)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected two rows and a gap, got %q", got)
	}
	if lines[0] != "abcdef" {
		t.Fatalf("first row = %q, want truncated chip", lines[0])
	}
	if lines[2] != "xy" {
		t.Fatalf("second row = %q", lines[2])
	}
}

func TestFlowMultiLineChips(t *testing.T) {
	f := Flow{Chips: []string{"╭─╮\n╰─╯", "ab"}, Spacing: 1}
	got := f.Render(20, 0)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("row height should follow tallest chip, got %q", got)
	}
	if lines[0] != "╭─╮ ab" || lines[1] != "╰─╯" {
		t.Fatalf("unexpected canvas %q", got)
	}
}

func TestHStackFixedAndFlexibleColumns(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Widths: []int{0, 5}, Gap: 1}
	out := h.Render(21, 1)
	if ansi.StringWidth(out) != 21 {
		t.Fatalf("width = %d, want 21: %q", ansi.StringWidth(out), out)
	}
	if !strings.HasPrefix(out, "A") || strings.Index(out, "B") != 16 {
		t.Fatalf("unexpected split %q", out)
	}

	even := HStack{Widgets: []Widget{fixedWidget{"a"}, fixedWidget{"b"}, fixedWidget{"c"}}}.Render(7, 0)
	if even != "a  b c " {
		t.Fatalf("even split = %q", even)
	}
}

func TestHStackTallestColumnSetsHeight(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"1."}, fixedWidget{"one\ntwo"}}, Widths: []int{3}}
	got := h.Render(8, 0)
	if got != "1. one  \n   two  " {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestColumnWidthsNeverExceedTotal(t *testing.T) {
	got := columnWidths(6, 3, []int{4, 0, 4})
	if got[0] != 4 || got[1] != 0 || got[2] != 2 {
		t.Fatalf("widths = %v", got)
	}
}

func TestVStackNaturalHeightSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{""}, fixedWidget{"bottom"}}, Spacing: 1}
	if got := v.Render(20, 0); got != "top\n\nbottom" {
		t.Fatalf("natural stack = %q", got)
	}
	if got := v.Render(20, 6); len(strings.Split(got, "\n")) != 6 {
		t.Fatalf("fixed stack should be 6 lines, got %q", got)
	}
}

func TestPaneNaturalHeight(t *testing.T) {
	out := Pane{Title: "Try It Out", Content: "one\ntwo"}.Render(20, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("pane lines = %d, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "Try It Out") {
		t.Fatalf("title missing from border: %q", lines[0])
	}
	for _, l := range lines {
		if ansi.StringWidth(l) != 20 {
			t.Fatalf("line width = %d: %q", ansi.StringWidth(l), l)
		}
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}
