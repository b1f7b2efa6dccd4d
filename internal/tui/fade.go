package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	fadeSteps    = 4
	fadeInterval = 45 * time.Millisecond
)

type fadeFrameMsg struct {
	gen int
}

// fade is the crossfade between two pages. A terminal cannot blend glyphs,
// so the new page dissolves in line by line over a few frames.
type fade struct {
	from   string
	step   int
	gen    int
	active bool
}

func (f *fade) start(from string) tea.Cmd {
	f.gen++
	f.from = from
	f.step = 0
	f.active = true
	return f.tick()
}

func (f *fade) stop() {
	f.active = false
	f.from = ""
}

func (f *fade) advance(msg fadeFrameMsg) tea.Cmd {
	if !f.active || msg.gen != f.gen {
		return nil
	}
	f.step++
	if f.step >= fadeSteps {
		f.stop()
		return nil
	}
	return f.tick()
}

func (f *fade) tick() tea.Cmd {
	gen := f.gen
	return tea.Tick(fadeInterval, func(time.Time) tea.Msg { return fadeFrameMsg{gen: gen} })
}

func (f fade) blend(to string) string {
	if !f.active {
		return to
	}
	return dissolve(f.from, to, f.step, fadeSteps)
}

// dissolve shows the lines of to whose rank is at most step and the lines of
// from elsewhere. Ranks are spread so the new page appears evenly.
func dissolve(from, to string, step, steps int) string {
	fromLines := strings.Split(from, "\n")
	toLines := strings.Split(to, "\n")
	n := max(len(fromLines), len(toLines))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		useNew := (i*3)%steps <= step
		switch {
		case useNew && i < len(toLines):
			out[i] = toLines[i]
		case !useNew && i < len(fromLines):
			out[i] = fromLines[i]
		}
	}
	return strings.Join(out, "\n")
}
