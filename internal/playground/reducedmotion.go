package playground

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

const (
	motionFPS      = 60
	motionDuration = 800 * time.Millisecond
	motionOffset   = 100.0
)

var motionIDs atomic.Int64

// motionFrameMsg advances one reduced motion demo. gen drops frames from an
// animation that a later toggle replaced.
type motionFrameMsg struct {
	id  int64
	gen int
}

// reducedMotion moves a circle between two offsets, spring-animated unless
// reduce motion is on.
type reducedMotion struct {
	id     int64
	color  string
	on     bool
	pos    float64
	vel    float64
	spring harmonica.Spring
	gen    int
	frame  int
}

func newReducedMotion(env Env) Playground {
	return &reducedMotion{
		id:     motionIDs.Add(1),
		color:  env.Feature.Color,
		pos:    -motionOffset,
		spring: harmonica.NewSpring(harmonica.FPS(motionFPS), 10.0, 0.6),
	}
}

func (r *reducedMotion) Hints() []Hint {
	return []Hint{{"enter", "toggle animation"}}
}

func (r *reducedMotion) target() float64 {
	if r.on {
		return motionOffset
	}
	return -motionOffset
}

// Animating reports whether frames are still pending.
func (r *reducedMotion) Animating() bool {
	return r.pos != r.target()
}

func (r *reducedMotion) Update(ctx display.Context, msg tea.Msg) (Playground, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !isKey(msg, "enter", " ", "space") {
			return r, nil
		}
		r.on = !r.on
		r.gen++
		r.frame = 0
		if ctx.Animation() == display.AnimationNone {
			r.settle()
			return r, nil
		}
		return r, r.nextFrame()
	case motionFrameMsg:
		if msg.id != r.id || msg.gen != r.gen {
			return r, nil
		}
		r.frame++
		if ctx.Animation() == display.AnimationNone || r.frame >= framesPerAnimation() {
			r.settle()
			return r, nil
		}
		r.pos, r.vel = r.spring.Update(r.pos, r.vel, r.target())
		if math.Abs(r.pos-r.target()) < 0.5 && math.Abs(r.vel) < 0.5 {
			r.settle()
			return r, nil
		}
		return r, r.nextFrame()
	}
	return r, nil
}

func framesPerAnimation() int {
	return int(motionDuration.Seconds() * motionFPS)
}

func (r *reducedMotion) settle() {
	r.pos = r.target()
	r.vel = 0
}

func (r *reducedMotion) nextFrame() tea.Cmd {
	id, gen := r.id, r.gen
	return tea.Tick(time.Second/motionFPS, func(time.Time) tea.Msg {
		return motionFrameMsg{id: id, gen: gen}
	})
}

// column maps the circle offset onto a track of the given width.
func (r *reducedMotion) column(track int) int {
	if track <= 1 {
		return 0
	}
	frac := (r.pos + motionOffset) / (2 * motionOffset)
	col := int(math.Round(frac * float64(track-1)))
	return min(track-1, max(0, col))
}

func (r *reducedMotion) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	accent := p.Color(r.color)

	state := "OFF - Animations active"
	caption := "Circle animates with spring effect"
	if ctx.ReduceMotion {
		state = "ON - No animations"
		caption = "Circle moves instantly (no spring animation)"
	}
	status := spread(max(1, min(width, 48)), "Status:", lipgloss.NewStyle().Bold(true).Foreground(accent).Render(state))

	track := max(3, min(width, 41))
	col := r.column(track)
	lane := secondary(ctx, strings.Repeat("·", col)) +
		lipgloss.NewStyle().Foreground(accent).Render("●") +
		secondary(ctx, strings.Repeat("·", track-col-1))

	return truncateLines(stack(ctx,
		instructions(ctx, "Enable Reduce Motion in Accessibility settings. Tap the button below to see the difference!", width),
		status,
		filledButton(ctx, "Toggle Animation", accent),
		lane,
		lipgloss.PlaceHorizontal(track, lipgloss.Center, secondary(ctx, caption)),
	), width)
}
