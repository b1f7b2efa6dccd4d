package playground

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

// media is the shared shape of the captions and audio description demos: a
// sample video whose text track can be switched on and off.
type media struct {
	color  string
	url    string
	on     bool
	track  string
	intro  string
	sample string
	note   string
	icon   string
	italic bool
}

func newCaptions(env Env) Playground {
	return &media{
		color:  env.Feature.Color,
		url:    env.SampleVideoURL,
		on:     true,
		track:  "CC",
		icon:   "💬",
		intro:  "Enable Closed Captions in supported video apps to see text for dialogue and sounds.",
		sample: "[Background Music Playing]",
		note:   "Captions appear in video content",
	}
}

func newAudioDescriptions(env Env) Playground {
	return &media{
		color:  env.Feature.Color,
		url:    env.SampleVideoURL,
		on:     true,
		track:  "AD",
		icon:   "〰",
		intro:  "Enable Audio Descriptions in supported video content to hear narrated descriptions of visual elements.",
		sample: "🔊 'A person walks through a sunny park...'",
		note:   "Audio descriptions narrate visual scenes",
		italic: true,
	}
}

func (m *media) Hints() []Hint {
	return []Hint{{"enter", m.track + " on/off"}}
}

func (m *media) Update(_ display.Context, msg tea.Msg) (Playground, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && isKey(km, "enter", " ", "space") {
		m.on = !m.on
	}
	return m, nil
}

func (m *media) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	accent := p.Color(m.color)

	badge := outlineButton(m.track+" off", p.Secondary)
	if m.on {
		badge = filledButton(ctx, m.track+" on", accent)
	}
	video := secondary(ctx, "▶ Sample video") + "  " + badge
	if m.url != "" {
		video += "\n" + secondary(ctx, m.url)
	}

	stage := []string{lipgloss.NewStyle().Foreground(accent).Render(m.icon)}
	if m.on {
		sample := lipgloss.NewStyle().Bold(true).Italic(m.italic).Render(m.sample)
		stage = append(stage, sample)
	}
	stage = append(stage, secondary(ctx, m.note))

	return truncateLines(stack(ctx,
		instructions(ctx, m.intro, width),
		video,
		panel(ctx, lipgloss.JoinVertical(lipgloss.Center, stage...), width, p.Tint(m.color, ctx.PanelOpacity())),
	), width)
}
