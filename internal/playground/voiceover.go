package playground

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

const (
	voAddItem = iota
	voCount
	voLike
	voWeather
	voVolume
	voElements
)

const volumeStep = 5

// voiceOver walks a focus ring over a few controls and shows what a screen
// reader would speak for the focused one.
type voiceOver struct {
	color   string
	focus   int
	counter int
	liked   bool
	volume  int
}

func newVoiceOver(env Env) Playground {
	return &voiceOver{color: env.Feature.Color, volume: 50}
}

func (v *voiceOver) Hints() []Hint {
	return []Hint{{"↑/↓", "move focus"}, {"enter", "activate"}, {"←/→", "adjust"}}
}

func (v *voiceOver) Update(_ display.Context, msg tea.Msg) (Playground, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case isKey(km, "down", "j"):
		v.focus = (v.focus + 1) % voElements
	case isKey(km, "up", "k"):
		v.focus = (v.focus + voElements - 1) % voElements
	case isKey(km, "enter", " ", "space"):
		switch v.focus {
		case voAddItem:
			v.counter++
		case voLike:
			v.liked = !v.liked
		}
	case isKey(km, "right", "l"):
		if v.focus == voVolume {
			v.volume = min(100, v.volume+volumeStep)
		}
	case isKey(km, "left", "h"):
		if v.focus == voVolume {
			v.volume = max(0, v.volume-volumeStep)
		}
	}
	return v, nil
}

// announcement is label, value and hint of the focused element.
func (v *voiceOver) announcement() string {
	var label, value, hint string
	switch v.focus {
	case voAddItem:
		label = "Add item button"
		value = fmt.Sprintf("Current count: %d items", v.counter)
		hint = "Double tap to add an item to the counter"
	case voCount:
		label = "Item count"
		value = fmt.Sprintf("%d items", v.counter)
	case voLike:
		label, value, hint = "Like", "Not liked", "Double tap to add like"
		if v.liked {
			label, value, hint = "Unlike", "Liked", "Double tap to remove like"
		}
	case voWeather:
		label = "Weather display"
		value = "Sunny, 75 degrees fahrenheit"
	case voVolume:
		label = "Volume slider"
		value = fmt.Sprintf("%d percent", v.volume)
		hint = "Swipe up or down to adjust volume"
	}
	out := label + ", " + value
	if hint != "" {
		out += ". " + hint
	}
	return out
}

func (v *voiceOver) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	accent := p.Color(v.color)
	ring := func(i int, s string) string {
		if i == v.focus {
			return lipgloss.NewStyle().Foreground(accent).Render("▸ ") + s
		}
		return "  " + s
	}

	add := filledButton(ctx, "⊕ Add Item", accent)
	count := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(fmt.Sprint(v.counter))

	likeLabel := "♡ Like"
	like := outlineButton(likeLabel, accent)
	if v.liked {
		like = filledButton(ctx, "♥ Liked", accent)
	}

	weather := lipgloss.NewStyle().Foreground(accent).Render("☀") + " " + secondary(ctx, "Weather Icon")

	track := max(4, min(20, width-16))
	filled := v.volume * track / 100
	slider := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(p.Tertiary).Render(strings.Repeat("─", track-filled))
	volume := "Volume " + slider + " " + secondary(ctx, fmt.Sprintf("%d%%", v.volume))

	controls := []string{
		ring(voAddItem, add),
		ring(voCount, count),
		ring(voLike, like),
		ring(voWeather, weather),
		ring(voVolume, volume),
	}
	if !ctx.IsAccessibilitySize() {
		controls = []string{
			ring(voAddItem, add) + "  " + ring(voCount, count),
			ring(voLike, like),
			ring(voWeather, weather),
			ring(voVolume, volume),
		}
	}

	speech := panel(ctx, lipgloss.NewStyle().Italic(true).Render("VoiceOver: \""+v.announcement()+"\""),
		width, p.Tint(v.color, ctx.PanelOpacity()))

	return truncateLines(stack(ctx,
		instructions(ctx, "Enable VoiceOver (triple-click side button) and try navigating these elements by swiping right/left. Double-tap to activate.", width),
		strings.Join(controls, "\n"),
		speech,
	), width)
}
