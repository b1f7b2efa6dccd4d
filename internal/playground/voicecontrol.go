package playground

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nutritionlabel/internal/display"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayNames
	overlayNumbers
	overlayGrid
)

const waitingFeedback = "Waiting for voice command..."

var voiceOptions = []string{"Option 1", "Option 2", "Option 3"}

// voiceTargets are the tappable controls in "show numbers" order.
var voiceTargets = []string{"like", "share", "save", "notifications", "option 1", "option 2", "option 3", "reset", "confirm"}

// voiceControl accepts spoken-style commands typed into a prompt.
type voiceControl struct {
	color         string
	input         textinput.Model
	feedback      string
	likeCount     int
	notifications bool
	text          string
	option        int
	overlay       overlay
}

func newVoiceControl(env Env) Playground {
	in := textinput.New()
	in.Prompt = "say> "
	in.Placeholder = "tap like"
	in.CharLimit = 80
	in.Focus()
	return &voiceControl{color: env.Feature.Color, input: in, feedback: waitingFeedback}
}

func (v *voiceControl) Hints() []Hint {
	return []Hint{{"enter", "run command"}}
}

func (v *voiceControl) Update(_ display.Context, msg tea.Msg) (Playground, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEnter {
		v.run(v.input.Value())
		v.input.Reset()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// run executes one command line and updates the feedback text.
func (v *voiceControl) run(line string) {
	raw := strings.TrimSpace(line)
	cmd := strings.ToLower(raw)
	switch {
	case cmd == "":
		return
	case cmd == "show names":
		v.overlay = overlayNames
		v.feedback = "Showing names"
	case cmd == "show numbers":
		v.overlay = overlayNumbers
		v.feedback = "Showing numbers"
	case cmd == "show grid":
		v.overlay = overlayGrid
		v.feedback = "Showing grid"
	case cmd == "hide names", cmd == "hide numbers", cmd == "hide grid", cmd == "hide":
		v.overlay = overlayNone
		v.feedback = waitingFeedback
	case cmd == "toggle notifications":
		v.setNotifications(!v.notifications)
	case cmd == "turn on notifications":
		v.setNotifications(true)
	case cmd == "turn off notifications":
		v.setNotifications(false)
	case strings.HasPrefix(cmd, "type "):
		v.text = strings.TrimSpace(raw[len("type "):])
		if v.text != "" {
			v.feedback = "Text entered: " + v.text
		}
	case strings.HasPrefix(cmd, "choose "):
		if !v.choose(strings.TrimSpace(cmd[len("choose "):])) {
			v.unknown(raw)
		}
	case strings.HasPrefix(cmd, "tap "):
		if !v.tap(strings.TrimSpace(cmd[len("tap "):])) {
			v.unknown(raw)
		}
	default:
		if !v.tap(cmd) {
			v.unknown(raw)
		}
	}
}

func (v *voiceControl) unknown(raw string) {
	v.feedback = fmt.Sprintf("Didn't catch %q. Try \"tap like\"", raw)
}

func (v *voiceControl) setNotifications(on bool) {
	v.notifications = on
	if on {
		v.feedback = "Notifications ON"
	} else {
		v.feedback = "Notifications OFF"
	}
}

// choose selects an option by "option 2", "2" or its position.
func (v *voiceControl) choose(name string) bool {
	name = strings.TrimPrefix(name, "option ")
	n, err := strconv.Atoi(name)
	if err != nil || n < 1 || n > len(voiceOptions) {
		return false
	}
	v.option = n - 1
	v.feedback = "Selected: " + voiceOptions[v.option]
	return true
}

// tap activates a control by name, or by number as shown by "show numbers".
func (v *voiceControl) tap(name string) bool {
	if n, err := strconv.Atoi(name); err == nil {
		if n < 1 || n > len(voiceTargets) {
			return false
		}
		name = voiceTargets[n-1]
	}
	switch name {
	case "like":
		v.likeCount++
		v.feedback = fmt.Sprintf("Liked! Count: %d", v.likeCount)
	case "share":
		v.feedback = "Share button activated!"
	case "save":
		v.feedback = "Item saved!"
	case "notifications":
		v.setNotifications(!v.notifications)
	case "reset":
		v.likeCount = 0
		v.text = ""
		v.option = 0
		v.notifications = false
		v.overlay = overlayNone
		v.feedback = "Everything reset!"
	case "confirm":
		v.feedback = "Action confirmed! ✓"
	default:
		if strings.HasPrefix(name, "option ") {
			return v.choose(name)
		}
		return false
	}
	return true
}

// label decorates a control name for the active overlay.
func (v *voiceControl) label(target, text string) string {
	switch v.overlay {
	case overlayNames:
		return text + " ‹" + target + "›"
	case overlayNumbers:
		for i, t := range voiceTargets {
			if t == target {
				return fmt.Sprintf("%d %s", i+1, text)
			}
		}
	}
	return text
}

func (v *voiceControl) View(ctx display.Context, width int) string {
	p := ctx.Palette()
	accent := p.Color(v.color)

	help := strings.Join([]string{
		heading(ctx, "Voice Control Commands to Try:"),
		"🏷 \"Show names\" - See button labels",
		"# \"Show numbers\" - See item numbers",
		"▦ \"Show grid\" - Show precise tap grid",
		"☝ \"Tap [name]\" - Tap any button",
		"⌶ \"Type [text]\" - Dictate text",
	}, "\n")

	feedback := panel(ctx, lipgloss.NewStyle().Bold(true).Foreground(accent).Render(v.feedback),
		width, p.Tint(v.color, ctx.PanelOpacity()))

	buttons := row(ctx, width, 2,
		filledButton(ctx, v.label("like", "Like"), p.Color("pink")),
		filledButton(ctx, v.label("share", "Share"), p.Color("blue")),
		filledButton(ctx, v.label("save", "Save"), p.Color("green")),
	)

	state := "OFF"
	if v.notifications {
		state = "ON"
	}
	toggle := v.label("notifications", "Notifications") + "  " + outlineButton(state, accent)

	typed := v.text
	if typed == "" {
		typed = secondary(ctx, "Tap or speak to type")
	}
	field := secondary(ctx, "Say: \"Type your message\"") + "\n" + "│ " + typed

	opts := make([]string, len(voiceOptions))
	for i, o := range voiceOptions {
		label := v.label(strings.ToLower(o), o)
		if i == v.option {
			opts[i] = filledButton(ctx, label, accent)
		} else {
			opts[i] = outlineButton(label, accent)
		}
	}
	choose := secondary(ctx, "Choose an option:") + "\n" + row(ctx, width, 1, opts...)

	actions := row(ctx, width, 2,
		outlineButton(v.label("reset", "Reset"), accent),
		filledButton(ctx, v.label("confirm", "Confirm"), accent),
	)

	blocks := []string{
		instructions(ctx, help, width),
		feedback,
		buttons,
		toggle,
		field,
		choose,
		actions,
	}
	if v.overlay == overlayGrid {
		blocks = append(blocks, grid(ctx, width))
	}
	v.input.Width = max(1, width-lipgloss.Width(v.input.Prompt)-1)
	blocks = append(blocks, v.input.View())
	return truncateLines(stack(ctx, blocks...), width)
}

// grid is the numbered tap grid shown by "show grid".
func grid(ctx display.Context, width int) string {
	cell := max(3, (width-4)/3)
	line := secondary(ctx, strings.Repeat("─", cell)+"┼"+strings.Repeat("─", cell)+"┼"+strings.Repeat("─", cell))
	cellText := func(n int) string {
		return lipgloss.PlaceHorizontal(cell, lipgloss.Center, strconv.Itoa(n))
	}
	rows := make([]string, 0, 5)
	for r := 0; r < 3; r++ {
		if r > 0 {
			rows = append(rows, line)
		}
		rows = append(rows, cellText(r*3+1)+secondary(ctx, "│")+cellText(r*3+2)+secondary(ctx, "│")+cellText(r*3+3))
	}
	return strings.Join(rows, "\n")
}
