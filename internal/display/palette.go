package display

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type swatch struct {
	light, dark             string
	lightHigher, darkHigher string
}

var named = map[string]swatch{
	"blue":   {"#007AFF", "#0A84FF", "#0040DD", "#409CFF"},
	"purple": {"#AF52DE", "#BF5AF2", "#8944AB", "#DA8FFF"},
	"green":  {"#34C759", "#30D158", "#248A3D", "#30DB5B"},
	"indigo": {"#5856D6", "#5E5CE6", "#3634A3", "#7D7AFF"},
	"orange": {"#FF9500", "#FF9F0A", "#C93400", "#FFB340"},
	"gray":   {"#8E8E93", "#8E8E93", "#6C6C70", "#AEAEB2"},
	"teal":   {"#30B0C7", "#40C8E0", "#008299", "#5DE6FF"},
	"pink":   {"#FF2D55", "#FF375F", "#D30F45", "#FF6482"},
	"red":    {"#FF3B30", "#FF453A", "#D70015", "#FF6961"},
}

// Palette is the resolved set of colors for one scheme and contrast level.
type Palette struct {
	Scheme   ColorScheme
	Contrast Contrast

	Text       lipgloss.Color
	Secondary  lipgloss.Color
	Tertiary   lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	OnAccent   lipgloss.Color
}

func NewPalette(scheme ColorScheme, contrast Contrast) Palette {
	p := Palette{Scheme: scheme, Contrast: contrast}
	increased := contrast == IncreasedContrast
	if scheme == Dark {
		p.Text = "#FFFFFF"
		p.Secondary = pick(increased, "#C7C7CC", "#98989F")
		p.Tertiary = pick(increased, "#98989F", "#636366")
		p.Background = "#000000"
		p.Surface = "#1C1C1E"
		p.Border = pick(increased, "#8E8E93", "#38383A")
		p.OnAccent = "#FFFFFF"
	} else {
		p.Text = "#000000"
		p.Secondary = pick(increased, "#3A3A3C", "#6E6E73")
		p.Tertiary = pick(increased, "#6E6E73", "#AEAEB2")
		p.Background = "#F2F2F7"
		p.Surface = "#FFFFFF"
		p.Border = pick(increased, "#6E6E73", "#C6C6C8")
		p.OnAccent = "#FFFFFF"
	}
	p.Accent = p.Color("blue")
	return p
}

func pick(cond bool, a, b string) lipgloss.Color {
	if cond {
		return lipgloss.Color(a)
	}
	return lipgloss.Color(b)
}

// Color resolves a named color ("blue", "teal", ...). Unknown names fall back
// to the secondary text color.
func (p Palette) Color(name string) lipgloss.Color {
	s, ok := named[name]
	if !ok {
		return p.Secondary
	}
	switch {
	case p.Scheme == Dark && p.Contrast == IncreasedContrast:
		return lipgloss.Color(s.darkHigher)
	case p.Scheme == Dark:
		return lipgloss.Color(s.dark)
	case p.Contrast == IncreasedContrast:
		return lipgloss.Color(s.lightHigher)
	default:
		return lipgloss.Color(s.light)
	}
}

// Tint blends a named color over the surface at the given opacity, the
// terminal stand-in for a translucent fill.
func (p Palette) Tint(name string, opacity float64) lipgloss.Color {
	return blend(p.Surface, p.Color(name), opacity)
}

// Fill is a tint of the secondary text color, used for neutral panels.
func (p Palette) Fill(opacity float64) lipgloss.Color {
	return blend(p.Surface, p.Secondary, opacity)
}

func blend(base, over lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity <= 0 {
		return base
	}
	if opacity >= 1 {
		return over
	}
	b, err := colorful.Hex(string(base))
	if err != nil {
		return base
	}
	o, err := colorful.Hex(string(over))
	if err != nil {
		return base
	}
	return lipgloss.Color(b.BlendRgb(o, opacity).Clamped().Hex())
}

// PanelOpacity is the tint used behind highlighted panels: stronger when
// contrast is increased.
func (c Context) PanelOpacity() float64 {
	if c.Contrast == IncreasedContrast {
		return 0.2
	}
	return 0.1
}
