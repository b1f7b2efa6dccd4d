package display

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestAccessibilitySizeThreshold(t *testing.T) {
	for s := XSmall; s <= Accessibility5; s++ {
		c := Context{TextSize: s}
		require.Equal(t, s >= Accessibility1, c.IsAccessibilitySize(), s.String())
	}
}

func TestTextSizeStepsClamp(t *testing.T) {
	require.Equal(t, Accessibility5, Accessibility5.Larger())
	require.Equal(t, XSmall, XSmall.Smaller())
	require.Equal(t, Accessibility1, XXXLarge.Larger())
	require.Equal(t, XXXLarge, Accessibility1.Smaller())
}

func TestParseRoundTripsNames(t *testing.T) {
	for s := XSmall; s <= Accessibility5; s++ {
		got, err := ParseTextSize(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := ParseTextSize(" ACCESSIBILITY3 ")
	require.NoError(t, err)
	require.Equal(t, Accessibility3, got)

	_, err = ParseTextSize("huge")
	require.True(t, errors.Is(err, ErrInvalidValue))
	_, err = ParseColorScheme("sepia")
	require.True(t, errors.Is(err, ErrInvalidValue))
	_, err = ParseContrast("max")
	require.True(t, errors.Is(err, ErrInvalidValue))

	scheme, err := ParseColorScheme("Light")
	require.NoError(t, err)
	require.Equal(t, Light, scheme)
	contrast, err := ParseContrast("increased")
	require.NoError(t, err)
	require.Equal(t, IncreasedContrast, contrast)
}

func TestReduceMotionDisablesAnimationAndCrossfade(t *testing.T) {
	c := Default()
	require.Equal(t, AnimationSpring, c.Animation())
	require.Equal(t, TransitionCrossfade, c.Transition())

	c.ReduceMotion = true
	require.Equal(t, AnimationNone, c.Animation())
	require.Equal(t, TransitionIdentity, c.Transition())
}

func TestPaletteFollowsSchemeAndContrast(t *testing.T) {
	dark := NewPalette(Dark, StandardContrast)
	light := NewPalette(Light, StandardContrast)
	require.Equal(t, lipgloss.Color("#0A84FF"), dark.Color("blue"))
	require.Equal(t, lipgloss.Color("#007AFF"), light.Color("blue"))
	require.Equal(t, lipgloss.Color("#409CFF"), NewPalette(Dark, IncreasedContrast).Color("blue"))
	require.Equal(t, lipgloss.Color("#0040DD"), NewPalette(Light, IncreasedContrast).Color("blue"))
	require.Equal(t, dark.Secondary, dark.Color("chartreuse"))
	require.NotEqual(t, dark.Text, light.Text)
}

func TestTintBlendsOverSurface(t *testing.T) {
	p := NewPalette(Light, StandardContrast)
	require.Equal(t, p.Surface, p.Tint("red", 0))
	require.Equal(t, p.Color("red"), p.Tint("red", 1))
	require.NotEqual(t, p.Tint("red", 0.1), p.Tint("red", 0.2))

	c := Default()
	require.Equal(t, 0.1, c.PanelOpacity())
	c.Contrast = IncreasedContrast
	require.Equal(t, 0.2, c.PanelOpacity())
}
