// Package display carries the accessibility-driven presentation settings that
// every view receives explicitly: text size, color scheme, contrast, reduce
// motion and differentiate without color.
package display

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is wrapped by every parse error in this package.
var ErrInvalidValue = errors.New("invalid display value")

// TextSize mirrors the dynamic type ladder. Sizes from Accessibility1 upward
// switch views into their stacked, reduced presentation.
type TextSize int

const (
	XSmall TextSize = iota
	Small
	Medium
	Large
	XLarge
	XXLarge
	XXXLarge
	Accessibility1
	Accessibility2
	Accessibility3
	Accessibility4
	Accessibility5
)

var textSizeNames = []string{
	"xSmall", "small", "medium", "large", "xLarge", "xxLarge", "xxxLarge",
	"accessibility1", "accessibility2", "accessibility3", "accessibility4", "accessibility5",
}

func (s TextSize) String() string {
	if s < XSmall || s > Accessibility5 {
		return fmt.Sprintf("TextSize(%d)", int(s))
	}
	return textSizeNames[s]
}

// IsAccessibility reports whether s is one of the large accessibility sizes.
func (s TextSize) IsAccessibility() bool {
	return s >= Accessibility1
}

// Larger steps up one size, stopping at Accessibility5.
func (s TextSize) Larger() TextSize {
	if s >= Accessibility5 {
		return Accessibility5
	}
	return s + 1
}

// Smaller steps down one size, stopping at XSmall.
func (s TextSize) Smaller() TextSize {
	if s <= XSmall {
		return XSmall
	}
	return s - 1
}

func ParseTextSize(v string) (TextSize, error) {
	key := strings.ToLower(strings.TrimSpace(v))
	for i, name := range textSizeNames {
		if strings.ToLower(name) == key {
			return TextSize(i), nil
		}
	}
	return Large, fmt.Errorf("%w: text size %q", ErrInvalidValue, v)
}

type ColorScheme int

const (
	Light ColorScheme = iota
	Dark
)

func (c ColorScheme) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}

func ParseColorScheme(v string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Dark, fmt.Errorf("%w: color scheme %q", ErrInvalidValue, v)
}

type Contrast int

const (
	StandardContrast Contrast = iota
	IncreasedContrast
)

func (c Contrast) String() string {
	if c == IncreasedContrast {
		return "increased"
	}
	return "standard"
}

func ParseContrast(v string) (Contrast, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "standard":
		return StandardContrast, nil
	case "increased":
		return IncreasedContrast, nil
	}
	return StandardContrast, fmt.Errorf("%w: contrast %q", ErrInvalidValue, v)
}

// Animation is how state changes are animated.
type Animation int

const (
	AnimationSpring Animation = iota
	AnimationNone
)

// Transition is how one page replaces another.
type Transition int

const (
	TransitionCrossfade Transition = iota
	TransitionIdentity
)

// Context is passed down the view tree in place of ambient environment lookups.
type Context struct {
	TextSize                  TextSize
	ColorScheme               ColorScheme
	Contrast                  Contrast
	ReduceMotion              bool
	DifferentiateWithoutColor bool
}

// Default is the presentation used when nothing is configured.
func Default() Context {
	return Context{TextSize: Large, ColorScheme: Dark, Contrast: StandardContrast}
}

// IsAccessibilitySize reports whether views should hide decorative content and
// stack their rows.
func (c Context) IsAccessibilitySize() bool {
	return c.TextSize.IsAccessibility()
}

// Animation is AnimationNone when reduce motion is on.
func (c Context) Animation() Animation {
	if c.ReduceMotion {
		return AnimationNone
	}
	return AnimationSpring
}

// Transition is an instant swap when reduce motion is on.
func (c Context) Transition() Transition {
	if c.ReduceMotion {
		return TransitionIdentity
	}
	return TransitionCrossfade
}

// Palette resolves the colors for this scheme and contrast.
func (c Context) Palette() Palette {
	return NewPalette(c.ColorScheme, c.Contrast)
}
