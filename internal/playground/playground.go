// Package playground holds the interactive "Try It Out" demos shown on a
// feature page. Each demo is a small state machine driven by bubbletea
// messages and rendered against the current display context.
package playground

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/display"
)

// Hint is a key shown in the footer while a playground has focus.
type Hint struct {
	Key  string
	Desc string
}

// Playground is one feature demo. Update receives key messages only while the
// demo is focused; every other message (timers, window sizes) always arrives.
type Playground interface {
	Update(ctx display.Context, msg tea.Msg) (Playground, tea.Cmd)
	View(ctx display.Context, width int) string
	Hints() []Hint
}

// Env is what a constructor gets to build its demo.
type Env struct {
	Feature        catalog.Feature
	SampleVideoURL string
}

type Constructor func(env Env) Playground

var constructors = map[catalog.FeatureID]Constructor{
	catalog.VoiceOver:                 newVoiceOver,
	catalog.VoiceControl:              newVoiceControl,
	catalog.LargerText:                newLargerText,
	catalog.DarkInterface:             newDarkInterface,
	catalog.DifferentiateWithoutColor: newDifferentiate,
	catalog.SufficientContrast:        newContrast,
	catalog.ReducedMotion:             newReducedMotion,
	catalog.Captions:                  newCaptions,
	catalog.AudioDescriptions:         newAudioDescriptions,
}

// New builds the demo for env.Feature, falling back to the generic demo for
// features without a dedicated one.
func New(env Env) Playground {
	if c, ok := constructors[env.Feature.ID]; ok {
		return c(env)
	}
	return newGeneric(env)
}

// HasDemo reports whether id has a dedicated demo.
func HasDemo(id catalog.FeatureID) bool {
	_, ok := constructors[id]
	return ok
}
