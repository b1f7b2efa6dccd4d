package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nutritionlabel/internal/catalog"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// OpenFeatureMsg asks the app to push the detail page of a feature.
type OpenFeatureMsg struct {
	ID catalog.FeatureID
}

// historyMsg carries the stored recents and favorites, read at generation gen.
type historyMsg struct {
	gen       uint64
	recent    []catalog.FeatureID
	favorites []catalog.FeatureID
	err       error
}

// storeDoneMsg acknowledges a history write.
type storeDoneMsg struct {
	status string
	err    error
}

// settingsClosedMsg is sent when the display settings popup closes.
type settingsClosedMsg struct {
	changed bool
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func pushCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

func openCmd(id catalog.FeatureID) tea.Cmd {
	return func() tea.Msg { return OpenFeatureMsg{ID: id} }
}
