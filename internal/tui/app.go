// Package tui is the terminal front end: a stack of screens over the
// catalog page, driven by bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nutritionlabel/internal/display"
)

type Model struct {
	width     int
	height    int
	session   *Session
	screens   ScreenStack
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	fade      fade
}

func NewModel(s *Session) Model {
	if s.Keys == nil {
		s.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if s.HistoryLimit <= 0 {
		s.HistoryLimit = 5
	}
	m := Model{
		session:  s,
		commands: NewCommandRegistry(DefaultCommands(s)),
		status:   "Ready",
		width:    100,
		height:   32,
	}
	m.screens.Push(NewListScreen(s))
	return m
}

func (m Model) Init() tea.Cmd {
	return m.session.loadHistory()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

// push adds a screen, fading pages in unless reduce motion is on.
func (m *Model) push(s Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	if isPopup(s) || m.session.Display.Transition() == display.TransitionIdentity {
		m.fade.stop()
		m.screens.Push(s)
		return nil
	}
	from := m.body()
	m.screens.Push(s)
	return m.fade.start(from)
}

// pop removes the top screen. The catalog page at the bottom stays.
func (m *Model) pop() tea.Cmd {
	if m.screens.Len() <= 1 {
		return nil
	}
	top := m.screens.Top()
	if isPopup(top) || m.session.Display.Transition() == display.TransitionIdentity {
		m.fade.stop()
		m.screens.Pop()
		return nil
	}
	from := m.body()
	m.screens.Pop()
	return m.fade.start(from)
}

func (m *Model) commandScreen(scope string) Screen {
	return NewCommandScreen(m.session, func(query string) []CommandResult {
		return m.commands.Search(query, scope, m)
	})
}
