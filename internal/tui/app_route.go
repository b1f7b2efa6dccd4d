package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nutritionlabel/internal/display"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case historyMsg:
		if msg.err != nil {
			m.session.Log.Error().Err(msg.err).Msg("history")
			m.SetError(msg.err)
			return m, nil
		}
		cmd := m.session.applyHistory(msg)
		return m, cmd
	case storeDoneMsg:
		if msg.err != nil {
			m.session.Log.Error().Err(msg.err).Msg("history write")
			m.SetError(msg.err)
		} else if msg.status != "" {
			m.SetStatus(msg.status)
		}
		cmd := m.session.writeDone(msg)
		return m, cmd
	case OpenFeatureMsg:
		f, err := m.session.Catalog.Get(string(msg.ID))
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		m.session.Log.Info().Str("feature", string(f.ID)).Msg("open feature")
		m.SetStatus(f.Name)
		cmd := tea.Batch(m.push(NewDetailScreen(m.session, f)), m.session.recordVisit(f.ID))
		return m, cmd
	case PushScreenMsg:
		cmd := m.push(msg.Screen)
		return m, cmd
	case PopScreenMsg:
		cmd := m.pop()
		return m, cmd
	case settingsClosedMsg:
		if !msg.changed {
			return m, nil
		}
		m.session.Log.Info().Str("text_size", m.session.Display.TextSize.String()).Msg("display settings closed")
		cmd := m.session.saveDisplay()
		return m, cmd
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case fadeFrameMsg:
		cmd := m.fade.advance(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		top := m.screens.Top()
		if top == nil {
			return m, nil
		}
		if !isCapturing(top) {
			if handled, cmd := m.handlePageKey(msg); handled {
				return m, cmd
			}
		}
		next, cmd, pop := top.Update(msg)
		if pop {
			popCmd := m.pop()
			return m, tea.Batch(cmd, popCmd)
		}
		if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		return m, cmd
	}

	// Timers and other non-key messages reach every screen, so animations
	// keep running under a popup.
	cmds := make([]tea.Cmd, 0, m.screens.Len())
	for i, s := range m.screens.items {
		next, cmd, _ := s.Update(msg)
		if next != nil {
			m.screens.items[i] = next
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handlePageKey runs the shortcuts shared by the catalog and detail pages.
func (m *Model) handlePageKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	scope := m.ActiveScope()
	keys := m.session.Keys
	switch {
	case keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return true, tea.Quit
	case keys.IsAction(msg, "open-command-palette", scope):
		m.screens.Push(m.commandScreen(scope))
		return true, nil
	case keys.IsAction(msg, "open-settings", scope):
		m.screens.Push(NewSettingsScreen(m.session))
		return true, nil
	case keys.IsAction(msg, "text-larger", scope):
		return true, m.resize(display.TextSize.Larger)
	case keys.IsAction(msg, "text-smaller", scope):
		return true, m.resize(display.TextSize.Smaller)
	}
	return false, nil
}

func (m *Model) resize(step func(display.TextSize) display.TextSize) tea.Cmd {
	cmd := m.session.changeDisplay(func(c *display.Context) { c.TextSize = step(c.TextSize) })
	m.SetStatus("Text size: " + m.session.Display.TextSize.String())
	return cmd
}
