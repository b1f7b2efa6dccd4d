package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen is one entry of the navigation stack. Update returns true to be
// popped.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Popup screens render centered over the screen below them.
type Popup interface {
	Popup() bool
}

// Capturing screens want every key, so page-level shortcuts are skipped.
type Capturing interface {
	Capturing() bool
}

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

// page returns the topmost screen that is not a popup, and its index.
func (s ScreenStack) page() (Screen, int) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if !isPopup(s.items[i]) {
			return s.items[i], i
		}
	}
	return nil, -1
}

func isPopup(s Screen) bool {
	p, ok := s.(Popup)
	return ok && p.Popup()
}

func isCapturing(s Screen) bool {
	if isPopup(s) {
		return true
	}
	c, ok := s.(Capturing)
	return ok && c.Capturing()
}
