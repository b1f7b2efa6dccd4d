package tui

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/display"
)

type memStore struct {
	mu        sync.Mutex
	visits    []catalog.FeatureID
	favorites map[catalog.FeatureID]bool
	failVisit bool
}

func newMemStore() *memStore {
	return &memStore{favorites: map[catalog.FeatureID]bool{}}
}

func (s *memStore) RecordVisit(_ context.Context, id catalog.FeatureID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failVisit {
		return errors.New("disk full")
	}
	s.visits = append(s.visits, id)
	return nil
}

func (s *memStore) Recent(_ context.Context, limit int) ([]catalog.FeatureID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []catalog.FeatureID
	for i := len(s.visits) - 1; i >= 0 && len(out) < limit; i-- {
		if !slices.Contains(out, s.visits[i]) {
			out = append(out, s.visits[i])
		}
	}
	return out, nil
}

func (s *memStore) SetFavorite(_ context.Context, id catalog.FeatureID, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.favorites[id] = true
	} else {
		delete(s.favorites, id)
	}
	return nil
}

func (s *memStore) Favorites(context.Context) ([]catalog.FeatureID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []catalog.FeatureID
	for id := range s.favorites {
		out = append(out, id)
	}
	slices.Sort(out)
	return out, nil
}

func (s *memStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits = nil
	s.favorites = map[catalog.FeatureID]bool{}
	return nil
}

func testSession(t *testing.T, store Store) *Session {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	ctx := display.Default()
	ctx.ReduceMotion = true
	return &Session{
		Display:        ctx,
		Catalog:        cat,
		Store:          store,
		Log:            zerolog.Nop(),
		BadgeSpacing:   1,
		HistoryLimit:   5,
		SampleVideoURL: "https://example.test/video.m3u8",
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// drain runs cmd and feeds the app's own messages back into m, following
// batches. Widget timers such as cursor blinks are dropped.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "message loop did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case StatusMsg, PushScreenMsg, PopScreenMsg, CommandExecuteMsg,
			OpenFeatureMsg, historyMsg, storeDoneMsg, settingsClosedMsg, fadeFrameMsg:
		default:
			continue
		}
		updated, c := m.Update(msg)
		m = updated.(Model)
		queue = append(queue, c)
	}
	return m
}

// press sends keys one at a time and drains the commands each produces.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, cmd := m.Update(keyMsg(k))
		m = drain(t, updated.(Model), cmd)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

func newTestModel(t *testing.T, store Store) Model {
	t.Helper()
	m := NewModel(testSession(t, store))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	return drain(t, m, m.Init())
}
