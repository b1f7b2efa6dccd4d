package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/display"
)

const storeTimeout = 5 * time.Second

// Session is the state shared by every screen: the catalog, the display
// context and the stored history. Screens hold a pointer to it and read it at
// render time, so a settings change reaches every page at once.
type Session struct {
	Context        context.Context
	Display        display.Context
	Catalog        *catalog.Catalog
	Store          Store
	Keys           *KeyRegistry
	Log            zerolog.Logger
	BadgeSpacing   int
	HistoryLimit   int
	SampleVideoURL string
	// SaveDisplay persists display settings. Nil disables saving.
	SaveDisplay func(display.Context) error

	favorites map[catalog.FeatureID]bool
	recent    []catalog.FeatureID

	// history generation, writes not yet acknowledged, and whether a reload
	// waits for them
	gen          uint64
	pending      int
	reloadWanted bool

	saveSeq  uint64
	saveMu   sync.Mutex
	savedSeq uint64
}

func (s *Session) ctx() (context.Context, context.CancelFunc) {
	parent := s.Context
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, storeTimeout)
}

func (s *Session) IsFavorite(id catalog.FeatureID) bool {
	return s.favorites[id]
}

// Recent returns the recently viewed features that are still in the catalog.
func (s *Session) Recent() []catalog.Feature {
	out := make([]catalog.Feature, 0, len(s.recent))
	for _, id := range s.recent {
		if f, ok := s.Catalog.Lookup(id); ok {
			out = append(out, f)
		}
	}
	return out
}

// loadHistory reads recents and favorites from the store. While writes are
// in flight the read is deferred until the last one is acknowledged.
func (s *Session) loadHistory() tea.Cmd {
	if s.Store == nil {
		return nil
	}
	if s.pending > 0 {
		s.reloadWanted = true
		return nil
	}
	s.reloadWanted = false
	gen, limit := s.gen, s.HistoryLimit
	return func() tea.Msg {
		ctx, cancel := s.ctx()
		defer cancel()
		recent, err := s.Store.Recent(ctx, limit)
		if err != nil {
			return historyMsg{gen: gen, err: fmt.Errorf("load history: %w", err)}
		}
		favs, err := s.Store.Favorites(ctx)
		if err != nil {
			return historyMsg{gen: gen, err: fmt.Errorf("load favorites: %w", err)}
		}
		return historyMsg{gen: gen, recent: recent, favorites: favs}
	}
}

// applyHistory installs a loaded history. A load that started before the
// latest local change, or that may have raced a write, is dropped and a
// fresh one is returned instead.
func (s *Session) applyHistory(msg historyMsg) tea.Cmd {
	if msg.gen != s.gen || s.pending > 0 {
		s.Log.Debug().Uint64("gen", msg.gen).Uint64("current", s.gen).Msg("stale history dropped")
		s.reloadWanted = true
		return s.loadHistory()
	}
	s.recent = msg.recent
	s.favorites = make(map[catalog.FeatureID]bool, len(msg.favorites))
	for _, id := range msg.favorites {
		s.favorites[id] = true
	}
	s.syncKeys()
	return nil
}

// syncKeys offers the numbered recent shortcuts only while there are recents.
func (s *Session) syncKeys() {
	if s.Keys != nil {
		s.Keys.SetEnabled("open-recent", len(s.Recent()) > 0)
	}
}

// write runs op against the store in the background. Every write bumps the
// history generation; its completion arrives as a storeDoneMsg.
func (s *Session) write(what, done string, op func(context.Context) error) tea.Cmd {
	s.gen++
	if s.Store == nil {
		if done == "" {
			return nil
		}
		return StatusCmd(done)
	}
	s.pending++
	return func() tea.Msg {
		ctx, cancel := s.ctx()
		defer cancel()
		if err := op(ctx); err != nil {
			return storeDoneMsg{err: fmt.Errorf("%s: %w", what, err)}
		}
		return storeDoneMsg{status: done}
	}
}

// writeDone acknowledges a finished write and runs a deferred reload once
// nothing is in flight.
func (s *Session) writeDone(msg storeDoneMsg) tea.Cmd {
	s.pending = max(0, s.pending-1)
	if msg.err != nil {
		s.reloadWanted = true
	}
	if s.pending == 0 && s.reloadWanted {
		return s.loadHistory()
	}
	return nil
}

// recordVisit moves id to the front of the recents and stores the visit.
func (s *Session) recordVisit(id catalog.FeatureID) tea.Cmd {
	recent := make([]catalog.FeatureID, 0, len(s.recent)+1)
	recent = append(recent, id)
	for _, r := range s.recent {
		if r != id {
			recent = append(recent, r)
		}
	}
	if s.HistoryLimit > 0 && len(recent) > s.HistoryLimit {
		recent = recent[:s.HistoryLimit]
	}
	s.recent = recent
	s.syncKeys()
	return s.write("record visit", "", func(ctx context.Context) error {
		if err := s.Store.RecordVisit(ctx, id); err != nil {
			return err
		}
		s.Log.Debug().Str("feature", string(id)).Msg("visit recorded")
		return nil
	})
}

// toggleFavorite flips the favorite flag right away and persists it.
func (s *Session) toggleFavorite(id catalog.FeatureID) tea.Cmd {
	if s.favorites == nil {
		s.favorites = map[catalog.FeatureID]bool{}
	}
	on := !s.favorites[id]
	s.favorites[id] = on
	label := "Removed from favorites"
	if on {
		label = "Added to favorites"
	}
	return s.write("save favorite", label, func(ctx context.Context) error {
		return s.Store.SetFavorite(ctx, id, on)
	})
}

// HasHistory reports whether there is anything for clearHistory to remove.
func (s *Session) HasHistory() bool {
	if len(s.recent) > 0 {
		return true
	}
	for _, on := range s.favorites {
		if on {
			return true
		}
	}
	return false
}

// clearHistory forgets recents and favorites here and in the store.
func (s *Session) clearHistory() tea.Cmd {
	s.recent = nil
	s.favorites = map[catalog.FeatureID]bool{}
	s.syncKeys()
	s.Log.Info().Msg("history cleared")
	return s.write("clear history", "History cleared", func(ctx context.Context) error {
		return s.Store.Clear(ctx)
	})
}

// changeDisplay applies fn to the display context and persists the result.
func (s *Session) changeDisplay(fn func(*display.Context)) tea.Cmd {
	before := s.Display
	fn(&s.Display)
	if s.Display == before {
		return nil
	}
	s.Log.Info().
		Str("text_size", s.Display.TextSize.String()).
		Str("color_scheme", s.Display.ColorScheme.String()).
		Str("contrast", s.Display.Contrast.String()).
		Bool("reduce_motion", s.Display.ReduceMotion).
		Bool("differentiate_without_color", s.Display.DifferentiateWithoutColor).
		Msg("display changed")
	return s.saveDisplay()
}

// saveDisplay persists the current display context. Saves may finish in any
// order; a snapshot older than the last one written is skipped.
func (s *Session) saveDisplay() tea.Cmd {
	if s.SaveDisplay == nil {
		return nil
	}
	s.saveSeq++
	seq, snapshot, save := s.saveSeq, s.Display, s.SaveDisplay
	return func() tea.Msg {
		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if seq < s.savedSeq {
			return nil
		}
		if err := save(snapshot); err != nil {
			return StatusMsg{Text: fmt.Sprintf("save settings: %v", err), IsErr: true}
		}
		s.savedSeq = seq
		return StatusMsg{Text: "Display settings saved"}
	}
}
