package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/nutritionlabel/internal/display"
)

func TestSaveDisplaySkipsOlderSnapshot(t *testing.T) {
	var saved []display.TextSize
	s := testSession(t, newMemStore())
	s.SaveDisplay = func(c display.Context) error {
		saved = append(saved, c.TextSize)
		return nil
	}

	first := s.changeDisplay(func(c *display.Context) { c.TextSize = display.Medium })
	second := s.changeDisplay(func(c *display.Context) { c.TextSize = display.XLarge })

	require.Equal(t, StatusMsg{Text: "Display settings saved"}, second())
	require.Nil(t, first())
	require.Equal(t, []display.TextSize{display.XLarge}, saved)
}

func TestSaveDisplayConcurrentWritesKeepNewest(t *testing.T) {
	var (
		mu    sync.Mutex
		last  display.TextSize
		calls int
	)
	s := testSession(t, newMemStore())
	s.SaveDisplay = func(c display.Context) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		last = c.TextSize
		return nil
	}

	sizes := []display.TextSize{display.Small, display.Medium, display.Large, display.XLarge}
	var wg sync.WaitGroup
	for _, size := range sizes {
		cmd := s.changeDisplay(func(c *display.Context) { c.TextSize = size })
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd()
		}()
	}
	wg.Wait()

	require.Equal(t, display.XLarge, last)
	require.LessOrEqual(t, calls, len(sizes))
}
