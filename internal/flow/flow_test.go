package flow

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func sizes(pairs ...float64) []Size {
	out := make([]Size, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Size{Width: pairs[i], Height: pairs[i+1]})
	}
	return out
}

func TestLayoutWrapsThirdChip(t *testing.T) {
	res, err := Layout(100, 10, sizes(40, 20, 40, 20, 40, 20))
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {50, 0}, {0, 30}}, res.Placements)
	require.Equal(t, 100.0, res.Width)
	require.Equal(t, 50.0, res.Height)
}

func TestLayoutEmptyItems(t *testing.T) {
	res, err := Layout(120, 8, nil)
	require.NoError(t, err)
	require.Equal(t, 120.0, res.Width)
	require.Equal(t, 0.0, res.Height)
	require.Empty(t, res.Placements)
}

func TestLayoutOversizedFirstChipIsPlaced(t *testing.T) {
	res, err := Layout(50, 8, sizes(80, 20))
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}}, res.Placements)
	require.Equal(t, 20.0, res.Height)
	require.Equal(t, 50.0, res.Width)
}

func TestLayoutOversizedChipAfterOthersStartsNewRow(t *testing.T) {
	res, err := Layout(50, 5, sizes(10, 4, 80, 6, 10, 4))
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {0, 9}, {0, 20}}, res.Placements)
	require.Equal(t, 24.0, res.Height)
}

func TestLayoutRowHeightIsTallestChip(t *testing.T) {
	res, err := Layout(30, 2, sizes(10, 3, 10, 7, 10, 1))
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {12, 0}, {0, 9}}, res.Placements)
	require.Equal(t, 10.0, res.Height)
}

func TestLayoutZeroSizeChipsConsumeSpacing(t *testing.T) {
	res, err := Layout(100, 4, sizes(0, 0, 0, 0, 10, 2))
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {4, 0}, {8, 0}}, res.Placements)
	require.Equal(t, 2.0, res.Height)
}

func TestLayoutExactFitDoesNotWrap(t *testing.T) {
	res, err := Layout(90, 10, sizes(40, 1, 40, 1))
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {50, 0}}, res.Placements)
}

func TestLayoutUnboundedKeepsOneRow(t *testing.T) {
	for _, maxWidth := range []float64{0, math.Inf(1)} {
		res, err := Layout(maxWidth, 3, sizes(40, 2, 50, 5, 60, 1))
		require.NoError(t, err)
		require.Equal(t, []Point{{0, 0}, {43, 0}, {96, 0}}, res.Placements)
		require.Equal(t, 156.0, res.Width, "natural width for maxWidth %v", maxWidth)
		require.Equal(t, 5.0, res.Height)
	}
}

func TestLayoutUnboundedEmpty(t *testing.T) {
	res, err := Layout(0, 3, nil)
	require.NoError(t, err)
	require.Equal(t, Result{Width: 0, Height: 0, Placements: []Point{}}, res)
}

func TestLayoutRejectsInvalidArguments(t *testing.T) {
	cases := []struct {
		name     string
		maxWidth float64
		spacing  float64
		items    []Size
	}{
		{"negative max width", -1, 0, nil},
		{"nan max width", math.NaN(), 0, nil},
		{"negative spacing", 10, -1, nil},
		{"infinite spacing", 10, math.Inf(1), nil},
		{"negative width", 10, 1, sizes(5, 1, -2, 1)},
		{"negative height", 10, 1, sizes(5, -1)},
		{"nan height", 10, 1, sizes(5, math.NaN())},
		{"infinite width", 10, 1, sizes(math.Inf(1), 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Layout(tc.maxWidth, tc.spacing, tc.items)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestRowsAndBounds(t *testing.T) {
	items := sizes(40, 20, 40, 20, 40, 20)
	res, err := Layout(100, 10, items)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2}}, res.Rows())
	require.Equal(t, []Rect{
		{X: 0, Y: 0, Width: 40, Height: 20},
		{X: 50, Y: 0, Width: 40, Height: 20},
		{X: 0, Y: 30, Width: 40, Height: 20},
	}, res.Bounds(items))
}

func TestLayoutProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 500; run++ {
		n := rng.Intn(12)
		items := make([]Size, n)
		for i := range items {
			items[i] = Size{Width: float64(rng.Intn(60)), Height: float64(1 + rng.Intn(10))}
		}
		maxWidth := float64(10 + rng.Intn(150))
		spacing := float64(rng.Intn(6))

		res, err := Layout(maxWidth, spacing, items)
		require.NoError(t, err)
		again, err := Layout(maxWidth, spacing, items)
		require.NoError(t, err)
		require.Equal(t, res, again, "layout must be deterministic")
		require.Len(t, res.Placements, n)
		require.Equal(t, maxWidth, res.Width)

		rows := res.Rows()
		var total float64
		for r, row := range rows {
			if r > 0 {
				require.Greater(t, res.Placements[row[0]].Y, res.Placements[rows[r-1][0]].Y)
				total += spacing
			}
			var rowHeight float64
			for k, idx := range row {
				p := res.Placements[idx]
				if k == 0 {
					require.Equal(t, 0.0, p.X)
				} else {
					require.LessOrEqual(t, p.X+items[idx].Width, maxWidth)
					prev := row[k-1]
					require.Equal(t, res.Placements[prev].X+items[prev].Width+spacing, p.X)
				}
				rowHeight = math.Max(rowHeight, items[idx].Height)
			}
			total += rowHeight
		}
		require.Equal(t, total, res.Height)

		var sum float64
		for _, it := range items {
			sum += it.Width
		}
		if n > 0 && sum+spacing*float64(n-1) <= maxWidth {
			for _, p := range res.Placements {
				require.Equal(t, 0.0, p.Y)
			}
		}
	}
}

func TestLayoutConcurrentCallsShareItems(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	items := make([]Size, 64)
	for i := range items {
		items[i] = Size{Width: float64(r.Intn(80)), Height: float64(1 + r.Intn(30))}
	}
	original := slices.Clone(items)

	widths := []float64{0, 40, 90, 150, 320, math.Inf(1)}
	want := make([]Result, len(widths))
	for i, w := range widths {
		res, err := Layout(w, 6, items)
		require.NoError(t, err)
		want[i] = res
	}

	var g errgroup.Group
	for worker := 0; worker < 16; worker++ {
		g.Go(func() error {
			for round := 0; round < 50; round++ {
				i := (worker + round) % len(widths)
				got, err := Layout(widths[i], 6, items)
				if err != nil {
					return err
				}
				if got.Width != want[i].Width || got.Height != want[i].Height || !slices.Equal(got.Placements, want[i].Placements) {
					return fmt.Errorf("width %v: got %+v, want %+v", widths[i], got, want[i])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, original, items)
}
