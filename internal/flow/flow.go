// Package flow arranges independently sized chips into wrapped rows, the way
// inline text wraps inside a bounded width.
//
// Layout is a pure function: it keeps no state between calls and is safe for
// concurrent use.
package flow

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every validation error returned by Layout.
var ErrInvalidArgument = errors.New("flow: invalid argument")

// Size is the intrinsic footprint of a chip, measured by the host before layout.
type Size struct {
	Width  float64
	Height float64
}

// Point is the top-left corner assigned to a chip.
type Point struct {
	X float64
	Y float64
}

// Rect is a placed chip.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Result is the output of Layout. Placements has one entry per input item, in
// input order.
type Result struct {
	Width      float64
	Height     float64
	Placements []Point
}

// Unbounded reports whether maxWidth disables wrapping.
func Unbounded(maxWidth float64) bool {
	return maxWidth == 0 || math.IsInf(maxWidth, 1)
}

// Layout places items left to right, wrapping to a new row when an item would
// cross maxWidth. The first item of a row is always placed, even when it alone
// is wider than maxWidth. spacing separates items on a row and rows from each
// other.
//
// A zero or +Inf maxWidth means unbounded: everything lands on one row and the
// result width is the natural content width. Otherwise the result width is
// maxWidth as supplied.
func Layout(maxWidth, spacing float64, items []Size) (Result, error) {
	if err := validate(maxWidth, spacing, items); err != nil {
		return Result{}, err
	}
	unbounded := Unbounded(maxWidth)

	placements := make([]Point, len(items))
	var x, y, rowHeight, natural float64
	for i, item := range items {
		if !unbounded && x > 0 && x+item.Width > maxWidth {
			y += rowHeight + spacing
			x = 0
			rowHeight = 0
		}
		placements[i] = Point{X: x, Y: y}
		rowHeight = math.Max(rowHeight, item.Height)
		natural = math.Max(natural, x+item.Width)
		x += item.Width + spacing
	}

	width := maxWidth
	if unbounded {
		width = natural
	}
	return Result{Width: width, Height: y + rowHeight, Placements: placements}, nil
}

func validate(maxWidth, spacing float64, items []Size) error {
	if math.IsNaN(maxWidth) || maxWidth < 0 {
		return fmt.Errorf("%w: max width %v must be a non-negative number", ErrInvalidArgument, maxWidth)
	}
	if !finiteNonNegative(spacing) {
		return fmt.Errorf("%w: spacing %v must be finite and non-negative", ErrInvalidArgument, spacing)
	}
	for i, item := range items {
		if !finiteNonNegative(item.Width) {
			return fmt.Errorf("%w: item %d width %v must be finite and non-negative", ErrInvalidArgument, i, item.Width)
		}
		if !finiteNonNegative(item.Height) {
			return fmt.Errorf("%w: item %d height %v must be finite and non-negative", ErrInvalidArgument, i, item.Height)
		}
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Rows groups placement indices by y coordinate, top to bottom. Items within a
// row keep input order. Rows of zero height laid out with zero spacing share a
// y coordinate and come back merged.
func (r Result) Rows() [][]int {
	var rows [][]int
	for i, p := range r.Placements {
		if len(rows) == 0 || p.Y != r.Placements[rows[len(rows)-1][0]].Y {
			rows = append(rows, nil)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], i)
	}
	return rows
}

// Bounds pairs each placement with the size it was computed from. items must be
// the slice passed to Layout.
func (r Result) Bounds(items []Size) []Rect {
	out := make([]Rect, 0, len(r.Placements))
	for i, p := range r.Placements {
		if i >= len(items) {
			break
		}
		out = append(out, Rect{X: p.X, Y: p.Y, Width: items[i].Width, Height: items[i].Height})
	}
	return out
}
