// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/aoc22.
package grid

import (
	"github.com/pkg/errors"
)

// Point is a cell coordinate or a direction vector.
// X is the column, Y the row; Y grows downwards.
type Point struct {
	X, Y int
}

// Unit direction vectors in screen orientation.
var (
	North = Point{X: 0, Y: -1}
	East  = Point{X: 1, Y: 0}
	South = Point{X: 0, Y: 1}
	West  = Point{X: -1, Y: 0}
)

// Orthogonal lists the four unit vectors clockwise from North.
var Orthogonal = []Point{North, East, South, West}

// Compass lists all eight neighbor offsets clockwise from North.
var Compass = []Point{
	North, {X: 1, Y: -1}, East, {X: 1, Y: 1},
	South, {X: -1, Y: 1}, West, {X: -1, Y: -1},
}

// Grid is a rectangular block of cells. Cells[y][x] holds the value at (x, y).
// Width and Height are fixed at construction.
type Grid[T any] struct {
	Width, Height int
	Cells         [][]T
}

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a grid BFS.
type BFSOptions struct {
	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p Point, depth int) error

	// FilterNeighbor decides whether the step cur→next may be taken.
	FilterNeighbor func(cur, next Point) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns BFSOptions with no-op hooks, no filtering and
// no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(Point, int) error { return nil },
		FilterNeighbor: func(_, _ Point) bool { return true },
		MaxDepth:       0,
	}
}

// WithOnVisit registers a callback run on every visited cell.
func WithOnVisit(fn func(p Point, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips steps for which fn returns false.
func WithFilterNeighbor(fn func(cur, next Point) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a grid BFS:
//   - Order: cells in visit sequence.
//   - Depth: steps from the nearest start cell.
//   - Parent: predecessor of each non-start cell.
type BFSResult struct {
	Order  []Point
	Depth  map[Point]int
	Parent map[Point]Point
}

// PathTo reconstructs the path from a start cell to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest Point) ([]Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "%v", dest)
	}
	path := []Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
