// Package grid provides utilities to treat a rectangular block of cells as a
// 2-D map. It supports:
//
//   - Construction from nested slices or from text
//   - Bounds checks and row-major indexing
//   - Orthogonal neighbor enumeration
//   - Breadth-first search with hooks (see bfs.go)
package grid

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// New constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input to prevent external mutation.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](cells [][]T) (*Grid[T], error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]T, h)
	for y := 0; y < h; y++ {
		cp[y] = make([]T, w)
		copy(cp[y], cells[y])
	}

	return &Grid[T]{Width: w, Height: h, Cells: cp}, nil
}

// Filled returns a w×h Grid with every cell set to v.
func Filled[T any](w, h int, v T) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]T, h)
	for y := range cells {
		cells[y] = make([]T, w)
		for x := range cells[y] {
			cells[y][x] = v
		}
	}

	return &Grid[T]{Width: w, Height: h, Cells: cells}, nil
}

// Parse builds a Grid from newline-separated text. Each rune is converted by
// decode; rows shorter than the widest row are padded with pad. Carriage
// returns and trailing blank lines are ignored.
// Decode errors are wrapped with the offending coordinate.
func Parse[T any](text string, pad T, decode func(r rune) (T, error)) (*Grid[T], error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	w := 0
	for _, line := range lines {
		w = max(w, utf8.RuneCountInString(line))
	}
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]T, len(lines))
	for y, line := range lines {
		row := make([]T, 0, w)
		x := 0
		for _, r := range line {
			v, err := decode(r)
			if err != nil {
				return nil, errors.Wrapf(err, "grid: decode %q at %d,%d", r, x, y)
			}
			row = append(row, v)
			x++
		}
		for len(row) < w {
			row = append(row, pad)
		}
		cells[y] = row
	}

	return &Grid[T]{Width: w, Height: len(cells), Cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the value stored at p. p must be in bounds.
func (g *Grid[T]) At(p Point) T {
	return g.Cells[p.Y][p.X]
}

// Lookup returns the value at p and whether p is in bounds.
func (g *Grid[T]) Lookup(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.Cells[p.Y][p.X], true
}

// Set stores v at p. p must be in bounds.
func (g *Grid[T]) Set(p Point, v T) {
	g.Cells[p.Y][p.X] = v
}

// Index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Neighbors returns the in-bounds orthogonal neighbors of p, clockwise from North.
func (g *Grid[T]) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Orthogonal))
	for _, d := range Orthogonal {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first cell in row-major order whose value satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Point, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if pred(g.Cells[y][x]) {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every cell in row-major order whose value satisfies pred.
func (g *Grid[T]) FindAll(pred func(T) bool) []Point {
	var out []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if pred(g.Cells[y][x]) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}
	return n
}
