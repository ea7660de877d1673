package blizzard

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/grid"
)

var (
	// ErrMalformedInput indicates the valley is not walled in, has no single
	// gap in its top and bottom walls, or contains unknown cells.
	ErrMalformedInput = errors.New("blizzard: malformed input")
	// ErrNoRoute indicates the target cannot be reached.
	ErrNoRoute = errors.New("blizzard: no route")
)

// Valley is the area inside the walls at minute 0. Entrance and Exit lie in
// the wall rows, at Y = -1 and Y = Height.
type Valley struct {
	Width, Height  int
	Entrance, Exit grid.Point
	cells          *grid.Grid[rune]
}

// Parse reads the valley map including its walls.
func Parse(input string) (*Valley, error) {
	g, err := grid.Parse(strings.TrimSpace(input), '#', func(r rune) (rune, error) {
		if !strings.ContainsRune("#.<>^v", r) {
			return 0, errors.Errorf("unexpected cell %q", r)
		}
		return r, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if g.Width < 3 || g.Height < 3 {
		return nil, errors.Wrapf(ErrMalformedInput, "%dx%d is too small", g.Width, g.Height)
	}

	gap := func(y int) (int, error) {
		x := -1
		for i := 0; i < g.Width; i++ {
			if g.Cells[y][i] == '#' {
				continue
			}
			if g.Cells[y][i] != '.' || x >= 0 || i == 0 || i == g.Width-1 {
				return 0, errors.Wrapf(ErrMalformedInput, "row %d must have a single gap", y)
			}
			x = i
		}
		if x < 0 {
			return 0, errors.Wrapf(ErrMalformedInput, "row %d has no gap", y)
		}
		return x - 1, nil
	}
	in, err := gap(0)
	if err != nil {
		return nil, err
	}
	out, err := gap(g.Height - 1)
	if err != nil {
		return nil, err
	}

	inner := make([][]rune, 0, g.Height-2)
	for y := 1; y < g.Height-1; y++ {
		row := g.Cells[y]
		if row[0] != '#' || row[g.Width-1] != '#' {
			return nil, errors.Wrapf(ErrMalformedInput, "row %d is not walled in", y)
		}
		inside := row[1 : g.Width-1]
		if strings.ContainsRune(string(inside), '#') {
			return nil, errors.Wrapf(ErrMalformedInput, "wall inside the valley on row %d", y)
		}
		inner = append(inner, inside)
	}
	cells, err := grid.New(inner)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}

	return &Valley{
		Width:    cells.Width,
		Height:   cells.Height,
		Entrance: grid.Point{X: in, Y: -1},
		Exit:     grid.Point{X: out, Y: cells.Height},
		cells:    cells,
	}, nil
}

func mod(a, n int) int {
	return (a%n + n) % n
}

// Free reports whether p can be occupied at minute t.
func (v *Valley) Free(p grid.Point, t int) bool {
	if p == v.Entrance || p == v.Exit {
		return true
	}
	if !v.cells.InBounds(p) {
		return false
	}
	row, col := v.cells.Cells[p.Y], p.X
	switch {
	case row[mod(p.X-t, v.Width)] == '>',
		row[mod(p.X+t, v.Width)] == '<',
		v.cells.Cells[mod(p.Y-t, v.Height)][col] == 'v',
		v.cells.Cells[mod(p.Y+t, v.Height)][col] == '^':
		return false
	}
	return true
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Period is the number of minutes after which the blizzards repeat.
func (v *Valley) Period() int {
	return v.Width / gcd(v.Width, v.Height) * v.Height
}

var moves = append([]grid.Point{{}}, grid.Orthogonal...)

// Cross returns the earliest minute, no earlier than start, at which to can be
// reached leaving from at minute start.
func (v *Valley) Cross(from, to grid.Point, start int) (int, error) {
	limit := start + v.Period()*(v.Width*v.Height+2)
	frontier := hashset.New(from)
	for t := start; t <= limit; t++ {
		if frontier.Contains(to) {
			return t, nil
		}
		next := hashset.New()
		for _, val := range frontier.Values() {
			p := val.(grid.Point)
			for _, d := range moves {
				if q := p.Add(d); v.Free(q, t+1) {
					next.Add(q)
				}
			}
		}
		if next.Empty() {
			break
		}
		frontier = next
	}
	return 0, errors.Wrapf(ErrNoRoute, "%v to %v from minute %d", from, to, start)
}
