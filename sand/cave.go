package sand

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/grid"
)

// Cell is the content of one cave position.
type Cell uint8

const (
	Air Cell = iota
	Rock
	Sand
)

// Source is where sand enters the cave.
var Source = grid.Point{X: 500, Y: 0}

var fallOrder = []grid.Point{
	grid.South,
	{X: -1, Y: 1},
	{X: 1, Y: 1},
}

// Cave is a slice of the cave wide enough to hold the full sand pile.
// Cells are stored shifted left by offset.
type Cave struct {
	cells  *grid.Grid[Cell]
	offset int
	lowest int
	floor  bool
}

// NewCave lays out the rock paths. With floor set, an endless rock floor lies
// two rows below the lowest rock.
// Returns ErrMalformedInput for rock above the source.
func NewCave(paths [][]grid.Point, floor bool) (*Cave, error) {
	lowest, minX, maxX := 0, Source.X, Source.X
	for _, path := range paths {
		for _, p := range path {
			if p.Y < Source.Y {
				return nil, errors.Wrapf(ErrMalformedInput, "rock at %v is above the source", p)
			}
			lowest = max(lowest, p.Y)
			minX, maxX = min(minX, p.X), max(maxX, p.X)
		}
	}
	// a pile resting on the floor spreads at most its height either side
	h := lowest + 3
	minX, maxX = min(minX, Source.X-h)-1, max(maxX, Source.X+h)+1
	cells, err := grid.Filled(maxX-minX+1, h, Air)
	if err != nil {
		return nil, errors.Wrap(err, "sand: lay out cave")
	}
	c := &Cave{cells: cells, offset: minX, lowest: lowest, floor: floor}

	for _, path := range paths {
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			step := grid.Point{X: grid.Sign(b.X - a.X), Y: grid.Sign(b.Y - a.Y)}
			for p := a; ; p = p.Add(step) {
				c.set(p, Rock)
				if p == b {
					break
				}
			}
		}
		if len(path) == 1 {
			c.set(path[0], Rock)
		}
	}
	return c, nil
}

func (c *Cave) local(p grid.Point) grid.Point {
	return grid.Point{X: p.X - c.offset, Y: p.Y}
}

func (c *Cave) set(p grid.Point, v Cell) {
	c.cells.Set(c.local(p), v)
}

// At returns the content at p; the floor counts as Rock.
func (c *Cave) At(p grid.Point) Cell {
	if c.floor && p.Y >= c.lowest+2 {
		return Rock
	}
	v, ok := c.cells.Lookup(c.local(p))
	if !ok {
		return Air
	}
	return v
}

// Drop lets one unit of sand fall from Source. It returns where the unit came
// to rest, or false if it fell into the abyss or the source is covered.
func (c *Cave) Drop() (grid.Point, bool) {
	if c.At(Source) != Air {
		return Source, false
	}
	p := Source
	for {
		if !c.floor && p.Y > c.lowest {
			return p, false
		}
		moved := false
		for _, d := range fallOrder {
			if next := p.Add(d); c.At(next) == Air {
				p, moved = next, true
				break
			}
		}
		if !moved {
			c.set(p, Sand)
			return p, true
		}
	}
}

// Fill drops sand until a unit fails to rest and returns how many rested.
func (c *Cave) Fill() int {
	n := 0
	for {
		if _, ok := c.Drop(); !ok {
			return n
		}
		n++
	}
}

// Render draws the columns between the leftmost and rightmost non-air cells.
func (c *Cave) Render() string {
	lo, hi := c.cells.Width, -1
	for _, p := range c.cells.FindAll(func(v Cell) bool { return v != Air }) {
		lo, hi = min(lo, p.X), max(hi, p.X)
	}
	var sb strings.Builder
	for y := 0; y < c.cells.Height; y++ {
		for x := lo; x <= hi; x++ {
			sb.WriteByte(".#o"[c.cells.At(grid.Point{X: x, Y: y})])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
