// Package diffusion spreads elves out over an unbounded plane, one round at a
// time.
//
// Each round every elf with a neighbor proposes a step in the first of its
// four directions whose three cells toward it are free. Steps proposed by
// exactly one elf happen; the others are dropped. The first direction then
// moves to the back of the list.
package diffusion

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
	"github.com/katalvlaran/aoc22/puzzle"
)

var (
	// ErrMalformedInput indicates a character other than '#' and '.'.
	ErrMalformedInput = errors.New("diffusion: malformed input")
	// ErrNoSettle indicates the elves kept moving past the round limit.
	ErrNoSettle = errors.New("diffusion: elves did not settle")
)

// MaxRoundsParam caps the number of rounds simulated while waiting for the
// elves to settle.
const MaxRoundsParam = "max_rounds"

const defaultMaxRounds = 100_000

// look is a proposal direction with the three cells that must be free.
type look struct {
	step  grid.Point
	clear [3]grid.Point
}

var (
	ne = grid.North.Add(grid.East)
	nw = grid.North.Add(grid.West)
	se = grid.South.Add(grid.East)
	sw = grid.South.Add(grid.West)
)

var initialOrder = []look{
	{step: grid.North, clear: [3]grid.Point{grid.North, ne, nw}},
	{step: grid.South, clear: [3]grid.Point{grid.South, se, sw}},
	{step: grid.West, clear: [3]grid.Point{grid.West, nw, sw}},
	{step: grid.East, clear: [3]grid.Point{grid.East, ne, se}},
}

// Grove holds the elves and the current direction order.
type Grove struct {
	elves map[grid.Point]struct{}
	order []look
	Round int
}

// Parse reads the elf map; '#' is an elf.
func Parse(input string) (*Grove, error) {
	g, err := grid.Parse(input, false, func(r rune) (bool, error) {
		switch r {
		case '#':
			return true, nil
		case '.':
			return false, nil
		}
		return false, errors.Errorf("unexpected cell %q", r)
	})
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	gr := &Grove{
		elves: make(map[grid.Point]struct{}),
		order: append([]look(nil), initialOrder...),
	}
	for _, p := range g.FindAll(func(elf bool) bool { return elf }) {
		gr.elves[p] = struct{}{}
	}
	return gr, nil
}

// Len returns the number of elves.
func (g *Grove) Len() int { return len(g.elves) }

func (g *Grove) occupied(p grid.Point) bool {
	_, ok := g.elves[p]
	return ok
}

func (g *Grove) propose(p grid.Point) (grid.Point, bool) {
	alone := true
	for _, d := range grid.Compass {
		if g.occupied(p.Add(d)) {
			alone = false
			break
		}
	}
	if alone {
		return p, false
	}
	for _, l := range g.order {
		if !g.occupied(p.Add(l.clear[0])) && !g.occupied(p.Add(l.clear[1])) && !g.occupied(p.Add(l.clear[2])) {
			return p.Add(l.step), true
		}
	}
	return p, false
}

// Step plays one round and returns how many elves moved.
func (g *Grove) Step() int {
	proposals := make(map[grid.Point]grid.Point, len(g.elves))
	claims := make(map[grid.Point]int, len(g.elves))
	for p := range g.elves {
		if to, ok := g.propose(p); ok {
			proposals[p] = to
			claims[to]++
		}
	}

	moved := 0
	for from, to := range proposals {
		if claims[to] != 1 {
			continue
		}
		delete(g.elves, from)
		g.elves[to] = struct{}{}
		moved++
	}

	g.order = append(g.order[1:], g.order[0])
	g.Round++
	return moved
}

// Bounds returns the corners of the smallest rectangle holding every elf.
func (g *Grove) Bounds() (lo, hi grid.Point) {
	first := true
	for p := range g.elves {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo = grid.Point{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = grid.Point{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	return lo, hi
}

// Empty counts the free cells inside Bounds.
func (g *Grove) Empty() int {
	if len(g.elves) == 0 {
		return 0
	}
	lo, hi := g.Bounds()
	return (hi.X-lo.X+1)*(hi.Y-lo.Y+1) - len(g.elves)
}

// Solve returns the free cells after ten rounds and the first round in which
// no elf moves.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	limit := o.Param(MaxRoundsParam, defaultMaxRounds)

	empty, settled := -1, -1
	for empty < 0 || settled < 0 {
		if g.Round >= limit {
			return puzzle.Answer{}, errors.Wrapf(ErrNoSettle, "after %d rounds", g.Round)
		}
		if g.Step() == 0 && settled < 0 {
			settled = g.Round
		}
		if g.Round == 10 {
			empty = g.Empty()
		}
	}
	o.Logger.Debug("elves settled", zap.Int("round", settled), zap.Int("elves", g.Len()))
	return puzzle.Ints(empty, settled), nil
}
