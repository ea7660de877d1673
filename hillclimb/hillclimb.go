// Package hillclimb finds the shortest climb across a height map where each
// step may rise by at most one level.
package hillclimb

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
	"github.com/katalvlaran/aoc22/puzzle"
)

var (
	// ErrMalformedInput indicates an unknown cell or a missing or repeated S or E.
	ErrMalformedInput = errors.New("hillclimb: malformed input")
	// ErrNoRoute indicates the summit cannot be reached.
	ErrNoRoute = errors.New("hillclimb: summit unreachable")
)

// Map is a parsed height map. Heights run from 0 ('a') to 25 ('z').
type Map struct {
	Heights *grid.Grid[int]
	Start   grid.Point
	End     grid.Point
}

const (
	markStart = -1
	markEnd   = -2
)

func decodeHeight(r rune) (int, error) {
	switch {
	case r == 'S':
		return markStart, nil
	case r == 'E':
		return markEnd, nil
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), nil
	}
	return 0, errors.Errorf("unexpected cell %q", r)
}

// Parse reads the height map. S sits at height 'a' and E at 'z'.
func Parse(input string) (*Map, error) {
	g, err := grid.Parse(input, markStart, decodeHeight)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	// short rows would pad with extra starts
	starts := g.FindAll(func(h int) bool { return h == markStart })
	ends := g.FindAll(func(h int) bool { return h == markEnd })
	if len(starts) != 1 || len(ends) != 1 {
		return nil, errors.Wrapf(ErrMalformedInput, "want one S and one E, got %d and %d", len(starts), len(ends))
	}
	m := &Map{Heights: g, Start: starts[0], End: ends[0]}
	g.Set(m.Start, 0)
	g.Set(m.End, 25)
	return m, nil
}

// MaxStepsParam bounds the climb length; 0 means unbounded.
const MaxStepsParam = "max_steps"

// errSummit stops the search once the summit is dequeued.
var errSummit = errors.New("hillclimb: summit reached")

// Route returns a shortest climb from any of starts to the summit, both ends
// included. With maxSteps > 0 longer climbs are not explored.
// Returns ErrNoRoute when the summit is out of reach.
func (m *Map) Route(starts []grid.Point, maxSteps int) ([]grid.Point, error) {
	res, err := m.Heights.BFS(starts,
		grid.WithFilterNeighbor(func(cur, next grid.Point) bool {
			return m.Heights.At(next) <= m.Heights.At(cur)+1
		}),
		grid.WithMaxDepth(maxSteps),
		grid.WithOnVisit(func(p grid.Point, _ int) error {
			if p == m.End {
				return errSummit
			}
			return nil
		}),
	)
	if err != nil && !errors.Is(err, errSummit) {
		return nil, err
	}
	path, err := res.PathTo(m.End)
	if err != nil {
		return nil, errors.Wrap(ErrNoRoute, err.Error())
	}
	return path, nil
}

// Steps returns the fewest steps from any of starts to the summit.
func (m *Map) Steps(starts []grid.Point, maxSteps int) (int, error) {
	path, err := m.Route(starts, maxSteps)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// Solve returns the shortest climb from S, and from the best lowest cell.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	limit := o.Param(MaxStepsParam, 0)
	fromStart, err := m.Steps([]grid.Point{m.Start}, limit)
	if err != nil {
		return puzzle.Answer{}, err
	}
	lowest := m.Heights.FindAll(func(h int) bool { return h == 0 })
	o.Logger.Debug("searching from lowest cells", zap.Int("cells", len(lowest)))
	fromLowest, err := m.Steps(lowest, limit)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(fromStart, fromLowest), nil
}
