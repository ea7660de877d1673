// Package treetop surveys a forest height map for trees visible from outside
// and for the best spot for a tree house.
package treetop

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
	"github.com/katalvlaran/aoc22/puzzle"
)

// ErrMalformedInput indicates a non-digit cell or ragged rows.
var ErrMalformedInput = errors.New("treetop: malformed input")

const noTree = -1

func decodeHeight(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, errors.Errorf("unexpected cell %q", r)
	}
	return int(r - '0'), nil
}

// Parse reads one digit per tree.
func Parse(input string) (*grid.Grid[int], error) {
	g, err := grid.Parse(input, noTree, decodeHeight)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if p, ok := g.Find(func(h int) bool { return h == noTree }); ok {
		return nil, errors.Wrapf(ErrMalformedInput, "row %d is short", p.Y+1)
	}
	return g, nil
}

// Look walks from p towards dir. It returns how many trees can be seen before
// the view is blocked, and whether the view reaches the edge of the forest.
func Look(g *grid.Grid[int], p, dir grid.Point) (seen int, clear bool) {
	h := g.At(p)
	for q := p.Add(dir); g.InBounds(q); q = q.Add(dir) {
		seen++
		if g.At(q) >= h {
			return seen, false
		}
	}
	return seen, true
}

// Survey is the outcome of looking out from every tree.
type Survey struct {
	// Visible counts trees with a clear view to some edge.
	Visible int
	// Scores holds the scenic score of each tree, indexed by grid.Index.
	Scores []int
}

// Best returns the highest scenic score and the tree that has it.
func (s *Survey) Best(g *grid.Grid[int]) (grid.Point, int) {
	best := 0
	for i, v := range s.Scores {
		if v > s.Scores[best] {
			best = i
		}
	}
	return g.Coordinate(best), s.Scores[best]
}

// Scan surveys every tree. A scenic score is the product of the viewing
// distances in the four directions.
func Scan(g *grid.Grid[int]) *Survey {
	s := &Survey{Scores: make([]int, g.Width*g.Height)}
	for i := range s.Scores {
		p := g.Coordinate(i)
		score, visible := 1, false
		for _, dir := range grid.Orthogonal {
			n, clear := Look(g, p, dir)
			score *= n
			visible = visible || clear
		}
		s.Scores[g.Index(p)] = score
		if visible {
			s.Visible++
		}
	}
	return s
}

// Solve counts visible trees and returns the best scenic score.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	s := Scan(g)
	spot, score := s.Best(g)
	o.Logger.Debug("best tree house spot", zap.Stringer("tree", spot), zap.Int("score", score))
	return puzzle.Ints(s.Visible, score), nil
}
