package monkeymap

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/grid"
)

// Crossable returns the index of the single edge that a step from pos in
// direction dir leaves the net through.
// Returns ErrNoCrossableEdge when no edge, or more than one, matches.
func (o *Outline) Crossable(pos, dir grid.Point) (int, error) {
	found := -1
	for i, e := range o.Edges {
		if e.Dir != dir || !e.Contains(pos) {
			continue
		}
		if found >= 0 {
			return -1, errors.Wrapf(ErrNoCrossableEdge, "%v heading %v matches edges %d and %d", pos, dir, found, i)
		}
		found = i
	}
	if found < 0 {
		return -1, errors.Wrapf(ErrNoCrossableEdge, "%v heading %v", pos, dir)
	}
	return found, nil
}

// Cross carries a step from pos heading dir over the seam it leaves through.
// The landing cell lies as far back from the partner's End as pos lies from
// the source edge's Start, and the new heading points into the partner face.
// Returns ErrNoCrossableEdge, ErrUnresolvedEdgePairing for an unfolded
// outline, or ErrInvalidLanding if the result is not on the net.
func (o *Outline) Cross(b *Board, pos, dir grid.Point) (grid.Point, grid.Point, error) {
	i, err := o.Crossable(pos, dir)
	if err != nil {
		return pos, dir, err
	}
	src := o.Edges[i]
	if src.Partner < 0 {
		return pos, dir, errors.Wrapf(ErrUnresolvedEdgePairing, "edge %d", i)
	}
	dst := o.Edges[src.Partner]

	offset := pos.Sub(src.Start)
	dist := grid.Abs(offset.X + offset.Y)
	landing := dst.End.Add(dst.Dir.Left().Scale(dist))
	heading := dst.Dir.Neg()

	if !b.occupied(landing) {
		return pos, dir, errors.Wrapf(ErrInvalidLanding,
			"edge %d → %d: %v heading %v lands on %v", i, src.Partner, pos, dir, landing)
	}
	return landing, heading, nil
}
