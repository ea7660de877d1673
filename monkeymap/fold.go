package monkeymap

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/grid"
)

// foldRule pairs edges that are skip edges apart along the outline when the
// later edge points in the direction partner computes from the earlier one.
type foldRule struct {
	skip    int
	partner func(d grid.Point) grid.Point
}

// foldRules in the order they are applied. Edges of a cube net can only meet
// when they are:
//   - adjacent, and the outline turns left between them;
//   - two edges apart, pointing the same way;
//   - four edges apart, the later one turned right;
//   - six edges apart, pointing opposite ways.
//
// Nearer pairings must be settled first, as they constrain the farther ones.
var foldRules = []foldRule{
	{skip: 0, partner: grid.Point.Left},
	{skip: 2, partner: func(d grid.Point) grid.Point { return d }},
	{skip: 4, partner: grid.Point.Right},
	{skip: 6, partner: grid.Point.Neg},
}

// Fold pairs every outline edge with the edge it meets once the net is folded
// into a cube, and returns the seams it created in creation order.
// Edges that are already paired are left alone, so folding twice is harmless.
// Returns ErrUnresolvedEdgePairing if any edge is still unpaired afterwards.
func (o *Outline) Fold() ([]Seam, error) {
	n := len(o.Edges)
	var seams []Seam
	for _, rule := range foldRules {
		for i := 0; i < n; i++ {
			if o.Edges[i].Partner >= 0 {
				continue
			}
			j := (i + rule.skip + 1) % n
			if j == i || o.Edges[j].Partner >= 0 {
				continue
			}
			if o.Edges[j].Dir != rule.partner(o.Edges[i].Dir) {
				continue
			}
			o.Edges[i].Partner = j
			o.Edges[j].Partner = i
			seams = append(seams, Seam{A: i, B: j})
		}
	}

	if left := o.Unpaired(); len(left) > 0 {
		return seams, errors.Wrapf(ErrUnresolvedEdgePairing, "edges %v", left)
	}
	return seams, nil
}
