package monkeymap

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/grid"
)

// maxWalkSteps caps the boundary walk. A cube net has 14 outline edges, so a
// walk that needs more steps than this is not going round a cube net.
const maxWalkSteps = 30

// WalkOutline walks clockwise around the outside of the net and returns one
// edge per exposed face side, all unpaired.
//
// The walk starts at the first face found scanning columns of faces left to
// right, each top to bottom. From the end of the previous edge it looks at the
// cell just past the corner:
//
//  1. off the net: the boundary turns right, staying on the same face;
//  2. on the net, with nothing beyond it: the boundary runs straight on to
//     the next face;
//  3. otherwise: the boundary turns left onto the face beyond.
//
// Returns ErrMalformedNet if faceSize does not tile the board, no face is
// found, or the walk does not come back to its first edge within maxWalkSteps.
func WalkOutline(b *Board, faceSize int) (*Outline, error) {
	if faceSize <= 0 || b.Width()%faceSize != 0 || b.Height()%faceSize != 0 {
		return nil, errors.Wrapf(ErrMalformedNet,
			"face size %d does not tile a %dx%d board", faceSize, b.Width(), b.Height())
	}
	span := faceSize - 1

	// Find the first face
	start := grid.Point{}
	for !b.occupied(start) {
		start.Y += faceSize
		if start.Y >= b.Height() {
			start.Y = 0
			start.X += faceSize
		}
		if start.X >= b.Width() {
			return nil, errors.Wrap(ErrMalformedNet, "board has no faces")
		}
	}

	// Scanning top-down means the first face is open above, or at worst on the left
	var first Edge
	switch {
	case !b.occupied(start.Add(grid.North)):
		first = Edge{Start: start, End: start.Add(grid.East.Scale(span)), Dir: grid.North, Partner: -1}
	case !b.occupied(start.Add(grid.West)):
		first = Edge{Start: start.Add(grid.South.Scale(span)), End: start, Dir: grid.West, Partner: -1}
	default:
		return nil, errors.Wrapf(ErrMalformedNet, "first face at %v is not on the boundary", start)
	}

	out := &Outline{FaceSize: faceSize, Edges: []Edge{first}}
	for {
		prev := out.Edges[len(out.Edges)-1]
		d := prev.Dir
		along := d.Right()
		ahead := prev.End.Add(along)

		var next Edge
		switch {
		case !b.occupied(ahead):
			// Convex corner
			next = Edge{Start: prev.End, End: prev.End.Add(d.Neg().Scale(span)), Dir: along}
		case !b.occupied(ahead.Add(d)):
			next = Edge{Start: ahead, End: ahead.Add(along.Scale(span)), Dir: d}
		default:
			// Concave corner
			s := ahead.Add(d)
			next = Edge{Start: s, End: s.Add(d.Scale(span)), Dir: d.Left()}
		}
		// With faceSize 1 edges are single cells, so only Start and Dir
		// together identify the first edge.
		if next.Start == first.Start && next.Dir == first.Dir {
			break
		}
		if len(out.Edges) >= maxWalkSteps {
			return nil, errors.Wrapf(ErrMalformedNet, "outline did not close after %d edges", len(out.Edges))
		}
		next.Partner = -1
		out.Edges = append(out.Edges, next)
	}

	return out, nil
}

// Contains reports whether p lies on the segment from Start to End.
func (e Edge) Contains(p grid.Point) bool {
	return p.X >= min(e.Start.X, e.End.X) && p.X <= max(e.Start.X, e.End.X) &&
		p.Y >= min(e.Start.Y, e.End.Y) && p.Y <= max(e.Start.Y, e.End.Y)
}

// Unpaired returns the indices of edges without a partner.
func (o *Outline) Unpaired() []int {
	var out []int
	for i, e := range o.Edges {
		if e.Partner < 0 {
			out = append(out, i)
		}
	}
	return out
}
