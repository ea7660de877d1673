package monkeymap

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
)

// Surface is a board together with the rule for stepping off it.
// For Flat surfaces outline is nil.
type Surface struct {
	topology Topology
	board    *Board
	outline  *Outline
}

// NewFlat returns a Surface that wraps around like a torus.
func NewFlat(b *Board) *Surface {
	return &Surface{topology: Flat, board: b}
}

// NewCube walks and folds the outline of b and returns a Surface that crosses
// seams. faceSize ≤ 0 infers the face size from the tile count.
// The net must consist of exactly six faces; otherwise ErrMalformedNet.
func NewCube(b *Board, faceSize int, log *zap.Logger) (*Surface, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if faceSize <= 0 {
		fs, err := b.FaceSize()
		if err != nil {
			return nil, err
		}
		faceSize = fs
	}
	tiles := b.tiles.Count(func(t Tile) bool { return t != Void })
	if tiles != 6*faceSize*faceSize {
		return nil, errors.Wrapf(ErrMalformedNet, "%d tiles do not make six faces of size %d", tiles, faceSize)
	}

	outline, err := WalkOutline(b, faceSize)
	if err != nil {
		return nil, err
	}
	seams, err := outline.Fold()
	for _, s := range seams {
		a, c := outline.Edges[s.A], outline.Edges[s.B]
		log.Debug("connecting edges",
			zap.Int("from", s.A), zap.Stringer("fromStart", a.Start), zap.Stringer("fromDir", a.Dir),
			zap.Int("to", s.B), zap.Stringer("toStart", c.Start), zap.Stringer("toDir", c.Dir))
	}
	if err != nil {
		return nil, err
	}

	return &Surface{topology: Cube, board: b, outline: outline}, nil
}

// Topology reports how the surface wraps.
func (s *Surface) Topology() Topology { return s.topology }

// Board returns the underlying board.
func (s *Surface) Board() *Board { return s.board }

// Outline returns the folded outline of a Cube surface, nil for Flat.
func (s *Surface) Outline() *Outline { return s.outline }

// wrap returns where a step from pos heading dir lands when it leaves the net,
// and the heading after landing.
func (s *Surface) wrap(pos, dir grid.Point) (grid.Point, grid.Point, error) {
	switch s.topology {
	case Flat:
		return s.flatWrap(pos, dir), dir, nil
	case Cube:
		return s.outline.Cross(s.board, pos, dir)
	}
	return pos, dir, errors.Errorf("monkeymap: unknown topology %v", s.topology)
}

// flatWrap keeps stepping in dir, wrapping at the board edges, until it
// reaches a tile on the net.
func (s *Surface) flatWrap(pos, dir grid.Point) grid.Point {
	w, h := s.board.Width(), s.board.Height()
	p := pos
	for {
		p = p.Add(dir)
		p.X = (p.X%w + w) % w
		p.Y = (p.Y%h + h) % h
		if s.board.occupied(p) {
			return p
		}
	}
}
