package monkeymap

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
)

// Traveller is a position and heading on a Surface.
type Traveller struct {
	Pos grid.Point
	Dir grid.Point

	surface *Surface
	log     *zap.Logger
}

// NewTraveller places a traveller on the leftmost open tile of the top row,
// facing East.
func NewTraveller(s *Surface, log *zap.Logger) (*Traveller, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start, err := s.board.Start()
	if err != nil {
		return nil, err
	}
	return &Traveller{
		Pos:     start,
		Dir:     grid.East,
		surface: s,
		log:     log.With(zap.Stringer("topology", s.topology)),
	}, nil
}

// Move advances up to n steps. A step that would leave the net is carried
// round by the surface and may change the heading. The move stops early, with
// position and heading untouched, in front of a Solid tile.
func (t *Traveller) Move(n int) error {
	t.log.Debug("moving", zap.Int("steps", n), zap.Stringer("from", t.Pos))
	b := t.surface.board
	for i := 0; i < n; i++ {
		next, dir := t.Pos.Add(t.Dir), t.Dir
		if !b.occupied(next) {
			var err error
			if next, dir, err = t.surface.wrap(t.Pos, t.Dir); err != nil {
				return err
			}
		}
		switch b.Tile(next) {
		case Open:
			t.Pos, t.Dir = next, dir
		case Solid:
			return nil
		default:
			return errors.Wrapf(ErrInvalidLanding, "step from %v landed on %v", t.Pos, next)
		}
	}
	return nil
}

// Turn rotates the heading by 90°.
func (t *Traveller) Turn(turn Turn) error {
	t.log.Debug("turning", zap.Stringer("turn", Instruction{Turn: turn}))
	switch turn {
	case TurnLeft:
		t.Dir = t.Dir.Left()
	case TurnRight:
		t.Dir = t.Dir.Right()
	default:
		return errors.Wrapf(ErrMalformedPath, "invalid turn %d", turn)
	}
	return nil
}

// Follow executes every instruction of path in order.
func (t *Traveller) Follow(path []Instruction) error {
	for _, in := range path {
		var err error
		if in.Turn == NoTurn {
			err = t.Move(in.Steps)
		} else {
			err = t.Turn(in.Turn)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Facing encodes a heading: 0 right, 1 down, 2 left, 3 up.
func Facing(dir grid.Point) (int, error) {
	switch dir {
	case grid.East:
		return 0, nil
	case grid.South:
		return 1, nil
	case grid.West:
		return 2, nil
	case grid.North:
		return 3, nil
	}
	return 0, errors.Errorf("monkeymap: %v is not a unit heading", dir)
}

// Password is 1000×row + 4×column + facing, with 1-based row and column.
func (t *Traveller) Password() (int, error) {
	f, err := Facing(t.Dir)
	if err != nil {
		return 0, err
	}
	return 1000*(t.Pos.Y+1) + 4*(t.Pos.X+1) + f, nil
}
