package monkeymap

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
	"github.com/katalvlaran/aoc22/puzzle"
)

// FaceSizeParam names the puzzle parameter holding the cube face size.
// When it is absent the size is inferred from the net.
const FaceSizeParam = "face_size"

// Solve returns the flat-map password as part 1 and the cube password as part 2.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	net, route, err := SplitInput(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	b, err := ParseBoard(net)
	if err != nil {
		return puzzle.Answer{}, err
	}
	path, err := ParsePath(route)
	if err != nil {
		return puzzle.Answer{}, err
	}

	flat, err := Walk(NewFlat(b), path, o.Logger)
	if err != nil {
		return puzzle.Answer{}, err
	}
	cube, err := NewCube(b, o.Param(FaceSizeParam, 0), o.Logger)
	if err != nil {
		return puzzle.Answer{}, err
	}
	folded, err := Walk(cube, path, o.Logger)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Ints(flat, folded), nil
}

// SplitInput separates the net diagram from the path at the first blank line.
// Leading spaces of the net are significant and kept.
func SplitInput(input string) (net, path string, err error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	i := strings.Index(input, "\n\n")
	if i < 0 {
		return "", "", ErrMalformedInput
	}
	return input[:i], strings.TrimSpace(input[i+2:]), nil
}

// Walk follows path from the start tile of s and returns the final password.
func Walk(s *Surface, path []Instruction, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	t, err := NewTraveller(s, log)
	if err != nil {
		return 0, err
	}
	if err := t.Follow(path); err != nil {
		return 0, errors.Wrapf(err, "%v walk", s.topology)
	}
	if ce := log.Check(zap.DebugLevel, "final position"); ce != nil {
		ce.Write(zap.Stringer("topology", s.topology), zap.Stringer("pos", t.Pos),
			zap.String("board", "\n"+s.board.Render(t.Pos, t.Dir)))
	}
	return t.Password()
}

// Position is the last state of a walk, for callers that want to draw it.
type Position struct {
	Pos, Dir grid.Point
}

// Trace follows path on s and returns the final position without encoding it.
func Trace(s *Surface, path []Instruction) (Position, error) {
	t, err := NewTraveller(s, nil)
	if err != nil {
		return Position{}, err
	}
	if err := t.Follow(path); err != nil {
		return Position{}, err
	}
	return Position{Pos: t.Pos, Dir: t.Dir}, nil
}
