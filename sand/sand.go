package sand

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Solve counts resting sand without and with the floor.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	paths, err := ParseScan(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	abyss, err := NewCave(paths, false)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1 := abyss.Fill()
	if ce := o.Logger.Check(zap.DebugLevel, "cave before the abyss"); ce != nil {
		ce.Write(zap.String("cave", "\n"+abyss.Render()))
	}
	floored, err := NewCave(paths, true)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Ints(p1, floored.Fill()), nil
}
