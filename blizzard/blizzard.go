package blizzard

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Solve returns the minutes to reach the exit, and to reach it again after
// going back to the entrance for the snacks.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	v, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	log := o.Logger.With(zap.Int("width", v.Width), zap.Int("height", v.Height))

	there, err := v.Cross(v.Entrance, v.Exit, 0)
	if err != nil {
		return puzzle.Answer{}, err
	}
	back, err := v.Cross(v.Exit, v.Entrance, there)
	if err != nil {
		return puzzle.Answer{}, err
	}
	again, err := v.Cross(v.Entrance, v.Exit, back)
	if err != nil {
		return puzzle.Answer{}, err
	}
	log.Debug("trips", zap.Int("there", there), zap.Int("back", back), zap.Int("again", again))
	return puzzle.Ints(there, again), nil
}
