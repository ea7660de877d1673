package main

import (
	"github.com/katalvlaran/aoc22/beacon"
	"github.com/katalvlaran/aoc22/blizzard"
	"github.com/katalvlaran/aoc22/calories"
	"github.com/katalvlaran/aoc22/cleanup"
	"github.com/katalvlaran/aoc22/crates"
	"github.com/katalvlaran/aoc22/crt"
	"github.com/katalvlaran/aoc22/diffusion"
	"github.com/katalvlaran/aoc22/distress"
	"github.com/katalvlaran/aoc22/geodes"
	"github.com/katalvlaran/aoc22/hillclimb"
	"github.com/katalvlaran/aoc22/lava"
	"github.com/katalvlaran/aoc22/marker"
	"github.com/katalvlaran/aoc22/mixing"
	"github.com/katalvlaran/aoc22/monkeymap"
	"github.com/katalvlaran/aoc22/monkeys"
	"github.com/katalvlaran/aoc22/nospace"
	"github.com/katalvlaran/aoc22/puzzle"
	"github.com/katalvlaran/aoc22/pyroclastic"
	"github.com/katalvlaran/aoc22/riddle"
	"github.com/katalvlaran/aoc22/rope"
	"github.com/katalvlaran/aoc22/rucksack"
	"github.com/katalvlaran/aoc22/sand"
	"github.com/katalvlaran/aoc22/snafu"
	"github.com/katalvlaran/aoc22/strategy"
	"github.com/katalvlaran/aoc22/treetop"
	"github.com/katalvlaran/aoc22/valves"
)

var solvers = map[int]puzzle.Solver{
	1:  calories.Solve,
	2:  strategy.Solve,
	3:  rucksack.Solve,
	4:  cleanup.Solve,
	5:  crates.Solve,
	6:  marker.Solve,
	7:  nospace.Solve,
	8:  treetop.Solve,
	9:  rope.Solve,
	10: crt.Solve,
	11: monkeys.Solve,
	12: hillclimb.Solve,
	13: distress.Solve,
	14: sand.Solve,
	15: beacon.Solve,
	16: valves.Solve,
	17: pyroclastic.Solve,
	18: lava.Solve,
	19: geodes.Solve,
	20: mixing.Solve,
	21: riddle.Solve,
	22: monkeymap.Solve,
	23: diffusion.Solve,
	24: blizzard.Solve,
	25: snafu.Solve,
}

func newRegistry() (*puzzle.Registry, error) {
	reg := puzzle.NewRegistry()
	for day, s := range solvers {
		if err := reg.Register(day, s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// dayOptions returns the solver options for day: the logger and the day's
// configured parameters.
func dayOptions(day int) []puzzle.Option {
	return []puzzle.Option{
		puzzle.WithLogger(logger),
		puzzle.WithParams(cfg.Params(day)),
	}
}
