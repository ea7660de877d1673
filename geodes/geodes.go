// Package geodes evaluates robot factory blueprints by the most geodes they
// can crack in a fixed time.
package geodes

import (
	"context"
	"runtime"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Time limits and how many blueprints survive the elephants for the long run.
const (
	QualityMinutes = 24
	LongMinutes    = 32
	LongBlueprints = 3
)

// Resource kinds, also used as robot kinds.
const (
	Ore = iota
	Clay
	Obsidian
	Geode
)

// ErrMalformedInput indicates text that is not a list of blueprints.
var ErrMalformedInput = errors.New("geodes: malformed input")

// Blueprint holds the costs of each robot kind.
type Blueprint struct {
	ID            int `"Blueprint" @Int ":"`
	OreRobot      int `"Each" "ore" "robot" "costs" @Int "ore" "."`
	ClayRobot     int `"Each" "clay" "robot" "costs" @Int "ore" "."`
	ObsidianOre   int `"Each" "obsidian" "robot" "costs" @Int "ore"`
	ObsidianClay  int `"and" @Int "clay" "."`
	GeodeOre      int `"Each" "geode" "robot" "costs" @Int "ore"`
	GeodeObsidian int `"and" @Int "obsidian" "."`
}

type blueprints struct {
	List []*Blueprint `@@*`
}

var blueprintLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[:.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseBlueprints = participle.MustBuild[blueprints](
	participle.Lexer(blueprintLexer),
	participle.Elide("Whitespace"),
)

// ParseBlueprints reads every blueprint; line breaks inside one are allowed.
func ParseBlueprints(input string) ([]Blueprint, error) {
	bs, err := parseBlueprints.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(bs.List) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no blueprints")
	}
	out := make([]Blueprint, 0, len(bs.List))
	for _, b := range bs.List {
		out = append(out, *b)
	}
	return out, nil
}

// costs returns, per robot kind, the ore, clay and obsidian it takes.
func (b Blueprint) costs() [4][3]int {
	return [4][3]int{
		Ore:      {b.OreRobot, 0, 0},
		Clay:     {b.ClayRobot, 0, 0},
		Obsidian: {b.ObsidianOre, b.ObsidianClay, 0},
		Geode:    {b.GeodeOre, 0, b.GeodeObsidian},
	}
}

type search struct {
	cost [4][3]int
	// no point in more robots of a kind than the most any build spends per minute
	limit [3]int
	best  int
}

// MaxGeodes returns the most geodes cracked in minutes, starting with one ore
// robot. The factory builds one robot per minute at most.
func (b Blueprint) MaxGeodes(minutes int) int {
	s := &search{cost: b.costs()}
	for _, c := range s.cost {
		for r, n := range c {
			s.limit[r] = max(s.limit[r], n)
		}
	}
	s.visit(minutes, [4]int{Ore: 1}, [4]int{})
	return s.best
}

// visit picks the next robot to save up for, rather than stepping minute by minute.
func (s *search) visit(left int, robots, stock [4]int) {
	s.best = max(s.best, stock[Geode]+robots[Geode]*left)
	// a new geode robot every remaining minute
	if stock[Geode]+robots[Geode]*left+left*(left-1)/2 <= s.best {
		return
	}
	for kind := Geode; kind >= Ore; kind-- {
		if kind != Geode && robots[kind] >= s.limit[kind] {
			continue
		}
		wait, ok := s.wait(kind, robots, stock)
		if !ok || left-wait-1 <= 0 {
			continue
		}
		next := stock
		for r := range next {
			next[r] += robots[r] * (wait + 1)
		}
		for r, n := range s.cost[kind] {
			next[r] -= n
		}
		built := robots
		built[kind]++
		s.visit(left-wait-1, built, next)
	}
}

// wait returns the minutes until kind is affordable, or false if a needed
// resource is not being collected.
func (s *search) wait(kind int, robots, stock [4]int) (int, bool) {
	w := 0
	for r, n := range s.cost[kind] {
		need := n - stock[r]
		if need <= 0 {
			continue
		}
		if robots[r] == 0 {
			return 0, false
		}
		w = max(w, (need+robots[r]-1)/robots[r])
	}
	return w, true
}

// MaxGeodesAll evaluates every blueprint concurrently and returns the results
// in input order. It stops early with ctx's error once ctx is done.
func MaxGeodesAll(ctx context.Context, bs []Blueprint, minutes int) ([]int, error) {
	out := make([]int, len(bs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, b := range bs {
		i, b := i, b
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = b.MaxGeodes(minutes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Solve returns the summed quality levels over QualityMinutes and the product
// of the first LongBlueprints results over LongMinutes.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	bs, err := ParseBlueprints(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ctx := context.Background()

	short, err := MaxGeodesAll(ctx, bs, QualityMinutes)
	if err != nil {
		return puzzle.Answer{}, err
	}
	quality := 0
	for i, b := range bs {
		quality += b.ID * short[i]
	}

	long, err := MaxGeodesAll(ctx, bs[:min(LongBlueprints, len(bs))], LongMinutes)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product := 1
	for _, n := range long {
		product *= n
	}
	o.Logger.Debug("geodes", zap.Ints("short", short), zap.Ints("long", long))
	return puzzle.Ints(quality, product), nil
}
