// Package rope simulates a rope of knots dragged around a plane by its head.
// Each knot follows the one before it whenever they stop touching.
package rope

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
	"github.com/katalvlaran/aoc22/puzzle"
)

// ErrMalformedInput indicates a line that is not a direction and a count.
var ErrMalformedInput = errors.New("rope: malformed input")

// Motion moves the head Steps cells in direction Dir.
type Motion struct {
	Dir   grid.Point
	Steps int
}

type motionList struct {
	Motions []*motionLine `@@*`
}

type motionLine struct {
	Dir   string `@Dir`
	Steps int    `@Int`
}

var motionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dir", Pattern: `[UDLR]`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseMotions = participle.MustBuild[motionList](
	participle.Lexer(motionLexer),
	participle.Elide("Whitespace"),
)

var headings = map[string]grid.Point{
	"U": grid.North,
	"D": grid.South,
	"L": grid.West,
	"R": grid.East,
}

// ParseMotions reads lines such as "R 4".
func ParseMotions(input string) ([]Motion, error) {
	list, err := parseMotions.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	out := make([]Motion, 0, len(list.Motions))
	for _, m := range list.Motions {
		out = append(out, Motion{Dir: headings[m.Dir], Steps: m.Steps})
	}
	return out, nil
}

// Rope is a chain of knots; Knots[0] is the head.
type Rope struct {
	Knots []grid.Point
}

// New returns a rope of n knots, all at the origin.
func New(n int) *Rope {
	return &Rope{Knots: make([]grid.Point, n)}
}

// Step moves the head one cell and lets every other knot catch up.
func (r *Rope) Step(dir grid.Point) {
	r.Knots[0] = r.Knots[0].Add(dir)
	for i := 1; i < len(r.Knots); i++ {
		if r.Knots[i-1].Chebyshev(r.Knots[i]) <= 1 {
			break
		}
		d := r.Knots[i-1].Sub(r.Knots[i])
		r.Knots[i] = r.Knots[i].Add(grid.Point{X: grid.Sign(d.X), Y: grid.Sign(d.Y)})
	}
}

// Tail returns the last knot.
func (r *Rope) Tail() grid.Point {
	return r.Knots[len(r.Knots)-1]
}

// TailVisits counts the cells the tail of an n-knot rope passes over.
func TailVisits(motions []Motion, n int) int {
	r := New(n)
	seen := hashset.New(r.Tail())
	for _, m := range motions {
		for i := 0; i < m.Steps; i++ {
			r.Step(m.Dir)
			seen.Add(r.Tail())
		}
	}
	return seen.Size()
}

// Solve counts tail visits for a 2-knot and a 10-knot rope.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	motions, err := ParseMotions(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(motions) == 0 {
		return puzzle.Answer{}, errors.Wrap(ErrMalformedInput, "no motions")
	}
	o.Logger.Debug("parsed motions", zap.Int("motions", len(motions)))
	return puzzle.Ints(TailVisits(motions, 2), TailVisits(motions, 10)), nil
}
