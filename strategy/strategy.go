// Package strategy scores rock paper scissors rounds played from an encrypted
// strategy guide.
package strategy

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// ErrMalformedInput indicates a line that is not an opponent letter and a column letter.
var ErrMalformedInput = errors.New("strategy: malformed input")

// Shape is a hand. Each shape beats the one before it, cyclically.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Outcome is the result of a round for the player.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// Round is one line of the guide. Column is the second letter as 0..2; it
// reads as a Shape in part one and as an Outcome in part two.
type Round struct {
	Opponent Shape
	Column   int
}

type guide struct {
	Rounds []*guideLine `@@*`
}

type guideLine struct {
	Opponent string `@Opponent`
	Column   string `@Column`
}

var guideLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Opponent", Pattern: `[ABC]`},
	{Name: "Column", Pattern: `[XYZ]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseGuide = participle.MustBuild[guide](
	participle.Lexer(guideLexer),
	participle.Elide("Whitespace"),
)

// ParseGuide reads lines such as "A Y".
func ParseGuide(input string) ([]Round, error) {
	g, err := parseGuide.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(g.Rounds) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no rounds")
	}
	out := make([]Round, 0, len(g.Rounds))
	for _, l := range g.Rounds {
		out = append(out, Round{
			Opponent: Shape(l.Opponent[0] - 'A'),
			Column:   int(l.Column[0] - 'X'),
		})
	}
	return out, nil
}

// Play returns the outcome of own against opponent.
func Play(opponent, own Shape) Outcome {
	return Outcome((own - opponent + 4) % 3)
}

// Respond returns the shape that reaches want against opponent.
func Respond(opponent Shape, want Outcome) Shape {
	return Shape((int(opponent) + int(want) + 2) % 3)
}

// Score is the shape value (1..3) plus 0, 3 or 6 for the outcome.
func Score(own Shape, o Outcome) int {
	return int(own) + 1 + 3*int(o)
}

// Solve totals the guide read as shapes, then read as outcomes.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	rounds, err := ParseGuide(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	asShape, asOutcome := 0, 0
	for _, r := range rounds {
		own := Shape(r.Column)
		asShape += Score(own, Play(r.Opponent, own))
		want := Outcome(r.Column)
		asOutcome += Score(Respond(r.Opponent, want), want)
	}
	o.Logger.Debug("scored guide", zap.Int("rounds", len(rounds)))
	return puzzle.Ints(asShape, asOutcome), nil
}
