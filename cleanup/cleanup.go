// Package cleanup compares the section ranges assigned to pairs of elves.
package cleanup

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// ErrMalformedInput indicates a line that is not two ranges like "2-4,6-8",
// or a range whose end precedes its start.
var ErrMalformedInput = errors.New("cleanup: malformed input")

// Range is an inclusive span of section IDs.
type Range struct {
	Lo int `@Int "-"`
	Hi int `@Int`
}

// Contains reports whether r covers every section of other.
func (r Range) Contains(other Range) bool {
	return r.Lo <= other.Lo && other.Hi <= r.Hi
}

// Overlaps reports whether r and other share a section.
func (r Range) Overlaps(other Range) bool {
	return r.Lo <= other.Hi && other.Lo <= r.Hi
}

// Pair is the assignment of two elves.
type Pair struct {
	A Range `@@ ","`
	B Range `@@`
}

type assignments struct {
	Pairs []*Pair `@@*`
}

var pairLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[-,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parsePairs = participle.MustBuild[assignments](
	participle.Lexer(pairLexer),
	participle.Elide("Whitespace"),
)

// ParsePairs reads one pair of ranges per line.
func ParsePairs(input string) ([]Pair, error) {
	a, err := parsePairs.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(a.Pairs) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no pairs")
	}
	out := make([]Pair, 0, len(a.Pairs))
	for i, p := range a.Pairs {
		if p.A.Lo > p.A.Hi || p.B.Lo > p.B.Hi {
			return nil, errors.Wrapf(ErrMalformedInput, "pair %d: reversed range", i+1)
		}
		out = append(out, *p)
	}
	return out, nil
}

// Solve counts pairs where one range contains the other, and pairs that overlap.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	pairs, err := ParsePairs(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	contained, overlapping := 0, 0
	for _, p := range pairs {
		if p.A.Contains(p.B) || p.B.Contains(p.A) {
			contained++
		}
		if p.A.Overlaps(p.B) {
			overlapping++
		}
	}
	o.Logger.Debug("compared assignments", zap.Int("pairs", len(pairs)))
	return puzzle.Ints(contained, overlapping), nil
}
