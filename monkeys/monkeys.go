// Package monkeys simulates monkeys playing keep-away with worry-rated items
// and measures the level of monkey business.
package monkeys

import (
	"slices"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Round counts of the two games.
const (
	ReliefRounds = 20
	WorryRounds  = 10000
)

// ErrMalformedInput indicates notes that do not parse, monkeys out of order,
// a zero divisor or a throw to a missing monkey.
var ErrMalformedInput = errors.New("monkeys: malformed input")

// Operand is the right-hand side of a worry operation: the old value itself or
// a constant.
type Operand struct {
	Old   bool `  @"old"`
	Value int  `| @Int`
}

// Monkey is one block of the notes.
type Monkey struct {
	ID      int     `"Monkey" @Int ":"`
	Items   []int   `"Starting" "items" ":" ( @Int ( "," @Int )* )?`
	Op      string  `"Operation" ":" "new" "=" "old" @( "*" | "+" )`
	Operand Operand `@@`
	Divisor int     `"Test" ":" "divisible" "by" @Int`
	IfTrue  int     `"If" "true" ":" "throw" "to" "monkey" @Int`
	IfFalse int     `"If" "false" ":" "throw" "to" "monkey" @Int`
}

// Inspect applies the monkey's operation to an item's worry level.
func (m *Monkey) Inspect(worry int) int {
	v := m.Operand.Value
	if m.Operand.Old {
		v = worry
	}
	if m.Op == "*" {
		return worry * v
	}
	return worry + v
}

// Target returns the monkey that receives an item of the given worry level.
func (m *Monkey) Target(worry int) int {
	if worry%m.Divisor == 0 {
		return m.IfTrue
	}
	return m.IfFalse
}

type notes struct {
	Monkeys []*Monkey `@@*`
}

var notesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[:,=*+]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseNotes = participle.MustBuild[notes](
	participle.Lexer(notesLexer),
	participle.Elide("Whitespace"),
)

// ParseNotes reads the monkey blocks. Monkeys must be numbered 0, 1, 2...
func ParseNotes(input string) ([]Monkey, error) {
	n, err := parseNotes.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(n.Monkeys) < 2 {
		return nil, errors.Wrapf(ErrMalformedInput, "%d monkeys cannot play", len(n.Monkeys))
	}
	out := make([]Monkey, 0, len(n.Monkeys))
	for i, m := range n.Monkeys {
		switch {
		case m.ID != i:
			return nil, errors.Wrapf(ErrMalformedInput, "monkey %d listed as number %d", m.ID, i)
		case m.Divisor == 0:
			return nil, errors.Wrapf(ErrMalformedInput, "monkey %d: divisible by 0", i)
		}
		for _, to := range []int{m.IfTrue, m.IfFalse} {
			if to == i || to >= len(n.Monkeys) {
				return nil, errors.Wrapf(ErrMalformedInput, "monkey %d throws to monkey %d", i, to)
			}
		}
		out = append(out, *m)
	}
	return out, nil
}

// Play runs rounds of keep-away on a copy of monkeys and returns how many
// items each monkey inspected. With relief, worry is divided by three after
// each inspection; without it, worry is kept modulo the product of the
// divisors, which leaves every divisibility test unchanged.
func Play(monkeys []Monkey, rounds int, relief bool) []int {
	items := make([][]int, len(monkeys))
	modulus := 1
	for i, m := range monkeys {
		items[i] = slices.Clone(m.Items)
		modulus *= m.Divisor
	}

	counts := make([]int, len(monkeys))
	for r := 0; r < rounds; r++ {
		for i := range monkeys {
			m := &monkeys[i]
			for _, w := range items[i] {
				w = m.Inspect(w)
				if relief {
					w /= 3
				} else {
					w %= modulus
				}
				to := m.Target(w)
				items[to] = append(items[to], w)
			}
			counts[i] += len(items[i])
			items[i] = items[i][:0]
		}
	}
	return counts
}

// Business multiplies the two highest inspection counts.
func Business(counts []int) int {
	sorted := slices.Clone(counts)
	slices.Sort(sorted)
	n := len(sorted)
	return sorted[n-1] * sorted[n-2]
}

// Solve returns the monkey business after the relief game and the worry game.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	monkeys, err := ParseNotes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	relief := Play(monkeys, ReliefRounds, true)
	worry := Play(monkeys, WorryRounds, false)
	o.Logger.Debug("inspections", zap.Ints("relief", relief), zap.Ints("worry", worry))
	return puzzle.Ints(Business(relief), Business(worry)), nil
}
