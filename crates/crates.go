// Package crates rearranges stacks of supply crates following a list of crane
// moves, for two crane models.
package crates

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

var (
	// ErrMalformedInput indicates a bad drawing, a bad move or a missing blank
	// line between the two.
	ErrMalformedInput = errors.New("crates: malformed input")
	// ErrEmptyStack indicates a move takes more crates than the stack holds.
	ErrEmptyStack = errors.New("crates: not enough crates to move")
)

// Crane selects how a multi-crate move is carried out.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time, reversing the moved run.
	CrateMover9000 Crane = iota
	// CrateMover9001 lifts the whole run at once, keeping its order.
	CrateMover9001
)

// Move takes Count crates from stack From to stack To. Stacks are numbered from 1.
type Move struct {
	Count int `"move" @Int`
	From  int `"from" @Int`
	To    int `"to" @Int`
}

type procedure struct {
	Moves []*Move `@@*`
}

var moveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `[a-z]+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseProcedure = participle.MustBuild[procedure](
	participle.Lexer(moveLexer),
	participle.Elide("Whitespace"),
)

// ParseMoves reads lines such as "move 1 from 2 to 1".
func ParseMoves(input string) ([]Move, error) {
	p, err := parseProcedure.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	out := make([]Move, 0, len(p.Moves))
	for _, m := range p.Moves {
		out = append(out, *m)
	}
	return out, nil
}

// Ship holds the crate stacks, bottom crate pushed first.
type Ship struct {
	stacks []*arraystack.Stack
}

// ParseDrawing reads the stack drawing. The last line numbers the stacks;
// crate letters sit in brackets four columns apart.
func ParseDrawing(drawing string) (*Ship, error) {
	lines := strings.Split(strings.TrimRight(drawing, "\n"), "\n")
	labels := strings.Fields(lines[len(lines)-1])
	if len(labels) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no stack numbers")
	}
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return nil, errors.Wrapf(ErrMalformedInput, "stack label %q, want %d", l, i+1)
		}
	}

	s := &Ship{stacks: make([]*arraystack.Stack, len(labels))}
	for i := range s.stacks {
		s.stacks[i] = arraystack.New()
	}
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for i := range s.stacks {
			col := 1 + 4*i
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			if line[col-1] != '[' || line[col] < 'A' || line[col] > 'Z' {
				return nil, errors.Wrapf(ErrMalformedInput, "row %d stack %d: %q", row+1, i+1, line[col-1:min(col+2, len(line))])
			}
			s.stacks[i].Push(line[col])
		}
	}
	return s, nil
}

// Apply carries out m with crane c.
func (s *Ship) Apply(m Move, c Crane) error {
	if m.From < 1 || m.From > len(s.stacks) || m.To < 1 || m.To > len(s.stacks) {
		return errors.Wrapf(ErrMalformedInput, "move %+v: no such stack", m)
	}
	from, to := s.stacks[m.From-1], s.stacks[m.To-1]
	if from.Size() < m.Count {
		return errors.Wrapf(ErrEmptyStack, "move %d from stack %d holding %d", m.Count, m.From, from.Size())
	}

	dst := to
	if c == CrateMover9001 {
		dst = arraystack.New()
	}
	for i := 0; i < m.Count; i++ {
		v, _ := from.Pop()
		dst.Push(v)
	}
	for dst != to && !dst.Empty() {
		v, _ := dst.Pop()
		to.Push(v)
	}
	return nil
}

// Tops reads the top crate of every stack, skipping empty stacks.
func (s *Ship) Tops() string {
	var b strings.Builder
	for _, st := range s.stacks {
		if v, ok := st.Peek(); ok {
			b.WriteByte(v.(byte))
		}
	}
	return b.String()
}

// Rearrange applies every move to a fresh copy of the drawing with crane c.
func Rearrange(drawing string, moves []Move, c Crane) (string, error) {
	ship, err := ParseDrawing(drawing)
	if err != nil {
		return "", err
	}
	for i, m := range moves {
		if err := ship.Apply(m, c); err != nil {
			return "", errors.WithMessagef(err, "move %d", i+1)
		}
	}
	return ship.Tops(), nil
}

// Solve returns the top crates after rearranging with each crane model.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	drawing, procedure, ok := strings.Cut(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n")
	if !ok {
		return puzzle.Answer{}, errors.Wrap(ErrMalformedInput, "no blank line after the drawing")
	}
	moves, err := ParseMoves(procedure)
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("parsed procedure", zap.Int("moves", len(moves)))

	single, err := Rearrange(drawing, moves, CrateMover9000)
	if err != nil {
		return puzzle.Answer{}, err
	}
	batch, err := Rearrange(drawing, moves, CrateMover9001)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: single, Part2: batch}, nil
}
