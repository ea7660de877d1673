// Package crt runs the handheld's two-instruction CPU and draws what its
// cathode-ray screen shows.
package crt

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
	"github.com/katalvlaran/aoc22/puzzle"
)

// Screen size in pixels; one pixel is drawn per cycle.
const (
	ScreenWidth  = 40
	ScreenHeight = 6
)

// SampleCycles are the cycles whose signal strength is summed.
var SampleCycles = []int{20, 60, 100, 140, 180, 220}

// ErrMalformedInput indicates an unknown instruction or a bad operand.
var ErrMalformedInput = errors.New("crt: malformed input")

// Instruction is noop, or addx with its operand.
type Instruction struct {
	Op  string `@("noop" | "addx")`
	Arg *int   `@Int?`
}

type program struct {
	Instructions []*Instruction `@@*`
}

var programLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `[a-z]+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseProgram = participle.MustBuild[program](
	participle.Lexer(programLexer),
	participle.Elide("Whitespace"),
)

// ParseProgram reads one instruction per line.
func ParseProgram(input string) ([]Instruction, error) {
	p, err := parseProgram.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(p.Instructions) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "empty program")
	}
	out := make([]Instruction, 0, len(p.Instructions))
	for i, in := range p.Instructions {
		if (in.Op == "addx") != (in.Arg != nil) {
			return nil, errors.Wrapf(ErrMalformedInput, "instruction %d: bad operand for %s", i+1, in.Op)
		}
		out = append(out, *in)
	}
	return out, nil
}

// Trace records the X register during every cycle of a run.
type Trace struct {
	during []int
	final  int
}

// Run executes prog with X starting at 1. noop takes one cycle; addx takes
// two and updates X when the second ends.
func Run(prog []Instruction) *Trace {
	t := &Trace{final: 1}
	for _, in := range prog {
		t.during = append(t.during, t.final)
		if in.Op == "addx" {
			t.during = append(t.during, t.final)
			t.final += *in.Arg
		}
	}
	return t
}

// Cycles returns how many cycles the program ran.
func (t *Trace) Cycles() int { return len(t.during) }

// X returns the register during cycle c, counted from 1. After the program
// ends X keeps its final value.
func (t *Trace) X(c int) int {
	if c > len(t.during) {
		return t.final
	}
	return t.during[c-1]
}

// Signal sums cycle × X over the given cycles.
func (t *Trace) Signal(cycles ...int) int {
	sum := 0
	for _, c := range cycles {
		sum += c * t.X(c)
	}
	return sum
}

// Screen draws one pixel per cycle, row by row. Pixel p is lit when the
// three-pixel sprite centred on X covers p.X while p is drawn.
// Returns grid.ErrEmptyGrid for a screen without pixels.
func (t *Trace) Screen(width, height int) (*grid.Grid[bool], error) {
	g, err := grid.Filled(width, height, false)
	if err != nil {
		return nil, errors.Wrapf(err, "crt: %dx%d screen", width, height)
	}
	for i := 0; i < g.Width*g.Height; i++ {
		p := g.Coordinate(i)
		if grid.Abs(p.X-t.X(i+1)) <= 1 {
			g.Set(p, true)
		}
	}
	return g, nil
}

// Render draws lit pixels as '#' and dark ones as '.', one line per row.
func Render(g *grid.Grid[bool]) string {
	rows := make([]string, 0, g.Height)
	for _, row := range g.Cells {
		var b strings.Builder
		for _, lit := range row {
			if lit {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// Solve returns the summed signal strength and the screen picture.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	prog, err := ParseProgram(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	t := Run(prog)
	o.Logger.Debug("ran program", zap.Int("cycles", t.Cycles()), zap.Int("x", t.final))
	screen, err := t.Screen(ScreenWidth, ScreenHeight)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: strconv.Itoa(t.Signal(SampleCycles...)),
		Part2: Render(screen),
	}, nil
}
