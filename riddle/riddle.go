// Package riddle evaluates the monkeys' shouted math jobs and works out what
// the human must shout for the root monkey's two numbers to match.
package riddle

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Names with a special role.
const (
	Root  = "root"
	Human = "humn"
)

var (
	// ErrMalformedInput indicates a bad job line, a duplicate or unknown
	// monkey, a cycle, a division by zero or a missing root.
	ErrMalformedInput = errors.New("riddle: malformed input")
	// ErrNoAnswer indicates no integer shout balances the root.
	ErrNoAnswer = errors.New("riddle: no integer answer")
)

// Job is a monkey's job: a number, or an operation on two other monkeys.
type Job struct {
	Name  string `@Name ":"`
	Value *int   `( @Int`
	Left  string `| @Name`
	Op    string `  @Op`
	Right string `  @Name )`
}

type jobList struct {
	Jobs []*Job `@@*`
}

var jobLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[a-z]+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Op", Pattern: `[-+*/]`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseJobs = participle.MustBuild[jobList](
	participle.Lexer(jobLexer),
	participle.Elide("Whitespace"),
)

// Riddle holds every monkey's job by name.
type Riddle struct {
	jobs map[string]*Job
}

// Parse reads lines such as "root: pppw + sjmn" and "dbpl: 5".
func Parse(input string) (*Riddle, error) {
	l, err := parseJobs.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	r := &Riddle{jobs: make(map[string]*Job, len(l.Jobs))}
	for _, j := range l.Jobs {
		if _, dup := r.jobs[j.Name]; dup {
			return nil, errors.Wrapf(ErrMalformedInput, "monkey %s listed twice", j.Name)
		}
		r.jobs[j.Name] = j
	}
	for _, j := range l.Jobs {
		if j.Value != nil {
			continue
		}
		for _, dep := range []string{j.Left, j.Right} {
			if r.jobs[dep] == nil {
				return nil, errors.Wrapf(ErrMalformedInput, "monkey %s waits for unknown monkey %s", j.Name, dep)
			}
		}
	}
	if root := r.jobs[Root]; root == nil || root.Value != nil {
		return nil, errors.Wrap(ErrMalformedInput, "root must combine two monkeys")
	}
	return r, nil
}

// Eval returns the number monkey name shouts.
func (r *Riddle) Eval(name string) (int, error) {
	return r.eval(name, map[string]bool{})
}

func (r *Riddle) eval(name string, open map[string]bool) (int, error) {
	j := r.jobs[name]
	if j == nil {
		return 0, errors.Wrapf(ErrMalformedInput, "no monkey %s", name)
	}
	if j.Value != nil {
		return *j.Value, nil
	}
	if open[name] {
		return 0, errors.Wrapf(ErrMalformedInput, "monkey %s waits for itself", name)
	}
	open[name] = true
	defer delete(open, name)

	a, err := r.eval(j.Left, open)
	if err != nil {
		return 0, err
	}
	b, err := r.eval(j.Right, open)
	if err != nil {
		return 0, err
	}
	switch j.Op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	}
	if b == 0 {
		return 0, errors.Wrapf(ErrMalformedInput, "monkey %s divides by zero", name)
	}
	return a / b, nil
}

// dependsOnHuman reports whether the human's number feeds into name.
func (r *Riddle) dependsOnHuman(name string, open map[string]bool) bool {
	if name == Human {
		return true
	}
	j := r.jobs[name]
	if j.Value != nil || open[name] {
		return false
	}
	open[name] = true
	defer delete(open, name)
	return r.dependsOnHuman(j.Left, open) || r.dependsOnHuman(j.Right, open)
}

// HumanShout returns the number the human must shout so that both operands of
// the root are equal. The human must appear on exactly one side of each
// operation on the way down.
func (r *Riddle) HumanShout() (int, error) {
	if r.jobs[Human] == nil {
		return 0, errors.Wrapf(ErrMalformedInput, "no monkey %s", Human)
	}
	root := r.jobs[Root]
	return r.balance(root.Left, root.Right)
}

// balance finds the human's number that makes the two sides equal.
func (r *Riddle) balance(a, b string) (int, error) {
	inA, inB := r.dependsOnHuman(a, map[string]bool{}), r.dependsOnHuman(b, map[string]bool{})
	switch {
	case inA == inB:
		return 0, errors.Wrapf(ErrNoAnswer, "%s on both sides of %s or on neither", Human, Root)
	case inB:
		a, b = b, a
	}
	target, err := r.Eval(b)
	if err != nil {
		return 0, err
	}

	for name := a; name != Human; {
		j := r.jobs[name]
		// human on the left: target = x op v; on the right: target = v op x
		x, v := j.Left, j.Right
		left := r.dependsOnHuman(j.Left, map[string]bool{})
		if !left {
			x, v = j.Right, j.Left
		}
		if r.dependsOnHuman(v, map[string]bool{}) {
			return 0, errors.Wrapf(ErrNoAnswer, "%s appears on both sides at %s", Human, name)
		}
		known, err := r.Eval(v)
		if err != nil {
			return 0, err
		}
		if target, err = invert(j.Op, target, known, left); err != nil {
			return 0, errors.WithMessagef(err, "at %s", name)
		}
		name = x
	}
	return target, nil
}

// invert solves target = x op known (left) or target = known op x for x.
func invert(op string, target, known int, left bool) (int, error) {
	switch {
	case op == "+":
		return target - known, nil
	case op == "-" && left:
		return target + known, nil
	case op == "-":
		return known - target, nil
	case op == "*":
		if known == 0 || target%known != 0 {
			return 0, errors.Wrapf(ErrNoAnswer, "%d is not a multiple of %d", target, known)
		}
		return target / known, nil
	case left:
		return target * known, nil
	}
	if target == 0 || known/target == 0 || known/(known/target) != target {
		return 0, errors.Wrapf(ErrNoAnswer, "no divisor of %d gives %d", known, target)
	}
	return known / target, nil
}

// Solve returns the root's number and the human's balancing shout.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	r, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	root, err := r.Eval(Root)
	if err != nil {
		return puzzle.Answer{}, err
	}
	shout, err := r.HumanShout()
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("riddle solved", zap.Int("monkeys", len(r.jobs)), zap.Int(Human, shout))
	return puzzle.Ints(root, shout), nil
}
