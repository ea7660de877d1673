package puzzle

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sentinel errors for registry and option handling.
var (
	// ErrInvalidDay is returned when registering a day outside 1..25.
	ErrInvalidDay = errors.New("puzzle: day must be between 1 and 25")
	// ErrDuplicateDay is returned when a day already has a solver.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("puzzle: no solver for day")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")
)

// Answer is the pair of results produced for one day.
type Answer struct {
	Part1 string
	Part2 string
}

// String formats the answer as "part1 part2".
func (a Answer) String() string {
	return a.Part1 + " " + a.Part2
}

// Ints builds an Answer from two integers.
func Ints[A, B ~int | ~int64](p1 A, p2 B) Answer {
	return Answer{Part1: fmt.Sprint(p1), Part2: fmt.Sprint(p2)}
}

// Solver computes both parts of one day from its raw input.
type Solver func(input string, opts ...Option) (Answer, error)

// Option configures a solver via functional arguments.
type Option func(*Options)

// Options holds what a solver may need beyond its input.
type Options struct {
	// Logger receives debug traces. Never nil after Build.
	Logger *zap.Logger

	// Params holds named integer parameters, keyed by snake_case name.
	Params map[string]int

	err error
}

// DefaultOptions returns Options with a no-op logger and no parameters.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Params: map[string]int{},
	}
}

// Build applies opts over DefaultOptions and reports the first violation.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Param returns the named parameter, or def when it is not set.
func (o Options) Param(name string, def int) int {
	if v, ok := o.Params[name]; ok {
		return v
	}
	return def
}

// WithLogger sets the logger handed to solvers. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParam sets a named integer parameter. Empty names are a violation.
func WithParam(name string, v int) Option {
	return func(o *Options) {
		if name == "" {
			o.err = errors.Wrap(ErrOptionViolation, "parameter name cannot be empty")
			return
		}
		o.Params[name] = v
	}
}

// WithParams copies every entry of params. Empty names are a violation.
func WithParams(params map[string]int) Option {
	return func(o *Options) {
		for k, v := range params {
			WithParam(k, v)(o)
		}
	}
}
