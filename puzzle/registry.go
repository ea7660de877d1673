package puzzle

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Registry maps day numbers to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register binds s to day.
// Returns ErrInvalidDay for days outside 1..25 and ErrDuplicateDay when the
// day already has a solver.
func (r *Registry) Register(day int, s Solver) error {
	if day < 1 || day > 25 {
		return errors.Wrapf(ErrInvalidDay, "day %d", day)
	}
	if s == nil {
		return errors.Wrapf(ErrOptionViolation, "nil solver for day %d", day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.solvers[day]; ok {
		return errors.Wrapf(ErrDuplicateDay, "day %d", day)
	}
	r.solvers[day] = s
	return nil
}

// Lookup returns the solver for day or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDay, "day %d", day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Solve runs the solver registered for day on input.
func (r *Registry) Solve(day int, input string, opts ...Option) (Answer, error) {
	s, err := r.Lookup(day)
	if err != nil {
		return Answer{}, err
	}
	o, err := Build(opts...)
	if err != nil {
		return Answer{}, err
	}
	log := o.Logger.With(zap.Int("day", day))
	start := time.Now()
	ans, err := s(input, opts...)
	if err != nil {
		log.Debug("solve failed", zap.Error(err))
		return Answer{}, errors.Wrapf(err, "day %d", day)
	}
	log.Debug("solved",
		zap.String("part1", ans.Part1),
		zap.String("part2", ans.Part2),
		zap.Duration("elapsed", time.Since(start)))
	return ans, nil
}

// SolveAll solves every day in inputs concurrently, one goroutine per day.
// The first failure cancels the remaining work and is returned; days not yet
// started are skipped once ctx is done.
func (r *Registry) SolveAll(ctx context.Context, inputs map[int]string, opts ...Option) (map[int]Answer, error) {
	var (
		mu      sync.Mutex
		answers = make(map[int]Answer, len(inputs))
	)
	g, gctx := errgroup.WithContext(ctx)
	for day, input := range inputs {
		day, input := day, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ans, err := r.Solve(day, input, opts...)
			if err != nil {
				return err
			}
			mu.Lock()
			answers[day] = ans
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return answers, nil
}
