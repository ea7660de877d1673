// Package calories totals the food carried by each elf.
package calories

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// ErrMalformedInput indicates a line that is neither blank nor an integer.
var ErrMalformedInput = errors.New("calories: malformed input")

// Totals returns the calorie sum of every elf, in input order.
// Elves are separated by blank lines.
func Totals(input string) ([]int, error) {
	var (
		totals []int
		cur    int
		open   bool
	)
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				totals = append(totals, cur)
			}
			cur, open = 0, false
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: %q", i+1, line)
		}
		cur += n
		open = true
	}
	if open {
		totals = append(totals, cur)
	}
	if len(totals) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no elves")
	}
	return totals, nil
}

// Top returns the sum of the k largest totals, or of all of them when there
// are fewer than k.
func Top(totals []int, k int) int {
	sorted := slices.Clone(totals)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })
	sum := 0
	for _, v := range sorted[:min(k, len(sorted))] {
		sum += v
	}
	return sum
}

// Solve returns the largest total and the sum of the three largest.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	totals, err := Totals(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("counted elves", zap.Int("elves", len(totals)))
	return puzzle.Ints(Top(totals, 1), Top(totals, 3)), nil
}
