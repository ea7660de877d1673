// Package mixing decrypts the grove coordinates by mixing a circular list of
// numbers.
package mixing

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Decryption settings of the second part.
const (
	DecryptionKey = 811589153
	KeyedRounds   = 10
)

// Offsets after the zero whose values make up the coordinates.
var Offsets = []int{1000, 2000, 3000}

var (
	// ErrMalformedInput indicates a line that is not an integer, or an empty file.
	ErrMalformedInput = errors.New("mixing: malformed input")
	// ErrNoZero indicates the file has no 0 or more than one.
	ErrNoZero = errors.New("mixing: need exactly one zero")
)

// ParseFile reads one integer per line.
func ParseFile(input string) ([]int, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "empty file")
	}
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "number %d: %q", i+1, f)
		}
		out = append(out, v)
	}
	zeros := 0
	for _, v := range out {
		if v == 0 {
			zeros++
		}
	}
	if zeros != 1 {
		return nil, errors.Wrapf(ErrNoZero, "found %d", zeros)
	}
	return out, nil
}

// Mix moves every number, in original order, forward or back around the
// circle by its own value, repeated rounds times. It returns the values in
// their final circular order.
func Mix(values []int, rounds int) []int {
	n := len(values)
	if n < 2 {
		return slices.Clone(values)
	}
	// order holds indices into values
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for r := 0; r < rounds; r++ {
		for i, v := range values {
			from := slices.Index(order, i)
			order = slices.Delete(order, from, from+1)
			// the circle has n-1 gaps while i is lifted out
			to := ((from+v)%(n-1) + n - 1) % (n - 1)
			order = slices.Insert(order, to, i)
		}
	}
	out := make([]int, n)
	for k, i := range order {
		out[k] = values[i]
	}
	return out
}

// Coordinates sums the values at Offsets past the zero, wrapping round.
func Coordinates(mixed []int) int {
	zero := slices.Index(mixed, 0)
	sum := 0
	for _, off := range Offsets {
		sum += mixed[(zero+off)%len(mixed)]
	}
	return sum
}

// Solve returns the coordinates after one plain mix and after KeyedRounds
// mixes of the numbers multiplied by DecryptionKey.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	values, err := ParseFile(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	plain := Coordinates(Mix(values, 1))

	keyed := make([]int, len(values))
	for i, v := range values {
		keyed[i] = v * DecryptionKey
	}
	o.Logger.Debug("mixing", zap.Int("numbers", len(values)), zap.Int("rounds", KeyedRounds))
	return puzzle.Ints(plain, Coordinates(Mix(keyed, KeyedRounds))), nil
}
