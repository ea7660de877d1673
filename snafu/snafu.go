package snafu

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

var (
	// ErrMalformedInput indicates an empty input.
	ErrMalformedInput = errors.New("snafu: malformed input")
	// ErrInvalidDigit indicates a character outside "=-012".
	ErrInvalidDigit = errors.New("snafu: invalid digit")
	// ErrOverflow indicates a number that does not fit in an int64.
	ErrOverflow = errors.New("snafu: value overflows int64")
)

const digits = "=-012"

// ToDecimal parses a SNAFU number.
func ToDecimal(s string) (int64, error) {
	if s == "" {
		return 0, errors.Wrap(ErrInvalidDigit, "empty number")
	}
	var n int64
	for i, r := range s {
		d := strings.IndexRune(digits, r)
		if d < 0 {
			return 0, errors.Wrapf(ErrInvalidDigit, "%q at %d in %q", r, i, s)
		}
		if n > (1<<62)/5 || n < -(1<<62)/5 {
			return 0, errors.Wrapf(ErrOverflow, "%q", s)
		}
		n = n*5 + int64(d-2)
	}
	return n, nil
}

// ToSnafu formats n as a SNAFU number. Negative numbers use the negated digits.
func ToSnafu(n int64) string {
	if n == 0 {
		return "0"
	}
	var out []byte
	for n != 0 {
		// rem in -2..2
		rem := ((n+2)%5+5)%5 - 2
		out = append(out, digits[rem+2])
		n = (n - rem) / 5
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Solve sums the SNAFU numbers, one per line, and returns the sum in SNAFU.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var (
		sum   int64
		count int
	)
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := ToDecimal(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		sum += v
		count++
	}
	if count == 0 {
		return puzzle.Answer{}, errors.Wrap(ErrMalformedInput, "no numbers")
	}
	o.Logger.Debug("summed", zap.Int("numbers", count), zap.Int64("sum", sum))
	return puzzle.Answer{Part1: ToSnafu(sum), Part2: "0"}, nil
}
