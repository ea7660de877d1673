package puzzle_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/aoc22/puzzle"
)

// lengths reports the byte length and line count of its input.
func lengths(input string, _ ...puzzle.Option) (puzzle.Answer, error) {
	return puzzle.Ints(len(input), strings.Count(input, "\n")+1), nil
}

// scaled multiplies the input by the "factor" parameter.
func scaled(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(n*o.Param("factor", 1), n), nil
}

var errBroken = errors.New("broken")

func broken(string, ...puzzle.Option) (puzzle.Answer, error) {
	return puzzle.Answer{}, errBroken
}

func TestRegister_Errors(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(3, lengths))

	require.ErrorIs(t, reg.Register(0, lengths), puzzle.ErrInvalidDay)
	require.ErrorIs(t, reg.Register(26, lengths), puzzle.ErrInvalidDay)
	require.ErrorIs(t, reg.Register(3, lengths), puzzle.ErrDuplicateDay)
	require.ErrorIs(t, reg.Register(4, nil), puzzle.ErrOptionViolation)

	_, err := reg.Lookup(7)
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
	_, err = reg.Solve(7, "")
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestDays_Sorted(t *testing.T) {
	reg := puzzle.NewRegistry()
	for _, d := range []int{22, 1, 14, 6} {
		require.NoError(t, reg.Register(d, lengths))
	}
	assert.Equal(t, []int{1, 6, 14, 22}, reg.Days())
}

func TestSolve_ParamsAndLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(2, scaled))

	ans, err := reg.Solve(2, "7", puzzle.WithParam("factor", 3), puzzle.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "21", Part2: "7"}, ans)
	assert.Equal(t, "21 7", ans.String())

	entries := logs.FilterMessage("solved").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["day"])

	_, err = reg.Solve(2, "7", puzzle.WithParam("", 1))
	require.ErrorIs(t, err, puzzle.ErrOptionViolation)
}

func TestOptions_Defaults(t *testing.T) {
	o, err := puzzle.Build(puzzle.WithLogger(nil), puzzle.WithParams(map[string]int{"face_size": 4}))
	require.NoError(t, err)
	require.NotNil(t, o.Logger)
	assert.Equal(t, 4, o.Param("face_size", 50))
	assert.Equal(t, 50, o.Param("missing", 50))
}

func TestSolveAll(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(1, lengths))
	require.NoError(t, reg.Register(2, scaled))

	answers, err := reg.SolveAll(context.Background(), map[int]string{
		1: "ab\ncd",
		2: "5",
	})
	require.NoError(t, err)
	assert.Equal(t, map[int]puzzle.Answer{
		1: {Part1: "5", Part2: "2"},
		2: {Part1: "5", Part2: "5"},
	}, answers)
}

func TestSolveAll_FirstErrorWins(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(1, lengths))
	require.NoError(t, reg.Register(9, broken))

	_, err := reg.SolveAll(context.Background(), map[int]string{1: "x", 9: "y"})
	require.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "day 9")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = reg.SolveAll(ctx, map[int]string{1: "x"})
	require.ErrorIs(t, err, context.Canceled)
}
