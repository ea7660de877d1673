package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/grid"
)

const (
	small = "R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"
	large = "R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n"
)

func TestParseMotions(t *testing.T) {
	got, err := ParseMotions("R 4\nU 12")
	require.NoError(t, err)
	assert.Equal(t, []Motion{{Dir: grid.East, Steps: 4}, {Dir: grid.North, Steps: 12}}, got)

	for _, in := range []string{"X 4", "R", "R -1", "4 R"} {
		_, err := ParseMotions(in)
		require.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestStep_Diagonal(t *testing.T) {
	r := &Rope{Knots: []grid.Point{{X: 1, Y: -1}, {X: 0, Y: 0}}}
	r.Step(grid.North)
	assert.Equal(t, grid.Point{X: 1, Y: -1}, r.Tail())
}

func TestTailVisits(t *testing.T) {
	m, err := ParseMotions(small)
	require.NoError(t, err)
	assert.Equal(t, 13, TailVisits(m, 2))
	assert.Equal(t, 1, TailVisits(m, 10))

	m, err = ParseMotions(large)
	require.NoError(t, err)
	assert.Equal(t, 36, TailVisits(m, 10))
}

func TestSolve(t *testing.T) {
	ans, err := Solve(small)
	require.NoError(t, err)
	assert.Equal(t, "13 1", ans.String())

	_, err = Solve("")
	require.ErrorIs(t, err, ErrMalformedInput)
}
