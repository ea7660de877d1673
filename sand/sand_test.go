package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/grid"
)

const sample = "498,4 -> 498,6 -> 496,6\n503,4 -> 502,4 -> 502,9 -> 494,9\n"

func TestParseScan(t *testing.T) {
	paths, err := ParseScan(sample)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, []grid.Point{{X: 498, Y: 4}, {X: 498, Y: 6}, {X: 496, Y: 6}}, paths[0])
	assert.Len(t, paths[1], 4)
}

func TestParseScan_Errors(t *testing.T) {
	for _, in := range []string{"", "498,4 ->", "498 4", "1,1 -> 2,2", "a,b"} {
		_, err := ParseScan(in)
		require.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestCave_Drop(t *testing.T) {
	paths, err := ParseScan(sample)
	require.NoError(t, err)
	c, err := NewCave(paths, false)
	require.NoError(t, err)

	p, ok := c.Drop()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 500, Y: 8}, p)

	p, ok = c.Drop()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 499, Y: 8}, p)

	assert.Equal(t, Rock, c.At(grid.Point{X: 498, Y: 5}))
	assert.Equal(t, Air, c.At(grid.Point{X: 500, Y: 100}))
}

func TestNewCave_RockAboveSource(t *testing.T) {
	_, err := NewCave([][]grid.Point{{{X: 500, Y: 2}, {X: 500, Y: -1}}}, true)
	require.ErrorIs(t, err, ErrMalformedInput)

	c, err := NewCave([][]grid.Point{{{X: 500, Y: 0}}}, true)
	require.NoError(t, err)
	_, ok := c.Drop()
	assert.False(t, ok, "rock on the source blocks it")
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "24", ans.Part1)
	assert.Equal(t, "93", ans.Part2)
}
