package blizzard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/grid"
)

const sample = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`

func TestParse(t *testing.T) {
	v, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 6, v.Width)
	assert.Equal(t, 4, v.Height)
	assert.Equal(t, grid.Point{X: 0, Y: -1}, v.Entrance)
	assert.Equal(t, grid.Point{X: 5, Y: 4}, v.Exit)
	assert.Equal(t, 12, v.Period())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"two gaps":      "#..#\n#..#\n##.#",
		"no exit":       "#.##\n#..#\n####",
		"unknown cell":  "#.##\n#.x#\n##.#",
		"inner wall":    "#.###\n#.#.#\n###.#",
		"too small":     "#.#",
		"open side":     "#.##\n...#\n##.#",
		"gap in corner": ".###\n#..#\n##.#",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestFree(t *testing.T) {
	v, err := Parse("#.#####\n#.....#\n#>....#\n#.....#\n#####.#")
	require.NoError(t, err)
	for tm := 0; tm < 5; tm++ {
		assert.False(t, v.Free(grid.Point{X: tm, Y: 1}, tm), "minute %d", tm)
		assert.True(t, v.Free(grid.Point{X: (tm + 1) % 5, Y: 1}, tm), "minute %d", tm)
	}
	assert.False(t, v.Free(grid.Point{X: 0, Y: 1}, 5))
	assert.True(t, v.Free(v.Entrance, 3))
	assert.False(t, v.Free(grid.Point{X: -1, Y: 0}, 0))
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "18", ans.Part1)
	assert.Equal(t, "54", ans.Part2)
}

func TestCross_Blocked(t *testing.T) {
	// the only cell between entrance and exit is always swept by a blizzard
	v, err := Parse("#.#\n#v#\n#.#")
	require.NoError(t, err)
	_, err = v.Cross(v.Entrance, v.Exit, 0)
	require.ErrorIs(t, err, ErrNoRoute)
}
