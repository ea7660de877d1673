package monkeymap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/grid"
)

// fixtureNet is the 4×4-face cross net used throughout the tests:
//
//	    A
//	BCD
//	    EF
const fixtureNet = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.`

const fixturePath = "10R5L5R10L4R5L5"

const fixtureInput = fixtureNet + "\n\n" + fixturePath + "\n"

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

func fixtureBoard(t *testing.T) *Board {
	t.Helper()
	b, err := ParseBoard(fixtureNet)
	require.NoError(t, err)
	return b
}

func fixtureOutline(t *testing.T) *Outline {
	t.Helper()
	o, err := WalkOutline(fixtureBoard(t), 4)
	require.NoError(t, err)
	_, err = o.Fold()
	require.NoError(t, err)
	return o
}
