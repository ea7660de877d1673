package monkeymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/aoc22/grid"
)

func newFixtureTraveller(t *testing.T, cube bool) *Traveller {
	t.Helper()
	b := fixtureBoard(t)
	s := NewFlat(b)
	if cube {
		var err error
		s, err = NewCube(b, 4, nil)
		require.NoError(t, err)
	}
	tr, err := NewTraveller(s, nil)
	require.NoError(t, err)
	return tr
}

func TestTraveller_StartsFacingEast(t *testing.T) {
	tr := newFixtureTraveller(t, false)
	assert.Equal(t, pt(8, 0), tr.Pos)
	assert.Equal(t, east, tr.Dir)
}

func TestTraveller_StopsAtWall(t *testing.T) {
	tr := newFixtureTraveller(t, false)
	require.NoError(t, tr.Move(10))
	assert.Equal(t, pt(10, 0), tr.Pos)

	require.NoError(t, tr.Move(1))
	assert.Equal(t, pt(10, 0), tr.Pos)
	assert.Equal(t, east, tr.Dir)
}

func TestTraveller_FlatWrap(t *testing.T) {
	cases := []struct {
		name    string
		dir     grid.Point
		wantPos grid.Point
	}{
		// row 0 wraps onto the wall at its east end
		{"west into wall", west, pt(8, 0)},
		{"north to bottom row", north, pt(8, 11)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newFixtureTraveller(t, false)
			tr.Dir = tc.dir
			require.NoError(t, tr.Move(1))
			assert.Equal(t, tc.wantPos, tr.Pos)
			assert.Equal(t, tc.dir, tr.Dir)
		})
	}
}

func TestTraveller_CubeCrossing(t *testing.T) {
	tr := newFixtureTraveller(t, true)
	tr.Pos, tr.Dir = pt(9, 0), north
	require.NoError(t, tr.Move(1))
	assert.Equal(t, pt(2, 4), tr.Pos)
	assert.Equal(t, south, tr.Dir)

	// the cell across the seam is a wall, so nothing changes
	tr.Pos, tr.Dir = pt(8, 0), north
	require.NoError(t, tr.Move(3))
	assert.Equal(t, pt(8, 0), tr.Pos)
	assert.Equal(t, north, tr.Dir)
}

func TestTraveller_Turn(t *testing.T) {
	tr := newFixtureTraveller(t, false)
	require.NoError(t, tr.Turn(TurnRight))
	assert.Equal(t, south, tr.Dir)
	require.NoError(t, tr.Turn(TurnLeft))
	require.NoError(t, tr.Turn(TurnLeft))
	assert.Equal(t, north, tr.Dir)

	require.ErrorIs(t, tr.Turn(Turn(9)), ErrMalformedPath)
	require.ErrorIs(t, tr.Turn(NoTurn), ErrMalformedPath)
}

func TestTraveller_Password(t *testing.T) {
	tr := newFixtureTraveller(t, false)
	tr.Pos, tr.Dir = pt(7, 5), east
	pw, err := tr.Password()
	require.NoError(t, err)
	assert.Equal(t, 6032, pw)

	tr.Pos, tr.Dir = pt(6, 4), north
	pw, err = tr.Password()
	require.NoError(t, err)
	assert.Equal(t, 5031, pw)

	tr.Dir = pt(1, 1)
	_, err = tr.Password()
	require.Error(t, err)
}

func TestTraveller_LogsMoves(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr, err := NewTraveller(NewFlat(fixtureBoard(t)), zap.New(core))
	require.NoError(t, err)

	require.NoError(t, tr.Follow([]Instruction{{Steps: 2}, {Turn: TurnRight}}))
	assert.Equal(t, 1, logs.FilterMessage("moving").Len())
	assert.Equal(t, 1, logs.FilterMessage("turning").Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "flat", entry.ContextMap()["topology"])
	}
}
