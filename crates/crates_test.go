package crates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	drawing = "    [D]    \n[N] [C]    \n[Z] [M] [P]\n 1   2   3 \n"
	sample  = drawing + "\nmove 1 from 2 to 1\nmove 3 from 1 to 3\nmove 2 from 2 to 1\nmove 1 from 1 to 2\n"
)

func TestParseDrawing(t *testing.T) {
	s, err := ParseDrawing(drawing)
	require.NoError(t, err)
	require.Len(t, s.stacks, 3)
	assert.Equal(t, "NDP", s.Tops())
	assert.Equal(t, 3, s.stacks[1].Size())

	// trailing spaces trimmed by an editor
	s, err = ParseDrawing("    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3")
	require.NoError(t, err)
	assert.Equal(t, "NDP", s.Tops())

	for _, in := range []string{"[A]\n 2 ", "[a]\n 1 ", "(A)\n 1 ", "[A]\n"} {
		_, err := ParseDrawing(in)
		require.ErrorIs(t, err, ErrMalformedInput, "drawing %q", in)
	}
}

func TestParseMoves(t *testing.T) {
	got, err := ParseMoves("move 1 from 2 to 1\nmove 13 from 1 to 3")
	require.NoError(t, err)
	assert.Equal(t, []Move{{Count: 1, From: 2, To: 1}, {Count: 13, From: 1, To: 3}}, got)

	for _, in := range []string{"move 1 from 2", "move x from 2 to 1", "take 1 from 2 to 1"} {
		_, err := ParseMoves(in)
		require.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestApply_Cranes(t *testing.T) {
	moves := []Move{{Count: 3, From: 2, To: 3}}

	// stack 2 ends up empty and is skipped
	got, err := Rearrange(drawing, moves, CrateMover9000)
	require.NoError(t, err)
	assert.Equal(t, "NM", got)

	s, err := ParseDrawing(drawing)
	require.NoError(t, err)
	require.NoError(t, s.Apply(moves[0], CrateMover9001))
	assert.Equal(t, "ND", s.Tops())
}

func TestApply_Errors(t *testing.T) {
	s, err := ParseDrawing(drawing)
	require.NoError(t, err)

	err = s.Apply(Move{Count: 2, From: 3, To: 1}, CrateMover9000)
	require.ErrorIs(t, err, ErrEmptyStack)
	err = s.Apply(Move{Count: 1, From: 4, To: 1}, CrateMover9000)
	require.ErrorIs(t, err, ErrMalformedInput)
	err = s.Apply(Move{Count: 1, From: 1, To: 0}, CrateMover9001)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", ans.Part1)
	assert.Equal(t, "MCD", ans.Part2)

	_, err = Solve(drawing)
	require.ErrorIs(t, err, ErrMalformedInput)

	_, err = Solve(drawing + "\nmove 4 from 1 to 2\n")
	require.ErrorIs(t, err, ErrEmptyStack)
}
