package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "A Y\nB X\nC Z\n"

func TestParseGuide(t *testing.T) {
	got, err := ParseGuide(sample)
	require.NoError(t, err)
	assert.Equal(t, []Round{
		{Opponent: Rock, Column: 1},
		{Opponent: Paper, Column: 0},
		{Opponent: Scissors, Column: 2},
	}, got)

	for _, in := range []string{"", "A", "D X", "A Y Z", "a y"} {
		_, err := ParseGuide(in)
		require.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestPlay(t *testing.T) {
	cases := []struct {
		opponent, own Shape
		want          Outcome
	}{
		{Rock, Paper, Win},
		{Paper, Rock, Loss},
		{Scissors, Scissors, Draw},
		{Scissors, Rock, Win},
		{Rock, Scissors, Loss},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Play(tc.opponent, tc.own), "%d vs %d", tc.own, tc.opponent)
		assert.Equal(t, tc.own, Respond(tc.opponent, tc.want))
	}
}

func TestScore_Rounds(t *testing.T) {
	assert.Equal(t, 8, Score(Paper, Win))
	assert.Equal(t, 1, Score(Rock, Loss))
	assert.Equal(t, 6, Score(Scissors, Draw))
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "15 12", ans.String())
}
