package snafu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var table = []struct {
	dec   int64
	snafu string
}{
	{0, "0"},
	{1, "1"},
	{2, "2"},
	{3, "1="},
	{4, "1-"},
	{5, "10"},
	{6, "11"},
	{7, "12"},
	{8, "2="},
	{9, "2-"},
	{10, "20"},
	{15, "1=0"},
	{20, "1-0"},
	{2022, "1=11-2"},
	{12345, "1-0---0"},
	{314159265, "1121-1110-1=0"},
	{-1, "-"},
	{-2, "="},
	{-3, "-2"},
}

func TestConversions(t *testing.T) {
	for _, tc := range table {
		t.Run(fmt.Sprint(tc.dec), func(t *testing.T) {
			assert.Equal(t, tc.snafu, ToSnafu(tc.dec))
			got, err := ToDecimal(tc.snafu)
			require.NoError(t, err)
			assert.Equal(t, tc.dec, got)
		})
	}
}

func TestToDecimal_Errors(t *testing.T) {
	for _, in := range []string{"", "13", "1 2", "abc"} {
		_, err := ToDecimal(in)
		require.ErrorIs(t, err, ErrInvalidDigit, "input %q", in)
	}
	_, err := ToDecimal("2222222222222222222222222222")
	require.ErrorIs(t, err, ErrOverflow)
}

const sample = `1=-0-2
12111
2=0=
21
2=01
111
20012
112
1=-1=
1-12
12
1=
122
`

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "2=-1=0", ans.Part1)
	assert.Equal(t, "0", ans.Part2)

	_, err = Solve("\n\n")
	require.ErrorIs(t, err, ErrMalformedInput)
}
