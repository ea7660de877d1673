package cleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n"

func TestParsePairs(t *testing.T) {
	got, err := ParsePairs("2-4,6-8\n10-12,11-11")
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{A: Range{2, 4}, B: Range{6, 8}},
		{A: Range{10, 12}, B: Range{11, 11}},
	}, got)

	for _, in := range []string{"", "2-4", "2-4,6", "2-4;6-8", "4-2,6-8", "-2-4,6-8"} {
		_, err := ParsePairs(in)
		require.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestRange(t *testing.T) {
	cases := []struct {
		a, b               Range
		contains, overlaps bool
	}{
		{Range{2, 8}, Range{3, 7}, true, true},
		{Range{3, 7}, Range{2, 8}, false, true},
		{Range{5, 7}, Range{7, 9}, false, true},
		{Range{2, 4}, Range{6, 8}, false, false},
		{Range{6, 6}, Range{6, 6}, true, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.contains, tc.a.Contains(tc.b), "%v contains %v", tc.a, tc.b)
		assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b), "%v overlaps %v", tc.a, tc.b)
	}
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "2 4", ans.String())
}
