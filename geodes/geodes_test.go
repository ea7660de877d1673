package geodes

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

func TestParseBlueprints(t *testing.T) {
	bs, err := ParseBlueprints(sample)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, Blueprint{
		ID:            1,
		OreRobot:      4,
		ClayRobot:     2,
		ObsidianOre:   3,
		ObsidianClay:  14,
		GeodeOre:      2,
		GeodeObsidian: 7,
	}, bs[0])

	// one clause per line
	wrapped, err := ParseBlueprints(strings.ReplaceAll(sample, ". ", ".\n  "))
	require.NoError(t, err)
	assert.Equal(t, bs, wrapped)

	for _, in := range []string{"", "Blueprint 1:", strings.Replace(sample, "14 clay", "14 ore", 1)} {
		_, err := ParseBlueprints(in)
		require.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestMaxGeodes(t *testing.T) {
	bs, err := ParseBlueprints(sample)
	require.NoError(t, err)

	assert.Equal(t, 9, bs[0].MaxGeodes(QualityMinutes))
	assert.Equal(t, 12, bs[1].MaxGeodes(QualityMinutes))
	assert.Zero(t, bs[0].MaxGeodes(0))
}

func TestMaxGeodesAll(t *testing.T) {
	bs, err := ParseBlueprints(sample)
	require.NoError(t, err)

	got, err := MaxGeodesAll(context.Background(), bs, LongMinutes)
	require.NoError(t, err)
	assert.Equal(t, []int{56, 62}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = MaxGeodesAll(ctx, bs, QualityMinutes)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "33 3472", ans.String())
}
