package monkeymap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/grid"
)

var (
	north = grid.North
	east  = grid.East
	south = grid.South
	west  = grid.West
)

// TestWalkOutline_Fixture compares the walk against the outline traced by hand,
// clockwise from the top of face B.
func TestWalkOutline_Fixture(t *testing.T) {
	got, err := WalkOutline(fixtureBoard(t), 4)
	require.NoError(t, err)

	want := &Outline{FaceSize: 4, Edges: []Edge{
		{Start: pt(0, 4), End: pt(3, 4), Dir: north, Partner: -1},
		{Start: pt(4, 4), End: pt(7, 4), Dir: north, Partner: -1},
		{Start: pt(8, 3), End: pt(8, 0), Dir: west, Partner: -1},
		{Start: pt(8, 0), End: pt(11, 0), Dir: north, Partner: -1},
		{Start: pt(11, 0), End: pt(11, 3), Dir: east, Partner: -1},
		{Start: pt(11, 4), End: pt(11, 7), Dir: east, Partner: -1},
		{Start: pt(12, 8), End: pt(15, 8), Dir: north, Partner: -1},
		{Start: pt(15, 8), End: pt(15, 11), Dir: east, Partner: -1},
		{Start: pt(15, 11), End: pt(12, 11), Dir: south, Partner: -1},
		{Start: pt(11, 11), End: pt(8, 11), Dir: south, Partner: -1},
		{Start: pt(8, 11), End: pt(8, 8), Dir: west, Partner: -1},
		{Start: pt(7, 7), End: pt(4, 7), Dir: south, Partner: -1},
		{Start: pt(3, 7), End: pt(0, 7), Dir: south, Partner: -1},
		{Start: pt(0, 7), End: pt(0, 4), Dir: west, Partner: -1},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WalkOutline mismatch (-want +got):\n%s", diff)
	}
}

// TestWalkOutline_Closes checks the walk shape: every edge spans one face side,
// consecutive edges touch, and the last edge ends where the first began.
func TestWalkOutline_Closes(t *testing.T) {
	o, err := WalkOutline(fixtureBoard(t), 4)
	require.NoError(t, err)

	k := len(o.Edges)
	for i, edge := range o.Edges {
		assert.Equal(t, 3, edge.Start.Manhattan(edge.End), "edge %d length", i)
		next := o.Edges[(i+1)%k]
		assert.LessOrEqual(t, edge.End.Chebyshev(next.Start), 1, "edges %d and %d do not touch", i, (i+1)%k)
	}
	assert.Equal(t, o.Edges[0].Start, o.Edges[k-1].End)
	// 6 faces × 4 sides, each of the 5 inner joins hides 2
	assert.Len(t, o.Edges, 14)
}

// unitNet is a cross of six single-tile faces.
const unitNet = " .\n...\n .\n ."

// TestWalkOutline_UnitFaces walks a net whose edges are single cells, so an
// edge's Start and End coincide and only Dir tells neighbours apart.
func TestWalkOutline_UnitFaces(t *testing.T) {
	b, err := ParseBoard(unitNet)
	require.NoError(t, err)
	o, err := WalkOutline(b, 1)
	require.NoError(t, err)

	type side struct {
		At  grid.Point
		Dir grid.Point
	}
	want := []side{
		{pt(1, 0), north}, {pt(1, 0), east},
		{pt(2, 1), north}, {pt(2, 1), east}, {pt(2, 1), south},
		{pt(1, 2), east},
		{pt(1, 3), east}, {pt(1, 3), south}, {pt(1, 3), west},
		{pt(1, 2), west},
		{pt(0, 1), south}, {pt(0, 1), west}, {pt(0, 1), north},
		{pt(1, 0), west},
	}
	got := make([]side, 0, len(o.Edges))
	for _, edge := range o.Edges {
		assert.Equal(t, edge.Start, edge.End)
		got = append(got, side{edge.Start, edge.Dir})
	}
	assert.Equal(t, want, got)

	seams, err := o.Fold()
	require.NoError(t, err)
	assert.Equal(t, []Seam{
		{A: 0, B: 1}, {A: 3, B: 4}, {A: 6, B: 7}, {A: 11, B: 12},
		{A: 5, B: 8}, {A: 10, B: 13},
		{A: 2, B: 9},
	}, seams)
	assert.Empty(t, o.Unpaired())
}

func TestWalkOutline_Errors(t *testing.T) {
	b := fixtureBoard(t)
	for _, fs := range []int{0, -4, 3, 5} {
		_, err := WalkOutline(b, fs)
		require.ErrorIs(t, err, ErrMalformedNet, "face size %d", fs)
	}

	// twenty faces in a row need 42 edges, past the cap
	strip, err := ParseBoard(strings.Repeat(".", 20))
	require.NoError(t, err)
	_, err = WalkOutline(strip, 1)
	require.ErrorIs(t, err, ErrMalformedNet)
	assert.Contains(t, err.Error(), "did not close")
}

func TestEdge_Contains(t *testing.T) {
	edge := Edge{Start: pt(15, 11), End: pt(12, 11), Dir: south}
	assert.True(t, edge.Contains(pt(12, 11)))
	assert.True(t, edge.Contains(pt(14, 11)))
	assert.False(t, edge.Contains(pt(11, 11)))
	assert.False(t, edge.Contains(pt(13, 10)))
}
