package nospace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/puzzle"
)

const sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestDirSizes(t *testing.T) {
	sizes, err := DirSizes(sample)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"/":    48381165,
		"/a":   94853,
		"/a/e": 584,
		"/d":   24933642,
	}, sizes)
}

func TestDirSizes_EmptyDirectories(t *testing.T) {
	sizes, err := DirSizes("$ cd /\n$ ls\ndir x\n10 y\n$ cd x\n$ cd /\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"/": 10, "/x": 0}, sizes)
}

func TestDirSizes_Errors(t *testing.T) {
	for _, in := range []string{"", "$ cd ..", "$ rm -rf /", "dir", "12"} {
		_, err := DirSizes(in)
		require.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestSmallest(t *testing.T) {
	sizes, err := DirSizes(sample)
	require.NoError(t, err)

	got, err := Smallest(sizes, DefaultDiskSize, DefaultFreeNeeded)
	require.NoError(t, err)
	assert.Equal(t, 24933642, got)

	// a bigger disk leaves enough room to delete a small directory
	got, err = Smallest(sizes, 78300000, DefaultFreeNeeded)
	require.NoError(t, err)
	assert.Equal(t, 94853, got)

	_, err = Smallest(sizes, 10, DefaultFreeNeeded)
	require.ErrorIs(t, err, ErrNoCandidate)
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, "95437 24933642", ans.String())

	ans, err = Solve(sample, puzzle.WithParam(FreeNeededParam, 0))
	require.NoError(t, err)
	assert.Equal(t, "584", ans.Part2)
}
