// Package nospace rebuilds directory sizes from a terminal session of cd and
// ls commands and picks a directory to delete.
package nospace

import (
	"path"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Parameter names and their defaults.
const (
	DiskSizeParam   = "disk_size"
	FreeNeededParam = "free_needed"

	DefaultDiskSize   = 70000000
	DefaultFreeNeeded = 30000000

	// SmallLimit bounds the directories summed in part one.
	SmallLimit = 100000
)

var (
	// ErrMalformedInput indicates an unknown line or a cd above the root.
	ErrMalformedInput = errors.New("nospace: malformed input")
	// ErrNoCandidate indicates no single directory frees enough space.
	ErrNoCandidate = errors.New("nospace: no directory is large enough")
)

type session struct {
	Lines []*entry `@@*`
}

type entry struct {
	Cmd  *command   `  "$" @@`
	Dir  *string    `| "dir" @Name`
	File *fileEntry `| @@`
}

type command struct {
	Cd *string `  "cd" @Name`
	Ls bool    `| @"ls"`
}

type fileEntry struct {
	Size int    `@Int`
	Name string `@Name`
}

var sessionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Prompt", Pattern: `\$`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Name", Pattern: `[^\s$]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseSession = participle.MustBuild[session](
	participle.Lexer(sessionLexer),
	participle.Elide("Whitespace"),
)

// DirSizes replays the session and returns the total size of every directory
// seen, keyed by absolute path. Files count towards every enclosing directory.
func DirSizes(input string) (map[string]int, error) {
	s, err := parseSession.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(s.Lines) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "empty session")
	}

	sizes := map[string]int{"/": 0}
	cwd := []string{"/"}
	for i, e := range s.Lines {
		switch {
		case e.Cmd != nil && e.Cmd.Cd != nil:
			switch target := *e.Cmd.Cd; target {
			case "/":
				cwd = cwd[:1]
			case "..":
				if len(cwd) == 1 {
					return nil, errors.Wrapf(ErrMalformedInput, "line %d: cd .. from the root", i+1)
				}
				cwd = cwd[:len(cwd)-1]
			default:
				dir := path.Join(cwd[len(cwd)-1], target)
				cwd = append(cwd, dir)
				// list the directory even if it holds no files
				sizes[dir] += 0
			}
		case e.Dir != nil:
			sizes[path.Join(cwd[len(cwd)-1], *e.Dir)] += 0
		case e.File != nil:
			for _, dir := range cwd {
				sizes[dir] += e.File.Size
			}
		}
	}
	return sizes, nil
}

// SmallTotal sums the sizes of directories of at most limit. Nested
// directories are counted again inside their parents.
func SmallTotal(sizes map[string]int, limit int) int {
	sum := 0
	for _, v := range sizes {
		if v <= limit {
			sum += v
		}
	}
	return sum
}

// Smallest returns the size of the smallest directory whose removal leaves at
// least freeNeeded of diskSize unused.
func Smallest(sizes map[string]int, diskSize, freeNeeded int) (int, error) {
	bySize := treemap.NewWithIntComparator()
	for dir, v := range sizes {
		bySize.Put(v, dir)
	}
	need := freeNeeded - (diskSize - sizes["/"])
	size, _ := bySize.Ceiling(need)
	if size == nil {
		return 0, errors.Wrapf(ErrNoCandidate, "need %d more", need)
	}
	return size.(int), nil
}

// Solve returns the total of the small directories and the size of the one to delete.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sizes, err := DirSizes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("replayed session", zap.Int("dirs", len(sizes)), zap.Int("used", sizes["/"]))

	remove, err := Smallest(sizes,
		o.Param(DiskSizeParam, DefaultDiskSize),
		o.Param(FreeNeededParam, DefaultFreeNeeded))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(SmallTotal(sizes, SmallLimit), remove), nil
}
