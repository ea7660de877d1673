package sand

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/grid"
)

// ErrMalformedInput indicates the scan is not a list of rock paths.
var ErrMalformedInput = errors.New("sand: malformed input")

type scan struct {
	Paths []*rockPath `@@*`
}

type rockPath struct {
	Vertices []*vertex `@@ ( "->" @@ )*`
}

type vertex struct {
	X int `@Int ","`
	Y int `@Int`
}

var scanLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `->`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseScan = participle.MustBuild[scan](
	participle.Lexer(scanLexer),
	participle.Elide("Whitespace"),
)

// ParseScan returns the rock paths as lists of vertices.
// Consecutive vertices must share a row or a column.
func ParseScan(input string) ([][]grid.Point, error) {
	s, err := parseScan.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(s.Paths) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no rock paths")
	}
	paths := make([][]grid.Point, 0, len(s.Paths))
	for i, rp := range s.Paths {
		path := make([]grid.Point, 0, len(rp.Vertices))
		for j, v := range rp.Vertices {
			p := grid.Point{X: v.X, Y: v.Y}
			if j > 0 && p.X != path[j-1].X && p.Y != path[j-1].Y {
				return nil, errors.Wrapf(ErrMalformedInput, "path %d: diagonal segment %v -> %v", i+1, path[j-1], p)
			}
			path = append(path, p)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
