package monkeymap

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// pathExpr is the grammar of a path such as "10R5L5".
type pathExpr struct {
	Steps []*pathStep `@@*`
}

type pathStep struct {
	Move int    `  @Steps`
	Turn string `| @Turn`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Steps", Pattern: `\d+`},
	{Name: "Turn", Pattern: `[LR]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parsePathExpr = participle.MustBuild[pathExpr](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
)

// ParsePath reads a path of step counts and L/R turns.
// Returns ErrMalformedPath for anything else.
func ParsePath(s string) ([]Instruction, error) {
	expr, err := parsePathExpr.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedPath, err.Error())
	}
	path := make([]Instruction, 0, len(expr.Steps))
	for _, st := range expr.Steps {
		switch st.Turn {
		case "L":
			path = append(path, Instruction{Turn: TurnLeft})
		case "R":
			path = append(path, Instruction{Turn: TurnRight})
		default:
			path = append(path, Instruction{Steps: st.Move})
		}
	}
	return path, nil
}
