// Package beacon reasons about where beacons cannot be, given sensors that
// each report their closest beacon by Manhattan distance.
package beacon

import (
	"slices"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/grid"
	"github.com/katalvlaran/aoc22/puzzle"
)

// Parameter names and their defaults.
const (
	RowParam   = "row"
	LimitParam = "limit"

	DefaultRow   = 2000000
	DefaultLimit = 4000000
)

// FrequencyFactor scales x in the tuning frequency x*FrequencyFactor + y.
const FrequencyFactor = 4000000

var (
	// ErrMalformedInput indicates a line that is not a sensor report.
	ErrMalformedInput = errors.New("beacon: malformed input")
	// ErrNoGap indicates the search square holds no uncovered cell.
	ErrNoGap = errors.New("beacon: distress beacon not found")
)

// Sensor is a sensor and the beacon closest to it.
type Sensor struct {
	At     grid.Point
	Beacon grid.Point
}

// Reach is the Manhattan distance the sensor covers.
func (s Sensor) Reach() int {
	return s.At.Manhattan(s.Beacon)
}

type report struct {
	Lines []*reportLine `@@*`
}

type reportLine struct {
	SX int `"Sensor" "at" "x" "=" @Int ","`
	SY int `"y" "=" @Int ":"`
	BX int `"closest" "beacon" "is" "at" "x" "=" @Int ","`
	BY int `"y" "=" @Int`
}

var reportLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Punct", Pattern: `[=,:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseReport = participle.MustBuild[report](
	participle.Lexer(reportLexer),
	participle.Elide("Whitespace"),
)

// ParseSensors reads lines such as
// "Sensor at x=2, y=18: closest beacon is at x=-2, y=15".
func ParseSensors(input string) ([]Sensor, error) {
	r, err := parseReport.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if len(r.Lines) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no sensors")
	}
	out := make([]Sensor, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, Sensor{
			At:     grid.Point{X: l.SX, Y: l.SY},
			Beacon: grid.Point{X: l.BX, Y: l.BY},
		})
	}
	return out, nil
}

// Span is an inclusive range of x.
type Span struct {
	Lo, Hi int
}

// Len returns the number of cells in s.
func (s Span) Len() int { return s.Hi - s.Lo + 1 }

// Coverage returns the disjoint, sorted spans of row y within reach of any
// sensor. Touching spans are merged.
func Coverage(sensors []Sensor, y int) []Span {
	spans := make([]Span, 0, len(sensors))
	for _, s := range sensors {
		r := s.Reach() - grid.Abs(s.At.Y-y)
		if r >= 0 {
			spans = append(spans, Span{Lo: s.At.X - r, Hi: s.At.X + r})
		}
	}
	slices.SortFunc(spans, func(a, b Span) int { return a.Lo - b.Lo })

	merged := spans[:0]
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.Lo <= merged[n-1].Hi+1 {
			merged[n-1].Hi = max(merged[n-1].Hi, sp.Hi)
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// Excluded counts the cells of row y that cannot hold a beacon: covered cells
// minus the known beacons on that row.
func Excluded(sensors []Sensor, y int) int {
	spans := Coverage(sensors, y)
	n := 0
	for _, sp := range spans {
		n += sp.Len()
	}
	beacons := hashset.New()
	for _, s := range sensors {
		if s.Beacon.Y == y {
			beacons.Add(s.Beacon)
		}
	}
	for _, v := range beacons.Values() {
		x := v.(grid.Point).X
		if slices.ContainsFunc(spans, func(sp Span) bool { return sp.Lo <= x && x <= sp.Hi }) {
			n--
		}
	}
	return n
}

// Locate finds the only cell with 0 <= x, y <= limit that no sensor reaches.
func Locate(sensors []Sensor, limit int) (grid.Point, error) {
	for y := 0; y <= limit; y++ {
		x := 0
		for _, sp := range Coverage(sensors, y) {
			if sp.Lo > x {
				break
			}
			x = max(x, sp.Hi+1)
		}
		if x <= limit {
			return grid.Point{X: x, Y: y}, nil
		}
	}
	return grid.Point{}, errors.Wrapf(ErrNoGap, "square 0..%d", limit)
}

// Frequency is the tuning frequency of a beacon at p.
func Frequency(p grid.Point) int {
	return p.X*FrequencyFactor + p.Y
}

// Solve counts excluded cells on the configured row and returns the tuning
// frequency of the distress beacon.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sensors, err := ParseSensors(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	row := o.Param(RowParam, DefaultRow)
	limit := o.Param(LimitParam, DefaultLimit)
	if limit < 0 {
		return puzzle.Answer{}, errors.Wrapf(puzzle.ErrOptionViolation, "%s cannot be negative (%d)", LimitParam, limit)
	}

	excluded := Excluded(sensors, row)
	beacon, err := Locate(sensors, limit)
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("distress beacon", zap.Stringer("at", beacon))
	return puzzle.Ints(excluded, Frequency(beacon)), nil
}
