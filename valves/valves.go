// Package valves plans which pressure-release valves to open, alone or with
// an elephant, before the volcano erupts.
package valves

import (
	"sort"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Planning constants.
const (
	Start = "AA"
	// Minutes until the eruption.
	Minutes = 30
	// TeachMinutes are spent teaching the elephant before working together.
	TeachMinutes = 4
)

// maxUseful is the number of valves with flow that fit the bit set.
const maxUseful = 64

// ErrMalformedInput indicates a bad scan line, a tunnel to an unknown valve,
// a missing start valve or too many working valves.
var ErrMalformedInput = errors.New("valves: malformed input")

// Valve is one line of the scan.
type Valve struct {
	Name    string   `"Valve" @Name`
	Rate    int      `"has" "flow" "rate" "=" @Int ";"`
	Tunnels []string `( "tunnels" "lead" | "tunnel" "leads" ) "to" ( "valves" | "valve" ) @Name ( "," @Name )*`
}

type scan struct {
	Valves []*Valve `@@*`
}

var scanLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[A-Z]{2}`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[=;,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseScan = participle.MustBuild[scan](
	participle.Lexer(scanLexer),
	participle.Elide("Whitespace"),
)

// ParseValves reads lines such as
// "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB".
func ParseValves(input string) ([]Valve, error) {
	s, err := parseScan.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	out := make([]Valve, 0, len(s.Valves))
	for _, v := range s.Valves {
		out = append(out, *v)
	}
	return out, nil
}

// Network keeps only the valves worth opening, plus the start, with the
// shortest walking time between each pair.
type Network struct {
	// Names and Rates of the working valves; valve i is bit i of a set.
	Names []string
	Rates []int
	// dist[i][j] is the walk from valve i to valve j in minutes, -1 when
	// there is no way. Index len(Names) is the start.
	dist [][]int
}

// NewNetwork measures the distances between the start and the working valves.
func NewNetwork(valves []Valve, start string) (*Network, error) {
	byName := make(map[string]*Valve, len(valves))
	for i := range valves {
		v := &valves[i]
		if _, dup := byName[v.Name]; dup {
			return nil, errors.Wrapf(ErrMalformedInput, "valve %s listed twice", v.Name)
		}
		byName[v.Name] = v
	}
	for _, v := range valves {
		for _, t := range v.Tunnels {
			if byName[t] == nil {
				return nil, errors.Wrapf(ErrMalformedInput, "valve %s leads to unknown valve %s", v.Name, t)
			}
		}
	}
	if byName[start] == nil {
		return nil, errors.Wrapf(ErrMalformedInput, "no start valve %s", start)
	}

	n := &Network{}
	for _, v := range valves {
		if v.Rate > 0 {
			n.Names = append(n.Names, v.Name)
			n.Rates = append(n.Rates, v.Rate)
		}
	}
	if len(n.Names) > maxUseful {
		return nil, errors.Wrapf(ErrMalformedInput, "%d working valves, at most %d supported", len(n.Names), maxUseful)
	}
	from := append(append([]string{}, n.Names...), start)
	n.dist = make([][]int, len(from))
	for i, name := range from {
		steps := walk(byName, name)
		n.dist[i] = make([]int, len(n.Names))
		for j, to := range n.Names {
			d, ok := steps[to]
			if !ok {
				d = -1
			}
			n.dist[i][j] = d
		}
	}
	return n, nil
}

// walk returns the minutes from one valve to every valve reachable from it.
func walk(byName map[string]*Valve, from string) map[string]int {
	steps := map[string]int{from: 0}
	queue := linkedlistqueue.New()
	queue.Enqueue(from)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		cur := v.(string)
		for _, next := range byName[cur].Tunnels {
			if _, seen := steps[next]; !seen {
				steps[next] = steps[cur] + 1
				queue.Enqueue(next)
			}
		}
	}
	return steps
}

// Plans returns, for every set of valves that can be opened within minutes
// starting at the start valve, the most pressure that set releases.
func (n *Network) Plans(minutes int) map[uint64]int {
	best := map[uint64]int{0: 0}
	var visit func(at, left int, open uint64, released int)
	visit = func(at, left int, open uint64, released int) {
		if released > best[open] {
			best[open] = released
		}
		for next, d := range n.dist[at] {
			if open&(1<<next) != 0 || d < 0 {
				continue
			}
			// walk there, then a minute to open it
			remain := left - d - 1
			if remain <= 0 {
				continue
			}
			visit(next, remain, open|1<<next, released+remain*n.Rates[next])
		}
	}
	visit(len(n.Names), minutes, 0, 0)
	return best
}

// Alone returns the most pressure one worker releases in minutes.
func (n *Network) Alone(minutes int) int {
	most := 0
	for _, p := range n.Plans(minutes) {
		most = max(most, p)
	}
	return most
}

// Together returns the most pressure two workers release in minutes when they
// never open the same valve.
func (n *Network) Together(minutes int) int {
	type plan struct {
		open     uint64
		released int
	}
	plans := make([]plan, 0)
	for open, p := range n.Plans(minutes) {
		plans = append(plans, plan{open, p})
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].released > plans[j].released })

	most := 0
	for i, a := range plans {
		if 2*a.released <= most {
			break
		}
		for _, b := range plans[i:] {
			if a.released+b.released <= most {
				break
			}
			if a.open&b.open == 0 {
				most = a.released + b.released
			}
		}
	}
	return most
}

// Solve returns the best pressure released alone in Minutes and with an
// elephant after teaching it.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	valves, err := ParseValves(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n, err := NewNetwork(valves, Start)
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("working valves", zap.Strings("valves", n.Names))
	return puzzle.Ints(n.Alone(Minutes), n.Together(Minutes-TeachMinutes)), nil
}
