// Package distress orders the nested-list packets of a distress signal.
package distress

import (
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// ErrMalformedInput indicates a packet that does not parse or an unpaired packet.
var ErrMalformedInput = errors.New("distress: malformed input")

// Value is an integer or a nested list.
type Value struct {
	Int  *int  `  @Int`
	List *List `| @@`
}

// List is a bracketed, comma-separated list of values. Every packet is a List.
type List struct {
	Items []*Value `"[" ( @@ ( "," @@ )* )? "]"`
}

type signal struct {
	Packets []*List `@@*`
}

var packetLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[\[\],]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseSignal = participle.MustBuild[signal](
	participle.Lexer(packetLexer),
	participle.Elide("Whitespace"),
)

// ParsePackets reads every packet in order; blank lines are ignored.
func ParsePackets(input string) ([]*List, error) {
	s, err := parseSignal.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	return s.Packets, nil
}

// MustPacket parses a single packet and panics on error.
func MustPacket(s string) *List {
	ps, err := ParsePackets(s)
	if err != nil || len(ps) != 1 {
		panic("distress: bad packet " + strconv.Quote(s))
	}
	return ps[0]
}

// String formats l the way it appears in the signal.
func (l *List) String() string {
	parts := make([]string, 0, len(l.Items))
	for _, v := range l.Items {
		if v.Int != nil {
			parts = append(parts, strconv.Itoa(*v.Int))
		} else {
			parts = append(parts, v.List.String())
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Compare orders two packets: negative when a comes first, positive when b
// does, zero when neither decides. Integers compare by value, lists item by
// item and then by length, and an integer against a list is compared as a
// one-item list.
func Compare(a, b *List) int {
	for i := 0; i < min(len(a.Items), len(b.Items)); i++ {
		if c := compareValues(a.Items[i], b.Items[i]); c != 0 {
			return c
		}
	}
	return len(a.Items) - len(b.Items)
}

func compareValues(a, b *Value) int {
	switch {
	case a.Int != nil && b.Int != nil:
		return *a.Int - *b.Int
	case a.Int != nil:
		return Compare(&List{Items: []*Value{a}}, b.List)
	case b.Int != nil:
		return Compare(a.List, &List{Items: []*Value{b}})
	}
	return Compare(a.List, b.List)
}

// OrderedPairs sums the 1-based indices of the pairs already in the right order.
func OrderedPairs(packets []*List) (int, error) {
	if len(packets)%2 != 0 {
		return 0, errors.Wrapf(ErrMalformedInput, "%d packets do not pair up", len(packets))
	}
	sum := 0
	for i := 0; i < len(packets); i += 2 {
		if Compare(packets[i], packets[i+1]) < 0 {
			sum += i/2 + 1
		}
	}
	return sum, nil
}

// DecoderKey sorts the packets together with the divider packets [[2]] and
// [[6]] and multiplies the dividers' 1-based positions.
func DecoderKey(packets []*List) int {
	dividers := []*List{MustPacket("[[2]]"), MustPacket("[[6]]")}
	all := append(slices.Clone(packets), dividers...)
	slices.SortStableFunc(all, Compare)
	key := 1
	for _, d := range dividers {
		key *= slices.Index(all, d) + 1
	}
	return key
}

// Solve returns the ordered-pair index sum and the decoder key.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	packets, err := ParsePackets(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(packets) == 0 {
		return puzzle.Answer{}, errors.Wrap(ErrMalformedInput, "no packets")
	}
	ordered, err := OrderedPairs(packets)
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("parsed signal", zap.Int("packets", len(packets)))
	return puzzle.Ints(ordered, DecoderKey(packets)), nil
}
