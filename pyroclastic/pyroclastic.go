// Package pyroclastic drops rocks into a seven-unit-wide chamber, pushed
// sideways by jets of hot gas, and predicts how tall the tower grows.
package pyroclastic

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Rock counts of the two questions.
const (
	ShortRun = 2022
	LongRun  = 1000000000000
)

// profileDepth is how many top rows identify a repeating chamber state.
const profileDepth = 32

// ErrMalformedInput indicates an empty jet pattern or a byte other than '<' and '>'.
var ErrMalformedInput = errors.New("pyroclastic: malformed input")

// Width of the chamber. A row is a bit mask; bit Width-1 is the leftmost column.
const Width = 7

// shapes lists each rock's rows bottom first, already two units from the left wall.
var shapes = [][]uint8{
	{0b0011110},
	{0b0001000, 0b0011100, 0b0001000},
	{0b0011100, 0b0000100, 0b0000100},
	{0b0010000, 0b0010000, 0b0010000, 0b0010000},
	{0b0011000, 0b0011000},
}

// ParseJets validates the jet pattern.
func ParseJets(input string) (string, error) {
	jets := strings.TrimSpace(input)
	if jets == "" {
		return "", errors.Wrap(ErrMalformedInput, "no jets")
	}
	if i := strings.IndexFunc(jets, func(r rune) bool { return r != '<' && r != '>' }); i >= 0 {
		return "", errors.Wrapf(ErrMalformedInput, "jet %q at %d", jets[i], i)
	}
	return jets, nil
}

// Chamber is the settled tower plus where the rock and jet sequences stand.
type Chamber struct {
	rows  []uint8
	jets  string
	jet   int
	rocks int
}

// NewChamber returns an empty chamber driven by jets.
func NewChamber(jets string) *Chamber {
	return &Chamber{jets: jets}
}

// Height is the tower height in rows.
func (c *Chamber) Height() int { return len(c.rows) }

// Rocks is the number of rocks dropped so far.
func (c *Chamber) Rocks() int { return c.rocks }

func (c *Chamber) hits(shape []uint8, y int) bool {
	for i, row := range shape {
		if y+i < len(c.rows) && c.rows[y+i]&row != 0 {
			return true
		}
	}
	return false
}

func push(shape []uint8, jet byte) ([]uint8, bool) {
	moved := make([]uint8, len(shape))
	for i, row := range shape {
		if jet == '<' {
			if row&(1<<(Width-1)) != 0 {
				return shape, false
			}
			moved[i] = row << 1
		} else {
			if row&1 != 0 {
				return shape, false
			}
			moved[i] = row >> 1
		}
	}
	return moved, true
}

// Drop lets the next rock fall until it comes to rest. It appears three rows
// above the tower, then alternates a jet push with a fall of one row.
func (c *Chamber) Drop() {
	shape := shapes[c.rocks%len(shapes)]
	y := len(c.rows) + 3
	for {
		if moved, ok := push(shape, c.jets[c.jet]); ok && !c.hits(moved, y) {
			shape = moved
		}
		c.jet = (c.jet + 1) % len(c.jets)
		if y == 0 || c.hits(shape, y-1) {
			break
		}
		y--
	}
	for i, row := range shape {
		for y+i >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[y+i] |= row
	}
	c.rocks++
}

// Render draws the top n rows, highest first, with '#' for rock.
func (c *Chamber) Render(n int) string {
	var b strings.Builder
	for y := len(c.rows) - 1; y >= max(0, len(c.rows)-n); y-- {
		for bit := Width - 1; bit >= 0; bit-- {
			if c.rows[y]&(1<<bit) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

type state struct {
	rock, jet int
	top       [profileDepth]uint8
}

type mark struct {
	rocks, height int
}

// Height returns the tower height after rocks have fallen. Once the rock
// index, jet index and top rows repeat, whole cycles are skipped and only
// their height is added.
func Height(jets string, rocks int, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	c := NewChamber(jets)
	seen := make(map[state]mark)
	skipped, jumped := 0, false
	for c.rocks < rocks {
		c.Drop()
		if jumped || c.Height() < profileDepth {
			continue
		}
		s := state{rock: c.rocks % len(shapes), jet: c.jet}
		copy(s.top[:], c.rows[c.Height()-profileDepth:])
		prev, ok := seen[s]
		if !ok {
			seen[s] = mark{rocks: c.rocks, height: c.Height()}
			continue
		}
		period := c.rocks - prev.rocks
		cycles := (rocks - c.rocks) / period
		c.rocks += cycles * period
		skipped = cycles * (c.Height() - prev.height)
		jumped = true
		log.Debug("tower repeats",
			zap.Int("from", prev.rocks), zap.Int("period", period), zap.Int("cycles", cycles))
	}
	return c.Height() + skipped
}

// Solve returns the tower height after ShortRun and after LongRun rocks.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	jets, err := ParseJets(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(Height(jets, ShortRun, o.Logger), Height(jets, LongRun, o.Logger)), nil
}
