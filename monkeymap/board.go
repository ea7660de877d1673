package monkeymap

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/grid"
)

// Board is the parsed net, immutable once built.
type Board struct {
	tiles *grid.Grid[Tile]
}

// ParseBoard reads the net diagram. Rows are padded with Void to the widest row.
// Characters other than '.', '#' and ' ' are rejected with ErrMalformedNet.
func ParseBoard(text string) (*Board, error) {
	g, err := grid.Parse(text, Void, decodeTile)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedNet, err.Error())
	}
	return &Board{tiles: g}, nil
}

func decodeTile(r rune) (Tile, error) {
	switch r {
	case '.':
		return Open, nil
	case '#':
		return Solid, nil
	case ' ':
		return Void, nil
	}
	return Void, errors.Errorf("unexpected tile %q", r)
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.tiles.Width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.tiles.Height }

// Tile returns the tile at p; anything off the board is Void.
func (b *Board) Tile(p grid.Point) Tile {
	t, ok := b.tiles.Lookup(p)
	if !ok {
		return Void
	}
	return t
}

// occupied reports whether p is on the net.
func (b *Board) occupied(p grid.Point) bool {
	return b.Tile(p) != Void
}

// Start returns the leftmost Open tile of the top row.
func (b *Board) Start() (grid.Point, error) {
	for x := 0; x < b.Width(); x++ {
		if p := (grid.Point{X: x}); b.Tile(p) == Open {
			return p, nil
		}
	}
	return grid.Point{}, errors.Wrap(ErrMalformedNet, "no open tile in the top row")
}

// FaceSize infers the side of one face from the tile count, assuming six
// equal square faces.
func (b *Board) FaceSize() (int, error) {
	n := b.tiles.Count(func(t Tile) bool { return t != Void })
	if n == 0 || n%6 != 0 {
		return 0, errors.Wrapf(ErrMalformedNet, "%d tiles cannot form six equal faces", n)
	}
	area := n / 6
	side := 1
	for side*side < area {
		side++
	}
	if side*side != area {
		return 0, errors.Wrapf(ErrMalformedNet, "face area %d is not a square", area)
	}
	return side, nil
}

// Render draws the board with the traveller at pos heading dir.
func (b *Board) Render(pos, dir grid.Point) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			if p == pos {
				sb.WriteRune(arrow(dir))
				continue
			}
			sb.WriteRune(b.Tile(p).Rune())
		}
	}
	return sb.String()
}

func arrow(dir grid.Point) rune {
	switch dir {
	case grid.East:
		return '>'
	case grid.South:
		return 'v'
	case grid.West:
		return '<'
	case grid.North:
		return '^'
	}
	return '?'
}
