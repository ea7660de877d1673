package monkeymap

import (
	"fmt"

	"github.com/katalvlaran/aoc22/grid"
)

// Tile is one cell of the net.
type Tile uint8

const (
	// Void is outside the net (blank in the input).
	Void Tile = iota
	// Open is a walkable tile ('.').
	Open
	// Solid is a wall ('#').
	Solid
)

// Rune returns the input character for t.
func (t Tile) Rune() rune {
	switch t {
	case Open:
		return '.'
	case Solid:
		return '#'
	}
	return ' '
}

// Topology selects how a Surface handles steps off the net.
type Topology uint8

const (
	// Flat wraps around to the far side of the same row or column.
	Flat Topology = iota
	// Cube crosses folded seams onto the adjacent face.
	Cube
)

func (t Topology) String() string {
	switch t {
	case Flat:
		return "flat"
	case Cube:
		return "cube"
	}
	return fmt.Sprintf("Topology(%d)", uint8(t))
}

// Turn is a rotation instruction.
type Turn uint8

const (
	// NoTurn marks a movement instruction.
	NoTurn Turn = iota
	// TurnLeft rotates 90° anticlockwise.
	TurnLeft
	// TurnRight rotates 90° clockwise.
	TurnRight
)

// Instruction is one element of the path: either Steps forward or a Turn.
type Instruction struct {
	Steps int
	Turn  Turn
}

func (in Instruction) String() string {
	switch in.Turn {
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	}
	return fmt.Sprint(in.Steps)
}

// Edge is one exposed side of a face, seen from outside the net.
// Walking from Start to End keeps the net on the right-hand side; Dir points
// away from the face. Partner is the index of the folded-together edge in the
// owning Outline, or -1 while unpaired.
type Edge struct {
	Start, End grid.Point
	Dir        grid.Point
	Partner    int
}

// Outline is the clockwise sequence of edges around a net.
type Outline struct {
	FaceSize int
	Edges    []Edge
}

// Seam is a pair of outline edge indices folded onto each other.
type Seam struct {
	A, B int
}
