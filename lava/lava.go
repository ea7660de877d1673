// Package lava measures the surface of a droplet made of unit cubes.
//
// Surface counts every cube face not touching another cube. Exterior counts
// only the faces reachable from outside, found by flood-filling the air in a
// box one cell larger than the droplet on every side.
package lava

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// ErrMalformedInput indicates a line that is not three comma-separated integers.
var ErrMalformedInput = errors.New("lava: malformed input")

// Cube is the position of one unit cube.
type Cube struct {
	X, Y, Z int
}

func (c Cube) add(d Cube) Cube {
	return Cube{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

var faces = []Cube{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Droplet is a set of cubes.
type Droplet struct {
	cubes    *hashset.Set
	min, max Cube
}

// Parse reads one "x,y,z" cube per line.
func Parse(input string) (*Droplet, error) {
	d := &Droplet{cubes: hashset.New()}
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: %q", i+1, line)
		}
		var v [3]int
		for k, s := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedInput, "line %d: %q", i+1, line)
			}
			v[k] = n
		}
		c := Cube{X: v[0], Y: v[1], Z: v[2]}
		if d.cubes.Empty() {
			d.min, d.max = c, c
		}
		d.min = Cube{X: min(d.min.X, c.X), Y: min(d.min.Y, c.Y), Z: min(d.min.Z, c.Z)}
		d.max = Cube{X: max(d.max.X, c.X), Y: max(d.max.Y, c.Y), Z: max(d.max.Z, c.Z)}
		d.cubes.Add(c)
	}
	if d.cubes.Empty() {
		return nil, errors.Wrap(ErrMalformedInput, "no cubes")
	}
	return d, nil
}

// Len returns the number of distinct cubes.
func (d *Droplet) Len() int { return d.cubes.Size() }

// Surface counts faces not shared by two cubes.
func (d *Droplet) Surface() int {
	n := 0
	for _, v := range d.cubes.Values() {
		c := v.(Cube)
		for _, f := range faces {
			if !d.cubes.Contains(c.add(f)) {
				n++
			}
		}
	}
	return n
}

// Exterior counts faces reachable from outside the droplet.
func (d *Droplet) Exterior() int {
	lo := d.min.add(Cube{X: -1, Y: -1, Z: -1})
	hi := d.max.add(Cube{X: 1, Y: 1, Z: 1})
	inBox := func(c Cube) bool {
		return c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y && c.Z >= lo.Z && c.Z <= hi.Z
	}

	seen := hashset.New(lo)
	queue := linkedlistqueue.New()
	queue.Enqueue(lo)
	n := 0
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		c := v.(Cube)
		for _, f := range faces {
			next := c.add(f)
			if !inBox(next) || seen.Contains(next) {
				continue
			}
			if d.cubes.Contains(next) {
				n++
				continue
			}
			seen.Add(next)
			queue.Enqueue(next)
		}
	}
	return n
}

// Solve returns the total and the exterior surface area.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	d, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	o.Logger.Debug("parsed droplet", zap.Int("cubes", d.Len()))
	return puzzle.Ints(d.Surface(), d.Exterior()), nil
}
