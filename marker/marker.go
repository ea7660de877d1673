// Package marker locates start markers in a device datastream: the first
// position after a run of distinct characters.
package marker

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Window lengths of the two marker kinds.
const (
	PacketWindow  = 4
	MessageWindow = 14
)

var (
	// ErrMalformedInput indicates an empty stream or a byte outside 'a'..'z'.
	ErrMalformedInput = errors.New("marker: malformed input")
	// ErrNoMarker indicates the stream has no run of distinct characters long enough.
	ErrNoMarker = errors.New("marker: no marker found")
)

// Find returns the number of characters read when the last window characters
// first become pairwise distinct. The whole stream is checked for bytes
// outside 'a'..'z' before the search starts.
func Find(stream string, window int) (int, error) {
	if window <= 0 {
		return 0, errors.Errorf("marker: window must be positive, got %d", window)
	}
	for i := 0; i < len(stream); i++ {
		if stream[i] < 'a' || stream[i] > 'z' {
			return 0, errors.Wrapf(ErrMalformedInput, "byte %q at %d", stream[i], i)
		}
	}
	var seen [26]int
	dup := 0
	for i := 0; i < len(stream); i++ {
		c := stream[i] - 'a'
		if seen[c]++; seen[c] == 2 {
			dup++
		}
		if i >= window {
			old := stream[i-window] - 'a'
			if seen[old]--; seen[old] == 1 {
				dup--
			}
		}
		if i >= window-1 && dup == 0 {
			return i + 1, nil
		}
	}
	return 0, errors.Wrapf(ErrNoMarker, "window %d", window)
}

// Solve returns the start-of-packet and start-of-message positions.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	if _, err := puzzle.Build(opts...); err != nil {
		return puzzle.Answer{}, err
	}
	stream := strings.TrimSpace(input)
	if stream == "" {
		return puzzle.Answer{}, errors.Wrap(ErrMalformedInput, "empty stream")
	}
	packet, err := Find(stream, PacketWindow)
	if err != nil {
		return puzzle.Answer{}, err
	}
	message, err := Find(stream, MessageWindow)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(packet, message), nil
}
