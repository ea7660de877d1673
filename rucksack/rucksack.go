// Package rucksack finds misplaced items in elf rucksacks and the badge shared
// by each group of three elves.
package rucksack

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc22/puzzle"
)

// GroupSize is the number of elves sharing one badge.
const GroupSize = 3

var (
	// ErrMalformedInput indicates an odd-length line, a non-letter item or a
	// rucksack count that does not split into groups.
	ErrMalformedInput = errors.New("rucksack: malformed input")
	// ErrNoCommonItem indicates the sets to intersect do not share exactly one item type.
	ErrNoCommonItem = errors.New("rucksack: no single common item")
)

// Priority ranks a..z as 1..26 and A..Z as 27..52, and 0 for anything else.
func Priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	}
	return 0
}

func itemSet(s string) *hashset.Set {
	set := hashset.New()
	for i := 0; i < len(s); i++ {
		set.Add(s[i])
	}
	return set
}

// Common returns the one item type present in every part.
func Common(parts ...string) (byte, error) {
	if len(parts) == 0 {
		return 0, errors.Wrap(ErrNoCommonItem, "nothing to compare")
	}
	shared := itemSet(parts[0])
	for _, p := range parts[1:] {
		shared = shared.Intersection(itemSet(p))
	}
	if shared.Size() != 1 {
		return 0, errors.Wrapf(ErrNoCommonItem, "%d shared item types in %q", shared.Size(), parts)
	}
	return shared.Values()[0].(byte), nil
}

// Parse splits the input into rucksacks, one per line.
func Parse(input string) ([]string, error) {
	var sacks []string
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line)%2 != 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: odd item count %d", i+1, len(line))
		}
		for j := 0; j < len(line); j++ {
			if Priority(line[j]) == 0 {
				return nil, errors.Wrapf(ErrMalformedInput, "line %d: item %q", i+1, line[j])
			}
		}
		sacks = append(sacks, line)
	}
	if len(sacks) == 0 || len(sacks)%GroupSize != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "%d rucksacks do not form groups of %d", len(sacks), GroupSize)
	}
	return sacks, nil
}

// Solve sums the priorities of the misplaced items and of the group badges.
func Solve(input string, opts ...puzzle.Option) (puzzle.Answer, error) {
	o, err := puzzle.Build(opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sacks, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	misplaced := 0
	for _, s := range sacks {
		item, err := Common(s[:len(s)/2], s[len(s)/2:])
		if err != nil {
			return puzzle.Answer{}, err
		}
		misplaced += Priority(item)
	}
	badges := 0
	for i := 0; i < len(sacks); i += GroupSize {
		badge, err := Common(sacks[i : i+GroupSize]...)
		if err != nil {
			return puzzle.Answer{}, errors.WithMessagef(err, "group %d", i/GroupSize+1)
		}
		badges += Priority(badge)
	}
	o.Logger.Debug("checked rucksacks", zap.Int("rucksacks", len(sacks)))
	return puzzle.Ints(misplaced, badges), nil
}
