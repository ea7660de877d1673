// Package sand pours sand into a cave of rock paths and counts how much
// comes to rest.
//
// Rock paths are read with a small participle grammar:
//
//	498,4 -> 498,6 -> 496,6
//
// Sand enters at 500,0 one unit at a time and falls down, then down-left,
// then down-right, resting when all three are blocked. Part 1 stops when a
// unit falls past the lowest rock; part 2 adds an endless floor two rows
// below it and stops once the source itself is covered.
package sand
