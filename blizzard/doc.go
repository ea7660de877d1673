// Package blizzard plans a route through a valley swept by blizzards.
//
// Blizzards move one cell per minute in a fixed direction and wrap around
// inside the valley walls, so the valley at minute t can be computed
// directly: a cell is hit by a '>' blizzard iff the cell t columns to its
// left started with one, and likewise for the other three kinds.
//
// The search keeps the set of cells reachable at each minute (waiting in
// place is allowed) and advances it until the target is in it.
package blizzard
