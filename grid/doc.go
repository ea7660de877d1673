// Package grid treats a rectangular block of text as a 2-D grid of typed
// cells and provides the small geometric vocabulary the puzzle solvers share.
//
// What:
//
//   - Point is an integer (X, Y) pair used both as a position and as a unit
//     direction vector. Y grows downwards, as rows do in the input text.
//   - North, East, South and West are the four orthogonal unit vectors;
//     Right and Left rotate a vector by 90° clockwise or anticlockwise.
//   - Grid[T] wraps a rectangular [][]T with bounds checks, row‑major
//     indexing and text parsing with padding of ragged rows.
//   - BFS walks a Grid from one or more starting cells with hooks, depth
//     limits and neighbor filtering.
//
// Why:
//
//   - Puzzle maps, height fields and cellular automata all reduce to the
//     same "cells on a rectangle" shape with slightly different cell types.
//
// Complexity:
//
//   - New, Parse:  O(W×H) time and memory.
//   - BFS:         O(W×H×4) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a start cell lies outside the grid.
//   - ErrOptionViolation: an invalid BFS option was supplied.
//   - ErrNoPath: PathTo was asked for an unreached cell.
package grid
