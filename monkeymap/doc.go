// Package monkeymap walks a path across a board that is either a flat,
// wrap-around map or the unfolded net of a cube.
//
// What:
//
//   - Board is the parsed net: a rectangle of Void, Open and Solid tiles,
//     padded with Void where input rows are short.
//   - WalkOutline walks clockwise around the outside of the net and records
//     one Edge per exposed face side.
//   - Outline.Fold pairs those edges into seams the way the net folds into a
//     cube, using only their order along the outline and their directions.
//   - Outline.Cross maps a step off one face onto the matching cell and
//     heading of the neighboring face.
//   - Surface is either Flat (torus wrap) or Cube (seam crossing); a
//     Traveller moves over it following the path and reports the password.
//
// Edges refer to their partners by index into Outline.Edges; there are no
// pointers between edges.
//
// Complexity:
//
//   - ParseBoard:     O(W×H).
//   - WalkOutline:    O(E), E ≤ 30 edges.
//   - Fold:           O(4×E).
//   - Cross:          O(E) per boundary exit.
//   - Flat wrap:      O(max(W,H)) per boundary exit.
//
// Errors:
//
//   - ErrMalformedInput, ErrMalformedPath: unreadable input.
//   - ErrMalformedNet: wrong face size, not six faces, or a runaway outline walk.
//   - ErrUnresolvedEdgePairing: folding left an edge without partner.
//   - ErrNoCrossableEdge: a boundary exit matched zero or several edges.
//   - ErrInvalidLanding: a crossing landed on Void or off the board.
package monkeymap
