package monkeymap

import "github.com/pkg/errors"

// Sentinel errors. All of them describe static input or geometry problems,
// so none is worth retrying.
var (
	// ErrMalformedInput indicates the input lacks the blank line between net and path.
	ErrMalformedInput = errors.New("monkeymap: input must be a net, a blank line and a path")
	// ErrMalformedPath indicates the path is not a sequence of step counts and L/R turns.
	ErrMalformedPath = errors.New("monkeymap: malformed path")
	// ErrMalformedNet indicates the net cannot be read as a cube net of the given face size.
	ErrMalformedNet = errors.New("monkeymap: malformed net")
	// ErrUnresolvedEdgePairing indicates an outline edge has no partner after folding.
	ErrUnresolvedEdgePairing = errors.New("monkeymap: outline edge left unpaired after folding")
	// ErrNoCrossableEdge indicates no single outline edge matches a boundary exit.
	ErrNoCrossableEdge = errors.New("monkeymap: no single crossable edge for boundary exit")
	// ErrInvalidLanding indicates a boundary crossing landed off the net.
	ErrInvalidLanding = errors.New("monkeymap: crossing landed on void")
)
