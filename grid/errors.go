package grid

import "github.com/pkg/errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a requested cell lies outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
	// ErrNoPath indicates the destination was never reached.
	ErrNoPath = errors.New("grid: no path to cell")
)
