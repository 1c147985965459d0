// Package puzzle defines the immutable puzzle description: board
// dimensions, holes, starts/ends, blocked edges, and the cell/vertex/edge
// constraints a solution path must satisfy.
//
// A Puzzle is built once, through functional options, and never mutated
// afterwards — the solver and validator only ever read it (validate's
// canceller resolution clones a restricted copy when it needs to try a
// pairing, it never mutates the original).
package puzzle

import "errors"

// Sentinel errors returned by New when the assembled option set violates a
// Puzzle invariant, or when width or height is not positive. An Option
// value that is wrong on its own (a triangle count outside {1,2,3}) panics
// at the point the invalid Option is constructed; the other sentinels
// cover invariants that only make sense once every option has been
// applied.
var (
	// ErrNoStarts indicates the puzzle has no start vertices.
	ErrNoStarts = errors.New("puzzle: at least one start vertex is required")
	// ErrNoEnds indicates the puzzle has no end vertices.
	ErrNoEnds = errors.New("puzzle: at least one end vertex is required")
	// ErrInvalidVertex indicates a start, end, or vertex stone lies
	// outside the board. Blocked edges and edge stones are not checked.
	ErrInvalidVertex = errors.New("puzzle: position is not a valid vertex of this board")
	// ErrInvalidCell indicates a constraint was placed on a cell that is
	// out of bounds or listed in outside_positions (a hole).
	ErrInvalidCell = errors.New("puzzle: position is not a valid in-board cell")
	// ErrBadDimensions indicates width or height is not positive.
	ErrBadDimensions = errors.New("puzzle: width and height must be positive")
)
