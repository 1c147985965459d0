// Package tiling decides whether a multiset of polyominoes and
// anti-polyominoes can exactly tile a region: a backtracking search that
// picks an uncovered target cell and tries every remaining piece, every
// rotation, and every mino-to-target alignment, undoing on failure.
//
// Uses the same branch-and-bound shape as elsewhere in this codebase: a
// dedicated search routine over discrete choices with an explicit
// used/visited slice and pure try/undo recursion, no shared mutable engine
// struct since the search space here is small enough not to need one.
package tiling
