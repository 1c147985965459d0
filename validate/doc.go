// Package validate decides whether a completed path satisfies a puzzle's
// constraints. IsSolution partitions the board into Areas (via region) and
// checks every Area: a cheap pre-reduction pass that consumes cancellers
// against stone/triangle errors, followed — if any cancellers remain — by
// bounded recursive elimination that tries removing a canceller together
// with one other constrained position until the area reads as valid or
// every pairing is exhausted.
//
// Uses the same branch-and-bound shape (try, recurse, undo) for the
// canceller recursion as elsewhere in this codebase. The package returns
// no errors: IsSolution reports a bool, and only internal accounting bugs
// panic.
package validate
