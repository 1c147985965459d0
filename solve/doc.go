// Package solve implements the BFS enumerator: a FIFO queue of partial
// paths, grown one unit step at a time from every start vertex, pruned by
// cheap incremental checks, and handed to validate.IsSolution on every
// arrival at an end vertex.
//
// Uses the same queue/visit loop shape as elsewhere in this codebase (a
// slice-backed FIFO, an options struct, a dedicated per-step helper),
// generalised from single-target traversal to multi-start/multi-end path
// enumeration with prefix pruning and solution collection instead of a
// visited-set walk.
package solve
