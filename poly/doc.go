// Package poly implements polyomino (and anti-polyomino) algebra: rotation
// around a pivot cell and the bit-packed shape decoding used by the JSON
// puzzle ingest format.
//
// Shapes are built the same procedural, coordinate-list way fixed vertex
// sets get constructed elsewhere in this style of codebase: a Polyomino is
// nothing more than a short list of cell offsets plus a rotation flag.
package poly
