// Package region implements Area extraction: given a completed path, flood
// fill the board into maximal connected components of in-board cells that
// the path does not separate, along with each component's bounding edges
// and corners. The validate package runs every per-region rule against each
// Area this package produces.
//
// Uses the same flood-fill shape as elsewhere in this codebase (queue of
// unvisited cells, offsets tried per cell, visited set keyed by
// coordinate) generalised from a uniform-value grid to a grid whose walls
// are the edges a drawn path crosses.
package region
