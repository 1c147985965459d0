// Package geom defines the lattice primitives shared by the rest of
// witnesspath: positions, directions, and undirected edges with a single
// canonical orientation.
//
// A Position is used both as a vertex (the path walks between them) and as a
// cell (a unit square bears at most one constraint); which interpretation
// applies is determined entirely by context — callers never need to convert
// between the two.
//
// Edge equality and hashing always go through Canon: two Edge values that
// denote the same undirected segment compare and hash identically once
// normalised, regardless of which direction either was constructed with.
package geom
