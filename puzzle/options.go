package puzzle

import (
	"fmt"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
)

// Option customizes a Puzzle under construction. Options that receive a
// value which is meaningless on its own (a triangle count outside {1,2,3})
// panic immediately, following the corpus's fail-fast convention for
// constructor-time programmer errors; options whose validity depends on the
// rest of the board (is this vertex on the board?) are checked once in New.
type Option func(*Puzzle)

// WithStart adds a start vertex.
func WithStart(v geom.Position) Option {
	return func(p *Puzzle) { p.starts = append(p.starts, v) }
}

// WithEnd adds an end vertex.
func WithEnd(v geom.Position) Option {
	return func(p *Puzzle) { p.ends = append(p.ends, v) }
}

// WithBlockedEdge marks e as untraversable.
func WithBlockedEdge(e geom.Edge) Option {
	return func(p *Puzzle) { p.blocked[e.Canon()] = struct{}{} }
}

// WithOutside marks cell as a hole (outside the playable board despite
// being within the bounding rectangle).
func WithOutside(cell geom.Position) Option {
	return func(p *Puzzle) { p.outside[cell] = struct{}{} }
}

// WithSquare places a square of the given colour on cell.
func WithSquare(cell geom.Position, color Color) Option {
	return func(p *Puzzle) { p.squares[cell] = color }
}

// WithStar places a star of the given colour on cell.
func WithStar(cell geom.Position, color Color) Option {
	return func(p *Puzzle) { p.stars[cell] = color }
}

// WithCancel places a canceller of the given colour on cell.
func WithCancel(cell geom.Position, color Color) Option {
	return func(p *Puzzle) { p.cancels[cell] = color }
}

// WithTriangle places a triangle constraint on cell requiring exactly count
// path-adjacent edges. Panics if count is not in {1,2,3}: a triangle
// constraint outside that range can never be satisfied (a cell has only 4
// bounding edges and 0/4 are not meaningful triangle counts) and is always
// a caller error, never puzzle data worth rejecting politely.
func WithTriangle(cell geom.Position, count int) Option {
	if count < 1 || count > 3 {
		panic(fmt.Sprintf("puzzle: WithTriangle(count=%d) outside {1,2,3}", count))
	}
	return func(p *Puzzle) { p.triangles[cell] = count }
}

// WithPoly places a polyomino constraint on cell.
func WithPoly(cell geom.Position, shape poly.Polyomino) Option {
	return func(p *Puzzle) { p.polys[cell] = shape }
}

// WithYlop places an anti-polyomino constraint on cell.
func WithYlop(cell geom.Position, shape poly.Polyomino) Option {
	return func(p *Puzzle) { p.ylops[cell] = shape }
}

// WithVertexStone places a vertex stone on v.
func WithVertexStone(v geom.Position) Option {
	return func(p *Puzzle) { p.vertexStones[v] = struct{}{} }
}

// WithEdgeStone places an edge stone on e.
func WithEdgeStone(e geom.Edge) Option {
	return func(p *Puzzle) { p.edgeStones[e.Canon()] = struct{}{} }
}
