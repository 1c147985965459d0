package puzzle

import (
	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
)

// Color is a small interned identifier shared across squares, stars, and
// cancellers — colours from distinct cell types may share the same id
// space, so a single byte-sized type serves all three.
type Color = byte

// Puzzle is the immutable board description. Construct one with New and a
// list of Options; once built, every field is read-only for the lifetime of
// a solve.
type Puzzle struct {
	width, height int

	starts, ends []geom.Position

	blocked map[geom.Edge]struct{}
	outside map[geom.Position]struct{}

	squares map[geom.Position]Color
	stars   map[geom.Position]Color
	cancels map[geom.Position]Color

	triangles map[geom.Position]int

	polys map[geom.Position]poly.Polyomino
	ylops map[geom.Position]poly.Polyomino

	vertexStones map[geom.Position]struct{}
	edgeStones   map[geom.Edge]struct{}
}

// Width returns the cell extent in X.
func (p *Puzzle) Width() int { return p.width }

// Height returns the cell extent in Y.
func (p *Puzzle) Height() int { return p.height }

// Starts returns the puzzle's start vertices.
func (p *Puzzle) Starts() []geom.Position { return p.starts }

// Ends returns the puzzle's end vertices.
func (p *Puzzle) Ends() []geom.Position { return p.ends }

// ContainsVertex reports whether pos is a valid lattice vertex of this
// board: 0<=x<=width, 0<=y<=height.
func (p *Puzzle) ContainsVertex(pos geom.Position) bool {
	return pos.X >= 0 && pos.X <= p.width && pos.Y >= 0 && pos.Y <= p.height
}

// InBoard reports whether pos is an in-board cell: within the bounding
// rectangle (0<=x<width, 0<=y<height) and not listed as a hole.
func (p *Puzzle) InBoard(pos geom.Position) bool {
	if pos.X < 0 || pos.X >= p.width || pos.Y < 0 || pos.Y >= p.height {
		return false
	}
	_, hole := p.outside[pos]
	return !hole
}

// IsOuter reports whether pos lies on the outer boundary of the board.
func (p *Puzzle) IsOuter(pos geom.Position) bool {
	return pos.X == 0 || pos.X == p.width || pos.Y == 0 || pos.Y == p.height
}

// IsBlocked reports whether the canonical edge e may not be traversed.
func (p *Puzzle) IsBlocked(e geom.Edge) bool {
	_, ok := p.blocked[e.Canon()]
	return ok
}

// IsStart reports whether pos is a listed start vertex.
func (p *Puzzle) IsStart(pos geom.Position) bool {
	for _, s := range p.starts {
		if s == pos {
			return true
		}
	}
	return false
}

// IsEnd reports whether pos is a listed end vertex.
func (p *Puzzle) IsEnd(pos geom.Position) bool {
	for _, e := range p.ends {
		if e == pos {
			return true
		}
	}
	return false
}

// HasVertexStone reports whether pos carries a vertex stone.
func (p *Puzzle) HasVertexStone(pos geom.Position) bool {
	_, ok := p.vertexStones[pos]
	return ok
}

// HasEdgeStone reports whether the canonical edge e carries an edge stone.
func (p *Puzzle) HasEdgeStone(e geom.Edge) bool {
	_, ok := p.edgeStones[e.Canon()]
	return ok
}

// Square returns the colour of the square at pos, if any.
func (p *Puzzle) Square(pos geom.Position) (Color, bool) {
	c, ok := p.squares[pos]
	return c, ok
}

// Star returns the colour of the star at pos, if any.
func (p *Puzzle) Star(pos geom.Position) (Color, bool) {
	c, ok := p.stars[pos]
	return c, ok
}

// Cancel returns the colour of the canceller at pos, if any.
func (p *Puzzle) Cancel(pos geom.Position) (Color, bool) {
	c, ok := p.cancels[pos]
	return c, ok
}

// Triangle returns the declared adjacency count of the triangle at pos, if
// any.
func (p *Puzzle) Triangle(pos geom.Position) (int, bool) {
	c, ok := p.triangles[pos]
	return c, ok
}

// Poly returns the polyomino at pos, if any.
func (p *Puzzle) Poly(pos geom.Position) (poly.Polyomino, bool) {
	s, ok := p.polys[pos]
	return s, ok
}

// Ylop returns the anti-polyomino at pos, if any.
func (p *Puzzle) Ylop(pos geom.Position) (poly.Polyomino, bool) {
	s, ok := p.ylops[pos]
	return s, ok
}

// Squares, Stars, Cancels, Triangles, Polys, Ylops, VertexStones, and
// EdgeStones expose read-only views of the underlying constraint maps/sets,
// used by validate when scoping a check to an area, by solve, and by
// render.

func (p *Puzzle) Squares() map[geom.Position]Color         { return p.squares }
func (p *Puzzle) Stars() map[geom.Position]Color           { return p.stars }
func (p *Puzzle) Cancels() map[geom.Position]Color         { return p.cancels }
func (p *Puzzle) Triangles() map[geom.Position]int         { return p.triangles }
func (p *Puzzle) Polys() map[geom.Position]poly.Polyomino  { return p.polys }
func (p *Puzzle) Ylops() map[geom.Position]poly.Polyomino  { return p.ylops }
func (p *Puzzle) VertexStones() map[geom.Position]struct{} { return p.vertexStones }
func (p *Puzzle) EdgeStones() map[geom.Edge]struct{}       { return p.edgeStones }

// New assembles a Puzzle from width, height, and a list of Options, then
// validates cross-field invariants: at least one start and one end, every
// start/end/vertex-stone on the board, every constraint cell in-board.
func New(width, height int, opts ...Option) (*Puzzle, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	p := &Puzzle{
		width:        width,
		height:       height,
		blocked:      make(map[geom.Edge]struct{}),
		outside:      make(map[geom.Position]struct{}),
		squares:      make(map[geom.Position]Color),
		stars:        make(map[geom.Position]Color),
		cancels:      make(map[geom.Position]Color),
		triangles:    make(map[geom.Position]int),
		polys:        make(map[geom.Position]poly.Polyomino),
		ylops:        make(map[geom.Position]poly.Polyomino),
		vertexStones: make(map[geom.Position]struct{}),
		edgeStones:   make(map[geom.Edge]struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	if len(p.starts) == 0 {
		return nil, ErrNoStarts
	}
	if len(p.ends) == 0 {
		return nil, ErrNoEnds
	}
	for _, v := range p.starts {
		if !p.ContainsVertex(v) {
			return nil, ErrInvalidVertex
		}
	}
	for _, v := range p.ends {
		if !p.ContainsVertex(v) {
			return nil, ErrInvalidVertex
		}
	}
	for v := range p.vertexStones {
		if !p.ContainsVertex(v) {
			return nil, ErrInvalidVertex
		}
	}
	for _, cells := range []map[geom.Position]Color{p.squares, p.stars, p.cancels} {
		for c := range cells {
			if !p.InBoard(c) {
				return nil, ErrInvalidCell
			}
		}
	}
	for c := range p.triangles {
		if !p.InBoard(c) {
			return nil, ErrInvalidCell
		}
	}
	for c := range p.polys {
		if !p.InBoard(c) {
			return nil, ErrInvalidCell
		}
	}
	for c := range p.ylops {
		if !p.InBoard(c) {
			return nil, ErrInvalidCell
		}
	}

	return p, nil
}

// Default returns the canonical 1x1 puzzle: a single cell, start at (0,0),
// end at (1,1), with no constraints.
func Default() *Puzzle {
	p, err := New(1, 1, WithStart(geom.Pos(0, 0)), WithEnd(geom.Pos(1, 1)))
	if err != nil {
		// Unreachable: the default configuration is always valid.
		panic(err)
	}
	return p
}
