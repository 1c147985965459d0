package validate

import (
	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
	"github.com/katalvlaran/witnesspath/puzzle"
	"github.com/katalvlaran/witnesspath/region"
)

// constraints is a working copy of the puzzle's constraint maps, restricted
// to one Area. Canceller resolution clones and mutates this copy; it never
// touches the Puzzle itself.
type constraints struct {
	squares map[geom.Position]puzzle.Color
	stars   map[geom.Position]puzzle.Color
	cancels map[geom.Position]puzzle.Color

	triangles map[geom.Position]int

	polys map[geom.Position]poly.Polyomino
	ylops map[geom.Position]poly.Polyomino

	vertexStones map[geom.Position]struct{}
	edgeStones   map[geom.Edge]struct{}
}

// scopeToArea builds the working constraint set for area: cell constraints
// restricted to area.Cells, vertex stones restricted to area.Corners, edge
// stones restricted to area.Edges.
func scopeToArea(p *puzzle.Puzzle, area region.Area) *constraints {
	c := &constraints{
		squares:      make(map[geom.Position]puzzle.Color),
		stars:        make(map[geom.Position]puzzle.Color),
		cancels:      make(map[geom.Position]puzzle.Color),
		triangles:    make(map[geom.Position]int),
		polys:        make(map[geom.Position]poly.Polyomino),
		ylops:        make(map[geom.Position]poly.Polyomino),
		vertexStones: make(map[geom.Position]struct{}),
		edgeStones:   make(map[geom.Edge]struct{}),
	}

	for pos, col := range p.Squares() {
		if area.Contains(pos) {
			c.squares[pos] = col
		}
	}
	for pos, col := range p.Stars() {
		if area.Contains(pos) {
			c.stars[pos] = col
		}
	}
	for pos, col := range p.Cancels() {
		if area.Contains(pos) {
			c.cancels[pos] = col
		}
	}
	for pos, n := range p.Triangles() {
		if area.Contains(pos) {
			c.triangles[pos] = n
		}
	}
	for pos, shape := range p.Polys() {
		if area.Contains(pos) {
			c.polys[pos] = shape
		}
	}
	for pos, shape := range p.Ylops() {
		if area.Contains(pos) {
			c.ylops[pos] = shape
		}
	}
	for v := range p.VertexStones() {
		if _, ok := area.Corners[v]; ok {
			c.vertexStones[v] = struct{}{}
		}
	}
	for e := range p.EdgeStones() {
		if _, ok := area.Edges[e]; ok {
			c.edgeStones[e] = struct{}{}
		}
	}

	return c
}

// clone returns a deep copy of c's cell-constraint maps, used before
// speculatively removing a (canceller, other) pair during resolution. Stone
// and triangle maps are not copied: cheapReduction empties them before
// resolution ever runs.
func (c *constraints) clone() *constraints {
	cp := &constraints{
		squares: make(map[geom.Position]puzzle.Color, len(c.squares)),
		stars:   make(map[geom.Position]puzzle.Color, len(c.stars)),
		cancels: make(map[geom.Position]puzzle.Color, len(c.cancels)),
		polys:   make(map[geom.Position]poly.Polyomino, len(c.polys)),
		ylops:   make(map[geom.Position]poly.Polyomino, len(c.ylops)),
	}
	for k, v := range c.squares {
		cp.squares[k] = v
	}
	for k, v := range c.stars {
		cp.stars[k] = v
	}
	for k, v := range c.cancels {
		cp.cancels[k] = v
	}
	for k, v := range c.polys {
		cp.polys[k] = v
	}
	for k, v := range c.ylops {
		cp.ylops[k] = v
	}
	return cp
}

// removeAt deletes pos from whichever of squares/stars/polys/ylops/cancels
// holds it. A position carries exactly one cell constraint, and removeAt is
// only ever called with a position drawn from otherPositions, so exactly
// one of these deletes must hit.
func (c *constraints) removeAt(pos geom.Position) {
	hits := 0
	if _, ok := c.squares[pos]; ok {
		delete(c.squares, pos)
		hits++
	}
	if _, ok := c.stars[pos]; ok {
		delete(c.stars, pos)
		hits++
	}
	if _, ok := c.polys[pos]; ok {
		delete(c.polys, pos)
		hits++
	}
	if _, ok := c.ylops[pos]; ok {
		delete(c.ylops, pos)
		hits++
	}
	if _, ok := c.cancels[pos]; ok {
		delete(c.cancels, pos)
		hits++
	}
	invariant(hits == 1, "removeAt: position must belong to exactly one constraint map")
}

// otherPositions lists every square/star/poly/ylop/canceller position in c
// except exclude, the candidates canceller resolution may pair against.
func (c *constraints) otherPositions(exclude geom.Position) []geom.Position {
	var out []geom.Position
	add := func(pos geom.Position) {
		if pos != exclude {
			out = append(out, pos)
		}
	}
	for pos := range c.squares {
		add(pos)
	}
	for pos := range c.stars {
		add(pos)
	}
	for pos := range c.polys {
		add(pos)
	}
	for pos := range c.ylops {
		add(pos)
	}
	for pos := range c.cancels {
		add(pos)
	}
	return out
}
