package validate

import (
	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
	"github.com/katalvlaran/witnesspath/puzzle"
	"github.com/katalvlaran/witnesspath/region"
	"github.com/katalvlaran/witnesspath/tiling"
)

// IsSolution reports whether path is a valid solution of p: it must start
// at a listed start, end at a listed end, take only unit moves, and every
// Area the path carves out of the board must pass isValid.
func IsSolution(p *puzzle.Puzzle, path geom.Path) bool {
	if len(path) < 2 {
		return false
	}
	if !p.IsStart(path[0]) || !p.IsEnd(path[len(path)-1]) {
		return false
	}
	edges, err := path.Edges()
	if err != nil {
		return false
	}

	pathEdges := make(map[geom.Edge]struct{}, len(edges))
	for _, e := range edges {
		pathEdges[e] = struct{}{}
	}
	pathVertices := make(map[geom.Position]struct{}, len(path))
	for _, v := range path {
		pathVertices[v] = struct{}{}
	}

	for _, area := range region.ExtractAll(p, pathEdges, pathVertices) {
		if !isValid(p, pathEdges, area) {
			return false
		}
	}
	return true
}

// isValid runs the cheap pre-reduction pass, then bounded canceller
// resolution if any cancellers survive it, then the final pass.
func isValid(p *puzzle.Puzzle, pathEdges map[geom.Edge]struct{}, area region.Area) bool {
	c := scopeToArea(p, area)
	if !cheapReduction(c, pathEdges) {
		return false
	}
	return resolve(c, area)
}

// cheapReduction walks vertex-stone, edge-stone, and triangle errors in
// area and consumes one canceller per error found. It returns false the
// moment an error has no canceller left to consume it. On success it
// empties vertexStones/edgeStones/triangles: they play no further role.
func cheapReduction(c *constraints, pathEdges map[geom.Edge]struct{}) bool {
	errs := len(c.vertexStones) + len(c.edgeStones)
	for cell, want := range c.triangles {
		if countAdjacentPathEdges(cell, pathEdges) != want {
			errs++
		}
	}

	for i := 0; i < errs; i++ {
		if len(c.cancels) == 0 {
			return false
		}
		for k := range c.cancels {
			delete(c.cancels, k)
			break
		}
	}

	c.vertexStones = nil
	c.edgeStones = nil
	c.triangles = nil
	return true
}

func countAdjacentPathEdges(cell geom.Position, pathEdges map[geom.Edge]struct{}) int {
	n := 0
	for _, e := range cell.CellEdges() {
		if _, ok := pathEdges[e]; ok {
			n++
		}
	}
	return n
}

// resolve dispatches to the final pass once no cancellers remain, or to
// bounded recursive elimination otherwise.
func resolve(c *constraints, area region.Area) bool {
	if len(c.cancels) == 0 {
		return finalPass(c, area)
	}
	return resolveCancellers(c, area)
}

// resolveCancellers implements spec's bounded recursive elimination: if c
// already reads valid with every remaining canceller left untouched, those
// cancellers have nothing left to cancel and are themselves the error
// (anti-cycling rule) — fail without trying any pairing. Otherwise, for an
// arbitrary remaining canceller, try every other constrained position in
// the area; accept the first pairing whose removal yields a valid area.
func resolveCancellers(c *constraints, area region.Area) bool {
	invariant(len(c.cancels) > 0, "resolveCancellers: called with no cancellers left")

	if finalPass(c, area) {
		return false
	}

	var chosen geom.Position
	for pos := range c.cancels {
		chosen = pos
		break
	}

	for _, q := range c.otherPositions(chosen) {
		modified := c.clone()
		delete(modified.cancels, chosen)
		modified.removeAt(q)
		if resolve(modified, area) {
			return true
		}
	}

	return false
}

// finalPass evaluates squares, stars, and polyominoes/anti-polyominoes
// against c, assuming every stone/triangle error has already been
// accounted for and no canceller is expected to do further work here.
func finalPass(c *constraints, area region.Area) bool {
	if !squaresUniform(c.squares) {
		return false
	}
	if !starsBalanced(c) {
		return false
	}
	if len(c.polys) > 0 || len(c.ylops) > 0 {
		pieces := make([]poly.Polyomino, 0, len(c.polys)+len(c.ylops))
		for _, shape := range c.polys {
			pieces = append(pieces, shape)
		}
		for _, shape := range c.ylops {
			pieces = append(pieces, shape)
		}
		if !tiling.CanTile(area.Cells, pieces) {
			return false
		}
	}
	return true
}

func squaresUniform(squares map[geom.Position]puzzle.Color) bool {
	seen := false
	var col puzzle.Color
	for _, c := range squares {
		if !seen {
			col, seen = c, true
			continue
		}
		if c != col {
			return false
		}
	}
	return true
}

// starsBalanced implements: for every colour with at least one star in the
// area, stars + squares-of-that-colour + cancellers-of-that-colour must sum
// to exactly 2. A square or canceller only contributes when the running
// count is exactly 1 going in — a second already-balanced contributor of
// the same colour is an overcount, not a no-op.
func starsBalanced(c *constraints) bool {
	counts := make(map[puzzle.Color]int)
	for _, col := range c.stars {
		counts[col]++
	}
	if len(counts) == 0 {
		return true
	}

	bump := func(col puzzle.Color) bool {
		n, ok := counts[col]
		if !ok {
			return true
		}
		if n != 1 {
			return false
		}
		counts[col] = 2
		return true
	}

	for _, col := range c.squares {
		if !bump(col) {
			return false
		}
	}
	for _, col := range c.cancels {
		if !bump(col) {
			return false
		}
	}

	for _, n := range counts {
		if n != 2 {
			return false
		}
	}
	return true
}
