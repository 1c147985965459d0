package region

import (
	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/puzzle"
)

// Area is one maximal connected component of in-board cells that a path
// does not cross, plus the edges and corners bounding it.
type Area struct {
	Cells   map[geom.Position]struct{}
	Edges   map[geom.Edge]struct{}
	Corners map[geom.Position]struct{}
}

// NewArea returns an empty Area with its maps allocated.
func NewArea() Area {
	return Area{
		Cells:   make(map[geom.Position]struct{}),
		Edges:   make(map[geom.Edge]struct{}),
		Corners: make(map[geom.Position]struct{}),
	}
}

// Contains reports whether cell belongs to a.
func (a Area) Contains(cell geom.Position) bool {
	_, ok := a.Cells[cell]
	return ok
}

// quadrantCells returns the four cells that meet at vertex v.
func quadrantCells(v geom.Position) [4]geom.Position {
	return [4]geom.Position{
		{X: v.X - 1, Y: v.Y - 1},
		{X: v.X, Y: v.Y - 1},
		{X: v.X - 1, Y: v.Y},
		{X: v.X, Y: v.Y},
	}
}

// ExtractAll partitions every in-board cell of p into Areas, given the
// canonical edge set used by the completed path. Two orthogonally adjacent
// in-board cells belong to the same Area unless the edge between them is in
// pathEdges; pathVertices marks the vertices the path visits, excluded from
// every Area's corners.
//
// Flood fill is idempotent over a region: seeding from any cell yields the
// same Area, so ExtractAll and ExtractFrom agree on every component.
func ExtractAll(p *puzzle.Puzzle, pathEdges map[geom.Edge]struct{}, pathVertices map[geom.Position]struct{}) []Area {
	visited := make(map[geom.Position]struct{})
	var areas []Area

	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			cell := geom.Pos(x, y)
			if !p.InBoard(cell) {
				continue
			}
			if _, ok := visited[cell]; ok {
				continue
			}
			area := floodFrom(p, pathEdges, cell)
			for c := range area.Cells {
				visited[c] = struct{}{}
			}
			fillBoundary(p, pathEdges, pathVertices, &area)
			areas = append(areas, area)
		}
	}

	return areas
}

// ExtractFrom returns the single Area containing seed. seed must be an
// in-board cell.
func ExtractFrom(p *puzzle.Puzzle, pathEdges map[geom.Edge]struct{}, pathVertices map[geom.Position]struct{}, seed geom.Position) Area {
	area := floodFrom(p, pathEdges, seed)
	fillBoundary(p, pathEdges, pathVertices, &area)
	return area
}

// neighbourAcross returns the cell on the far side of edge e from cell.
func neighbourAcross(cell geom.Position, e geom.Edge) geom.Position {
	left, right := e.NeighbouringCells()
	if left == cell {
		return right
	}
	return left
}

// floodFrom runs the BFS cell-collection pass of Area extraction: it fills
// Cells only, leaving Edges/Corners for fillBoundary.
func floodFrom(p *puzzle.Puzzle, pathEdges map[geom.Edge]struct{}, seed geom.Position) Area {
	area := NewArea()
	queue := []geom.Position{seed}
	area.Cells[seed] = struct{}{}

	for qi := 0; qi < len(queue); qi++ {
		cell := queue[qi]
		for _, e := range cell.CellEdges() {
			if _, onPath := pathEdges[e]; onPath {
				continue
			}
			other := neighbourAcross(cell, e)
			if !p.InBoard(other) {
				continue
			}
			if _, ok := area.Cells[other]; ok {
				continue
			}
			area.Cells[other] = struct{}{}
			queue = append(queue, other)
		}
	}

	return area
}

// fillBoundary populates Edges and Corners of a fully-flooded Area.
func fillBoundary(p *puzzle.Puzzle, pathEdges map[geom.Edge]struct{}, pathVertices map[geom.Position]struct{}, area *Area) {
	seenCorners := make(map[geom.Position]struct{})

	for cell := range area.Cells {
		for _, e := range cell.CellEdges() {
			if _, onPath := pathEdges[e]; onPath {
				continue
			}
			other := neighbourAcross(cell, e)
			if area.Contains(other) || !p.InBoard(other) {
				area.Edges[e] = struct{}{}
			}
		}

		for dx := 0; dx <= 1; dx++ {
			for dy := 0; dy <= 1; dy++ {
				v := geom.Pos(cell.X+dx, cell.Y+dy)
				if _, ok := seenCorners[v]; ok {
					continue
				}
				seenCorners[v] = struct{}{}
				if isCorner(p, area, pathVertices, v) {
					area.Corners[v] = struct{}{}
				}
			}
		}
	}
}

func isCorner(p *puzzle.Puzzle, area *Area, pathVertices map[geom.Position]struct{}, v geom.Position) bool {
	if _, onPath := pathVertices[v]; onPath {
		return false
	}
	for _, c := range quadrantCells(v) {
		if !p.InBoard(c) {
			continue
		}
		if !area.Contains(c) {
			return false
		}
	}
	return true
}
