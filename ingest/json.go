package ingest

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
	"github.com/katalvlaran/witnesspath/puzzle"
)

// rawCell is the union of every field that can appear at any interleaved
// grid position — vertex, edge, or cell. Unused fields are left at their
// zero value; which ones matter is determined entirely by the position's
// parity.
type rawCell struct {
	// Vertex fields.
	Start bool    `json:"start"`
	End   *string `json:"end"`
	Dot   *int    `json:"dot"`

	// Edge fields.
	Gap *int `json:"gap"`

	// Cell fields.
	Type      string  `json:"type"`
	Color     string  `json:"color"`
	Count     int     `json:"count"`
	Polyshape *uint32 `json:"polyshape"`
}

// rawPuzzle is the top-level JSON document: an interleaved grid of
// (2W+1) x (2H+1) cells, row-major, top row first.
type rawPuzzle struct {
	Grid [][]*rawCell `json:"grid"`
}

// LoadPuzzle reads and decodes a puzzle from the JSON file at path.
func LoadPuzzle(path string) (*puzzle.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errf(err, "reading puzzle file %q", path)
	}
	return ParsePuzzle(data)
}

// ParsePuzzle decodes a puzzle from the interleaved-grid JSON schema.
func ParsePuzzle(data []byte) (*puzzle.Puzzle, error) {
	var raw rawPuzzle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errf(err, "decoding puzzle JSON")
	}
	if len(raw.Grid) == 0 {
		return nil, errf(nil, "puzzle grid is empty")
	}
	rows := len(raw.Grid)
	cols := len(raw.Grid[0])
	for _, row := range raw.Grid {
		if len(row) != cols {
			return nil, errf(nil, "puzzle grid rows have inconsistent lengths")
		}
	}
	if rows%2 == 0 || cols%2 == 0 {
		return nil, errf(nil, "puzzle grid dimensions must be odd (2W+1 by 2H+1)")
	}

	width := (cols - 1) / 2
	height := (rows - 1) / 2

	colors := newColorTable()
	var opts []puzzle.Option

	for r, row := range raw.Grid {
		for c, cell := range row {
			switch {
			case r%2 == 0 && c%2 == 0: // vertex
				opts = appendVertexOpts(opts, cell, c/2, height-r/2)
			case r%2 == 1 && c%2 == 0: // up-edge
				x, y := c/2, height-(r+1)/2
				opts = appendEdgeOpts(opts, cell, geom.NewEdge(geom.Pos(x, y), geom.Up))
			case r%2 == 0 && c%2 == 1: // right-edge
				x, y := (c-1)/2, height-r/2
				opts = appendEdgeOpts(opts, cell, geom.NewEdge(geom.Pos(x, y), geom.Right))
			default: // cell
				x, y := (c-1)/2, height-(r+1)/2
				var err error
				opts, err = appendCellOpts(opts, cell, geom.Pos(x, y), colors)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	p, err := puzzle.New(width, height, opts...)
	if err != nil {
		return nil, errf(err, "assembling puzzle")
	}
	return p, nil
}

func appendVertexOpts(opts []puzzle.Option, cell *rawCell, x, y int) []puzzle.Option {
	if cell == nil {
		return opts
	}
	v := geom.Pos(x, y)
	if cell.Start {
		opts = append(opts, puzzle.WithStart(v))
	}
	if cell.End != nil {
		opts = append(opts, puzzle.WithEnd(v))
	}
	if cell.Dot != nil {
		opts = append(opts, puzzle.WithVertexStone(v))
	}
	return opts
}

func appendEdgeOpts(opts []puzzle.Option, cell *rawCell, e geom.Edge) []puzzle.Option {
	if cell == nil {
		return opts
	}
	if cell.Dot != nil {
		opts = append(opts, puzzle.WithEdgeStone(e))
	}
	if cell.Gap != nil {
		opts = append(opts, puzzle.WithBlockedEdge(e))
	}
	return opts
}

func appendCellOpts(opts []puzzle.Option, cell *rawCell, pos geom.Position, colors *colorTable) ([]puzzle.Option, error) {
	if cell == nil {
		return append(opts, puzzle.WithOutside(pos)), nil
	}
	switch cell.Type {
	case "":
		return opts, nil
	case "triangle":
		if cell.Count < 1 || cell.Count > 3 {
			return nil, errf(nil, "triangle at %s has invalid count %d, must be 1-3", pos, cell.Count)
		}
		return append(opts, puzzle.WithTriangle(pos, cell.Count)), nil
	case "square":
		return append(opts, puzzle.WithSquare(pos, colors.intern(cell.Color))), nil
	case "star":
		return append(opts, puzzle.WithStar(pos, colors.intern(cell.Color))), nil
	case "nega":
		return append(opts, puzzle.WithCancel(pos, colors.intern(cell.Color))), nil
	case "poly":
		shape, err := decodePolyomino(cell.Polyshape, 1)
		if err != nil {
			return nil, err
		}
		return append(opts, puzzle.WithPoly(pos, shape)), nil
	case "ylop":
		shape, err := decodePolyomino(cell.Polyshape, -1)
		if err != nil {
			return nil, err
		}
		return append(opts, puzzle.WithYlop(pos, shape)), nil
	default:
		return nil, errf(nil, "unknown cell type %q", cell.Type)
	}
}

func decodePolyomino(bits *uint32, sign int) (poly.Polyomino, error) {
	if bits == nil {
		return poly.Polyomino{}, errf(nil, "poly/ylop cell missing polyshape")
	}
	rotatable, minos := poly.DecodeShape(*bits)
	shape, err := poly.New(rotatable, sign, minos...)
	if err != nil {
		return poly.Polyomino{}, errf(err, "decoding polyshape")
	}
	return shape, nil
}

// colorTable interns colour strings to byte ids in first-seen order. A
// single table is shared across squares, stars, and cancellers, so the
// same colour name compares equal everywhere in the puzzle it's used.
type colorTable struct {
	ids  map[string]puzzle.Color
	next puzzle.Color
}

func newColorTable() *colorTable {
	return &colorTable{ids: make(map[string]puzzle.Color)}
}

func (t *colorTable) intern(name string) puzzle.Color {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := t.next
	t.ids[name] = id
	t.next++
	return id
}
