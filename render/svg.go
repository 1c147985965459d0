package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
	"github.com/katalvlaran/witnesspath/puzzle"
)

// SVGOptions configures the rasterisation of a puzzle and its solution.
type SVGOptions struct {
	// CellSize is the pixel size of one board cell.
	CellSize int
	// Margin is the blank border, in pixels, around the board.
	Margin int
	// PathColor is the stroke colour used for the solution line.
	PathColor string
}

// DefaultSVGOptions returns sensible defaults for a small-to-medium puzzle.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{CellSize: 60, Margin: 30, PathColor: "#facc15"}
}

// palette assigns a stable hex colour to each interned colour id, cycling
// once the puzzle uses more colours than the palette holds.
var palette = []string{
	"#3b82f6", // blue
	"#ef4444", // red
	"#8b5cf6", // purple
	"#f1f5f9", // near-white
	"#10b981", // green
	"#f97316", // orange
}

func colorFor(id puzzle.Color) string {
	return palette[int(id)%len(palette)]
}

// WriteSVG rasterises p and, if non-empty, path onto an SVG canvas written
// to w.
func WriteSVG(w io.Writer, p *puzzle.Puzzle, path geom.Path, opts SVGOptions) error {
	if opts.CellSize <= 0 {
		opts.CellSize = 60
	}
	if opts.Margin <= 0 {
		opts.Margin = 30
	}
	if opts.PathColor == "" {
		opts.PathColor = "#facc15"
	}

	width := 2*opts.Margin + p.Width()*opts.CellSize
	height := 2*opts.Margin + p.Height()*opts.CellSize

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#0f172a")

	drawCells(canvas, p, opts)
	drawGrid(canvas, p, opts)
	drawStones(canvas, p, opts)
	if len(path) > 0 {
		drawPath(canvas, p, path, opts)
	}
	canvas.End()
	return nil
}

// SaveSVG rasterises p and path, writing the result to filepath.
func SaveSVG(p *puzzle.Puzzle, path geom.Path, filepath string, opts SVGOptions) error {
	buf := new(bytes.Buffer)
	if err := WriteSVG(buf, p, path, opts); err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0o644)
}

// screen maps a lattice vertex to SVG pixel coordinates, flipping Y so the
// puzzle's origin (0,0) renders at the bottom-left.
func screen(v geom.Position, p *puzzle.Puzzle, opts SVGOptions) (int, int) {
	x := opts.Margin + v.X*opts.CellSize
	y := opts.Margin + (p.Height()-v.Y)*opts.CellSize
	return x, y
}

// drawCells fills every in-board cell's background and, if it carries a
// square/star/canceller/triangle/poly/ylop constraint, a marker for it.
func drawCells(canvas *svg.SVG, p *puzzle.Puzzle, opts SVGOptions) {
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			cell := geom.Pos(x, y)
			if !p.InBoard(cell) {
				continue
			}
			cx, cy := screen(geom.Pos(x, y+1), p, opts)
			canvas.Rect(cx, cy, opts.CellSize, opts.CellSize, "fill:#1e293b;stroke:none")

			midX, midY := cx+opts.CellSize/2, cy+opts.CellSize/2
			switch {
			case drawSquare(canvas, p, cell, midX, midY, opts):
			case drawStar(canvas, p, cell, midX, midY, opts):
			case drawCancel(canvas, p, cell, midX, midY, opts):
			case drawTriangle(canvas, p, cell, midX, midY, opts):
			}
			drawPolyomino(canvas, p, cell, cx, cy, opts)
		}
	}
}

func drawSquare(canvas *svg.SVG, p *puzzle.Puzzle, cell geom.Position, midX, midY int, opts SVGOptions) bool {
	col, ok := p.Square(cell)
	if !ok {
		return false
	}
	r := opts.CellSize / 4
	canvas.Rect(midX-r, midY-r, 2*r, 2*r, fmt.Sprintf("fill:%s", colorFor(col)))
	return true
}

func drawStar(canvas *svg.SVG, p *puzzle.Puzzle, cell geom.Position, midX, midY int, opts SVGOptions) bool {
	col, ok := p.Star(cell)
	if !ok {
		return false
	}
	canvas.Circle(midX, midY, opts.CellSize/5, fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", colorFor(col)))
	canvas.Circle(midX, midY, opts.CellSize/10, fmt.Sprintf("fill:%s", colorFor(col)))
	return true
}

func drawCancel(canvas *svg.SVG, p *puzzle.Puzzle, cell geom.Position, midX, midY int, opts SVGOptions) bool {
	col, ok := p.Cancel(cell)
	if !ok {
		return false
	}
	r := opts.CellSize / 4
	style := fmt.Sprintf("stroke:%s;stroke-width:3", colorFor(col))
	canvas.Line(midX-r, midY-r, midX+r, midY+r, style)
	canvas.Line(midX-r, midY+r, midX+r, midY-r, style)
	return true
}

func drawTriangle(canvas *svg.SVG, p *puzzle.Puzzle, cell geom.Position, midX, midY int, opts SVGOptions) bool {
	count, ok := p.Triangle(cell)
	if !ok {
		return false
	}
	canvas.Text(midX, midY+5, fmt.Sprintf("%d", count), "fill:#fbbf24;text-anchor:middle;font-size:20px")
	return true
}

func drawPolyomino(canvas *svg.SVG, p *puzzle.Puzzle, cell geom.Position, cx, cy int, opts SVGOptions) {
	if s, ok := p.Poly(cell); ok {
		drawShapeOutline(canvas, s, cx, cy, opts, "#94a3b8")
	}
	if s, ok := p.Ylop(cell); ok {
		drawShapeOutline(canvas, s, cx, cy, opts, "#f87171")
	}
}

func drawShapeOutline(canvas *svg.SVG, shape poly.Polyomino, cx, cy int, opts SVGOptions, color string) {
	unit := opts.CellSize / 4
	for _, m := range shape.Offsets(geom.Pos(0, 0)) {
		x := cx + opts.CellSize/2 + m.X*unit - unit/2
		y := cy + opts.CellSize/2 - m.Y*unit - unit/2
		canvas.Rect(x, y, unit, unit, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", color))
	}
}

// drawGrid draws every traversable edge, and blocked edges dashed in red.
func drawGrid(canvas *svg.SVG, p *puzzle.Puzzle, opts SVGOptions) {
	for y := 0; y <= p.Height(); y++ {
		for x := 0; x <= p.Width(); x++ {
			v := geom.Pos(x, y)
			if !p.ContainsVertex(v) {
				continue
			}
			for _, d := range []geom.Direction{geom.Up, geom.Right} {
				v2 := v.Move(d)
				if !p.ContainsVertex(v2) {
					continue
				}
				e := geom.NewEdge(v, d)
				x1, y1 := screen(v, p, opts)
				x2, y2 := screen(v2, p, opts)
				style := "stroke:#64748b;stroke-width:2"
				if p.IsBlocked(e) {
					style = "stroke:#ef4444;stroke-width:3;stroke-dasharray:4,4"
				}
				canvas.Line(x1, y1, x2, y2, style)
			}
		}
	}
}

// drawStones draws vertex stones as filled dots and edge stones as filled
// squares at the edge midpoint.
func drawStones(canvas *svg.SVG, p *puzzle.Puzzle, opts SVGOptions) {
	for v := range p.VertexStones() {
		x, y := screen(v, p, opts)
		canvas.Circle(x, y, 5, "fill:#e2e8f0")
	}
	for e := range p.EdgeStones() {
		x1, y1 := screen(e.Pos, p, opts)
		x2, y2 := screen(e.Other(), p, opts)
		canvas.Rect((x1+x2)/2-4, (y1+y2)/2-4, 8, 8, "fill:#e2e8f0")
	}
}

// drawPath draws the solved path as a thick polyline over the grid.
func drawPath(canvas *svg.SVG, p *puzzle.Puzzle, path geom.Path, opts SVGOptions) {
	xs := make([]int, len(path))
	ys := make([]int, len(path))
	for i, v := range path {
		xs[i], ys[i] = screen(v, p, opts)
	}
	canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:6;stroke-linecap:round;stroke-linejoin:round", opts.PathColor))
}
