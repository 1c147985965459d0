package geom

import (
	"fmt"
	"strings"
)

// Direction is one of the four unit moves on the lattice.
type Direction int

const (
	// Up increments Y.
	Up Direction = iota
	// Down decrements Y.
	Down
	// Right increments X.
	Right
	// Left decrements X.
	Left
)

// String renders a Direction as the single letter used by path output.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Directions lists all four moves in a fixed iteration order, used by every
// caller that needs to try all neighbours of a position.
var Directions = [4]Direction{Up, Down, Right, Left}

// delta returns the unit (dx, dy) step for d.
func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Position is an integer lattice coordinate. It is signed so that moves near
// the boundary (x or y at 0) can be computed without special-casing
// underflow; callers that need board membership use Puzzle.InBoard /
// Puzzle.ContainsVertex rather than relying on unsigned wraparound.
//
// The same type serves as a vertex (range 0..=W, 0..=H) and as a cell (range
// 0..W, 0..H); which one is meant is determined by the operation being
// performed on it.
type Position struct {
	X, Y int
}

// Pos is a convenience constructor.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// Move returns the position one unit step of d away from p.
func (p Position) Move(d Direction) Position {
	dx, dy := d.delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String renders a Position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DirectionTo returns the direction from p to other, and true, if they are
// lattice-adjacent; otherwise it returns the zero Direction and false.
func (p Position) DirectionTo(other Position) (Direction, bool) {
	dx, dy := other.X-p.X, other.Y-p.Y
	switch {
	case dx == 0 && dy == 1:
		return Up, true
	case dx == 0 && dy == -1:
		return Down, true
	case dx == 1 && dy == 0:
		return Right, true
	case dx == -1 && dy == 0:
		return Left, true
	default:
		return 0, false
	}
}

// CellEdges returns the four canonical edges bounding the cell at p, in
// fixed order: top, bottom, right, left of the cell.
func (p Position) CellEdges() [4]Edge {
	return [4]Edge{
		Edge{Pos: Position{X: p.X, Y: p.Y + 1}, Dir: Right}.Canon(), // top
		Edge{Pos: p, Dir: Right}.Canon(),                            // bottom
		Edge{Pos: Position{X: p.X + 1, Y: p.Y}, Dir: Up}.Canon(),    // right
		Edge{Pos: p, Dir: Up}.Canon(),                               // left
	}
}

// Edge is a unit segment between Pos and Pos.Move(Dir). Two Edge values can
// denote the same undirected segment; use Canon (or construct edges only in
// canonical form) before comparing, storing in a set, or using as a map key.
type Edge struct {
	Pos Position
	Dir Direction
}

// NewEdge builds an Edge already in canonical form when dir is Up or Right;
// otherwise it normalises immediately.
func NewEdge(p Position, dir Direction) Edge {
	return Edge{Pos: p, Dir: dir}.Canon()
}

// Canon returns the canonical (Up/Right) spelling of e. Canon is idempotent:
// Canon(Canon(e)) == Canon(e).
func (e Edge) Canon() Edge {
	switch e.Dir {
	case Down:
		return Edge{Pos: Position{X: e.Pos.X, Y: e.Pos.Y - 1}, Dir: Up}
	case Left:
		return Edge{Pos: Position{X: e.Pos.X - 1, Y: e.Pos.Y}, Dir: Right}
	default:
		return e
	}
}

// Other returns the vertex at the far end of the edge from e.Pos.
func (e Edge) Other() Position {
	return e.Pos.Move(e.Dir)
}

// NeighbouringCells returns the two cells adjacent to a canonical edge: the
// cell on the left of travel and the cell on the right of travel, where
// "travel" means walking from e.Pos in direction e.Dir. Only meaningful for
// canonical (Up/Right) edges; callers normally call Canon first.
func (e Edge) NeighbouringCells() (left, right Position) {
	c := e.Canon()
	switch c.Dir {
	case Up:
		// The edge runs vertically; the cell to its right (east) and the
		// cell to its left (west) share this edge as their right/left wall.
		return Position{X: c.Pos.X - 1, Y: c.Pos.Y}, c.Pos
	case Right:
		// The edge runs horizontally; the cell above shares it as its
		// bottom wall, the cell below as its top wall.
		return c.Pos, Position{X: c.Pos.X, Y: c.Pos.Y - 1}
	default:
		return c.Pos, c.Pos
	}
}

// String renders e in canonical form as "(x,y)+D".
func (e Edge) String() string {
	c := e.Canon()
	return fmt.Sprintf("%s+%s", c.Pos, c.Dir)
}

// Path is an ordered, non-repeating sequence of vertices where consecutive
// vertices differ by exactly one unit move.
type Path []Position

// Edges returns the canonical edge sequence induced by p. Returns an error
// if any consecutive pair is not lattice-adjacent.
func (p Path) Edges() ([]Edge, error) {
	if len(p) < 2 {
		return nil, nil
	}
	out := make([]Edge, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		d, ok := p[i].DirectionTo(p[i+1])
		if !ok {
			return nil, fmt.Errorf("geom: non-unit move from %s to %s", p[i], p[i+1])
		}
		out = append(out, NewEdge(p[i], d))
	}
	return out, nil
}

// Format renders p as its start vertex followed by one direction letter per
// step, e.g. "(0,0) UR".
func (p Path) Format() string {
	if len(p) == 0 {
		return ""
	}
	s := p[0].String()
	if len(p) == 1 {
		return s
	}
	letters := make([]byte, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		d, ok := p[i].DirectionTo(p[i+1])
		if !ok {
			continue
		}
		letters = append(letters, d.String()[0])
	}
	return s + " " + string(letters)
}

// ParsePath parses the text format Format produces: a start vertex
// "(x,y)", optionally followed by a space and a run of U/D/R/L letters.
// Returns an error if the vertex can't be parsed or a letter is not a
// valid direction.
func ParsePath(s string) (Path, error) {
	var x, y int
	n, err := fmt.Sscanf(s, "(%d,%d)", &x, &y)
	if err != nil || n != 2 {
		return nil, fmt.Errorf("geom: malformed path start vertex in %q", s)
	}

	path := Path{Position{X: x, Y: y}}

	sp := strings.IndexByte(s, ' ')
	if sp < 0 {
		return path, nil
	}
	for _, r := range s[sp+1:] {
		var d Direction
		switch r {
		case 'U':
			d = Up
		case 'D':
			d = Down
		case 'R':
			d = Right
		case 'L':
			d = Left
		default:
			return nil, fmt.Errorf("geom: unknown direction letter %q in %q", r, s)
		}
		path = append(path, path[len(path)-1].Move(d))
	}
	return path, nil
}
