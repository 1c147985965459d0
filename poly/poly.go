package poly

import (
	"errors"

	"github.com/katalvlaran/witnesspath/geom"
)

// ErrEmptyShape is returned when a Polyomino is constructed with no minos.
var ErrEmptyShape = errors.New("poly: polyomino must have at least one mino")

// Polyomino is a cell-constraint shape: a rotatable flag plus a list of cell
// offsets ("minos"). The first offset is the pivot that rotation turns
// around. An anti-polyomino ("ylop") shares this exact shape representation;
// Sign distinguishes the two (+1 for a normal polyomino, -1 for a ylop).
type Polyomino struct {
	Rotatable bool
	Minos     []geom.Position
	Sign      int
}

// New builds a Polyomino from an explicit mino list. minos[0] is the pivot.
// Returns ErrEmptyShape if minos is empty.
func New(rotatable bool, sign int, minos ...geom.Position) (Polyomino, error) {
	if len(minos) == 0 {
		return Polyomino{}, ErrEmptyShape
	}
	cp := make([]geom.Position, len(minos))
	copy(cp, minos)
	return Polyomino{Rotatable: rotatable, Minos: cp, Sign: sign}, nil
}

// Size returns the number of minos (cells) the shape covers.
func (p Polyomino) Size() int { return len(p.Minos) }

// Pivot returns the first mino, around which rotation is defined.
func (p Polyomino) Pivot() geom.Position { return p.Minos[0] }

// rotateOnce maps (x,y) around pivot (cx,cy) to (cx-(y-cy), cy+(x-cx)) — a
// single clockwise quarter turn.
func rotateOnce(m, pivot geom.Position) geom.Position {
	return geom.Position{
		X: pivot.X - (m.Y - pivot.Y),
		Y: pivot.Y + (m.X - pivot.X),
	}
}

// Rotations returns every distinct orientation of p: just p itself if it is
// not Rotatable, or all four quarter-turns (in rotation order, starting with
// the identity orientation) if it is. Duplicate shapes across rotations
// (e.g. a 1x1 mino) are not deduplicated — callers that care about
// uniqueness must do so themselves.
func (p Polyomino) Rotations() []Polyomino {
	if !p.Rotatable {
		return []Polyomino{p}
	}

	out := make([]Polyomino, 0, 4)
	cur := p.Minos
	pivot := p.Minos[0]
	for i := 0; i < 4; i++ {
		cp := make([]geom.Position, len(cur))
		copy(cp, cur)
		out = append(out, Polyomino{Rotatable: true, Minos: cp, Sign: p.Sign})

		next := make([]geom.Position, len(cur))
		for j, m := range cur {
			next[j] = rotateOnce(m, pivot)
		}
		cur = next
	}
	return out
}

// Offsets returns the minos of p translated so that the pivot lands on
// target — i.e. the absolute cells a placement of p at target would cover.
func (p Polyomino) Offsets(target geom.Position) []geom.Position {
	pivot := p.Pivot()
	out := make([]geom.Position, len(p.Minos))
	for i, m := range p.Minos {
		out[i] = geom.Position{
			X: target.X + (m.X - pivot.X),
			Y: target.Y + (m.Y - pivot.Y),
		}
	}
	return out
}

// DecodeShape decodes the bit-packed `polyshape` field of the JSON ingest
// format into cell offsets: bit 20 is the rotatable flag, and for x,y in
// 0..4 bit (x*4 + 3 - y) marks a mino at (x,y). The pivot is the first mino
// found iterating x outer, y inner, top (y=3) to bottom (y=0) — matching
// the bit layout's significance order.
func DecodeShape(bits uint32) (rotatable bool, minos []geom.Position) {
	rotatable = bits&(1<<20) != 0
	for x := 0; x < 4; x++ {
		for y := 3; y >= 0; y-- {
			bit := uint(x*4 + 3 - y)
			if bits&(1<<bit) != 0 {
				minos = append(minos, geom.Position{X: x, Y: y})
			}
		}
	}
	return rotatable, minos
}
