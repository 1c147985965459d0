package tiling

import (
	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
)

// AllowOverflow would permit polyomino/anti-polyomino placements to extend
// outside the area, cancelling pairwise with matching positive coverage
// elsewhere. It is reserved and unimplemented: CanTile always enforces the
// fixed convention (every placement cell must lie in the area; final cover
// exactly 1 everywhere in the area, implicitly 0 outside it since nothing
// is ever placed there).
const AllowOverflow = false

// CanTile reports whether pieces (polyominoes with Sign +1, anti-polyominoes
// with Sign -1) can be placed over cells such that the signed cover count is
// exactly 1 on every cell of cells and every piece is used exactly once.
//
// A necessary precondition is checked up front: the signed total size of
// pieces must equal len(cells), otherwise no placement can possibly work.
//
// Anti-polyominoes are never placed: fits keeps every cover count within
// [0, 1] and the target cell always reads 0, so a -1 placement is always
// rejected. Any piece with Sign -1 therefore makes CanTile return false.
func CanTile(cells map[geom.Position]struct{}, pieces []poly.Polyomino) bool {
	total := 0
	for _, pc := range pieces {
		total += pc.Sign * pc.Size()
	}
	if total != len(cells) {
		return false
	}

	cover := make(map[geom.Position]int, len(cells))
	used := make([]bool, len(pieces))
	return search(cells, pieces, used, cover)
}

// search picks the next uncovered target cell and tries to place some
// remaining piece on it in every rotation and every mino alignment.
func search(cells map[geom.Position]struct{}, pieces []poly.Polyomino, used []bool, cover map[geom.Position]int) bool {
	target, ok := pickTarget(cells, cover)
	if !ok {
		return allUsed(used)
	}

	for i, piece := range pieces {
		if used[i] {
			continue
		}
		for _, variant := range piece.Rotations() {
			for _, m := range variant.Minos {
				offsets := alignOn(variant, m, target)
				if !fits(cells, cover, offsets, variant.Sign) {
					continue
				}

				apply(cover, offsets, variant.Sign)
				used[i] = true

				if search(cells, pieces, used, cover) {
					return true
				}

				used[i] = false
				apply(cover, offsets, -variant.Sign)
			}
		}
	}

	return false
}

// pickTarget returns an arbitrary area cell whose current cover is not yet
// 1, or false if every cell already reads 1. Iteration order over cells
// (a Go map) is unspecified, but placement order does not affect
// correctness.
func pickTarget(cells map[geom.Position]struct{}, cover map[geom.Position]int) (geom.Position, bool) {
	for c := range cells {
		if cover[c] != 1 {
			return c, true
		}
	}
	return geom.Position{}, false
}

// alignOn returns the offsets of variant's minos translated so that the
// mino m lands on target.
func alignOn(variant poly.Polyomino, m, target geom.Position) []geom.Position {
	out := make([]geom.Position, len(variant.Minos))
	for i, mj := range variant.Minos {
		out[i] = geom.Position{X: target.X + (mj.X - m.X), Y: target.Y + (mj.Y - m.Y)}
	}
	return out
}

// fits reports whether every offset lies in cells and adding sign to its
// current cover keeps it within the range [0, 1]. For polyomino-only piece
// sets this bound loses nothing, since no cell may ever need to exceed 1 on
// the road to a final value of exactly 1; it does exclude any tiling that
// covers a cell twice and cancels it with an anti-polyomino.
func fits(cells map[geom.Position]struct{}, cover map[geom.Position]int, offsets []geom.Position, sign int) bool {
	for _, o := range offsets {
		if _, inArea := cells[o]; !inArea {
			return false
		}
		next := cover[o] + sign
		if next < 0 || next > 1 {
			return false
		}
	}
	return true
}

func apply(cover map[geom.Position]int, offsets []geom.Position, sign int) {
	for _, o := range offsets {
		cover[o] += sign
	}
}

func allUsed(used []bool) bool {
	for _, u := range used {
		if !u {
			return false
		}
	}
	return true
}
