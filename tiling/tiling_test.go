package tiling

import (
	"testing"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellSet(ps ...geom.Position) map[geom.Position]struct{} {
	out := make(map[geom.Position]struct{}, len(ps))
	for _, p := range ps {
		out[p] = struct{}{}
	}
	return out
}

func TestCanTileSingleMinoFillsSingleCell(t *testing.T) {
	shape, err := poly.New(false, 1, geom.Pos(0, 0))
	require.NoError(t, err)

	cells := cellSet(geom.Pos(3, 3))
	assert.True(t, CanTile(cells, []poly.Polyomino{shape}))
}

func TestCanTileRejectsSizeMismatch(t *testing.T) {
	shape, err := poly.New(false, 1, geom.Pos(0, 0))
	require.NoError(t, err)

	cells := cellSet(geom.Pos(0, 0), geom.Pos(1, 0))
	assert.False(t, CanTile(cells, []poly.Polyomino{shape}))
}

func TestCanTileTwoDominoesFillTwoByTwo(t *testing.T) {
	domino, err := poly.New(true, 1, geom.Pos(0, 0), geom.Pos(1, 0))
	require.NoError(t, err)

	cells := cellSet(geom.Pos(0, 0), geom.Pos(1, 0), geom.Pos(0, 1), geom.Pos(1, 1))
	assert.True(t, CanTile(cells, []poly.Polyomino{domino, domino}))
}

func TestCanTileLTrominoPlusSingleFillsSquare(t *testing.T) {
	tromino, err := poly.New(true, 1, geom.Pos(0, 0), geom.Pos(1, 0), geom.Pos(0, 1))
	require.NoError(t, err)
	single, err := poly.New(false, 1, geom.Pos(5, 5))
	require.NoError(t, err)

	cells := cellSet(geom.Pos(0, 0), geom.Pos(1, 0), geom.Pos(0, 1), geom.Pos(1, 1))
	assert.True(t, CanTile(cells, []poly.Polyomino{tromino, single}))
}

func TestCanTileRejectsShapeThatDoesNotFit(t *testing.T) {
	// A non-rotatable 1x3 bar cannot cover a 2x2 square no matter where it
	// is anchored: one of its three cells always lands outside the area.
	bar, err := poly.New(false, 1, geom.Pos(0, 0), geom.Pos(1, 0), geom.Pos(2, 0))
	require.NoError(t, err)
	single, err := poly.New(false, 1, geom.Pos(0, 0))
	require.NoError(t, err)

	cells := cellSet(geom.Pos(0, 0), geom.Pos(1, 0), geom.Pos(0, 1), geom.Pos(1, 1))
	assert.False(t, CanTile(cells, []poly.Polyomino{bar, single}))
}

func TestCanTileEmptyAreaNeedsNoPieces(t *testing.T) {
	assert.True(t, CanTile(nil, nil))
}
