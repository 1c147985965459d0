package region

import (
	"testing"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPuzzle(t *testing.T, w, h int, opts ...puzzle.Option) *puzzle.Puzzle {
	t.Helper()
	base := append([]puzzle.Option{
		puzzle.WithStart(geom.Pos(0, 0)),
		puzzle.WithEnd(geom.Pos(w, h)),
	}, opts...)
	p, err := puzzle.New(w, h, base...)
	require.NoError(t, err)
	return p
}

func TestExtractAllNoPathIsOneArea(t *testing.T) {
	p := mustPuzzle(t, 2, 2)
	areas := ExtractAll(p, nil, nil)
	require.Len(t, areas, 1)
	assert.Len(t, areas[0].Cells, 4)
}

func TestExtractAllPathSplitsBoard(t *testing.T) {
	p := mustPuzzle(t, 2, 1)
	// vertical edge between (1,0) and (1,1) separates the two cells.
	cut := geom.NewEdge(geom.Pos(1, 0), geom.Up)
	pathEdges := map[geom.Edge]struct{}{cut: {}}
	pathVertices := map[geom.Position]struct{}{geom.Pos(1, 0): {}, geom.Pos(1, 1): {}}

	areas := ExtractAll(p, pathEdges, pathVertices)
	require.Len(t, areas, 2)
	for _, a := range areas {
		assert.Len(t, a.Cells, 1)
	}
}

func TestExtractFromAgreesWithExtractAll(t *testing.T) {
	p := mustPuzzle(t, 3, 3)
	all := ExtractAll(p, nil, nil)
	require.Len(t, all, 1)

	from := ExtractFrom(p, nil, nil, geom.Pos(2, 2))
	assert.Equal(t, all[0].Cells, from.Cells)
}

func TestAreaEdgesIncludeOuterBoundary(t *testing.T) {
	p := mustPuzzle(t, 1, 1)
	areas := ExtractAll(p, nil, nil)
	require.Len(t, areas, 1)
	// a single cell has exactly 4 bounding edges, all on the outer boundary.
	assert.Len(t, areas[0].Edges, 4)
}

func TestAreaCornersExcludePathVertices(t *testing.T) {
	p := mustPuzzle(t, 1, 1)
	pathVertices := map[geom.Position]struct{}{geom.Pos(0, 0): {}}
	area := ExtractFrom(p, nil, pathVertices, geom.Pos(0, 0))

	assert.NotContains(t, area.Corners, geom.Pos(0, 0))
	assert.Contains(t, area.Corners, geom.Pos(1, 1))
}

func TestAreaWithHoleExcludesIt(t *testing.T) {
	p := mustPuzzle(t, 2, 2, puzzle.WithOutside(geom.Pos(1, 1)))
	areas := ExtractAll(p, nil, nil)
	require.Len(t, areas, 1)
	assert.Len(t, areas[0].Cells, 3)
	assert.False(t, areas[0].Contains(geom.Pos(1, 1)))
}
