package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/witnesspath/geom"
)

func TestParsePuzzleMinimalOneByOne(t *testing.T) {
	doc := `{"grid":[
		[null,null,{"end":"x"}],
		[null,null,null],
		[{"start":true},null,null]
	]}`

	p, err := ParsePuzzle([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 1, p.Width())
	assert.Equal(t, 1, p.Height())
	assert.True(t, p.IsStart(geom.Pos(0, 0)))
	assert.True(t, p.IsEnd(geom.Pos(1, 1)))
}

func TestParsePuzzleRejectsEvenDimensions(t *testing.T) {
	doc := `{"grid":[[null,null],[null,null]]}`
	_, err := ParsePuzzle([]byte(doc))
	assert.Error(t, err)
}

func TestParsePuzzleRejectsRaggedRows(t *testing.T) {
	doc := `{"grid":[[null,null,null],[null,null]]}`
	_, err := ParsePuzzle([]byte(doc))
	assert.Error(t, err)
}

func TestParsePuzzleEdgeStoneAndGapConstraints(t *testing.T) {
	doc := `{"grid":[
		[{"start":true},{"dot":1},{"end":"x"}],
		[{"gap":2},null,null],
		[null,null,null]
	]}`

	p, err := ParsePuzzle([]byte(doc))
	require.NoError(t, err)

	assert.True(t, p.HasEdgeStone(geom.NewEdge(geom.Pos(0, 1), geom.Right)))
	assert.True(t, p.IsBlocked(geom.NewEdge(geom.Pos(0, 0), geom.Up)))
}

func TestParsePuzzleSquareDispatch(t *testing.T) {
	doc := `{"grid":[
		[{"start":true},null,{"end":"x"}],
		[null,{"type":"square","color":"red"},null],
		[null,null,null]
	]}`

	p, err := ParsePuzzle([]byte(doc))
	require.NoError(t, err)

	col, ok := p.Square(geom.Pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, byte(0), col)
}

func TestParsePuzzleSharedColourTable(t *testing.T) {
	doc := `{"grid":[
		[{"start":true},null,null,null,{"end":"x"}],
		[null,{"type":"square","color":"purple"},null,{"type":"star","color":"purple"},null],
		[null,null,null,null,null]
	]}`

	p, err := ParsePuzzle([]byte(doc))
	require.NoError(t, err)

	squareColor, ok := p.Square(geom.Pos(0, 0))
	require.True(t, ok)
	starColor, ok := p.Star(geom.Pos(1, 0))
	require.True(t, ok)
	assert.Equal(t, squareColor, starColor, "same colour name must intern to the same id across constraint kinds")
}

func TestParsePuzzleOutsideCellIsHole(t *testing.T) {
	// 2x1 board: cell (0,0) carries a square, cell (1,0) is a hole.
	doc := `{"grid":[
		[null,null,null,null,{"end":"x"}],
		[null,{"type":"square","color":"red"},null,null,null],
		[{"start":true},null,null,null,null]
	]}`

	p, err := ParsePuzzle([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Width())
	assert.False(t, p.InBoard(geom.Pos(1, 0)))
	assert.True(t, p.InBoard(geom.Pos(0, 0)))

	_, ok := p.Square(geom.Pos(0, 0))
	assert.True(t, ok)
}

func TestParsePuzzleTriangleAndPoly(t *testing.T) {
	// bit 3 = mino at (0,0): 0*4+3-0=3. No rotatable bit.
	doc := `{"grid":[
		[{"start":true},null,{"end":"x"}],
		[null,{"type":"poly","polyshape":8},null],
		[null,null,null]
	]}`
	p, err := ParsePuzzle([]byte(doc))
	require.NoError(t, err)

	shape, ok := p.Poly(geom.Pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, 1, shape.Size())
	assert.False(t, shape.Rotatable)

	triDoc := `{"grid":[
		[{"start":true},null,{"end":"x"}],
		[null,{"type":"triangle","count":2},null],
		[null,null,null]
	]}`
	p2, err := ParsePuzzle([]byte(triDoc))
	require.NoError(t, err)
	count, ok := p2.Triangle(geom.Pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, 2, count)
}

func TestParsePuzzleUnknownCellTypeErrors(t *testing.T) {
	doc := `{"grid":[
		[{"start":true},null,{"end":"x"}],
		[null,{"type":"bogus"},null],
		[null,null,null]
	]}`
	_, err := ParsePuzzle([]byte(doc))
	assert.Error(t, err)
}

func TestParsePuzzlePolyMissingPolyshapeErrors(t *testing.T) {
	doc := `{"grid":[
		[{"start":true},null,{"end":"x"}],
		[null,{"type":"poly"},null],
		[null,null,null]
	]}`
	_, err := ParsePuzzle([]byte(doc))
	assert.Error(t, err)
}

func TestParsePuzzleTriangleOutOfRangeErrorsInsteadOfPanicking(t *testing.T) {
	doc := `{"grid":[
		[{"start":true},null,{"end":"x"}],
		[null,{"type":"triangle","count":4},null],
		[null,null,null]
	]}`
	_, err := ParsePuzzle([]byte(doc))
	assert.Error(t, err)
}
