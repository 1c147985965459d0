package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEdgeCanonMatchesSpelling(t *testing.T) {
	p := Pos(3, 4)

	down := Edge{Pos: p, Dir: Down}
	up := Edge{Pos: Position{X: p.X, Y: p.Y - 1}, Dir: Up}
	require.Equal(t, up, down.Canon())

	left := Edge{Pos: p, Dir: Left}
	right := Edge{Pos: Position{X: p.X - 1, Y: p.Y}, Dir: Right}
	require.Equal(t, right, left.Canon())

	require.Equal(t, Edge{Pos: p, Dir: Up}, Edge{Pos: p, Dir: Up}.Canon())
	require.Equal(t, Edge{Pos: p, Dir: Right}, Edge{Pos: p, Dir: Right}.Canon())
}

func TestEdgeCanonIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := Position{
			X: rapid.IntRange(-20, 20).Draw(t, "x"),
			Y: rapid.IntRange(-20, 20).Draw(t, "y"),
		}
		d := Direction(rapid.IntRange(0, 3).Draw(t, "d"))
		e := Edge{Pos: p, Dir: d}

		once := e.Canon()
		twice := once.Canon()
		assert.Equal(t, once, twice, "Canon must be idempotent")
	})
}

func TestDirectionToRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := Position{
			X: rapid.IntRange(-20, 20).Draw(t, "x"),
			Y: rapid.IntRange(-20, 20).Draw(t, "y"),
		}
		d := Directions[rapid.IntRange(0, 3).Draw(t, "d")]
		q := p.Move(d)

		got, ok := p.DirectionTo(q)
		assert.True(t, ok)
		assert.Equal(t, d, got)
	})
}

func TestDirectionToNonAdjacent(t *testing.T) {
	_, ok := Pos(0, 0).DirectionTo(Pos(1, 1))
	assert.False(t, ok)
	_, ok = Pos(0, 0).DirectionTo(Pos(0, 0))
	assert.False(t, ok)
}

func TestPathFormat(t *testing.T) {
	p := Path{Pos(0, 0), Pos(0, 1), Pos(1, 1)}
	assert.Equal(t, "(0,0) UR", p.Format())

	single := Path{Pos(2, 2)}
	assert.Equal(t, "(2,2)", single.Format())
}

func TestPathEdgesRejectsNonUnitMove(t *testing.T) {
	p := Path{Pos(0, 0), Pos(2, 0)}
	_, err := p.Edges()
	require.Error(t, err)
}

func TestParsePathRoundTripsFormat(t *testing.T) {
	p := Path{Pos(0, 0), Pos(0, 1), Pos(1, 1)}
	got, err := ParsePath(p.Format())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParsePathSingleVertex(t *testing.T) {
	got, err := ParsePath("(2,2)")
	require.NoError(t, err)
	assert.Equal(t, Path{Pos(2, 2)}, got)
}

func TestParsePathRejectsMalformed(t *testing.T) {
	_, err := ParsePath("not a path")
	assert.Error(t, err)

	_, err = ParsePath("(0,0) UX")
	assert.Error(t, err)
}

func TestCellEdgesAreCanonical(t *testing.T) {
	for _, e := range Pos(1, 1).CellEdges() {
		assert.Equal(t, e, e.Canon())
	}
}

func TestNeighbouringCellsOfSharedEdgeAgree(t *testing.T) {
	// The bottom edge of cell (1,1) must be the top edge of cell (1,0).
	bottom := Pos(1, 1).CellEdges()[1]
	top := Pos(1, 0).CellEdges()[0]
	require.Equal(t, bottom, top)

	left, right := bottom.NeighbouringCells()
	assert.Equal(t, Pos(1, 1), left)
	assert.Equal(t, Pos(1, 0), right)
}
