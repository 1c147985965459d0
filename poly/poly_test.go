package poly

import (
	"sort"
	"testing"

	"github.com/katalvlaran/witnesspath/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sortPositions(ps []geom.Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
}

func TestRotationIsOrderFour(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "n")
		minos := make([]geom.Position, n)
		for i := range minos {
			minos[i] = geom.Position{
				X: rapid.IntRange(-3, 3).Draw(t, "x"),
				Y: rapid.IntRange(-3, 3).Draw(t, "y"),
			}
		}
		shape, err := New(true, 1, minos...)
		require.NoError(t, err)

		cur := shape
		for i := 0; i < 4; i++ {
			rotated := make([]geom.Position, len(cur.Minos))
			pivot := cur.Minos[0]
			for j, m := range cur.Minos {
				rotated[j] = rotateOnce(m, pivot)
			}
			cur = Polyomino{Rotatable: true, Minos: rotated, Sign: 1}
		}

		a := append([]geom.Position(nil), shape.Minos...)
		b := append([]geom.Position(nil), cur.Minos...)
		sortPositions(a)
		sortPositions(b)
		assert.Equal(t, a, b, "four quarter turns must return the original shape")
	})
}

func TestRotationsNonRotatableReturnsOne(t *testing.T) {
	shape, err := New(false, 1, geom.Pos(0, 0), geom.Pos(1, 0))
	require.NoError(t, err)
	assert.Len(t, shape.Rotations(), 1)
}

func TestRotationsRotatableReturnsFour(t *testing.T) {
	shape, err := New(true, 1, geom.Pos(0, 0), geom.Pos(1, 0))
	require.NoError(t, err)
	assert.Len(t, shape.Rotations(), 4)
}

func TestOffsetsTranslatesPivotToTarget(t *testing.T) {
	shape, err := New(false, 1, geom.Pos(2, 2), geom.Pos(3, 2), geom.Pos(2, 3))
	require.NoError(t, err)

	offs := shape.Offsets(geom.Pos(0, 0))
	want := []geom.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	assert.Equal(t, want, offs)
}

func TestDecodeShapeRotatableBit(t *testing.T) {
	// bit 20 set, plus a single mino at (0,3): bit index = 0*4+3-3 = 0.
	rotatable, minos := DecodeShape(1<<20 | 1<<0)
	assert.True(t, rotatable)
	require.Len(t, minos, 1)
	assert.Equal(t, geom.Pos(0, 3), minos[0])
}

func TestDecodeShapePivotIsFirstInIterationOrder(t *testing.T) {
	// Mino at (0,0) -> bit 0*4+3-0=3, and at (1,0) -> bit 1*4+3-0=7.
	_, minos := DecodeShape(1<<3 | 1<<7)
	require.Len(t, minos, 2)
	assert.Equal(t, geom.Pos(0, 0), minos[0])
	assert.Equal(t, geom.Pos(1, 0), minos[1])
}

func TestNewRejectsEmptyShape(t *testing.T) {
	_, err := New(false, 1)
	require.ErrorIs(t, err, ErrEmptyShape)
}
