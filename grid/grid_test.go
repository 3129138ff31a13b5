package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
)

// TestNewBounded_Errors verifies that zero extents and bad options are rejected.
func TestNewBounded_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		opts []grid.Option
		err  error
	}{
		{"ZeroWidth", 0, 3, nil, grid.ErrEmptyGrid},
		{"NegativeHeight", 3, -1, nil, grid.ErrEmptyGrid},
		{"NilOutside", 2, 2, []grid.Option{grid.WithOutside(nil)}, grid.ErrOptionViolation},
		{"WrongOutsideType", 2, 2, []grid.Option{grid.WithOutside("x")}, grid.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewBounded(tc.w, tc.h, 0, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestGrid_RoundTrip checks that Set followed by Get returns the stored value
// on both grid variants.
func TestGrid_RoundTrip(t *testing.T) {
	b, err := grid.NewBounded(4, 3, '.')
	require.NoError(t, err)
	u := grid.NewUnbounded('#')

	coords := []grid.Coord{grid.XY(0, 0), grid.XY(3, 2), grid.XY(1, 1), grid.XY(2, 0)}
	values := []rune{'a', 'b', 'c', 'd'}
	for i, c := range coords {
		require.NoError(t, b.Set(c, values[i]))
		require.NoError(t, u.Set(c, values[i]))
	}
	for i, c := range coords {
		got, err := b.Get(c)
		require.NoError(t, err)
		assert.Equal(t, values[i], got, "bounded Get(%v)", c)

		got, err = u.Get(c)
		require.NoError(t, err)
		assert.Equal(t, values[i], got, "unbounded Get(%v)", c)
	}

	// far-away write on an unbounded grid
	far := grid.XYZ(-1000, 5000, 7)
	require.NoError(t, u.Set(far, 'z'))
	assert.Equal(t, 'z', u.At(far))
}

// TestGrid_BoundedOutOfRange covers strict and non-strict out-of-range reads
// and writes.
func TestGrid_BoundedOutOfRange(t *testing.T) {
	lenient, err := grid.NewBounded(2, 2, 0, grid.WithOutside(-1))
	require.NoError(t, err)
	v, err := lenient.Get(grid.XY(5, 5))
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	strict, err := grid.NewBounded(2, 2, 0, grid.WithStrict())
	require.NoError(t, err)
	_, err = strict.Get(grid.XY(-1, 0))
	assert.True(t, errors.Is(err, grid.ErrOutOfBounds))
	assert.Equal(t, 0, strict.At(grid.XY(-1, 0)), "At never fails")

	// writes never grow a bounded grid
	require.ErrorIs(t, lenient.Set(grid.XY(2, 0), 9), grid.ErrOutOfBounds)
	assert.Equal(t, 4, lenient.Len())
	assert.False(t, lenient.Has(grid.XY(2, 0)))
}

// TestGrid_NoInsertOnRead ensures probing an unbounded grid does not grow it.
func TestGrid_NoInsertOnRead(t *testing.T) {
	g := grid.NewUnbounded("void")
	for x := -50; x < 50; x++ {
		v, err := g.Get(grid.XY(x, x))
		require.NoError(t, err)
		require.Equal(t, "void", v)
	}
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Keys())
}

// TestGrid_InsertionOrder locks in that Keys and Items follow insertion order
// and that overwrites keep the original position.
func TestGrid_InsertionOrder(t *testing.T) {
	g := grid.NewUnbounded(0)
	want := []grid.Coord{grid.XY(5, 5), grid.XY(-3, 2), grid.XY(0, 0), grid.XY(9, -9)}
	for i, c := range want {
		require.NoError(t, g.Set(c, i))
	}
	require.NoError(t, g.Set(grid.XY(-3, 2), 42))
	assert.Equal(t, want, g.Keys())

	var seen []grid.Coord
	g.Items(func(c grid.Coord, _ int) bool {
		seen = append(seen, c)
		return len(seen) < 2
	})
	assert.Equal(t, want[:2], seen, "Items must stop when fn returns false")
}

// TestGrid_Bounds verifies fixed and lazily computed extents.
func TestGrid_Bounds(t *testing.T) {
	b, err := grid.NewBounded3D(3, 4, 2, false)
	require.NoError(t, err)
	assert.Equal(t, grid.Bounds{Max: grid.XYZ(2, 3, 1)}, b.Bounds())
	assert.Equal(t, 24, b.Bounds().Size())

	u := grid.NewUnbounded(false)
	assert.Equal(t, grid.Bounds{}, u.Bounds())
	require.NoError(t, u.Set(grid.XY(2, -1), true))
	require.NoError(t, u.Set(grid.XY(-4, 3), true))
	assert.Equal(t, grid.Bounds{Min: grid.XY(-4, -1), Max: grid.XY(2, 3)}, u.Bounds())
	// the cached extent follows later writes
	require.NoError(t, u.Set(grid.XYZ(0, 0, 5), true))
	assert.Equal(t, 5, u.Bounds().Max.Z)
	assert.Equal(t, 7, u.Bounds().Width())
}

// TestGrid_EqualAndSnapshot checks logical equality and snapshot stability
// across different insertion orders.
func TestGrid_EqualAndSnapshot(t *testing.T) {
	a := grid.NewUnbounded('.')
	b := grid.NewUnbounded('.')
	require.NoError(t, a.Set(grid.XY(1, 1), '#'))
	require.NoError(t, a.Set(grid.XY(2, 2), '#'))
	require.NoError(t, b.Set(grid.XY(2, 2), '#'))
	require.NoError(t, b.Set(grid.XY(7, 7), '.')) // default-valued write
	require.NoError(t, b.Set(grid.XY(1, 1), '#'))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	require.NoError(t, b.Set(grid.XY(3, 3), '#'))
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())

	c := a.Clone()
	require.NoError(t, c.Set(grid.XY(1, 1), '.'))
	assert.Equal(t, '#', a.At(grid.XY(1, 1)), "Clone must not alias")
	assert.False(t, a.Equal(c))
}

// TestGrid_EmptyLike verifies configuration is kept and contents are reset.
func TestGrid_EmptyLike(t *testing.T) {
	g, err := grid.NewBounded(2, 2, 'x', grid.WithStrict())
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.XY(1, 1), 'y'))

	e := g.EmptyLike()
	assert.True(t, e.Bounded())
	assert.True(t, e.Strict())
	assert.Equal(t, 4, e.Len())
	assert.Equal(t, 'x', e.At(grid.XY(1, 1)))
	assert.Equal(t, g.Keys(), e.Keys())
}

// TestCoord covers distance and ordering helpers.
func TestCoord(t *testing.T) {
	a, b := grid.XYZ(1, -2, 3), grid.XYZ(-1, 2, 0)
	assert.Equal(t, 9, a.Manhattan(b))
	assert.Equal(t, grid.XYZ(0, 0, 3), a.Add(b))
	assert.Equal(t, grid.XYZ(2, -4, 3), a.Sub(b))
	assert.Equal(t, "(1,-2,3)", a.String())
	assert.Equal(t, "(4,5)", grid.XY(4, 5).String())

	assert.True(t, grid.ReadingLess(grid.XY(5, 0), grid.XY(0, 1)))
	assert.True(t, grid.ReadingLess(grid.XY(0, 1), grid.XY(1, 1)))
	assert.False(t, grid.ReadingLess(grid.XY(1, 1), grid.XY(1, 1)))
	assert.True(t, grid.ReadingLess(grid.XYZ(9, 9, 0), grid.XYZ(0, 0, 1)))
}
