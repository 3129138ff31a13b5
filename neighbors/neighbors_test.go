package neighbors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

func mustLines(t *testing.T, lines ...string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.FromLines(lines)
	require.NoError(t, err)

	return g
}

func coordsOf[V comparable](cells []neighbors.Cell[V]) []grid.Coord {
	out := make([]grid.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.At
	}

	return out
}

// TestNeighbors_Counts locks in interior/edge/corner counts on a bounded 2D grid.
func TestNeighbors_Counts(t *testing.T) {
	g, err := grid.NewBounded(5, 4, 0)
	require.NoError(t, err)

	cases := []struct {
		name string
		at   grid.Coord
		conn neighbors.Connectivity
		want int
	}{
		{"Interior4", grid.XY(2, 2), neighbors.Conn4, 4},
		{"Interior8", grid.XY(2, 2), neighbors.Conn8, 8},
		{"Corner4", grid.XY(0, 0), neighbors.Conn4, 2},
		{"Corner8", grid.XY(4, 3), neighbors.Conn8, 3},
		{"Edge4", grid.XY(2, 0), neighbors.Conn4, 3},
		{"Edge8", grid.XY(0, 2), neighbors.Conn8, 5},
		{"Flat26", grid.XY(2, 2), neighbors.Conn26, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cells, err := neighbors.Neighbors(tc.at, g, neighbors.Adjacent[int](tc.conn))
			require.NoError(t, err)
			assert.Len(t, cells, tc.want)
		})
	}
}

// TestNeighbors_Order verifies the N, E, S, W, then diagonals order.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.NewBounded(3, 3, 0)
	require.NoError(t, err)
	cells, err := neighbors.Neighbors(grid.XY(1, 1), g, neighbors.Adjacent[int](neighbors.Conn8))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{
		grid.XY(1, 0), grid.XY(2, 1), grid.XY(1, 2), grid.XY(0, 1),
		grid.XY(2, 0), grid.XY(2, 2), grid.XY(0, 2), grid.XY(0, 0),
	}, coordsOf(cells))
}

// TestNeighbors_3D checks Conn6 and Conn26 inside a 3×3×3 cube.
func TestNeighbors_3D(t *testing.T) {
	g, err := grid.NewBounded3D(3, 3, 3, 0)
	require.NoError(t, err)

	six, err := neighbors.Neighbors(grid.XYZ(1, 1, 1), g, neighbors.Adjacent[int](neighbors.Conn6))
	require.NoError(t, err)
	assert.Len(t, six, 6)

	all, err := neighbors.Neighbors(grid.XYZ(1, 1, 1), g, neighbors.Adjacent[int](neighbors.Conn26))
	require.NoError(t, err)
	assert.Len(t, all, 26)
	assert.Equal(t, grid.XYZ(0, 0, 0), all[0].At)
	assert.Equal(t, grid.XYZ(2, 2, 2), all[25].At)

	corner, err := neighbors.Neighbors(grid.XYZ(0, 0, 0), g, neighbors.Adjacent[int](neighbors.Conn26))
	require.NoError(t, err)
	assert.Len(t, corner, 7)
}

// TestNeighbors_Unbounded reports every offset with default values.
func TestNeighbors_Unbounded(t *testing.T) {
	g := grid.NewUnbounded('.')
	require.NoError(t, g.Set(grid.XY(1, 0), '#'))

	cells, err := neighbors.Neighbors(grid.XY(0, 0), g, neighbors.Adjacent[rune](neighbors.Conn8))
	require.NoError(t, err)
	require.Len(t, cells, 8)
	assert.Equal(t, 1, neighbors.CountEqual(cells, '#'))
	assert.Equal(t, 7, neighbors.CountEqual(cells, '.'))
	assert.Equal(t, 1, g.Len(), "reading neighbors must not insert")
}

// TestNeighbors_Ray uses the classic "visible seats" layout: the empty seat
// in the middle sees eight occupied seats through the floor.
func TestNeighbors_Ray(t *testing.T) {
	g := mustLines(t,
		".......#.",
		"...#.....",
		".#.......",
		".........",
		"..#L....#",
		"....#....",
		".........",
		"#........",
		"...#.....",
	)
	floor := func(r rune) bool { return r == '.' }
	cells, err := neighbors.Neighbors(grid.XY(3, 4), g, neighbors.Visible(neighbors.Conn8, floor, 0))
	require.NoError(t, err)
	assert.Len(t, cells, 8)
	assert.Equal(t, 8, neighbors.CountEqual(cells, '#'))

	// an empty seat blocks the view beyond it
	g2 := mustLines(t, ".L.L.#.#.#.#.")
	cells, err = neighbors.Neighbors(grid.XY(1, 0), g2, neighbors.Visible(neighbors.Conn8, floor, 0))
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 'L', cells[0].Value)
	assert.Equal(t, grid.XY(3, 0), cells[0].At)

	// MaxRay cuts the walk short
	cells, err = neighbors.Neighbors(grid.XY(1, 0), g2, neighbors.Visible(neighbors.Conn8, floor, 1))
	require.NoError(t, err)
	assert.Empty(t, cells)
}

// TestNeighbors_Errors covers unbounded rays and bad connectivity.
func TestNeighbors_Errors(t *testing.T) {
	u := grid.NewUnbounded('.')
	_, err := neighbors.Neighbors(grid.XY(0, 0), u, neighbors.Visible(neighbors.Conn4, func(r rune) bool { return r == '.' }, 0))
	require.ErrorIs(t, err, neighbors.ErrUnboundedRay)

	cells, err := neighbors.Neighbors(grid.XY(0, 0), u, neighbors.Visible(neighbors.Conn4, func(r rune) bool { return r == '.' }, 3))
	require.NoError(t, err)
	assert.Empty(t, cells, "all-floor plane has nothing visible within 3 steps")

	_, err = neighbors.Neighbors(grid.XY(0, 0), u, neighbors.Adjacent[rune](neighbors.Connectivity(42)))
	require.ErrorIs(t, err, neighbors.ErrConnectivity)
}

// TestParseConnectivity round-trips names.
func TestParseConnectivity(t *testing.T) {
	for _, c := range []neighbors.Connectivity{neighbors.Conn4, neighbors.Conn8, neighbors.Conn6, neighbors.Conn26} {
		got, err := neighbors.ParseConnectivity(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := neighbors.ParseConnectivity("5")
	assert.ErrorIs(t, err, neighbors.ErrConnectivity)
}
