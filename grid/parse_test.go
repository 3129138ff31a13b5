package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFromLines_Invalid ensures FromLines rejects bad inputs.
func TestFromLines_Invalid(t *testing.T) {
	if _, err := FromLines(nil); err != ErrEmptyGrid {
		t.Errorf("nil lines: got %v; want ErrEmptyGrid", err)
	}
	if _, err := FromLines([]string{""}); err != ErrEmptyGrid {
		t.Errorf("empty row: got %v; want ErrEmptyGrid", err)
	}
	if _, err := FromLines([]string{"...", ".."}); err != ErrNonRectangular {
		t.Errorf("jagged rows: got %v; want ErrNonRectangular", err)
	}
}

// TestFromLines_Layout checks row→y, column→x mapping and the round trip
// back to text.
func TestFromLines_Layout(t *testing.T) {
	lines := []string{
		"#.G",
		"E..",
	}
	g, err := FromLines(lines)
	require.NoError(t, err)
	require.Equal(t, Bounds{Max: XY(2, 1)}, g.Bounds())
	require.Equal(t, 'G', g.At(XY(2, 0)))
	require.Equal(t, 'E', g.At(XY(0, 1)))
	require.Equal(t, lines, Lines(g))
}

// TestFromLinesSparse keeps only non-default runes.
func TestFromLinesSparse(t *testing.T) {
	g := FromLinesSparse([]string{"..#", "#", ".#."}, '.')
	require.Equal(t, 3, g.Len())
	require.Equal(t, []Coord{XY(2, 0), XY(0, 1), XY(1, 2)}, g.Keys())
	require.Equal(t, []string{"..#", "#..", ".#."}, Lines(g))
}
