package render_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/render"
)

func identity(r rune) rune { return r }

func wallPalette(r rune) color.Color {
	if r == '#' {
		return color.White
	}
	return nil
}

func TestText(t *testing.T) {
	g, err := grid.FromLines([]string{"#.", ".#"})
	require.NoError(t, err)
	assert.Equal(t, "#.\n.#\n", render.Text(g, identity))

	sparse := grid.NewUnbounded(false)
	require.NoError(t, sparse.Set(grid.XY(-1, 5), true))
	require.NoError(t, sparse.Set(grid.XY(1, 6), true))
	glyph := func(on bool) rune {
		if on {
			return '#'
		}
		return '.'
	}
	assert.Equal(t, "#..\n..#\n", render.Text(sparse, glyph))
	assert.Empty(t, render.Text(grid.NewUnbounded(false), glyph))
}

func TestImage(t *testing.T) {
	g, err := grid.FromLines([]string{"#.", ".."})
	require.NoError(t, err)

	img, err := render.Image(g, wallPalette, render.Style{Cell: 4})
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	r, _, _, a := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r, "wall cell is painted")
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(6, 6).RGBA()
	assert.Zero(t, a, "nil color leaves the transparent canvas")

	_, err = render.Image(g, wallPalette, render.Style{})
	assert.ErrorIs(t, err, render.ErrCellSize)
	_, err = render.Image(grid.NewUnbounded('.'), wallPalette, render.DefaultStyle())
	assert.ErrorIs(t, err, render.ErrEmptyGrid)
}

func TestSavePNG(t *testing.T) {
	g, err := grid.FromLines([]string{"#.#"})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "grid.png")

	st := render.DefaultStyle()
	st.Lines = color.Gray{Y: 64}
	require.NoError(t, render.SavePNG(path, g, wallPalette, st))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
