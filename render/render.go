// Package render draws a grid.Grid as text or as a PNG image.
//
// Both renderers cover the z=0 layer of the grid's Bounds; unbounded grids
// are drawn over the min/max of their stored coordinates.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridkit/grid"
)

// ErrEmptyGrid is returned when there is nothing to draw.
var ErrEmptyGrid = errors.New("render: grid has no cells")

// ErrCellSize is returned for a non-positive Style.Cell.
var ErrCellSize = errors.New("render: cell size must be positive")

// Text renders the z=0 layer row by row using glyph for each cell.
// An empty grid renders as "".
func Text[V comparable](g *grid.Grid[V], glyph func(V) rune) string {
	if g == nil || g.Len() == 0 {
		return ""
	}
	b := g.Bounds()
	var sb strings.Builder
	sb.Grow((b.Width() + 1) * b.Height())
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			sb.WriteRune(glyph(g.At(grid.XY(x, y))))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Style controls image rendering.
type Style struct {
	Cell       int         // pixels per cell side
	Background color.Color // canvas fill behind the cells
	Lines      color.Color // grid line color; nil draws no lines
}

// DefaultStyle returns 8-pixel cells on a dark canvas without grid lines.
func DefaultStyle() Style {
	return Style{Cell: 8, Background: color.RGBA{12, 12, 28, 255}}
}

// Image paints each cell of the z=0 layer as a square filled with
// palette(value). A nil palette color leaves the background visible.
func Image[V comparable](g *grid.Grid[V], palette func(V) color.Color, st Style) (image.Image, error) {
	dc, err := draw(g, palette, st)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// SavePNG renders g like Image and writes the result to path.
func SavePNG[V comparable](path string, g *grid.Grid[V], palette func(V) color.Color, st Style) error {
	dc, err := draw(g, palette, st)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

func draw[V comparable](g *grid.Grid[V], palette func(V) color.Color, st Style) (*gg.Context, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	if st.Cell <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCellSize, st.Cell)
	}
	b := g.Bounds()
	size := float64(st.Cell)
	w, h := b.Width()*st.Cell, b.Height()*st.Cell
	dc := gg.NewContext(w, h)

	if st.Background != nil {
		dc.SetColor(st.Background)
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
	}
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			c := palette(g.At(grid.XY(x, y)))
			if c == nil {
				continue
			}
			dc.SetColor(c)
			dc.DrawRectangle(float64(x-b.Min.X)*size, float64(y-b.Min.Y)*size, size, size)
			dc.Fill()
		}
	}
	if st.Lines != nil {
		dc.SetColor(st.Lines)
		dc.SetLineWidth(1)
		for x := 0.0; x <= float64(w); x += size {
			dc.DrawLine(x, 0, x, float64(h))
			dc.Stroke()
		}
		for y := 0.0; y <= float64(h); y += size {
			dc.DrawLine(0, y, float64(w), y)
			dc.Stroke()
		}
	}

	return dc, nil
}
