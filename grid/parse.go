package grid

// FromLines builds a bounded rune grid from text rows: row index becomes y,
// column index becomes x, y grows downward. The input is deep-copied.
// Returns ErrEmptyGrid for no rows or an empty first row and
// ErrNonRectangular for ragged rows.
func FromLines(lines []string, opts ...Option) (*Grid[rune], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
		if len(rows[y]) != len(rows[0]) {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewBounded(len(rows[0]), len(rows), ' ', opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, r := range row {
			g.cells[Coord{X: x, Y: y}] = r
		}
	}

	return g, nil
}

// FromLinesSparse builds an unbounded rune grid holding only the runes that
// differ from def. Ragged rows are allowed.
func FromLinesSparse(lines []string, def rune) *Grid[rune] {
	g := NewUnbounded(def)
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if r != def {
				_ = g.Set(Coord{X: x, Y: y}, r)
			}
			x++
		}
	}

	return g
}

// Lines renders the z=0 layer of g inside its Bounds back into text rows.
func Lines(g *Grid[rune]) []string {
	b := g.Bounds()
	if g.Len() == 0 {
		return nil
	}
	out := make([]string, 0, b.Height())
	row := make([]rune, b.Width())
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			row[x-b.Min.X] = g.At(Coord{X: x, Y: y})
		}
		out = append(out, string(row))
	}

	return out
}
