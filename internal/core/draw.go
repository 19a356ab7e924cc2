package core

// Glyph is a single (row, column, rune) placement with a colour.
type Glyph struct {
	Row   int
	Col   int
	Rune  rune
	Color Color
}

// DrawList is the per-tick output of a game: an ordered list of glyphs.
// Later glyphs overwrite earlier ones at the same cell.
type DrawList []Glyph

// Put appends one glyph.
func (d *DrawList) Put(row, col int, r rune, c Color) {
	*d = append(*d, Glyph{Row: row, Col: col, Rune: r, Color: c})
}

// Run appends n copies of r going right from (row, col).
func (d *DrawList) Run(row, col, n int, r rune, c Color) {
	for i := 0; i < n; i++ {
		d.Put(row, col+i, r, c)
	}
}

// Fill appends a filled rectangle of r.
func (d *DrawList) Fill(rect Rect, r rune, c Color) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		d.Run(y, rect.X, rect.W, r, c)
	}
}

// Text appends the runes of s going right from (row, col).
func (d *DrawList) Text(row, col int, s string, c Color) {
	i := 0
	for _, r := range s {
		d.Put(row, col+i, r, c)
		i++
	}
}

// At returns the last glyph placed at (row, col), if any.
func (d DrawList) At(row, col int) (Glyph, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Row == row && d[i].Col == col {
			return d[i], true
		}
	}
	return Glyph{}, false
}
