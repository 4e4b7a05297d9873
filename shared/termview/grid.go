package termview

import (
	"math"

	"github.com/automoto/pawprint/shared/gamemath"
)

// Grid maps canvas coordinates onto a terminal character grid.
type Grid struct {
	Cols, Rows     int
	ScaleX, ScaleY float64 // canvas units per cell
}

// NewGrid fits a canvas of the given size into cols x rows cells. Degenerate
// sizes are raised to one cell.
func NewGrid(cols, rows int, canvasW, canvasH float64) Grid {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return Grid{
		Cols:   cols,
		Rows:   rows,
		ScaleX: canvasW / float64(cols),
		ScaleY: canvasH / float64(rows),
	}
}

// Cell returns the cell holding the canvas point, clamped to the grid.
func (g Grid) Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x / g.ScaleX))
	row = int(math.Floor(y / g.ScaleY))
	return min(max(col, 0), g.Cols-1), min(max(row, 0), g.Rows-1)
}

// Span returns the inclusive cell range a rectangle covers. Every rectangle
// covers at least the cell of its top-left corner.
func (g Grid) Span(r gamemath.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = g.Cell(r.X, r.Y)
	// Step back a hair so an edge landing exactly on a cell boundary does not
	// spill into the next cell.
	c1, r1 = g.Cell(r.Right()-1e-9, r.Bottom()-1e-9)
	return c0, r0, max(c1, c0), max(r1, r0)
}
