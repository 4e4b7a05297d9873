package termview

import (
	"testing"

	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestGridCell(t *testing.T) {
	g := NewGrid(80, 30, 800, 600)
	assert.Equal(t, 10.0, g.ScaleX)
	assert.Equal(t, 20.0, g.ScaleY)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"origin", 0, 0, 0, 0},
		{"far corner", 799, 599, 79, 29},
		{"canvas edge clamps", 800, 600, 79, 29},
		{"negative clamps", -5, -50, 0, 0},
		{"below canvas clamps", 400, 900, 40, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := g.Cell(tt.x, tt.y)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, tt.row, row)
		})
	}
}

func TestGridSpan(t *testing.T) {
	g := NewGrid(80, 30, 800, 600)

	c0, r0, c1, r1 := g.Span(gamemath.Rect{X: 50, Y: 500, W: 30, H: 30})
	assert.Equal(t, []int{5, 25, 7, 26}, []int{c0, r0, c1, r1})

	// Edges on a cell boundary stay inside.
	c0, r0, c1, r1 = g.Span(gamemath.Rect{X: 0, Y: 580, W: 800, H: 20})
	assert.Equal(t, []int{0, 29, 79, 29}, []int{c0, r0, c1, r1})

	c0, r0, c1, r1 = g.Span(gamemath.Rect{X: 10, Y: 0, W: 0, H: 0})
	assert.Equal(t, []int{1, 0, 1, 0}, []int{c0, r0, c1, r1})
}

func TestNewGridDegenerate(t *testing.T) {
	g := NewGrid(0, -3, 800, 600)
	assert.Equal(t, 1, g.Cols)
	assert.Equal(t, 1, g.Rows)

	col, row := g.Cell(400, 300)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}
