package termview

import (
	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/sim"
)

type Kind uint8

const (
	Empty Kind = iota
	Solid
	Pickup
	Fading
	DoorClosed
	DoorOpen
	Hero
)

type Cell struct {
	Rune rune
	Kind Kind
}

// Frame is a rasterized snapshot, indexed [row][col].
type Frame [][]Cell

// Rasterize draws a snapshot into a fresh frame. Later layers overwrite
// earlier ones: platforms, door, collectibles, player.
func Rasterize(snap sim.Snapshot, g Grid) Frame {
	f := make(Frame, g.Rows)
	for i := range f {
		f[i] = make([]Cell, g.Cols)
	}

	for _, p := range snap.Platforms {
		f.fill(g, p.Rect, Cell{Rune: '=', Kind: Solid})
	}

	if snap.Door != nil {
		door := Cell{Rune: '#', Kind: DoorClosed}
		if snap.DoorActive {
			door = Cell{Rune: 'O', Kind: DoorOpen}
		}
		f.fill(g, snap.Door.Rect, door)
	}

	for _, c := range snap.Collectibles {
		switch {
		case !c.Collected:
			f.put(g, c.Rect, c.FloatY, Cell{Rune: '*', Kind: Pickup})
		case c.Opacity > 0:
			f.put(g, c.Rect, c.FloatY, Cell{Rune: '+', Kind: Fading})
		}
	}

	hero := '>'
	if snap.Player.Facing == sim.FacingLeft {
		hero = '<'
	}
	f.fill(g, snap.Player.Rect, Cell{Rune: hero, Kind: Hero})
	return f
}

func (f Frame) fill(g Grid, r gamemath.Rect, cell Cell) {
	c0, r0, c1, r1 := g.Span(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			f[row][col] = cell
		}
	}
}

// put marks the single cell at the centre of r, shifted by dy.
func (f Frame) put(g Grid, r gamemath.Rect, dy float64, cell Cell) {
	col, row := g.Cell(r.X+r.W/2, r.Y+r.H/2+dy)
	f[row][col] = cell
}
