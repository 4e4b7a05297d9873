package termview

import (
	"testing"

	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() sim.Snapshot {
	return sim.Snapshot{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Platforms: []leveldata.Platform{
			{Rect: gamemath.Rect{X: 0, Y: 580, W: 800, H: 20}},
		},
		Door: &sim.Door{Rect: gamemath.Rect{X: 700, Y: 520, W: 40, H: 60}},
		Collectibles: []sim.Collectible{
			{Rect: gamemath.Rect{X: 100, Y: 300, W: 20, H: 20}, Opacity: 1},
			{Rect: gamemath.Rect{X: 200, Y: 300, W: 20, H: 20}, Collected: true, FloatY: -40, Opacity: 0.5},
			{Rect: gamemath.Rect{X: 300, Y: 300, W: 20, H: 20}, Collected: true, FloatY: -80},
		},
		Player: sim.Player{
			Rect:   gamemath.Rect{X: 50, Y: 540, W: 30, H: 30},
			Facing: sim.FacingLeft,
		},
	}
}

func TestRasterize(t *testing.T) {
	f := Rasterize(testSnapshot(), NewGrid(80, 30, 800, 600))
	require.Len(t, f, 30)
	require.Len(t, f[0], 80)

	for col := 0; col < 80; col++ {
		assert.Equal(t, Solid, f[29][col].Kind, "col %d", col)
	}

	assert.Equal(t, Cell{Rune: '#', Kind: DoorClosed}, f[26][70])
	assert.Equal(t, Cell{Rune: '#', Kind: DoorClosed}, f[28][73])
	assert.Equal(t, Empty, f[28][74].Kind)

	assert.Equal(t, Cell{Rune: '*', Kind: Pickup}, f[15][11])
	assert.Equal(t, Cell{Rune: '+', Kind: Fading}, f[13][21])
	assert.Equal(t, Empty, f[15][31].Kind)
	assert.Equal(t, Empty, f[11][31].Kind)

	for _, rc := range [][2]int{{27, 5}, {27, 7}, {28, 5}, {28, 7}} {
		assert.Equal(t, Cell{Rune: '<', Kind: Hero}, f[rc[0]][rc[1]])
	}
}

func TestRasterizeLayers(t *testing.T) {
	snap := testSnapshot()
	snap.DoorActive = true
	snap.Player.Facing = sim.FacingRight
	snap.Player.Rect = gamemath.Rect{X: 0, Y: 570, W: 30, H: 30}

	f := Rasterize(snap, NewGrid(80, 30, 800, 600))

	assert.Equal(t, Cell{Rune: 'O', Kind: DoorOpen}, f[27][71])
	assert.Equal(t, Cell{Rune: '>', Kind: Hero}, f[29][0])
	assert.Equal(t, Solid, f[29][3].Kind)
}

func TestRasterizeWithoutDoor(t *testing.T) {
	snap := testSnapshot()
	snap.Door = nil

	f := Rasterize(snap, NewGrid(80, 30, 800, 600))
	for _, row := range f {
		for _, c := range row {
			assert.NotEqual(t, DoorClosed, c.Kind)
			assert.NotEqual(t, DoorOpen, c.Kind)
		}
	}
}
