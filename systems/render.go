package systems

import (
	"image/color"

	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the background, the platforms and the door.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := components.Platform.Get(e).Color
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
	})

	s, ok := GetSimulation(ecs)
	if !ok || s.State.Door == nil {
		return
	}
	drawDoor(screen, s.State.Door, s.State.DoorActive())
}

func drawDoor(screen *ebiten.Image, d *sim.Door, active bool) {
	fill := cfg.Palette.DoorInactive
	if active {
		fill = cfg.Palette.DoorActive
	}
	x, y, w, h := float32(d.X), float32(d.Y), float32(d.W), float32(d.H)
	vector.FillRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 3, cfg.Palette.DoorFrame, false)

	// Knob on the opening side.
	knob := cfg.Palette.DoorFrame
	if active {
		knob = cfg.Gold
	}
	vector.FillCircle(screen, x+w-8, y+h/2, 3, knob, true)
}

// DrawCollectibles renders every collectible at its bobbing offset. Collected
// ones keep drawing while they rise and fade out.
func DrawCollectibles(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSimulation(ecs)
	if !ok {
		return
	}

	for _, c := range s.State.Collectibles {
		if c.Opacity <= 0 {
			continue
		}
		cx := float32(c.X + c.W/2)
		cy := float32(c.Y + c.H/2 + c.FloatY)
		r := float32(c.W / 2)
		vector.FillCircle(screen, cx, cy, r, fade(cfg.Palette.Collectible, c.Opacity), true)
		vector.StrokeCircle(screen, cx, cy, r, 2, fade(cfg.Palette.CollectibleRing, c.Opacity), true)
	}
}

// DrawPlayer renders the player box with an eye on the facing side.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	p := s.State.Player

	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), cfg.Palette.Player, false)

	eyeX := p.X + p.W*0.7
	if p.Facing == sim.FacingLeft {
		eyeX = p.X + p.W*0.3
	}
	vector.FillCircle(screen, float32(eyeX), float32(p.Y+p.H*0.3), float32(p.W/8), cfg.Palette.PlayerEye, true)
}

// fade scales a color's alpha by opacity in [0, 1].
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	// RGBA is premultiplied.
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
