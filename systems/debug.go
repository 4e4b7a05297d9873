package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/fonts"
	"github.com/automoto/pawprint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionToggleDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	settings.Dirty = true
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			drawOutline(screen, obj, debugColor(obj))
		}
	}

	// Objects sharing cells with the player.
	if player, ok := tags.Player.First(ecs.World); ok {
		obj := objectOf(player)
		if check := obj.Check(0, 0); check != nil {
			for _, other := range check.Objects {
				drawOutline(screen, other, cfg.Debug.ContactColor)
			}
		}
	}

	s, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	p := s.State.Player
	lines := []string{
		fmt.Sprintf("frame %d  fps %.0f  tps %.0f", s.State.Frame, ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f", p.X, p.Y, p.VX, p.VY),
		fmt.Sprintf("grounded %v  facing %s  recovery %s", p.Grounded, p.Facing, s.State.Config.Recovery.Policy),
	}
	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - len(lines)*14
	for _, line := range lines {
		text.Draw(screen, line, face, 8, y, cfg.White)
		y += 14
	}
	if p.PassingThrough {
		text.Draw(screen, "passing through", face, int(p.X), int(p.Y)-4, cfg.Debug.PassThrough)
	}
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return cfg.Debug.SolidColor
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Debug.PlayerColor
	case obj.HasTags(tags.ResolvCollectible):
		return cfg.Debug.PickupColor
	case obj.HasTags(tags.ResolvDoor):
		return cfg.Debug.DoorColor
	}
	return color.RGBA{0, 255, 255, 255}
}

func drawOutline(screen *ebiten.Image, obj *resolv.Object, c color.RGBA) {
	vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
}
