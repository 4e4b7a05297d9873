package systems

import (
	"fmt"

	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/fonts"
	"github.com/automoto/pawprint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth = 240
	hudLines      = 2
)

// DrawHUD renders the level name, the collected counter and a hint when the
// door is within reach.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	state := s.State
	face := fonts.HUD.Get()

	vector.FillRect(screen,
		float32(cfg.HUD.X-6), float32(cfg.HUD.Y-14),
		hudPanelWidth, float32(hudLines*cfg.HUD.LineHeight+6),
		cfg.HUD.BgColor, false)

	level := fmt.Sprintf("Level %d/%d: %s", state.LevelIndex+1, len(state.Levels), state.LevelName())
	text.Draw(screen, level, face, cfg.HUD.X, cfg.HUD.Y, cfg.HUD.TextColor)

	count := fmt.Sprintf("Collected: %d/%d", state.CollectedCount, state.Total())
	text.Draw(screen, count, face, cfg.HUD.X, cfg.HUD.Y+cfg.HUD.LineHeight, cfg.HUD.TextColor)

	if hint := doorHint(ecs); hint != "" {
		x := centerTextX(hint, face, float64(screen.Bounds().Dx()), 1)
		text.Draw(screen, hint, face, x, screen.Bounds().Dy()-40, cfg.HUD.HintColor)
	}
}

// doorHint probes the resolv mirror around the player for the door.
func doorHint(ecs *ecs.ECS) string {
	s, ok := GetSimulation(ecs)
	if !ok || s.State.Door == nil {
		return ""
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return ""
	}
	obj := objectOf(player)

	gap := cfg.HUD.DoorHintGap
	for _, dx := range []float64{-gap, 0, gap} {
		if obj.Check(dx, 0, tags.ResolvDoor) == nil {
			continue
		}
		if s.State.DoorActive() {
			return "The door is open!"
		}
		left := s.State.Total() - s.State.CollectedCount
		return fmt.Sprintf("Locked: %d more to collect", left)
	}
	return ""
}
