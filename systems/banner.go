package systems

import (
	"fmt"

	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/fonts"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner starts the level title card on every load and the completion
// overlay when the last door wraps to the start, then advances both fades.
func UpdateBanner(ecs *ecs.ECS) {
	banner := GetOrCreateBanner(ecs)
	dt := float32(1.0 / float64(ebiten.TPS()))

	s, ok := GetSimulation(ecs)
	if ok {
		// The very first frame has no load event but still deserves a card.
		if banner.Sequence == nil && s.State.Frame <= 1 {
			startBanner(banner, s.State)
		}
		for _, e := range s.Events {
			switch e.Kind {
			case sim.EventLevelLoaded:
				startBanner(banner, s.State)
			case sim.EventGameCompleted:
				banner.Completed = true
				banner.CompleteTween = gween.New(1, 0, cfg.Complete.Duration, ease.InQuad)
				banner.CompleteAlpha = 1
			}
		}
	}

	if banner.Sequence != nil {
		alpha, _, done := banner.Sequence.Update(dt)
		banner.Alpha = alpha
		if done {
			banner.Sequence = nil
			banner.Alpha = 0
		}
	}
	if banner.CompleteTween != nil {
		alpha, done := banner.CompleteTween.Update(dt)
		banner.CompleteAlpha = alpha
		if done {
			banner.CompleteTween = nil
			banner.Completed = false
		}
	}
}

func startBanner(banner *components.BannerData, state *sim.State) {
	banner.Text = fmt.Sprintf("Level %d: %s", state.LevelIndex+1, state.LevelName())
	banner.Sequence = gween.NewSequence(
		gween.New(0, 1, cfg.Banner.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Banner.Hold, ease.Linear),
		gween.New(1, 0, cfg.Banner.FadeOut, ease.InQuad),
	)
	banner.Alpha = 0
}

// DrawBanner renders the level title card and the completion overlay.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner := GetOrCreateBanner(ecs)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	face := fonts.Title.Get()

	if banner.Sequence != nil && banner.Alpha > 0 && !banner.Completed {
		const scale = 2
		x := centerTextX(banner.Text, face, width, scale)
		drawScaledText(screen, banner.Text, face, x, cfg.Banner.Y, scale, fade(cfg.Banner.TextColor, float64(banner.Alpha)))
	}

	if !banner.Completed || banner.CompleteAlpha <= 0 {
		return
	}
	a := float64(banner.CompleteAlpha)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), fade(cfg.Complete.OverlayColor, a), false)

	const titleScale = 3
	x := centerTextX(cfg.Complete.Title, face, width, titleScale)
	drawScaledText(screen, cfg.Complete.Title, face, x, int(height/2)-20, titleScale, fade(cfg.Complete.TitleColor, a))

	msgFace := fonts.HUD.Get()
	text.Draw(screen, cfg.Complete.Message, msgFace, centerTextX(cfg.Complete.Message, msgFace, width, 1), int(height/2)+30, fade(cfg.Complete.TextColor, a))
}

// GetOrCreateBanner returns the singleton Banner component, creating if needed
func GetOrCreateBanner(e *ecs.ECS) *components.BannerData {
	if _, ok := components.Banner.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Banner))
	}

	ent, _ := components.Banner.First(e.World)
	return components.Banner.Get(ent)
}
