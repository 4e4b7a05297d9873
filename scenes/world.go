package scenes

import (
	"sync"

	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/systems"
	"github.com/automoto/pawprint/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs   *ecs.ECS
	state *sim.State
	once  sync.Once
}

// NewPlatformerScene wraps an already loaded simulation. The scene drives one
// Step per ebiten tick.
func NewPlatformerScene(state *sim.State) *PlatformerScene {
	return &PlatformerScene{state: state}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.Palette.Background)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelMirror))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBanner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAudio))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCollectibles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawBanner)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	factory.CreateSimulation(ecs, ps.state)

	ps.ecs = ecs
}
