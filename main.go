package main

import (
	"flag"
	"log"
	"os"

	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/fonts"
	"github.com/automoto/pawprint/scenes"
	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(state *sim.State) *Game {
	fonts.LoadDefaults()
	systems.PreloadAllSFX()

	return &Game{
		scene: scenes.NewPlatformerScene(state),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the simulation tuning")
	levelsDir := flag.String("levels", "", "directory of .tmx levels (default: built-in levels)")
	policy := flag.String("recovery", "", "out-of-bounds recovery: respawn or snap_to_ground")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	flag.Parse()

	if *configPath != "" {
		c, err := gameconfig.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg.ApplySim(c)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over saved settings.
	if *policy != "" {
		p, err := gameconfig.ParsePolicy(*policy)
		if err != nil {
			log.Fatalf("Invalid -recovery: %v", err)
		}
		cfg.Sim.Recovery.Policy = p
	}
	if *debug {
		cfg.Debug.Enabled = true
	}

	levels := leveldata.Builtin(cfg.Sim.Canvas.Width, cfg.Sim.Canvas.Height)
	if *levelsDir != "" {
		loaded, err := leveldata.LoadAllLevels(os.DirFS(*levelsDir), ".")
		if err != nil {
			log.Fatalf("Failed to load levels from %s: %v", *levelsDir, err)
		}
		levels = loaded
	}

	state, err := sim.New(cfg.Sim, levels)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowSize(int(float64(cfg.C.Width)*cfg.C.Scale), int(float64(cfg.C.Height)*cfg.C.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Sim.Loop.TickRate)

	if err := ebiten.RunGame(NewGame(state)); err != nil {
		log.Fatal(err)
	}
}
