package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/pawprint/network"
	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/shared/termview"
	"github.com/gdamore/tcell/v2"
)

// bannerTicks is how long a level or completion banner stays in the HUD.
const bannerTicks = 120

// game drives either a local simulation or, when remote is set, a session
// on a server.
type game struct {
	screen tcell.Screen
	state  *sim.State
	remote *network.Client
	held   *termview.Held
	sounds *sounds

	snap     sim.Snapshot
	lastSent sim.Input

	banner      string
	bannerTicks int
}

func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.held.Press(termview.Left)
		case tcell.KeyRight:
			g.held.Press(termview.Right)
		case tcell.KeyUp:
			g.held.Press(termview.Up)
			g.jump()
		case tcell.KeyDown:
			g.held.Release()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'a', 'A':
				g.held.Press(termview.Left)
			case 'd', 'D':
				g.held.Press(termview.Right)
			case 'w', 'W':
				g.held.Press(termview.Up)
				g.jump()
			case ' ':
				g.jump()
			case 's', 'S':
				g.held.Release()
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *game) jump() {
	if g.remote == nil {
		sim.Jump(g.state)
		return
	}
	if err := g.remote.SendJump(); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// step advances one frame and returns its events along with the snapshot to
// draw.
func (g *game) step() []sim.Event {
	in := g.held.Tick()
	if g.remote == nil {
		events := sim.Step(g.state, in)
		g.snap = g.state.Snapshot()
		return events
	}

	if in != g.lastSent {
		if err := g.remote.SendInput(in); err == nil {
			g.lastSent = in
		}
	}
	if snap := g.remote.LatestSnapshot(); snap != nil {
		g.snap = *snap
	}
	return g.remote.DrainEvents()
}

func (g *game) tick() {
	for _, e := range g.step() {
		g.sounds.play(e.Kind)
		switch e.Kind {
		case sim.EventLevelLoaded:
			g.showBanner(fmt.Sprintf("Level %d: %s", e.Level+1, g.snap.LevelName))
		case sim.EventGameCompleted:
			g.showBanner("All levels complete!")
		}
	}
	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}
	draw(g.screen, g.snap, g.banner)
}

func (g *game) showBanner(text string) {
	g.banner = text
	g.bannerTicks = bannerTicks
}

func (g *game) run(tickRate int) {
	var closed <-chan struct{}
	if g.remote != nil {
		closed = g.remote.Done()
	}

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
		case <-closed:
			return
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the simulation tuning")
	levelsDir := flag.String("levels", "", "directory of .tmx levels (default: built-in levels)")
	policy := flag.String("recovery", "", "out-of-bounds recovery: respawn or snap_to_ground")
	hold := flag.Duration("hold", 500*time.Millisecond, "how long a direction stays held after its last key repeat")
	connect := flag.String("connect", "", "play a session on a server instead, e.g. ws://localhost:8080/ws")
	flag.Parse()

	c := gameconfig.Default()
	if *configPath != "" {
		loaded, err := gameconfig.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		c = loaded
	}
	if *policy != "" {
		p, err := gameconfig.ParsePolicy(*policy)
		if err != nil {
			log.Fatalf("Invalid -recovery: %v", err)
		}
		c.Recovery.Policy = p
	}

	levels := leveldata.Builtin(c.Canvas.Width, c.Canvas.Height)
	if *levelsDir != "" {
		loaded, err := leveldata.LoadAllLevels(os.DirFS(*levelsDir), ".")
		if err != nil {
			log.Fatalf("Failed to load levels from %s: %v", *levelsDir, err)
		}
		levels = loaded
	}

	state, err := sim.New(c, levels)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	var remote *network.Client
	if *connect != "" {
		remote = network.NewClient()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := remote.Connect(ctx, *connect)
		cancel()
		if err != nil {
			log.Fatalf("Failed to join %s: %v", *connect, err)
		}
		defer remote.Disconnect()
	}

	snd, err := newSounds()
	if err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}
	defer snd.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	defer screen.Fini()

	g := &game{
		screen: screen,
		state:  state,
		remote: remote,
		snap:   state.Snapshot(),
		held:   termview.NewHeld(int(hold.Seconds() * float64(c.Loop.TickRate))),
		sounds: snd,
	}
	if remote == nil {
		g.showBanner(fmt.Sprintf("Level 1: %s", state.LevelName()))
	}
	g.run(c.Loop.TickRate)
}
