package core

import (
	"sync"
	"time"
)

// GameLoop calls tick at a fixed rate until stopped. One loop drives one
// session, so a simulation is only ever advanced from one goroutine.
type GameLoop struct {
	tick     func()
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewGameLoop(tick func(), tickRate int) *GameLoop {
	return &GameLoop{
		tick:     tick,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (g *GameLoop) Run() {
	defer close(g.done)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop makes Run return after the current tick. It is safe to call more than
// once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed once Run has returned.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}
