package sim

import (
	"math"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/leveldata"
)

// instantiateCollectibles builds fresh live state from the templates. The
// result shares nothing with the templates or any earlier instantiation.
func instantiateCollectibles(spawns []leveldata.CollectibleSpawn, cfg gameconfig.CollectibleConfig) []Collectible {
	out := make([]Collectible, len(spawns))
	for i, spawn := range spawns {
		w, h := spawn.W, spawn.H
		if w <= 0 {
			w = cfg.Width
		}
		if h <= 0 {
			h = cfg.Height
		}
		out[i] = Collectible{
			Rect:    gamemath.Rect{X: spawn.X, Y: spawn.Y, W: w, H: h},
			Opacity: 1,
		}
	}
	return out
}

// collect flips every uncollected item the player overlaps and returns the
// events for them.
func (s *State) collect(events []Event) []Event {
	for i := range s.Collectibles {
		c := &s.Collectibles[i]
		if c.Collected || !gamemath.Overlaps(s.Player.Rect, c.Rect) {
			continue
		}
		c.Collected = true
		s.CollectedCount++
		events = append(events, Event{Kind: EventCollected, Level: s.LevelIndex, Index: i})

		if s.DoorActive() {
			events = append(events, Event{Kind: EventDoorOpened, Level: s.LevelIndex})
		}
	}
	return events
}

// animateCollectibles advances every item's float phase. Uncollected items bob
// on a sine; collected ones drift up and fade to zero.
func (s *State) animateCollectibles() {
	cfg := s.Config.Collectible
	for i := range s.Collectibles {
		c := &s.Collectibles[i]
		c.FloatOffset += cfg.FloatSpeed
		if !c.Collected {
			c.FloatY = gamemath.Bob(c.FloatOffset, cfg.FloatAmplitude)
			continue
		}
		c.FloatY -= cfg.RiseSpeed
		c.Opacity = math.Max(0, c.Opacity-cfg.FadeStep)
	}
}
