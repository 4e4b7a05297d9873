package sim

import (
	"log"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/leveldata"
)

// recoverOutOfBounds brings a player that fell below the canvas back into play using
// the configured policy.
func (s *State) recoverOutOfBounds(events []Event) []Event {
	if s.Player.Y <= s.Config.Canvas.Height {
		return events
	}

	switch s.Config.Recovery.Policy {
	case gameconfig.RecoverySnapToGround:
		if ground, ok := s.groundPlatform(); ok {
			s.snapOnto(ground)
			break
		}
		log.Printf("Warning: level %q has no ground platform, respawning instead", s.LevelName())
		s.respawn()
	default:
		s.respawn()
	}

	return append(events, Event{Kind: EventRecovered, Level: s.LevelIndex})
}

// groundPlatform returns the platform closest to the player horizontally
// among those whose top is within the ground window of the canvas bottom.
// Ties keep the earliest platform.
func (s *State) groundPlatform() (leveldata.Platform, bool) {
	window := s.Config.Recovery.GroundWindow
	bottom := s.Config.Canvas.Height
	center := s.Player.X + s.Player.W/2

	var best leveldata.Platform
	bestDist := -1.0
	for _, p := range s.Platforms {
		if p.Y < bottom-window || p.Y > bottom+window {
			continue
		}
		d := gamemath.SpanDistance(center, p.X, p.Right())
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}

func (s *State) snapOnto(ground leveldata.Platform) {
	p := &s.Player
	p.X = gamemath.ClampFloat(p.X, ground.X, ground.Right()-p.W)
	p.Y = ground.Y - p.H
	p.VY = 0
	p.Grounded = true
}

func (s *State) respawn() {
	p := &s.Player
	p.X, p.Y = s.Spawn.X, s.Spawn.Y
	p.VX, p.VY = 0, 0
	p.Grounded = false
}
