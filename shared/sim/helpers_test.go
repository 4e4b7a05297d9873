package sim

import (
	"testing"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/stretchr/testify/require"
)

func plat(x, y, w, h float64) leveldata.Platform {
	var p leveldata.Platform
	p.X, p.Y, p.W, p.H = x, y, w, h
	return p
}

func newTestState(t *testing.T, levels ...leveldata.Level) *State {
	t.Helper()
	s, err := New(gameconfig.Default(), levels)
	require.NoError(t, err)
	return s
}

func builtinState(t *testing.T) *State {
	t.Helper()
	cfg := gameconfig.Default()
	return newTestState(t, leveldata.Builtin(cfg.Canvas.Width, cfg.Canvas.Height)...)
}

// restOn puts the player on top of p at x, at rest.
func restOn(s *State, p leveldata.Platform, x float64) {
	s.Player.X = x
	s.Player.Y = p.Y - s.Player.H
	s.Player.VX = 0
	s.Player.VY = 0
	s.Player.Grounded = true
}

// airborne puts the player at (x, y) with the given vertical speed.
func airborne(s *State, x, y, vy float64) {
	s.Player.X = x
	s.Player.Y = y
	s.Player.VY = vy
	s.Player.Grounded = false
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
