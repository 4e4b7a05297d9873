package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/leveldata"
)

// ErrInvalidLevel is returned by LoadLevel for an out-of-range index.
var ErrInvalidLevel = errors.New("invalid level index")

// ErrLevelDoesNotFit is returned by New for a level whose player is wider
// than the canvas.
var ErrLevelDoesNotFit = errors.New("level does not fit the canvas")

// LoadLevel makes index the active level: platforms are swapped in, the
// collectibles are instantiated afresh from their templates, the counter is
// zeroed, the player goes back to spawn at rest, and the door is recomputed.
// An invalid index returns an error wrapping ErrInvalidLevel and changes
// nothing.
func (s *State) LoadLevel(index int) error {
	if index < 0 || index >= len(s.Levels) {
		return fmt.Errorf("%w: %d (have %d levels)", ErrInvalidLevel, index, len(s.Levels))
	}

	level := s.Levels[index]
	s.LevelIndex = index
	s.Platforms = level.Platforms
	s.Collectibles = instantiateCollectibles(level.Collectibles, s.Config.Collectible)
	s.CollectedCount = 0
	s.Spawn = spawnFor(level, s.Config.Player)

	w, h := playerSizeFor(level, s.Config.Player)
	s.Player = Player{
		Rect:   gamemath.Rect{X: s.Spawn.X, Y: s.Spawn.Y, W: w, H: h},
		Facing: s.Player.Facing,
	}

	s.Door = doorFor(level.Platforms, s.Config.Door)
	return nil
}

// HighestPlatform returns the platform with the smallest y. Ties keep the
// earliest platform. ok is false for an empty slice.
func HighestPlatform(platforms []leveldata.Platform) (highest leveldata.Platform, ok bool) {
	if len(platforms) == 0 {
		return leveldata.Platform{}, false
	}
	highest = platforms[0]
	for _, p := range platforms[1:] {
		if p.Y < highest.Y {
			highest = p
		}
	}
	return highest, true
}

// doorFor stands the door on the highest platform, flush with its right edge.
func doorFor(platforms []leveldata.Platform, cfg gameconfig.DoorConfig) *Door {
	top, ok := HighestPlatform(platforms)
	if !ok {
		return nil
	}
	return &Door{Rect: gamemath.Rect{
		X: top.Right() - cfg.Width,
		Y: top.Y - cfg.Height,
		W: cfg.Width,
		H: cfg.Height,
	}}
}

func spawnFor(level leveldata.Level, cfg gameconfig.PlayerConfig) leveldata.SpawnPoint {
	if level.Spawn != nil {
		return *level.Spawn
	}
	return leveldata.SpawnPoint{X: cfg.SpawnX, Y: cfg.SpawnY}
}

// checkLevels rejects levels the world clamp could not keep on the canvas.
func checkLevels(levels []leveldata.Level, cfg gameconfig.Config) error {
	for i, level := range levels {
		w, _ := playerSizeFor(level, cfg.Player)
		if w > cfg.Canvas.Width {
			return fmt.Errorf("%w: level %d (%s) player width %v exceeds canvas width %v",
				ErrLevelDoesNotFit, i, level.Name, w, cfg.Canvas.Width)
		}
	}
	return nil
}

func playerSizeFor(level leveldata.Level, cfg gameconfig.PlayerConfig) (w, h float64) {
	w, h = cfg.Width, cfg.Height
	if level.PlayerWidth > 0 {
		w = level.PlayerWidth
	}
	if level.PlayerHeight > 0 {
		h = level.PlayerHeight
	}
	return w, h
}
