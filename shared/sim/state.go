// Package sim is the per-frame simulation: platform physics, collectible
// pickup, the gated level exit and level progression. It is a pure state
// machine driven by whoever owns the frame loop; it never draws, sleeps, or
// reads devices.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/gamemath"
	"github.com/automoto/pawprint/shared/leveldata"
)

// ErrNoLevels is returned by New when the level set is empty.
var ErrNoLevels = errors.New("no levels")

// Facing is the horizontal direction the player sprite looks in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

func (f Facing) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Facing) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*f = FacingLeft
	case "right":
		*f = FacingRight
	default:
		return fmt.Errorf("unknown facing %q", text)
	}
	return nil
}

// Player is the only moving body.
type Player struct {
	gamemath.Rect
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Facing   Facing  `json:"facing"`
	Grounded bool    `json:"grounded"`

	// PassingThrough is set while the player rises through the underside of
	// a platform. It has no physical effect.
	PassingThrough bool `json:"passingThrough"`
}

// Collectible is the live, per-load copy of a leveldata.CollectibleSpawn.
type Collectible struct {
	gamemath.Rect
	Collected   bool    `json:"collected"`
	FloatOffset float64 `json:"floatOffset"`
	FloatY      float64 `json:"floatY"`
	Opacity     float64 `json:"opacity"`
}

// Door is the level exit, placed on the highest platform at load time.
type Door struct {
	gamemath.Rect
}

// State is the whole simulation aggregate. Platforms and Levels are shared
// with the level definitions and must never be written through.
type State struct {
	Config gameconfig.Config
	Levels []leveldata.Level

	LevelIndex     int
	Spawn          leveldata.SpawnPoint
	Player         Player
	Platforms      []leveldata.Platform
	Collectibles   []Collectible
	Door           *Door // nil when the level has no platforms
	CollectedCount int
	Frame          uint64
}

// New validates cfg and returns a State with the first level loaded.
func New(cfg gameconfig.Config, levels []leveldata.Level) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if err := checkLevels(levels, cfg); err != nil {
		return nil, err
	}

	s := &State{
		Config: cfg,
		Levels: levels,
	}
	if err := s.LoadLevel(0); err != nil {
		return nil, fmt.Errorf("load first level: %w", err)
	}
	return s, nil
}

// Total is the number of collectibles in the active level.
func (s *State) Total() int {
	return len(s.Collectibles)
}

// DoorActive reports whether the exit accepts the player. A level without
// collectibles has its door open from the start.
func (s *State) DoorActive() bool {
	return s.Door != nil && s.CollectedCount == s.Total()
}

// LevelName returns the active level's name.
func (s *State) LevelName() string {
	return s.Levels[s.LevelIndex].Name
}

// IsLastLevel reports whether the door of the active level wraps to the start.
func (s *State) IsLastLevel() bool {
	return s.LevelIndex == len(s.Levels)-1
}

// Clone deep-copies the mutable parts of s.
func (s *State) Clone() *State {
	c := *s
	c.Collectibles = append([]Collectible(nil), s.Collectibles...)
	if s.Door != nil {
		door := *s.Door
		c.Door = &door
	}
	return &c
}
