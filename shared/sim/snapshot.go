package sim

import "github.com/automoto/pawprint/shared/leveldata"

// Snapshot is a copy of everything a renderer or HUD reads. It shares no
// memory with the State it came from.
type Snapshot struct {
	Frame        uint64               `json:"frame"`
	Level        int                  `json:"level"`
	LevelName    string               `json:"levelName"`
	LevelCount   int                  `json:"levelCount"`
	CanvasWidth  float64              `json:"canvasWidth"`
	CanvasHeight float64              `json:"canvasHeight"`
	Player       Player               `json:"player"`
	Platforms    []leveldata.Platform `json:"platforms"`
	Collectibles []Collectible        `json:"collectibles"`
	Door         *Door                `json:"door,omitempty"`
	DoorActive   bool                 `json:"doorActive"`
	Collected    int                  `json:"collected"`
	Total        int                  `json:"total"`
}

// Snapshot copies the renderable state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:        s.Frame,
		Level:        s.LevelIndex,
		LevelName:    s.LevelName(),
		LevelCount:   len(s.Levels),
		CanvasWidth:  s.Config.Canvas.Width,
		CanvasHeight: s.Config.Canvas.Height,
		Player:       s.Player,
		Platforms:    append([]leveldata.Platform(nil), s.Platforms...),
		Collectibles: append([]Collectible(nil), s.Collectibles...),
		DoorActive:   s.DoorActive(),
		Collected:    s.CollectedCount,
		Total:        s.Total(),
	}
	if s.Door != nil {
		door := *s.Door
		snap.Door = &door
	}
	return snap
}
