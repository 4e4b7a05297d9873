package systems

import (
	"log"

	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelMirror rebuilds the level entities and the resolv space whenever
// the simulation loaded a level, including a reload of the same index.
func UpdateLevelMirror(ecs *ecs.ECS) {
	s, ok := GetSimulation(ecs)
	if !ok {
		return
	}

	if s.MirroredLevel == s.State.LevelIndex && !hasEvent(s.Events, sim.EventLevelLoaded) {
		return
	}

	factory.BuildLevel(ecs, s.State)
	s.MirroredLevel = s.State.LevelIndex
	log.Printf("Level %d/%d %q: %d platforms, %d collectibles",
		s.State.LevelIndex+1, len(s.State.Levels), s.State.LevelName(),
		len(s.State.Platforms), s.State.Total())
}
