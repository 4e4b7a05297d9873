package factory

import (
	"github.com/automoto/pawprint/archetypes"
	"github.com/automoto/pawprint/components"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision mirror cell size.
const cellSize = 16

// CreateSimulation spawns the singleton that owns the simulation state. The
// level entities are built on the first mirror pass.
func CreateSimulation(ecs *ecs.ECS, state *sim.State) *donburi.Entry {
	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, components.SimulationData{
		State:         state,
		MirroredLevel: -1,
	})
	return entry
}

// BuildLevel replaces every level entity and the resolv space with a fresh
// mirror of the state's active level.
func BuildLevel(ecs *ecs.ECS, state *sim.State) {
	clearLevel(ecs)

	spaceEntry := CreateSpace(ecs,
		int(state.Config.Canvas.Width),
		int(state.Config.Canvas.Height),
		cellSize, cellSize,
	)
	space := components.Space.Get(spaceEntry)

	for _, p := range state.Platforms {
		e := CreatePlatform(ecs, p)
		space.Add(components.Object.Get(e).Object)
	}
	for i, c := range state.Collectibles {
		e := CreateCollectible(ecs, i, c)
		space.Add(components.Object.Get(e).Object)
	}
	if state.Door != nil {
		e := CreateDoor(ecs, state.Door)
		space.Add(components.Object.Get(e).Object)
	}
	player := CreatePlayer(ecs, state.Player)
	space.Add(components.Object.Get(player).Object)
}

func clearLevel(ecs *ecs.ECS) {
	var stale []donburi.Entity
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Platform, tags.Collectible, tags.Door, tags.Player} {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			stale = append(stale, e.Entity())
		})
	}
	components.Space.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		ecs.World.Remove(e)
	}
}
