package archetypes

import (
	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
