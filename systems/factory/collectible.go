package factory

import (
	"github.com/automoto/pawprint/archetypes"
	"github.com/automoto/pawprint/components"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/automoto/pawprint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, index int, c sim.Collectible) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	obj := resolv.NewObject(c.X, c.Y, c.W, c.H, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, c.W, c.H))
	obj.Data = collectible
	components.Object.SetValue(collectible, components.ObjectData{Object: obj})
	components.Collectible.SetValue(collectible, components.CollectibleData{Index: index})

	return collectible
}
