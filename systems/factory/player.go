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

func CreatePlayer(ecs *ecs.ECS, p sim.Player) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, p.W, p.H)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	return player
}
