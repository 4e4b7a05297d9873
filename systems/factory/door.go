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

func CreateDoor(ecs *ecs.ECS, d *sim.Door) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	obj := resolv.NewObject(d.X, d.Y, d.W, d.H, tags.ResolvDoor)
	obj.SetShape(resolv.NewRectangle(0, 0, d.W, d.H))
	obj.Data = door
	components.Object.SetValue(door, components.ObjectData{Object: obj})

	return door
}
