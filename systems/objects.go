package systems

import (
	"github.com/automoto/pawprint/components"
	"github.com/automoto/pawprint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects copies simulation positions onto the resolv mirror. Collected
// items leave the space so the debug overlay and hints stop seeing them.
func UpdateObjects(ecs *ecs.ECS) {
	s, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	state := s.State

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.X, obj.Y = state.Player.X, state.Player.Y
		obj.W, obj.H = state.Player.W, state.Player.H
		obj.Update()
	})

	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		idx := components.Collectible.Get(e).Index
		if idx >= len(state.Collectibles) {
			return
		}
		if state.Collectibles[idx].Collected && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	})
}

func objectOf(e *donburi.Entry) *resolv.Object {
	return components.Object.Get(e).Object
}
